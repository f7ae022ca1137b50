package translate

// Character ranges whose presence means the text needs translation or the
// sanitizer is not done yet.
var forbiddenRanges = [][2]rune{
	{0x0590, 0x05FF}, // Hebrew
	{0x0600, 0x06FF}, // Arabic
	{0xFB1D, 0xFB4F}, // Hebrew presentation forms
	{0x200E, 0x200F}, // LTR / RTL marks
	{0x202A, 0x202E}, // directional embedding controls
}

// ContainsHebrew reports whether the text carries any character from the
// Hebrew, Arabic or directional-control ranges.
func ContainsHebrew(text string) bool {
	for _, r := range text {
		if isForbidden(r) {
			return true
		}
	}
	return false
}

func isForbidden(r rune) bool {
	for _, rng := range forbiddenRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
