package translate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/cramcortex/backend/internal/metrics"
)

// FailureSentinel replaces translations that could not be brought to a clean
// state within the pass budget.
const FailureSentinel = "[TRANSLATION_FAILED: unable to produce clean English output]"

// Meta-commentary models wrap around translations. Stripped before any
// character filtering.
var artifactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(here is|here's)\s+(the|your)\s+translation\s*:?\s*`),
	regexp.MustCompile(`(?i)^\s*translation\s*:?\s*`),
	regexp.MustCompile(`(?i)^\s*translated\s+text\s*:?\s*`),
	regexp.MustCompile(`(?i)^\s*english\s+(version|translation)\s*:?\s*`),
	regexp.MustCompile("(?s)```[a-z]*\\n?|```"),
	regexp.MustCompile(`(?i)\s*\(translated from hebrew\)\s*`),
	regexp.MustCompile(`(?i)\s*\[end of translation\]\s*`),
}

var collapseSpaces = regexp.MustCompile(`[ \t]{2,}`)
var collapseBlank = regexp.MustCompile(`\n{3,}`)

// isAllowed is the output allow-list: printable ASCII letters, digits and
// punctuation plus Latin-1 accented letters and common typographic marks.
// Brackets and underscores stay legal so inserted status markers survive.
func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '\n' || r == '\t':
		return true
	case strings.ContainsRune(`.,;:!?'"()[]{}/%&@#$*+=<>_|~^\-`, r):
		return true
	case r >= 0x00C0 && r <= 0x00FF && unicode.IsLetter(r):
		return true
	case r == '‘' || r == '’' || r == '“' || r == '”':
		return true
	default:
		return false
	}
}

// SanitizePass runs one full cleaning pass: artifact strip, forbidden-range
// strip, allow-list filter, whitespace normalization.
func SanitizePass(text string) string {
	for _, pattern := range artifactPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isForbidden(r) {
			continue
		}
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}
	text = b.String()

	text = collapseSpaces.ReplaceAllString(text, " ")
	text = collapseBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// asciiPurge is the aggressive final resort: drop every byte above 0x7F and
// every disallowed ASCII character.
func asciiPurge(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x80 && isAllowed(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(collapseSpaces.ReplaceAllString(b.String(), " "))
}

// IsClean reports whether every character of text passes the allow-list.
func IsClean(text string) bool {
	for _, r := range text {
		if !isAllowed(r) {
			return false
		}
	}
	return true
}

// ForceClean brings arbitrary text to a guaranteed-clean state: bounded
// sanitize passes, then an ASCII purge, then the failure sentinel. The
// second return value reports whether content survived without the sentinel.
func ForceClean(text string, maxPasses int) (string, bool) {
	original := len([]rune(text))

	for pass := 0; pass < maxPasses; pass++ {
		text = SanitizePass(text)
		if IsClean(text) && text != "" {
			return markHeavyLoss(text, original), true
		}
	}

	metrics.IncrementSanitizerPurges()
	text = asciiPurge(text)
	if text != "" {
		return markHeavyLoss(text, original), true
	}
	return FailureSentinel, false
}

// markHeavyLoss appends a visible marker when cleaning removed more than 70%
// of the original characters, so downstream consumers know the text is a
// remnant rather than a faithful translation.
func markHeavyLoss(text string, originalLen int) string {
	cleanedLen := len([]rune(text))
	if originalLen == 0 || float64(cleanedLen) >= 0.3*float64(originalLen) {
		return text
	}
	return text + fmt.Sprintf(" [TRANSLATION_CLEANED: %d chars -> %d chars]", originalLen, cleanedLen)
}
