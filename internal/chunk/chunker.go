package chunk

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Chunk is one bounded segment of a document, submitted as a single unit to
// the LLM. Index is the position in the original text, not completion order.
type Chunk struct {
	Index int
	Text  string
}

// Segments shorter than this don't count when scoring a splitting strategy.
const minSegmentLength = 15

type strategy struct {
	name   string
	marker *regexp.Regexp
}

// Candidate boundaries in priority order. Exam documents come in Hebrew,
// English or a mix, so both scripts' question markers are tried.
var markerStrategies = []strategy{
	{"numbered", regexp.MustCompile(`(?m)^[ \t]*\d+[.)\-]\s`)},
	{"hebrew_question", regexp.MustCompile(`(?m)^[ \t]*שאלה\s*\d+[.):]`)},
	{"english_question", regexp.MustCompile(`(?m)^[ \t]*Question\s*\d+[.):]`)},
	{"q_prefix", regexp.MustCompile(`(?m)^[ \t]*Q\d+[.):]`)},
	{"parenthesized", regexp.MustCompile(`(?m)^[ \t]*\(\d+\)\s`)},
}

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)

var sentenceEnders = map[rune]bool{
	'.': true, '!': true, '?': true,
	'׃': true, '。': true, '！': true, '？': true,
}

// Split cuts text into ordered chunks of at most max bytes. A single
// detected unit longer than max is kept intact as an oversized chunk rather
// than being cut mid-question. Split never fails and never drops content:
// joining the chunk texts reproduces the input up to whitespace.
func Split(text string, max int) []Chunk {
	if max <= 0 || len(text) <= max {
		return []Chunk{{Index: 0, Text: text}}
	}

	segments := bestSegmentation(text)
	if len(segments) <= 1 {
		return fixedWidth(text, max)
	}
	return pack(segments, max)
}

// bestSegmentation tries each marker strategy and keeps the one producing
// the most non-trivial segments, then falls back to paragraph and sentence
// boundaries. All segmentations preserve the full text; triviality only
// affects scoring.
func bestSegmentation(text string) []string {
	var best []string
	bestScore := 0

	for _, s := range markerStrategies {
		segs := splitAtMarkers(text, s.marker)
		if score := countNonTrivial(segs); score > bestScore {
			best = segs
			bestScore = score
		}
	}

	if bestScore < 2 {
		if segs := paragraphBreak.Split(text, -1); countNonTrivial(segs) >= 2 {
			return segs
		}
		if segs := splitSentences(text); countNonTrivial(segs) >= 2 {
			return segs
		}
		return []string{text}
	}
	return best
}

// splitAtMarkers cuts the text at every marker match start. The preamble
// before the first marker becomes its own segment so no content is lost.
func splitAtMarkers(text string, marker *regexp.Regexp) []string {
	locs := marker.FindAllStringIndex(text, -1)
	if len(locs) < 2 {
		return nil
	}

	var segments []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			segments = append(segments, text[prev:loc[0]])
		}
		prev = loc[0]
	}
	segments = append(segments, text[prev:])
	return segments
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if sentenceEnders[r] {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

func countNonTrivial(segments []string) int {
	count := 0
	for _, s := range segments {
		if len(strings.TrimSpace(s)) > minSegmentLength {
			count++
		}
	}
	return count
}

// pack greedily fills chunks up to max. An oversized segment is emitted as
// its own chunk untouched.
func pack(segments []string, max int) []Chunk {
	var chunks []Chunk
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: current.String()})
			current.Reset()
		}
	}

	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if len(seg) > max {
			flush()
			chunks = append(chunks, Chunk{Index: len(chunks), Text: seg})
			continue
		}
		if current.Len() > 0 && current.Len()+len(seg)+2 > max {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(seg)
	}
	flush()

	if len(chunks) == 0 {
		return []Chunk{{Index: 0, Text: strings.TrimSpace(segmentsJoin(segments))}}
	}
	return chunks
}

func segmentsJoin(segments []string) string {
	return strings.Join(segments, "")
}

func fixedWidth(text string, max int) []Chunk {
	var chunks []Chunk
	for i := 0; i < len(text); {
		end := i + max
		if end >= len(text) {
			end = len(text)
		} else {
			// don't cut inside a multibyte rune
			for end > i && !utf8.RuneStart(text[end]) {
				end--
			}
			// max smaller than the rune itself: emit the whole rune
			if end == i {
				_, width := utf8.DecodeRuneInString(text[i:])
				end = i + width
			}
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Text: text[i:end]})
		i = end
	}
	return chunks
}
