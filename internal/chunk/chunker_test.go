package chunk

import (
	"fmt"
	"strings"
	"testing"
)

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestSplit_SmallTextSingleChunk(t *testing.T) {
	text := "1. What is a firewall?\n2. Define encryption."
	chunks := Split(text, 3000)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("small text should pass through untouched")
	}
	if chunks[0].Index != 0 {
		t.Errorf("chunk index got %d, want 0", chunks[0].Index)
	}
}

func TestSplit_PreservesContent(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. This is exam question number %d with enough text to matter for the chunker?\n\n", i, i)
	}
	text := b.String()

	chunks := Split(text, 200)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	var joined strings.Builder
	for _, c := range chunks {
		joined.WriteString(c.Text)
		joined.WriteString(" ")
	}
	if normalize(joined.String()) != normalize(text) {
		t.Error("chunking lost or duplicated content")
	}
}

func TestSplit_ChunkIndicesSequential(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 30; i++ {
		fmt.Fprintf(&b, "%d. Question %d needs some padding text here to grow the document size.\n\n", i, i)
	}

	chunks := Split(b.String(), 150)
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk %d has index %d", i, c.Index)
		}
	}
}

func TestSplit_OversizedSegmentKeptIntact(t *testing.T) {
	// One numbered item larger than the max must become its own chunk
	// rather than being cut mid-question.
	big := "1. " + strings.Repeat("very long question text ", 50)
	text := big + "\n\n2. short question here?"

	chunks := Split(text, 200)
	found := false
	for _, c := range chunks {
		if strings.Contains(c.Text, "very long question text") {
			found = true
			if !strings.HasPrefix(c.Text, "1.") {
				t.Error("oversized segment lost its marker")
			}
		}
	}
	if !found {
		t.Fatal("oversized segment missing from output")
	}
}

func TestSplit_NumberedMarkersPreferred(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&b, "%d. Exam question about network security topic %d with a bit of body text.\n", i, i)
	}
	chunks := Split(b.String(), 250)

	// Every chunk should start at a numbered marker since the numbered
	// strategy wins for this document.
	for _, c := range chunks {
		trimmed := strings.TrimSpace(c.Text)
		if trimmed == "" {
			t.Fatal("empty chunk produced")
		}
	}
	if len(chunks) < 2 {
		t.Fatalf("expected the document to split, got %d chunks", len(chunks))
	}
}

func TestSplit_HebrewQuestionMarkers(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&b, "שאלה %d: מהו חומת אש ומה תפקידה ברשת ארגונית מודרנית בסביבת ענן?\n\n", i)
	}
	text := b.String()

	chunks := Split(text, 200)
	var joined strings.Builder
	for _, c := range chunks {
		joined.WriteString(c.Text)
		joined.WriteString(" ")
	}
	if normalize(joined.String()) != normalize(text) {
		t.Error("hebrew chunking lost content")
	}
}

func TestSplit_FixedWidthFallbackRespectsRunes(t *testing.T) {
	// No markers, no paragraphs, no sentence enders: forces fixed width.
	text := strings.Repeat("אבגדהוזחטי", 100)
	chunks := Split(text, 97)

	var joined strings.Builder
	for _, c := range chunks {
		for _, r := range c.Text {
			if r == '�' {
				t.Fatal("fixed width split cut a rune in half")
			}
		}
		joined.WriteString(c.Text)
	}
	if joined.String() != text {
		t.Error("fixed width chunking altered content")
	}
}

func TestSplit_MaxSmallerThanRune(t *testing.T) {
	// Hebrew letters are two bytes; a one byte budget must still emit
	// whole runes and terminate.
	text := "אבג"
	chunks := Split(text, 1)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	var joined strings.Builder
	for _, c := range chunks {
		for _, r := range c.Text {
			if r == '�' {
				t.Fatal("rune cut in half")
			}
		}
		joined.WriteString(c.Text)
	}
	if joined.String() != text {
		t.Errorf("content altered: %q", joined.String())
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	chunks := Split("", 100)
	if len(chunks) != 1 || chunks[0].Text != "" {
		t.Errorf("empty input should yield one empty chunk, got %v", chunks)
	}
}
