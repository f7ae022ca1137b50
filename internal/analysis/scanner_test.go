package analysis

import "testing"

func TestScanNumberedLines_BasicDocument(t *testing.T) {
	text := `1. What is a firewall?
2) Define encryption in your own words.
3. Explain the difference between symmetric
and asymmetric cryptography.`

	records := ScanNumberedLines(text)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].Number != 1 || records[1].Number != 2 || records[2].Number != 3 {
		t.Errorf("numbers out of order: %+v", records)
	}
	if records[2].Text != "Explain the difference between symmetric\nand asymmetric cryptography." {
		t.Errorf("continuation lines not captured: %q", records[2].Text)
	}
}

func TestScanNumberedLines_DocumentOrderPreserved(t *testing.T) {
	// Out-of-order numbering stays in document order, never sorted.
	text := "3. third question text here\n1. first question text here\n2. second question text here"
	records := ScanNumberedLines(text)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	want := []int{3, 1, 2}
	for i, record := range records {
		if record.Number != want[i] {
			t.Errorf("position %d: got number %d, want %d", i, record.Number, want[i])
		}
	}
}

func TestScanNumberedLines_DuplicatesAndGapsKept(t *testing.T) {
	text := "1. first\n1. first again\n5. fifth with a gap"
	records := ScanNumberedLines(text)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Number != 1 || records[1].Number != 1 || records[2].Number != 5 {
		t.Errorf("duplicates or gaps were altered: %+v", records)
	}
}

func TestScanNumberedLines_NoMatches(t *testing.T) {
	records := ScanNumberedLines("A document without any numbered items at all.")
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestScanNumberedLines_LineSpans(t *testing.T) {
	text := "intro line\n1. question one\nmore of question one\n2. question two"
	records := ScanNumberedLines(text)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].StartLine != 1 || records[0].EndLine != 2 {
		t.Errorf("first record span got [%d,%d], want [1,2]", records[0].StartLine, records[0].EndLine)
	}
	if records[1].StartLine != 3 {
		t.Errorf("second record start got %d, want 3", records[1].StartLine)
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"12. What is XSS?", 12},
		{"3) Define CSRF", 3},
		{"  7. indented", 7},
		{"What is a firewall?", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := leadingNumber(tt.text); got != tt.want {
			t.Errorf("leadingNumber(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
