package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cramcortex/backend/internal/domain/examModel"
)

var (
	numberedLine   = regexp.MustCompile(`^\s*(\d+)[.)]\s*(.*)$`)
	numberedPrefix = regexp.MustCompile(`^\s*(\d+)[.)]`)
)

// ScanNumberedLines walks the raw document line by line and records every
// "N." / "N)" item together with its continuation lines, in document order.
// Numbers are kept exactly as seen; duplicates and gaps are left for the
// reconciler to judge.
func ScanNumberedLines(text string) []examModel.NumberedRecord {
	lines := strings.Split(text, "\n")
	records := make([]examModel.NumberedRecord, 0, 16)

	current := -1
	startLine := 0
	var body []string

	flush := func(endLine int) {
		if current < 0 {
			return
		}
		records = append(records, examModel.NumberedRecord{
			Number:    current,
			Text:      strings.TrimSpace(strings.Join(body, "\n")),
			StartLine: startLine,
			EndLine:   endLine,
		})
		current = -1
		body = nil
	}

	for i, line := range lines {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			flush(i - 1)
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			current = n
			startLine = i
			body = []string{strings.TrimSpace(m[2])}
			continue
		}
		if current >= 0 {
			body = append(body, strings.TrimRight(line, " \t"))
		}
	}
	flush(len(lines) - 1)

	return records
}

// leadingNumber extracts an item number from the front of a question text,
// e.g. "12. What is ..." yields 12. Returns 0 when no number is present.
func leadingNumber(text string) int {
	m := numberedPrefix.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
