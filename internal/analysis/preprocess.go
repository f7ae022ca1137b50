package analysis

import (
	"regexp"
	"strings"
)

// Administrative lines that show up on exam papers in either script. Matched
// per line and removed before chunking so the model never sees them.
var instructionPatterns = []*regexp.Regexp{
	// Hebrew instruction headers, name/ID/date/signature fields
	regexp.MustCompile(`(?m)^.*?(תקנון|הוראות|הנחיות|ביאור|רקע).*?$`),
	regexp.MustCompile(`(?m)^\s*שם\s*המועמד.*?$`),
	regexp.MustCompile(`(?m)^\s*מספר\s*תעודת\s*זהות.*?$`),
	regexp.MustCompile(`(?m)^\s*תאריך.*?$`),
	regexp.MustCompile(`(?m)^\s*זמן\s*המבחן.*?$`),
	regexp.MustCompile(`(?m)^\s*ציון.*?$`),
	regexp.MustCompile(`(?m)^\s*חתימת\s*הבוחן.*?$`),
	regexp.MustCompile(`(?m)^\s*דף\s*\d+\s*מתוך\s*\d+.*?$`),
	regexp.MustCompile(`(?m)^.*?בהצלחה.*?$`),
	regexp.MustCompile(`(?m)^.*?(מבחן\s+אבטחה|חלק\s+[א-ת]|סך\s+השאלות).*?$`),

	// English equivalents
	regexp.MustCompile(`(?mi)^.*?(Instructions|Directions|Guidelines|Background)\b.*?$`),
	regexp.MustCompile(`(?mi)^\s*(Name|Student|ID)\s*.*?:.*?$`),
	regexp.MustCompile(`(?mi)^\s*(Date|Time|Duration)\s*.*?:.*?$`),
	regexp.MustCompile(`(?mi)^\s*(Score|Grade|Points)\s*.*?:.*?$`),
	regexp.MustCompile(`(?mi)^\s*(Signature|Examiner)\b.*?$`),
	regexp.MustCompile(`(?mi)^\s*Page\s*\d+\s*of\s*\d+.*?$`),
	regexp.MustCompile(`(?mi)^.*?(Cybersecurity\s+Exam|Security\s+Test)\b.*?$`),
	regexp.MustCompile(`(?mi)^.*?Part\s+[A-Z]\b.*?$`),
	regexp.MustCompile(`(?mi)^.*?Total\s+Questions\b.*?$`),
	regexp.MustCompile(`(?mi)^.*?good\s*luck.*?$`),
}

var (
	multiBlankLines   = regexp.MustCompile(`\n\s*\n\s*\n`)
	leadingWhitespace = regexp.MustCompile(`(?m)^[ \t]+`)
)

// Preprocess strips administrative boilerplate and collapses whitespace. It
// is a pure function and never fails; worst case it returns its input.
func Preprocess(text string) string {
	for _, pattern := range instructionPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = multiBlankLines.ReplaceAllString(text, "\n\n")
	text = leadingWhitespace.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
