package analysis

import (
	"strings"
	"testing"
)

func TestPreprocess_StripsEnglishBoilerplate(t *testing.T) {
	text := `Cybersecurity Exam 2024
Instructions: answer all questions.
Name: ____________
Date: 15/06/2024
Page 1 of 4

1. What is a firewall and how does it protect a network?

Good luck!`

	out := Preprocess(text)

	for _, gone := range []string{"Instructions", "Name:", "Date:", "Page 1 of 4", "Good luck", "Cybersecurity Exam"} {
		if strings.Contains(out, gone) {
			t.Errorf("boilerplate %q survived preprocessing", gone)
		}
	}
	if !strings.Contains(out, "1. What is a firewall") {
		t.Error("question content was lost")
	}
}

func TestPreprocess_StripsHebrewBoilerplate(t *testing.T) {
	text := "שם המועמד: ____\nתאריך: 15/06/2024\nדף 1 מתוך 4\n\n1. מהו חומת אש ומה תפקידה ברשת ארגונית?\n\nבהצלחה!"

	out := Preprocess(text)

	for _, gone := range []string{"שם המועמד", "תאריך", "דף 1 מתוך", "בהצלחה"} {
		if strings.Contains(out, gone) {
			t.Errorf("hebrew boilerplate %q survived preprocessing", gone)
		}
	}
	if !strings.Contains(out, "מהו חומת אש") {
		t.Error("hebrew question content was lost")
	}
}

func TestPreprocess_CollapsesBlankLines(t *testing.T) {
	out := Preprocess("first line\n\n\n\n\nsecond line")
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("blank lines not collapsed: %q", out)
	}
}

func TestPreprocess_Idempotent(t *testing.T) {
	text := "Instructions: stuff\n\n1. What is a CSRF token used for in web applications?"
	once := Preprocess(text)
	twice := Preprocess(once)
	if once != twice {
		t.Errorf("preprocess not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestPreprocess_EmptyInput(t *testing.T) {
	if out := Preprocess(""); out != "" {
		t.Errorf("empty input produced %q", out)
	}
}
