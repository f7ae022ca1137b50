package translate

import (
	"strings"
	"testing"
)

func TestContainsHebrew(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain_english", "What is a firewall?", false},
		{"hebrew", "מהו חומת אש?", true},
		{"mixed", "Question 1: מהו TLS?", true},
		{"arabic", "ما هو جدار الحماية؟", true},
		{"rtl_mark_only", "invisible\u200Fmark", true},
		{"presentation_form", "\uFB4Fshalom", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsHebrew(tt.text); got != tt.want {
				t.Errorf("ContainsHebrew(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSanitizePass_StripsArtifacts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		gone string
	}{
		{"here_is", "Here is the translation: What is DNS?", "Here is the translation"},
		{"translation_prefix", "Translation: Define a subnet mask.", "Translation:"},
		{"code_fence", "```\nWhat is ARP?\n```", "```"},
		{"from_hebrew_note", "What is ARP? (translated from Hebrew)", "(translated from Hebrew)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SanitizePass(tt.in)
			if strings.Contains(out, tt.gone) {
				t.Errorf("artifact %q survived: %q", tt.gone, out)
			}
			if !strings.Contains(out, "What is") && !strings.Contains(out, "Define") {
				t.Errorf("content lost: %q", out)
			}
		})
	}
}

func TestSanitizePass_RemovesForbiddenRanges(t *testing.T) {
	out := SanitizePass("The answer האם is yes")
	if ContainsHebrew(out) {
		t.Errorf("hebrew survived sanitizing: %q", out)
	}
	if !strings.Contains(out, "The answer") || !strings.Contains(out, "is yes") {
		t.Errorf("english content lost: %q", out)
	}
}

func TestSanitizePass_Idempotent(t *testing.T) {
	inputs := []string{
		"Here is the translation: What is a DDoS attack? a) flood b) phish",
		"1. Explain the שלום difference between TCP and UDP.",
		"plain text already clean",
	}
	for _, in := range inputs {
		once := SanitizePass(in)
		twice := SanitizePass(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestIsClean(t *testing.T) {
	if !IsClean("A clean sentence, with punctuation (and [brackets] + _underscores_)!") {
		t.Error("legal characters reported dirty")
	}
	if IsClean("contains עברית") {
		t.Error("hebrew reported clean")
	}
	if IsClean("emoji \U0001F600 here") {
		t.Error("emoji reported clean")
	}
}

func TestForceClean_AlreadyClean(t *testing.T) {
	in := "What is the CIA triad?"
	out, ok := ForceClean(in, 3)
	if !ok || out != in {
		t.Errorf("clean input altered: %q ok=%v", out, ok)
	}
}

func TestForceClean_OutputAlwaysClean(t *testing.T) {
	inputs := []string{
		"mixed עברית and English content that should survive cleaning in part",
		"שורה בעברית בלבד ללא תוכן באנגלית כלל וכלל",
		"",
	}
	for _, in := range inputs {
		out, _ := ForceClean(in, 3)
		if !IsClean(out) {
			t.Errorf("ForceClean produced dirty output for %q: %q", in, out)
		}
		if out == "" {
			t.Errorf("ForceClean returned empty string for %q, want sentinel", in)
		}
	}
}

func TestForceClean_HeavyLossMarker(t *testing.T) {
	// Mostly Hebrew with a small English tail: over 70% of characters are
	// removed, so the loss marker must appear.
	in := strings.Repeat("אבגדהוזחטיכלמנסעפצקרשת ", 20) + "ok"
	out, ok := ForceClean(in, 3)
	if !ok {
		t.Fatalf("expected content to survive, got %q", out)
	}
	if !strings.Contains(out, "[TRANSLATION_CLEANED:") {
		t.Errorf("loss marker missing from %q", out)
	}
	if !IsClean(out) {
		t.Errorf("marked output not clean: %q", out)
	}
}

func TestForceClean_AllHebrewYieldsSentinel(t *testing.T) {
	out, ok := ForceClean("עברית בלבד", 3)
	if ok {
		t.Error("reported success for content-free result")
	}
	if out != FailureSentinel {
		t.Errorf("got %q, want the failure sentinel", out)
	}
}
