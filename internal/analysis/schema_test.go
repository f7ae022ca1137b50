package analysis

import (
	"errors"
	"testing"
)

func TestDecodeChunkPayload_CleanJSON(t *testing.T) {
	raw := `{"questions":[{"question_id":"q1","question_text":"What is TLS?","question_type":"short_answer","topic":"Cryptography","difficulty":"easy","confidence_score":0.95,"answer_choices":[],"keywords":["tls"]}],"chunk_summary":"one crypto question"}`

	payload, err := decodeChunkPayload(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(payload.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(payload.Questions))
	}
	q := payload.Questions[0]
	if q.QuestionID != "q1" || q.QuestionText != "What is TLS?" || q.ConfidenceScore != 0.95 {
		t.Errorf("fields decoded wrong: %+v", q)
	}
	if payload.ChunkSummary != "one crypto question" {
		t.Errorf("chunk summary got %q", payload.ChunkSummary)
	}
}

func TestDecodeChunkPayload_SalvageFromProse(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n" +
		`{"questions":[{"question_id":"q1","question_text":"Why use HTTPS?"}],"chunk_summary":"ok"}` +
		"\n```\nLet me know if you need anything else!"

	payload, err := decodeChunkPayload(raw)
	if err != nil {
		t.Fatalf("salvage failed: %v", err)
	}
	if len(payload.Questions) != 1 || payload.Questions[0].QuestionText != "Why use HTTPS?" {
		t.Errorf("salvaged payload wrong: %+v", payload)
	}
}

func TestDecodeChunkPayload_BracesInsideStrings(t *testing.T) {
	raw := `noise {"questions":[{"question_id":"q1","question_text":"What does {x: 1} mean in JSON?"}],"chunk_summary":"s"} trailing`

	payload, err := decodeChunkPayload(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload.Questions[0].QuestionText != "What does {x: 1} mean in JSON?" {
		t.Errorf("string braces broke salvage: %+v", payload)
	}
}

func TestDecodeChunkPayload_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no_json", "I could not find any questions in this text."},
		{"unbalanced", `{"questions": [`},
		{"wrong_types", `{"questions": "not a list"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeChunkPayload(tt.raw)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error %v does not wrap ErrMalformedResponse", err)
			}
		})
	}
}

func TestDecodeChunkPayload_IsValidQuestionFlag(t *testing.T) {
	raw := `{"questions":[{"question_id":"q1","question_text":"Name:","is_valid_question":false},{"question_id":"q2","question_text":"What is XSS?","is_valid_question":true}],"chunk_summary":"s"}`

	payload, err := decodeChunkPayload(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload.Questions[0].IsValidQuestion == nil || *payload.Questions[0].IsValidQuestion {
		t.Error("explicit false flag lost")
	}
	if payload.Questions[1].IsValidQuestion == nil || !*payload.Questions[1].IsValidQuestion {
		t.Error("explicit true flag lost")
	}
}
