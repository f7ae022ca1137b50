package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse marks a model reply that could not be decoded into
// the chunk payload schema even after salvage.
var ErrMalformedResponse = errors.New("malformed model response")

type questionPayload struct {
	QuestionID      string   `json:"question_id"`
	QuestionText    string   `json:"question_text"`
	QuestionType    string   `json:"question_type"`
	Topic           string   `json:"topic"`
	Difficulty      string   `json:"difficulty"`
	ConfidenceScore float64  `json:"confidence_score"`
	AnswerChoices   []string `json:"answer_choices"`
	Keywords        []string `json:"keywords"`
	IsValidQuestion *bool    `json:"is_valid_question"`
}

type chunkPayload struct {
	Questions    []questionPayload `json:"questions"`
	ChunkSummary string            `json:"chunk_summary"`
}

// decodeChunkPayload parses a model reply. Replies are expected to be a bare
// JSON object, but models routinely wrap them in prose or code fences, so a
// failed direct parse falls back to the first balanced object in the text.
func decodeChunkPayload(raw string) (chunkPayload, error) {
	var payload chunkPayload

	trimmed := strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
		return payload, nil
	}

	salvaged, ok := firstBalancedObject(trimmed)
	if !ok {
		return chunkPayload{}, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(salvaged), &payload); err != nil {
		return chunkPayload{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return payload, nil
}

// firstBalancedObject returns the first balanced {...} span in s, respecting
// string literals and escapes so braces inside values do not break the count.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
