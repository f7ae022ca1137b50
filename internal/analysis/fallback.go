package analysis

import (
	"fmt"
	"strings"

	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/examModel"
)

// fallbackExtract is the last-ditch path when no model is available. It
// takes the deterministic baseline, tops it up with question-mark lines, and
// reports everything under a single General topic so callers still get a
// usable shape.
func fallbackExtract(text string, baseline []examModel.NumberedRecord) []examModel.CandidateQuestion {
	var questions []examModel.CandidateQuestion
	seen := make(map[string]bool)

	for _, record := range baseline {
		if len([]rune(record.Text)) < config.MinQuestionLength {
			continue
		}
		questions = append(questions, examModel.CandidateQuestion{
			Id:         fmt.Sprintf("fallback_%d", record.Number),
			Text:       record.Text,
			Type:       classifyQuestionType(record.Text),
			Topic:      "General",
			Difficulty: "medium",
			Confidence: 0.5,
			Method:     examModel.MethodHeuristic,
			Number:     record.Number,
		})
		seen[record.Text] = true
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, "?") || len([]rune(line)) < config.MinQuestionLength {
			continue
		}
		// Numbered lines already came in through the baseline scan.
		if leadingNumber(line) > 0 || seen[line] || coveredByBaseline(line, baseline) {
			continue
		}
		seen[line] = true
		questions = append(questions, examModel.CandidateQuestion{
			Id:         fmt.Sprintf("fallback_line_%d", i),
			Text:       line,
			Type:       examModel.ShortAnswer,
			Topic:      "General",
			Difficulty: "medium",
			Confidence: 0.4,
			Method:     examModel.MethodHeuristic,
		})
	}

	return questions
}

func coveredByBaseline(line string, baseline []examModel.NumberedRecord) bool {
	for _, record := range baseline {
		if strings.Contains(record.Text, line) {
			return true
		}
	}
	return false
}
