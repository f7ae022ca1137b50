package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/internal/metrics"
)

// mergeChunkResults flattens the per-chunk payloads into a single candidate
// list. Question ids are relabelled chunk_<i>_<id> so ids stay unique across
// chunks, and missing fields get conservative defaults.
func mergeChunkResults(results []*chunkPayload) []examModel.CandidateQuestion {
	var merged []examModel.CandidateQuestion
	for chunkIndex, payload := range results {
		if payload == nil {
			continue
		}
		for _, q := range payload.Questions {
			if q.IsValidQuestion != nil && !*q.IsValidQuestion {
				continue
			}
			candidate := examModel.CandidateQuestion{
				Id:            fmt.Sprintf("chunk_%d_%s", chunkIndex, defaultString(q.QuestionID, "q")),
				Text:          strings.TrimSpace(q.QuestionText),
				Type:          normalizeQuestionType(q.QuestionType),
				Topic:         defaultString(q.Topic, "General"),
				Difficulty:    defaultString(q.Difficulty, "medium"),
				Confidence:    q.ConfidenceScore,
				AnswerChoices: q.AnswerChoices,
				Keywords:      q.Keywords,
				Method:        examModel.MethodLLM,
				SourceChunk:   chunkIndex,
				Number:        leadingNumber(q.QuestionText),
			}
			if candidate.Confidence == 0 {
				candidate.Confidence = 0.7
			}
			merged = append(merged, candidate)
		}
	}
	return merged
}

// recoverMissing compares the accepted questions against the deterministic
// baseline and resurrects numbered items the model dropped. Recovery only
// adds items the scanner actually saw; it never invents content.
func (s *service) recoverMissing(accepted []examModel.CandidateQuestion, baseline []examModel.NumberedRecord, expected int) []examModel.CandidateQuestion {
	if len(accepted) >= expected {
		return accepted
	}

	represented := make(map[int]bool, len(accepted))
	for _, q := range accepted {
		if q.Number > 0 {
			represented[q.Number] = true
		}
	}

	for _, record := range baseline {
		if represented[record.Number] {
			continue
		}
		if len([]rune(record.Text)) < config.MinQuestionLength {
			continue
		}
		represented[record.Number] = true
		accepted = append(accepted, examModel.CandidateQuestion{
			Id:         fmt.Sprintf("recovered_%d", record.Number),
			Text:       record.Text,
			Type:       classifyQuestionType(record.Text),
			Topic:      "General",
			Difficulty: "medium",
			Confidence: config.RecoveredConfidence,
			Method:     examModel.MethodRecovery,
			Number:     record.Number,
		})
		metrics.IncrementRecoveredQuestions()
		s.log.Info("recovered question from baseline", "number", record.Number)
	}
	return accepted
}

// classifyQuestionType is a cheap structural guess used for recovered items,
// which never passed through the model.
func classifyQuestionType(text string) examModel.QuestionType {
	lower := strings.ToLower(text)
	switch {
	case hasChoiceMarkers(text):
		return examModel.MultipleChoice
	case containsAny(lower, "true or false", "true/false", "נכון או לא", "נכון/לא"):
		return examModel.TrueFalse
	case containsAny(lower, "essay", "discuss", "הסבר בהרחבה", "דון"):
		return examModel.Essay
	case strings.Contains(text, "___"):
		return examModel.FillInBlank
	default:
		return examModel.ShortAnswer
	}
}

// coverageFor reports which of the numbers 1..expected made it into the
// final set, which are missing, and which found numbers fall outside range.
func coverageFor(questions []examModel.CandidateQuestion, expected int) examModel.CoverageReport {
	seen := make(map[int]bool)
	for _, q := range questions {
		if q.Number > 0 {
			seen[q.Number] = true
		}
	}

	report := examModel.CoverageReport{}
	hits := 0
	for n := 1; n <= expected; n++ {
		report.Expected = append(report.Expected, n)
		if seen[n] {
			report.Found = append(report.Found, n)
			hits++
		} else {
			report.Missing = append(report.Missing, n)
		}
	}
	for n := range seen {
		if n > expected {
			report.Extra = append(report.Extra, n)
		}
	}
	sort.Ints(report.Extra)

	if expected > 0 {
		report.Ratio = float64(hits) / float64(expected)
	}
	metrics.SetCoverageRatio(report.Ratio)
	return report
}

func summarize(questions []examModel.CandidateQuestion, topicCount, chunksProcessed, failedChunks int, method string) examModel.Summary {
	typeSet := make(map[string]bool)
	for _, q := range questions {
		typeSet[string(q.Type)] = true
	}
	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	return examModel.Summary{
		TotalQuestions:   len(questions),
		TopicsFound:      topicCount,
		QuestionTypes:    types,
		ChunksProcessed:  chunksProcessed,
		FailedChunks:     failedChunks,
		ProcessingMethod: method,
		Success:          len(questions) > 0,
	}
}

// topicsFrom aggregates per-topic counts, keywords and mean confidence from
// the final question set. Ordering is by size, then name, so output is stable.
func topicsFrom(questions []examModel.CandidateQuestion) []examModel.Topic {
	byName := make(map[string][]examModel.CandidateQuestion)
	for _, q := range questions {
		byName[q.Topic] = append(byName[q.Topic], q)
	}

	topics := make([]examModel.Topic, 0, len(byName))
	for name, members := range byName {
		keywordSet := make(map[string]bool)
		confidence := 0.0
		for _, q := range members {
			confidence += q.Confidence
			for _, k := range q.Keywords {
				keywordSet[k] = true
			}
		}
		keywords := make([]string, 0, len(keywordSet))
		for k := range keywordSet {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)
		if len(keywords) > 10 {
			keywords = keywords[:10]
		}

		topics = append(topics, examModel.Topic{
			Name:          name,
			QuestionCount: len(members),
			Keywords:      keywords,
			Confidence:    confidence / float64(len(members)),
		})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].QuestionCount != topics[j].QuestionCount {
			return topics[i].QuestionCount > topics[j].QuestionCount
		}
		return topics[i].Name < topics[j].Name
	})
	for i := range topics {
		topics[i].Id = fmt.Sprintf("topic_%d", i+1)
	}
	return topics
}

func normalizeQuestionType(raw string) examModel.QuestionType {
	t := examModel.QuestionType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case examModel.MultipleChoice, examModel.TrueFalse, examModel.ShortAnswer,
		examModel.Essay, examModel.FillInBlank:
		return t
	default:
		return examModel.Unknown
	}
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
