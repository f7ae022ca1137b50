package analysis

import (
	"regexp"
	"strings"

	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/internal/metrics"
)

// Rule is a single named scoring predicate. Rules that match add their
// weight to the question's score; the question is accepted when the total
// meets the policy threshold and no hard reject fires.
type Rule struct {
	Name   string
	Weight int
	Match  func(text string) bool
}

// Policy is the complete validation rule set applied to every candidate.
type Policy struct {
	Rules           []Rule
	Threshold       int
	MinLength       int
	ConfidenceFloor float64
}

// Decision records how a candidate fared against a policy.
type Decision struct {
	Accepted bool
	Score    int
	Fired    []string
	Reason   string
}

// Observer receives one callback per evaluated question. Implementations
// must be safe for concurrent use.
type Observer interface {
	QuestionEvaluated(question examModel.CandidateQuestion, decision Decision)
}

var (
	questionIndicators = []string{
		"?", "מה", "איזה", "איזו", "כיצד", "מדוע", "למה", "מתי", "היכן", "האם", "הסבר", "תאר", "ציין",
		"what", "which", "how", "why", "when", "where", "explain", "describe", "define", "list", "identify",
	}

	choiceMarker  = regexp.MustCompile(`(?mi)^\s*(?:[a-dא-ד][.)]|\([a-dא-ד]\))\s+\S`)
	startsNumber  = regexp.MustCompile(`^\s*\d+[.)]`)
	bareNumber    = regexp.MustCompile(`^\s*\d+\s*$`)
	dividerLine   = regexp.MustCompile(`^[\s\-_=*.]+$`)
	adminFragment = regexp.MustCompile(`(?i)(שם\s*המועמד|מספר\s*תעודת|חתימת|בהצלחה|דף\s*\d+\s*מתוך|page\s*\d+\s*of|good\s*luck|signature|student\s*name)`)
)

func hasQuestionIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range questionIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func hasChoiceMarkers(text string) bool {
	return len(choiceMarker.FindAllString(text, 2)) >= 2
}

// DefaultPolicy returns the standard exam-question rule set.
func DefaultPolicy() Policy {
	return Policy{
		Rules: []Rule{
			{Name: "question_indicator", Weight: 2, Match: hasQuestionIndicator},
			{Name: "choice_markers", Weight: 2, Match: hasChoiceMarkers},
			{Name: "starts_with_number", Weight: 1, Match: func(t string) bool { return startsNumber.MatchString(t) }},
			{Name: "reasonable_length", Weight: 1, Match: func(t string) bool {
				n := len([]rune(strings.TrimSpace(t)))
				return n >= config.MinQuestionLength && n <= 2000
			}},
		},
		Threshold:       2,
		MinLength:       config.MinQuestionLength,
		ConfidenceFloor: 0.01,
	}
}

// Evaluate applies the policy to a candidate. Hard rejects short-circuit the
// scoring rules: boilerplate, dividers and bare numbers are never questions
// no matter how they score.
func (p Policy) Evaluate(q examModel.CandidateQuestion) Decision {
	text := strings.TrimSpace(q.Text)

	switch {
	case len([]rune(text)) < p.MinLength:
		return Decision{Reason: "below minimum length"}
	case bareNumber.MatchString(text):
		return Decision{Reason: "bare number"}
	case dividerLine.MatchString(text):
		return Decision{Reason: "divider line"}
	case adminFragment.MatchString(text):
		return Decision{Reason: "administrative text"}
	case q.Confidence < p.ConfidenceFloor:
		return Decision{Reason: "confidence below floor"}
	}

	decision := Decision{}
	for _, rule := range p.Rules {
		if rule.Match(text) {
			decision.Score += rule.Weight
			decision.Fired = append(decision.Fired, rule.Name)
		}
	}

	if !hasQuestionIndicator(text) && !hasChoiceMarkers(text) {
		decision.Reason = "no question indicator or answer choices"
		return decision
	}
	if decision.Score < p.Threshold {
		decision.Reason = "score below threshold"
		return decision
	}

	decision.Accepted = true
	return decision
}

// filterQuestions runs every candidate through the policy, notifying the
// observer and counting rejections.
func (s *service) filterQuestions(candidates []examModel.CandidateQuestion) []examModel.CandidateQuestion {
	accepted := make([]examModel.CandidateQuestion, 0, len(candidates))
	for _, q := range candidates {
		decision := s.policy.Evaluate(q)
		if s.observer != nil {
			s.observer.QuestionEvaluated(q, decision)
		}
		if decision.Accepted {
			accepted = append(accepted, q)
			continue
		}
		metrics.IncrementRejectedQuestions()
		s.log.Debug("question rejected", "id", q.Id, "reason", decision.Reason)
	}
	return accepted
}
