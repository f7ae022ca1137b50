package analysis

import (
	"strings"
	"testing"

	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/pkg/logger_i"
)

func testService() *service {
	return &service{
		policy:   DefaultPolicy(),
		expected: 10,
		maxChunk: 3000,
		log:      logger_i.NewLogger("analysis test"),
	}
}

func TestMergeChunkResults_RelabelsAndDefaults(t *testing.T) {
	valid := true
	results := []*chunkPayload{
		{Questions: []questionPayload{
			{QuestionID: "q1", QuestionText: "1. What is a VPN?", QuestionType: "short_answer", ConfidenceScore: 0.9},
		}},
		nil, // failed chunk
		{Questions: []questionPayload{
			{QuestionID: "q1", QuestionText: "7. Which port does SSH use?", IsValidQuestion: &valid},
		}},
	}

	merged := mergeChunkResults(results)
	if len(merged) != 2 {
		t.Fatalf("got %d questions, want 2", len(merged))
	}

	if merged[0].Id != "chunk_0_q1" || merged[1].Id != "chunk_2_q1" {
		t.Errorf("ids not relabelled per chunk: %s, %s", merged[0].Id, merged[1].Id)
	}
	if merged[0].Number != 1 || merged[1].Number != 7 {
		t.Errorf("leading numbers not parsed: %d, %d", merged[0].Number, merged[1].Number)
	}

	// Defaults for fields the model omitted.
	q := merged[1]
	if q.Type != examModel.Unknown || q.Topic != "General" || q.Difficulty != "medium" || q.Confidence != 0.7 {
		t.Errorf("defaults not applied: %+v", q)
	}
}

func TestMergeChunkResults_DropsInvalidFlagged(t *testing.T) {
	invalid := false
	results := []*chunkPayload{
		{Questions: []questionPayload{
			{QuestionID: "q1", QuestionText: "Name: ____", IsValidQuestion: &invalid},
			{QuestionID: "q2", QuestionText: "2. What is SQL injection?"},
		}},
	}
	merged := mergeChunkResults(results)
	if len(merged) != 1 || merged[0].Id != "chunk_0_q2" {
		t.Errorf("invalid-flagged question not dropped: %+v", merged)
	}
}

func TestRecoverMissing_AddsOnlyBaselineItems(t *testing.T) {
	s := testService()
	s.expected = 3

	accepted := []examModel.CandidateQuestion{
		{Id: "chunk_0_q1", Text: "1. What is a firewall and how does it work?", Number: 1, Method: examModel.MethodLLM},
	}
	baseline := []examModel.NumberedRecord{
		{Number: 1, Text: "What is a firewall and how does it work?"},
		{Number: 2, Text: "Explain the concept of defense in depth."},
		{Number: 3, Text: "short"}, // too short to recover
	}

	result := s.recoverMissing(accepted, baseline, s.expected)

	if len(result) != 2 {
		t.Fatalf("got %d questions, want 2", len(result))
	}
	recovered := result[1]
	if recovered.Method != examModel.MethodRecovery {
		t.Errorf("method got %s, want %s", recovered.Method, examModel.MethodRecovery)
	}
	if recovered.Number != 2 || !strings.Contains(recovered.Text, "defense in depth") {
		t.Errorf("wrong item recovered: %+v", recovered)
	}
	if recovered.Confidence != 0.8 {
		t.Errorf("recovered confidence got %f, want 0.8", recovered.Confidence)
	}
}

func TestRecoverMissing_ResurrectsEveryUnrepresentedRecord(t *testing.T) {
	// Once the accepted set falls short, every baseline number the model
	// dropped comes back, even past the expected count.
	s := testService()
	s.expected = 3

	accepted := []examModel.CandidateQuestion{
		{Id: "chunk_0_q1", Text: "1. What is a firewall and how does it work?", Number: 1, Method: examModel.MethodLLM},
		{Id: "chunk_0_q2", Text: "2. Explain the TLS handshake step by step.", Number: 2, Method: examModel.MethodLLM},
	}
	baseline := []examModel.NumberedRecord{
		{Number: 3, Text: "Describe the principle of least privilege in access control."},
		{Number: 4, Text: "What distinguishes symmetric from asymmetric encryption?"},
		{Number: 5, Text: "How does a SIEM correlate events across log sources?"},
	}

	result := s.recoverMissing(accepted, baseline, s.expected)

	if len(result) != 5 {
		t.Fatalf("got %d questions, want 5", len(result))
	}
	wantNumbers := map[int]bool{3: false, 4: false, 5: false}
	for _, q := range result[2:] {
		if q.Method != examModel.MethodRecovery {
			t.Errorf("question %d method got %s", q.Number, q.Method)
		}
		if _, ok := wantNumbers[q.Number]; !ok {
			t.Errorf("unexpected recovered number %d", q.Number)
		}
		wantNumbers[q.Number] = true
	}
	for n, seen := range wantNumbers {
		if !seen {
			t.Errorf("baseline number %d not recovered", n)
		}
	}
}

func TestRecoverMissing_NoopWhenEnough(t *testing.T) {
	s := testService()
	s.expected = 1
	accepted := []examModel.CandidateQuestion{{Id: "a", Number: 1, Text: "1. A sufficiently long question text?"}}
	baseline := []examModel.NumberedRecord{{Number: 2, Text: "Another long numbered item that could be recovered."}}

	result := s.recoverMissing(accepted, baseline, s.expected)
	if len(result) != 1 {
		t.Errorf("recovery ran despite meeting the expected count: %d items", len(result))
	}
}

func TestCoverageFor_MissingAndExtra(t *testing.T) {
	questions := []examModel.CandidateQuestion{
		{Number: 1}, {Number: 2}, {Number: 4}, {Number: 12},
	}
	report := coverageFor(questions, 5)

	if len(report.Expected) != 5 {
		t.Fatalf("expected list has %d entries, want 5", len(report.Expected))
	}
	if len(report.Found) != 3 {
		t.Errorf("found got %v, want 3 in-range numbers", report.Found)
	}
	if len(report.Missing) != 2 || report.Missing[0] != 3 || report.Missing[1] != 5 {
		t.Errorf("missing got %v, want [3 5]", report.Missing)
	}
	if len(report.Extra) != 1 || report.Extra[0] != 12 {
		t.Errorf("extra got %v, want [12]", report.Extra)
	}
	if report.Ratio != 0.6 {
		t.Errorf("ratio got %f, want 0.6", report.Ratio)
	}
}

func TestCoverageFor_FullCoverage(t *testing.T) {
	var questions []examModel.CandidateQuestion
	for n := 1; n <= 10; n++ {
		questions = append(questions, examModel.CandidateQuestion{Number: n})
	}
	report := coverageFor(questions, 10)
	if report.Ratio != 1.0 || len(report.Missing) != 0 {
		t.Errorf("full coverage not reported: ratio=%f missing=%v", report.Ratio, report.Missing)
	}
}

func TestClassifyQuestionType(t *testing.T) {
	tests := []struct {
		text string
		want examModel.QuestionType
	}{
		{"Which is correct?\na) one\nb) two", examModel.MultipleChoice},
		{"True or false: TLS encrypts traffic.", examModel.TrueFalse},
		{"Discuss the impact of ransomware on healthcare.", examModel.Essay},
		{"The ___ protocol resolves names to addresses.", examModel.FillInBlank},
		{"Define social engineering.", examModel.ShortAnswer},
	}
	for _, tt := range tests {
		if got := classifyQuestionType(tt.text); got != tt.want {
			t.Errorf("classifyQuestionType(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestTopicsFrom_OrderingAndAggregation(t *testing.T) {
	questions := []examModel.CandidateQuestion{
		{Topic: "Networking", Confidence: 1.0, Keywords: []string{"tcp"}},
		{Topic: "Networking", Confidence: 0.5, Keywords: []string{"udp"}},
		{Topic: "Cryptography", Confidence: 1.0, Keywords: []string{"aes"}},
	}
	topics := topicsFrom(questions)
	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	if topics[0].Name != "Networking" || topics[0].QuestionCount != 2 {
		t.Errorf("largest topic first expected, got %+v", topics[0])
	}
	if topics[0].Confidence != 0.75 {
		t.Errorf("mean confidence got %f, want 0.75", topics[0].Confidence)
	}
	if topics[0].Id != "topic_1" || topics[1].Id != "topic_2" {
		t.Errorf("topic ids not assigned in order: %s, %s", topics[0].Id, topics[1].Id)
	}
}
