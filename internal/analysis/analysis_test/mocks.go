package analysis_test

import (
	"context"
	"sync"

	"github.com/cramcortex/backend/internal/analysis"
	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/internal/llm"
)

// MockProvider lets each test script the model's behavior per call. Safe for
// the dispatcher's concurrent use.
type MockProvider struct {
	OnComplete func(ctx context.Context, req llm.Request) (string, error)

	mu    sync.Mutex
	calls int
}

func (m *MockProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.OnComplete != nil {
		return m.OnComplete(ctx, req)
	}
	return `{"questions": [], "chunk_summary": "empty"}`, nil
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type recordingObserver struct {
	mu        sync.Mutex
	decisions []analysis.Decision
}

func (o *recordingObserver) QuestionEvaluated(_ examModel.CandidateQuestion, decision analysis.Decision) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.decisions = append(o.decisions, decision)
}

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.decisions)
}
