package analysis

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/cramcortex/backend/internal/chunk"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/internal/llm"
	"github.com/cramcortex/backend/pkg/logger_i"
)

// State is the lifecycle of the analysis service. A service that never
// reaches StateReady still answers every request through the fallback path.
type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

var ErrNoProvider = errors.New("no language model provider configured")

type Service interface {
	// Init verifies the provider is reachable and moves the service to
	// StateReady or StateFailed. Safe to call once at startup.
	Init(ctx context.Context) error
	State() State
	// Analyze runs the full extraction pipeline over a document's text.
	// It always returns a result; degraded paths are reported in the
	// summary's processing method, never as an error.
	Analyze(ctx context.Context, text string) examModel.AnalysisResult
}

type Options struct {
	Policy        *Policy
	Observer      Observer
	ExpectedCount int
	MaxChunkSize  int
}

type service struct {
	provider   llm.Provider
	policy     Policy
	observer   Observer
	expected   int
	maxChunk   int
	retryDelay time.Duration
	state      atomic.Int32
	log        *logger_i.Logger
}

func NewService(provider llm.Provider, opts Options) Service {
	s := &service{
		provider:   provider,
		policy:     DefaultPolicy(),
		observer:   opts.Observer,
		expected:   config.ExpectedQuestionCount,
		maxChunk:   config.MaxChunkSize,
		retryDelay: config.RetryBaseDelay,
		log:        logger_i.NewLogger("analysis"),
	}
	if opts.Policy != nil {
		s.policy = *opts.Policy
	}
	if opts.ExpectedCount > 0 {
		s.expected = opts.ExpectedCount
	}
	if opts.MaxChunkSize > 0 {
		s.maxChunk = opts.MaxChunkSize
	}
	return s
}

func (s *service) Init(ctx context.Context) error {
	if s.provider == nil {
		s.state.Store(int32(StateFailed))
		return ErrNoProvider
	}

	pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := s.provider.Complete(pingCtx, llm.Request{
		Prompt:      "Reply with the single word: ok",
		MaxTokens:   5,
		Temperature: 0,
	})
	if err != nil {
		s.state.Store(int32(StateFailed))
		s.log.Error("provider ping failed", "provider", s.provider.Name(), "error", err)
		return err
	}

	s.state.Store(int32(StateReady))
	s.log.Info("analysis service ready", "provider", s.provider.Name())
	return nil
}

func (s *service) State() State {
	return State(s.state.Load())
}

func (s *service) Analyze(ctx context.Context, text string) examModel.AnalysisResult {
	started := time.Now()

	// The baseline scan runs over the raw text so stripped boilerplate can
	// never hide a numbered item from recovery.
	baseline := ScanNumberedLines(text)
	processed := Preprocess(text)

	if s.State() != StateReady {
		s.log.Warn("model unavailable, using heuristic extraction", "state", s.State().String())
		return s.assemble(fallbackExtract(processed, baseline), 0, 0, string(examModel.MethodHeuristic))
	}

	chunks := chunk.Split(processed, s.maxChunk)
	s.log.Info("document chunked", "chunks", len(chunks), "baseline_items", len(baseline))

	results := s.dispatchChunks(ctx, chunks, s.expected)
	failed := 0
	for _, r := range results {
		if r == nil {
			failed++
		}
	}

	if failed == len(chunks) {
		s.log.Warn("all chunks failed, using heuristic extraction")
		return s.assemble(fallbackExtract(processed, baseline), len(chunks), failed, string(examModel.MethodHeuristic))
	}

	merged := mergeChunkResults(results)
	accepted := s.filterQuestions(merged)
	accepted = s.recoverMissing(accepted, baseline, s.expected)

	s.log.Info("analysis complete",
		"questions", len(accepted),
		"rejected", len(merged)-len(accepted),
		"failed_chunks", failed,
		"took", time.Since(started).String())

	return s.assemble(accepted, len(chunks), failed, string(examModel.MethodLLM))
}

func (s *service) assemble(questions []examModel.CandidateQuestion, chunksProcessed, failedChunks int, method string) examModel.AnalysisResult {
	topics := topicsFrom(questions)
	return examModel.AnalysisResult{
		Questions: questions,
		Topics:    topics,
		Clusters:  []examModel.Cluster{},
		Summary:   summarize(questions, len(topics), chunksProcessed, failedChunks, method),
		Coverage:  coverageFor(questions, s.expected),
	}
}
