package analysis

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/cramcortex/backend/internal/chunk"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/llm"
	"github.com/cramcortex/backend/internal/metrics"
)

// dispatchChunks fans the chunks out to the model with a bounded level of
// parallelism. The returned slice is indexed by chunk; a nil entry means the
// chunk failed after all retries. One bad chunk never sinks the document.
func (s *service) dispatchChunks(ctx context.Context, chunks []chunk.Chunk, expectedCount int) []*chunkPayload {
	results := make([]*chunkPayload, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(config.MaxConcurrentLLMCalls)

	for _, c := range chunks {
		c := c
		group.Go(func() error {
			payload, err := s.processChunk(groupCtx, c, expectedCount)
			if err != nil {
				s.log.Error("chunk analysis failed", "chunk", c.Index, "error", err)
				metrics.CaptureChunkOutcome("analysis", false)
				return nil
			}
			results[c.Index] = payload
			metrics.CaptureChunkOutcome("analysis", true)
			return nil
		})
	}
	// Workers swallow their own errors, so Wait only reflects ctx.
	if err := group.Wait(); err != nil {
		s.log.Error("chunk dispatch interrupted", "error", err)
	}

	return results
}

func (s *service) processChunk(ctx context.Context, c chunk.Chunk, expectedCount int) (*chunkPayload, error) {
	request := llm.Request{
		System:      analysisSystemPrompt,
		Prompt:      buildAnalysisPrompt(c.Text, expectedCount),
		MaxTokens:   config.MaxLLMTokens,
		Temperature: config.LLMTemperature,
		ForceJSON:   true,
	}

	backoff := retry.WithMaxRetries(
		uint64(config.AnalysisRetryAttempts-1),
		retry.NewExponential(s.retryDelay),
	)

	var payload chunkPayload
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, config.LLMCallTimeout)
		defer cancel()

		started := time.Now()
		raw, err := s.provider.Complete(callCtx, request)
		metrics.CaptureExecutionMetrics("llm_analysis_call", time.Since(started))
		// Transient failures, including plain transport errors, are
		// retried. Only provably permanent rejections fail fast.
		if err != nil {
			if llm.Permanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}

		payload, err = decodeChunkPayload(raw)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}
