package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/cramcortex/backend/internal/chunk"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/internal/llm"
	"github.com/cramcortex/backend/internal/metrics"
	"github.com/cramcortex/backend/pkg/logger_i"
)

const translationSystemPrompt = `You are a professional Hebrew to English translator specialized in academic exam documents. Translate the given text to English completely and accurately. Preserve question numbering, answer option letters and all formatting. Output only the English translation with no commentary, no Hebrew characters and no explanations.`

var errHebrewLeak = errors.New("translation still contains Hebrew characters")

type Translator interface {
	// TranslateDocument translates a full document to clean English. Text
	// without Hebrew is returned untouched. The result is always safe to
	// feed to the analysis pipeline.
	TranslateDocument(ctx context.Context, text string) examModel.TranslationResult
}

type translator struct {
	provider   llm.Provider
	maxChunk   int
	retryDelay time.Duration
	log        *logger_i.Logger
}

func New(provider llm.Provider) Translator {
	return &translator{
		provider:   provider,
		maxChunk:   config.MaxChunkSize,
		retryDelay: config.RetryBaseDelay,
		log:        logger_i.NewLogger("translate"),
	}
}

func (t *translator) TranslateDocument(ctx context.Context, text string) examModel.TranslationResult {
	if !ContainsHebrew(text) {
		return examModel.TranslationResult{
			TranslatedText:  text,
			Success:         true,
			HasHebrew:       false,
			CleanGuaranteed: IsClean(text),
			Message:         "no translation needed",
		}
	}

	if t.provider == nil {
		cleaned, ok := ForceClean(text, config.SanitizerMaxPasses)
		return examModel.TranslationResult{
			TranslatedText:  cleaned,
			Success:         false,
			HasHebrew:       true,
			CleanGuaranteed: ok,
			Message:         "no translation provider configured, Hebrew content stripped",
		}
	}

	chunks := chunk.Split(text, t.maxChunk)
	translated := make([]string, len(chunks))
	succeeded := make([]bool, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(config.MaxConcurrentLLMCalls)

	for _, c := range chunks {
		c := c
		group.Go(func() error {
			out, err := t.translateChunk(groupCtx, c.Text)
			if err != nil {
				t.log.Error("chunk translation failed", "chunk", c.Index, "error", err)
				metrics.CaptureChunkOutcome("translation", false)
				return nil
			}
			metrics.CaptureChunkOutcome("translation", true)
			translated[c.Index] = out
			succeeded[c.Index] = true
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.log.Error("translation dispatch interrupted", "error", err)
	}

	// Failed chunks are dropped from the joined text. Their count is
	// reported in the result, never inlined into downstream input.
	failures := 0
	kept := make([]string, 0, len(chunks))
	for i, out := range translated {
		if !succeeded[i] {
			failures++
			continue
		}
		kept = append(kept, out)
	}

	joined := strings.Join(kept, "\n\n")
	final, clean := ForceClean(joined, config.SanitizerMaxPasses)

	t.log.Info("document translated",
		"chunks", len(chunks),
		"failed_chunks", failures,
		"clean", clean)

	message := ""
	if failures > 0 {
		message = fmt.Sprintf("%d of %d chunks failed translation", failures, len(chunks))
	}

	return examModel.TranslationResult{
		TranslatedText:   final,
		OriginalChunks:   len(chunks),
		TranslatedChunks: len(chunks) - failures,
		Success:          failures < len(chunks) && clean,
		HasHebrew:        true,
		CleanGuaranteed:  clean,
		Message:          message,
	}
}

// translateChunk retries until the model produces output free of Hebrew. On
// the last attempt a leak is forcibly cleaned instead of failing the chunk.
func (t *translator) translateChunk(ctx context.Context, text string) (string, error) {
	attempts := config.TranslationRetryAttempts
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(t.retryDelay))

	attempt := 0
	var result string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, config.LLMCallTimeout)
		defer cancel()

		started := time.Now()
		raw, err := t.provider.Complete(callCtx, llm.Request{
			System:      translationSystemPrompt,
			Prompt:      "Translate to English:\n\n" + text,
			MaxTokens:   config.MaxLLMTokens,
			Temperature: config.LLMTemperature,
		})
		metrics.CaptureExecutionMetrics("llm_translation_call", time.Since(started))
		// Transient failures, including plain transport errors, are
		// retried. Only provably permanent rejections fail fast.
		if err != nil {
			if llm.Permanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}

		// Hebrew in the raw reply means the model did not actually
		// translate. Ask again rather than silently stripping content,
		// except on the final attempt.
		if ContainsHebrew(raw) && attempt < attempts {
			return retry.RetryableError(errHebrewLeak)
		}

		cleaned := SanitizePass(raw)
		if cleaned == "" {
			return retry.RetryableError(llm.ErrEmptyResponse)
		}
		result = cleaned
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}
