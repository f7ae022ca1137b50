package llm

import (
	"context"
	"errors"
)

// Request is one completion call. Temperature is pinned to zero by both
// pipelines for reproducible output; ForceJSON asks the provider for a
// single JSON object response where the backend supports it.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
	ForceJSON   bool
}

// Provider is the only contact surface the pipelines have with an upstream
// model. Implementations must be safe for concurrent use.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// ErrRateLimited marks upstream throttling so the retry loop can back off
// instead of treating it as a permanent failure.
var ErrRateLimited = errors.New("llm: rate limited by upstream")

// ErrEmptyResponse is returned when the upstream call succeeded but carried
// no usable text.
var ErrEmptyResponse = errors.New("llm: empty response")

// ErrInvalidRequest marks client-side rejections such as bad credentials or
// a malformed request. Retrying cannot fix these.
var ErrInvalidRequest = errors.New("llm: request rejected by upstream")

// Permanent reports whether a provider error is pointless to retry. Anything
// else, including generic transport failure, is treated as transient and
// retried with backoff.
func Permanent(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || errors.Is(err, context.Canceled)
}
