package upstream

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/config"
)

type retrier struct {
	baseDelay   time.Duration
	maxAttempts int
}

func newRetrier(cfg config.RetryConfig) *retrier {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &retrier{baseDelay: cfg.BaseDelay, maxAttempts: attempts}
}

func (r *retrier) do(ctx context.Context, operation func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation(ctx)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}

		if attempt < r.maxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
	}

	return lastErr
}

// isRetryable: transport failures and 5xx. Anything the upstream answered
// with a 4xx will not change on a second try.
func isRetryable(err error) bool {
	if upErr, ok := application.IsUpstreamError(err); ok {
		return upErr.StatusCode >= http.StatusInternalServerError
	}

	if _, ok := application.IsServiceError(err); ok {
		return false
	}

	return !errors.Is(err, context.Canceled)
}

// Backoff calculation with exponential delay and jitter
func (r *retrier) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)))
	return base + jitter
}
