package classifier

import (
	"context"
	"time"
)

// RetryPolicy is a bounded retry with fixed backoff. It is carried by the
// classifier rather than inlined so the retry behavior is tunable from
// configuration and testable in isolation.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy matches the service contract: one retry after a short
// fixed delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 2,
		Backoff:     2 * time.Second,
	}
}

// Run invokes fn up to MaxAttempts times, sleeping Backoff between attempts.
// It returns the first successful value, or the last error once attempts are
// exhausted or the context is cancelled.
func Run[T any](ctx context.Context, p RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(p.Backoff):
		}
	}

	return zero, lastErr
}
