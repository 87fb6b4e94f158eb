package classifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veridoc-co/veridoc/internal/classifier"
)

func TestRunFirstAttemptSucceeds(t *testing.T) {
	policy := classifier.RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond}

	calls := 0
	result, err := classifier.Run(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result: got %q, want ok", result)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestRunRetriesThenSucceeds(t *testing.T) {
	policy := classifier.RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond}

	calls := 0
	result, err := classifier.Run(context.Background(), policy, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Errorf("result: got %d, want 42", result)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestRunExhaustsAttempts(t *testing.T) {
	policy := classifier.RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond}

	failure := errors.New("persistent")
	calls := 0
	_, err := classifier.Run(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "", failure
	})

	if !errors.Is(err, failure) {
		t.Errorf("error: got %v, want %v", err, failure)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

func TestRunZeroAttemptsRunsOnce(t *testing.T) {
	policy := classifier.RetryPolicy{MaxAttempts: 0, Backoff: time.Millisecond}

	calls := 0
	_, err := classifier.Run(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "done", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestRunContextCancelledDuringBackoff(t *testing.T) {
	policy := classifier.RetryPolicy{MaxAttempts: 3, Backoff: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	calls := 0
	_, err := classifier.Run(ctx, policy, func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("error: got %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}
