package guard_test

import (
	"errors"
	"testing"

	"github.com/veridoc-co/veridoc/pkg/guard"
)

func TestAttemptSuccess(t *testing.T) {
	got := guard.Attempt(nil, "double", 21, func(n int) (int, error) {
		return n * 2, nil
	})
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestAttemptFailureKeepsInput(t *testing.T) {
	got := guard.Attempt(nil, "fail", "original", func(s string) (string, error) {
		return "", errors.New("stage failed")
	})
	if got != "original" {
		t.Errorf("got %q, want original", got)
	}
}

func TestSwallow(t *testing.T) {
	ran := false
	guard.Swallow(nil, "cleanup", func() error {
		ran = true
		return errors.New("cleanup failed")
	})
	if !ran {
		t.Error("fn was not invoked")
	}
}
