package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/veridoc-co/veridoc/pkg/storage"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"valid", "sessions/abc/final.pdf", nil},
		{"empty", "", storage.ErrEmptyKey},
		{"traversal", "sessions/../secrets", storage.ErrInvalidKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := storage.ValidateKey(tc.key)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := storage.Config{
		ContainerName:    "documents",
		ConnectionString: "UseDevelopmentStorage=true",
	}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SignedURLTTL != "1h" {
		t.Errorf("signed_url_ttl: got %s, want 1h", cfg.SignedURLTTL)
	}
	if cfg.URLTTL() != time.Hour {
		t.Errorf("url ttl: got %s, want 1h", cfg.URLTTL())
	}
}

func TestConfigFinalizeRequiresConnectionString(t *testing.T) {
	cfg := storage.Config{ContainerName: "documents"}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for missing connection string")
	}
}

func TestConfigFinalizeRejectsBadTTL(t *testing.T) {
	cfg := storage.Config{
		ContainerName:    "documents",
		ConnectionString: "UseDevelopmentStorage=true",
		SignedURLTTL:     "not a duration",
	}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for invalid signed_url_ttl")
	}
}

func TestConfigMerge(t *testing.T) {
	cfg := storage.Config{
		ContainerName: "documents",
		SignedURLTTL:  "1h",
	}

	cfg.Merge(&storage.Config{SignedURLTTL: "30m"})

	if cfg.SignedURLTTL != "30m" {
		t.Errorf("signed_url_ttl: got %s, want 30m", cfg.SignedURLTTL)
	}
	if cfg.ContainerName != "documents" {
		t.Errorf("container: got %s, want documents", cfg.ContainerName)
	}
}
