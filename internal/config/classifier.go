package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/veridoc-co/veridoc/internal/classifier"
)

const (
	EnvClassifierMaxAttempts  = "VERIDOC_CLASSIFIER_MAX_ATTEMPTS"
	EnvClassifierRetryBackoff = "VERIDOC_CLASSIFIER_RETRY_BACKOFF"
)

// ClassifierConfig holds the classification retry policy.
type ClassifierConfig struct {
	MaxAttempts  int    `toml:"max_attempts"`
	RetryBackoff string `toml:"retry_backoff"`
}

// RetryPolicy returns the configured classifier retry policy.
func (c *ClassifierConfig) RetryPolicy() classifier.RetryPolicy {
	backoff, _ := time.ParseDuration(c.RetryBackoff)
	return classifier.RetryPolicy{
		MaxAttempts: c.MaxAttempts,
		Backoff:     backoff,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ClassifierConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ClassifierConfig) Merge(overlay *ClassifierConfig) {
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.RetryBackoff != "" {
		c.RetryBackoff = overlay.RetryBackoff
	}
}

func (c *ClassifierConfig) loadDefaults() {
	defaults := classifier.DefaultRetryPolicy()
	if c.MaxAttempts == 0 {
		c.MaxAttempts = defaults.MaxAttempts
	}
	if c.RetryBackoff == "" {
		c.RetryBackoff = defaults.Backoff.String()
	}
}

func (c *ClassifierConfig) loadEnv() {
	if v := os.Getenv(EnvClassifierMaxAttempts); v != "" {
		if attempts, err := strconv.Atoi(v); err == nil {
			c.MaxAttempts = attempts
		}
	}
	if v := os.Getenv(EnvClassifierRetryBackoff); v != "" {
		c.RetryBackoff = v
	}
}

func (c *ClassifierConfig) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1: %d", c.MaxAttempts)
	}
	if _, err := time.ParseDuration(c.RetryBackoff); err != nil {
		return fmt.Errorf("invalid retry_backoff: %w", err)
	}
	return nil
}
