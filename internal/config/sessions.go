package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	EnvSessionsAddr     = "VERIDOC_SESSIONS_ADDR"
	EnvSessionsPassword = "VERIDOC_SESSIONS_PASSWORD"
	EnvSessionsDB       = "VERIDOC_SESSIONS_DB"
	EnvSessionsTTL      = "VERIDOC_SESSIONS_TTL"
)

// SessionsConfig holds Redis connection parameters and the session lifetime.
type SessionsConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      string `toml:"ttl"`
}

// Options returns the Redis client options for the configured connection.
func (c *SessionsConfig) Options() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

// TTLDuration returns the session lifetime as a time.Duration.
func (c *SessionsConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *SessionsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *SessionsConfig) Merge(overlay *SessionsConfig) {
	if overlay.Addr != "" {
		c.Addr = overlay.Addr
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.DB != 0 {
		c.DB = overlay.DB
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
}

func (c *SessionsConfig) loadDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.TTL == "" {
		c.TTL = "30m"
	}
}

func (c *SessionsConfig) loadEnv() {
	if v := os.Getenv(EnvSessionsAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvSessionsPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvSessionsDB); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.DB = db
		}
	}
	if v := os.Getenv(EnvSessionsTTL); v != "" {
		c.TTL = v
	}
}

func (c *SessionsConfig) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}

	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %s", c.TTL)
	}

	return nil
}
