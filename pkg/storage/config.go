package storage

import (
	"fmt"
	"os"
	"time"
)

// Config defines blob storage settings.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	SignedURLTTL     string `toml:"signed_url_ttl"`
}

// Env maps environment variable names to Config fields, allowing the host
// application to define its own variable naming convention.
type Env struct {
	ContainerName    string
	ConnectionString string
	SignedURLTTL     string
}

// Finalize applies defaults, loads environment variables, and validates settings.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

// Merge overlays non-zero values from the overlay config.
func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.SignedURLTTL != "" {
		c.SignedURLTTL = overlay.SignedURLTTL
	}
}

// URLTTL returns the signed URL lifetime as a time.Duration. Call after Finalize.
func (c *Config) URLTTL() time.Duration {
	d, _ := time.ParseDuration(c.SignedURLTTL)
	return d
}

func (c *Config) loadDefaults() {
	if c.SignedURLTTL == "" {
		c.SignedURLTTL = "1h"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.ContainerName); v != "" {
		c.ContainerName = v
	}
	if v := os.Getenv(env.ConnectionString); v != "" {
		c.ConnectionString = v
	}
	if v := os.Getenv(env.SignedURLTTL); v != "" {
		c.SignedURLTTL = v
	}
}

func (c *Config) validate() error {
	if c.ConnectionString == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.ContainerName == "" {
		return fmt.Errorf("container name is required")
	}
	if _, err := time.ParseDuration(c.SignedURLTTL); err != nil {
		return fmt.Errorf("invalid signed_url_ttl %q: %w", c.SignedURLTTL, err)
	}
	return nil
}
