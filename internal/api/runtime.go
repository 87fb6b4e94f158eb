package api

import (
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/veridoc-co/veridoc/internal/classifier"
	"github.com/veridoc-co/veridoc/internal/config"
	"github.com/veridoc-co/veridoc/internal/infrastructure"
	"github.com/veridoc-co/veridoc/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent           gaconfig.AgentConfig
	Retry           classifier.RetryPolicy
	Pagination      pagination.Config
	SignedURLTTL    time.Duration
	MaxDownloadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Sessions:  infra.Sessions,
		},
		Agent:           cfg.Agent,
		Retry:           cfg.Classifier.RetryPolicy(),
		Pagination:      cfg.API.Pagination,
		SignedURLTTL:    cfg.Storage.URLTTL(),
		MaxDownloadSize: cfg.API.MaxDownloadSizeBytes(),
	}
}
