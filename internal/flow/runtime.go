package flow

import (
	"log/slog"
	"time"

	"github.com/veridoc-co/veridoc/internal/classifier"
	"github.com/veridoc-co/veridoc/internal/imaging"
	"github.com/veridoc-co/veridoc/internal/records"
	"github.com/veridoc-co/veridoc/internal/renderer"
	"github.com/veridoc-co/veridoc/internal/sessions"
	"github.com/veridoc-co/veridoc/pkg/storage"
)

// Runtime bundles the dependencies that flow nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Sessions     sessions.System
	Records      records.System
	Storage      storage.System
	Classifier   classifier.System
	Renderer     renderer.System
	Conditioner  imaging.Conditioner
	Logger       *slog.Logger
	SignedURLTTL time.Duration
}
