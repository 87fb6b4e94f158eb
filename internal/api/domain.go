package api

import (
	"github.com/veridoc-co/veridoc/internal/classifier"
	"github.com/veridoc-co/veridoc/internal/flow"
	"github.com/veridoc-co/veridoc/internal/imaging"
	"github.com/veridoc-co/veridoc/internal/records"
	"github.com/veridoc-co/veridoc/internal/renderer"
	"github.com/veridoc-co/veridoc/internal/validation"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Validation validation.System
	Records    records.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	recordsSystem := records.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	flowRuntime := &flow.Runtime{
		Sessions:     runtime.Sessions,
		Records:      recordsSystem,
		Storage:      runtime.Storage,
		Classifier:   classifier.New(runtime.Agent, runtime.Retry, runtime.Logger),
		Renderer:     renderer.New(runtime.Logger),
		Conditioner:  imaging.New(runtime.Logger),
		Logger:       runtime.Logger,
		SignedURLTTL: runtime.SignedURLTTL,
	}

	validationSystem := validation.New(
		flowRuntime,
		validation.NewFetcher(runtime.MaxDownloadSize, runtime.Logger),
		runtime.Logger,
	)

	return &Domain{
		Validation: validationSystem,
		Records:    recordsSystem,
	}
}
