// Package validation exposes the document validation surface: the upload
// endpoint that drives the orchestration flow, and the session inspection
// and cancellation endpoints.
package validation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/veridoc-co/veridoc/internal/documents"
	"github.com/veridoc-co/veridoc/internal/flow"
	"github.com/veridoc-co/veridoc/internal/sessions"
	"github.com/veridoc-co/veridoc/pkg/guard"
)

const (
	feedbackDownloadFailed  = "No se pudo descargar el archivo. Verifica que la URL sea válida y accesible."
	feedbackUnexpectedError = "Ocurrió un error inesperado. Por favor, intenta de nuevo más tarde."
)

// Request is the validation request body. An empty SessionID starts a new
// session; Label tags the eventual record for the calling orchestrator.
type Request struct {
	FileURL   string  `json:"fileUrl"`
	SessionID string  `json:"sessionId,omitempty"`
	Label     *string `json:"label,omitempty"`
}

// SessionStatus is the session inspection response body.
type SessionStatus struct {
	SessionID     string             `json:"sessionId"`
	FlowState     sessions.FlowState `json:"flowState"`
	DocumentType  documents.Type     `json:"documentType"`
	SidesReceived sessions.Sides     `json:"sidesReceived"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// System defines the public contract for validation operations. Validate
// never returns an error: every failure collapses into an error-status
// Outcome with user-facing feedback.
type System interface {
	Handler() *Handler

	Validate(ctx context.Context, req Request) *flow.Outcome
	Session(ctx context.Context, id string) (*SessionStatus, error)
	Cancel(ctx context.Context, id string) error
}

type system struct {
	runtime *flow.Runtime
	fetcher *Fetcher
	logger  *slog.Logger
}

// New creates the validation system over the flow runtime.
func New(runtime *flow.Runtime, fetcher *Fetcher, logger *slog.Logger) System {
	return &system{
		runtime: runtime,
		fetcher: fetcher,
		logger:  logger.With("system", "validation"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Validate(ctx context.Context, req Request) *flow.Outcome {
	data, mimeType, err := s.fetcher.Fetch(ctx, req.FileURL)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			return errorOutcome(req.SessionID, fe.Feedback)
		}

		s.logger.Error("file download failed", "url", req.FileURL, "error", err)
		return errorOutcome(req.SessionID, feedbackDownloadFailed)
	}

	upload := flow.Upload{
		Data:      data,
		MimeType:  mimeType,
		SessionID: req.SessionID,
		Label:     req.Label,
	}

	outcome, err := flow.Execute(ctx, s.runtime, upload)
	if err != nil {
		s.logger.Error("validation flow failed", "session_id", req.SessionID, "error", err)
		return errorOutcome(req.SessionID, feedbackUnexpectedError)
	}

	return outcome
}

func (s *system) Session(ctx context.Context, id string) (*SessionStatus, error) {
	session, err := s.runtime.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SessionStatus{
		SessionID:     session.ID,
		FlowState:     session.FlowState,
		DocumentType:  session.DocumentType,
		SidesReceived: session.Sides,
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}, nil
}

// Cancel removes the session and its stored blobs. Blob cleanup is best
// effort: a storage failure never blocks session deletion.
func (s *system) Cancel(ctx context.Context, id string) error {
	if _, err := s.runtime.Sessions.Get(ctx, id); err != nil {
		return err
	}

	guard.Swallow(s.logger, "session blob cleanup", func() error {
		_, err := s.runtime.Storage.DeletePrefix(ctx, flow.SessionPrefix(id))
		return err
	})

	return s.runtime.Sessions.Delete(ctx, id)
}

func errorOutcome(sessionID, feedback string) *flow.Outcome {
	return &flow.Outcome{
		SessionID: sessionID,
		Status:    flow.StatusError,
		Feedback:  feedback,
	}
}
