package validation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/veridoc-co/veridoc/internal/sessions"
	"github.com/veridoc-co/veridoc/pkg/handlers"
	"github.com/veridoc-co/veridoc/pkg/routes"
)

// Handler provides HTTP endpoints for validation operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "validation"),
	}
}

// Routes returns the route group definition for validation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
			{Method: "GET", Pattern: "/session/{id}", Handler: h.Session},
			{Method: "DELETE", Pattern: "/session/{id}", Handler: h.Cancel},
		},
	}
}

// Validate downloads the referenced file and runs it through the
// orchestration flow. The response is always 200 with a flow Outcome;
// failures surface as error-status outcomes, never transport errors.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if req.FileURL == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingFileURL)
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("validate panicked", "panic", rec)
			handlers.RespondJSON(
				w, http.StatusOK,
				errorOutcome(req.SessionID, feedbackUnexpectedError),
			)
		}
	}()

	outcome := h.sys.Validate(r.Context(), req)
	handlers.RespondJSON(w, http.StatusOK, outcome)
}

// Session returns the current state of a validation session.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	status, err := h.sys.Session(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			err = ErrSessionNotFound
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}

// Cancel removes a session and its stored files.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.sys.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			err = ErrSessionNotFound
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message":   "Sesión eliminada exitosamente.",
		"sessionId": id,
	})
}
