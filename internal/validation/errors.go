package validation

import (
	"errors"
	"net/http"

	"github.com/veridoc-co/veridoc/internal/sessions"
)

// Domain errors for validation operations.
var (
	ErrMissingFileURL  = errors.New("fileUrl is required")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrSessionNotFound = errors.New("Sesión no encontrada o expirada.")
)

// FetchError is a download policy violation whose feedback is returned
// verbatim to the caller.
type FetchError struct {
	Feedback string
	Err      error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// MapHTTPStatus maps validation errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, sessions.ErrNotFound), errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingFileURL):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
