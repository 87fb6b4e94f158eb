// Package flow orchestrates a single document upload through session
// resolution, image conditioning, classification, and state advancement.
// The pass is modeled as a state graph so each stage stays independently
// testable and the routing between them stays explicit.
package flow

import (
	"github.com/veridoc-co/veridoc/internal/documents"
)

// State bag keys shared between graph nodes.
const (
	KeyUpload         = "upload"
	KeySession        = "session"
	KeyConditioned    = "conditioned"
	KeyClassification = "classification"
	KeyOutcome        = "outcome"
)

// Status is the flow-level verdict returned to the caller. It is distinct
// from the session's flow state: a session can terminalize as COMPLETED
// while the caller is told the capture needs a better image.
type Status string

const (
	StatusNeedsBackSide    Status = "needs_back_side"
	StatusNeedsFrontSide   Status = "needs_front_side"
	StatusNeedsBetterImage Status = "needs_better_image"
	StatusCompleted        Status = "completed"
	StatusInvalidDocument  Status = "invalid_document"
	StatusError            Status = "error"
)

// Upload is the input to a single orchestration pass. An empty SessionID
// starts a new session.
type Upload struct {
	Data      []byte
	MimeType  string
	SessionID string
	Label     *string
}

// IsPDF reports whether the upload carries a PDF payload.
func (u Upload) IsPDF() bool {
	return u.MimeType == "application/pdf"
}

// Outcome is the result of one orchestration pass, serialized directly as
// the validation response body.
type Outcome struct {
	SessionID     string                   `json:"sessionId"`
	Status        Status                   `json:"status"`
	DocumentType  documents.Type           `json:"documentType,omitempty"`
	DetectedSide  documents.Side           `json:"detectedSide,omitempty"`
	IsValid       bool                     `json:"isValid"`
	IsLegible     bool                     `json:"isLegible"`
	Feedback      string                   `json:"feedback,omitempty"`
	GeneratedPDF  *string                  `json:"generatedPdfUrl,omitempty"`
	ExtractedData *documents.ExtractedData `json:"extractedData,omitempty"`
	Alerts        []string                 `json:"alerts,omitempty"`
	Label         *string                  `json:"label,omitempty"`
}
