// Package sessions implements the per-attempt validation session record and
// its Redis-backed store. Sessions expire after a fixed TTL; expiry is
// enforced lazily at read time in addition to the store's native key TTL.
package sessions

import (
	"time"

	"github.com/veridoc-co/veridoc/internal/documents"
)

// FlowState is the position of a session within the capture flow.
type FlowState string

// Flow states. Completed and Error are terminal. ProcessingPDF is reserved
// and never produced by current transitions.
const (
	StateAwaitingFirstUpload FlowState = "AWAITING_FIRST_UPLOAD"
	StateAwaitingSecondSide  FlowState = "AWAITING_SECOND_SIDE"
	StateProcessingPDF       FlowState = "PROCESSING_PDF"
	StateCompleted           FlowState = "COMPLETED"
	StateError               FlowState = "ERROR"
)

// Sides records the storage path of each captured face. A filled slot is
// never cleared within the session's life.
type Sides struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// Session is one active validation attempt.
type Session struct {
	ID                 string                   `json:"session_id"`
	FlowState          FlowState                `json:"flow_state"`
	DocumentType       documents.Type           `json:"document_type"`
	Sides              Sides                    `json:"sides_received"`
	SinglePagePath     *string                  `json:"single_page_path"`
	FinalPDFPath       *string                  `json:"final_pdf_path"`
	ExtractedFirstSide *documents.ExtractedData `json:"extracted_data_first_side,omitempty"`
	Label              *string                  `json:"label,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
	ExpiresAt          time.Time                `json:"expires_at"`
}

// Expired reports whether the session's lifetime has elapsed at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
