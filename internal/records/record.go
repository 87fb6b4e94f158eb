// Package records persists validated document data indefinitely, outliving
// the upload sessions that produced it.
package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-co/veridoc/internal/documents"
)

// Record is a completed validation result keyed by the session that
// produced it. Extracted data is stored as JSONB and survives session
// expiration.
type Record struct {
	ID            uuid.UUID               `json:"id"`
	SessionID     string                  `json:"session_id"`
	DocumentType  documents.Type          `json:"document_type"`
	Label         string                  `json:"label"`
	ExtractedData documents.ExtractedData `json:"extracted_data"`
	Alerts        []string                `json:"alerts"`
	PDFKey        string                  `json:"pdf_key"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// SaveCommand contains the data required to persist a validation result.
type SaveCommand struct {
	SessionID     string
	DocumentType  documents.Type
	Label         string
	ExtractedData documents.ExtractedData
	Alerts        []string
	PDFKey        string
}
