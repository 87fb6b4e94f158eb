package records

import (
	"encoding/json"
	"net/url"

	"github.com/veridoc-co/veridoc/pkg/query"
	"github.com/veridoc-co/veridoc/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "validation_records", "r").
	Project("id", "ID").
	Project("session_id", "SessionID").
	Project("document_type", "DocumentType").
	Project("label", "Label").
	Project("extracted_data", "ExtractedData").
	Project("alerts", "Alerts").
	Project("pdf_key", "PDFKey").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for record queries.
// Nil fields are ignored. SessionID and DocumentType use exact matching.
// Label uses case-insensitive contains matching.
type Filters struct {
	SessionID    *string `json:"session_id,omitempty"`
	DocumentType *string `json:"document_type,omitempty"`
	Label        *string `json:"label,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("SessionID", f.SessionID).
		WhereEquals("DocumentType", f.DocumentType).
		WhereContains("Label", f.Label)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if sid := values.Get("session_id"); sid != "" {
		f.SessionID = &sid
	}

	if dt := values.Get("document_type"); dt != "" {
		f.DocumentType = &dt
	}

	if l := values.Get("label"); l != "" {
		f.Label = &l
	}

	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var (
		rec       Record
		extracted []byte
		alerts    []byte
	)

	err := s.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.DocumentType,
		&rec.Label,
		&extracted,
		&alerts,
		&rec.PDFKey,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return rec, err
	}

	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &rec.ExtractedData); err != nil {
			return rec, err
		}
	}

	if len(alerts) > 0 {
		if err := json.Unmarshal(alerts, &rec.Alerts); err != nil {
			return rec, err
		}
	}

	return rec, nil
}
