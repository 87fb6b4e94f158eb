// Package classifier implements the document classification client. It wraps
// a vision-capable model agent, constrains its output to a structured verdict,
// and absorbs transport or parse failures into a deterministic fallback so
// callers never observe an error.
package classifier

import "github.com/veridoc-co/veridoc/internal/documents"

// Result is the structured verdict of a single classification call. It is
// produced and consumed within one orchestration pass and never persisted.
type Result struct {
	DocumentType      documents.Type          `json:"documentType"`
	DocumentSide      documents.Side          `json:"documentSide"`
	IsValidDocument   bool                    `json:"isValidDocument"`
	IsLegible         bool                    `json:"isLegible"`
	ContainsBothSides bool                    `json:"containsBothSides"`
	UserFeedback      string                  `json:"userFeedback"`
	ExtractedData     documents.ExtractedData `json:"extractedData"`
}

// fallbackFeedback is returned when every classification attempt failed.
const fallbackFeedback = "No pudimos analizar el documento en este momento. Por favor, intenta de nuevo."

// Fallback is the deterministic result returned after retry exhaustion:
// unknown, invalid, illegible, with empty extraction. Indistinguishable from
// a genuine invalid-document verdict by contract.
func Fallback() Result {
	return Result{
		DocumentType: documents.TypeUnknown,
		DocumentSide: documents.SideUnknown,
		UserFeedback: fallbackFeedback,
	}
}

var knownTypes = map[documents.Type]bool{
	documents.CedulaCiudadania:        true,
	documents.TarjetaIdentidad:        true,
	documents.RegistroCivilNacimiento: true,
	documents.RegistroCivilMatrimonio: true,
	documents.RegistroCivilDefuncion:  true,
	documents.TypeUnknown:             true,
}

var knownSides = map[documents.Side]bool{
	documents.SideFront:        true,
	documents.SideBack:         true,
	documents.SideFullDocument: true,
	documents.SideSinglePage:   true,
	documents.SideUnknown:      true,
}

// normalize clamps out-of-enum values the model may emit despite the schema
// instructions, so downstream logic only ever sees declared constants.
func (r *Result) normalize() {
	if !knownTypes[r.DocumentType] {
		r.DocumentType = documents.TypeUnknown
	}
	if !knownSides[r.DocumentSide] {
		r.DocumentSide = documents.SideUnknown
	}
}
