package classifier

import (
	"testing"

	"github.com/veridoc-co/veridoc/internal/documents"
)

func TestFallback(t *testing.T) {
	result := Fallback()

	if result.DocumentType != documents.TypeUnknown {
		t.Errorf("type: got %s, want %s", result.DocumentType, documents.TypeUnknown)
	}
	if result.DocumentSide != documents.SideUnknown {
		t.Errorf("side: got %s, want %s", result.DocumentSide, documents.SideUnknown)
	}
	if result.IsValidDocument {
		t.Error("IsValidDocument: got true, want false")
	}
	if result.IsLegible {
		t.Error("IsLegible: got true, want false")
	}
	if result.UserFeedback == "" {
		t.Error("UserFeedback: got empty, want feedback message")
	}
}

func TestNormalizeClampsUnknownValues(t *testing.T) {
	result := Result{
		DocumentType: documents.Type("passport"),
		DocumentSide: documents.Side("sideways"),
	}

	result.normalize()

	if result.DocumentType != documents.TypeUnknown {
		t.Errorf("type: got %s, want %s", result.DocumentType, documents.TypeUnknown)
	}
	if result.DocumentSide != documents.SideUnknown {
		t.Errorf("side: got %s, want %s", result.DocumentSide, documents.SideUnknown)
	}
}

func TestNormalizePreservesDeclaredValues(t *testing.T) {
	result := Result{
		DocumentType: documents.CedulaCiudadania,
		DocumentSide: documents.SideFront,
	}

	result.normalize()

	if result.DocumentType != documents.CedulaCiudadania {
		t.Errorf("type: got %s, want %s", result.DocumentType, documents.CedulaCiudadania)
	}
	if result.DocumentSide != documents.SideFront {
		t.Errorf("side: got %s, want %s", result.DocumentSide, documents.SideFront)
	}
}
