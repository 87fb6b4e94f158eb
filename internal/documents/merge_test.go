package documents_test

import (
	"reflect"
	"testing"

	"github.com/veridoc-co/veridoc/internal/documents"
)

func field(value string, confidence float64) documents.ExtractedField {
	return documents.ExtractedField{Value: &value, Confidence: confidence}
}

func TestMergeSoleValueWins(t *testing.T) {
	first := documents.ExtractedData{
		NumeroDocumento: field("123456789", 0.95),
	}
	second := documents.ExtractedData{
		Nombres: field("María", 0.9),
	}

	merged := documents.Merge(first, second)

	if merged.NumeroDocumento.Value == nil || *merged.NumeroDocumento.Value != "123456789" {
		t.Errorf("numeroDocumento: got %v, want 123456789", merged.NumeroDocumento.Value)
	}
	if merged.Nombres.Value == nil || *merged.Nombres.Value != "María" {
		t.Errorf("nombres: got %v, want María", merged.Nombres.Value)
	}
}

func TestMergeHigherConfidenceWins(t *testing.T) {
	first := documents.ExtractedData{
		Apellidos: field("Gómez", 0.9),
	}
	second := documents.ExtractedData{
		Apellidos: field("Gomez", 0.6),
	}

	merged := documents.Merge(first, second)

	if *merged.Apellidos.Value != "Gómez" {
		t.Errorf("apellidos: got %s, want Gómez", *merged.Apellidos.Value)
	}
	if merged.Apellidos.Confidence != 0.9 {
		t.Errorf("confidence: got %f, want 0.9", merged.Apellidos.Confidence)
	}
}

func TestMergeTieFavorsSecond(t *testing.T) {
	first := documents.ExtractedData{
		Nombres: field("Juan", 0.8),
	}
	second := documents.ExtractedData{
		Nombres: field("Juán", 0.8),
	}

	merged := documents.Merge(first, second)

	if *merged.Nombres.Value != "Juán" {
		t.Errorf("nombres: got %s, want Juán", *merged.Nombres.Value)
	}
}

func TestMergeBothNil(t *testing.T) {
	merged := documents.Merge(documents.ExtractedData{}, documents.ExtractedData{})

	for _, name := range documents.FieldNames {
		if f := merged.Field(name); f.Value != nil {
			t.Errorf("field %s: got %v, want nil", name, *f.Value)
		}
	}
}

func TestMergeIdempotent(t *testing.T) {
	data := documents.ExtractedData{
		NumeroDocumento: field("123456789", 0.95),
		Nombres:         field("María", 0.9),
		Apellidos:       field("Gómez", 0.6),
		FechaNacimiento: field("1990-01-01", 0.7),
	}

	merged := documents.Merge(data, data)

	if !reflect.DeepEqual(merged, data) {
		t.Errorf("got %+v, want input unchanged", merged)
	}
}

func TestMergeWithEmptyIsIdentity(t *testing.T) {
	data := documents.ExtractedData{
		NumeroDocumento: field("42", 0.99),
		FechaNacimiento: field("1990-01-01", 0.7),
	}

	merged := documents.Merge(data, documents.ExtractedData{})

	if *merged.NumeroDocumento.Value != "42" {
		t.Errorf("numeroDocumento: got %s, want 42", *merged.NumeroDocumento.Value)
	}
	if *merged.FechaNacimiento.Value != "1990-01-01" {
		t.Errorf("fechaNacimiento: got %s, want 1990-01-01", *merged.FechaNacimiento.Value)
	}
}
