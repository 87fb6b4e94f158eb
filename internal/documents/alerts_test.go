package documents_test

import (
	"testing"

	"github.com/veridoc-co/veridoc/internal/documents"
)

func TestBuildAlertsLowConfidence(t *testing.T) {
	extracted := documents.ExtractedData{
		NumeroDocumento: field("123456789", 0.95),
		Nombres:         field("María", 0.6),
		Apellidos:       field("Gómez", 0.9),
		FechaNacimiento: field("1990-01-01", 0.92),
	}

	alerts := documents.BuildAlerts(extracted, documents.CedulaCiudadania)

	if len(alerts) != 1 {
		t.Fatalf("alerts: got %d, want 1", len(alerts))
	}
	want := "Confianza baja en 'Nombres' (60%). Verifique manualmente."
	if alerts[0] != want {
		t.Errorf("alert: got %q, want %q", alerts[0], want)
	}
}

func TestBuildAlertsThresholdBoundary(t *testing.T) {
	atThreshold := documents.ExtractedData{
		NumeroDocumento: field("123", 0.85),
	}
	if alerts := documents.BuildAlerts(atThreshold, documents.CedulaCiudadania); len(alerts) != 0 {
		t.Errorf("at threshold: got %d alerts, want 0", len(alerts))
	}

	belowThreshold := documents.ExtractedData{
		NumeroDocumento: field("123", 0.84),
	}
	if alerts := documents.BuildAlerts(belowThreshold, documents.CedulaCiudadania); len(alerts) != 1 {
		t.Errorf("below threshold: got %d alerts, want 1", len(alerts))
	}
}

func TestBuildAlertsNilValuesNeverAlert(t *testing.T) {
	alerts := documents.BuildAlerts(documents.ExtractedData{}, documents.CedulaCiudadania)
	if len(alerts) != 0 {
		t.Errorf("got %d alerts, want 0", len(alerts))
	}
}

func TestBuildAlertsOnlyCriticalFields(t *testing.T) {
	extracted := documents.ExtractedData{
		NumeroDocumento: field("123", 0.95),
		Nombres:         field("Juan", 0.95),
		Apellidos:       field("Pérez", 0.95),
		FechaNacimiento: field("1985-03-12", 0.95),
		LugarExpedicion: field("Bogotá", 0.1),
	}

	alerts := documents.BuildAlerts(extracted, documents.CedulaCiudadania)
	if len(alerts) != 0 {
		t.Errorf("non-critical field alerted: got %v, want none", alerts)
	}
}

func TestBuildAlertsPerTypeCriticalSet(t *testing.T) {
	extracted := documents.ExtractedData{
		NumeroDocumento: field("123", 0.95),
		Nombres:         field("Ana", 0.95),
		Apellidos:       field("López", 0.95),
		FechaNacimiento: field("2015-06-01", 0.95),
		NombresPadre:    field("Carlos", 0.5),
	}

	if alerts := documents.BuildAlerts(extracted, documents.RegistroCivilNacimiento); len(alerts) != 1 {
		t.Errorf("registro civil: got %d alerts, want 1", len(alerts))
	}
	if alerts := documents.BuildAlerts(extracted, documents.CedulaCiudadania); len(alerts) != 0 {
		t.Errorf("cédula: got %d alerts, want 0", len(alerts))
	}
}

func TestBuildAlertsUnknownTypeUsesDefaults(t *testing.T) {
	extracted := documents.ExtractedData{
		Nombres:        field("Ana", 0.5),
		FechaDefuncion: field("2020-01-01", 0.5),
	}

	alerts := documents.BuildAlerts(extracted, documents.TypeUnknown)
	if len(alerts) != 1 {
		t.Errorf("got %d alerts, want 1", len(alerts))
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name   string
		alerts []string
		want   bool
	}{
		{"none", nil, false},
		{"single", []string{"a"}, false},
		{"two", []string{"a", "b"}, true},
		{"three", []string{"a", "b", "c"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := documents.ShouldRetry(tc.alerts); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
