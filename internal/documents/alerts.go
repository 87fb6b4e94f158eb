package documents

import "fmt"

// ConfidenceThreshold is the minimum extraction confidence a critical field
// must reach to avoid a manual-review alert.
const ConfidenceThreshold = 0.85

// retryAlertCount is the number of low-confidence alerts at which a
// completion is downgraded to a better-image request.
const retryAlertCount = 2

// BuildAlerts returns one Spanish alert message per critical field of the
// document type whose value was extracted below the confidence threshold.
// Fields with a nil value never alert; absence is handled by legibility checks.
func BuildAlerts(extracted ExtractedData, docType Type) []string {
	critical, ok := CriticalFields[docType]
	if !ok {
		critical = defaultCriticalFields
	}

	var alerts []string
	for _, name := range critical {
		field := extracted.Field(name)
		if field == nil || field.Value == nil {
			continue
		}
		if field.Confidence < ConfidenceThreshold {
			label, ok := FieldLabels[name]
			if !ok {
				label = name
			}
			pct := int(field.Confidence * 100)
			alerts = append(alerts, fmt.Sprintf("Confianza baja en '%s' (%d%%). Verifique manualmente.", label, pct))
		}
	}

	return alerts
}

// ShouldRetry reports whether the alert set is severe enough to downgrade a
// completion and request a better capture.
func ShouldRetry(alerts []string) bool {
	return len(alerts) >= retryAlertCount
}
