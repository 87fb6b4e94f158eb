package documents

// Merge combines the extractions from two sides of the same document.
// For each field: a sole non-nil value wins; when both sides carry a value,
// the higher confidence wins with the second side taking ties. Merging a
// value with itself is a no-op.
func Merge(first, second ExtractedData) ExtractedData {
	var merged ExtractedData

	for _, name := range FieldNames {
		f := first.Field(name)
		s := second.Field(name)
		out := merged.Field(name)

		switch {
		case s.Value != nil && f.Value == nil:
			*out = *s
		case f.Value != nil && s.Value == nil:
			*out = *f
		case f.Value != nil && s.Value != nil:
			if s.Confidence >= f.Confidence {
				*out = *s
			} else {
				*out = *f
			}
		default:
			*out = *f
		}
	}

	return merged
}
