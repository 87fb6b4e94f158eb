package renderer

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var pdfHeader = []byte("%PDF-")

// IsPDF reports whether the buffer starts with the PDF file header.
// Uploaded full-document PDFs that pass this check are stored as-is rather
// than re-rendered.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfHeader)
}

// ValidatePDF gates the full-document passthrough: an uploaded PDF is only
// stored as-is when it parses to at least one page. The header check alone
// accepts truncated uploads that downstream consumers cannot open.
func (r *renderer) ValidatePDF(data []byte) bool {
	valid := PageCount(data) > 0
	if !valid {
		r.logger.Warn("uploaded PDF failed structural validation", "bytes", len(data))
	}
	return valid
}

// PageCount returns the number of pages in a PDF, or 0 when the buffer is
// not a readable PDF.
func PageCount(data []byte) int {
	if !IsPDF(data) {
		return 0
	}

	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0
	}
	return count
}
