// Package renderer composes validated document captures into a single PDF
// artifact and provides PDF well-formedness checks for passthrough uploads.
package renderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/veridoc-co/veridoc/internal/documents"
)

// Layout constants in millimeters on an A4 page (210x297, 20mm margins).
const (
	marginX     = 20
	usableWidth = 170
	halfHeight  = 115
	fullHeight  = 230
)

// System renders final document artifacts.
type System interface {
	// RenderTwoSided stacks the front and back captures on one labeled page.
	RenderTwoSided(front, back []byte, docType documents.Type) ([]byte, error)
	// RenderSinglePage lays a single capture out on a full page.
	RenderSinglePage(img []byte, docType documents.Type) ([]byte, error)
	// ValidatePDF reports whether the buffer is a structurally readable PDF.
	ValidatePDF(data []byte) bool
}

type renderer struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a PDF renderer.
func New(logger *slog.Logger) System {
	return &renderer{
		logger: logger.With("system", "renderer"),
		now:    time.Now,
	}
}

func (r *renderer) RenderTwoSided(front, back []byte, docType documents.Type) ([]byte, error) {
	pdf, tr := r.newPage(docType)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Cara Frontal"), "", 1, "L", false, 0, "")
	r.placeImage(pdf, tr, front, "front", marginX, pdf.GetY(), usableWidth, halfHeight)
	pdf.SetY(pdf.GetY() + halfHeight + 5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Cara Trasera"), "", 1, "L", false, 0, "")
	r.placeImage(pdf, tr, back, "back", marginX, pdf.GetY(), usableWidth, halfHeight)

	return output(pdf)
}

func (r *renderer) RenderSinglePage(img []byte, docType documents.Type) ([]byte, error) {
	pdf, tr := r.newPage(docType)
	pdf.Ln(5)

	r.placeImage(pdf, tr, img, "page", marginX, pdf.GetY(), usableWidth, fullHeight)

	return output(pdf)
}

// newPage creates an A4 document with the type title and UTC date header.
func (r *renderer) newPage(docType documents.Type) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(docType.Label()), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	date := r.now().UTC().Format("2006-01-02 15:04 UTC")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Fecha: %s", date)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	return pdf, tr
}

// placeImage scales the image to fit the box preserving aspect ratio and
// centers it horizontally. Placement failure degrades to an inline note so
// the remaining sections still render.
func (r *renderer) placeImage(pdf *fpdf.Fpdf, tr func(string) string, data []byte, name string, x, y, maxW, maxH float64) {
	if err := placeImage(pdf, data, name, x, y, maxW, maxH); err != nil {
		r.logger.Error("failed to place image in PDF", "section", name, "error", err)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Text(x, y+10, tr("[Error al procesar imagen]"))
	}
}

func placeImage(pdf *fpdf.Fpdf, data []byte, name string, x, y, maxW, maxH float64) error {
	opts := fpdf.ImageOptions{ImageType: imageType(data)}

	info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("register image: %w", err)
	}
	if info == nil {
		return fmt.Errorf("register image: no image info")
	}

	imgW, imgH := info.Extent()
	if imgW <= 0 || imgH <= 0 {
		return fmt.Errorf("invalid image extent %fx%f", imgW, imgH)
	}

	scale := min(maxW/imgW, maxH/imgH)
	finalW := imgW * scale
	finalH := imgH * scale
	xOffset := x + (maxW-finalW)/2

	pdf.ImageOptions(name, xOffset, y, finalW, finalH, false, opts, 0, "")
	return pdf.Error()
}

func imageType(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	default:
		return "JPG"
	}
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
