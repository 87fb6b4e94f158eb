package renderer_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"testing"

	"github.com/veridoc-co/veridoc/internal/documents"
	"github.com/veridoc-co/veridoc/internal/renderer"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 180, B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestRenderTwoSided(t *testing.T) {
	r := renderer.New(testLogger())
	img := testJPEG(t)

	out, err := r.RenderTwoSided(img, img, documents.CedulaCiudadania)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !renderer.IsPDF(out) {
		t.Error("output does not start with the PDF header")
	}
}

func TestRenderSinglePage(t *testing.T) {
	r := renderer.New(testLogger())

	out, err := r.RenderSinglePage(testJPEG(t), documents.RegistroCivilNacimiento)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !renderer.IsPDF(out) {
		t.Error("output does not start with the PDF header")
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"pdf header", []byte("%PDF-1.7\n..."), true},
		{"jpeg bytes", []byte{0xFF, 0xD8, 0xFF}, false},
		{"empty", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderer.IsPDF(tc.data); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPageCountNonPDF(t *testing.T) {
	if got := renderer.PageCount([]byte("plain text")); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestValidatePDF(t *testing.T) {
	r := renderer.New(testLogger())

	out, err := r.RenderSinglePage(testJPEG(t), documents.CedulaCiudadania)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.ValidatePDF(out) {
		t.Error("rendered document: got invalid, want valid")
	}
	if r.ValidatePDF([]byte("%PDF-1.7 truncated")) {
		t.Error("truncated header-only buffer: got valid, want invalid")
	}
	if r.ValidatePDF(nil) {
		t.Error("empty buffer: got valid, want invalid")
	}
}
