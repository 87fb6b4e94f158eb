// Package imaging implements the deterministic conditioning pipeline applied
// to document photos before classification: auto-crop, contrast, denoise,
// sharpen. The pipeline never fails — each stage degrades to its input and
// an undecodable payload passes through untouched.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/veridoc-co/veridoc/pkg/guard"
)

const jpegQuality = 92

// Conditioner prepares raw image bytes for classification.
type Conditioner interface {
	Condition(data []byte) []byte
}

// Pipeline is the production Conditioner. The zero value is not usable;
// construct with New.
type Pipeline struct {
	logger *slog.Logger
}

// New creates a conditioning pipeline.
func New(logger *slog.Logger) *Pipeline {
	return &Pipeline{logger: logger.With("system", "imaging")}
}

// Condition runs the enhancement stages over a decoded image and re-encodes
// it as JPEG. Input bytes are returned unchanged when the payload cannot be
// decoded or the final encode fails; individual stage failures keep that
// stage's input so downstream stages still run.
func (p *Pipeline) Condition(data []byte) []byte {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		p.logger.Warn("could not decode image, returning original", "error", err)
		return data
	}

	img = guard.Attempt(p.logger, "auto_crop", img, p.autoCrop)
	img = guard.Attempt(p.logger, "contrast", img, p.contrast)
	img = guard.Attempt(p.logger, "denoise", img, p.denoise)
	img = guard.Attempt(p.logger, "sharpen", img, p.sharpen)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		p.logger.Warn("jpeg encode failed, returning original", "error", err)
		return data
	}

	return buf.Bytes()
}

func (p *Pipeline) contrast(img image.Image) (image.Image, error) {
	return imaging.AdjustContrast(img, 12), nil
}

func (p *Pipeline) denoise(img image.Image) (image.Image, error) {
	// Light gaussian pass; heavy smoothing would erase microtext on cédulas.
	return imaging.Blur(img, 0.6), nil
}

func (p *Pipeline) sharpen(img image.Image) (image.Image, error) {
	return imaging.Sharpen(img, 0.9), nil
}

func (p *Pipeline) autoCrop(img image.Image) (image.Image, error) {
	rect, ok := detectDocumentBounds(img)
	if !ok {
		return img, nil
	}

	area := float64(rect.Dx()) * float64(rect.Dy())
	frame := float64(img.Bounds().Dx()) * float64(img.Bounds().Dy())
	if frame == 0 {
		return nil, fmt.Errorf("empty frame")
	}

	// Quality gate: the detected document must cover at least 20% of the
	// frame, otherwise the original framing is kept.
	if area/frame < minDocumentAreaRatio {
		return img, nil
	}

	return imaging.Crop(img, rect), nil
}
