package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// minDocumentAreaRatio is the auto-crop quality gate: detected bounds that
// cover less of the frame than this are rejected.
const minDocumentAreaRatio = 0.2

// detectWidth is the working width for edge analysis. Gradients are computed
// on a downscaled grayscale copy and the result mapped back to full resolution.
const detectWidth = 320

// gradientThreshold is the minimum 8-bit luminance delta treated as an edge.
const gradientThreshold = 24

// edgeRowFraction is the fraction of a row/column that must be edge pixels
// for it to count toward the document bounds.
const edgeRowFraction = 0.04

// detectDocumentBounds estimates the axis-aligned rectangle containing the
// document by finding the span of rows and columns with significant edge
// energy. Returns ok=false when no usable bounds were found.
func detectDocumentBounds(img image.Image) (image.Rectangle, bool) {
	full := img.Bounds()
	if full.Dx() < 2 || full.Dy() < 2 {
		return image.Rectangle{}, false
	}

	small := imaging.Grayscale(imaging.Resize(img, detectWidth, 0, imaging.Box))
	b := small.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return image.Rectangle{}, false
	}

	rowHits := make([]int, h)
	colHits := make([]int, w)

	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			c := luma(small, x, y)
			dx := diff(c, luma(small, x+1, y))
			dy := diff(c, luma(small, x, y+1))
			if dx > gradientThreshold || dy > gradientThreshold {
				rowHits[y]++
				colHits[x]++
			}
		}
	}

	top, bottom, okRows := span(rowHits, int(float64(w)*edgeRowFraction))
	left, right, okCols := span(colHits, int(float64(h)*edgeRowFraction))
	if !okRows || !okCols {
		return image.Rectangle{}, false
	}

	// Map the detection rectangle back to source coordinates.
	sx := float64(full.Dx()) / float64(w)
	sy := float64(full.Dy()) / float64(h)

	rect := image.Rect(
		full.Min.X+int(float64(left)*sx),
		full.Min.Y+int(float64(top)*sy),
		full.Min.X+int(float64(right+1)*sx),
		full.Min.Y+int(float64(bottom+1)*sy),
	).Intersect(full)

	if rect.Empty() {
		return image.Rectangle{}, false
	}

	return rect, true
}

func luma(img *image.NRGBA, x, y int) int {
	c := img.NRGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	return int(c.R)
}

func diff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// span returns the first and last indices whose hit count reaches min.
func span(hits []int, min int) (first, last int, ok bool) {
	if min < 1 {
		min = 1
	}

	first, last = -1, -1
	for i, n := range hits {
		if n >= min {
			if first == -1 {
				first = i
			}
			last = i
		}
	}

	if first == -1 || last <= first {
		return 0, 0, false
	}
	return first, last, true
}
