package mandel

import (
	"math"

	merr "github.com/marben/mandel_field/internal/errors"
)

// FieldMap maps a linear pixel index onto a point of the complex plane.
//
// All divisions happen in NewFieldMap: the real-axis samples (left to right)
// and imaginary-axis samples (top to bottom) are materialized once, so Point is
// a modulo, a division and two slice reads.
//
// A FieldMap is never modified after construction and may be shared by any
// number of goroutines.
type FieldMap struct {
	reRes, imRes int
	re           []float64 // increasing, len reRes
	im           []float64 // decreasing, len imRes
}

// NewFieldMap samples the rectangle spanned by upperLeft (minimum real, maximum
// imaginary) and lowerRight (maximum real, minimum imaginary) on a reRes × imRes
// grid. Column x sits at real(upperLeft) + x*(width/reRes), row y at
// imag(upperLeft) - y*(height/imRes); row 0 is the top of the image.
//
// Resolutions must be positive and their product must fit in an int. Corners
// must be finite. Their relative order is not checked: swapped corners produce
// a mirrored map, equal corners a zero-area one.
func NewFieldMap(upperLeft, lowerRight complex128, reRes, imRes int) (*FieldMap, error) {
	if reRes <= 0 || imRes <= 0 {
		return nil, merr.New(merr.ErrCodeInvalidResolution, "resolution must be positive, got %dx%d", reRes, imRes)
	}
	if reRes > math.MaxInt/imRes {
		return nil, merr.New(merr.ErrCodeInvalidResolution, "resolution %dx%d overflows the pixel count", reRes, imRes)
	}
	if !finite(upperLeft) || !finite(lowerRight) {
		return nil, merr.New(merr.ErrCodeInvalidViewport, "viewport corners must be finite, got %v and %v", upperLeft, lowerRight)
	}

	reDelta := (real(lowerRight) - real(upperLeft)) / float64(reRes)
	imDelta := (imag(upperLeft) - imag(lowerRight)) / float64(imRes)

	re := make([]float64, reRes)
	for x := range re {
		re[x] = real(upperLeft) + float64(x)*reDelta
	}

	im := make([]float64, imRes)
	for y := range im {
		im[y] = imag(upperLeft) - float64(y)*imDelta
	}

	return &FieldMap{
		reRes: reRes,
		imRes: imRes,
		re:    re,
		im:    im,
	}, nil
}

// Point returns the complex coordinate of pixel index, counted row-major from
// the top-left corner. Indexes outside [0, Limit()) are rejected.
func (fm *FieldMap) Point(index int) (complex128, error) {
	if index < 0 || index >= fm.Limit() {
		return 0, merr.New(merr.ErrCodeIndexOutOfRange, "pixel index %d outside [0, %d)", index, fm.Limit())
	}
	x, y := index%fm.reRes, index/fm.reRes
	return complex(fm.re[x], fm.im[y]), nil
}

// Limit is the number of pixels in the map.
func (fm *FieldMap) Limit() int {
	return fm.reRes * fm.imRes
}

// Resolution returns the number of columns and rows.
func (fm *FieldMap) Resolution() (re, im int) {
	return fm.reRes, fm.imRes
}

// Re returns a copy of the real-axis samples, one per column.
func (fm *FieldMap) Re() []float64 {
	return append([]float64(nil), fm.re...)
}

// Im returns a copy of the imaginary-axis samples, one per row.
func (fm *FieldMap) Im() []float64 {
	return append([]float64(nil), fm.im...)
}

func finite(c complex128) bool {
	for _, f := range [2]float64{real(c), imag(c)} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
