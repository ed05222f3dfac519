// Package render drives the escape-time core over a whole field map and turns
// the samples into an image.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	mandel "github.com/marben/mandel_field"
	merr "github.com/marben/mandel_field/internal/errors"
)

// Palette maps an escape-time byte to a pixel color.
type Palette string

const (
	// Gray uses the byte as intensity. Points that never escaped are black.
	Gray Palette = "gray"
	// HSV spreads the byte around the hue circle. 0 stays black.
	HSV Palette = "hsv"
)

// ParsePalette returns the palette called name, ignoring case.
func ParsePalette(name string) (Palette, error) {
	switch p := Palette(strings.ToLower(name)); p {
	case Gray, HSV:
		return p, nil
	}
	return "", merr.New(merr.ErrCodeInvalidInput, "unknown palette %q (want gray or hsv)", name)
}

// Samples writes EscapeTime(fm.Point(i), maxIters) to dst[i] for every pixel
// of fm, walking indexes in order. ctx is checked once per row.
func Samples(ctx context.Context, fm *mandel.FieldMap, maxIters int, dst []byte) error {
	return samples(ctx, fm, maxIters, dst, nil)
}

func samples(ctx context.Context, fm *mandel.FieldMap, maxIters int, dst []byte, onRow func(y, rows int)) error {
	limit := fm.Limit()
	if len(dst) < limit {
		return merr.New(merr.ErrCodeInvalidInput, "sample buffer holds %d bytes, need %d", len(dst), limit)
	}

	cols, rows := fm.Resolution()
	for y := range rows {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render row %d: %w", y, err)
		}
		for i := y * cols; i < (y+1)*cols; i++ {
			c, err := fm.Point(i)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			dst[i] = mandel.EscapeTime(c, maxIters)
		}
		if onRow != nil {
			onRow(y, rows)
		}
	}
	return nil
}

// Renderer renders a field map into an image.
// The zero value renders gray-scale without progress reporting.
type Renderer struct {
	Palette Palette
	OnRow   func(y, rows int) // called after each finished row; optional
}

var _ mandel.Renderer = Renderer{}

// Render implements mandel.Renderer. Gray yields an *image.Gray whose pixel
// values are the raw samples; HSV yields an *image.RGBA.
func (r Renderer) Render(ctx context.Context, fm *mandel.FieldMap, maxIters int) (image.Image, error) {
	w, h := fm.Resolution()
	bounds := image.Rect(0, 0, w, h)

	switch r.Palette {
	case "", Gray:
		img := image.NewGray(bounds)
		if err := samples(ctx, fm, maxIters, img.Pix, r.OnRow); err != nil {
			return nil, err
		}
		return img, nil

	case HSV:
		buf := make([]byte, fm.Limit())
		if err := samples(ctx, fm, maxIters, buf, r.OnRow); err != nil {
			return nil, err
		}
		img := image.NewRGBA(bounds)
		var lut [256]color.RGBA
		for v := range lut {
			lut[v] = hsvColor(uint8(v))
		}
		for i, v := range buf {
			img.SetRGBA(i%w, i/w, lut[v])
		}
		return img, nil
	}

	return nil, merr.New(merr.ErrCodeInvalidInput, "unknown palette %q", r.Palette)
}

func hsvColor(v uint8) color.RGBA {
	if v == 0 {
		return color.RGBA{A: 255}
	}
	return hsv(float64(v)/256, 1, 1)
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
