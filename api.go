package mandel

import (
	"context"
	"image"
)

// Renderer turns a field map into an image, one escape-time sample per pixel.
type Renderer interface {
	Render(ctx context.Context, fm *FieldMap, maxIters int) (image.Image, error)
}
