//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter updates a single RGBA image from a board-sized light field.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a field of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit uploads the light values into the painter image and draws it. Slices
// that do not cover the painter's grid are ignored.
func (fp *FieldPainter) Blit(dst *ebiten.Image, light []float32, on, off color.Color, scale int) {
	if len(light) != fp.w*fp.h {
		return
	}
	fillLightRGBA(fp.buf, light, on, off)
	fp.img.ReplacePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
