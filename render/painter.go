package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
)

// ImagePainter fills rectangles into a draw.Image.
// Rectangles are given in layout coordinates and shifted by Origin; partial
// pixels are covered fully.
type ImagePainter struct {
	Dst    draw.Image
	Origin text.Point
	Color  color.Color
}

var _ edit.Painter = (*ImagePainter)(nil)

// FillRect implements edit.Painter. Opacity is clamped to [0, 1].
func (p *ImagePainter) FillRect(r text.Rect, opacity float64) {
	if r.Empty() || opacity <= 0 {
		return
	}
	opacity = min(opacity, 1)

	dr := pixelRect(r, p.Origin).Intersect(p.Dst.Bounds())
	if dr.Empty() {
		return
	}

	col := p.Color
	if col == nil {
		col = color.Black
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 0xFF))})
	draw.DrawMask(p.Dst, dr, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

// pixelRect converts r, shifted by origin, to the covering pixel rectangle.
func pixelRect(r text.Rect, origin text.Point) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.MinX+origin.X)),
		int(math.Floor(r.MinY+origin.Y)),
		int(math.Ceil(r.MaxX+origin.X)),
		int(math.Ceil(r.MaxY+origin.Y)),
	)
}
