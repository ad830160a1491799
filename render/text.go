package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
)

// DrawLayout draws the visible glyphs of l into dst, with the layout's
// top-left corner at origin. Each glyph is drawn at its laid out position on
// the line's baseline, so the image matches carets and selections exactly.
//
// face must be the face l was measured with.
func DrawLayout(dst draw.Image, l *text.Layout, face *text.Face, origin text.Point, col color.Color) {
	if l == nil || face == nil {
		return
	}
	if col == nil {
		col = color.Black
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.FontFace(),
	}
	for g := range l.VisibleGlyphs() {
		r := g.Glyph().Rune
		if unicode.IsControl(r) {
			continue
		}
		p := g.Position()
		d.Dot = fixed.Point26_6{
			X: toFixed(origin.X + p.X),
			Y: toFixed(origin.Y + p.Y + face.Ascent()),
		}
		d.DrawString(string(r))
	}
}

// FieldStyle holds the colors RenderField paints with.
type FieldStyle struct {
	Background color.Color
	Text       color.Color
	// Highlight paints the selection and the caret.
	Highlight color.Color
	// Padding is the empty border around the layout, in pixels.
	Padding float64
}

// DefaultFieldStyle returns black text on white with a blue highlight.
func DefaultFieldStyle() FieldStyle {
	return FieldStyle{
		Background: color.White,
		Text:       color.Black,
		Highlight:  color.RGBA{R: 0x1E, G: 0x64, B: 0xDC, A: 0xFF},
		Padding:    4,
	}
}

// RenderField renders f into a new target sized to its layout plus padding:
// background, then glyphs, then selection and caret as f.Draw paints them.
func RenderField(f *edit.TextField, face *text.Face, style FieldStyle) *Target {
	l := f.Layout()
	size := l.Size()
	pad := max(style.Padding, 0)
	caret := f.CaretBounds().Width()

	t := NewTarget(
		int(math.Ceil(size.X+caret+2*pad)),
		int(math.Ceil(size.Y+2*pad)),
	)
	if style.Background != nil {
		t.Clear(style.Background)
	}

	origin := text.Pt(pad, pad)
	DrawLayout(t.Image(), l, face, origin, style.Text)
	f.Draw(&ImagePainter{Dst: t.Image(), Origin: origin, Color: style.Highlight}, 1)
	return t
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
