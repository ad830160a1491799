package text

// Glyph holds the metrics of one renderable rune.
//
// The zero-rune sentinel (see EmptyGlyph) marks the end of a line: it has no
// width but a height, so a caret placed on it is a full line tall.
type Glyph struct {
	// Rune is the character this glyph renders. Meaningless when HasRune is false.
	Rune rune

	// HasRune is false for the line terminator sentinel.
	HasRune bool

	// Width is the horizontal advance in pixels.
	Width float64

	// Height is the vertical extent in pixels.
	Height float64
}

// TabSpaces is the advance of a tab, in spaces.
const TabSpaces = 4

// EmptyGlyph returns the terminator sentinel with the given height.
func EmptyGlyph(height float64) Glyph {
	return Glyph{Height: height}
}

// IsEmpty reports whether g carries no visible content:
// the terminator sentinel or a rune with zero advance.
func (g Glyph) IsEmpty() bool {
	return !g.HasRune || g.Width == 0
}

// Size returns the glyph extent as a point (width, height).
func (g Glyph) Size() Point {
	return Point{X: g.Width, Y: g.Height}
}

// GlyphMetrics provides glyph measurements for layout.
//
// Implementations must be deterministic: a layout queries Glyph once per
// rune while breaking lines and again while placing glyphs.
type GlyphMetrics interface {
	// Glyph returns the metrics for r.
	Glyph(r rune) Glyph

	// LineHeight is the height of an empty line. It is used for terminator
	// glyphs and for the layout of empty text.
	LineHeight() float64
}

// WidthFunc adapts m to the width callback used by Split.
func WidthFunc(m GlyphMetrics) func(rune) float64 {
	return func(r rune) float64 {
		return m.Glyph(r).Width
	}
}
