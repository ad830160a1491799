package text

import (
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a golang.org/x/image/font.Face to GlyphMetrics.
//
// Any x/image face works: TrueType faces from FontSource.Face, or bitmap
// faces such as basicfont.Face7x13. Every glyph is reported a full line
// tall so that carets and selection rectangles span the line.
//
// Face is safe for concurrent use; measurements are serialized through its
// cache because x/image faces are not.
type Face struct {
	face       font.Face
	ascent     float64
	lineHeight float64
	cache      *Cache[rune, Glyph]
}

// NewFace wraps f with the default rune cache.
func NewFace(f font.Face) *Face {
	return newFace(f, defaultGlyphCacheLimit)
}

func newFace(f font.Face, cacheLimit int) *Face {
	m := f.Metrics()
	return &Face{
		face:       f,
		ascent:     fixedToFloat64(m.Ascent),
		lineHeight: fixedToFloat64(m.Height),
		cache:      NewCache[rune, Glyph](cacheLimit),
	}
}

// Glyph implements GlyphMetrics.
// A tab advances TabSpaces spaces. Other runes missing from the font are
// measured as U+FFFD, then as zero width.
func (f *Face) Glyph(r rune) Glyph {
	return f.cache.GetOrCreate(r, func() Glyph {
		advance, ok := f.face.GlyphAdvance(r)
		if r == '\t' {
			space, _ := f.face.GlyphAdvance(' ')
			advance = space * TabSpaces
		} else if !ok {
			advance, _ = f.face.GlyphAdvance(unicode.ReplacementChar)
		}
		return Glyph{
			Rune:    r,
			HasRune: true,
			Width:   fixedToFloat64(advance),
			Height:  f.lineHeight,
		}
	})
}

// LineHeight implements GlyphMetrics.
func (f *Face) LineHeight() float64 {
	return f.lineHeight
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 {
	return f.ascent
}

// FontFace returns the wrapped x/image face, for rendering.
// The returned face is not safe for concurrent use.
func (f *Face) FontFace() font.Face {
	return f.face
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
