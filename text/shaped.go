package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedFace measures runes with HarfBuzz shaping from go-text/typesetting.
//
// Each rune is shaped on its own, so advances include the font's own
// substitutions (e.g. fallback to .notdef) but no kerning between runes.
// Line height comes from the font's horizontal line metrics.
//
// ShapedFace is safe for concurrent use; shaping is serialized through the
// rune cache because neither font.Face nor HarfbuzzShaper is goroutine-safe.
type ShapedFace struct {
	face       *font.Face
	size       fixed.Int26_6
	lang       language.Language
	shaper     shaping.HarfbuzzShaper
	lineHeight float64
	cache      *Cache[rune, Glyph]
}

// NewShapedFace parses the data of src with go-text/typesetting and returns
// metrics at size pixels per em.
func NewShapedFace(src *FontSource, size float64) (*ShapedFace, error) {
	data, err := src.bytes()
	if err != nil {
		return nil, err
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	f := &ShapedFace{
		face:  face,
		size:  floatToFixed(size),
		lang:  language.NewLanguage("en"),
		cache: NewCache[rune, Glyph](defaultGlyphCacheLimit),
	}

	bounds := f.shape(' ').LineBounds
	f.lineHeight = fixedToFloat64(bounds.Ascent - bounds.Descent + bounds.Gap)
	return f, nil
}

// Glyph implements GlyphMetrics.
func (f *ShapedFace) Glyph(r rune) Glyph {
	return f.cache.GetOrCreate(r, func() Glyph {
		var advance fixed.Int26_6
		if r == '\t' {
			advance = f.shape(' ').Advance * TabSpaces
		} else {
			advance = f.shape(r).Advance
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
func (f *ShapedFace) LineHeight() float64 {
	return f.lineHeight
}

// shape runs HarfBuzz over the single rune r.
func (f *ShapedFace) shape(r rune) shaping.Output {
	return f.shaper.Shape(shaping.Input{
		Text:      []rune{r},
		RunStart:  0,
		RunEnd:    1,
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      f.size,
		Script:    language.LookupScript(r),
		Language:  f.lang,
	})
}
