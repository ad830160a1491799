// Package text computes the visual layout of a run of text.
//
// The pipeline is:
//
//   - GlyphMetrics: answers width/height for a rune plus a line height.
//     Implementations: Face (any golang.org/x/image/font.Face, including
//     TrueType faces from a FontSource), ShapedFace (HarfBuzz advances via
//     go-text/typesetting) and CellMetrics (monospace terminal cells).
//   - Split: breaks text into visual lines under a maximum width, honoring
//     explicit '\n' breaks.
//   - Layout: places one glyph per rune, plus a terminator glyph at the end
//     of every hard line, and answers index/position queries.
//
// # Indices
//
// Every index in this package is a rune index into the original string.
// A layout of n runes has exactly n+1 glyphs: each '\n' is represented by
// an empty terminator glyph at the end of its line, and the last line
// receives one more terminator at index n so that a caret can sit after
// the last character.
//
// # Example
//
//	layout := text.NewLayout("Hello, world", text.NewFace(basicfont.Face7x13), text.AlignLeft, 40)
//	for line := range layout.Lines() {
//	    fmt.Println(line.Position(), line.Width())
//	}
//	idx := layout.CharacterIndexAt(text.Pt(12, 3))
package text
