package text

import "github.com/unilibs/uniwidth"

// CellMetrics measures text in monospace terminal cells.
// Wide runes (CJK, emoji) take two cells, combining marks and control
// characters none.
type CellMetrics struct {
	// CellWidth is the width of one cell.
	CellWidth float64
	// CellHeight is the height of one cell, which is also the line height.
	CellHeight float64
}

// NewCellMetrics returns metrics with 1x1 cells, so widths are column counts.
func NewCellMetrics() CellMetrics {
	return CellMetrics{CellWidth: 1, CellHeight: 1}
}

// Glyph implements GlyphMetrics.
func (c CellMetrics) Glyph(r rune) Glyph {
	cells := uniwidth.RuneWidth(r)
	if r == '\t' {
		cells = TabSpaces
	}
	return Glyph{
		Rune:    r,
		HasRune: true,
		Width:   float64(cells) * c.CellWidth,
		Height:  c.CellHeight,
	}
}

// LineHeight implements GlyphMetrics.
func (c CellMetrics) LineHeight() float64 {
	return c.CellHeight
}
