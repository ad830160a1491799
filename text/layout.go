package text

import (
	"iter"
	"slices"
)

// Layout is the visual arrangement of a run of text: an ordered sequence of
// lines, each holding positioned glyphs.
//
// A Layout is immutable once built and is safe for concurrent reads.
type Layout struct {
	textLines []string
	lines     []*Line
	size      Point
	count     int
}

// NewLayout lays out s using metrics, wrapping lines at maxWidth
// (no wrapping when maxWidth <= 0) and aligning them horizontally.
//
// Every rune of s receives exactly one glyph, at its rune index. A '\n' is
// placed as an empty terminator glyph at the end of the line it closes, and
// the last line receives one more terminator at index len([]rune(s)).
// Empty text produces a single line holding only that terminator.
func NewLayout(s string, metrics GlyphMetrics, alignment Alignment, maxWidth float64) *Layout {
	l := &Layout{}
	lineHeight := metrics.LineHeight()

	if s == "" {
		line := l.newLine(0, alignment, true)
		line.add(EmptyGlyph(lineHeight), 0)
		l.textLines = []string{""}
		l.size = Point{X: 0, Y: lineHeight}
		l.count = 1
		return l
	}

	spans := splitLines(s, maxWidth, WidthFunc(metrics))
	l.textLines = make([]string, 0, len(spans))

	var width, y float64
	index := 0
	for i, span := range spans {
		line := l.newLine(y, alignment, i == 0)
		for _, r := range span.runes {
			line.add(metrics.Glyph(r), index)
			index++
		}
		if span.hard {
			line.add(EmptyGlyph(lineHeight), index)
			index++
		}
		l.textLines = append(l.textLines, string(span.runes))

		width = max(width, line.width)
		y += line.height
	}

	last := l.lines[len(l.lines)-1]
	last.add(EmptyGlyph(lineHeight), index)
	index++

	l.size = Point{X: width, Y: last.y + last.height}
	l.count = index
	return l
}

// newLine appends an empty line at vertical offset y.
func (l *Layout) newLine(y float64, alignment Alignment, advance bool) *Line {
	line := &Line{
		layout:    l,
		y:         y,
		alignment: alignment,
		advance:   advance,
	}
	l.lines = append(l.lines, line)
	return line
}

// Size returns (widest line width, sum of line heights).
func (l *Layout) Size() Point {
	return l.size
}

// Width returns the width of the widest line.
func (l *Layout) Width() float64 {
	return l.size.X
}

// Height returns the sum of all line heights.
func (l *Layout) Height() float64 {
	return l.size.Y
}

// GlyphCount returns the number of glyphs, terminators included.
func (l *Layout) GlyphCount() int {
	return l.count
}

// LineCount returns the number of visual lines.
func (l *Layout) LineCount() int {
	return len(l.lines)
}

// Line returns the i-th visual line.
func (l *Layout) Line(i int) *Line {
	return l.lines[i]
}

// Lines returns an iterator over the visual lines, top to bottom.
func (l *Layout) Lines() iter.Seq[*Line] {
	return slices.Values(l.lines)
}

// TextLines returns the line strings produced by the line breaker.
func (l *Layout) TextLines() []string {
	return slices.Clone(l.textLines)
}

// Glyphs returns an iterator over every glyph in index order.
func (l *Layout) Glyphs() iter.Seq[PlacedGlyph] {
	return func(yield func(PlacedGlyph) bool) {
		for _, line := range l.lines {
			for _, g := range line.glyphs {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// VisibleGlyphs returns an iterator over the glyphs that have content,
// skipping terminators and zero-width runes.
func (l *Layout) VisibleGlyphs() iter.Seq[PlacedGlyph] {
	return func(yield func(PlacedGlyph) bool) {
		for g := range l.Glyphs() {
			if g.glyph.IsEmpty() {
				continue
			}
			if !yield(g) {
				return
			}
		}
	}
}

// Glyph returns the glyph at index.
// It fails with an *IndexOutOfRangeError when index is not in [0, GlyphCount).
func (l *Layout) Glyph(index int) (PlacedGlyph, error) {
	_, g, ok := l.locate(index)
	if !ok {
		return PlacedGlyph{}, &IndexOutOfRangeError{Index: index, Count: l.count}
	}
	return g, nil
}

// locate finds the line number and glyph for index.
func (l *Layout) locate(index int) (int, PlacedGlyph, bool) {
	if index < 0 {
		return 0, PlacedGlyph{}, false
	}
	for i, line := range l.lines {
		if index < len(line.glyphs) {
			return i, line.glyphs[index], true
		}
		index -= len(line.glyphs)
	}
	return 0, PlacedGlyph{}, false
}

// clampIndex clamps index into [0, GlyphCount).
func (l *Layout) clampIndex(index int) int {
	return max(0, min(index, l.count-1))
}

// CharacterIndexAt returns the index of the glyph a caret should land on for
// a click at position p.
//
// The first line whose bottom edge lies below p.Y is chosen; positions below
// every line fall on the last line. Within the line, the result is the first
// glyph whose horizontal midpoint lies right of p.X, or the line's last
// glyph when p is past all midpoints.
func (l *Layout) CharacterIndexAt(p Point) int {
	for i, line := range l.lines {
		if p.Y >= line.y+line.height && i < len(l.lines)-1 {
			continue
		}
		if len(line.glyphs) == 0 {
			continue
		}
		for _, g := range line.glyphs {
			if p.X < g.Position().X+g.glyph.Width*0.5 {
				return g.index
			}
		}
		return line.glyphs[len(line.glyphs)-1].index
	}
	return l.count - 1
}

// CharacterBounds returns the bounds of the glyph at index, clamped into the
// layout. Terminator glyphs have zero width and a full line height.
func (l *Layout) CharacterBounds(index int) Rect {
	_, g, _ := l.locate(l.clampIndex(index))
	return g.Bounds()
}

// CharacterIndexAbove returns the index on the previous visual line closest
// to the horizontal position of index. On the first line index is returned
// unchanged.
func (l *Layout) CharacterIndexAbove(index int) int {
	return l.characterIndexVertical(index, -1)
}

// CharacterIndexBelow returns the index on the next visual line closest to
// the horizontal position of index. On the last line index is returned
// unchanged.
func (l *Layout) CharacterIndexBelow(index int) int {
	return l.characterIndexVertical(index, 1)
}

func (l *Layout) characterIndexVertical(index, delta int) int {
	li, g, ok := l.locate(l.clampIndex(index))
	if !ok {
		return index
	}
	target := li + delta
	if target < 0 || target >= len(l.lines) {
		return index
	}
	line := l.lines[target]
	return l.CharacterIndexAt(Point{
		X: g.Position().X,
		Y: line.y + line.height*0.5,
	})
}

// ForEachBoundsInRange calls fn once per line holding visible glyphs with
// index in [start, end), passing the rectangle spanning those glyphs.
// A selection across several lines therefore yields one rectangle per line.
// Lines whose overlap with the range has zero width, such as a range
// covering only a line break terminator, are skipped.
func (l *Layout) ForEachBoundsInRange(start, end int, fn func(Rect)) {
	for _, line := range l.lines {
		var bounds Rect
		for _, g := range line.glyphs {
			if g.index < start || g.index >= end {
				continue
			}
			bounds = bounds.Union(g.Bounds())
		}
		if !bounds.Empty() {
			fn(bounds)
		}
	}
}

// Line is one visual line of a Layout.
type Line struct {
	// layout is the owning layout; alignment is resolved against its width.
	layout    *Layout
	y         float64
	alignment Alignment
	// advance stays false while the line holds only empty glyphs, unless
	// the line was created with it enabled.
	advance bool
	width   float64
	height  float64
	glyphs  []PlacedGlyph
}

// add places g at the end of the line.
func (ln *Line) add(g Glyph, index int) {
	if !g.IsEmpty() {
		ln.advance = true
	}

	ln.glyphs = append(ln.glyphs, PlacedGlyph{
		line:  ln,
		glyph: g,
		index: index,
		x:     ln.width,
	})
	if ln.advance {
		ln.width += g.Width
	}
	ln.height = max(ln.height, g.Height)
}

// Position returns the top-left corner of the line within the layout.
func (ln *Line) Position() Point {
	var x float64
	switch ln.alignment {
	case AlignRight:
		x = ln.layout.size.X - ln.width
	case AlignCenter:
		x = ln.layout.size.X*0.5 - ln.width*0.5
	}
	return Point{X: x, Y: ln.y}
}

// Bounds returns the rectangle covered by the line.
func (ln *Line) Bounds() Rect {
	p := ln.Position()
	return Rect{MinX: p.X, MinY: p.Y, MaxX: p.X + ln.width, MaxY: p.Y + ln.height}
}

// Width returns the accumulated advance of the line's glyphs.
func (ln *Line) Width() float64 { return ln.width }

// Height returns the tallest glyph height on the line.
func (ln *Line) Height() float64 { return ln.height }

// Alignment returns the line's horizontal alignment.
func (ln *Line) Alignment() Alignment { return ln.alignment }

// GlyphCount returns the number of glyphs on the line, terminators included.
func (ln *Line) GlyphCount() int { return len(ln.glyphs) }

// Glyph returns the i-th glyph of the line.
func (ln *Line) Glyph(i int) PlacedGlyph { return ln.glyphs[i] }

// Glyphs returns an iterator over the line's glyphs.
func (ln *Line) Glyphs() iter.Seq[PlacedGlyph] {
	return slices.Values(ln.glyphs)
}

// PlacedGlyph is a glyph bound to a line and a character index.
type PlacedGlyph struct {
	line  *Line
	glyph Glyph
	index int
	x     float64
}

// Glyph returns the glyph metrics.
func (g PlacedGlyph) Glyph() Glyph { return g.glyph }

// Index returns the rune index of the glyph in the laid out text.
func (g PlacedGlyph) Index() int { return g.index }

// Line returns the line holding the glyph.
func (g PlacedGlyph) Line() *Line { return g.line }

// Offset returns the glyph's x offset within its line.
func (g PlacedGlyph) Offset() float64 { return g.x }

// Position returns the top-left corner of the glyph within the layout.
func (g PlacedGlyph) Position() Point {
	p := g.line.Position()
	return Point{X: p.X + g.x, Y: p.Y}
}

// Bounds returns the rectangle covered by the glyph.
func (g PlacedGlyph) Bounds() Rect {
	return RectFromPoints(g.Position(), g.Position().Add(g.glyph.Size()))
}
