package edit

import "github.com/gogpu/ggedit/text"

// selectionOpacity scales the opacity of selection rectangles.
const selectionOpacity = 0.2

// Painter is the render consumer of a TextField: it fills rectangles given
// in layout-local coordinates, blended at the given opacity.
type Painter interface {
	FillRect(r text.Rect, opacity float64)
}

// Draw paints the selection highlight and the caret when the field has focus.
// Selections spanning several lines are painted as one rectangle per line.
func (f *TextField) Draw(p Painter, opacity float64) {
	if !f.focused {
		return
	}

	if f.caret != f.anchor {
		f.layout.ForEachBoundsInRange(f.SelectionStart(), f.SelectionEnd(), func(r text.Rect) {
			p.FillRect(r, opacity*selectionOpacity)
		})
	}
	p.FillRect(f.CaretBounds(), opacity)
}

// CaretBounds returns the caret rectangle: caretWidth wide, covering the
// middle 60% of the line height at the caret index.
func (f *TextField) CaretBounds() text.Rect {
	b := f.layout.CharacterBounds(f.caret)
	top := b.MinY + b.Height()*0.2
	return text.Rect{
		MinX: b.MinX,
		MinY: top,
		MaxX: b.MinX + f.caretWidth,
		MaxY: top + b.Height()*0.6,
	}
}
