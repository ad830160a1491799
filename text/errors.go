package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrIndexOutOfRange is returned when a glyph index lies outside
	// [0, GlyphCount).
	ErrIndexOutOfRange = errors.New("text: glyph index out of range")

	// ErrFontClosed is returned when a face is requested from a closed FontSource.
	ErrFontClosed = errors.New("text: font source is closed")
)

// IndexOutOfRangeError reports a glyph lookup outside the layout.
// It unwraps to ErrIndexOutOfRange.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("text: glyph index %d out of range [0, %d)", e.Index, e.Count)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}
