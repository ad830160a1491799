package text

import "slices"

// lineBreak is the only rune that forces a line boundary.
const lineBreak = '\n'

// BreakClass represents Unicode line breaking classes (UAX #14 simplified).
type BreakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther BreakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before/after).
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) BreakClass {
	switch r {
	case ' ', '\t', '\u00A0', '\u3000':
		return breakSpace
	case '\u200B': // Zero-width space
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen // Opening brackets and quotes
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose // Closing brackets and quotes
	case '-', '\u2010', '\u2013', '\u2014':
		return breakHyphen // Hyphens and dashes
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// canBreakBetween reports whether a soft line break may be placed between
// prev and curr. Word boundaries sit after a whitespace run, after a hyphen
// and on either side of an ideograph.
func canBreakBetween(prev, curr rune) bool {
	prevClass := classifyRune(prev)
	currClass := classifyRune(curr)

	switch {
	case currClass == breakClose, prevClass == breakOpen:
		return false
	case prevClass == breakZero:
		return true
	case prevClass == breakSpace:
		return currClass != breakSpace
	case prevClass == breakHyphen:
		return currClass != breakHyphen && currClass != breakSpace
	case currClass == breakIdeographic:
		return true
	case prevClass == breakIdeographic:
		return currClass != breakSpace
	}
	return false
}

// lineSpan is one visual line produced by the line breaker.
type lineSpan struct {
	runes []rune
	// start is the rune index of the first rune in the original text.
	start int
	// hard is true when the line was ended by an explicit line break.
	// The break rune itself sits at start+len(runes) and is not part of runes.
	hard bool
}

// Split breaks text into visual lines no wider than maxWidth, measuring each
// rune with widthOf.
//
// A '\n' always ends the current line and is not included in any line.
// When the next rune would overflow, the line is broken at the last word
// boundary (which may sit right before that rune), carrying any partial word
// over to the next line. When there is no
// usable boundary (a single token wider than maxWidth) the line is broken
// right before the offending rune, so every line holds at least one rune.
//
// A maxWidth of zero or less disables wrapping. Empty text yields one empty line.
func Split(text string, maxWidth float64, widthOf func(rune) float64) []string {
	spans := splitLines(text, maxWidth, widthOf)
	lines := make([]string, len(spans))
	for i, span := range spans {
		lines[i] = string(span.runes)
	}
	return lines
}

// splitLines performs a single left-to-right pass over text. Backtracking is
// bounded by the carried-over word, never the whole text.
func splitLines(text string, maxWidth float64, widthOf func(rune) float64) []lineSpan {
	var (
		lines    []lineSpan
		buf      []rune
		widths   []float64
		width    float64
		boundary = -1
		start    int
	)

	// emit closes a line holding the first n buffered runes and keeps the rest.
	emit := func(n int, hard bool) {
		lines = append(lines, lineSpan{
			runes: slices.Clone(buf[:n]),
			start: start,
			hard:  hard,
		})
		start += n
		if hard {
			start++
		}

		buf = append(buf[:0], buf[n:]...)
		widths = append(widths[:0], widths[n:]...)
		width = 0
		for _, w := range widths {
			width += w
		}
		boundary = -1
	}

	for _, r := range text {
		if r == lineBreak {
			emit(len(buf), true)
			continue
		}

		w := widthOf(r)
		for maxWidth > 0 && len(buf) > 0 && width+w > maxWidth {
			if boundary > 0 && !canBreakBetween(buf[len(buf)-1], r) {
				emit(boundary, false)
			} else {
				emit(len(buf), false)
			}
		}

		if len(buf) > 0 && canBreakBetween(buf[len(buf)-1], r) {
			boundary = len(buf)
		}
		buf = append(buf, r)
		widths = append(widths, w)
		width += w
	}
	emit(len(buf), false)

	return lines
}

// MeasureString returns the total advance width of s under m.
// Line breaks are measured like any other rune.
func MeasureString(s string, m GlyphMetrics) float64 {
	var width float64
	for _, r := range s {
		width += m.Glyph(r).Width
	}
	return width
}
