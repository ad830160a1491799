package edit

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/text"
)

// TextField is an editable text value with a caret, a selection and a layout.
//
// The selection is the span between two rune indices: the anchor, which
// stays put while a selection is extended, and the caret, which moves.
// Either may be the smaller one.
type TextField struct {
	metrics    text.GlyphMetrics
	alignment  text.Alignment
	maxWidth   float64
	caretWidth float64
	clipboard  Clipboard

	value  string
	length int
	layout *text.Layout

	anchor int
	caret  int

	multiline     bool
	commitOnEnter bool
	commitPending bool
	focused       bool
	hovered       bool
	style         string

	// OnValueChanged fires after every value change.
	OnValueChanged Event[*TextField]
	// OnValueCommitted fires when the value should be treated as final.
	OnValueCommitted Event[*TextField]
	// OnFocusChanged fires with the new focus state.
	OnFocusChanged Event[bool]
	// OnHoverChanged fires with the new hover state.
	OnHoverChanged Event[bool]
	// OnStyleChanged fires with the new style name, see Style.
	OnStyleChanged Event[string]
	// OnClipboardError fires when a key-driven copy, cut or paste fails.
	OnClipboardError Event[error]
}

// New creates an unfocused field measuring text with metrics.
func New(metrics text.GlyphMetrics, opts ...Option) *TextField {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	f := &TextField{
		metrics:       metrics,
		alignment:     c.alignment,
		maxWidth:      c.maxWidth,
		caretWidth:    c.caretWidth,
		clipboard:     c.clipboard,
		multiline:     c.multiline,
		commitOnEnter: c.commitOnEnter,
	}
	f.SetValueSilent(f.normalize(c.value))
	return f
}

// Value returns the current text.
func (f *TextField) Value() string {
	return f.value
}

// Len returns the length of the value in runes.
func (f *TextField) Len() int {
	return f.length
}

// Layout returns the layout of the current value.
// The returned layout is never modified; a value change installs a new one.
func (f *TextField) Layout() *text.Layout {
	return f.layout
}

// SetValue replaces the value. Line breaks are removed unless the field is
// multiline. Nothing happens if the value is unchanged.
//
// While focused, the change is marked as pending commit; while unfocused it
// is committed immediately. OnValueChanged fires in both cases.
func (f *TextField) SetValue(s string) {
	s = f.normalize(s)
	if s == f.value {
		return
	}
	f.SetValueSilent(s)

	if f.focused {
		f.commitPending = true
	}
	f.OnValueChanged.Fire(f)
	if !f.focused {
		f.commit()
	}
}

// SetValueSilent replaces the value as given, clamps the caret and anchor
// into it and rebuilds the layout, without firing any event.
func (f *TextField) SetValueSilent(s string) {
	f.value = s
	f.length = utf8.RuneCountInString(s)
	f.anchor = f.clamp(f.anchor)
	f.caret = f.clamp(f.caret)
	f.relayout()
}

// relayout installs a fresh layout for the current value.
func (f *TextField) relayout() {
	f.layout = text.NewLayout(f.value, f.metrics, f.alignment, f.maxWidth)
	ggedit.Logger().Debug("edit: layout rebuilt",
		"runes", f.length,
		"lines", f.layout.LineCount(),
		"width", f.layout.Width(),
		"height", f.layout.Height())
}

// normalize strips line breaks from single-line values.
func (f *TextField) normalize(s string) string {
	if f.multiline {
		return s
	}
	return strings.ReplaceAll(s, "\n", "")
}

// clamp clamps a rune index into [0, Len()].
func (f *TextField) clamp(i int) int {
	return max(0, min(i, f.length))
}

// commit clears the pending flag and fires OnValueCommitted.
func (f *TextField) commit() {
	f.commitPending = false
	ggedit.Logger().Debug("edit: value committed", "runes", f.length)
	f.OnValueCommitted.Fire(f)
}

// CommitPending reports whether an interactive edit awaits commit.
func (f *TextField) CommitPending() bool {
	return f.commitPending
}

// Caret returns the caret index.
func (f *TextField) Caret() int { return f.caret }

// Anchor returns the anchor index.
func (f *TextField) Anchor() int { return f.anchor }

// Select sets the anchor and caret, clamped into the value.
func (f *TextField) Select(anchor, caret int) {
	f.anchor = f.clamp(anchor)
	f.caret = f.clamp(caret)
}

// SelectAll selects the whole value, with the caret at the end.
func (f *TextField) SelectAll() {
	f.anchor = 0
	f.caret = f.length
}

// SelectionStart returns the smaller of anchor and caret.
func (f *TextField) SelectionStart() int {
	return min(f.anchor, f.caret)
}

// SetSelectionStart moves whichever of anchor and caret is the start edge,
// keeping the other edge in place.
func (f *TextField) SetSelectionStart(i int) {
	i = f.clamp(i)
	if f.anchor < f.caret {
		f.anchor = i
	} else {
		f.caret = i
	}
}

// SelectionEnd returns the larger of anchor and caret.
func (f *TextField) SelectionEnd() int {
	return max(f.anchor, f.caret)
}

// SetSelectionEnd moves whichever of anchor and caret is the end edge,
// keeping the other edge in place.
func (f *TextField) SetSelectionEnd(i int) {
	i = f.clamp(i)
	if f.anchor > f.caret {
		f.anchor = i
	} else {
		f.caret = i
	}
}

// SelectionLength returns the number of selected runes.
func (f *TextField) SelectionLength() int {
	return f.SelectionEnd() - f.SelectionStart()
}

// SelectedText returns the selected part of the value.
func (f *TextField) SelectedText() string {
	runes := []rune(f.value)
	return string(runes[f.SelectionStart():f.SelectionEnd()])
}

// ReplaceSelection replaces the selected runes with s (inserting at the
// caret when nothing is selected) through SetValue, then collapses the
// selection right after the inserted text.
func (f *TextField) ReplaceSelection(s string) {
	s = f.normalize(s)
	start, end := f.SelectionStart(), f.SelectionEnd()

	runes := []rune(f.value)
	inserted := []rune(s)
	out := make([]rune, 0, len(runes)-(end-start)+len(inserted))
	out = append(out, runes[:start]...)
	out = append(out, inserted...)
	out = append(out, runes[end:]...)

	f.SetValue(string(out))

	// The caret follows the inserted text as normalized within the value,
	// which may drop line breaks from the prefix too.
	prefix := string(out[:start+len(inserted)])
	pos := f.clamp(utf8.RuneCountInString(f.normalize(prefix)))
	f.anchor, f.caret = pos, pos
}

// Multiline reports whether the value may contain line breaks.
func (f *TextField) Multiline() bool {
	return f.multiline
}

// SetMultiline allows or forbids line breaks. Forbidding them removes every
// line break from the current value through SetValue.
func (f *TextField) SetMultiline(on bool) {
	if f.multiline == on {
		return
	}
	f.multiline = on
	if !on {
		f.SetValue(f.value)
	}
}

// CommitOnEnter reports whether Enter commits pending edits.
func (f *TextField) CommitOnEnter() bool {
	return f.commitOnEnter
}

// SetCommitOnEnter sets whether Enter commits pending edits.
func (f *TextField) SetCommitOnEnter(on bool) {
	f.commitOnEnter = on
}

// SetMaxWidth changes the wrapping width and rebuilds the layout.
func (f *TextField) SetMaxWidth(w float64) {
	if f.maxWidth == w {
		return
	}
	f.maxWidth = w
	f.relayout()
}

// SetAlignment changes the alignment and rebuilds the layout.
func (f *TextField) SetAlignment(a text.Alignment) {
	if f.alignment == a {
		return
	}
	f.alignment = a
	f.relayout()
}

// Focused reports whether the field has keyboard focus.
func (f *TextField) Focused() bool {
	return f.focused
}

// SetFocused applies a focus change delivered by the host. Losing focus
// commits a pending edit before the style is updated.
func (f *TextField) SetFocused(focused bool) {
	if f.focused == focused {
		return
	}
	if f.focused && f.commitPending {
		f.commit()
	}
	f.focused = focused
	f.OnFocusChanged.Fire(focused)
	f.refreshStyle()
}

// Hovered reports whether the pointer is over the field.
func (f *TextField) Hovered() bool {
	return f.hovered
}

// SetHovered applies a hover change delivered by the host.
func (f *TextField) SetHovered(hovered bool) {
	if f.hovered == hovered {
		return
	}
	f.hovered = hovered
	f.OnHoverChanged.Fire(hovered)
	f.refreshStyle()
}

// Style returns the style name for the current state: "", "hover",
// "focus" or "hover focus".
func (f *TextField) Style() string {
	return f.style
}

func (f *TextField) refreshStyle() {
	var parts []string
	if f.hovered {
		parts = append(parts, "hover")
	}
	if f.focused {
		parts = append(parts, "focus")
	}
	style := strings.Join(parts, " ")
	if style == f.style {
		return
	}
	f.style = style
	f.OnStyleChanged.Fire(style)
}

// HandleKey processes a key-down event. Keys are only consumed while the
// field has focus.
func (f *TextField) HandleKey(e KeyEvent) bool {
	if !f.focused {
		return false
	}

	shift := e.Mods.Shift()
	switch e.Key {
	case KeyEscape:
		f.SetFocused(false)

	case KeyBackspace:
		if f.anchor > 0 && f.anchor == f.caret {
			f.anchor--
		}
		f.ReplaceSelection("")

	case KeyDelete:
		if f.anchor < f.length && f.anchor == f.caret {
			f.caret++
		}
		f.ReplaceSelection("")

	case KeyA:
		if e.Mods.ControlOnly() {
			f.SelectAll()
		}

	case KeyC:
		if e.Mods.ControlOnly() {
			f.reportClipboardError(f.Copy())
		}

	case KeyV:
		if e.Mods.ControlOnly() {
			f.reportClipboardError(f.Paste())
		}

	case KeyX:
		if e.Mods.ControlOnly() {
			f.reportClipboardError(f.Cut())
		}

	case KeyLeft:
		switch {
		case shift:
			if f.caret > 0 {
				f.caret--
			}
		case f.anchor != f.caret:
			f.SetSelectionEnd(f.SelectionStart())
		case f.caret > 0:
			f.caret--
			f.anchor = f.caret
		}

	case KeyRight:
		switch {
		case shift:
			if f.caret < f.length {
				f.caret++
			}
		case f.anchor != f.caret:
			f.SetSelectionStart(f.SelectionEnd())
		case f.caret < f.length:
			f.caret++
			f.anchor = f.caret
		}

	case KeyUp:
		f.moveCaret(f.layout.CharacterIndexAbove(f.caret), shift)

	case KeyDown:
		f.moveCaret(f.layout.CharacterIndexBelow(f.caret), shift)

	case KeyHome:
		f.moveCaret(0, shift)

	case KeyEnd:
		f.moveCaret(f.length, shift)

	case KeyEnter, KeyKeypadEnter:
		if f.multiline && (!f.commitOnEnter || shift) {
			f.ReplaceSelection("\n")
		} else if f.commitOnEnter && f.commitPending {
			f.commit()
		}
	}
	return true
}

// moveCaret moves the caret to i, collapsing the selection unless extend.
func (f *TextField) moveCaret(i int, extend bool) {
	f.caret = f.clamp(i)
	if !extend {
		f.anchor = f.caret
	}
}

// HandleKeyUp processes a key-up event. It is consumed while focused.
func (f *TextField) HandleKeyUp(KeyEvent) bool {
	return f.focused
}

// HandleChar inserts a typed character, replacing the selection.
// Control characters other than tab are consumed without effect, except a
// line break in a multiline field.
func (f *TextField) HandleChar(r rune) bool {
	if !f.focused {
		return false
	}
	if unicode.IsControl(r) && r != '\t' && (r != '\n' || !f.multiline) {
		return true
	}
	f.ReplaceSelection(string(r))
	return true
}

// PointerDown focuses the field and collapses the selection at the glyph
// under p, given in layout-local coordinates.
func (f *TextField) PointerDown(p text.Point) bool {
	f.SetFocused(true)
	i := f.clamp(f.layout.CharacterIndexAt(p))
	f.anchor, f.caret = i, i
	return true
}

// PointerDrag moves the caret to the glyph under p, extending the selection
// from the anchor set by PointerDown.
func (f *TextField) PointerDrag(p text.Point) {
	f.caret = f.clamp(f.layout.CharacterIndexAt(p))
}

// Copy puts the selection, or the whole value when nothing is selected, on
// the clipboard.
func (f *TextField) Copy() error {
	if f.clipboard == nil {
		return ErrNoClipboard
	}
	s := f.value
	if f.anchor != f.caret {
		s = f.SelectedText()
	}
	if err := f.clipboard.SetText(s); err != nil {
		return fmt.Errorf("edit: copy: %w", err)
	}
	return nil
}

// Cut copies the selection to the clipboard and removes it. With nothing
// selected the whole value is cut. The value is left untouched when the
// clipboard rejects the text.
func (f *TextField) Cut() error {
	if f.clipboard == nil {
		return ErrNoClipboard
	}
	if f.anchor == f.caret {
		f.SelectAll()
	}
	if err := f.clipboard.SetText(f.SelectedText()); err != nil {
		return fmt.Errorf("edit: cut: %w", err)
	}
	f.ReplaceSelection("")
	return nil
}

// Paste replaces the selection with the clipboard text, normalized to NFC
// with line endings converted to '\n'. A failed read inserts nothing.
func (f *TextField) Paste() error {
	if f.clipboard == nil {
		return ErrNoClipboard
	}
	s, err := f.clipboard.Text()
	if err != nil {
		return fmt.Errorf("edit: paste: %w", err)
	}
	f.ReplaceSelection(normalizeInput(s))
	return nil
}

// normalizeInput composes s to NFC and converts CRLF and CR to LF.
func normalizeInput(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (f *TextField) reportClipboardError(err error) {
	if err == nil {
		return
	}
	ggedit.Logger().Warn("edit: clipboard operation failed", "err", err)
	f.OnClipboardError.Fire(err)
}
