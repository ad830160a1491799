package edit

import "github.com/gogpu/ggedit/text"

// Option configures a TextField.
type Option func(*config)

type config struct {
	value         string
	multiline     bool
	commitOnEnter bool
	alignment     text.Alignment
	maxWidth      float64
	caretWidth    float64
	clipboard     Clipboard
}

func defaultConfig() config {
	return config{
		commitOnEnter: true,
		alignment:     text.AlignLeft,
		caretWidth:    1,
	}
}

// WithValue sets the initial value without firing any event.
func WithValue(s string) Option {
	return func(c *config) {
		c.value = s
	}
}

// WithMultiline allows line breaks in the value. Default: false.
func WithMultiline(on bool) Option {
	return func(c *config) {
		c.multiline = on
	}
}

// WithCommitOnEnter makes Enter commit a pending edit. Default: true.
// In a multiline field with commit-on-enter, Shift+Enter inserts a line break.
func WithCommitOnEnter(on bool) Option {
	return func(c *config) {
		c.commitOnEnter = on
	}
}

// WithAlignment sets the horizontal alignment of the layout.
func WithAlignment(a text.Alignment) Option {
	return func(c *config) {
		c.alignment = a
	}
}

// WithMaxWidth sets the wrapping width of the layout. Zero disables wrapping.
func WithMaxWidth(w float64) Option {
	return func(c *config) {
		c.maxWidth = w
	}
}

// WithCaretWidth sets the width of the drawn caret, in layout units.
func WithCaretWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.caretWidth = w
		}
	}
}

// WithClipboard sets the clipboard used by copy, cut and paste.
func WithClipboard(cb Clipboard) Option {
	return func(c *config) {
		c.clipboard = cb
	}
}
