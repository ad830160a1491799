// Package edit implements an editable single or multi-line text field on
// top of a text.Layout.
//
// A TextField owns its value, a caret/anchor pair of rune indices and a
// layout that is rebuilt whenever the value changes. Input arrives as
// discrete events (HandleKey, HandleChar, PointerDown, PointerDrag,
// SetFocused) from whatever windowing layer hosts the field; the field
// translates them into index operations and edits.
//
// # Change and commit
//
// Every value change fires OnValueChanged. OnValueCommitted signals that a
// value should be treated as final: it fires immediately for programmatic
// changes made while the field is unfocused, and for interactive edits it is
// deferred until Enter (when commit-on-enter is enabled) or focus loss.
//
// # Threading
//
// A TextField is not safe for concurrent use. Drive it from the goroutine
// that delivers input events. Layouts returned by Layout are immutable and
// may be handed to other goroutines for rendering.
package edit
