// Package ggedit lays out runs of text and edits them.
//
// # Overview
//
// ggedit is split into small packages that build on each other:
//
//   - text: line breaking, glyph placement and index/position queries
//   - edit: an editable single or multi-line text field (caret, selection,
//     clipboard, commit semantics) driven by discrete input events
//   - render: a reference render consumer that paints a layout and its
//     selection into an image.RGBA
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggedit/edit"
//	    "github.com/gogpu/ggedit/text"
//	    "golang.org/x/image/font/basicfont"
//	)
//
//	metrics := text.NewFace(basicfont.Face7x13)
//	field := edit.New(metrics, edit.WithMultiline(true), edit.WithMaxWidth(200))
//	field.OnValueCommitted.Add(func(f *edit.TextField) {
//	    fmt.Println("committed:", f.Value())
//	})
//
//	field.SetFocused(true)
//	for _, r := range "hello" {
//	    field.HandleChar(r)
//	}
//	field.SetFocused(false) // fires OnValueCommitted once
//
// # Threading
//
// Layouts are immutable once built and may be shared freely. A TextField is
// driven from a single goroutine, the one delivering input events; it
// replaces its layout on every value change rather than mutating it.
//
// # Logging
//
// ggedit is silent by default. Call [SetLogger] to receive diagnostics.
package ggedit
