// Package render draws text layouts and text fields into CPU images.
//
// It is the software counterpart of a host renderer: a Target wraps an
// *image.RGBA, ImagePainter fills the selection and caret rectangles a
// TextField asks for, and DrawLayout draws glyph images with an x/image face.
//
// # Usage
//
//	face := text.NewFace(basicfont.Face7x13)
//	field := edit.New(face, edit.WithValue("hello"))
//	field.SetFocused(true)
//
//	target := render.RenderField(field, face, render.DefaultFieldStyle())
//	if err := target.SavePNG("field.png"); err != nil {
//		log.Fatal(err)
//	}
package render
