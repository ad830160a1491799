// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/ggedit"
)

// Target is a CPU-backed render target using *image.RGBA.
//
// Example:
//
//	target := render.NewTarget(320, 40)
//	target.Clear(color.White)
//	render.DrawLayout(target.Image(), layout, face, text.Point{}, color.Black)
type Target struct {
	img *image.RGBA
}

// NewTarget creates a new target of the given size.
func NewTarget(width, height int) *Target {
	return &Target{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// NewTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly without copying.
func NewTargetFromImage(img *image.RGBA) *Target {
	return &Target{img: img}
}

// Width returns the target width in pixels.
func (t *Target) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *Target) Height() int {
	return t.img.Bounds().Dy()
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *Target) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *Target) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// Pixel returns the color at the given coordinates.
func (t *Target) Pixel(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// Resize replaces the image with a new one of the given size.
// The contents are not preserved.
func (t *Target) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// EncodePNG writes the target as a PNG image to w.
func (t *Target) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, t.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the target as a PNG file at path.
func (t *Target) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	if err := t.EncodePNG(f); err != nil {
		return err
	}
	ggedit.Logger().Debug("render: png saved", "path", path, "width", t.Width(), "height", t.Height())
	return nil
}
