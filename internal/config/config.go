// Package config loads the YAML configuration of the ggedit tool and turns
// it into glyph metrics and text field options.
//
// A configuration file looks like:
//
//	metrics: font        # font, bitmap, cells or shaped
//	font: ./Inter.ttf    # empty selects the built-in Go Regular font
//	size: 16
//	dpi: 72
//	hinting: full
//	max_width: 320
//	alignment: left
//	multiline: true
//	commit_on_enter: true
//	caret_width: 1
//	value: "initial text"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
)

// Metrics provider names.
const (
	MetricsFont   = "font"
	MetricsBitmap = "bitmap"
	MetricsCells  = "cells"
	MetricsShaped = "shaped"
)

// Config is the decoded configuration file.
type Config struct {
	Metrics       string  `yaml:"metrics"`
	Font          string  `yaml:"font"`
	Size          float64 `yaml:"size"`
	DPI           float64 `yaml:"dpi"`
	Hinting       string  `yaml:"hinting"`
	MaxWidth      float64 `yaml:"max_width"`
	Alignment     string  `yaml:"alignment"`
	Multiline     bool    `yaml:"multiline"`
	CommitOnEnter *bool   `yaml:"commit_on_enter"`
	CaretWidth    float64 `yaml:"caret_width"`
	Value         string  `yaml:"value"`
}

// Default returns the configuration used when no file is given: the
// built-in 7x13 bitmap face, no wrapping, single line.
func Default() Config {
	return Config{
		Metrics:    MetricsBitmap,
		Size:       13,
		DPI:        72,
		CaretWidth: 1,
	}
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	ggedit.Logger().Debug("config: loaded", "path", path, "metrics", c.Metrics)
	return c, nil
}

// Validate checks field values and enum names.
func (c Config) Validate() error {
	switch c.Metrics {
	case MetricsFont, MetricsBitmap, MetricsCells, MetricsShaped:
	default:
		return fmt.Errorf("config: unknown metrics %q", c.Metrics)
	}
	if c.Size <= 0 {
		return fmt.Errorf("config: size must be positive, got %v", c.Size)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("config: dpi must be positive, got %v", c.DPI)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("config: max_width must not be negative, got %v", c.MaxWidth)
	}
	if c.CaretWidth < 0 {
		return fmt.Errorf("config: caret_width must not be negative, got %v", c.CaretWidth)
	}
	if _, err := text.ParseAlignment(c.Alignment); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := text.ParseHinting(c.Hinting); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Fonts holds the providers built from a Config.
type Fonts struct {
	// Metrics measures glyphs for layout.
	Metrics text.GlyphMetrics
	// Face draws glyphs. It is nil for cells and shaped metrics.
	Face *text.Face

	source *text.FontSource
}

// Close releases the font source, if any.
func (f *Fonts) Close() error {
	if f.source == nil {
		return nil
	}
	return f.source.Close()
}

// Fonts builds the glyph metrics provider selected by c.Metrics.
func (c Config) Fonts() (*Fonts, error) {
	switch c.Metrics {
	case MetricsBitmap:
		face := text.NewFace(basicfont.Face7x13)
		return &Fonts{Metrics: face, Face: face}, nil

	case MetricsCells:
		return &Fonts{Metrics: text.NewCellMetrics()}, nil

	case MetricsFont, MetricsShaped:
		src, err := c.fontSource()
		if err != nil {
			return nil, err
		}
		fonts := &Fonts{source: src}
		if c.Metrics == MetricsShaped {
			fonts.Metrics, err = text.NewShapedFace(src, c.Size)
		} else {
			hinting, _ := text.ParseHinting(c.Hinting)
			fonts.Face, err = src.Face(c.Size, text.WithDPI(c.DPI), text.WithHinting(hinting))
			fonts.Metrics = fonts.Face
		}
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("config: %w", err)
		}
		return fonts, nil
	}
	return nil, fmt.Errorf("config: unknown metrics %q", c.Metrics)
}

func (c Config) fontSource() (*text.FontSource, error) {
	var (
		src *text.FontSource
		err error
	)
	if c.Font == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(c.Font)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return src, nil
}

// FieldOptions converts the layout and editing settings to edit options.
func (c Config) FieldOptions() ([]edit.Option, error) {
	alignment, err := text.ParseAlignment(c.Alignment)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	opts := []edit.Option{
		edit.WithAlignment(alignment),
		edit.WithMaxWidth(c.MaxWidth),
		edit.WithMultiline(c.Multiline),
		edit.WithValue(c.Value),
	}
	if c.CommitOnEnter != nil {
		opts = append(opts, edit.WithCommitOnEnter(*c.CommitOnEnter))
	}
	if c.CaretWidth > 0 {
		opts = append(opts, edit.WithCaretWidth(c.CaretWidth))
	}
	return opts, nil
}
