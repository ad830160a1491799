package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a parsed TrueType or OpenType font.
// One FontSource can create faces at several sizes.
//
// FontSource is safe for concurrent use and must not be copied after creation.
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	font   *opentype.Font
	name   string
	closed bool
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data: append([]byte(nil), data...),
		font: f,
		name: fontName(f),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face creates glyph metrics for the font at size points.
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		return nil, fmt.Errorf("text: nil FontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrFontClosed
	}

	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     config.dpi,
		Hinting: mapHinting(config.hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return newFace(otFace, config.cacheLimit), nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// bytes returns the raw font data for backends that parse it themselves.
func (s *FontSource) bytes() ([]byte, error) {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrFontClosed
	}
	return s.data, nil
}

// Close releases the font data. Faces created earlier keep working;
// new faces cannot be created.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.closed = true
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return "Unknown Font"
}

// mapHinting converts our Hinting to x/image font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
