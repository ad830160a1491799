package text

// FaceOption configures Face creation from a FontSource.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi        float64
	hinting    Hinting
	cacheLimit int
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi:        72,
		hinting:    HintingFull,
		cacheLimit: defaultGlyphCacheLimit,
	}
}

// WithDPI sets the resolution used to convert the point size to pixels.
// The default is 72, which makes one point one pixel.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithCacheLimit sets the maximum number of cached rune measurements.
// A value of 0 disables the limit.
func WithCacheLimit(n int) FaceOption {
	return func(c *faceConfig) {
		c.cacheLimit = n
	}
}
