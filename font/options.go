package font

// Shaping selects how a face turns code points into glyphs.
type Shaping uint8

const (
	// ShapingHarfBuzz shapes with go-text/typesetting (default). Ligatures,
	// kerning and complex scripts are supported.
	ShapingHarfBuzz Shaping = iota

	// ShapingSimple maps each code point to one glyph with sfnt advances
	// and pair kerning.
	ShapingSimple
)

// String returns the string representation of the shaping mode.
func (s Shaping) String() string {
	switch s {
	case ShapingHarfBuzz:
		return "HarfBuzz"
	case ShapingSimple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	cacheLimit int
	shaping    Shaping
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		shaping:    ShapingHarfBuzz,
	}
}

// WithCacheLimit sets the soft limit of cached glyph images.
// A value of 0 disables the limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithShaping selects the shaping mode of all faces of the source.
func WithShaping(s Shaping) SourceOption {
	return func(c *sourceConfig) {
		c.shaping = s
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	language  string
	lineScale float64
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		language:  "en",
		lineScale: 1,
	}
}

// WithLanguage sets the BCP 47 language tag used for shaping.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithLineSpacing scales the line height of the face.
func WithLineSpacing(scale float64) FaceOption {
	return func(c *faceConfig) {
		if scale > 0 {
			c.lineScale = scale
		}
	}
}
