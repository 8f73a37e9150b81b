package font

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a loaded font file. One Source creates faces at any number of
// sizes and shares their glyph cache.
//
// Source is safe for concurrent use and must not be copied after creation.
type Source struct {
	// addr points to the Source itself and detects copies.
	addr *Source

	data []byte
	font *opentype.Font
	name string
	cfg  sourceConfig

	// The HarfBuzz font is parsed on first use.
	hbOnce sync.Once
	hbFont *gotext.Font
	hbErr  error

	glyphs *cache[glyphKey, *GlyphImage]
}

// NewSource parses font data (TTF or OTF). The data is copied and can be
// reused after the call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	s := &Source{
		data:   bytes.Clone(data),
		font:   f,
		cfg:    cfg,
		glyphs: newCache[glyphKey, *GlyphImage](cfg.cacheLimit),
	}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewSourceFromFile loads a Source from a font file.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Face returns a face at size pixels per em.
// Panics if s is nil or size is not positive.
func (s *Source) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("font: Source is nil; check the error from NewSource")
	}
	if size <= 0 {
		panic(ErrInvalidSize)
	}
	s.copyCheck()

	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newFace(s, size, cfg)
}

// Name returns the font family name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Shaping returns the shaping mode of the source's faces.
func (s *Source) Shaping() Shaping {
	return s.cfg.shaping
}

// harfBuzzFont returns the go-text font, parsing it on first use.
// The returned font is read-only and safe for concurrent use.
func (s *Source) harfBuzzFont() (*gotext.Font, error) {
	s.hbOnce.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.hbErr = fmt.Errorf("font: failed to parse font for shaping: %w", err)
			return
		}
		s.hbFont = face.Font
	})
	return s.hbFont, s.hbErr
}

func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: Source must not be copied by value")
	}
}

func fontName(f *opentype.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return "Unknown Font"
}

// CachedGlyphs returns the number of cached glyph images.
func (s *Source) CachedGlyphs() int {
	return s.glyphs.len()
}

// ClearCache drops all cached glyph images.
func (s *Source) ClearCache() {
	s.glyphs.clear()
}
