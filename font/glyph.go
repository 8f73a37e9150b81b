package font

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/richtext"
)

type glyphKey struct {
	gid  sfnt.GlyphIndex
	size float64
}

// GlyphImage is a glyph of a face at one size. Its rendered size is the
// glyph's bounding box.
type GlyphImage struct {
	src  *Source
	gid  sfnt.GlyphIndex
	size float64

	// Bounds is the glyph's bounding box relative to the pen on the
	// baseline, y growing downwards.
	Bounds richtext.Rect
}

// RenderedSize implements richtext.Image.
func (g *GlyphImage) RenderedSize() richtext.Size {
	return g.Bounds.Size()
}

// GlyphIndex returns the glyph's index in the font.
func (g *GlyphImage) GlyphIndex() uint16 {
	return uint16(g.gid)
}

// Outline returns the glyph's outline relative to the pen on the baseline,
// y growing downwards.
func (g *GlyphImage) Outline() (sfnt.Segments, error) {
	var buf sfnt.Buffer
	return g.src.font.LoadGlyph(&buf, g.gid, floatToFixed(g.size), nil)
}

// glyphImage returns the cached image of gid at size, or nil for glyphs
// without ink.
func (s *Source) glyphImage(buf *sfnt.Buffer, gid sfnt.GlyphIndex, size float64) *GlyphImage {
	return s.glyphs.getOrCreate(glyphKey{gid: gid, size: size}, func() *GlyphImage {
		b, _, err := s.font.GlyphBounds(buf, gid, floatToFixed(size), xfont.HintingNone)
		if err != nil || b.Empty() {
			return nil
		}
		return &GlyphImage{
			src:  s,
			gid:  gid,
			size: size,
			Bounds: richtext.Rect{
				Min: richtext.Vec2{X: fixedToFloat(b.Min.X), Y: fixedToFloat(b.Min.Y)},
				Max: richtext.Vec2{X: fixedToFloat(b.Max.X), Y: fixedToFloat(b.Max.Y)},
			},
		}
	})
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
