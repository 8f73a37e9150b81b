package font

import (
	"slices"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/richtext"
)

// Face is a Source at one size. It implements richtext.Font.
//
// Face is safe for concurrent use.
type Face struct {
	src  *Source
	size float64
	cfg  faceConfig

	ascent  float64
	descent float64
	height  float64
}

var _ richtext.Font = (*Face)(nil)

func newFace(src *Source, size float64, cfg faceConfig) *Face {
	f := &Face{src: src, size: size, cfg: cfg}

	var buf sfnt.Buffer
	m, err := src.font.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		// Approximate with common Latin proportions.
		f.ascent = size * 0.8
		f.descent = size * 0.2
		f.height = size * 1.2
		return f
	}
	f.ascent = fixedToFloat(m.Ascent)
	f.descent = fixedToFloat(m.Descent)
	f.height = fixedToFloat(m.Height)
	return f
}

// Source returns the source the face was created from.
func (f *Face) Source() *Source { return f.src }

// Size returns the size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 { return f.ascent * f.cfg.lineScale }

// Descent returns the distance from the baseline to the bottom of a line.
func (f *Face) Descent() float64 { return f.descent * f.cfg.lineScale }

// Height returns the line height, line spacing included.
func (f *Face) Height() float64 {
	return f.height * f.cfg.lineScale
}

// Shape implements richtext.Font. Glyphs are returned in visual order, so a
// right-to-left run starts with its last code point.
//
// When HarfBuzz shaping fails the face falls back to simple shaping.
func (f *Face) Shape(text []rune, dir richtext.Direction) []richtext.ShapedGlyph {
	if len(text) == 0 {
		return nil
	}
	if f.src.cfg.shaping == ShapingHarfBuzz {
		glyphs, err := f.shapeHarfBuzz(text, dir)
		if err == nil {
			return glyphs
		}
		richtext.Logger().Warn("font: shaping failed, using simple shaping",
			"font", f.src.name, "err", err)
	}
	return f.shapeSimple(text, dir)
}

// shapeSimple maps every code point to its nominal glyph and applies pair
// kerning from the font's kern table.
func (f *Face) shapeSimple(text []rune, dir richtext.Direction) []richtext.ShapedGlyph {
	var buf sfnt.Buffer
	ppem := floatToFixed(f.size)
	out := make([]richtext.ShapedGlyph, 0, len(text))

	prev := sfnt.GlyphIndex(0)
	for i, r := range text {
		gid, err := f.src.font.GlyphIndex(&buf, r)
		if err != nil {
			gid = 0
		}
		adv, err := f.src.font.GlyphAdvance(&buf, gid, ppem, xfont.HintingNone)
		if err != nil {
			adv = 0
		}

		if i > 0 {
			if k, err := f.src.font.Kern(&buf, prev, gid, ppem, xfont.HintingNone); err == nil {
				out[i-1].Advance += fixedToFloat(k)
			}
		}

		out = append(out, f.glyph(&buf, i, gid, fixedToFloat(adv), 0, 0))
		prev = gid
	}

	if dir == richtext.DirectionRTL {
		slices.Reverse(out)
	}
	return out
}

// glyph builds a shaped glyph whose image offset places the glyph's bounding
// box relative to the top of the line.
func (f *Face) glyph(buf *sfnt.Buffer, cluster int, gid sfnt.GlyphIndex, advance, xOff, yOff float64) richtext.ShapedGlyph {
	g := richtext.ShapedGlyph{Cluster: cluster, Advance: advance}

	img := f.src.glyphImage(buf, gid, f.size)
	if img == nil {
		return g
	}
	g.Image = img
	g.Offset = richtext.Vec2{
		X: img.Bounds.Min.X + xOff,
		Y: f.Ascent() + img.Bounds.Min.Y - yOff,
	}
	return g
}
