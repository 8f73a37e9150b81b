package richtext

import "math"

// GlyphFlags classify a glyph for line breaking and justification.
type GlyphFlags uint8

const (
	// GlyphEmbeddedObject marks a placeholder for an embedded image or widget.
	GlyphEmbeddedObject GlyphFlags = 1 << iota
	// GlyphWhitespace marks space, tab and carriage return.
	GlyphWhitespace
	// GlyphBreakable marks a glyph after which a line may end.
	GlyphBreakable
	// GlyphJustifyable marks a glyph that absorbs justification space.
	GlyphJustifyable
)

// Glyph is one positioned, sized unit of rendered content.
type Glyph struct {
	// SourceIndex is the index of the glyph's code point in the original text.
	SourceIndex int

	// ElementIndex references the glyph's element in the document table.
	ElementIndex uint16

	// Advance is the pen advance with horizontal padding baked in.
	Advance float64

	// Height is the glyph box height with vertical padding baked in.
	Height float64

	// Offset positions the image relative to the pen.
	Offset Vec2

	// Image is drawn for the glyph; nil draws nothing but still advances the pen.
	Image Image

	Flags GlyphFlags
}

// Has reports whether all flags in f are set.
func (g *Glyph) Has(f GlyphFlags) bool {
	return g.Flags&f == f
}

// IsEmbeddedObject reports whether the glyph stands for an embedded element.
func (g *Glyph) IsEmbeddedObject() bool { return g.Has(GlyphEmbeddedObject) }

// IsWhitespace reports whether the glyph is whitespace.
func (g *Glyph) IsWhitespace() bool { return g.Has(GlyphWhitespace) }

// IsBreakable reports whether a line may end after the glyph.
func (g *Glyph) IsBreakable() bool { return g.Has(GlyphBreakable) }

// IsJustifyable reports whether the glyph absorbs justification space.
func (g *Glyph) IsJustifyable() bool { return g.Has(GlyphJustifyable) }

// classifyCodePoint returns the flags of a text glyph.
// Only space is justifyable; space, tab and carriage return are breakable.
func classifyCodePoint(r rune) GlyphFlags {
	switch r {
	case ' ':
		return GlyphWhitespace | GlyphBreakable | GlyphJustifyable
	case '\t', '\r':
		return GlyphWhitespace | GlyphBreakable
	default:
		return 0
	}
}

// fullWidth returns the visual width of the glyph including overhang.
// For text glyphs it may exceed the advance, e.g. with kerning or italics.
func fullWidth(g *Glyph, elements []Element) float64 {
	if g.IsEmbeddedObject() {
		return g.Advance
	}
	var visual float64
	if g.Image != nil {
		visual = g.Image.RenderedSize().Width
	}
	if el := elementAt(elements, g.ElementIndex); el != nil {
		visual += el.Padding().Horizontal()
	}
	return math.Max(g.Advance, visual)
}
