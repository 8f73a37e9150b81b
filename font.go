package richtext

// Image is a rendered image that glyphs and embedded elements draw with.
// Implementations are owned by the caller's resource system; the layout
// only keeps references.
type Image interface {
	// RenderedSize returns the on-screen size of the image in pixels.
	RenderedSize() Size
}

// ShapedGlyph is a glyph produced by a Font for a run of code points.
type ShapedGlyph struct {
	// Cluster is the index of the first code point of the glyph
	// within the run passed to Shape.
	Cluster int

	// Advance is the pen advance in pixels, kerning included.
	Advance float64

	// Offset positions the glyph image relative to the pen.
	Offset Vec2

	// Image is the glyph image, or nil for glyphs that draw nothing.
	Image Image
}

// Font supplies glyph metrics for text runs.
// Shaping, kerning and glyph rasterization happen behind this interface.
type Font interface {
	// Height returns the line height of the font in pixels.
	Height() float64

	// Shape converts a run of code points into positioned glyphs.
	// dir is always DirectionLTR or DirectionRTL.
	Shape(text []rune, dir Direction) []ShapedGlyph
}

// fontHeight returns the height of f, or 0 for a nil font.
func fontHeight(f Font) float64 {
	if f == nil {
		return 0
	}
	return f.Height()
}
