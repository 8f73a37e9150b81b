package richtext

// Line is a laid-out line of a paragraph.
// Lines of a paragraph are contiguous: a line covers the glyphs from the
// previous line's GlyphEnd (or 0) up to its own GlyphEnd.
type Line struct {
	// GlyphEnd is the exclusive upper bound of the line's glyph range.
	GlyphEnd int

	// Extents is the line width (full width of its last glyph included)
	// and the height of its tallest glyph.
	Extents Size

	// JustifyableCount is the number of justifyable glyphs in the line.
	JustifyableCount int

	// JustifySpace is the extra advance added after each justifyable glyph.
	JustifySpace float64

	// HorzOffset is the line's offset from the left edge of the area.
	HorzOffset float64

	horzFmtDirty bool
	heightDirty  bool
}

// newLine returns a line whose height and formatting still need computing.
func newLine() Line {
	return Line{horzFmtDirty: true, heightDirty: true}
}

// dirty reports whether any derived data of the line is stale.
func (l *Line) dirty() bool {
	return l.horzFmtDirty || l.heightDirty
}
