package richtext

import (
	"slices"
	"sort"
)

// Paragraph owns the glyphs of one paragraph and the lines derived from them.
//
// Derived data is computed lazily. Mutations only mark it stale; the Update
// methods, or Format which runs them in dependency order, bring it up to
// date. Word wrap and area width feed the lines, lines feed heights and
// horizontal formatting. Stale data is never returned: Lines, Extents and
// CreateRenderGeometry refuse to work until the paragraph has been formatted.
//
// A Paragraph is not safe for concurrent use.
type Paragraph struct {
	glyphs []Glyph
	lines  []Line

	horzFmt          HorizontalFormatting
	lastJustifiedFmt HorizontalFormatting
	wordWrap         bool
	dir              Direction

	linesDirty        bool
	fitsIntoAreaWidth bool
}

// NewParagraph returns a paragraph owning glyphs. The glyphs still need to
// be bound to their elements with SetupGlyphs.
func NewParagraph(glyphs []Glyph) *Paragraph {
	p := &Paragraph{}
	p.SetGlyphs(glyphs)
	return p
}

// SetGlyphs replaces the glyph sequence and invalidates all lines.
func (p *Paragraph) SetGlyphs(glyphs []Glyph) {
	p.glyphs = glyphs
	p.lines = p.lines[:0]
	p.linesDirty = true
	p.fitsIntoAreaWidth = true
}

// SetupGlyphs binds every glyph to its element and bakes style metrics.
//
// text is the original code-point sequence. originalIndices maps the glyphs'
// current source positions back to offsets in text; it may be empty when
// the two coincide. elementIndices holds the element of each current source
// position; glyphs past its end, or with an index outside elements, use the
// default style, which is the last element.
//
// SetupGlyphs must be called once per SetGlyphs: padding is added to the
// glyph metrics, not assigned. It always forces a full re-break.
func (p *Paragraph) SetupGlyphs(text []rune, originalIndices []int, elementIndices []uint16, elements []Element) {
	p.linesDirty = true

	var defaultIdx uint16
	if len(elements) > 0 {
		defaultIdx = uint16(len(elements) - 1) //nolint:gosec // element tables are far below 64k entries
	}

	for i := range p.glyphs {
		g := &p.glyphs[i]

		g.ElementIndex = defaultIdx
		if g.SourceIndex >= 0 && g.SourceIndex < len(elementIndices) &&
			int(elementIndices[g.SourceIndex]) < len(elements) {
			g.ElementIndex = elementIndices[g.SourceIndex]
		}

		if g.SourceIndex >= 0 && g.SourceIndex < len(originalIndices) {
			g.SourceIndex = originalIndices[g.SourceIndex]
		}

		g.Flags = 0
		el := elementAt(elements, g.ElementIndex)
		if el != nil {
			g.Offset = g.Offset.Add(el.Padding().Position())
		}

		switch e := el.(type) {
		case *EmbeddedImage:
			// Advance and height are set by UpdateEmbeddedObjectExtents,
			// the pixel size is not known before layout.
			g.Image = e.Image
			g.Flags = GlyphEmbeddedObject | GlyphBreakable
		case *EmbeddedWidget:
			g.Flags = GlyphEmbeddedObject | GlyphBreakable
		case *TextRun:
			pad := e.Padding()
			g.Advance += pad.Horizontal()
			g.Height = fontHeight(e.Font) + pad.Vertical()
			g.Flags = classifyAt(text, g.SourceIndex)
		default:
			g.Flags = classifyAt(text, g.SourceIndex)
		}
	}
}

func classifyAt(text []rune, idx int) GlyphFlags {
	if idx < 0 || idx >= len(text) {
		return 0
	}
	return classifyCodePoint(text[idx])
}

// Glyphs returns the glyph sequence. The slice must not be modified.
func (p *Paragraph) Glyphs() []Glyph {
	return p.glyphs
}

// Lines returns the laid-out lines. ok is false while any line data is
// stale; call Format first.
func (p *Paragraph) Lines() (lines []Line, ok bool) {
	if !p.upToDate() {
		return nil, false
	}
	return p.lines, true
}

// LinesDirty reports whether the lines need a full re-break.
func (p *Paragraph) LinesDirty() bool {
	return p.linesDirty
}

// FitsIntoAreaWidth reports whether the last re-break placed every glyph
// without exceeding the area width.
func (p *Paragraph) FitsIntoAreaWidth() bool {
	return p.fitsIntoAreaWidth
}

// Extents returns the width of the widest line and the sum of line heights.
// ok is false while line data is stale.
func (p *Paragraph) Extents() (size Size, ok bool) {
	if !p.upToDate() {
		return Size{}, false
	}
	for i := range p.lines {
		l := &p.lines[i]
		size.Width = max(size.Width, l.Extents.Width)
		size.Height += l.Extents.Height
	}
	return size, true
}

// HorizontalFormatting returns the paragraph's base alignment.
func (p *Paragraph) HorizontalFormatting() HorizontalFormatting {
	return p.horzFmt
}

// SetHorizontalFormatting sets the base alignment. Word-wrapping variants
// are reduced to their base alignment; use SetWordWrap for wrapping.
func (p *Paragraph) SetHorizontalFormatting(f HorizontalFormatting) {
	base, _ := DecomposeHorizontalFormatting(f)
	if base == p.horzFmt {
		return
	}
	p.horzFmt = base
	p.markHorzFmtDirty()
}

// LastJustifiedLineFormatting returns the alignment of the last line of a
// justified paragraph.
func (p *Paragraph) LastJustifiedLineFormatting() HorizontalFormatting {
	return p.lastJustifiedFmt
}

// SetLastJustifiedLineFormatting sets the alignment used for the last line
// when the paragraph is justified.
func (p *Paragraph) SetLastJustifiedLineFormatting(f HorizontalFormatting) {
	base, _ := DecomposeHorizontalFormatting(f)
	if base == p.lastJustifiedFmt {
		return
	}
	p.lastJustifiedFmt = base
	if p.horzFmt == HorzJustified {
		p.markHorzFmtDirty()
	}
}

// WordWrap reports whether word wrapping is enabled.
func (p *Paragraph) WordWrap() bool {
	return p.wordWrap
}

// SetWordWrap enables or disables word wrapping.
func (p *Paragraph) SetWordWrap(wrap bool) {
	if wrap == p.wordWrap {
		return
	}
	p.wordWrap = wrap
	p.linesDirty = true
}

// Direction returns the paragraph's base direction.
func (p *Paragraph) Direction() Direction {
	return p.dir
}

// SetDirection sets the paragraph's base direction. Glyph order is
// supplied upstream, so this does not invalidate the layout.
func (p *Paragraph) SetDirection(d Direction) {
	p.dir = d
}

// OnAreaWidthChanged invalidates what depends on the area width. Wrapped
// paragraphs are re-broken; others only re-run horizontal formatting.
func (p *Paragraph) OnAreaWidthChanged() {
	if p.wordWrap {
		p.linesDirty = true
		return
	}
	p.markHorzFmtDirty()
}

// UpdateEmbeddedObjectExtents polls the pixel size of every embedded object
// and stores it on its glyph. In a wrapped paragraph a width change forces a
// re-break. Otherwise only the affected line is patched: its width is
// adjusted and its formatting, or height, is marked stale.
func (p *Paragraph) UpdateEmbeddedObjectExtents(elements []Element, host any) {
	for i := range p.glyphs {
		g := &p.glyphs[i]
		if !g.IsEmbeddedObject() {
			continue
		}

		// Padding is already counted in the size.
		size, ok := embeddedPixelSize(elementAt(elements, g.ElementIndex), host)
		if !ok {
			continue
		}

		if !p.linesDirty && p.wordWrap && size.Width != g.Advance {
			Logger().Debug("richtext: embedded object resized in wrapped paragraph",
				"glyph", i, "from", g.Advance, "to", size.Width)
			p.linesDirty = true
		}

		if !p.linesDirty {
			if li := p.lineOf(i); li >= 0 {
				line := &p.lines[li]
				if size.Width != g.Advance {
					line.Extents.Width += size.Width - g.Advance
					line.horzFmtDirty = true
				}
				if size.Height != g.Height {
					line.heightDirty = true
				}
			}
		}

		g.Advance = size.Width
		g.Height = size.Height
	}
}

// Format brings all derived data up to date: embedded object extents,
// lines, line heights and horizontal formatting, in that order.
func (p *Paragraph) Format(elements []Element, areaWidth, defaultFontHeight float64, host any) {
	p.UpdateEmbeddedObjectExtents(elements, host)
	p.UpdateLines(elements, areaWidth)
	p.UpdateLineHeights(defaultFontHeight)
	p.UpdateHorizontalFormatting(areaWidth)
}

// upToDate reports whether lines and all per-line data are current.
func (p *Paragraph) upToDate() bool {
	if p.linesDirty {
		return false
	}
	for i := range p.lines {
		if p.lines[i].dirty() {
			return false
		}
	}
	return true
}

func (p *Paragraph) markHorzFmtDirty() {
	if p.linesDirty {
		return
	}
	for i := range p.lines {
		p.lines[i].horzFmtDirty = true
	}
}

// lineOf returns the index of the line holding glyph i, or -1.
func (p *Paragraph) lineOf(i int) int {
	if p.linesDirty {
		return -1
	}
	li := sort.Search(len(p.lines), func(k int) bool {
		return i < p.lines[k].GlyphEnd
	})
	if li == len(p.lines) {
		return -1
	}
	return li
}

// lineStart returns the first glyph index of line li.
func (p *Paragraph) lineStart(li int) int {
	if li == 0 {
		return 0
	}
	return p.lines[li-1].GlyphEnd
}

// visibleRange returns the glyph range of line li that is laid out.
// Leading whitespace of wrapped lines is excluded.
func (p *Paragraph) visibleRange(li int) (start, end int) {
	start, end = p.lineStart(li), p.lines[li].GlyphEnd
	if li > 0 {
		for start < end && p.glyphs[start].IsWhitespace() {
			start++
		}
	}
	return start, end
}

func (p *Paragraph) clone() Paragraph {
	c := *p
	c.glyphs = slices.Clone(p.glyphs)
	c.lines = slices.Clone(p.lines)
	return c
}
