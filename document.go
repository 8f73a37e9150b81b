package richtext

import (
	"fmt"
	"math"
	"slices"
)

// Document is a rendered text: paragraphs laid out from one parsed string
// and the element table they share.
//
// RenderText replaces the content; Format lays it out at a width;
// CreateRenderGeometry emits quads. A Document is not safe for concurrent use.
type Document struct {
	cfg documentConfig

	text       []rune
	elements   []Element
	paragraphs []Paragraph

	// starts holds the source index of each paragraph's first code point.
	starts []int

	areaWidth float64
}

// NewDocument returns an empty document with a single empty paragraph.
func NewDocument(opts ...DocumentOption) *Document {
	cfg := defaultDocumentConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Document{cfg: cfg, areaWidth: -1}
	d.elements = []Element{&TextRun{Font: cfg.font}}
	d.paragraphs = []Paragraph{d.newParagraph(nil)}
	d.starts = []int{0}
	return d
}

// RenderText parses text and replaces the document's content with it.
// Paragraphs are split at '\n'. Every text run is shaped with its own font,
// or the default font when it has none. The next Format lays out from
// scratch.
func (d *Document) RenderText(text string) error {
	if d.cfg.parser == nil {
		return ErrNilParser
	}

	parsed, err := d.cfg.parser.Parse(text, d.cfg.font)
	if err != nil {
		return fmt.Errorf("richtext: parse: %w", err)
	}

	elements, err := d.resolveElements(parsed)
	if err != nil {
		return err
	}

	d.text = parsed.Text
	d.elements = elements
	d.paragraphs = d.paragraphs[:0]
	d.starts = d.starts[:0]

	start := 0
	for i := 0; i <= len(d.text); i++ {
		if i < len(d.text) && d.text[i] != '\n' {
			continue
		}
		d.starts = append(d.starts, start)
		d.paragraphs = append(d.paragraphs, d.buildParagraph(start, i, parsed.ElementIndices))
		start = i + 1
	}

	d.areaWidth = -1
	Logger().Debug("richtext: text rendered",
		"runes", len(d.text), "paragraphs", len(d.paragraphs), "elements", len(d.elements))
	return nil
}

// resolveElements validates the parsed element table and gives text runs
// without a font the default font. Parser-owned elements are not modified.
func (d *Document) resolveElements(parsed *ParsedText) ([]Element, error) {
	if len(parsed.Elements) == 0 {
		return []Element{&TextRun{Font: d.cfg.font}}, nil
	}
	if len(parsed.Elements) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyElements, len(parsed.Elements))
	}
	for i, idx := range parsed.ElementIndices {
		if int(idx) >= len(parsed.Elements) {
			return nil, fmt.Errorf("%w: %d at code point %d", ErrInvalidElementIndex, idx, i)
		}
	}

	elements := slices.Clone(parsed.Elements)
	for i, el := range elements {
		if run, ok := el.(*TextRun); ok && run.Font == nil {
			c := *run
			c.Font = d.cfg.font
			elements[i] = &c
		}
	}
	return elements, nil
}

// buildParagraph shapes text[start:end] into a new paragraph.
func (d *Document) buildParagraph(start, end int, elementIndices []uint16) Paragraph {
	runes := d.text[start:end]

	var local []uint16
	if start < len(elementIndices) {
		local = elementIndices[start:min(end, len(elementIndices))]
	}

	dir := resolveDirection(d.cfg.dir, runes)
	glyphs := d.shape(runes, local, dir)

	originalIndices := make([]int, len(runes))
	for i := range originalIndices {
		originalIndices[i] = start + i
	}

	// Source indices are remapped to document offsets before
	// classification, so glyphs are classified against the whole text.
	p := d.newParagraph(glyphs)
	p.dir = dir
	p.SetupGlyphs(d.text, originalIndices, local, d.elements)
	return p
}

// shape converts runes into glyphs, one run of equal elements at a time.
// SourceIndex of the result is relative to runes.
func (d *Document) shape(runes []rune, elementIndices []uint16, dir Direction) []Glyph {
	defaultIdx := uint16(len(d.elements) - 1) //nolint:gosec // checked in resolveElements
	elementOf := func(i int) uint16 {
		if i < len(elementIndices) {
			return elementIndices[i]
		}
		return defaultIdx
	}

	glyphs := make([]Glyph, 0, len(runes))
	for runStart := 0; runStart < len(runes); {
		idx := elementOf(runStart)
		runEnd := runStart + 1
		for runEnd < len(runes) && elementOf(runEnd) == idx {
			runEnd++
		}

		var f Font
		if run, ok := d.elements[idx].(*TextRun); ok {
			f = run.Font
		}

		if f == nil {
			// Embedded objects, and text without a font, take one
			// placeholder glyph per code point.
			for i := runStart; i < runEnd; i++ {
				glyphs = append(glyphs, Glyph{SourceIndex: i})
			}
		} else {
			for _, sg := range f.Shape(runes[runStart:runEnd], dir) {
				glyphs = append(glyphs, Glyph{
					SourceIndex: runStart + sg.Cluster,
					Advance:     sg.Advance,
					Offset:      sg.Offset,
					Image:       sg.Image,
				})
			}
		}

		runStart = runEnd
	}
	return glyphs
}

func (d *Document) newParagraph(glyphs []Glyph) Paragraph {
	var p Paragraph
	p.SetGlyphs(glyphs)
	base, wrap := DecomposeHorizontalFormatting(d.cfg.horzFmt)
	p.horzFmt = base
	p.wordWrap = wrap
	p.lastJustifiedFmt, _ = DecomposeHorizontalFormatting(d.cfg.lastJustifiedFmt)
	p.dir = resolveDirection(d.cfg.dir, nil)
	return p
}

// Format lays the document out at areaWidth. host is passed to embedded
// objects when their size is polled. Only stale parts are recomputed.
func (d *Document) Format(areaWidth float64, host any) {
	if areaWidth != d.areaWidth {
		d.areaWidth = areaWidth
		for i := range d.paragraphs {
			d.paragraphs[i].OnAreaWidthChanged()
		}
	}

	h := fontHeight(d.cfg.font)
	for i := range d.paragraphs {
		d.paragraphs[i].Format(d.elements, areaWidth, h, host)
	}
}

// CreateRenderGeometry appends the quads of all paragraphs, top to bottom
// from pos, and returns the extended slice. All quads share one combine
// index. Stale paragraphs emit nothing and take no height.
func (d *Document) CreateRenderGeometry(out []Quad, pos Vec2, clip *Rect) []Quad {
	combineFrom := len(out)
	pen := pos
	for i := range d.paragraphs {
		out, pen = d.paragraphs[i].CreateRenderGeometry(out, pen, clip, d.elements, combineFrom)
		pen.X = pos.X
	}
	return out
}

// Extents returns the width of the widest line and the total height.
// ok is false while any paragraph is stale.
func (d *Document) Extents() (size Size, ok bool) {
	for i := range d.paragraphs {
		s, ok := d.paragraphs[i].Extents()
		if !ok {
			return Size{}, false
		}
		size.Width = max(size.Width, s.Width)
		size.Height += s.Height
	}
	return size, true
}

// FitsIntoAreaWidth reports whether every paragraph fit the last area width.
func (d *Document) FitsIntoAreaWidth() bool {
	for i := range d.paragraphs {
		if !d.paragraphs[i].FitsIntoAreaWidth() {
			return false
		}
	}
	return true
}

// Paragraphs returns the document's paragraphs. They may be formatted
// individually but must not be replaced.
func (d *Document) Paragraphs() []*Paragraph {
	ps := make([]*Paragraph, len(d.paragraphs))
	for i := range d.paragraphs {
		ps[i] = &d.paragraphs[i]
	}
	return ps
}

// LineCount returns the number of lines, or 0 while any paragraph is stale.
func (d *Document) LineCount() int {
	n := 0
	for i := range d.paragraphs {
		lines, ok := d.paragraphs[i].Lines()
		if !ok {
			return 0
		}
		n += len(lines)
	}
	return n
}

// Text returns the parsed code points, without markup.
func (d *Document) Text() []rune {
	return d.text
}

// Elements returns the element table. The last entry is the default style.
func (d *Document) Elements() []Element {
	return d.elements
}

// Clone returns a deep copy of the layout. Elements, fonts and images are
// shared.
func (d *Document) Clone() *Document {
	c := *d
	c.text = slices.Clone(d.text)
	c.elements = slices.Clone(d.elements)
	c.starts = slices.Clone(d.starts)
	c.paragraphs = make([]Paragraph, len(d.paragraphs))
	for i := range d.paragraphs {
		c.paragraphs[i] = d.paragraphs[i].clone()
	}
	return &c
}

// HorizontalFormatting returns the formatting last set on the document.
func (d *Document) HorizontalFormatting() HorizontalFormatting {
	return d.cfg.horzFmt
}

// SetHorizontalFormatting sets the formatting of all paragraphs.
// Word-wrapping variants enable word wrap, the others disable it.
func (d *Document) SetHorizontalFormatting(f HorizontalFormatting) {
	d.cfg.horzFmt = f
	base, wrap := DecomposeHorizontalFormatting(f)
	for i := range d.paragraphs {
		d.paragraphs[i].SetHorizontalFormatting(base)
		d.paragraphs[i].SetWordWrap(wrap)
	}
}

// SetWordWrap enables or disables word wrap for all paragraphs without
// changing their alignment.
func (d *Document) SetWordWrap(wrap bool) {
	base, _ := DecomposeHorizontalFormatting(d.cfg.horzFmt)
	d.cfg.horzFmt = composeHorizontalFormatting(base, wrap)
	for i := range d.paragraphs {
		d.paragraphs[i].SetWordWrap(wrap)
	}
}

// SetLastJustifiedLineFormatting sets the alignment of the last line of
// justified paragraphs.
func (d *Document) SetLastJustifiedLineFormatting(f HorizontalFormatting) {
	d.cfg.lastJustifiedFmt = f
	for i := range d.paragraphs {
		d.paragraphs[i].SetLastJustifiedLineFormatting(f)
	}
}

// SetDefaultFont sets the default font. It takes effect on the next
// RenderText.
func (d *Document) SetDefaultFont(f Font) {
	d.cfg.font = f
}

// DefaultFont returns the default font.
func (d *Document) DefaultFont() Font {
	return d.cfg.font
}

// Parser returns the parser used by RenderText.
func (d *Document) Parser() Parser {
	return d.cfg.parser
}

// SetParser sets the parser used by RenderText.
func (d *Document) SetParser(p Parser) {
	d.cfg.parser = p
}

// SetDefaultDirection sets the paragraph direction. It takes effect on the
// next RenderText, since shaping depends on it.
func (d *Document) SetDefaultDirection(dir Direction) {
	d.cfg.dir = dir
}

// CaretRect returns the zero-width caret rectangle of source index idx,
// relative to the document origin. idx is clamped to the text. ok is false
// while the document is stale.
func (d *Document) CaretRect(idx int) (r Rect, ok bool) {
	idx = max(0, min(idx, len(d.text)))

	var y float64
	for i := range d.paragraphs {
		p := &d.paragraphs[i]
		if i+1 < len(d.paragraphs) && idx >= d.starts[i+1] {
			s, ok := p.Extents()
			if !ok {
				return Rect{}, false
			}
			y += s.Height
			continue
		}

		pos, h, ok := p.caretOffset(idx)
		if !ok {
			return Rect{}, false
		}
		pos.Y += y
		return RectFromPosSize(pos, Size{Height: h}), true
	}
	return Rect{}, false
}

// IndexAtPosition returns the source index nearest to pt, relative to the
// document origin. Points above the text map to the first paragraph, points
// below it to the last. ok is false while the document is stale.
func (d *Document) IndexAtPosition(pt Vec2) (idx int, ok bool) {
	var y float64
	for i := range d.paragraphs {
		p := &d.paragraphs[i]
		s, ok := p.Extents()
		if !ok {
			return 0, false
		}

		last := i == len(d.paragraphs)-1
		if pt.Y >= y+s.Height && !last {
			y += s.Height
			continue
		}

		end := len(d.text)
		if !last {
			end = d.starts[i+1] - 1
		}
		return p.indexAt(Vec2{X: pt.X, Y: pt.Y - y}, end)
	}
	return 0, false
}
