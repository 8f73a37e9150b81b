package richtext

import "image/color"

// Quad is one draw command produced by geometry emission.
type Quad struct {
	// Image is drawn stretched over Dest.
	Image Image

	// Dest is the destination rectangle in pixels.
	Dest Rect

	// Clip is the clip rectangle, nil when unclipped.
	Clip *Rect

	// CombineFrom is the index of the first quad in the output that this
	// quad may share a geometry buffer with.
	CombineFrom int

	// SourceIndex is the source text index of the glyph that produced it.
	SourceIndex int

	// Colour modulates the image, nil for the renderer default.
	Colour color.Color
}

// CreateRenderGeometry appends one quad per laid-out glyph that has an image
// and returns the extended slice and the pen moved below the paragraph.
//
// Lines are walked top to bottom, each starting at pen.X plus its horizontal
// offset. Quads entirely outside clip are culled; a nil clip disables
// culling. Nothing is emitted while the paragraph is not formatted.
func (p *Paragraph) CreateRenderGeometry(out []Quad, pen Vec2, clip *Rect, elements []Element, combineFrom int) ([]Quad, Vec2) {
	if !p.upToDate() {
		Logger().Debug("richtext: geometry requested for stale paragraph")
		return out, pen
	}

	for li := range p.lines {
		line := &p.lines[li]
		x := pen.X + line.HorzOffset

		start, end := p.visibleRange(li)
		for i := start; i < end; i++ {
			g := &p.glyphs[i]
			el := elementAt(elements, g.ElementIndex)

			if g.Image != nil {
				q := glyphQuad(g, el, Vec2{X: x, Y: pen.Y}, line.Extents.Height)
				if clip == nil || q.Dest.Overlaps(*clip) {
					q.Clip = clip
					q.CombineFrom = combineFrom
					out = append(out, q)
				}
			}

			x += g.Advance
			if g.IsJustifyable() {
				x += line.JustifySpace
			}
		}

		pen.Y += line.Extents.Height
	}

	return out, pen
}

// glyphQuad positions the glyph image inside a line of height lineHeight
// whose top-left pen position is pen.
func glyphQuad(g *Glyph, el Element, pen Vec2, lineHeight float64) Quad {
	size := g.Image.RenderedSize()
	if img, ok := el.(*EmbeddedImage); ok {
		size = imageSize(img)
	}

	vert := VertBottom
	var colour color.Color
	if el != nil {
		vert = el.VerticalFormatting()
		colour = el.Colour()
	}

	var dy float64
	switch vert {
	case VertCentre:
		dy = (lineHeight - g.Height) * 0.5
	case VertTop:
	case VertStretched:
		scale := 0.0
		if g.Height > 0 {
			scale = lineHeight / g.Height
		}
		size.Height *= scale
	default:
		dy = lineHeight - g.Height
	}

	pos := pen.Add(g.Offset)
	pos.Y += dy
	return Quad{
		Image:       g.Image,
		Dest:        RectFromPosSize(pos, size),
		SourceIndex: g.SourceIndex,
		Colour:      colour,
	}
}

// caretOffset returns the caret position of source index idx relative to the
// paragraph origin, and the height of its line. Indices beyond the last
// glyph map to the end of the last line.
func (p *Paragraph) caretOffset(idx int) (pos Vec2, height float64, ok bool) {
	if !p.upToDate() {
		return Vec2{}, 0, false
	}

	var y float64
	for li := range p.lines {
		line := &p.lines[li]
		x := line.HorzOffset
		start, end := p.visibleRange(li)

		for i := p.lineStart(li); i < end; i++ {
			g := &p.glyphs[i]
			if g.SourceIndex >= idx {
				return Vec2{X: x, Y: y}, line.Extents.Height, true
			}
			if i < start {
				continue
			}
			x += g.Advance
			if g.IsJustifyable() {
				x += line.JustifySpace
			}
		}

		if li == len(p.lines)-1 {
			return Vec2{X: x, Y: y}, line.Extents.Height, true
		}
		y += line.Extents.Height
	}

	return Vec2{}, 0, false
}

// indexAt returns the source index closest to pt, which is relative to the
// paragraph origin. end is returned for positions past the last glyph of the
// last line.
func (p *Paragraph) indexAt(pt Vec2, end int) (int, bool) {
	if !p.upToDate() {
		return 0, false
	}

	var y float64
	for li := range p.lines {
		line := &p.lines[li]
		last := li == len(p.lines)-1
		if pt.Y >= y+line.Extents.Height && !last {
			y += line.Extents.Height
			continue
		}

		x := line.HorzOffset
		start, lineEnd := p.visibleRange(li)
		for i := start; i < lineEnd; i++ {
			g := &p.glyphs[i]
			adv := g.Advance
			if g.IsJustifyable() {
				adv += line.JustifySpace
			}
			if pt.X < x+adv*0.5 {
				return g.SourceIndex, true
			}
			x += adv
		}

		if last || lineEnd == 0 {
			return end, true
		}
		// Past the end of a wrapped line: before its trailing glyph when
		// that is a break, after it otherwise.
		g := &p.glyphs[lineEnd-1]
		if g.IsWhitespace() {
			return g.SourceIndex, true
		}
		return g.SourceIndex + 1, true
	}

	return end, true
}
