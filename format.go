package richtext

// UpdateLineHeights recomputes the height of every line marked stale.
// A line is as tall as its tallest laid-out glyph. A line without such
// glyphs takes the height of the nearest preceding text glyph, or
// defaultFontHeight if there is none. No-op while lines need a re-break.
func (p *Paragraph) UpdateLineHeights(defaultFontHeight float64) {
	if p.linesDirty {
		return
	}

	for li := range p.lines {
		line := &p.lines[li]
		if !line.heightDirty {
			continue
		}
		line.heightDirty = false

		start, end := p.visibleRange(li)
		if start == end {
			line.Extents.Height = p.precedingTextHeight(start, defaultFontHeight)
			continue
		}

		line.Extents.Height = 0
		for i := start; i < end; i++ {
			line.Extents.Height = max(line.Extents.Height, p.glyphs[i].Height)
		}
	}
}

// precedingTextHeight returns the height of the last text glyph before
// glyph index end, or def.
func (p *Paragraph) precedingTextHeight(end int, def float64) float64 {
	for i := min(end, len(p.glyphs)) - 1; i >= 0; i-- {
		if !p.glyphs[i].IsEmbeddedObject() {
			return p.glyphs[i].Height
		}
	}
	return def
}

// UpdateHorizontalFormatting recomputes the offset and justification of
// every line marked stale. The last line of a justified paragraph uses the
// last-justified-line formatting instead. No-op while lines need a re-break.
//
// An unwrapped paragraph is not re-broken when the area width changes, so
// whether it fits is re-evaluated here.
func (p *Paragraph) UpdateHorizontalFormatting(areaWidth float64) {
	if p.linesDirty {
		return
	}

	if !p.wordWrap {
		p.fitsIntoAreaWidth = p.lines[0].Extents.Width <= areaWidth
	}

	lastLine := len(p.lines) - 1
	for li := range p.lines {
		line := &p.lines[li]
		if !line.horzFmtDirty {
			continue
		}
		line.horzFmtDirty = false

		f := p.horzFmt
		if li == lastLine && f == HorzJustified {
			f = p.lastJustifiedFmt
		}

		line.HorzOffset = 0
		line.JustifySpace = 0

		switch f {
		case HorzRight:
			line.HorzOffset = areaWidth - line.Extents.Width
		case HorzCentre:
			line.HorzOffset = (areaWidth - line.Extents.Width) * 0.5
		case HorzJustified:
			if line.JustifyableCount > 0 && line.Extents.Width < areaWidth {
				line.JustifySpace = (areaWidth - line.Extents.Width) / float64(line.JustifyableCount)
			}
		}
	}
}
