package richtext

// breakPoint remembers the latest position where a line may end.
type breakPoint struct {
	// end is the glyph index the line would end at (exclusive).
	// The breakable glyph itself stays on the line it ends.
	end int

	// state is the line as it was right after the breakable glyph.
	state Line

	// adjust is the breakable glyph's full width minus its advance,
	// added when the line is closed there.
	adjust float64
}

// UpdateLines re-breaks the paragraph into lines if word wrap, the area
// width or the glyphs changed since the last call. It is a no-op otherwise.
//
// Glyphs are scanned once, left to right. With word wrap enabled, a glyph
// that does not fit moves everything after the latest breakpoint of the
// current line to a new line. If the glyph still does not fit, or there was
// no breakpoint, the word is broken before the glyph and the paragraph is
// marked as not fitting into the area width. Leading whitespace of wrapped
// lines takes no space.
func (p *Paragraph) UpdateLines(elements []Element, areaWidth float64) {
	if !p.linesDirty {
		return
	}

	p.linesDirty = false
	p.fitsIntoAreaWidth = true

	// The first line always exists, even for an empty paragraph.
	p.lines = append(p.lines[:0], newLine())
	cur := 0

	n := len(p.glyphs)
	if n == 0 {
		return
	}

	var (
		bp        breakPoint
		haveBreak bool
		prevFull  float64
		lineStart int
		leading   bool
	)

	for i := range p.glyphs {
		g := &p.glyphs[i]

		// Whitespace at the start of a wrapped line is never laid out.
		if leading && g.IsWhitespace() {
			prevFull = g.Advance
			continue
		}

		fits := true
		if p.wordWrap {
			full := fullWidth(g, elements)

			if p.lines[cur].Extents.Width+full > areaWidth {
				if haveBreak {
					tail := newLine()
					tail.Extents.Width = p.lines[cur].Extents.Width - bp.state.Extents.Width
					tail.JustifyableCount = p.lines[cur].JustifyableCount - bp.state.JustifyableCount

					p.lines[cur] = bp.state
					p.lines[cur].Extents.Width += bp.adjust
					p.lines[cur].GlyphEnd = bp.end
					lineStart = bp.end

					p.lines = append(p.lines, tail)
					cur++
					leading = bp.end == i

					// The breakpoint is consumed; keeping it would re-break
					// the new line at the same place forever.
					haveBreak = false
				}

				if leading && g.IsWhitespace() {
					prevFull = g.Advance
					continue
				}

				if p.lines[cur].Extents.Width+full > areaWidth {
					fits = false
					canSplit := i > lineStart && !leading

					// Whitespace that does not fit ends the line without
					// breaking a word; it is dropped as leading space.
					if !g.IsWhitespace() || !canSplit {
						p.fitsIntoAreaWidth = false
					}

					if canSplit {
						p.lines[cur].Extents.Width += prevFull - p.glyphs[i-1].Advance
						p.lines[cur].GlyphEnd = i
						lineStart = i

						p.lines = append(p.lines, newLine())
						cur++

						if g.IsWhitespace() {
							leading = true
							prevFull = g.Advance
							continue
						}
					}
				}
			}

			prevFull = full
		}

		line := &p.lines[cur]
		line.Extents.Width += g.Advance
		if g.IsJustifyable() {
			line.JustifyableCount++
		}
		leading = false

		if p.wordWrap && fits && g.IsBreakable() {
			bp = breakPoint{end: i + 1, state: *line, adjust: prevFull - g.Advance}
			haveBreak = true
		}
	}

	if !p.wordWrap {
		prevFull = fullWidth(&p.glyphs[n-1], elements)
	}

	// The last glyph of a line is counted with its full width.
	last := &p.lines[cur]
	if !leading {
		last.Extents.Width += prevFull - p.glyphs[n-1].Advance
	}
	last.GlyphEnd = n

	if !p.wordWrap && last.Extents.Width > areaWidth {
		p.fitsIntoAreaWidth = false
	}
}
