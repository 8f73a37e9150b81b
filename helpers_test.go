package richtext

import (
	"slices"
	"testing"
)

// fakeImage is an image of a fixed size.
type fakeImage struct {
	size Size
}

func (i *fakeImage) RenderedSize() Size { return i.size }

// fakeFont gives every code point the same advance. Whitespace has no image.
type fakeFont struct {
	advance, height float64
}

func newFakeFont(advance, height float64) *fakeFont {
	return &fakeFont{advance: advance, height: height}
}

func (f *fakeFont) Height() float64 { return f.height }

func (f *fakeFont) Shape(text []rune, dir Direction) []ShapedGlyph {
	out := make([]ShapedGlyph, len(text))
	for i, r := range text {
		out[i] = ShapedGlyph{Cluster: i, Advance: f.advance}
		if classifyCodePoint(r)&GlyphWhitespace == 0 {
			out[i].Image = &fakeImage{size: Size{Width: f.advance, Height: f.height}}
		}
	}
	if dir == DirectionRTL {
		slices.Reverse(out)
	}
	return out
}

// fakeObject is an embedded object of a settable size.
type fakeObject struct {
	size Size
}

func (o *fakeObject) PixelSize(any) Size { return o.size }

// newTestParagraph builds one glyph per code point of text, shaped with the
// font of its element, and binds them with SetupGlyphs.
func newTestParagraph(t *testing.T, text string, elementIndices []uint16, elements []Element) *Paragraph {
	t.Helper()

	runes := []rune(text)
	glyphs := make([]Glyph, len(runes))
	for i, r := range runes {
		glyphs[i].SourceIndex = i

		idx := uint16(len(elements) - 1) //nolint:gosec // test tables are tiny
		if i < len(elementIndices) && int(elementIndices[i]) < len(elements) {
			idx = elementIndices[i]
		}
		if run, ok := elements[idx].(*TextRun); ok && run.Font != nil {
			sg := run.Font.Shape([]rune{r}, DirectionLTR)[0]
			glyphs[i].Advance = sg.Advance
			glyphs[i].Image = sg.Image
		}
	}

	p := NewParagraph(glyphs)
	p.SetupGlyphs(runes, nil, elementIndices, elements)
	return p
}

// textElements returns an element table holding a single text run.
func textElements(advance, height float64) []Element {
	return []Element{&TextRun{Font: newFakeFont(advance, height)}}
}

// mustLines returns the lines of a formatted paragraph.
func mustLines(t *testing.T, p *Paragraph) []Line {
	t.Helper()
	lines, ok := p.Lines()
	if !ok {
		t.Fatal("Lines() reported stale data after Format")
	}
	return lines
}

// lineRanges returns the glyph range of every line.
func lineRanges(lines []Line) [][2]int {
	out := make([][2]int, len(lines))
	start := 0
	for i, l := range lines {
		out[i] = [2]int{start, l.GlyphEnd}
		start = l.GlyphEnd
	}
	return out
}
