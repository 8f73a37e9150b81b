package richtext

import (
	"reflect"
	"testing"
)

func TestUpdateLines_WordWrap(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     float64
		wantLines [][2]int
		wantWidth []float64
		wantFits  bool
	}{
		{
			name:      "breaks after space",
			text:      "hello world",
			width:     60,
			wantLines: [][2]int{{0, 6}, {6, 11}},
			wantWidth: []float64{60, 50},
			wantFits:  true,
		},
		{
			name:      "everything fits",
			text:      "hello world",
			width:     200,
			wantLines: [][2]int{{0, 11}},
			wantWidth: []float64{110},
			wantFits:  true,
		},
		{
			name:      "overflowing space ends line",
			text:      "hello world",
			width:     55,
			wantLines: [][2]int{{0, 5}, {5, 11}},
			wantWidth: []float64{50, 50},
			wantFits:  true,
		},
		{
			name:      "long word is broken",
			text:      "abcdefgh",
			width:     30,
			wantLines: [][2]int{{0, 3}, {3, 6}, {6, 8}},
			wantWidth: []float64{30, 30, 20},
			wantFits:  false,
		},
		{
			name:      "leading spaces take no width",
			text:      "aa   bb",
			width:     30,
			wantLines: [][2]int{{0, 3}, {3, 7}},
			wantWidth: []float64{30, 20},
			wantFits:  true,
		},
		{
			name:      "empty",
			text:      "",
			width:     30,
			wantLines: [][2]int{{0, 0}},
			wantWidth: []float64{0},
			wantFits:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := textElements(10, 12)
			p := newTestParagraph(t, tt.text, nil, elements)
			p.SetWordWrap(true)
			p.Format(elements, tt.width, 12, nil)

			lines := mustLines(t, p)
			if got := lineRanges(lines); !reflect.DeepEqual(got, tt.wantLines) {
				t.Fatalf("line ranges = %v, want %v", got, tt.wantLines)
			}
			for i, l := range lines {
				if l.Extents.Width != tt.wantWidth[i] {
					t.Errorf("line %d width = %v, want %v", i, l.Extents.Width, tt.wantWidth[i])
				}
			}
			if got := p.FitsIntoAreaWidth(); got != tt.wantFits {
				t.Errorf("FitsIntoAreaWidth() = %v, want %v", got, tt.wantFits)
			}
		})
	}
}

func TestUpdateLines_NoWrap(t *testing.T) {
	elements := textElements(10, 12)
	p := newTestParagraph(t, "hello world", nil, elements)

	p.Format(elements, 60, 12, nil)
	lines := mustLines(t, p)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if lines[0].GlyphEnd != 11 || lines[0].Extents.Width != 110 {
		t.Errorf("line = %+v, want GlyphEnd 11 width 110", lines[0])
	}
	if p.FitsIntoAreaWidth() {
		t.Error("FitsIntoAreaWidth() = true for 110px line in 60px area")
	}

	p.OnAreaWidthChanged()
	if p.LinesDirty() {
		t.Error("area width change re-broke an unwrapped paragraph")
	}
	p.Format(elements, 200, 12, nil)
	if !p.FitsIntoAreaWidth() {
		t.Error("FitsIntoAreaWidth() = false for 110px line in 200px area")
	}
}

func TestUpdateLines_Coverage(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"   leading and trailing   ",
		"a\tb\tc d\re",
		"supercalifragilisticexpialidocious is long",
		"x",
	}
	widths := []float64{5, 10, 25, 40, 75, 1000}

	elements := textElements(10, 12)
	for _, text := range texts {
		for _, width := range widths {
			p := newTestParagraph(t, text, nil, elements)
			p.SetWordWrap(true)
			p.Format(elements, width, 12, nil)

			lines := mustLines(t, p)
			prev := 0
			for i, l := range lines {
				if l.GlyphEnd < prev {
					t.Errorf("%q@%v: line %d ends at %d before previous end %d", text, width, i, l.GlyphEnd, prev)
				}
				if p.FitsIntoAreaWidth() && l.Extents.Width > width {
					t.Errorf("%q@%v: line %d width %v exceeds area", text, width, i, l.Extents.Width)
				}
				prev = l.GlyphEnd
			}
			if prev != len([]rune(text)) {
				t.Errorf("%q@%v: lines cover %d glyphs, want %d", text, width, prev, len([]rune(text)))
			}
		}
	}
}

func TestUpdateLines_Idempotent(t *testing.T) {
	elements := textElements(10, 12)
	p := newTestParagraph(t, "aa bb cc dd ee", nil, elements)
	p.SetWordWrap(true)
	p.Format(elements, 45, 12, nil)
	first := append([]Line(nil), mustLines(t, p)...)

	// Not dirty: no-op.
	p.UpdateLines(elements, 1000)
	if got := mustLines(t, p); !reflect.DeepEqual(got, first) {
		t.Errorf("UpdateLines on clean paragraph changed lines:\n got %+v\nwant %+v", got, first)
	}

	p.SetWordWrap(false)
	p.SetWordWrap(true)
	p.Format(elements, 45, 12, nil)
	if got := mustLines(t, p); !reflect.DeepEqual(got, first) {
		t.Errorf("re-break with same inputs differs:\n got %+v\nwant %+v", got, first)
	}
}

func TestUpdateLineHeights(t *testing.T) {
	small := &TextRun{Font: newFakeFont(10, 12)}
	big := &TextRun{Font: newFakeFont(10, 20)}
	elements := []Element{big, small}

	p := newTestParagraph(t, "ab cd", []uint16{1, 1, 1, 0, 1}, elements)
	p.SetWordWrap(true)
	p.Format(elements, 30, 14, nil)

	lines := mustLines(t, p)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Extents.Height != 12 {
		t.Errorf("line 0 height = %v, want 12", lines[0].Extents.Height)
	}
	if lines[1].Extents.Height != 20 {
		t.Errorf("line 1 height = %v, want 20", lines[1].Extents.Height)
	}
}

func TestUpdateLineHeights_EmptyParagraph(t *testing.T) {
	p := NewParagraph(nil)
	p.Format(nil, 100, 14, nil)

	lines := mustLines(t, p)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if lines[0].GlyphEnd != 0 || lines[0].Extents.Height != 14 {
		t.Errorf("line = %+v, want GlyphEnd 0 height 14", lines[0])
	}
}

func TestUpdateHorizontalFormatting(t *testing.T) {
	tests := []struct {
		fmt        HorizontalFormatting
		wantOffset float64
	}{
		{HorzLeft, 0},
		{HorzRight, 70},
		{HorzCentre, 35},
		{HorzJustified, 0},
	}

	for _, tt := range tests {
		t.Run(tt.fmt.String(), func(t *testing.T) {
			elements := textElements(10, 12)
			p := newTestParagraph(t, "abc", nil, elements)
			p.SetHorizontalFormatting(tt.fmt)
			p.Format(elements, 100, 12, nil)

			line := mustLines(t, p)[0]
			if line.HorzOffset != tt.wantOffset {
				t.Errorf("HorzOffset = %v, want %v", line.HorzOffset, tt.wantOffset)
			}
			if line.JustifySpace != 0 {
				t.Errorf("JustifySpace = %v, want 0", line.JustifySpace)
			}
		})
	}
}

func TestUpdateHorizontalFormatting_Justified(t *testing.T) {
	const width = 75
	elements := textElements(10, 12)
	p := newTestParagraph(t, "aa bb cc dd", nil, elements)
	p.SetWordWrap(true)
	p.SetHorizontalFormatting(HorzJustified)
	p.SetLastJustifiedLineFormatting(HorzRight)
	p.Format(elements, width, 12, nil)

	lines := mustLines(t, p)
	if got, want := lineRanges(lines), [][2]int{{0, 6}, {6, 11}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("line ranges = %v, want %v", got, want)
	}

	for i, l := range lines[:len(lines)-1] {
		if l.JustifyableCount == 0 || l.Extents.Width >= width {
			continue
		}
		got := l.Extents.Width + float64(l.JustifyableCount)*l.JustifySpace
		if got != width {
			t.Errorf("line %d: width + justification = %v, want %v", i, got, width)
		}
	}
	if lines[0].JustifySpace != 7.5 {
		t.Errorf("line 0 JustifySpace = %v, want 7.5", lines[0].JustifySpace)
	}

	last := lines[len(lines)-1]
	if last.JustifySpace != 0 || last.HorzOffset != 25 {
		t.Errorf("last line = %+v, want right aligned without justification", last)
	}

	// Switching back to left alignment clears stale justification.
	p.SetHorizontalFormatting(HorzLeft)
	p.Format(elements, width, 12, nil)
	for i, l := range mustLines(t, p) {
		if l.JustifySpace != 0 || l.HorzOffset != 0 {
			t.Errorf("line %d after HorzLeft = %+v", i, l)
		}
	}
}

func TestUpdateEmbeddedObjectExtents(t *testing.T) {
	obj := &fakeObject{size: Size{Width: 10, Height: 10}}
	elements := []Element{
		&EmbeddedWidget{Object: obj},
		&TextRun{Font: newFakeFont(10, 12)},
	}

	p := newTestParagraph(t, "a￼b", []uint16{1, 0, 1}, elements)
	p.Format(elements, 100, 12, nil)

	line := mustLines(t, p)[0]
	if line.Extents.Width != 30 || line.Extents.Height != 12 {
		t.Fatalf("line extents = %+v, want 30x12", line.Extents)
	}

	obj.size.Width = 20
	p.UpdateEmbeddedObjectExtents(elements, nil)
	if p.LinesDirty() {
		t.Error("resize in unwrapped paragraph forced a re-break")
	}
	if _, ok := p.Lines(); ok {
		t.Error("Lines() returned data with stale horizontal formatting")
	}

	p.Format(elements, 100, 12, nil)
	if got := mustLines(t, p)[0].Extents.Width; got != 40 {
		t.Errorf("width after resize = %v, want 40", got)
	}

	obj.size.Height = 30
	p.Format(elements, 100, 12, nil)
	if got := mustLines(t, p)[0].Extents.Height; got != 30 {
		t.Errorf("height after resize = %v, want 30", got)
	}
}

func TestUpdateEmbeddedObjectExtents_WordWrap(t *testing.T) {
	obj := &fakeObject{size: Size{Width: 10, Height: 10}}
	elements := []Element{
		&EmbeddedWidget{Object: obj},
		&TextRun{Font: newFakeFont(10, 12)},
	}

	p := newTestParagraph(t, "a￼b", []uint16{1, 0, 1}, elements)
	p.SetWordWrap(true)
	p.Format(elements, 100, 12, nil)

	obj.size.Width = 20
	p.UpdateEmbeddedObjectExtents(elements, nil)
	if !p.LinesDirty() {
		t.Error("resize in wrapped paragraph did not force a re-break")
	}
}

func TestParagraph_StaleReadsRefused(t *testing.T) {
	elements := textElements(10, 12)
	p := newTestParagraph(t, "abc", nil, elements)

	if _, ok := p.Lines(); ok {
		t.Error("Lines() ok before Format")
	}
	if _, ok := p.Extents(); ok {
		t.Error("Extents() ok before Format")
	}
	if out, _ := p.CreateRenderGeometry(nil, Vec2{}, nil, elements, 0); len(out) != 0 {
		t.Errorf("CreateRenderGeometry emitted %d quads before Format", len(out))
	}
}

func TestSetupGlyphs(t *testing.T) {
	run := &TextRun{
		ElementStyle: ElementStyle{Pad: Padding{Left: 2, Top: 1, Right: 3, Bottom: 1}},
		Font:         newFakeFont(10, 12),
	}
	elements := []Element{run}

	// Index 5 is outside the table and falls back to the default element.
	p := newTestParagraph(t, "a b", []uint16{5}, elements)

	glyphs := p.Glyphs()
	g := glyphs[0]
	if g.ElementIndex != 0 {
		t.Errorf("ElementIndex = %d, want 0", g.ElementIndex)
	}
	if g.Advance != 15 || g.Height != 14 {
		t.Errorf("metrics = %vx%v, want 15x14", g.Advance, g.Height)
	}
	if g.Offset != (Vec2{X: 2, Y: 1}) {
		t.Errorf("Offset = %+v, want {2 1}", g.Offset)
	}

	if !glyphs[1].Has(GlyphWhitespace | GlyphBreakable | GlyphJustifyable) {
		t.Errorf("space flags = %b", glyphs[1].Flags)
	}
	if glyphs[0].Flags != 0 {
		t.Errorf("letter flags = %b, want 0", glyphs[0].Flags)
	}
}

func TestSetupGlyphs_OriginalIndices(t *testing.T) {
	big := &TextRun{Font: newFakeFont(10, 20)}
	elements := []Element{big, &TextRun{Font: newFakeFont(10, 12)}}

	glyphs := []Glyph{{SourceIndex: 0}, {SourceIndex: 1}}
	p := NewParagraph(glyphs)
	p.SetupGlyphs([]rune("xxxxab"), []int{4, 5}, []uint16{0, 1}, elements)

	got := p.Glyphs()
	if got[0].SourceIndex != 4 || got[1].SourceIndex != 5 {
		t.Errorf("source indices = %d,%d, want 4,5", got[0].SourceIndex, got[1].SourceIndex)
	}
	if got[0].ElementIndex != 0 || got[1].ElementIndex != 1 {
		t.Errorf("element indices = %d,%d, want 0,1", got[0].ElementIndex, got[1].ElementIndex)
	}
	if got[0].Height != 20 {
		t.Errorf("height = %v, want 20", got[0].Height)
	}
}

func TestHorizontalFormattingString(t *testing.T) {
	tests := []struct {
		f    HorizontalFormatting
		want string
	}{
		{HorzLeft, "LeftAligned"},
		{HorzJustified, "Justified"},
		{HorzWordWrapCentre, "WordWrapCentreAligned"},
		{HorizontalFormatting(99), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("HorizontalFormatting(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestDecomposeHorizontalFormatting(t *testing.T) {
	tests := []struct {
		f        HorizontalFormatting
		wantBase HorizontalFormatting
		wantWrap bool
	}{
		{HorzRight, HorzRight, false},
		{HorzWordWrapLeft, HorzLeft, true},
		{HorzWordWrapJustified, HorzJustified, true},
	}
	for _, tt := range tests {
		base, wrap := DecomposeHorizontalFormatting(tt.f)
		if base != tt.wantBase || wrap != tt.wantWrap {
			t.Errorf("Decompose(%v) = %v,%v, want %v,%v", tt.f, base, wrap, tt.wantBase, tt.wantWrap)
		}
		if got := composeHorizontalFormatting(base, wrap); got != tt.f {
			t.Errorf("compose(%v,%v) = %v, want %v", base, wrap, got, tt.f)
		}
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"hello", DirectionLTR},
		{"123 שלום", DirectionRTL},
		{"مرحبا", DirectionRTL},
		{"", DirectionLTR},
		{"  42 ", DirectionLTR},
	}
	for _, tt := range tests {
		if got := DetectDirection([]rune(tt.text)); got != tt.want {
			t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
