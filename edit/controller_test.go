package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/markup"
)

func TestInsert_MaxLength(t *testing.T) {
	full := 0
	c := New(WithMaxLength(3), WithHooks(Hooks{EditboxFull: func() { full++ }}))

	assert.Equal(t, ResultFull, c.Insert("test"))
	assert.Equal(t, "", c.Text())
	assert.Equal(t, 1, full)
	assert.False(t, c.CanUndo())

	assert.Equal(t, ResultApplied, c.Insert("tes"))
	assert.Equal(t, ResultFull, c.Insert("t"))
	assert.Equal(t, "tes", c.Text())
	assert.Equal(t, 2, full)
}

func TestInsert_ReplacesSelection(t *testing.T) {
	c := New(WithText("hello world"))
	c.SetSelection(11, 6)
	c.SetCaret(11)

	require.Equal(t, ResultApplied, c.Insert("there"))
	assert.Equal(t, "hello there", c.Text())
	assert.Equal(t, 11, c.Caret())
	assert.Equal(t, 0, c.SelectionLength())
}

func TestInsert_ReadOnly(t *testing.T) {
	cb := &MemoryClipboard{}
	cb.SetText("xyz")
	c := New(WithText("abc"), WithReadOnly(true), WithClipboard(cb))
	c.SetCaret(2)

	assert.Equal(t, ResultReadOnly, c.Insert("q"))
	assert.Equal(t, ResultReadOnly, c.Backspace())
	assert.Equal(t, ResultReadOnly, c.Delete())
	assert.Equal(t, ResultReadOnly, c.Paste())

	c.SelectAll()
	assert.Equal(t, ResultReadOnly, c.Cut())
	assert.True(t, c.Copy(), "copy is allowed while read-only")
	assert.Equal(t, "abc", cb.Text())

	assert.Equal(t, "abc", c.Text())
	assert.False(t, c.CanUndo())
}

func TestUndoRedo_ReadOnly(t *testing.T) {
	c := New(WithText("abc"))
	c.SetCaret(3)
	require.Equal(t, ResultApplied, c.Insert("d"))
	require.True(t, c.Undo())

	c.SetReadOnly(true)
	assert.False(t, c.Redo())
	assert.Equal(t, "abc", c.Text())

	c.SetReadOnly(false)
	require.True(t, c.Redo())
	c.SetReadOnly(true)
	assert.False(t, c.Undo())
	assert.Equal(t, "abcd", c.Text())
}

func TestPositionsAreClamped(t *testing.T) {
	c := New(WithText("abc"))

	c.SetCaret(42)
	assert.Equal(t, 3, c.Caret())
	c.SetCaret(-1)
	assert.Equal(t, 0, c.Caret())

	c.SetSelection(10, -5)
	start, end := c.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	c.SetText("a")
	start, end = c.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)
}

func TestBackspaceAndDelete_Graphemes(t *testing.T) {
	// "e" + combining acute accent is one grapheme cluster.
	c := New(WithText("ae\u0301b"))
	c.SetCaret(3)

	require.Equal(t, ResultApplied, c.Backspace())
	assert.Equal(t, "ab", c.Text())
	assert.Equal(t, 1, c.Caret())

	require.Equal(t, ResultApplied, c.Delete())
	assert.Equal(t, "a", c.Text())
	assert.Equal(t, ResultNoop, c.Delete())

	c.SetCaret(0)
	assert.Equal(t, ResultNoop, c.Backspace())
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	c := New(WithText("hello"))
	c.SetCaret(5)
	require.Equal(t, ResultApplied, c.Insert(" world"))
	before, caret := c.Text(), c.Caret()

	require.True(t, c.Undo())
	assert.Equal(t, "hello", c.Text())
	assert.Equal(t, 5, c.Caret())

	require.True(t, c.Redo())
	assert.Equal(t, before, c.Text())
	assert.Equal(t, caret, c.Caret())

	assert.False(t, c.Redo())
}

func TestUndo_EmptyHistory(t *testing.T) {
	c := New(WithText("abc"))
	assert.False(t, c.Undo())
	assert.False(t, c.Redo())
	assert.Equal(t, "abc", c.Text())
}

func TestUndo_PasteOverSelection(t *testing.T) {
	cb := &MemoryClipboard{}
	cb.SetText("XY")
	c := New(WithText("abcdef"), WithClipboard(cb))
	c.SetSelection(1, 4)

	require.Equal(t, ResultApplied, c.Paste())
	assert.Equal(t, "aXYef", c.Text())

	require.True(t, c.Undo())
	assert.Equal(t, "abcdef", c.Text())
	assert.Equal(t, 4, c.Caret())
	assert.False(t, c.CanUndo())

	require.True(t, c.Redo())
	assert.Equal(t, "aXYef", c.Text())
	assert.Equal(t, 3, c.Caret())
}

func TestUndo_NewEditDropsRedo(t *testing.T) {
	c := New()
	c.Insert("a")
	c.Insert("b")
	require.True(t, c.Undo())
	require.True(t, c.CanRedo())

	c.Insert("c")
	assert.False(t, c.CanRedo())
	assert.Equal(t, "ac", c.Text())
}

func TestUndo_Limit(t *testing.T) {
	c := New(WithUndoLimit(2))
	for _, s := range []string{"a", "b", "c"} {
		c.Insert(s)
	}

	assert.True(t, c.Undo())
	assert.True(t, c.Undo())
	assert.False(t, c.Undo())
	assert.Equal(t, "a", c.Text())
}

func TestSetMaxLength_Trims(t *testing.T) {
	c := New(WithText("abcdef"))
	c.SetCaret(6)
	c.Insert("g")

	c.SetMaxLength(3)
	assert.Equal(t, "abc", c.Text())
	assert.Equal(t, 3, c.Caret())
	assert.False(t, c.CanUndo())
}

func TestCutCopyPaste(t *testing.T) {
	cb := &MemoryClipboard{}
	c := New(WithText("hello world"), WithClipboard(cb))

	assert.False(t, c.Copy(), "copy without selection")

	c.SetSelection(0, 6)
	require.Equal(t, ResultApplied, c.Cut())
	assert.Equal(t, "world", c.Text())
	assert.Equal(t, "hello ", cb.Text())

	c.End(false)
	require.Equal(t, ResultApplied, c.Paste())
	assert.Equal(t, "worldhello ", c.Text())
}

func TestCopy_Masked(t *testing.T) {
	cb := &MemoryClipboard{}
	c := New(WithText("secret"), WithClipboard(cb), WithMaskRune('•'))
	c.SelectAll()

	assert.False(t, c.Copy())
	assert.Equal(t, "", cb.Text())
}

func TestValidation(t *testing.T) {
	var states []MatchState
	c := New(WithHooks(Hooks{ValidityChanged: func(s MatchState) { states = append(states, s) }}))
	require.NoError(t, c.SetValidationString(`\d{0,3}`))

	assert.Equal(t, ResultApplied, c.Insert("12"))
	assert.Equal(t, ResultRejected, c.Insert("x"))
	assert.Equal(t, "12", c.Text())
	assert.Equal(t, ResultRejected, c.Insert("34"))
	assert.Equal(t, MatchValid, c.Validity())

	require.NoError(t, c.SetValidationString(`\d{4}`))
	assert.Equal(t, MatchInvalid, c.Validity())
	assert.Equal(t, []MatchState{MatchInvalid}, states)

	assert.ErrorIs(t, c.SetValidationString(`(`), ErrInvalidPattern)
}

func TestNavigation(t *testing.T) {
	c := New(WithText("one two, three"))

	c.WordRight(false)
	assert.Equal(t, 4, c.Caret())
	c.WordRight(false)
	assert.Equal(t, 9, c.Caret())
	c.WordRight(false)
	assert.Equal(t, 14, c.Caret())

	c.WordLeft(true)
	assert.Equal(t, 9, c.Caret())
	start, end := c.Selection()
	assert.Equal(t, []int{9, 14}, []int{start, end})

	c.WordLeft(true)
	start, end = c.Selection()
	assert.Equal(t, []int{4, 14}, []int{start, end})

	c.MoveRight(false)
	assert.Equal(t, 5, c.Caret())
	assert.Equal(t, 0, c.SelectionLength())

	c.Home(true)
	start, end = c.Selection()
	assert.Equal(t, []int{0, 5}, []int{start, end})
}

func TestDrag(t *testing.T) {
	c := New(WithText("hello world"))

	c.DragTo(3)
	assert.Equal(t, 0, c.SelectionLength(), "DragTo outside a drag")

	c.BeginDrag(6)
	c.DragTo(2)
	c.EndDrag()

	start, end := c.Selection()
	assert.Equal(t, []int{2, 6}, []int{start, end})
	assert.Equal(t, 2, c.Caret())
	assert.Equal(t, "llo ", c.SelectedText())
	assert.False(t, c.Dragging())
}

func TestHandle(t *testing.T) {
	c := New(WithText("abc"))

	assert.True(t, c.Handle(ActionEnd))
	assert.True(t, c.Handle(ActionSelectLeft))
	assert.Equal(t, "c", c.SelectedText())
	assert.True(t, c.Handle(ActionBackspace))
	assert.Equal(t, "ab", c.Text())
	assert.True(t, c.Handle(ActionUndo))
	assert.Equal(t, "abc", c.Text())
	assert.False(t, c.Handle(ActionUndo))
	assert.False(t, c.Handle(ActionNone))
	assert.Equal(t, "SelectWordRight", ActionSelectWordRight.String())
	assert.Equal(t, unknownStr, Action(200).String())
}

func TestHooks(t *testing.T) {
	var texts []string
	var carets []int
	c := New(WithHooks(Hooks{
		TextChanged: func(s string) { texts = append(texts, s) },
		CaretMoved:  func(i int) { carets = append(carets, i) },
	}))

	c.Insert("ab")
	c.MoveLeft(false)
	c.Insert("x")

	assert.Equal(t, []string{"ab", "axb"}, texts)
	assert.Equal(t, []int{2, 1, 2}, carets)
}

// fixedFont gives every code point the same advance.
type fixedFont struct{}

func (fixedFont) Height() float64 { return 10 }

func (fixedFont) Shape(text []rune, _ richtext.Direction) []richtext.ShapedGlyph {
	out := make([]richtext.ShapedGlyph, len(text))
	for i := range text {
		out[i] = richtext.ShapedGlyph{Cluster: i, Advance: 8}
	}
	return out
}

func TestDocument_ReRendersLazily(t *testing.T) {
	c := New(
		WithText("hello"),
		WithDocumentOptions(richtext.WithDefaultFont(fixedFont{})),
	)

	d := c.Layout(100, nil)
	assert.Equal(t, "hello", string(d.Text()))

	c.End(false)
	c.Insert(" world")
	assert.Equal(t, "hello", string(d.Text()), "document re-rendered eagerly")

	d = c.Layout(100, nil)
	assert.Equal(t, "hello world", string(d.Text()))

	r, ok := c.CaretRect()
	require.True(t, ok)
	assert.Equal(t, 88.0, r.Min.X)

	idx, ok := c.IndexAtPosition(richtext.Vec2{X: 17, Y: 2})
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestDocument_Masked(t *testing.T) {
	c := New(
		WithText("pw"),
		WithMaskRune('*'),
		WithDocumentOptions(richtext.WithDefaultFont(fixedFont{})),
	)
	assert.Equal(t, "**", string(c.Document().Text()))

	c.SetMasked(false)
	assert.Equal(t, "pw", string(c.Document().Text()))
}

func TestSetText_ValidatesTrimmedText(t *testing.T) {
	c := New(WithMaxLength(3))
	require.NoError(t, c.SetValidationString("abc"))

	c.SetText("abcd")
	assert.Equal(t, "abc", c.Text())
	assert.Equal(t, MatchValid, c.Validity())
}

func TestDocument_RejectedMarkupRendersPlain(t *testing.T) {
	c := New(
		WithText("a"),
		WithDocumentOptions(
			richtext.WithDefaultFont(fixedFont{}),
			richtext.WithParser(markup.New()),
		),
	)
	require.Equal(t, "a", string(c.Document().Text()))

	c.SetCaret(1)
	require.Equal(t, ResultApplied, c.Insert("["))
	assert.Equal(t, "a[", string(c.Document().Text()))

	require.Equal(t, ResultApplied, c.Insert("b"))
	assert.Equal(t, "a[b", string(c.Document().Text()))

	// Complete markup is parsed again once the buffer is valid.
	c.SetText(`a\[b[colour='FF000000']c`)
	assert.Equal(t, "a[bc", string(c.Document().Text()))
	_, isPlain := c.Document().Parser().(richtext.PlainParser)
	assert.False(t, isPlain, "markup parser was not restored")
}
