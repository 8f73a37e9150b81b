package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoLog_RecordValidatesRange(t *testing.T) {
	u := undoLog{limit: 10}

	err := u.record(3, undoAction{kind: actionInsert, start: 4, text: []rune("x")})
	assert.ErrorIs(t, err, ErrUndoRange)

	err = u.record(3, undoAction{kind: actionDelete, start: 1, text: []rune("abc")})
	assert.ErrorIs(t, err, ErrUndoRange)
	assert.False(t, u.canUndo())

	// Actions of a group are checked against the text as the group
	// leaves it.
	err = u.record(3,
		undoAction{kind: actionDelete, start: 0, text: []rune("abc")},
		undoAction{kind: actionInsert, start: 0, text: []rune("xy")},
	)
	require.NoError(t, err)
	assert.True(t, u.canUndo())
}

func TestUndoLog_SetLimit(t *testing.T) {
	u := undoLog{limit: 10}
	for i := range 5 {
		require.NoError(t, u.record(i, undoAction{kind: actionInsert, start: i, text: []rune("a")}))
	}
	_, ok := u.undo()
	require.True(t, ok)

	u.setLimit(2)
	assert.Len(t, u.groups, 2)
	assert.Equal(t, 1, u.pos)
	assert.True(t, u.canRedo())

	u.setLimit(0)
	assert.False(t, u.canUndo())
	require.NoError(t, u.record(0, undoAction{kind: actionInsert, start: 0, text: []rune("a")}))
	assert.False(t, u.canUndo())
}

func TestGraphemeBounds(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"", []int{0}},
		{"abc", []int{0, 1, 2, 3}},
		{"e\u0301x", []int{0, 2, 3}},
		{"\U0001F1E9\U0001F1EA!", []int{0, 2, 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, graphemeBounds([]rune(tt.text)), "graphemeBounds(%q)", tt.text)
	}
}

func TestWordSegments(t *testing.T) {
	segs := wordSegments([]rune("hi, you"))
	var words []wordSegment
	for _, s := range segs {
		if s.word {
			words = append(words, s)
		}
	}
	assert.Equal(t, []wordSegment{{start: 0, end: 2, word: true}, {start: 4, end: 7, word: true}}, words)
	assert.Equal(t, 7, segs[len(segs)-1].end)
}

func TestRegexValidator(t *testing.T) {
	v, err := NewRegexValidator(`[a-z]+|\d+`)
	require.NoError(t, err)

	tests := []struct {
		text string
		want MatchState
	}{
		{"abc", MatchValid},
		{"123", MatchValid},
		{"abc123", MatchInvalid},
		{"", MatchIntermediate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Validate(tt.text), "Validate(%q)", tt.text)
	}
	assert.Equal(t, `[a-z]+|\d+`, v.Pattern())
	assert.Equal(t, "Intermediate", MatchIntermediate.String())
}
