package edit

import (
	"fmt"
	"slices"
)

type actionKind uint8

const (
	actionInsert actionKind = iota
	actionDelete
)

// undoAction is one recorded text change: text inserted at, or deleted
// from, start.
type undoAction struct {
	kind  actionKind
	start int
	text  []rune
}

// undoLog is a bounded history of grouped actions. A group is undone and
// redone as one step.
type undoLog struct {
	groups [][]undoAction

	// pos is the number of groups currently applied; groups[pos:] can be
	// redone.
	pos   int
	limit int
}

// DefaultUndoLimit is the default number of undo steps kept.
const DefaultUndoLimit = 100

// record appends a group applied to a text of length textLen, dropping the
// redo tail and the oldest groups above the limit. Groups whose actions do
// not fit the text are refused.
func (u *undoLog) record(textLen int, group ...undoAction) error {
	if len(group) == 0 || u.limit <= 0 {
		return nil
	}

	n := textLen
	for _, a := range group {
		switch a.kind {
		case actionInsert:
			if a.start < 0 || a.start > n {
				return fmt.Errorf("%w: insert at %d into %d code points", ErrUndoRange, a.start, n)
			}
			n += len(a.text)
		case actionDelete:
			if a.start < 0 || a.start+len(a.text) > n {
				return fmt.Errorf("%w: delete %d at %d from %d code points", ErrUndoRange, len(a.text), a.start, n)
			}
			n -= len(a.text)
		}
	}

	u.groups = append(u.groups[:u.pos], slices.Clone(group))
	if over := len(u.groups) - u.limit; over > 0 {
		u.groups = slices.Delete(u.groups, 0, over)
	}
	u.pos = len(u.groups)
	return nil
}

// undo returns the group to revert, or false if there is none.
func (u *undoLog) undo() ([]undoAction, bool) {
	if u.pos == 0 {
		return nil, false
	}
	u.pos--
	return u.groups[u.pos], true
}

// redo returns the group to re-apply, or false if there is none.
func (u *undoLog) redo() ([]undoAction, bool) {
	if u.pos == len(u.groups) {
		return nil, false
	}
	u.pos++
	return u.groups[u.pos-1], true
}

func (u *undoLog) canUndo() bool { return u.pos > 0 }
func (u *undoLog) canRedo() bool { return u.pos < len(u.groups) }

func (u *undoLog) clear() {
	u.groups = u.groups[:0]
	u.pos = 0
}

// setLimit changes the limit, dropping the oldest groups that no longer fit.
func (u *undoLog) setLimit(limit int) {
	u.limit = max(limit, 0)
	if over := len(u.groups) - u.limit; over > 0 {
		u.groups = slices.Delete(u.groups, 0, over)
		u.pos = max(u.pos-over, 0)
	}
}
