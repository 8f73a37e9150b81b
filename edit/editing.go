package edit

import (
	"slices"

	"github.com/gogpu/richtext"
)

// Result reports the outcome of an editing operation.
type Result uint8

const (
	// ResultApplied means the text changed.
	ResultApplied Result = iota
	// ResultNoop means there was nothing to do.
	ResultNoop
	// ResultReadOnly means the controller is read-only.
	ResultReadOnly
	// ResultRejected means the validator refused the new text.
	ResultRejected
	// ResultFull means the new text would exceed the maximum length.
	ResultFull
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "Applied"
	case ResultNoop:
		return "Noop"
	case ResultReadOnly:
		return "ReadOnly"
	case ResultRejected:
		return "Rejected"
	case ResultFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Insert replaces the selection, or inserts at the caret, with s.
func (c *Controller) Insert(s string) Result {
	if c.readOnly {
		return ResultReadOnly
	}
	start, end := c.selStart, c.selEnd
	if start == end {
		start, end = c.caret, c.caret
	}
	if s == "" && start == end {
		return ResultNoop
	}
	return c.replace(start, end, []rune(s))
}

// Backspace deletes the selection, or the grapheme cluster before the caret.
func (c *Controller) Backspace() Result {
	if c.readOnly {
		return ResultReadOnly
	}
	if c.selStart != c.selEnd {
		return c.replace(c.selStart, c.selEnd, nil)
	}
	if c.caret == 0 {
		return ResultNoop
	}
	return c.replace(prevGrapheme(c.text, c.caret), c.caret, nil)
}

// Delete deletes the selection, or the grapheme cluster after the caret.
func (c *Controller) Delete() Result {
	if c.readOnly {
		return ResultReadOnly
	}
	if c.selStart != c.selEnd {
		return c.replace(c.selStart, c.selEnd, nil)
	}
	if c.caret == len(c.text) {
		return ResultNoop
	}
	return c.replace(c.caret, nextGrapheme(c.text, c.caret), nil)
}

// Copy puts the selection on the clipboard. Masked text cannot be copied.
func (c *Controller) Copy() bool {
	if c.selStart == c.selEnd || c.masked {
		return false
	}
	c.clipboard.SetText(c.SelectedText())
	return true
}

// Cut moves the selection to the clipboard.
func (c *Controller) Cut() Result {
	if c.readOnly {
		return ResultReadOnly
	}
	if !c.Copy() {
		return ResultNoop
	}
	return c.replace(c.selStart, c.selEnd, nil)
}

// Paste replaces the selection, or inserts at the caret, with the
// clipboard contents.
func (c *Controller) Paste() Result {
	if c.readOnly {
		return ResultReadOnly
	}
	s := c.clipboard.Text()
	if s == "" {
		return ResultNoop
	}
	return c.Insert(s)
}

// replace validates and applies the replacement of [start, end) by ins and
// records it as one undo step.
func (c *Controller) replace(start, end int, ins []rune) Result {
	if len(ins) > 0 && len(c.text)-(end-start)+len(ins) > c.maxLen {
		richtext.Logger().Debug("edit: edit exceeds max length",
			"len", len(c.text), "insert", len(ins), "max", c.maxLen)
		if c.hooks.EditboxFull != nil {
			c.hooks.EditboxFull()
		}
		return ResultFull
	}

	candidate := splice(c.text, start, end, ins)
	state := c.validate(string(candidate))
	if state == MatchInvalid {
		richtext.Logger().Debug("edit: edit rejected by validator", "start", start, "end", end)
		return ResultRejected
	}

	var group []undoAction
	if end > start {
		group = append(group, undoAction{kind: actionDelete, start: start, text: slices.Clone(c.text[start:end])})
	}
	if len(ins) > 0 {
		group = append(group, undoAction{kind: actionInsert, start: start, text: slices.Clone(ins)})
	}
	if err := c.history.record(len(c.text), group...); err != nil {
		richtext.Logger().Warn("edit: undo step dropped", "err", err)
	}

	c.text = candidate
	pos := start + len(ins)
	c.setSelection(pos, pos)
	c.setCaret(pos)
	c.textChanged(state)
	return ResultApplied
}

// Undo reverts the last edit and moves the caret to where it happened.
// It returns false if there is nothing to undo.
func (c *Controller) Undo() bool {
	if c.readOnly {
		return false
	}
	group, ok := c.history.undo()
	if !ok {
		return false
	}

	caret := c.caret
	for i := len(group) - 1; i >= 0; i-- {
		a := group[i]
		switch a.kind {
		case actionInsert:
			c.text = splice(c.text, a.start, a.start+len(a.text), nil)
			caret = a.start
		case actionDelete:
			c.text = splice(c.text, a.start, a.start, a.text)
			caret = a.start + len(a.text)
		}
	}
	c.afterHistoryStep(caret)
	return true
}

// Redo re-applies the last undone edit. It returns false if there is
// nothing to redo.
func (c *Controller) Redo() bool {
	if c.readOnly {
		return false
	}
	group, ok := c.history.redo()
	if !ok {
		return false
	}

	caret := c.caret
	for _, a := range group {
		switch a.kind {
		case actionInsert:
			c.text = splice(c.text, a.start, a.start, a.text)
			caret = a.start + len(a.text)
		case actionDelete:
			c.text = splice(c.text, a.start, a.start+len(a.text), nil)
			caret = a.start
		}
	}
	c.afterHistoryStep(caret)
	return true
}

func (c *Controller) afterHistoryStep(caret int) {
	c.setSelection(caret, caret)
	c.setCaret(caret)
	c.textChanged(c.validate(string(c.text)))
}
