package edit

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Action is a semantic editing command, typically bound to a key.
type Action uint8

// Actions understood by Controller.Handle. The Select variants extend the
// selection instead of clearing it.
const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionWordLeft
	ActionWordRight
	ActionHome
	ActionEnd
	ActionSelectLeft
	ActionSelectRight
	ActionSelectWordLeft
	ActionSelectWordRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll
	ActionBackspace
	ActionDelete
	ActionCut
	ActionCopy
	ActionPaste
	ActionUndo
	ActionRedo
)

var actionNames = [...]string{
	ActionNone:            "None",
	ActionLeft:            "Left",
	ActionRight:           "Right",
	ActionWordLeft:        "WordLeft",
	ActionWordRight:       "WordRight",
	ActionHome:            "Home",
	ActionEnd:             "End",
	ActionSelectLeft:      "SelectLeft",
	ActionSelectRight:     "SelectRight",
	ActionSelectWordLeft:  "SelectWordLeft",
	ActionSelectWordRight: "SelectWordRight",
	ActionSelectHome:      "SelectHome",
	ActionSelectEnd:       "SelectEnd",
	ActionSelectAll:       "SelectAll",
	ActionBackspace:       "Backspace",
	ActionDelete:          "Delete",
	ActionCut:             "Cut",
	ActionCopy:            "Copy",
	ActionPaste:           "Paste",
	ActionUndo:            "Undo",
	ActionRedo:            "Redo",
}

// String returns the string representation of the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return unknownStr
}

// Handle performs a. It returns false for actions that could not be
// performed, such as edits on a read-only controller or an empty undo
// history.
func (c *Controller) Handle(a Action) bool {
	switch a {
	case ActionLeft, ActionSelectLeft:
		c.MoveLeft(a == ActionSelectLeft)
	case ActionRight, ActionSelectRight:
		c.MoveRight(a == ActionSelectRight)
	case ActionWordLeft, ActionSelectWordLeft:
		c.WordLeft(a == ActionSelectWordLeft)
	case ActionWordRight, ActionSelectWordRight:
		c.WordRight(a == ActionSelectWordRight)
	case ActionHome, ActionSelectHome:
		c.Home(a == ActionSelectHome)
	case ActionEnd, ActionSelectEnd:
		c.End(a == ActionSelectEnd)
	case ActionSelectAll:
		c.SelectAll()
	case ActionBackspace:
		return c.Backspace() == ResultApplied
	case ActionDelete:
		return c.Delete() == ResultApplied
	case ActionCut:
		return c.Cut() == ResultApplied
	case ActionCopy:
		return c.Copy()
	case ActionPaste:
		return c.Paste() == ResultApplied
	case ActionUndo:
		return c.Undo()
	case ActionRedo:
		return c.Redo()
	default:
		return false
	}
	return true
}

// MoveLeft moves the caret one grapheme cluster left. With extend the
// selection grows from its anchor; otherwise it is cleared.
func (c *Controller) MoveLeft(extend bool) {
	c.moveCaret(prevGrapheme(c.text, c.caret), extend)
}

// MoveRight moves the caret one grapheme cluster right.
func (c *Controller) MoveRight(extend bool) {
	c.moveCaret(nextGrapheme(c.text, c.caret), extend)
}

// WordLeft moves the caret to the start of the previous word. Masked text
// is one word.
func (c *Controller) WordLeft(extend bool) {
	if c.masked {
		c.moveCaret(0, extend)
		return
	}
	c.moveCaret(prevWord(c.text, c.caret), extend)
}

// WordRight moves the caret to the start of the next word.
func (c *Controller) WordRight(extend bool) {
	if c.masked {
		c.moveCaret(len(c.text), extend)
		return
	}
	c.moveCaret(nextWord(c.text, c.caret), extend)
}

// Home moves the caret to the start of the text.
func (c *Controller) Home(extend bool) {
	c.moveCaret(0, extend)
}

// End moves the caret to the end of the text.
func (c *Controller) End(extend bool) {
	c.moveCaret(len(c.text), extend)
}

func (c *Controller) moveCaret(pos int, extend bool) {
	if !extend {
		c.setCaret(pos)
		c.setSelection(pos, pos)
		return
	}

	// The anchor is the selection end the caret is not on.
	anchor := c.caret
	if c.selStart != c.selEnd {
		anchor = c.selStart
		if c.caret == c.selStart {
			anchor = c.selEnd
		}
	}
	c.setCaret(pos)
	c.setSelection(anchor, pos)
}
