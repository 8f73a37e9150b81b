package edit

import "errors"

// Sentinel errors for the edit package.
var (
	// ErrInvalidPattern is returned when a validation pattern does not compile.
	ErrInvalidPattern = errors.New("edit: invalid validation pattern")

	// ErrUndoRange is returned when an undo action does not fit the text.
	ErrUndoRange = errors.New("edit: undo action out of range")
)
