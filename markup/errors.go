package markup

import (
	"errors"
	"fmt"
)

// Sentinel errors for the markup package.
var (
	// ErrUnknownFont is returned for a font tag naming a font that is not
	// in the parser's font table.
	ErrUnknownFont = errors.New("markup: unknown font")

	// ErrUnknownImage is returned for an image tag naming an unknown image.
	ErrUnknownImage = errors.New("markup: unknown image")

	// ErrUnknownWidget is returned for a window tag naming an unknown object.
	ErrUnknownWidget = errors.New("markup: unknown window")

	// ErrInvalidValue is returned when a tag value cannot be interpreted.
	ErrInvalidValue = errors.New("markup: invalid tag value")
)

// SyntaxError reports malformed markup.
type SyntaxError struct {
	// Offset is the byte offset of the error in the input.
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markup: %d:%d: %s", e.Line, e.Column, e.Msg)
}

// TagError reports a well-formed tag that could not be applied.
type TagError struct {
	Tag    string
	Value  string
	Offset int
	Err    error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("markup: tag %s=%q at offset %d: %v", e.Tag, e.Value, e.Offset, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}
