package richtext

import "errors"

// Sentinel errors for the richtext package.
var (
	// ErrNilParser is returned when a document has no parser to render with.
	ErrNilParser = errors.New("richtext: nil parser")

	// ErrTooManyElements is returned when parsed text references more
	// elements than a glyph can index.
	ErrTooManyElements = errors.New("richtext: too many elements")

	// ErrInvalidElementIndex is returned when parsed text references an
	// element outside the element table.
	ErrInvalidElementIndex = errors.New("richtext: element index out of range")
)
