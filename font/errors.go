package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrInvalidSize is returned for a face size that is not positive.
	ErrInvalidSize = errors.New("font: size must be positive")
)
