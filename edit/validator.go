package edit

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/gogpu/richtext"
)

// MatchState is the result of validating a candidate text.
type MatchState uint8

const (
	// MatchValid means the text is acceptable as is.
	MatchValid MatchState = iota
	// MatchIntermediate means the text is not valid yet but may become
	// valid with further input. Edits producing it are accepted.
	MatchIntermediate
	// MatchInvalid means the text is rejected.
	MatchInvalid
)

// String returns the string representation of the state.
func (s MatchState) String() string {
	switch s {
	case MatchValid:
		return "Valid"
	case MatchIntermediate:
		return "Intermediate"
	case MatchInvalid:
		return "Invalid"
	default:
		return unknownStr
	}
}

// Validator decides whether a candidate text is acceptable.
type Validator interface {
	Validate(text string) MatchState
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(text string) MatchState

// Validate implements Validator.
func (f ValidatorFunc) Validate(text string) MatchState { return f(text) }

// DefaultMatchTimeout bounds a single regular expression match.
const DefaultMatchTimeout = 100 * time.Millisecond

// RegexValidator accepts texts that match a pattern in full.
// The empty text is intermediate when it does not match.
type RegexValidator struct {
	pattern string
	re      *regexp2.Regexp
}

// NewRegexValidator compiles pattern. The pattern is anchored at both ends.
func NewRegexValidator(pattern string) (*RegexValidator, error) {
	re, err := regexp2.Compile(`^(?:`+pattern+`)$`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}
	re.MatchTimeout = DefaultMatchTimeout
	return &RegexValidator{pattern: pattern, re: re}, nil
}

// Pattern returns the pattern the validator was built from.
func (v *RegexValidator) Pattern() string {
	return v.pattern
}

// Validate implements Validator. A match that times out is invalid.
func (v *RegexValidator) Validate(text string) MatchState {
	ok, err := v.re.MatchString(text)
	if err != nil {
		richtext.Logger().Warn("edit: validation match failed", "pattern", v.pattern, "err", err)
		return MatchInvalid
	}
	switch {
	case ok:
		return MatchValid
	case text == "":
		return MatchIntermediate
	default:
		return MatchInvalid
	}
}
