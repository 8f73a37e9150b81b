package edit

import (
	"math"

	"github.com/gogpu/richtext"
)

// Option configures a Controller during creation.
type Option func(*config)

type config struct {
	text      string
	maxLen    int
	readOnly  bool
	validator Validator
	clipboard Clipboard
	masked    bool
	maskRune  rune
	undoLimit int
	docOpts   []richtext.DocumentOption
	hooks     Hooks
}

func defaultConfig() config {
	return config{
		maxLen:    math.MaxInt,
		maskRune:  '*',
		undoLimit: DefaultUndoLimit,
	}
}

// WithText sets the initial text. It is trimmed to the maximum length.
func WithText(s string) Option {
	return func(c *config) {
		c.text = s
	}
}

// WithMaxLength limits the text to n code points.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLen = max(n, 0)
	}
}

// WithReadOnly makes the text immutable through editing operations.
func WithReadOnly(ro bool) Option {
	return func(c *config) {
		c.readOnly = ro
	}
}

// WithValidator sets the validator run on every candidate text.
func WithValidator(v Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithClipboard sets the clipboard used by Cut, Copy and Paste.
// The default is a private MemoryClipboard.
func WithClipboard(cb Clipboard) Option {
	return func(c *config) {
		c.clipboard = cb
	}
}

// WithMaskRune enables masking: the rendered text shows r for every code
// point.
func WithMaskRune(r rune) Option {
	return func(c *config) {
		c.masked = true
		c.maskRune = r
	}
}

// WithUndoLimit sets the number of undo steps kept. 0 disables undo.
func WithUndoLimit(n int) Option {
	return func(c *config) {
		c.undoLimit = max(n, 0)
	}
}

// WithDocumentOptions configures the rendered document.
func WithDocumentOptions(opts ...richtext.DocumentOption) Option {
	return func(c *config) {
		c.docOpts = append(c.docOpts, opts...)
	}
}

// WithHooks sets the event callbacks.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}
