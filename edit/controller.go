package edit

import "github.com/gogpu/richtext"

// Hooks are called after the controller's state changed. Nil hooks are
// skipped.
type Hooks struct {
	CaretMoved       func(caret int)
	SelectionChanged func(start, end int)
	TextChanged      func(text string)

	// EditboxFull is called when an edit is refused because the text would
	// exceed the maximum length.
	EditboxFull func()

	ValidityChanged func(state MatchState)
}

// Controller owns an editable text with its caret, selection and undo
// history, and the document it is rendered into.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	text []rune

	caret            int
	selStart, selEnd int
	dragAnchor       int
	dragging         bool

	readOnly bool
	maxLen   int
	masked   bool
	maskRune rune

	validator Validator
	validity  MatchState

	clipboard Clipboard
	history   undoLog

	docOpts  []richtext.DocumentOption
	doc      *richtext.Document
	docDirty bool

	hooks Hooks
}

// New returns a controller configured by opts.
func New(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Controller{
		readOnly:  cfg.readOnly,
		maxLen:    cfg.maxLen,
		masked:    cfg.masked,
		maskRune:  cfg.maskRune,
		validator: cfg.validator,
		clipboard: cfg.clipboard,
		history:   undoLog{limit: cfg.undoLimit},
		docOpts:   cfg.docOpts,
		hooks:     cfg.hooks,
		docDirty:  true,
	}
	if c.clipboard == nil {
		c.clipboard = &MemoryClipboard{}
	}

	c.text = []rune(cfg.text)
	if len(c.text) > c.maxLen {
		c.text = c.text[:c.maxLen]
	}
	c.validity = c.validate(string(c.text))
	return c
}

// Text returns the current text.
func (c *Controller) Text() string {
	return string(c.text)
}

// Len returns the length of the text in code points.
func (c *Controller) Len() int {
	return len(c.text)
}

// SetText replaces the text without validation and clears the undo history.
// The text is trimmed to the maximum length; caret and selection are
// clamped.
func (c *Controller) SetText(s string) {
	text := []rune(s)
	if len(text) > c.maxLen {
		text = text[:c.maxLen]
	}
	c.text = text
	c.history.clear()
	c.clampPositions()
	c.textChanged(c.validate(string(c.text)))
}

// Caret returns the caret position.
func (c *Controller) Caret() int {
	return c.caret
}

// SetCaret moves the caret to i, clamped to the text. The selection is
// kept.
func (c *Controller) SetCaret(i int) {
	c.setCaret(c.clamp(i))
}

// Selection returns the selected range; start == end when nothing is
// selected.
func (c *Controller) Selection() (start, end int) {
	return c.selStart, c.selEnd
}

// SelectionLength returns the number of selected code points.
func (c *Controller) SelectionLength() int {
	return c.selEnd - c.selStart
}

// SelectedText returns the selected text.
func (c *Controller) SelectedText() string {
	return string(c.text[c.selStart:c.selEnd])
}

// SetSelection selects the range between a and b, in either order, clamped
// to the text.
func (c *Controller) SetSelection(a, b int) {
	c.setSelection(c.clamp(a), c.clamp(b))
}

// ClearSelection collapses the selection at the caret.
func (c *Controller) ClearSelection() {
	c.setSelection(c.caret, c.caret)
}

// SelectAll selects the whole text and moves the caret to its end.
func (c *Controller) SelectAll() {
	c.setSelection(0, len(c.text))
	c.setCaret(len(c.text))
}

// BeginDrag starts a drag selection anchored at i.
func (c *Controller) BeginDrag(i int) {
	i = c.clamp(i)
	c.dragging = true
	c.dragAnchor = i
	c.setCaret(i)
	c.setSelection(i, i)
}

// DragTo extends a drag selection to i. It is ignored outside a drag.
func (c *Controller) DragTo(i int) {
	if !c.dragging {
		return
	}
	i = c.clamp(i)
	c.setCaret(i)
	c.setSelection(c.dragAnchor, i)
}

// EndDrag ends a drag selection. The selection is kept.
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a drag selection is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// ReadOnly reports whether editing operations are refused.
func (c *Controller) ReadOnly() bool {
	return c.readOnly
}

// SetReadOnly enables or disables read-only mode.
func (c *Controller) SetReadOnly(ro bool) {
	c.readOnly = ro
}

// MaxLength returns the maximum text length in code points.
func (c *Controller) MaxLength() int {
	return c.maxLen
}

// SetMaxLength changes the maximum text length. A longer text is trimmed,
// which also clears the undo history.
func (c *Controller) SetMaxLength(n int) {
	c.maxLen = max(n, 0)
	if len(c.text) <= c.maxLen {
		return
	}
	c.text = c.text[:c.maxLen]
	c.history.clear()
	c.clampPositions()
	c.textChanged(c.validate(string(c.text)))
}

// Masked reports whether the rendered text is masked.
func (c *Controller) Masked() bool {
	return c.masked
}

// SetMasked enables or disables masking of the rendered text.
func (c *Controller) SetMasked(masked bool) {
	if masked != c.masked {
		c.masked = masked
		c.docDirty = true
	}
}

// MaskRune returns the code point shown for every masked code point.
func (c *Controller) MaskRune() rune {
	return c.maskRune
}

// SetMaskRune sets the code point shown for masked text.
func (c *Controller) SetMaskRune(r rune) {
	if r != c.maskRune {
		c.maskRune = r
		c.docDirty = c.docDirty || c.masked
	}
}

// Validity returns the validator's verdict on the current text.
func (c *Controller) Validity() MatchState {
	return c.validity
}

// SetValidator replaces the validator and re-validates the current text.
// A nil validator accepts everything.
func (c *Controller) SetValidator(v Validator) {
	c.validator = v
	c.updateValidity(c.validate(string(c.text)))
}

// SetValidationString sets a RegexValidator for pattern. The empty pattern
// removes validation.
func (c *Controller) SetValidationString(pattern string) error {
	if pattern == "" {
		c.SetValidator(nil)
		return nil
	}
	v, err := NewRegexValidator(pattern)
	if err != nil {
		return err
	}
	c.SetValidator(v)
	return nil
}

// CanUndo reports whether there is a step to undo.
func (c *Controller) CanUndo() bool {
	return c.history.canUndo()
}

// CanRedo reports whether there is a step to redo.
func (c *Controller) CanRedo() bool {
	return c.history.canRedo()
}

// SetUndoLimit changes the number of undo steps kept.
func (c *Controller) SetUndoLimit(n int) {
	c.history.setLimit(n)
}

// Document returns the rendered text, re-rendering it first if the text
// changed since the last call. The document must be formatted before its
// layout is read; see Layout.
func (c *Controller) Document() *richtext.Document {
	if c.doc == nil {
		c.doc = richtext.NewDocument(c.docOpts...)
		c.docDirty = true
	}
	if c.docDirty {
		c.docDirty = false
		c.render()
	}
	return c.doc
}

// Layout returns the rendered text formatted at width.
func (c *Controller) Layout(width float64, host any) *richtext.Document {
	d := c.Document()
	d.Format(width, host)
	return d
}

// CaretRect returns the caret rectangle in the rendered text. ok is false
// until the document has been formatted.
func (c *Controller) CaretRect() (r richtext.Rect, ok bool) {
	return c.Document().CaretRect(c.caret)
}

// IndexAtPosition returns the text index nearest to pt in the rendered text.
func (c *Controller) IndexAtPosition(pt richtext.Vec2) (int, bool) {
	return c.Document().IndexAtPosition(pt)
}

// render re-renders the document. Text the document's parser rejects, such
// as incomplete markup being typed, is rendered as plain text so the layout
// always shows the current buffer.
func (c *Controller) render() {
	text := c.renderedText()
	err := c.doc.RenderText(text)
	if err == nil {
		return
	}
	richtext.Logger().Debug("edit: rendering as plain text", "err", err)

	parser := c.doc.Parser()
	c.doc.SetParser(richtext.PlainParser{})
	if err := c.doc.RenderText(text); err != nil {
		richtext.Logger().Warn("edit: render failed", "err", err)
	}
	c.doc.SetParser(parser)
}

func (c *Controller) renderedText() string {
	if !c.masked {
		return string(c.text)
	}
	masked := make([]rune, len(c.text))
	for i := range masked {
		masked[i] = c.maskRune
	}
	return string(masked)
}

func (c *Controller) clamp(i int) int {
	return max(0, min(i, len(c.text)))
}

func (c *Controller) clampPositions() {
	c.dragAnchor = c.clamp(c.dragAnchor)
	c.setSelection(c.clamp(c.selStart), c.clamp(c.selEnd))
	c.setCaret(c.clamp(c.caret))
}

func (c *Controller) setCaret(i int) {
	if i == c.caret {
		return
	}
	c.caret = i
	if c.hooks.CaretMoved != nil {
		c.hooks.CaretMoved(i)
	}
}

func (c *Controller) setSelection(a, b int) {
	if a > b {
		a, b = b, a
	}
	if a == c.selStart && b == c.selEnd {
		return
	}
	c.selStart, c.selEnd = a, b
	if c.hooks.SelectionChanged != nil {
		c.hooks.SelectionChanged(a, b)
	}
}

func (c *Controller) validate(text string) MatchState {
	if c.validator == nil {
		return MatchValid
	}
	return c.validator.Validate(text)
}

func (c *Controller) updateValidity(state MatchState) {
	if state == c.validity {
		return
	}
	c.validity = state
	if c.hooks.ValidityChanged != nil {
		c.hooks.ValidityChanged(state)
	}
}

// textChanged marks the document stale and notifies listeners.
func (c *Controller) textChanged(state MatchState) {
	c.docDirty = true
	c.updateValidity(state)
	if c.hooks.TextChanged != nil {
		c.hooks.TextChanged(string(c.text))
	}
}

// splice returns text with [start, end) replaced by ins.
func splice(text []rune, start, end int, ins []rune) []rune {
	out := make([]rune, 0, len(text)-(end-start)+len(ins))
	out = append(out, text[:start]...)
	out = append(out, ins...)
	return append(out, text[end:]...)
}
