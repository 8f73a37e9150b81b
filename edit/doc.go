// Package edit implements the editing state of a text box: caret,
// selection, validation, clipboard and undo history over a mutable string.
//
// A [Controller] owns the text. Every mutation is validated before it is
// applied and recorded in the undo history; the rendered
// [richtext.Document] is marked stale and re-rendered on its next use.
//
// Positions are code-point indices into the text. Caret movement steps over
// whole grapheme clusters; word movement follows Unicode word boundaries.
package edit
