// Package richtext lays out styled text with embedded objects into lines and
// emits positioned quads for rendering.
//
// # Overview
//
// A [Document] holds one parsed string. Each paragraph is a [Paragraph]
// owning its glyphs and the lines derived from them. Layout is incremental:
// changing the area width, the formatting or the size of an embedded object
// only marks the affected data stale, and the next Format recomputes it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/richtext"
//	    "github.com/gogpu/richtext/font"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	src, _ := font.NewSource(goregular.TTF)
//	doc := richtext.NewDocument(
//	    richtext.WithDefaultFont(src.Face(16)),
//	    richtext.WithHorizontalFormatting(richtext.HorzWordWrapJustified),
//	)
//	_ = doc.RenderText("Hello, world!\nSecond paragraph.")
//	doc.Format(320, nil)
//	quads := doc.CreateRenderGeometry(nil, richtext.Vec2{}, nil)
//
// # Elements
//
// Every glyph references an [Element] in the document's element table:
//   - [TextRun]: text in a font, with padding, colour and vertical alignment
//   - [EmbeddedImage]: an inline image
//   - [EmbeddedWidget]: an inline object sized at layout time
//
// The last element is the default text style. Glyphs whose element cannot
// be resolved fall back to it.
//
// # Line Breaking
//
// Without word wrap every paragraph is one line. With word wrap, lines break
// after breakable glyphs (space, tab, carriage return and embedded objects);
// words wider than the area are broken between glyphs. Leading whitespace
// of wrapped lines takes no space.
//
// # Parsing
//
// [PlainParser] treats input as unstyled text. Package markup provides a
// tag parser for fonts, colours, images, widgets and padding.
//
// # Editing
//
// Package edit provides a controller that owns the caret, selection and
// undo history of an editable text and re-renders its Document lazily.
//
// # Concurrency
//
// Documents and paragraphs are not safe for concurrent use. [SetLogger]
// and [Logger] are.
package richtext
