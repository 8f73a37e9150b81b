package richtext

import "image/color"

// Element is a style or content descriptor shared by a run of glyphs.
//
// The set of elements is closed: *TextRun, *EmbeddedImage and
// *EmbeddedWidget. Code that needs kind-specific behaviour uses a type
// switch over these three.
type Element interface {
	// Padding returns the space added around each glyph of the element.
	Padding() Padding

	// VerticalFormatting returns how glyphs are placed inside their line.
	VerticalFormatting() VerticalFormatting

	// Colour returns the modulation colour, or nil for the renderer default.
	Colour() color.Color

	element()
}

// ElementStyle holds the attributes common to all elements.
type ElementStyle struct {
	Pad     Padding
	VertFmt VerticalFormatting
	Tint    color.Color
}

// Padding implements Element.
func (s ElementStyle) Padding() Padding { return s.Pad }

// VerticalFormatting implements Element.
func (s ElementStyle) VerticalFormatting() VerticalFormatting { return s.VertFmt }

// Colour implements Element.
func (s ElementStyle) Colour() color.Color { return s.Tint }

// TextRun styles a run of text glyphs.
type TextRun struct {
	ElementStyle

	// Font shapes the run. A nil font falls back to the document default.
	Font Font
}

func (*TextRun) element() {}

// EmbeddedImage places an image inline with the text.
type EmbeddedImage struct {
	ElementStyle

	Image Image

	// Size overrides the natural image size. Zero components use the
	// image's rendered size.
	Size Size
}

func (*EmbeddedImage) element() {}

// EmbeddedObject is something hosted inline whose size is only known at
// layout time, typically a child widget.
type EmbeddedObject interface {
	// PixelSize returns the current size of the object in pixels.
	PixelSize(host any) Size
}

// EmbeddedWidget places a hosted object inline with the text.
type EmbeddedWidget struct {
	ElementStyle

	Object EmbeddedObject
}

func (*EmbeddedWidget) element() {}

// elementAt returns elements[idx], or nil if idx is out of range.
func elementAt(elements []Element, idx uint16) Element {
	if int(idx) >= len(elements) {
		return nil
	}
	return elements[idx]
}

// embeddedPixelSize returns the padded size of an embedded element.
// ok is false for text runs and nil elements.
func embeddedPixelSize(el Element, host any) (size Size, ok bool) {
	switch e := el.(type) {
	case *EmbeddedImage:
		size = imageSize(e)
	case *EmbeddedWidget:
		if e.Object != nil {
			size = e.Object.PixelSize(host)
		}
	default:
		return Size{}, false
	}
	pad := el.Padding()
	size.Width += pad.Horizontal()
	size.Height += pad.Vertical()
	return size, true
}

// imageSize returns the unpadded size of an embedded image.
func imageSize(e *EmbeddedImage) Size {
	size := e.Size
	if (size.Width <= 0 || size.Height <= 0) && e.Image != nil {
		natural := e.Image.RenderedSize()
		if size.Width <= 0 {
			size.Width = natural.Width
		}
		if size.Height <= 0 {
			size.Height = natural.Height
		}
	}
	return size
}
