package markup

import (
	"image/color"

	"github.com/gogpu/richtext"
)

// Option configures a Parser.
type Option func(*Parser)

// WithFonts sets the fonts that font tags may name.
func WithFonts(fonts map[string]richtext.Font) Option {
	return func(p *Parser) {
		p.fonts = fonts
	}
}

// WithImages sets the images that image tags may name.
func WithImages(images map[string]richtext.Image) Option {
	return func(p *Parser) {
		p.images = images
	}
}

// WithWidgets sets the objects that window tags may name.
func WithWidgets(widgets map[string]richtext.EmbeddedObject) Option {
	return func(p *Parser) {
		p.widgets = widgets
	}
}

// WithInitialColour sets the colour in effect before the first colour tag.
func WithInitialColour(c color.Color) Option {
	return func(p *Parser) {
		p.initialColour = c
	}
}

// WithInitialVerticalFormatting sets the vertical formatting in effect
// before the first vert-alignment tag.
func WithInitialVerticalFormatting(f richtext.VerticalFormatting) Option {
	return func(p *Parser) {
		p.initialVert = f
	}
}
