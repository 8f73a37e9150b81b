package richtext

// ParsedText is the result of parsing a string into styled code points.
type ParsedText struct {
	// Text is the code-point sequence to lay out. Embedded objects are
	// represented by one code point each, usually U+FFFC.
	Text []rune

	// ElementIndices holds the element of each code point of Text.
	// Code points past its end use the default element.
	ElementIndices []uint16

	// Elements is the element table. The last entry is the default text
	// style; a parser always returns at least one element.
	Elements []Element
}

// Parser turns a source string into styled code points and elements.
type Parser interface {
	// Parse parses text. defaultFont is the document's default font;
	// text runs without a font of their own may leave Font nil.
	Parse(text string, defaultFont Font) (*ParsedText, error)
}

// PlainParser treats its input as unstyled text.
type PlainParser struct{}

// Parse implements Parser.
func (PlainParser) Parse(text string, defaultFont Font) (*ParsedText, error) {
	return &ParsedText{
		Text:     []rune(text),
		Elements: []Element{&TextRun{Font: defaultFont}},
	}, nil
}
