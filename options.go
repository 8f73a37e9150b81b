package richtext

// DocumentOption configures a Document during creation.
//
// Example:
//
//	doc := richtext.NewDocument(
//	    richtext.WithDefaultFont(face),
//	    richtext.WithHorizontalFormatting(richtext.HorzWordWrapJustified),
//	)
type DocumentOption func(*documentConfig)

// documentConfig holds optional configuration for Document creation.
type documentConfig struct {
	parser           Parser
	font             Font
	horzFmt          HorizontalFormatting
	lastJustifiedFmt HorizontalFormatting
	dir              Direction
}

func defaultDocumentConfig() documentConfig {
	return documentConfig{
		parser:           PlainParser{},
		horzFmt:          HorzLeft,
		lastJustifiedFmt: HorzLeft,
		dir:              DirectionLTR,
	}
}

// WithParser sets the parser used by RenderText. The default is PlainParser.
func WithParser(p Parser) DocumentOption {
	return func(c *documentConfig) {
		c.parser = p
	}
}

// WithDefaultFont sets the font of text runs that do not name one.
func WithDefaultFont(f Font) DocumentOption {
	return func(c *documentConfig) {
		c.font = f
	}
}

// WithHorizontalFormatting sets the horizontal formatting. Word-wrapping
// variants also enable word wrap.
func WithHorizontalFormatting(f HorizontalFormatting) DocumentOption {
	return func(c *documentConfig) {
		c.horzFmt = f
	}
}

// WithLastJustifiedLineFormatting sets the alignment of the last line of
// justified paragraphs. The default is HorzLeft.
func WithLastJustifiedLineFormatting(f HorizontalFormatting) DocumentOption {
	return func(c *documentConfig) {
		c.lastJustifiedFmt = f
	}
}

// WithDirection sets the default paragraph direction. DirectionAuto detects
// it per paragraph from the first strong character.
func WithDirection(d Direction) DocumentOption {
	return func(c *documentConfig) {
		c.dir = d
	}
}
