package markup

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Escape", Pattern: `\\[\[\\]`},
			{Name: "TagOpen", Pattern: `\[`, Action: lexer.Push("Tag")},
			{Name: "Text", Pattern: `[^\[\\]+|\\`},
		},
		"Tag": {
			{Name: "Whitespace", Pattern: `[ \t]+`},
			{Name: "Name", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
			{Name: "Assign", Pattern: `=`},
			{Name: "Value", Pattern: `'[^']*'|"[^"]*"`},
			{Name: "TagClose", Pattern: `\]`, Action: lexer.Pop()},
		},
	})

	markupParser = participle.MustBuild[source](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace"),
	)
)

// source is the root node of a markup string.
type source struct {
	Items []*item `parser:"@@*"`
}

// item is a piece of text, an escaped character or a tag.
type item struct {
	Pos    lexer.Position
	Escape *escaped `parser:"  @Escape"`
	Text   *string  `parser:"| @Text"`
	Tag    *tag     `parser:"| @@"`
}

// tag is [name='value'].
type tag struct {
	Pos   lexer.Position
	Name  string      `parser:"TagOpen @Name"`
	Value quotedValue `parser:"Assign @Value TagClose"`
}

// escaped drops the backslash of an escape sequence on capture.
type escaped string

// Capture implements participle.Capture.
func (e *escaped) Capture(values []string) error {
	*e = escaped(values[0][1:])
	return nil
}

// quotedValue strips the quotes of a tag value on capture.
type quotedValue string

// Capture implements participle.Capture.
func (v *quotedValue) Capture(values []string) error {
	s := values[0]
	*v = quotedValue(s[1 : len(s)-1])
	return nil
}

func parseSource(text string) (*source, error) {
	ast, err := markupParser.ParseString("", text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			pos := perr.Position()
			return nil, &SyntaxError{Offset: pos.Offset, Line: pos.Line, Column: pos.Column, Msg: perr.Message()}
		}
		return nil, &SyntaxError{Msg: err.Error()}
	}
	return ast, nil
}
