package markup

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/richtext"
)

// ObjectReplacement is the code point that stands for an embedded image or
// window in the parsed text.
const ObjectReplacement = '\uFFFC'

// Parser parses tag markup. It implements richtext.Parser.
//
// A Parser is immutable after New and safe for concurrent use.
type Parser struct {
	fonts   map[string]richtext.Font
	images  map[string]richtext.Image
	widgets map[string]richtext.EmbeddedObject

	initialColour color.Color
	initialVert   richtext.VerticalFormatting
}

var _ richtext.Parser = (*Parser)(nil)

// New returns a parser with the given resource tables.
func New(opts ...Option) *Parser {
	p := &Parser{initialVert: richtext.VertBottom}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// state is the style in effect at a point of the input.
type state struct {
	font      richtext.Font
	colour    color.Color
	padding   richtext.Padding
	vert      richtext.VerticalFormatting
	imageSize richtext.Size
}

func (s *state) style() richtext.ElementStyle {
	return richtext.ElementStyle{Pad: s.padding, VertFmt: s.vert, Tint: s.colour}
}

// builder accumulates parsed text and elements.
type builder struct {
	st state

	// run is the element index of the current text run, or -1 when the
	// style changed since it was created.
	run int

	out richtext.ParsedText
}

func (b *builder) addElement(el richtext.Element) (int, error) {
	// One slot stays free for the default element.
	if len(b.out.Elements) >= math.MaxUint16 {
		return 0, richtext.ErrTooManyElements
	}
	b.out.Elements = append(b.out.Elements, el)
	return len(b.out.Elements) - 1, nil
}

func (b *builder) appendText(s string) error {
	if s == "" {
		return nil
	}
	if b.run < 0 {
		idx, err := b.addElement(&richtext.TextRun{ElementStyle: b.st.style(), Font: b.st.font})
		if err != nil {
			return err
		}
		b.run = idx
	}
	for _, r := range s {
		b.out.Text = append(b.out.Text, r)
		b.out.ElementIndices = append(b.out.ElementIndices, uint16(b.run)) //nolint:gosec // bounded by addElement
	}
	return nil
}

func (b *builder) appendObject(el richtext.Element) error {
	idx, err := b.addElement(el)
	if err != nil {
		return err
	}
	b.out.Text = append(b.out.Text, ObjectReplacement)
	b.out.ElementIndices = append(b.out.ElementIndices, uint16(idx)) //nolint:gosec // bounded by addElement
	return nil
}

// Parse implements richtext.Parser. Text before any font tag, and after
// [font=""], uses defaultFont.
func (p *Parser) Parse(text string, defaultFont richtext.Font) (*richtext.ParsedText, error) {
	ast, err := parseSource(text)
	if err != nil {
		return nil, err
	}

	b := builder{
		st:  state{font: defaultFont, colour: p.initialColour, vert: p.initialVert},
		run: -1,
	}
	for _, it := range ast.Items {
		switch {
		case it.Escape != nil:
			err = b.appendText(string(*it.Escape))
		case it.Text != nil:
			err = b.appendText(*it.Text)
		case it.Tag != nil:
			err = p.applyTag(&b, it.Tag, defaultFont)
		}
		if err != nil {
			return nil, err
		}
	}

	b.out.Elements = append(b.out.Elements, &richtext.TextRun{Font: defaultFont})
	richtext.Logger().Debug("markup: parsed",
		"runes", len(b.out.Text), "elements", len(b.out.Elements))
	return &b.out, nil
}

// applyTag updates the style or appends an embedded object.
func (p *Parser) applyTag(b *builder, t *tag, defaultFont richtext.Font) error {
	value := string(t.Value)
	fail := func(err error) error {
		return &TagError{Tag: t.Name, Value: value, Offset: t.Pos.Offset, Err: err}
	}

	st := b.st
	switch t.Name {
	case "font":
		if value == "" {
			st.font = defaultFont
			break
		}
		f, ok := p.fonts[value]
		if !ok {
			return fail(ErrUnknownFont)
		}
		st.font = f

	case "colour", "color":
		c, err := parseColour(value)
		if err != nil {
			return fail(err)
		}
		st.colour = c

	case "vert-alignment":
		v, err := parseVerticalFormatting(value)
		if err != nil {
			return fail(err)
		}
		st.vert = v

	case "padding":
		fields, err := parseFields(value, "l", "t", "r", "b")
		if err != nil {
			return fail(err)
		}
		setIf(&st.padding.Left, fields, "l")
		setIf(&st.padding.Top, fields, "t")
		setIf(&st.padding.Right, fields, "r")
		setIf(&st.padding.Bottom, fields, "b")

	case "left-padding", "top-padding", "right-padding", "bottom-padding":
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrInvalidValue, err))
		}
		switch t.Name {
		case "left-padding":
			st.padding.Left = v
		case "top-padding":
			st.padding.Top = v
		case "right-padding":
			st.padding.Right = v
		default:
			st.padding.Bottom = v
		}

	case "image-size":
		fields, err := parseFields(value, "w", "h")
		if err != nil {
			return fail(err)
		}
		setIf(&st.imageSize.Width, fields, "w")
		setIf(&st.imageSize.Height, fields, "h")

	case "image":
		if value == "" {
			return nil
		}
		img, ok := p.images[value]
		if !ok {
			return fail(ErrUnknownImage)
		}
		return b.appendObject(&richtext.EmbeddedImage{ElementStyle: b.st.style(), Image: img, Size: b.st.imageSize})

	case "window":
		if value == "" {
			return nil
		}
		obj, ok := p.widgets[value]
		if !ok {
			return fail(ErrUnknownWidget)
		}
		return b.appendObject(&richtext.EmbeddedWidget{ElementStyle: b.st.style(), Object: obj})

	default:
		richtext.Logger().Debug("markup: unknown tag ignored",
			"tag", t.Name, "offset", t.Pos.Offset)
		return nil
	}

	// Image size only affects images, text runs need no new element.
	if t.Name != "image-size" {
		b.run = -1
	}
	b.st = st
	return nil
}

// parseColour parses AARRGGBB or RRGGBB hex.
func parseColour(s string) (color.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 8 && len(s) != 6 {
		return nil, fmt.Errorf("%w: colour %q is not AARRGGBB", ErrInvalidValue, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if len(s) == 6 {
		v |= 0xFF000000
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func parseVerticalFormatting(s string) (richtext.VerticalFormatting, error) {
	switch strings.TrimSpace(s) {
	case "top":
		return richtext.VertTop, nil
	case "bottom":
		return richtext.VertBottom, nil
	case "centre", "center":
		return richtext.VertCentre, nil
	case "stretch":
		return richtext.VertStretched, nil
	default:
		return 0, fmt.Errorf("%w: vertical alignment %q", ErrInvalidValue, s)
	}
}

// parseFields parses space separated key:number pairs. Only the given keys
// are accepted.
func parseFields(s string, keys ...string) (map[string]float64, error) {
	out := make(map[string]float64, len(keys))
	for _, f := range strings.Fields(s) {
		k, v, ok := strings.Cut(f, ":")
		if !ok || !slices.Contains(keys, k) {
			return nil, fmt.Errorf("%w: field %q", ErrInvalidValue, f)
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidValue, f, err)
		}
		out[k] = n
	}
	return out, nil
}

func setIf(dst *float64, fields map[string]float64, key string) {
	if v, ok := fields[key]; ok {
		*dst = v
	}
}

// Escape returns s with every '[' and '\' escaped, so that it parses back
// to s.
func Escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `[`, `\[`)
	return r.Replace(s)
}
