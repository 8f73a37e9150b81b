package font

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/richtext"
)

// HarfbuzzShaper keeps a mutable buffer and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapeHarfBuzz shapes text with go-text/typesetting. The output is in
// visual order with clusters relative to text.
func (f *Face) shapeHarfBuzz(text []rune, dir richtext.Direction) ([]richtext.ShapedGlyph, error) {
	hbFont, err := f.src.harfBuzzFont()
	if err != nil {
		return nil, err
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: mapDirection(dir),
		// Faces are not safe for concurrent use, fonts are.
		Face:     gotext.NewFace(hbFont),
		Size:     floatToFixed(f.size),
		Script:   detectScript(text),
		Language: language.NewLanguage(f.cfg.language),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	var buf sfnt.Buffer
	glyphs := make([]richtext.ShapedGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = f.glyph(&buf,
			g.TextIndex(),
			sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			fixedToFloat(g.Advance),
			fixedToFloat(g.XOffset),
			fixedToFloat(g.YOffset),
		)
	}
	return glyphs, nil
}

func mapDirection(d richtext.Direction) di.Direction {
	if d == richtext.DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space code point.
// Mixed-script text should be split into runs by the parser.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
