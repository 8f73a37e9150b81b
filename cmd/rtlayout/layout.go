package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/font"
	"github.com/gogpu/richtext/markup"
)

// buildDocument loads the fonts named by cfg and renders text.
func buildDocument(cfg *Config, text string) (*richtext.Document, error) {
	shaping, err := cfg.shaping()
	if err != nil {
		return nil, err
	}
	horz, err := cfg.horizontalFormatting()
	if err != nil {
		return nil, err
	}
	last, err := parseAlign(cfg.LastAlign)
	if err != nil {
		return nil, err
	}
	dir, err := cfg.direction()
	if err != nil {
		return nil, err
	}

	face, err := loadFace(cfg.Font, cfg.Size, cfg.LineSpacing, shaping)
	if err != nil {
		return nil, err
	}

	opts := []richtext.DocumentOption{
		richtext.WithDefaultFont(face),
		richtext.WithHorizontalFormatting(horz),
		richtext.WithLastJustifiedLineFormatting(last),
		richtext.WithDirection(dir),
	}
	if cfg.Markup {
		opts = append(opts, richtext.WithParser(markup.New(markup.WithFonts(loadNamedFonts(cfg, shaping)))))
	}

	doc := richtext.NewDocument(opts...)
	if err := doc.RenderText(text); err != nil {
		return nil, err
	}
	return doc, nil
}

func loadFace(path string, size, spacing float64, shaping font.Shaping) (*font.Face, error) {
	var (
		src *font.Source
		err error
	)
	if path == "" {
		src, err = font.NewSource(goregular.TTF, font.WithShaping(shaping))
	} else {
		src, err = font.NewSourceFromFile(path, font.WithShaping(shaping))
	}
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	return src.Face(size, font.WithLineSpacing(spacing)), nil
}

// loadNamedFonts loads the markup fonts. Fonts that fail to load are
// reported and left out, so tags naming them fail to parse.
func loadNamedFonts(cfg *Config, shaping font.Shaping) map[string]richtext.Font {
	fonts := make(map[string]richtext.Font, len(cfg.Fonts))
	for name, spec := range cfg.Fonts {
		size := spec.Size
		if size <= 0 {
			size = cfg.Size
		}
		face, err := loadFace(spec.Path, size, cfg.LineSpacing, shaping)
		if err != nil {
			richtext.Logger().Warn("rtlayout: font not loaded", "name", name, "path", spec.Path, "err", err)
			continue
		}
		fonts[name] = face
	}
	return fonts
}

// printLayout writes one row per line: paragraph, line, offset, size and
// the code points the line covers.
func printLayout(w io.Writer, doc *richtext.Document) {
	text := doc.Text()
	for pi, p := range doc.Paragraphs() {
		lines, ok := p.Lines()
		if !ok {
			continue
		}
		glyphs := p.Glyphs()
		start := 0
		for li, line := range lines {
			fmt.Fprintf(w, "%3d.%-3d x=%7.2f w=%7.2f h=%6.2f  |%s|\n",
				pi, li, line.HorzOffset, line.Extents.Width, line.Extents.Height,
				lineText(text, glyphs[start:line.GlyphEnd]))
			start = line.GlyphEnd
		}
	}

	size, _ := doc.Extents()
	fits := "fits"
	if !doc.FitsIntoAreaWidth() {
		fits = "overflows"
	}
	fmt.Fprintf(w, "%d lines, %.2fx%.2f, %s\n", doc.LineCount(), size.Width, size.Height, fits)
}

// lineText returns the source text covered by glyphs.
func lineText(text []rune, glyphs []richtext.Glyph) string {
	if len(glyphs) == 0 {
		return ""
	}
	lo, hi := glyphs[0].SourceIndex, glyphs[0].SourceIndex
	for _, g := range glyphs[1:] {
		lo = min(lo, g.SourceIndex)
		hi = max(hi, g.SourceIndex)
	}
	hi = min(hi+1, len(text))
	if lo >= hi {
		return ""
	}
	return strings.ReplaceAll(string(text[lo:hi]), string(markup.ObjectReplacement), "[obj]")
}
