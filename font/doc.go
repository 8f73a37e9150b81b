// Package font loads OpenType fonts and provides faces that implement
// richtext.Font.
//
// A Source holds parsed font data; faces are created per size:
//
//	src, err := font.NewSource(goregular.TTF)
//	if err != nil {
//		return err
//	}
//	face := src.Face(16)
//
// Faces shape with go-text/typesetting by default, which handles ligatures,
// kerning and complex scripts. WithShaping(ShapingSimple) selects a one glyph
// per code point shaper built on golang.org/x/image/font/sfnt.
//
// Glyph images are *GlyphImage values carrying the glyph's bounds and
// outline. Rasterization is left to the renderer.
package font
