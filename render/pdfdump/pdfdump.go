// Package pdfdump draws emitted richtext geometry into a PDF page for
// inspecting layouts without a renderer.
//
// Glyphs produced by the font package are drawn as filled outlines. Any
// other image is drawn as a stroked box.
package pdfdump

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/font"
)

// ErrNoQuads is returned when there is nothing to draw.
var ErrNoQuads = errors.New("pdfdump: no quads")

// Option configures a dump.
type Option func(*config)

type config struct {
	mmPerPixel float64
	margin     float64
	boxes      bool
	boxColour  color.Color
}

func defaultConfig() config {
	return config{
		mmPerPixel: 25.4 / 96,
		margin:     10,
		boxColour:  canvas.Hex("#3080ff"),
	}
}

// WithScale sets the size of one layout pixel in millimetres.
// The default is 96 pixels per inch.
func WithScale(mmPerPixel float64) Option {
	return func(c *config) {
		if mmPerPixel > 0 {
			c.mmPerPixel = mmPerPixel
		}
	}
}

// WithMargin sets the page margin in millimetres.
func WithMargin(mm float64) Option {
	return func(c *config) {
		c.margin = max(0, mm)
	}
}

// WithBoxes also strokes the destination rectangle of every quad.
func WithBoxes(on bool) Option {
	return func(c *config) {
		c.boxes = on
	}
}

// Write draws quads onto a single PDF page sized to fit them.
func Write(w io.Writer, quads []richtext.Quad, opts ...Option) error {
	if len(quads) == 0 {
		return ErrNoQuads
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bounds := quads[0].Dest
	for _, q := range quads[1:] {
		bounds.Min.X = min(bounds.Min.X, q.Dest.Min.X)
		bounds.Min.Y = min(bounds.Min.Y, q.Dest.Min.Y)
		bounds.Max.X = max(bounds.Max.X, q.Dest.Max.X)
		bounds.Max.Y = max(bounds.Max.Y, q.Dest.Max.Y)
	}

	d := dumper{cfg: cfg, origin: bounds.Min}
	width := bounds.Width()*cfg.mmPerPixel + 2*cfg.margin
	height := bounds.Height()*cfg.mmPerPixel + 2*cfg.margin

	writer := pdf.New(w, width, height, nil)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	for i := range quads {
		if err := d.draw(ctx, &quads[i]); err != nil {
			return err
		}
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("pdfdump: write: %w", err)
	}
	richtext.Logger().Debug("pdfdump: written", "quads", len(quads), "width_mm", width, "height_mm", height)
	return nil
}

// WriteFile is Write to a new file at path.
func WriteFile(path string, quads []richtext.Quad, opts ...Option) (err error) {
	f, err := os.Create(path) // #nosec G304 -- output path is provided by the caller
	if err != nil {
		return fmt.Errorf("pdfdump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("pdfdump: %w", cerr)
		}
	}()
	return Write(f, quads, opts...)
}

type dumper struct {
	cfg    config
	origin richtext.Vec2
}

// toPage converts a layout position to page millimetres.
func (d *dumper) toPage(v richtext.Vec2) (float64, float64) {
	return d.cfg.margin + (v.X-d.origin.X)*d.cfg.mmPerPixel,
		d.cfg.margin + (v.Y-d.origin.Y)*d.cfg.mmPerPixel
}

func (d *dumper) draw(ctx *canvas.Context, q *richtext.Quad) error {
	col := q.Colour
	if col == nil {
		col = canvas.Black
	}

	x, y := d.toPage(q.Dest.Min)
	w := q.Dest.Width() * d.cfg.mmPerPixel
	h := q.Dest.Height() * d.cfg.mmPerPixel

	if g, ok := q.Image.(*font.GlyphImage); ok {
		p, err := d.glyphPath(g, q.Dest)
		if err != nil {
			return fmt.Errorf("pdfdump: glyph %d: %w", g.GlyphIndex(), err)
		}
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(0, 0, p)
	} else {
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(col)
		ctx.SetStrokeWidth(0.2)
		ctx.DrawPath(x, y, canvas.Rectangle(w, h))
	}

	if d.cfg.boxes {
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(d.cfg.boxColour)
		ctx.SetStrokeWidth(0.05)
		ctx.DrawPath(x, y, canvas.Rectangle(w, h))
	}
	return nil
}

// glyphPath maps the glyph outline onto dest in page coordinates. The
// outline is scaled when the quad was stretched.
func (d *dumper) glyphPath(g *font.GlyphImage, dest richtext.Rect) (*canvas.Path, error) {
	segs, err := g.Outline()
	if err != nil {
		return nil, err
	}

	sx, sy := 1.0, 1.0
	if bw := g.Bounds.Width(); bw > 0 {
		sx = dest.Width() / bw
	}
	if bh := g.Bounds.Height(); bh > 0 {
		sy = dest.Height() / bh
	}
	pt := func(p fixed.Point26_6) (float64, float64) {
		return d.toPage(richtext.Vec2{
			X: dest.Min.X + (float64(p.X)/64-g.Bounds.Min.X)*sx,
			Y: dest.Min.Y + (float64(p.Y)/64-g.Bounds.Min.Y)*sy,
		})
	}

	p := &canvas.Path{}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if !p.Empty() {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			ex, ey := pt(s.Args[1])
			p.QuadTo(cx, cy, ex, ey)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			ex, ey := pt(s.Args[2])
			p.CubeTo(c1x, c1y, c2x, c2y, ex, ey)
		}
	}
	if !p.Empty() {
		p.Close()
	}
	return p, nil
}
