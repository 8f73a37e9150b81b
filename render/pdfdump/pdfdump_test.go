package pdfdump

import (
	"bytes"
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/font"
)

type boxImage struct{}

func (boxImage) RenderedSize() richtext.Size { return richtext.Size{Width: 10, Height: 10} }

func layoutQuads(t *testing.T) []richtext.Quad {
	t.Helper()
	src, err := font.NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource() = %v", err)
	}
	d := richtext.NewDocument(
		richtext.WithDefaultFont(src.Face(14)),
		richtext.WithHorizontalFormatting(richtext.HorzWordWrapJustified),
	)
	if err := d.RenderText("Sphinx of black quartz, judge my vow."); err != nil {
		t.Fatalf("RenderText() = %v", err)
	}
	d.Format(150, nil)
	return d.CreateRenderGeometry(nil, richtext.Vec2{}, nil)
}

func TestWrite(t *testing.T) {
	quads := layoutQuads(t)
	quads = append(quads, richtext.Quad{
		Image:  boxImage{},
		Dest:   richtext.RectFromPosSize(richtext.Vec2{X: 0, Y: 80}, richtext.Size{Width: 10, Height: 10}),
		Colour: color.NRGBA{R: 0xFF, A: 0xFF},
	})

	var buf bytes.Buffer
	if err := Write(&buf, quads, WithBoxes(true), WithMargin(5)); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWrite_NoQuads(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); !errors.Is(err, ErrNoQuads) {
		t.Errorf("Write(nil) = %v, want ErrNoQuads", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.pdf")
	if err := WriteFile(path, layoutQuads(t), WithScale(0.5)); err != nil {
		t.Fatalf("WriteFile() = %v", err)
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.pdf"), layoutQuads(t)); err == nil {
		t.Error("WriteFile() into a missing directory succeeded")
	}
}
