// Command rtlayout lays out plain or tagged text at a given width and
// prints the resulting lines. It can also dump the emitted geometry to PDF.
//
// Usage:
//
//	rtlayout [flags] [text...]
//
// Text is read from standard input when no arguments are given.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/render/pdfdump"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("rtlayout", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	def := defaultConfig()
	var (
		configPath string
		debug      bool
		boxes      bool
		fl         = def
	)
	flags.StringVarP(&configPath, "config", "c", "", "YAML or TOML config file")
	flags.StringVarP(&fl.Font, "font", "f", "", "font file (default: Go Regular)")
	flags.Float64VarP(&fl.Size, "size", "s", def.Size, "font size in pixels")
	flags.Float64Var(&fl.LineSpacing, "line-spacing", def.LineSpacing, "line height multiplier")
	flags.Float64VarP(&fl.Width, "width", "w", def.Width, "area width in pixels")
	flags.StringVarP(&fl.Align, "align", "a", def.Align, "left, right, centre or justified")
	flags.StringVar(&fl.LastAlign, "last-align", def.LastAlign, "alignment of the last line of justified paragraphs")
	flags.BoolVar(&fl.Wrap, "wrap", def.Wrap, "wrap lines at the area width")
	flags.BoolVarP(&fl.Markup, "markup", "m", def.Markup, "parse [tag='value'] markup")
	flags.StringVar(&fl.Shaping, "shaping", def.Shaping, "harfbuzz or simple")
	flags.StringVar(&fl.Direction, "direction", def.Direction, "ltr, rtl or auto")
	flags.StringVarP(&fl.PDF, "pdf", "o", "", "write the layout to a PDF file")
	flags.BoolVar(&boxes, "boxes", false, "outline quads in the PDF")
	flags.BoolVar(&debug, "debug", false, "log layout events to stderr")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if debug {
		richtext.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		richtext.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	applyFlags(&cfg, &fl, flags)

	text := strings.Join(flags.Args(), " ")
	if len(flags.Args()) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return 1
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	doc, err := buildDocument(&cfg, text)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	doc.Format(cfg.Width, nil)
	printLayout(stdout, doc)

	if cfg.PDF != "" {
		quads := doc.CreateRenderGeometry(nil, richtext.Vec2{}, nil)
		if err := pdfdump.WriteFile(cfg.PDF, quads, pdfdump.WithBoxes(boxes)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s (%d quads)\n", cfg.PDF, len(quads))
	}
	return 0
}

// applyFlags copies the flags set on the command line over cfg.
func applyFlags(cfg, fl *Config, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "font":
			cfg.Font = fl.Font
		case "size":
			cfg.Size = fl.Size
		case "line-spacing":
			cfg.LineSpacing = fl.LineSpacing
		case "width":
			cfg.Width = fl.Width
		case "align":
			cfg.Align = fl.Align
		case "last-align":
			cfg.LastAlign = fl.LastAlign
		case "wrap":
			cfg.Wrap = fl.Wrap
		case "markup":
			cfg.Markup = fl.Markup
		case "shaping":
			cfg.Shaping = fl.Shaping
		case "direction":
			cfg.Direction = fl.Direction
		case "pdf":
			cfg.PDF = fl.PDF
		}
	})
}
