package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/font"
)

// Config holds the layout settings. It is read from an optional YAML or
// TOML file and overridden by command line flags.
type Config struct {
	// Font is a TTF/OTF path. Empty selects the built-in Go Regular.
	Font        string  `yaml:"font" toml:"font"`
	Size        float64 `yaml:"size" toml:"size"`
	LineSpacing float64 `yaml:"line_spacing" toml:"line_spacing"`
	Width       float64 `yaml:"width" toml:"width"`
	Align       string  `yaml:"align" toml:"align"`
	LastAlign   string  `yaml:"last_align" toml:"last_align"`
	Wrap        bool    `yaml:"wrap" toml:"wrap"`
	Markup      bool    `yaml:"markup" toml:"markup"`
	Shaping     string  `yaml:"shaping" toml:"shaping"`
	Direction   string  `yaml:"direction" toml:"direction"`
	PDF         string  `yaml:"pdf" toml:"pdf"`

	// Fonts are named fonts for markup font tags.
	Fonts map[string]FontSpec `yaml:"fonts" toml:"fonts"`
}

// FontSpec is a named markup font. A zero size uses Config.Size.
type FontSpec struct {
	Path string  `yaml:"path" toml:"path"`
	Size float64 `yaml:"size" toml:"size"`
}

func defaultConfig() Config {
	return Config{
		Size:        16,
		LineSpacing: 1,
		Width:       400,
		Align:       "left",
		LastAlign:   "left",
		Wrap:        true,
		Shaping:     "harfbuzz",
		Direction:   "auto",
	}
}

// loadConfig reads path over the defaults. The format is chosen by
// extension: .yaml, .yml or .toml.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format, want .yaml, .yml or .toml", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) horizontalFormatting() (richtext.HorizontalFormatting, error) {
	base, err := parseAlign(c.Align)
	if err != nil {
		return 0, err
	}
	if !c.Wrap {
		return base, nil
	}
	switch base {
	case richtext.HorzRight:
		return richtext.HorzWordWrapRight, nil
	case richtext.HorzCentre:
		return richtext.HorzWordWrapCentre, nil
	case richtext.HorzJustified:
		return richtext.HorzWordWrapJustified, nil
	default:
		return richtext.HorzWordWrapLeft, nil
	}
}

func parseAlign(s string) (richtext.HorizontalFormatting, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return richtext.HorzLeft, nil
	case "right":
		return richtext.HorzRight, nil
	case "centre", "center":
		return richtext.HorzCentre, nil
	case "justified", "justify":
		return richtext.HorzJustified, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
}

func (c *Config) direction() (richtext.Direction, error) {
	switch strings.ToLower(c.Direction) {
	case "", "auto":
		return richtext.DirectionAuto, nil
	case "ltr":
		return richtext.DirectionLTR, nil
	case "rtl":
		return richtext.DirectionRTL, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", c.Direction)
	}
}

func (c *Config) shaping() (font.Shaping, error) {
	switch strings.ToLower(c.Shaping) {
	case "", "harfbuzz":
		return font.ShapingHarfBuzz, nil
	case "simple":
		return font.ShapingSimple, nil
	default:
		return 0, fmt.Errorf("unknown shaping %q", c.Shaping)
	}
}
