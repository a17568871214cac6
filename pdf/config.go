package pdf

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrConfig = errors.New("invalid pdf config")
	ErrRender = errors.New("pdf render failed")
)

// Config holds page layout, typography and document properties.
// Margins and font size are in millimetres and points respectively.
type Config struct {
	PageFormat   string  `yaml:"page_format"`
	Orientation  string  `yaml:"orientation"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginBottom float64 `yaml:"margin_bottom"`
	MarginLeft   float64 `yaml:"margin_left"`
	FontFamily   string  `yaml:"font_family"`
	FontSize     float64 `yaml:"font_size"`

	// Header and Footer are small HTML fragments (b, i, u, a, br) drawn on
	// every page. {PAGENO} is replaced by the page number and {nbpg} by the
	// page count.
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`

	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`

	// Watermark is drawn diagonally behind the content of every page.
	Watermark string `yaml:"watermark"`
}

// DefaultConfig returns A4 portrait with Helvetica 11pt.
func DefaultConfig() Config {
	return Config{
		PageFormat:   "A4",
		Orientation:  "P",
		MarginTop:    20,
		MarginRight:  15,
		MarginBottom: 20,
		MarginLeft:   15,
		FontFamily:   "Helvetica",
		FontSize:     11,
	}
}

var pageFormats = map[string]string{
	"a3":     "A3",
	"a4":     "A4",
	"a5":     "A5",
	"letter": "Letter",
	"legal":  "Legal",
}

var coreFonts = map[string]string{
	"helvetica": "Helvetica",
	"arial":     "Helvetica",
	"times":     "Times",
	"courier":   "Courier",
}

var orientations = map[string]string{
	"p":         "P",
	"portrait":  "P",
	"l":         "L",
	"landscape": "L",
}

// Validate reports whether c describes a renderable document. Empty page
// format, orientation and font family are accepted and take their defaults.
func (c Config) Validate() error {
	if c.PageFormat != "" {
		if _, ok := pageFormats[strings.ToLower(c.PageFormat)]; !ok {
			return fmt.Errorf("%w: page_format %q", ErrConfig, c.PageFormat)
		}
	}
	if c.Orientation != "" {
		if _, ok := orientations[strings.ToLower(c.Orientation)]; !ok {
			return fmt.Errorf("%w: orientation %q", ErrConfig, c.Orientation)
		}
	}
	if c.FontFamily != "" {
		if _, ok := coreFonts[strings.ToLower(c.FontFamily)]; !ok {
			return fmt.Errorf("%w: font_family %q is not a core font", ErrConfig, c.FontFamily)
		}
	}
	if c.FontSize < 0 {
		return fmt.Errorf("%w: font_size %v", ErrConfig, c.FontSize)
	}
	for name, m := range map[string]float64{
		"margin_top":    c.MarginTop,
		"margin_right":  c.MarginRight,
		"margin_bottom": c.MarginBottom,
		"margin_left":   c.MarginLeft,
	} {
		if m < 0 {
			return fmt.Errorf("%w: %s %v", ErrConfig, name, m)
		}
	}
	return nil
}

// normalized fills empty fields from DefaultConfig and canonicalizes names.
// Margins are taken as given.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.PageFormat == "" {
		c.PageFormat = d.PageFormat
	}
	c.PageFormat = pageFormats[strings.ToLower(c.PageFormat)]
	if c.Orientation == "" {
		c.Orientation = d.Orientation
	}
	c.Orientation = orientations[strings.ToLower(c.Orientation)]
	if c.FontFamily == "" {
		c.FontFamily = d.FontFamily
	}
	c.FontFamily = coreFonts[strings.ToLower(c.FontFamily)]
	if c.FontSize == 0 {
		c.FontSize = d.FontSize
	}
	return c
}
