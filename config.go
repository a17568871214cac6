package mdwriter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/mdwriter/pdf"
)

// ExportConfig groups the settings of the HTML and PDF exporters. It can be
// loaded from YAML:
//
//	html:
//	  html_input: escape
//	  allow_unsafe_links: false
//	  max_nesting_level: 20
//	pdf:
//	  page_format: Letter
//	  font_family: Times
//	  footer: "<i>Page {PAGENO} of {nbpg}</i>"
//	  watermark: DRAFT
type ExportConfig struct {
	HTML HTMLConfig `yaml:"html"`
	PDF  pdf.Config `yaml:"pdf"`
}

// DefaultExportConfig returns the default HTML and PDF settings.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		HTML: DefaultHTMLConfig(),
		PDF:  pdf.DefaultConfig(),
	}
}

// Validate checks both sections.
func (c ExportConfig) Validate() error {
	if err := c.HTML.Validate(); err != nil {
		return err
	}
	if err := c.PDF.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads an ExportConfig from the YAML file at path.
func LoadConfig(path string) (ExportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExportConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over [DefaultExportConfig]. Keys that are absent
// keep their defaults; unknown keys are an error.
func ParseConfig(data []byte) (ExportConfig, error) {
	cfg := DefaultExportConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ExportConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return ExportConfig{}, err
	}
	return cfg, nil
}
