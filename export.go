package mdwriter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/mdwriter/pdf"
)

// SaveAsRaw writes the current document verbatim to path, creating missing
// parent directories.
func (w *Writer) SaveAsRaw(path string) error {
	return w.save(path, "markdown", w.buf.String())
}

// SaveAsHTML converts the current document with cfg and writes the HTML to
// path.
func (w *Writer) SaveAsHTML(path string, cfg HTMLConfig) error {
	out, err := w.HTML(cfg)
	if err != nil {
		return err
	}
	return w.save(path, "html", out)
}

// SaveAsPDF converts the current document to HTML and lays it out as a PDF
// at path. Document properties left empty in cfg.PDF are filled from the
// writer's metadata.
func (w *Writer) SaveAsPDF(path string, cfg ExportConfig) error {
	out, err := w.HTML(cfg.HTML)
	if err != nil {
		return err
	}
	pcfg := w.pdfConfig(cfg.PDF)
	if err := pdf.RenderFile(path, out, pcfg); err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	w.logger.Debug("exported", slog.String("format", "pdf"), slog.String("path", path))
	return nil
}

func (w *Writer) pdfConfig(c pdf.Config) pdf.Config {
	if c.Title == "" {
		c.Title = w.meta.Title
	}
	if c.Author == "" {
		c.Author = w.meta.Author
	}
	if c.Subject == "" {
		c.Subject = w.meta.Subject
	}
	if c.Keywords == "" {
		c.Keywords = strings.Join(w.meta.Keywords, ", ")
	}
	return c
}

func (w *Writer) save(path, format, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrSave, format, path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrSave, format, path, err)
	}
	w.logger.Debug("exported", slog.String("format", format), slog.String("path", path), slog.Int("bytes", len(content)))
	return nil
}
