package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/net/html"
)

const (
	pageNoPlaceholder   = "{PAGENO}"
	pageCountAlias      = "{nbpg}"
	lineHeightFactor    = 1.4
	headerFooterScaling = 0.8
)

// Render lays out htmlSrc according to cfg and writes the PDF to w.
func Render(w io.Writer, htmlSrc string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.normalized()

	root, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return fmt.Errorf("%w: parse html: %w", ErrRender, err)
	}

	f := newDocument(cfg)
	l := newLayout(f, cfg)
	f.AddPage()
	body := findElement(root, "body")
	if body == nil {
		body = root
	}
	l.blocks(body)
	l.endLine()

	if err := f.Output(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// RenderFile renders to the file at path, creating missing parent
// directories. The file is removed again if rendering fails.
func RenderFile(path, htmlSrc string, cfg Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrRender, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return Render(out, htmlSrc, cfg)
}

func newDocument(cfg Config) *fpdf.Fpdf {
	f := fpdf.New(cfg.Orientation, "mm", cfg.PageFormat, "")
	f.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	f.SetAutoPageBreak(true, cfg.MarginBottom)
	f.SetCreator("mdwriter", true)
	if cfg.Title != "" {
		f.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		f.SetAuthor(cfg.Author, true)
	}
	if cfg.Subject != "" {
		f.SetSubject(cfg.Subject, true)
	}
	if cfg.Keywords != "" {
		f.SetKeywords(cfg.Keywords, true)
	}
	f.AliasNbPages(pageCountAlias)

	tr := f.UnicodeTranslatorFromDescriptor("")
	f.SetHeaderFuncMode(func() {
		if cfg.Watermark != "" {
			drawWatermark(f, tr, cfg)
		}
		if cfg.Header != "" {
			f.SetXY(cfg.MarginLeft, cfg.MarginTop/3)
			drawFragment(f, tr, cfg, cfg.Header)
		}
	}, true)
	if cfg.Footer != "" {
		f.SetFooterFunc(func() {
			f.SetY(-cfg.MarginBottom * 0.6)
			drawFragment(f, tr, cfg, cfg.Footer)
		})
	}
	return f
}

// drawFragment writes a header or footer fragment with fpdf's basic HTML
// support in a slightly smaller font.
func drawFragment(f *fpdf.Fpdf, tr func(string) string, cfg Config, fragment string) {
	size := cfg.FontSize * headerFooterScaling
	f.SetFont(cfg.FontFamily, "", size)
	f.SetTextColor(90, 90, 90)
	fragment = strings.ReplaceAll(fragment, pageNoPlaceholder, strconv.Itoa(f.PageNo()))
	_, unit := f.GetFontSize()
	basic := f.HTMLBasicNew()
	basic.Write(unit*lineHeightFactor, tr(fragment))
	f.SetTextColor(0, 0, 0)
}

func drawWatermark(f *fpdf.Fpdf, tr func(string) string, cfg Config) {
	w, h := f.GetPageSize()
	f.SetFont(cfg.FontFamily, "B", 60)
	f.SetTextColor(200, 200, 200)
	f.SetAlpha(0.35, "Normal")
	text := tr(cfg.Watermark)
	tw := f.GetStringWidth(text)
	f.TransformBegin()
	f.TransformRotate(45, w/2, h/2)
	f.Text(w/2-tw/2, h/2, text)
	f.TransformEnd()
	f.SetAlpha(1, "Normal")
	f.SetTextColor(0, 0, 0)
}
