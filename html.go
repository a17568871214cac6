package mdwriter

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// HTMLMode controls what happens to raw HTML found in the Markdown source.
type HTMLMode string

const (
	HTMLStrip  HTMLMode = "strip"  // drop it
	HTMLAllow  HTMLMode = "allow"  // pass it through
	HTMLEscape HTMLMode = "escape" // show it as text
)

// HTMLConfig configures Markdown to HTML conversion.
type HTMLConfig struct {
	HTMLInput HTMLMode `yaml:"html_input"`
	// AllowUnsafeLinks keeps javascript:, vbscript:, file: and data: link
	// targets. When false they are rendered as empty targets.
	AllowUnsafeLinks bool `yaml:"allow_unsafe_links"`
	// MaxNestingLevel limits how deeply block elements may nest. Zero means
	// no limit.
	MaxNestingLevel int    `yaml:"max_nesting_level"`
	BlockSeparator  string `yaml:"block_separator"`
	SoftBreak       string `yaml:"soft_break"`
	XHTML           bool   `yaml:"xhtml"`
}

// DefaultHTMLConfig returns the conversion settings used when none are given.
func DefaultHTMLConfig() HTMLConfig {
	return HTMLConfig{
		HTMLInput:      HTMLStrip,
		BlockSeparator: "\n",
		SoftBreak:      "\n",
	}
}

// Validate reports whether c can be used for conversion.
func (c HTMLConfig) Validate() error {
	switch c.HTMLInput {
	case "", HTMLStrip, HTMLAllow, HTMLEscape:
	default:
		return fmt.Errorf("%w: html_input %q (want strip, allow or escape)", ErrInvalidConfig, c.HTMLInput)
	}
	if c.MaxNestingLevel < 0 {
		return fmt.Errorf("%w: max_nesting_level %d", ErrInvalidConfig, c.MaxNestingLevel)
	}
	return nil
}

func (c HTMLConfig) withDefaults() HTMLConfig {
	d := DefaultHTMLConfig()
	if c.HTMLInput == "" {
		c.HTMLInput = d.HTMLInput
	}
	if c.BlockSeparator == "" {
		c.BlockSeparator = d.BlockSeparator
	}
	if c.SoftBreak == "" {
		c.SoftBreak = d.SoftBreak
	}
	return c
}

// HTML converts the current document to HTML.
func (w *Writer) HTML(cfg HTMLConfig) (string, error) {
	return ToHTML(w.buf.String(), cfg)
}

// ToHTML converts GitHub-flavored Markdown to an HTML fragment.
func ToHTML(markdown string, cfg HTMLConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	cfg = cfg.withDefaults()

	md := newMarkdown(cfg)
	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	if cfg.MaxNestingLevel > 0 {
		if depth := nestingDepth(doc); depth > cfg.MaxNestingLevel {
			return "", fmt.Errorf("%w: blocks nest %d deep, limit is %d", ErrConversion, depth, cfg.MaxNestingLevel)
		}
	}

	var out strings.Builder
	var block bytes.Buffer
	first := true
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		block.Reset()
		if err := md.Renderer().Render(&block, src, n); err != nil {
			return "", fmt.Errorf("%w: %w", ErrConversion, err)
		}
		rendered := strings.TrimRight(block.String(), "\n")
		if rendered == "" {
			continue
		}
		if !first {
			out.WriteString(cfg.BlockSeparator)
		}
		out.WriteString(rendered)
		first = false
	}
	if !first {
		out.WriteString("\n")
	}
	return out.String(), nil
}

func newMarkdown(cfg HTMLConfig) goldmark.Markdown {
	rendererOpts := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(&markupRenderer{cfg: cfg}, 100)),
	}
	if cfg.AllowUnsafeLinks {
		rendererOpts = append(rendererOpts, gmhtml.WithUnsafe())
	}
	if cfg.XHTML {
		rendererOpts = append(rendererOpts, gmhtml.WithXHTML())
	}
	return goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.TaskList),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// nestingDepth returns how many block nodes deep the tree goes below the
// document node.
func nestingDepth(doc ast.Node) int {
	depth, deepest := 0, 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Kind() == ast.KindDocument {
			return ast.WalkContinue, nil
		}
		if n.Type() != ast.TypeBlock {
			return ast.WalkSkipChildren, nil
		}
		if entering {
			depth++
			deepest = max(deepest, depth)
		} else {
			depth--
		}
		return ast.WalkContinue, nil
	})
	return deepest
}

// markupRenderer overrides goldmark's handling of raw HTML and soft line
// breaks. Raw HTML follows the configured HTMLMode independently of the
// unsafe-link setting, which goldmark couples together.
type markupRenderer struct {
	cfg HTMLConfig
}

func (r *markupRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindText, r.renderText)
}

func (r *markupRenderer) writeRaw(w util.BufWriter, raw []byte) {
	switch r.cfg.HTMLInput {
	case HTMLAllow:
		gmhtml.DefaultWriter.SecureWrite(w, raw)
	case HTMLEscape:
		_, _ = w.WriteString(html.EscapeString(string(raw)))
	}
}

func (r *markupRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	var raw bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		raw.Write(seg.Value(source))
	}
	r.writeRaw(w, raw.Bytes())
	return ast.WalkSkipChildren, nil
}

func (r *markupRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.HTMLBlock)
	var raw bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw.Write(seg.Value(source))
	}
	if n.HasClosure() {
		raw.Write(n.ClosureLine.Value(source))
	}
	if strings.TrimSpace(raw.String()) == PageBreakMarkup {
		_, _ = w.WriteString(PageBreakMarkup + "\n")
		return ast.WalkContinue, nil
	}
	r.writeRaw(w, raw.Bytes())
	return ast.WalkContinue, nil
}

func (r *markupRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Segment.Value(source)
	if n.IsRaw() {
		gmhtml.DefaultWriter.RawWrite(w, value)
		return ast.WalkContinue, nil
	}
	gmhtml.DefaultWriter.Write(w, value)
	switch {
	case n.HardLineBreak():
		if r.cfg.XHTML {
			_, _ = w.WriteString("<br />\n")
		} else {
			_, _ = w.WriteString("<br>\n")
		}
	case n.SoftLineBreak():
		_, _ = w.WriteString(r.cfg.SoftBreak)
	}
	return ast.WalkContinue, nil
}
