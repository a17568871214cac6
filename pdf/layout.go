package pdf

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/net/html"
)

const (
	listIndent  = 6.0
	quoteIndent = 6.0
	cellPadding = 1.5
)

var headingScale = [7]float64{0, 1.8, 1.5, 1.3, 1.15, 1.05, 1.0}

// layout walks an HTML tree and draws it onto f. Block elements start on a
// fresh line; inline content flows with f.Write and wraps at the margins.
type layout struct {
	f   *fpdf.Fpdf
	tr  func(string) string
	cfg Config

	size   float64 // current font size in points
	bold   int
	italic int
	mono   int
	href   string

	indent float64 // extra left margin for lists and quotes
	open   bool    // inline text was written on the current line
}

func newLayout(f *fpdf.Fpdf, cfg Config) *layout {
	return &layout{
		f:    f,
		tr:   f.UnicodeTranslatorFromDescriptor(""),
		cfg:  cfg,
		size: cfg.FontSize,
	}
}

func (l *layout) lineHeight() float64 {
	return l.size * 25.4 / 72 * lineHeightFactor
}

func (l *layout) applyFont() {
	family := l.cfg.FontFamily
	if l.mono > 0 {
		family = "Courier"
	}
	style := ""
	if l.bold > 0 {
		style += "B"
	}
	if l.italic > 0 {
		style += "I"
	}
	if l.href != "" {
		style += "U"
	}
	l.f.SetFont(family, style, l.size)
	if l.href != "" {
		l.f.SetTextColor(20, 60, 170)
	} else {
		l.f.SetTextColor(0, 0, 0)
	}
}

func (l *layout) setIndent(indent float64) {
	l.indent = indent
	l.f.SetLeftMargin(l.cfg.MarginLeft + indent)
	l.f.SetX(l.cfg.MarginLeft + indent)
}

// endLine finishes the current line of inline text, if any.
func (l *layout) endLine() {
	if l.open {
		l.f.Ln(l.lineHeight())
		l.open = false
	}
}

func (l *layout) gap(factor float64) {
	l.endLine()
	l.f.Ln(l.lineHeight() * factor)
}

func (l *layout) blocks(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.block(c)
	}
}

func (l *layout) block(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			l.inline(n)
		}
		return
	case html.ElementNode:
	default:
		l.blocks(n)
		return
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		l.heading(int(n.Data[1]-'0'), n)
	case "p":
		l.endLine()
		l.inlines(n)
		l.gap(0.4)
	case "ul", "ol":
		l.list(n, n.Data == "ol")
		l.gap(0.3)
	case "pre":
		l.pre(n)
	case "blockquote":
		l.endLine()
		prev := l.indent
		l.setIndent(prev + quoteIndent)
		l.italic++
		l.blocks(n)
		l.italic--
		l.endLine()
		l.setIndent(prev)
	case "table":
		l.table(n)
	case "hr":
		l.rule()
	case "div":
		if isPageBreak(n) {
			l.endLine()
			l.f.AddPage()
			return
		}
		l.blocks(n)
	case "script", "style", "head", "title":
	default:
		if isInline(n.Data) {
			l.inline(n)
			return
		}
		l.blocks(n)
	}
}

func (l *layout) heading(level int, n *html.Node) {
	l.endLine()
	l.f.Ln(l.lineHeight() * 0.5)
	prev := l.size
	l.size = l.cfg.FontSize * headingScale[level]
	l.bold++
	l.inlines(n)
	l.endLine()
	l.bold--
	l.size = prev
	l.f.Ln(l.lineHeight() * 0.3)
}

func (l *layout) inlines(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.inline(c)
	}
}

func (l *layout) inline(n *html.Node) {
	if n.Type == html.TextNode {
		l.text(collapseSpace(n.Data))
		return
	}
	if n.Type != html.ElementNode {
		l.inlines(n)
		return
	}
	switch n.Data {
	case "strong", "b":
		l.bold++
		l.inlines(n)
		l.bold--
	case "em", "i":
		l.italic++
		l.inlines(n)
		l.italic--
	case "code", "kbd", "samp":
		l.mono++
		l.inlines(n)
		l.mono--
	case "a":
		prev := l.href
		l.href = attr(n, "href")
		l.inlines(n)
		l.href = prev
	case "br":
		l.f.Ln(l.lineHeight())
		l.open = false
	case "img":
		l.italic++
		l.text("[image: " + attr(n, "alt") + "]")
		l.italic--
	case "input":
		if attr(n, "type") == "checkbox" {
			if hasAttr(n, "checked") {
				l.text("[x] ")
			} else {
				l.text("[ ] ")
			}
		}
	case "ul", "ol", "p", "pre", "blockquote", "table", "div", "hr":
		l.block(n)
	default:
		l.inlines(n)
	}
}

func (l *layout) text(s string) {
	if s == "" {
		return
	}
	if !l.open {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return
		}
	}
	l.applyFont()
	if l.href != "" {
		l.f.WriteLinkString(l.lineHeight(), l.tr(s), l.href)
	} else {
		l.f.Write(l.lineHeight(), l.tr(s))
	}
	l.open = true
}

func (l *layout) list(n *html.Node, ordered bool) {
	l.endLine()
	prev := l.indent
	num := 1
	if ordered {
		if start, err := strconv.Atoi(attr(n, "start")); err == nil {
			num = start
		}
	}
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		marker := "•"
		if ordered {
			marker = strconv.Itoa(num) + "."
			num++
		}
		l.setIndent(prev)
		l.applyFont()
		l.f.Write(l.lineHeight(), l.tr(marker))
		l.f.SetLeftMargin(l.cfg.MarginLeft + prev + listIndent)
		l.f.SetX(max(l.f.GetX(), l.cfg.MarginLeft+prev+listIndent))
		l.indent = prev + listIndent
		l.open = true
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || isInline(c.Data) {
				l.inline(c)
				continue
			}
			switch c.Data {
			case "p":
				l.inlines(c)
			case "ul", "ol":
				l.list(c, c.Data == "ol")
			default:
				l.block(c)
			}
		}
		l.endLine()
	}
	l.setIndent(prev)
}

func (l *layout) pre(n *html.Node) {
	l.endLine()
	code := strings.TrimRight(textContent(n), "\n")
	prevSize := l.size
	l.size = l.cfg.FontSize * 0.9
	l.mono++
	l.applyFont()
	l.f.SetFillColor(242, 242, 242)
	l.f.MultiCell(0, l.lineHeight(), l.tr(code), "", "L", true)
	l.mono--
	l.size = prevSize
	l.f.Ln(l.lineHeight() * 0.4)
}

func (l *layout) rule() {
	l.endLine()
	pageW, _ := l.f.GetPageSize()
	y := l.f.GetY() + l.lineHeight()/2
	l.f.SetDrawColor(160, 160, 160)
	l.f.Line(l.cfg.MarginLeft+l.indent, y, pageW-l.cfg.MarginRight, y)
	l.f.SetDrawColor(0, 0, 0)
	l.f.Ln(l.lineHeight())
}

type tableCell struct {
	text   string
	header bool
	align  string
}

func (l *layout) table(n *html.Node) {
	l.endLine()
	rows := tableRows(n)
	if len(rows) == 0 {
		return
	}
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}

	pageW, pageH := l.f.GetPageSize()
	left := l.cfg.MarginLeft + l.indent
	avail := pageW - left - l.cfg.MarginRight

	l.applyFont()
	widths := make([]float64, numCols)
	for _, row := range rows {
		for i, cell := range row {
			l.bold = boolCount(cell.header)
			l.applyFont()
			widths[i] = max(widths[i], l.f.GetStringWidth(l.tr(cell.text))+2*cellPadding)
		}
	}
	l.bold = 0
	total := 0.0
	for _, w := range widths {
		total += w
	}
	if total > avail {
		for i := range widths {
			widths[i] = widths[i] / total * avail
		}
	}

	lh := l.lineHeight()
	for _, row := range rows {
		height := lh
		for i, cell := range row {
			l.bold = boolCount(cell.header)
			l.applyFont()
			lines := l.f.SplitText(l.tr(cell.text), max(widths[i]-2*cellPadding, 1))
			height = max(height, float64(max(1, len(lines)))*lh)
		}
		if l.f.GetY()+height > pageH-l.cfg.MarginBottom {
			l.f.AddPage()
		}
		y := l.f.GetY()
		x := left
		for i := range numCols {
			cell := tableCell{}
			if i < len(row) {
				cell = row[i]
			}
			l.bold = boolCount(cell.header)
			l.applyFont()
			l.f.Rect(x, y, widths[i], height, "D")
			l.f.SetXY(x+cellPadding, y)
			l.f.MultiCell(max(widths[i]-2*cellPadding, 1), lh, l.tr(cell.text), "", cell.align, false)
			x += widths[i]
		}
		l.f.SetXY(left, y+height)
	}
	l.bold = 0
	l.f.Ln(lh * 0.4)
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

func tableRows(table *html.Node) [][]tableCell {
	var rows [][]tableCell
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				walk(c)
			case "tr":
				var row []tableCell
				for td := c.FirstChild; td != nil; td = td.NextSibling {
					if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
						continue
					}
					row = append(row, tableCell{
						text:   strings.TrimSpace(collapseSpace(textContent(td))),
						header: td.Data == "th",
						align:  cellAlign(td),
					})
				}
				rows = append(rows, row)
			}
		}
	}
	walk(table)
	return rows
}

func cellAlign(td *html.Node) string {
	a := attr(td, "align")
	if a == "" {
		style := attr(td, "style")
		if _, v, ok := strings.Cut(style, "text-align:"); ok {
			a = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), ";"))
		}
	}
	switch a {
	case "center":
		return "C"
	case "right":
		return "R"
	default:
		return "L"
	}
}

func isPageBreak(n *html.Node) bool {
	style := strings.ReplaceAll(attr(n, "style"), " ", "")
	return strings.Contains(style, "page-break-after:always") || strings.Contains(style, "break-after:page")
}

var inlineElements = map[string]bool{
	"a": true, "b": true, "strong": true, "i": true, "em": true, "code": true,
	"kbd": true, "samp": true, "span": true, "del": true, "s": true, "br": true,
	"img": true, "input": true, "sup": true, "sub": true, "u": true, "mark": true,
}

func isInline(tag string) bool { return inlineElements[tag] }

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// collapseSpace turns every run of whitespace into a single space, keeping a
// leading or trailing space if the input had one.
func collapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}
