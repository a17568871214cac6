package mdwriter

import "strings"

// PageBreakMarkup is the raw HTML appended by [Writer.PageBreak]. HTML
// conversion keeps it in every raw-HTML mode and PDF export starts a new page
// where it appears.
const PageBreakMarkup = `<div style="page-break-after: always;"></div>`

// Headings, rules and page breaks are labels, not prose: their text is never
// linkified.

// Heading appends an ATX heading. Levels outside 1..6 are clamped.
func (w *Writer) Heading(level int, text string) *Writer {
	level = max(1, min(level, 6))
	return w.add("\n" + strings.Repeat("#", level) + " " + text + "\n")
}

func (w *Writer) H1(text string) *Writer { return w.Heading(1, text) }
func (w *Writer) H2(text string) *Writer { return w.Heading(2, text) }
func (w *Writer) H3(text string) *Writer { return w.Heading(3, text) }
func (w *Writer) H4(text string) *Writer { return w.Heading(4, text) }

// Code appends a fenced code block. text is written verbatim.
func (w *Writer) Code(text, language string) *Writer {
	return w.add("\n```" + language + "\n" + text + "\n```\n")
}

// Fixed appends a line indented by six spaces.
func (w *Writer) Fixed(text string) *Writer {
	return w.add("      " + text + "\n")
}

// Link appends [label](url).
func (w *Writer) Link(label, url string, continued bool) *Writer {
	return w.add("[" + label + "](" + url + ")" + eol(continued))
}

// Image appends ![alt](src) as its own paragraph.
func (w *Writer) Image(alt, src string) *Writer {
	return w.add("![" + alt + "](" + src + ")\n\n")
}

// Rule appends a horizontal rule.
func (w *Writer) Rule() *Writer {
	return w.add("\n---\n\n")
}

// PageBreak appends a page break marker.
func (w *Writer) PageBreak() *Writer {
	return w.add("\n" + PageBreakMarkup + "\n\n")
}

// Table appends data rendered by [RenderTable]. Cells are written verbatim.
func (w *Writer) Table(data TabularInput, withHeaders bool) *Writer {
	if w.err != nil {
		return w
	}
	lines, err := RenderTable(data, withHeaders)
	if err != nil {
		return w.fail("table", err)
	}
	for _, line := range lines {
		w.add(line)
	}
	return w
}

// AlignedTable appends data rendered by [RenderAlignedTable].
func (w *Writer) AlignedTable(data TabularInput, withHeaders bool, aligns ...Alignment) *Writer {
	if w.err != nil {
		return w
	}
	lines, err := RenderAlignedTable(data, withHeaders, aligns...)
	if err != nil {
		return w.fail("table", err)
	}
	for _, line := range lines {
		w.add(line)
	}
	return w
}
