// Package pdf lays out an HTML fragment as a paginated PDF document.
//
// The input is the HTML produced by mdwriter's Markdown conversion: headings,
// paragraphs with inline emphasis, code and links, nested lists and task
// lists, block quotes, preformatted code, tables, horizontal rules and page
// break markers. Anything else is rendered as plain flowing text.
//
//	cfg := pdf.DefaultConfig()
//	cfg.Title = "Report"
//	cfg.Footer = "<i>Page {PAGENO} of {nbpg}</i>"
//	if err := pdf.RenderFile("out/report.pdf", htmlSrc, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Only the PDF core fonts (Helvetica, Times, Courier) are available, so text
// is encoded as cp1252; characters outside it are replaced.
package pdf
