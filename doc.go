// Package mdwriter builds Markdown documents through chained calls and
// exports them as Markdown, HTML or PDF.
//
// The central type is [Writer]. Each emitter formats one element, appends it
// to the document and returns the writer:
//
//	w, err := mdwriter.New(mdwriter.WithOutput("out/report.md"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Close()
//
//	w.H1("Weekly report").
//		Paragraph("Dashboards live at https://grafana.example.com", false).
//		Bullet("ping ops@example.com", 0).
//		Table(mdwriter.Table{
//			mdwriter.Pairs("name", "Peter", "email", "peter@forret.com"),
//			mdwriter.Pairs("name", "John", "email", "john@forret.com"),
//		}, true)
//	if err := w.Err(); err != nil {
//		log.Fatal(err)
//	}
//
// # Links
//
// Prose emitters (paragraphs, emphasis, list items, block quotes, templates)
// pass their text through [Linkify], which turns bare http, https and ftp URLs
// and email addresses into Markdown links. Headings, rules, code, links,
// images and table cells are written as given. Disable linkification with
// [WithLinkify].
//
// # Tables
//
// [RenderTable] accepts a [Record] (one row of named cells) or a [Table]
// (several records). Use [Values] for unnamed cells, [Pairs] for named ones,
// [Records] for types implementing [Rower], [ReadCSV] for CSV input, and
// [Infer] to classify loosely typed values such as []string or
// []map[string]string.
//
// # Output
//
// A [Buffer] holds the document. With [WithOutput] or [Writer.SetOutput]
// every fragment is also written straight to a file, whose parent
// directories are created as needed. [Writer.Close] releases that file.
//
// [Writer.SaveAsRaw], [Writer.SaveAsHTML] and [Writer.SaveAsPDF] export
// snapshots. [ExportConfig] holds the converter settings and can be read
// from YAML with [LoadConfig].
//
// # Errors
//
// The first failing call records its error and turns later emitter calls
// into no-ops; [Writer.Err] and [Writer.Close] report it. Sentinel errors:
//
//   - [ErrSinkOpen]: output file or its directory could not be created
//   - [ErrSinkWrite]: writing to the output file failed
//   - [ErrInvalidTableShape]: empty or unsupported table input
//   - [ErrConversion]: HTML or PDF conversion failed
//   - [ErrInvalidTemplate]: invalid template syntax
//   - [ErrInvalidConfig]: invalid export settings
//   - [ErrSave]: an exported file or its directory could not be written
package mdwriter
