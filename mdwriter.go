package mdwriter

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSinkOpen          = errors.New("sink open failed")
	ErrSinkWrite         = errors.New("sink write failed")
	ErrConversion        = errors.New("conversion failed")
	ErrInvalidTableShape = errors.New("invalid table shape")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrSave              = errors.New("save failed")
)

// Metadata describes the document. It is used for front matter and for the
// properties of exported PDF files.
type Metadata struct {
	Title    string   `yaml:"title,omitempty" json:"title,omitempty"`
	Author   string   `yaml:"author,omitempty" json:"author,omitempty"`
	Subject  string   `yaml:"subject,omitempty" json:"subject,omitempty"`
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Writer builds a Markdown document through chained calls:
//
//	w, err := mdwriter.New(mdwriter.WithOutput("out/report.md"))
//	if err != nil { ... }
//	defer w.Close()
//	w.H1("Report").Paragraph("See https://example.com", false)
//	if err := w.Err(); err != nil { ... }
//
// The first failing call records its error; every later emitter call is a
// no-op until [Writer.Reset]. Check [Writer.Err] after a call whose failure
// matters, or rely on [Writer.Close] to report it.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf     *Buffer
	err     error
	meta    Metadata
	linkify bool
	logger  *slog.Logger
}

// Option configures a Writer.
type Option func(*options)

type options struct {
	output  string
	logger  *slog.Logger
	meta    Metadata
	linkify bool
}

// WithOutput mirrors everything written to the file at path. Missing parent
// directories are created.
func WithOutput(path string) Option {
	return func(o *options) { o.output = path }
}

// WithLogger sets the logger used for sink and export events. By default
// nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetadata sets the initial document metadata.
func WithMetadata(m Metadata) Option {
	return func(o *options) { o.meta = m }
}

// WithLinkify controls whether prose emitters rewrite bare URLs and email
// addresses into links. Default true.
func WithLinkify(on bool) Option {
	return func(o *options) { o.linkify = on }
}

// New returns an empty Writer. With [WithOutput] the sink is opened here and
// an open failure is returned.
func New(opts ...Option) (*Writer, error) {
	o := options{linkify: true}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Writer{
		buf:     NewBuffer(),
		meta:    o.meta,
		linkify: o.linkify,
		logger:  logger,
	}
	if o.output != "" {
		if err := w.bind(o.output); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Err returns the first error recorded by a chained call, if any.
func (w *Writer) Err() error { return w.err }

// String returns the document accumulated so far.
func (w *Writer) String() string { return w.buf.String() }

// Markdown is an alias for [Writer.String].
func (w *Writer) Markdown() string { return w.buf.String() }

// Buffer exposes the underlying document buffer.
func (w *Writer) Buffer() *Buffer { return w.buf }

// SetOutput closes the current sink, if any, and mirrors later output to
// path. Content already written is not copied to the new file.
func (w *Writer) SetOutput(path string) *Writer {
	if w.err != nil {
		return w
	}
	if err := w.bind(path); err != nil {
		w.err = err
	}
	return w
}

func (w *Writer) bind(path string) error {
	if err := w.buf.BindSink(path); err != nil {
		return err
	}
	w.logger.Debug("sink bound", slog.String("path", path))
	return nil
}

// Reset clears the document and the recorded error, and closes the sink.
// Later output stays in memory until [Writer.SetOutput] is called. Metadata
// is kept.
func (w *Writer) Reset() *Writer {
	path := w.buf.SinkPath()
	w.err = nil
	if err := w.buf.Reset(); err != nil {
		w.err = err
	}
	w.logger.Debug("reset", slog.String("sink", path))
	return w
}

// Close releases the sink and returns the recorded error joined with any
// close error. It is safe to call more than once.
func (w *Writer) Close() error {
	path := w.buf.SinkPath()
	cerr := w.buf.Close()
	if path != "" {
		w.logger.Debug("sink closed", slog.String("path", path), slog.Int("bytes", w.buf.Len()))
	}
	return errors.Join(w.err, cerr)
}

// Raw appends text verbatim.
func (w *Writer) Raw(text string) *Writer {
	return w.add(text)
}

// SetTitle sets the document title.
func (w *Writer) SetTitle(title string) *Writer {
	w.meta.Title = title
	return w
}

// SetAuthor sets the document author.
func (w *Writer) SetAuthor(author string) *Writer {
	w.meta.Author = author
	return w
}

// SetSubject sets the document subject.
func (w *Writer) SetSubject(subject string) *Writer {
	w.meta.Subject = subject
	return w
}

// SetKeywords replaces the document keywords.
func (w *Writer) SetKeywords(keywords ...string) *Writer {
	w.meta.Keywords = append([]string(nil), keywords...)
	return w
}

// Metadata returns the document metadata.
func (w *Writer) Metadata() Metadata {
	m := w.meta
	m.Keywords = append([]string(nil), w.meta.Keywords...)
	return m
}

func (w *Writer) add(fragment string) *Writer {
	if w.err != nil {
		return w
	}
	if err := w.buf.Append(fragment); err != nil {
		w.err = err
	}
	return w
}

func (w *Writer) fail(op string, err error) *Writer {
	if w.err == nil {
		w.err = fmt.Errorf("%s: %w", op, err)
	}
	return w
}

func (w *Writer) markup(text string) string {
	if !w.linkify {
		return text
	}
	return Linkify(text)
}
