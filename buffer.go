package mdwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Buffer is an append-only document accumulator. Every fragment appended
// since the last Reset is kept in memory, in order, and mirrored to the bound
// sink file if there is one.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	sb   strings.Builder
	sink *fileSink
}

// NewBuffer returns an empty Buffer with no sink.
func NewBuffer() *Buffer {
	return &Buffer{}
}

type fileSink struct {
	path string
	f    *os.File
}

func openSink(path string) (*fileSink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSinkOpen, path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSinkOpen, path, err)
	}
	return &fileSink{path: path, f: f}, nil
}

func (s *fileSink) write(fragment string) error {
	if _, err := io.WriteString(s.f, fragment); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSinkWrite, s.path, err)
	}
	return nil
}

func (s *fileSink) close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrSinkWrite, s.path, err)
	}
	return nil
}

// BindSink opens path for truncating write and mirrors every later Append
// to it. Missing parent directories are created first. A previously bound
// sink is closed before the new one is opened.
func (b *Buffer) BindSink(path string) error {
	if err := b.closeSink(); err != nil {
		return err
	}
	s, err := openSink(path)
	if err != nil {
		return err
	}
	b.sink = s
	return nil
}

// SinkPath returns the path of the bound sink, or "" when none is bound.
func (b *Buffer) SinkPath() string {
	if b.sink == nil {
		return ""
	}
	return b.sink.path
}

// Append adds fragment to the document. When a sink is bound the fragment is
// written there first; if that write fails the fragment is not kept in
// memory either, so the snapshot and the file never disagree.
func (b *Buffer) Append(fragment string) error {
	if fragment == "" {
		return nil
	}
	if b.sink != nil {
		if err := b.sink.write(fragment); err != nil {
			return err
		}
	}
	b.sb.WriteString(fragment)
	return nil
}

// String returns the document accumulated so far.
func (b *Buffer) String() string { return b.sb.String() }

// Len returns the document length in bytes.
func (b *Buffer) Len() int { return b.sb.Len() }

// WriteTo writes the current snapshot to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.sb.String())
	return int64(n), err
}

// Reset empties the document and closes and unbinds the sink. The snapshot
// is cleared even when closing the sink fails.
func (b *Buffer) Reset() error {
	b.sb.Reset()
	return b.closeSink()
}

// Close releases the sink. It is safe to call more than once; only the first
// call after a bind closes the file.
func (b *Buffer) Close() error {
	return b.closeSink()
}

func (b *Buffer) closeSink() error {
	if b.sink == nil {
		return nil
	}
	s := b.sink
	b.sink = nil
	return s.close()
}
