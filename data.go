package mdwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// FrontMatter appends v as a YAML front matter block. A nil v writes the
// writer's metadata. Front matter belongs at the top of a document; it is
// not checked that nothing was written before it.
func (w *Writer) FrontMatter(v any) *Writer {
	if w.err != nil {
		return w
	}
	if v == nil {
		v = w.meta
	}
	out, err := encodeYAML(v)
	if err != nil {
		return w.fail("front matter", err)
	}
	return w.add("---\n" + out + "---\n")
}

// JSON appends v encoded as an indented JSON code block.
func (w *Writer) JSON(v any) *Writer {
	if w.err != nil {
		return w
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return w.fail("json", err)
	}
	return w.Code(strings.TrimSuffix(buf.String(), "\n"), "json")
}

// YAML appends v encoded as a YAML code block.
func (w *Writer) YAML(v any) *Writer {
	if w.err != nil {
		return w
	}
	out, err := encodeYAML(v)
	if err != nil {
		return w.fail("yaml", err)
	}
	return w.Code(strings.TrimSuffix(out, "\n"), "yaml")
}

func encodeYAML(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Template executes a text/template against data and appends the result as
// prose.
func (w *Writer) Template(tmpl string, data any, continued bool) *Writer {
	if w.err != nil {
		return w
	}
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return w.fail("template", fmt.Errorf("%w: %w", ErrInvalidTemplate, err))
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return w.fail("template", err)
	}
	return w.Paragraph(sb.String(), continued)
}
