package mdwriter

import (
	"strconv"
	"strings"
)

const indentUnit = "   "

func eol(continued bool) string {
	if continued {
		return "\n"
	}
	return "\n\n"
}

func indentation(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, indent)
}

// Paragraph appends text followed by a paragraph break, or by a single
// newline when continued is true.
func (w *Writer) Paragraph(text string, continued bool) *Writer {
	return w.add(w.markup(text) + eol(continued))
}

// Italic appends text wrapped in single asterisks.
func (w *Writer) Italic(text string, continued bool) *Writer {
	return w.add("*" + strings.TrimSpace(w.markup(text)) + "*" + eol(continued))
}

// Bold appends text wrapped in double asterisks.
func (w *Writer) Bold(text string, continued bool) *Writer {
	return w.add("**" + strings.TrimSpace(w.markup(text)) + "**" + eol(continued))
}

// Blockquote appends text with every line prefixed by "> ".
func (w *Writer) Blockquote(text string, continued bool) *Writer {
	lines := strings.Split(w.markup(text), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
			continue
		}
		lines[i] = "> " + line
	}
	return w.add(strings.Join(lines, "\n") + eol(continued))
}

// Bullet appends a "* " list item, indented by indent levels of three spaces.
func (w *Writer) Bullet(text string, indent int) *Writer {
	return w.add(indentation(indent) + "* " + w.markup(text) + "\n")
}

// Bullets appends one bullet per item at the same indent.
func (w *Writer) Bullets(items []string, indent int) *Writer {
	for _, item := range items {
		w.Bullet(item, indent)
	}
	return w
}

// Check appends a task-list item, ticked when done is true.
func (w *Writer) Check(text string, done bool, indent int) *Writer {
	prefix := "* [ ] "
	if done {
		prefix = "* [x] "
	}
	return w.add(indentation(indent) + prefix + w.markup(text) + "\n")
}

// Numbered appends an ordered list item numbered n.
func (w *Writer) Numbered(n int, text string, indent int) *Writer {
	return w.add(indentation(indent) + strconv.Itoa(n) + ". " + w.markup(text) + "\n")
}
