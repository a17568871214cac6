package mdwriter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// KeyValue is a single named cell.
type KeyValue struct {
	Key   string
	Value string
}

// Shape tells a single row apart from a table of rows.
type Shape int

const (
	ShapeRow   Shape = iota // one Record
	ShapeTable              // a sequence of Records
)

// TabularInput is data accepted by the table renderer: a [Record] or a
// [Table]. Use [Infer] to build one from loosely typed values.
type TabularInput interface {
	Shape() Shape
	tabular()
}

// Record is one row of named cells, in column order.
type Record []KeyValue

// Table is an ordered sequence of records. Column names are taken from the
// first record; later records contribute their values only.
type Table []Record

func (Record) Shape() Shape { return ShapeRow }
func (Table) Shape() Shape  { return ShapeTable }
func (Record) tabular()     {}
func (Table) tabular()      {}

// Keys returns the column names of r.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, kv := range r {
		keys[i] = kv.Key
	}
	return keys
}

// Values returns the cell values of r.
func (r Record) Values() []string {
	vals := make([]string, len(r))
	for i, kv := range r {
		vals[i] = kv.Value
	}
	return vals
}

// Values builds a Record from unnamed values. Each cell is keyed by its
// position ("0", "1", ...), so rendering it with headers shows the
// positions as the header line.
func Values(vals ...string) Record {
	r := make(Record, len(vals))
	for i, v := range vals {
		r[i] = KeyValue{Key: fmt.Sprint(i), Value: v}
	}
	return r
}

// Pairs builds a Record from alternating key and value arguments. A trailing
// key without a value gets an empty value.
func Pairs(kv ...string) Record {
	r := make(Record, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		cell := KeyValue{Key: kv[i]}
		if i+1 < len(kv) {
			cell.Value = kv[i+1]
		}
		r = append(r, cell)
	}
	return r
}

// RenderTable renders data as pipe-table lines, each ending in "\n".
//
// For a Table with withHeaders the first record's keys form the header line,
// followed by a separator and every record's values. Without withHeaders the
// first record's values are the header line and are not repeated as data.
// A single Record renders as header (keys), separator and one data line with
// withHeaders, or as a header line of its values alone without.
//
// Each separator cell holds as many dashes as the padded header cell is wide:
// the header's display width (not its byte length) plus two, so wide runes
// such as CJK count as two columns. Records after the first are not
// checked against the first record's keys.
func RenderTable(data TabularInput, withHeaders bool) ([]string, error) {
	header, rows, err := tableParts(data, withHeaders)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, pipeLine(header), separatorLine(header))
	for _, row := range rows {
		lines = append(lines, pipeLine(row))
	}
	return lines, nil
}

// RenderAlignedTable is RenderTable with every column padded to its widest
// cell. Separator cells span the padded width and carry ':' markers for
// AlignCenter and AlignRight columns.
func RenderAlignedTable(data TabularInput, withHeaders bool, aligns ...Alignment) ([]string, error) {
	header, rows, err := tableParts(data, withHeaders)
	if err != nil {
		return nil, err
	}
	numCols := colCount(header, rows)
	widths := computeWidths(numCols, header, rows)
	aligns = extendAligns(aligns, numCols)

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, alignedLine(header, widths, aligns))

	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sb.WriteString(strings.Repeat("-", width+1) + ":")
		case AlignCenter:
			sb.WriteString(":" + strings.Repeat("-", width) + ":")
		default:
			sb.WriteString(strings.Repeat("-", width+2))
		}
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	lines = append(lines, sb.String())

	for _, row := range rows {
		lines = append(lines, alignedLine(row, widths, aligns))
	}
	return lines, nil
}

// tableParts splits data into the header cells and the data rows that follow
// the separator.
func tableParts(data TabularInput, withHeaders bool) ([]string, [][]string, error) {
	switch d := data.(type) {
	case Record:
		if len(d) == 0 {
			return nil, nil, fmt.Errorf("%w: empty record", ErrInvalidTableShape)
		}
		if withHeaders {
			return d.Keys(), [][]string{d.Values()}, nil
		}
		return d.Values(), nil, nil
	case Table:
		if len(d) == 0 {
			return nil, nil, fmt.Errorf("%w: empty table", ErrInvalidTableShape)
		}
		if len(d[0]) == 0 {
			return nil, nil, fmt.Errorf("%w: first record is empty", ErrInvalidTableShape)
		}
		rows := make([][]string, 0, len(d))
		var header []string
		if withHeaders {
			header = d[0].Keys()
			rows = append(rows, d[0].Values())
		} else {
			header = d[0].Values()
		}
		for _, r := range d[1:] {
			rows = append(rows, r.Values())
		}
		return header, rows, nil
	case nil:
		return nil, nil, fmt.Errorf("%w: no data", ErrInvalidTableShape)
	default:
		return nil, nil, fmt.Errorf("%w: unsupported input %T", ErrInvalidTableShape, data)
	}
}

func pipeLine(cells []string) string {
	var sb strings.Builder
	for _, cell := range cells {
		sb.WriteString("| ")
		sb.WriteString(cell)
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
	return sb.String()
}

func separatorLine(header []string) string {
	var sb strings.Builder
	for _, cell := range header {
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("-", runewidth.StringWidth(cell)+2))
	}
	sb.WriteString("|\n")
	return sb.String()
}

func alignedLine(cells []string, widths []int, aligns []Alignment) string {
	var sb strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString("| ")
		sb.WriteString(alignCell(cell, width, aligns[i]))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
	return sb.String()
}

// Alignment controls column text alignment in aligned tables.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	// A centered separator needs at least one dash between its markers.
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
