package mdwriter

import (
	"fmt"
	"iter"
	"sort"
)

// Rower provides row data for a table.
type Rower interface {
	Row() []string
}

// Headed provides column names. Without it, columns are keyed by position.
type Headed interface {
	Header() []string
}

// Records builds a Table from items. Column names come from the first item's
// Header when it implements [Headed].
func Records[T Rower](items ...T) Table {
	if len(items) == 0 {
		return nil
	}
	var header []string
	if h, ok := any(items[0]).(Headed); ok {
		header = h.Header()
	}
	t := make(Table, len(items))
	for i, item := range items {
		t[i] = keyed(header, item.Row())
	}
	return t
}

// RecordsSeq is [Records] over an iterator. The sequence is consumed fully.
func RecordsSeq[T Rower](seq iter.Seq[T]) Table {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return Records(items...)
}

func keyed(header, row []string) Record {
	r := make(Record, len(row))
	for i, v := range row {
		key := fmt.Sprint(i)
		if i < len(header) {
			key = header[i]
		}
		r[i] = KeyValue{Key: key, Value: v}
	}
	return r
}

// Infer chooses the shape of v once, up front. Accepted values:
//
//   - Record, Table, []Record
//   - []string and []any of scalars (one row, positional keys)
//   - map[string]string and map[string]any (one row, keys sorted)
//   - [][]string (table, positional keys)
//   - []map[string]string and []map[string]any (table, keys sorted per row)
//
// Anything else, and any empty value, fails with [ErrInvalidTableShape].
func Infer(v any) (TabularInput, error) {
	var in TabularInput
	switch d := v.(type) {
	case Record:
		in = d
	case Table:
		in = d
	case []Record:
		in = Table(d)
	case []string:
		in = Values(d...)
	case []any:
		r := make(Record, len(d))
		for i, cell := range d {
			s, ok := scalar(cell)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, not a scalar", ErrInvalidTableShape, i, cell)
			}
			r[i] = KeyValue{Key: fmt.Sprint(i), Value: s}
		}
		in = r
	case map[string]string:
		in = sortedRecord(d)
	case map[string]any:
		r, err := sortedAnyRecord(d)
		if err != nil {
			return nil, err
		}
		in = r
	case [][]string:
		t := make(Table, len(d))
		for i, row := range d {
			t[i] = Values(row...)
		}
		in = t
	case []map[string]string:
		t := make(Table, len(d))
		for i, row := range d {
			t[i] = sortedRecord(row)
		}
		in = t
	case []map[string]any:
		t := make(Table, len(d))
		for i, row := range d {
			r, err := sortedAnyRecord(row)
			if err != nil {
				return nil, err
			}
			t[i] = r
		}
		in = t
	default:
		return nil, fmt.Errorf("%w: unsupported input %T", ErrInvalidTableShape, v)
	}
	if _, _, err := tableParts(in, true); err != nil {
		return nil, err
	}
	return in, nil
}

func sortedRecord(m map[string]string) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := make(Record, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{Key: k, Value: m[k]}
	}
	return r
}

func sortedAnyRecord(m map[string]any) (Record, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := make(Record, len(keys))
	for i, k := range keys {
		s, ok := scalar(m[k])
		if !ok {
			return nil, fmt.Errorf("%w: column %q is %T, not a scalar", ErrInvalidTableShape, k, m[k])
		}
		r[i] = KeyValue{Key: k, Value: s}
	}
	return r, nil
}

func scalar(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(s), true
	default:
		return "", false
	}
}
