package mdwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads comma-separated records from r into a Table. With header the
// first line names the columns; otherwise columns are keyed by position.
// Records may have differing field counts.
func ReadCSV(r io.Reader, header bool) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var names []string
	var t Table
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTableShape, err)
		}
		if header && names == nil {
			names = fields
			continue
		}
		t = append(t, keyed(names, fields))
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: no csv records", ErrInvalidTableShape)
	}
	return t, nil
}
