package tabular

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/davidleathers/dialprep/internal/domain/errors"
	"github.com/davidleathers/dialprep/internal/domain/values"
)

// Table is an in-memory tabular input: one header row plus data rows.
// Column lookup is case-insensitive after whitespace trimming, so header
// casing differences between vendor exports do not reject the file.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// ReadCSV parses CSV bytes into a Table. The first record is the header row.
// Ragged data rows are tolerated; missing trailing cells read as empty.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.NewMalformedInputError(err)
	}

	// Vendor exports frequently carry a UTF-8 BOM on the first header.
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[normalizeHeader(h)] = i
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewMalformedInputError(err)
		}
		rows = append(rows, record)
	}

	return &Table{headers: headers, index: index, rows: rows}, nil
}

// Headers returns the header row as read from the input.
func (t *Table) Headers() []string {
	return t.headers
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// HasColumn reports whether a column exists, matching case-insensitively.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[normalizeHeader(name)]
	return ok
}

// Cell returns the value at (row, column name), or "" when the column is
// absent or the row is too short to reach it.
func (t *Table) Cell(row int, name string) string {
	col, ok := t.index[normalizeHeader(name)]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	if col >= len(t.rows[row]) {
		return ""
	}
	return t.rows[row][col]
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// WriteNumbers serializes clean numbers as a headerless single-column CSV,
// one number per line, ready for the dialing system.
func WriteNumbers(w io.Writer, numbers []values.CleanNumber) error {
	writer := csv.NewWriter(w)
	for _, n := range numbers {
		if err := writer.Write([]string{n.String()}); err != nil {
			return errors.Wrap(err, "writing output row")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing output")
}
