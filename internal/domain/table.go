package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is one labelled line of a table. Cells hold the raw text of each data
// column, aligned with Table.Columns.
type Row struct {
	Label string
	Cells []string
}

// Table is a labelled 2-D dataset read from an external artifact. The first
// column of the source is the row label; it is not part of Columns.
type Table struct {
	Name      string
	IndexName string
	Columns   []string
	Rows      []Row
}

// NewTable builds a Table and rejects ragged rows, duplicate row labels and
// duplicate column names.
func NewTable(name, indexName string, columns []string, rows []Row) (*Table, error) {
	seenCols := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seenCols[c]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformed, c)
		}
		seenCols[c] = struct{}{}
	}

	seenRows := make(map[string]struct{}, len(rows))
	for i, r := range rows {
		if len(r.Cells) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformed, i+1, len(r.Cells), len(columns))
		}
		if _, dup := seenRows[r.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate row label %q", ErrMalformed, r.Label)
		}
		seenRows[r.Label] = struct{}{}
	}

	return &Table{
		Name:      name,
		IndexName: indexName,
		Columns:   columns,
		Rows:      rows,
	}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Labels returns the row labels in source order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Label
	}
	return labels
}

// ColumnIndex returns the position of col in Columns, or -1.
func (t *Table) ColumnIndex(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Float returns the values of col in row order. A missing column or a cell
// that does not parse as a number yields a *SchemaError.
func (t *Table) Float(col string) ([]float64, error) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return nil, &SchemaError{Table: t.Name, Column: col}
	}

	values := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		v, ok := ParseNumber(r.Cells[idx])
		if !ok {
			return nil, &SchemaError{Table: t.Name, Column: col, Row: r.Label, Value: r.Cells[idx]}
		}
		values[i] = v
	}
	return values, nil
}

// Cell returns the parsed value at row i, column j and whether it is numeric.
func (t *Table) Cell(i, j int) (float64, bool) {
	return ParseNumber(t.Rows[i].Cells[j])
}

// ParseNumber parses a cell as a float. Blank cells and non-finite values
// (NaN, Inf) are not numeric.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
