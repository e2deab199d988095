// Package dataset holds the tabular data the dashboard previews and
// classifies.
package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrEmptyDataset   = errors.New("dataset is empty")
	ErrMalformedRow   = errors.New("malformed row")
	ErrLengthMismatch = errors.New("column length does not match row count")
)

// Table is an ordered set of rows with named columns. A Table is never
// mutated after construction; derived tables are copies.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a table, padding short rows with empty cells. Header names are
// made unique the way pandas reads them: an empty name becomes "Unnamed: i"
// and repeats of a name get ".1", ".2" suffixes.
func New(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrEmptyDataset)
	}
	cols := uniqueColumns(columns)
	index := make(map[string]int, len(cols))
	for i, name := range cols {
		index[name] = i
	}
	cp := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrMalformedRow, i+1, len(row), len(columns))
		}
		out := make([]string, len(columns))
		copy(out, row)
		cp[i] = out
	}
	return &Table{columns: cols, index: index, rows: cp}, nil
}

func uniqueColumns(columns []string) []string {
	out := make([]string, len(columns))
	for i, name := range columns {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		out[i] = name
	}
	seen := make(map[string]struct{}, len(out))
	next := make(map[string]int)
	for i, name := range out {
		if _, dup := seen[name]; dup {
			n := next[name]
			var candidate string
			for {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
				if _, taken := seen[candidate]; !taken {
					break
				}
			}
			next[name] = n
			out[i] = candidate
		}
		seen[out[i]] = struct{}{}
	}
	return out
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) NumRows() int { return len(t.rows) }

func (t *Table) NumCols() int { return len(t.columns) }

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Column returns the values of one column as text, in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Head returns a table with at most the first n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return &Table{columns: t.columns, index: t.index, rows: t.rows[:n:n]}
}

// WithColumn returns a copy of the table with values stored under name.
// An existing column of that name is replaced in place; otherwise the column
// is appended.
func (t *Table) WithColumn(name string, values []string) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty column name", ErrMalformedRow)
	}
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("%w: got %d values for %d rows", ErrLengthMismatch, len(values), len(t.rows))
	}
	idx, exists := t.index[name]
	columns := t.Columns()
	if !exists {
		idx = len(columns)
		columns = append(columns, name)
	}
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out := make([]string, len(columns))
		copy(out, row)
		out[idx] = values[i]
		rows[i] = out
	}
	return &Table{columns: columns, index: index, rows: rows}, nil
}
