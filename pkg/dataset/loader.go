package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Loader reads the dataset on the first call to Load and returns the same
// table (or error) afterwards.
type Loader struct {
	path string

	once  sync.Once
	table *Table
	err   error
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load() (*Table, error) {
	l.once.Do(func() {
		l.table, l.err = LoadFile(l.path)
	})
	return l.table, l.err
}

// LoadFile parses a delimited file with a header row. ".tsv" files are
// tab-separated; everything else is comma-separated.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	t, err := Read(f, comma)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// Read parses delimited records from r. The first record is the header.
func Read(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	columns := make([]string, len(header))
	for i, cell := range header {
		columns[i] = cleanHeader(cell, i)
	}

	var rows [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		rows = append(rows, rec)
	}
	return New(columns, rows)
}

func cleanHeader(v string, idx int) string {
	if idx == 0 {
		v = strings.TrimPrefix(v, "\ufeff")
	}
	return strings.TrimSpace(v)
}

// Write emits t as delimited records with a header row.
func Write(w io.Writer, t *Table, comma rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.Write(t.Columns()); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
