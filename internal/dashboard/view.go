package dashboard

import "unicode/utf8"

// View is a complete render instruction for the dashboard page.
type View struct {
	Columns        []string
	SelectedColumn string
	RowCount       int
	ColumnCount    int
	Preview        TableView

	Text      string
	CharCount int
	Warning   string
	Card      *Card

	ResultColumn string
	Bulk         *BulkResult

	Error string
}

type Card struct {
	Class      string
	Display    string
	Label      string
	Recognized bool
}

type BulkResult struct {
	Notice    string
	Column    string
	TotalRows int
	Table     TableView
}

type TableView struct {
	Columns []string
	Rows    []IndexedRow
}

type IndexedRow struct {
	Index int
	Cells []string
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
