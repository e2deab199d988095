// Package dashboard turns user actions on the sentiment page into render
// instructions. Each action is one call to Dispatch with the caller's current
// State; nothing is kept here between calls.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"sentiment-dashboard/internal/mapper"
	"sentiment-dashboard/internal/service"
	"sentiment-dashboard/pkg/dataset"
)

const (
	EmptyTextWarning = "⚠️ Please enter some text"
	BulkDoneNotice   = "✅ Sentiment analysis completed"
)

type EventKind string

const (
	EventRefresh      EventKind = "refresh"
	EventSelectColumn EventKind = "select_column"
	EventPredict      EventKind = "predict"
	EventAnalyze      EventKind = "analyze"
)

// Event is one user action. Column and Text are read only by the kinds that
// need them; an empty Column on predict or analyze keeps the current selection.
type Event struct {
	Kind   EventKind
	Column string
	Text   string
}

// State is what the page remembers between interactions.
type State struct {
	SelectedColumn string
	Text           string
}

type Options struct {
	PreviewRows       int
	ResultPreviewRows int
}

type Dispatcher struct {
	svc  service.ISentimentService
	opts Options
}

func NewDispatcher(svc service.ISentimentService, opts Options) *Dispatcher {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 10
	}
	if opts.ResultPreviewRows <= 0 {
		opts.ResultPreviewRows = 20
	}
	return &Dispatcher{svc: svc, opts: opts}
}

// Initial is the state of a page nobody has touched yet.
func (d *Dispatcher) Initial() State {
	return d.normalize(State{})
}

// Dispatch applies ev to state and returns the next state and the view to
// render. A non-nil error still comes with a renderable view carrying the
// error banner; the returned state is then the input state unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, state State, ev Event) (State, View, error) {
	state = d.normalize(state)

	switch ev.Kind {
	case EventRefresh, "":
		return state, d.view(state), nil

	case EventSelectColumn:
		next, err := d.selectColumn(state, ev.Column)
		if err != nil {
			return d.fail(state, err)
		}
		return next, d.view(next), nil

	case EventPredict:
		next, err := d.selectColumn(state, ev.Column)
		if err != nil {
			return d.fail(state, err)
		}
		next.Text = ev.Text
		v := d.view(next)
		res, err := d.svc.Predict(ctx, ev.Text)
		if errors.Is(err, service.ErrEmptyText) {
			v.Warning = EmptyTextWarning
			return next, v, nil
		}
		if err != nil {
			v.Error = err.Error()
			return next, v, err
		}
		v.Card = &Card{
			Class:      res.Class,
			Display:    res.Display,
			Label:      res.Label,
			Recognized: res.Recognized,
		}
		return next, v, nil

	case EventAnalyze:
		next, err := d.selectColumn(state, ev.Column)
		if err != nil {
			return d.fail(state, err)
		}
		v := d.view(next)
		result, err := d.svc.PredictBulk(ctx, next.SelectedColumn)
		if err != nil {
			v.Error = err.Error()
			return next, v, err
		}
		v.Bulk = &BulkResult{
			Notice:    BulkDoneNotice,
			Column:    next.SelectedColumn,
			TotalRows: result.NumRows(),
			Table:     newTableView(result, d.opts.ResultPreviewRows),
		}
		return next, v, nil
	}

	return d.fail(state, fmt.Errorf("unknown event %q", ev.Kind))
}

func (d *Dispatcher) selectColumn(state State, column string) (State, error) {
	if column == "" {
		return state, nil
	}
	if !d.svc.Dataset().HasColumn(column) {
		return state, fmt.Errorf("%w: %q", dataset.ErrColumnNotFound, column)
	}
	state.SelectedColumn = column
	return state, nil
}

func (d *Dispatcher) fail(state State, err error) (State, View, error) {
	v := d.view(state)
	v.Error = err.Error()
	return state, v, err
}

// normalize falls back to the first column when the remembered one is gone.
func (d *Dispatcher) normalize(state State) State {
	data := d.svc.Dataset()
	if state.SelectedColumn == "" || !data.HasColumn(state.SelectedColumn) {
		state.SelectedColumn = ""
		if cols := data.Columns(); len(cols) > 0 {
			state.SelectedColumn = cols[0]
		}
	}
	return state
}

func (d *Dispatcher) view(state State) View {
	data := d.svc.Dataset()
	return View{
		Columns:        data.Columns(),
		SelectedColumn: state.SelectedColumn,
		RowCount:       data.NumRows(),
		ColumnCount:    data.NumCols(),
		Preview:        newTableView(data, d.opts.PreviewRows),
		Text:           state.Text,
		CharCount:      charCount(state.Text),
		ResultColumn:   d.svc.ResultColumn(),
	}
}

func newTableView(t *dataset.Table, limit int) TableView {
	rows := mapper.TableRows(t, limit)
	out := TableView{Columns: t.Columns(), Rows: make([]IndexedRow, len(rows))}
	for i, cells := range rows {
		out.Rows[i] = IndexedRow{Index: i, Cells: cells}
	}
	return out
}
