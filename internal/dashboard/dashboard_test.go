package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sentiment-dashboard/internal/pkg/logger"
	"sentiment-dashboard/internal/service"
	"sentiment-dashboard/pkg/classifier"
	"sentiment-dashboard/pkg/classifier/classifiertest"
	"sentiment-dashboard/pkg/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPredictor answers every vector with the same label.
type fixedPredictor struct {
	label string
	calls int
}

func (p *fixedPredictor) Predict(vectors []classifier.SparseVector) ([]string, error) {
	p.calls++
	out := make([]string, len(vectors))
	for i := range out {
		out[i] = p.label
	}
	return out, nil
}

func (p *fixedPredictor) Classes() []string { return []string{p.label} }

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	rows := make([][]string, 0, 25)
	texts := []string{"great product", "it is ok", "terrible service"}
	for i := 0; i < 25; i++ {
		rows = append(rows, []string{string(rune('a' + i)), texts[i%3]})
	}
	table, err := dataset.New([]string{"id", "text"}, rows)
	require.NoError(t, err)
	return table
}

func realDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	vec, err := classifier.NewTfidfVectorizer(classifiertest.Vectorizer())
	require.NoError(t, err)
	model, err := classifier.NewLinearModel(classifiertest.Model())
	require.NoError(t, err)
	svc := service.NewSentimentService(&classifier.Bundle{Extractor: vec, Predictor: model}, testTable(t), "Sentiment", logger.NewNopLogger())
	return NewDispatcher(svc, Options{PreviewRows: 10, ResultPreviewRows: 20})
}

func stubDispatcher(t *testing.T, label string) (*Dispatcher, *fixedPredictor) {
	t.Helper()
	vec, err := classifier.NewTfidfVectorizer(classifiertest.Vectorizer())
	require.NoError(t, err)
	pred := &fixedPredictor{label: label}
	svc := service.NewSentimentService(&classifier.Bundle{Extractor: vec, Predictor: pred}, testTable(t), "Sentiment", logger.NewNopLogger())
	return NewDispatcher(svc, Options{}), pred
}

func TestInitialStateSelectsFirstColumn(t *testing.T) {
	d := realDispatcher(t)
	assert.Equal(t, State{SelectedColumn: "id"}, d.Initial())
}

func TestRefreshView(t *testing.T) {
	d := realDispatcher(t)

	state, v, err := d.Dispatch(context.Background(), State{SelectedColumn: "gone"}, Event{Kind: EventRefresh})
	require.NoError(t, err)
	assert.Equal(t, "id", state.SelectedColumn)
	assert.Equal(t, []string{"id", "text"}, v.Columns)
	assert.Equal(t, 25, v.RowCount)
	assert.Equal(t, 2, v.ColumnCount)
	assert.Len(t, v.Preview.Rows, 10)
	assert.Equal(t, 9, v.Preview.Rows[9].Index)
	assert.Nil(t, v.Card)
	assert.Nil(t, v.Bulk)
}

func TestSelectColumn(t *testing.T) {
	d := realDispatcher(t)
	start := d.Initial()

	state, v, err := d.Dispatch(context.Background(), start, Event{Kind: EventSelectColumn, Column: "text"})
	require.NoError(t, err)
	assert.Equal(t, "text", state.SelectedColumn)
	assert.Equal(t, "text", v.SelectedColumn)

	state, v, err = d.Dispatch(context.Background(), state, Event{Kind: EventSelectColumn, Column: "nope"})
	assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	assert.Equal(t, "text", state.SelectedColumn)
	assert.Contains(t, v.Error, "nope")
}

func TestPredictWhitespaceShowsWarningOnly(t *testing.T) {
	d, pred := stubDispatcher(t, "Positive")

	state, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventPredict, Text: "   "})
	require.NoError(t, err)
	assert.Equal(t, EmptyTextWarning, v.Warning)
	assert.Nil(t, v.Card)
	assert.Equal(t, "   ", state.Text)
	assert.Equal(t, 3, v.CharCount)
	assert.Zero(t, pred.calls)
}

func TestPredictCard(t *testing.T) {
	cases := []struct {
		label      string
		class      string
		display    string
		recognized bool
	}{
		{"Positive", "positive", "Positive 😊", true},
		{"POSITIVE", "positive", "Positive 😊", true},
		{"Neutral", "neutral", "Neutral 😐", true},
		{"negative", "negative", "Negative 😠", true},
		{"Mixed", "negative", "Negative 😠", false},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			d, _ := stubDispatcher(t, tc.label)

			state, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventPredict, Text: "amazing!"})
			require.NoError(t, err)
			require.NotNil(t, v.Card)
			assert.Equal(t, tc.class, v.Card.Class)
			assert.Equal(t, tc.display, v.Card.Display)
			assert.Equal(t, tc.recognized, v.Card.Recognized)
			assert.Empty(t, v.Warning)
			assert.Equal(t, "amazing!", state.Text)
		})
	}
}

func TestPredictKeepsColumnFromForm(t *testing.T) {
	d, _ := stubDispatcher(t, "Neutral")

	state, _, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventPredict, Column: "text", Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "text", state.SelectedColumn)
}

func TestAnalyzeDataset(t *testing.T) {
	d := realDispatcher(t)

	state, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventAnalyze, Column: "text"})
	require.NoError(t, err)
	assert.Equal(t, "text", state.SelectedColumn)
	require.NotNil(t, v.Bulk)
	assert.Equal(t, BulkDoneNotice, v.Bulk.Notice)
	assert.Equal(t, 25, v.Bulk.TotalRows)
	assert.Equal(t, []string{"id", "text", "Sentiment"}, v.Bulk.Table.Columns)
	require.Len(t, v.Bulk.Table.Rows, 20)
	assert.Equal(t, []string{"a", "great product", "Positive"}, v.Bulk.Table.Rows[0].Cells)
	assert.Equal(t, []string{"b", "it is ok", "Neutral"}, v.Bulk.Table.Rows[1].Cells)
	assert.Equal(t, []string{"c", "terrible service", "Negative"}, v.Bulk.Table.Rows[2].Cells)

	// The preview still shows the loaded dataset.
	assert.Equal(t, []string{"id", "text"}, v.Preview.Columns)
}

func TestAnalyzeUsesSelectedColumn(t *testing.T) {
	d := realDispatcher(t)

	_, v, err := d.Dispatch(context.Background(), State{SelectedColumn: "text"}, Event{Kind: EventAnalyze})
	require.NoError(t, err)
	require.NotNil(t, v.Bulk)
	assert.Equal(t, "text", v.Bulk.Column)
}

func TestUnknownEvent(t *testing.T) {
	d := realDispatcher(t)

	_, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: "dance"})
	require.Error(t, err)
	assert.NotEmpty(t, v.Error)
}

func TestRenderPage(t *testing.T) {
	d, _ := stubDispatcher(t, "Mixed")
	r, err := NewRenderer()
	require.NoError(t, err)

	_, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventPredict, Text: "<b>amazing!</b>"})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, r.Render(&out, v))
	page := out.String()

	assert.Contains(t, page, "Sentiment Analysis System")
	assert.Contains(t, page, "Positive · Neutral · Negative Text Classification")
	assert.Contains(t, page, `class="card negative"`)
	assert.Contains(t, page, "Negative 😠")
	assert.Contains(t, page, "unrecognized label")
	assert.Contains(t, page, "&lt;b&gt;amazing!&lt;/b&gt;")
	assert.NotContains(t, page, "<b>amazing!</b>")
	assert.Contains(t, page, `<option value="id" selected>`)
	assert.Contains(t, page, `<span id="char-count">15</span>`)
}

func TestRenderWarningWithoutCard(t *testing.T) {
	d, _ := stubDispatcher(t, "Positive")
	r, err := NewRenderer()
	require.NoError(t, err)

	_, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventPredict, Text: " "})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, r.Render(&out, v))
	assert.Contains(t, out.String(), EmptyTextWarning)
	assert.NotContains(t, out.String(), `class="card`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderPropagatesWriteError(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	d := realDispatcher(t)
	_, v, err := d.Dispatch(context.Background(), d.Initial(), Event{Kind: EventRefresh})
	require.NoError(t, err)

	assert.Error(t, r.Render(failingWriter{}, v))
}
