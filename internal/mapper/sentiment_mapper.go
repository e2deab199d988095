package mapper

import (
	"sentiment-dashboard/internal/dto"
	"sentiment-dashboard/pkg/classifier"
	"sentiment-dashboard/pkg/dataset"
)

func ToPredictionResponse(label string) *dto.PredictionResponse {
	class := classifier.ClassOf(label)
	return &dto.PredictionResponse{
		Label:      label,
		Class:      string(class),
		Display:    class.Display(),
		Recognized: classifier.IsKnownLabel(label),
	}
}

// TableRows copies up to limit rows; limit <= 0 copies all of them.
func TableRows(t *dataset.Table, limit int) [][]string {
	if limit > 0 {
		t = t.Head(limit)
	}
	rows := make([][]string, t.NumRows())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

func ToDatasetResponse(t *dataset.Table, previewRows int) *dto.DatasetResponse {
	return &dto.DatasetResponse{
		Columns:     t.Columns(),
		RowCount:    t.NumRows(),
		ColumnCount: t.NumCols(),
		Preview:     TableRows(t, previewRows),
	}
}

func ToBulkPredictResponse(column, resultColumn string, result *dataset.Table, limit int) *dto.BulkPredictResponse {
	return &dto.BulkPredictResponse{
		Column:       column,
		ResultColumn: resultColumn,
		TotalRows:    result.NumRows(),
		Columns:      result.Columns(),
		Rows:         TableRows(result, limit),
	}
}
