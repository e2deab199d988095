package dto

type PredictRequest struct {
	Text string `json:"text" validate:"max=100000"`
}

type PredictionResponse struct {
	Label      string `json:"label"`
	Class      string `json:"class"`
	Display    string `json:"display"`
	Recognized bool   `json:"recognized"`
}

type BulkPredictRequest struct {
	Column string `json:"column" validate:"required"`
	Limit  int    `json:"limit" validate:"gte=0"`
}

type BulkPredictResponse struct {
	Column       string     `json:"column"`
	ResultColumn string     `json:"result_column"`
	TotalRows    int        `json:"total_rows"`
	Columns      []string   `json:"columns"`
	Rows         [][]string `json:"rows"`
}

type DatasetResponse struct {
	Columns     []string   `json:"columns"`
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"`
	Preview     [][]string `json:"preview"`
}
