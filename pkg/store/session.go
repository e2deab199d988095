package store

// Session is the per-browser dashboard state kept between page interactions.
type Session struct {
	ID             string `json:"id"`
	SelectedColumn string `json:"selected_column"`

	// Last text submitted for single prediction, echoed back into the form.
	Text string `json:"text"`
}
