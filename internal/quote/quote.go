package quote

// Quote is the normalized per-symbol market snapshot used for display.
// All fields are display-ready strings; prices carry two fractional digits
// and volume is comma-grouped.
type Quote struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Change        string `json:"change"`
	ChangePercent string `json:"change_percent"`
	Volume        string `json:"volume"`
	LastUpdated   string `json:"last_updated"`
}

// Negative reports whether the quote moved down since the previous sample.
func (q Quote) Negative() bool {
	return len(q.Change) > 0 && q.Change[0] == '-'
}
