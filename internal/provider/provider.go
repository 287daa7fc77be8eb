package provider

import "context"

// Sample is one intraday bar as returned by the upstream API.
// Keep values as strings to avoid float rounding and external deps at the edge.
type Sample struct {
    Label  string `json:"label"`
    Close  string `json:"close"`
    High   string `json:"high"`
    Low    string `json:"low"`
    Volume string `json:"volume"`
}

// Series is the raw per-symbol payload ready for normalization.
// Samples are sorted by Label descending (most recent first); providers must
// sort explicitly rather than rely on upstream JSON key order.
type Series struct {
    Symbol        string   `json:"symbol"`
    LastRefreshed string   `json:"last_refreshed"`
    Samples       []Sample `json:"samples"`
}

type Provider interface {
    Name() string
    Fetch(ctx context.Context, symbol string) (Series, error)
}
