package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"sort"

	"stockboard/internal/provider"
)

// bar mirrors one time-series entry. Alpha Vantage numbers arrive as strings
// and stay strings until normalization.
type bar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type metaData struct {
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	TimeZone      string `json:"6. Time Zone"`
}

// Fetch retrieves the intraday series for one symbol.
//
// Classification of failures, in order:
//   - non-2xx status: transport error (429: rate limit)
//   - "Error Message" in the body: provider error
//   - "Note" or "Information" in the body: throttling notice, rate limit
//   - missing time-series key in a 200 body: malformed response
func (c *Client) Fetch(ctx context.Context, symbol string) (provider.Series, error) {
	query := maps.Clone(c.query)
	query.Set("symbol", symbol)

	url := fmt.Sprintf("%s/query?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return provider.Series{}, provider.Errf(provider.KindTransport, symbol, "creating request: %v", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return provider.Series{}, &provider.Error{Kind: provider.KindTransport, Symbol: symbol, Err: err}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusTooManyRequests:
		return provider.Series{}, provider.Errf(provider.KindRateLimited, symbol, "rate limited (HTTP 429)")

	default:
		return provider.Series{}, provider.Errf(provider.KindTransport, symbol, "unexpected status code: %d", res.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return provider.Series{}, provider.Errf(provider.KindMalformed, symbol, "decoding response: %v", err)
	}

	// The API reports errors and throttling inside a 200 payload.
	if msg, ok := stringField(body, "Error Message"); ok {
		return provider.Series{}, provider.Errf(provider.KindProvider, symbol, "%s", msg)
	}
	if msg, ok := stringField(body, "Note"); ok {
		return provider.Series{}, provider.Errf(provider.KindRateLimited, symbol, "%s", msg)
	}
	if msg, ok := stringField(body, "Information"); ok {
		return provider.Series{}, provider.Errf(provider.KindRateLimited, symbol, "%s", msg)
	}

	var meta metaData
	if raw, ok := body["Meta Data"]; ok {
		if err := json.Unmarshal(raw, &meta); err != nil {
			return provider.Series{}, provider.Errf(provider.KindMalformed, symbol, "decoding meta data: %v", err)
		}
	}

	seriesKey := fmt.Sprintf("Time Series (%s)", c.interval)
	raw, ok := body[seriesKey]
	if !ok {
		return provider.Series{}, provider.Errf(provider.KindMalformed, symbol, "missing %q field", seriesKey)
	}
	var bars map[string]bar
	if err := json.Unmarshal(raw, &bars); err != nil {
		return provider.Series{}, provider.Errf(provider.KindMalformed, symbol, "decoding %q: %v", seriesKey, err)
	}
	if len(bars) == 0 {
		return provider.Series{}, provider.Errf(provider.KindMalformed, symbol, "empty %q field", seriesKey)
	}

	// Timestamp labels are "2006-01-02 15:04:05", so a descending string sort
	// is a descending chronological sort. Never trust the JSON key order.
	labels := make([]string, 0, len(bars))
	for label := range bars {
		labels = append(labels, label)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(labels)))

	samples := make([]provider.Sample, 0, len(labels))
	for _, label := range labels {
		b := bars[label]
		samples = append(samples, provider.Sample{
			Label:  label,
			Close:  b.Close,
			High:   b.High,
			Low:    b.Low,
			Volume: b.Volume,
		})
	}

	last := meta.LastRefreshed
	if last == "" {
		last = labels[0]
	}
	return provider.Series{Symbol: symbol, LastRefreshed: last, Samples: samples}, nil
}

// stringField extracts a top-level string field from the decoded body.
func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := body[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
