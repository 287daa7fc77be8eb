package quote

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"stockboard/internal/provider"
)

var hundred = decimal.NewFromInt(100)

// Normalize turns one raw series into a display Quote. Pure: it never touches
// shared state and never fails. The series is expected to be well-formed with
// at least one sample; payloads missing the time series entirely are rejected
// at the provider, not here.
//
// Derived fields, with t0 the most recent sample and t1 the one before:
//   - change = close(t0) - close(t1); zero when there is no prior sample
//   - changePercent = change / close(t1) * 100; zero when close(t1) is zero
func Normalize(s provider.Series, names map[string]string) Quote {
	name := names[s.Symbol]
	if name == "" {
		name = s.Symbol
	}
	q := Quote{
		Symbol:        s.Symbol,
		Name:          name,
		Price:         "0.00",
		High:          "0.00",
		Low:           "0.00",
		Change:        "0.00",
		ChangePercent: "0.00",
		Volume:        "0",
		LastUpdated:   s.LastRefreshed,
	}
	if len(s.Samples) == 0 {
		return q
	}

	latest := s.Samples[0]
	price := parseDecimal(latest.Close)
	change := decimal.Zero
	pct := decimal.Zero
	if len(s.Samples) > 1 {
		prev := parseDecimal(s.Samples[1].Close)
		change = price.Sub(prev)
		if !prev.IsZero() {
			pct = change.Div(prev).Mul(hundred)
		}
	}

	q.Price = price.StringFixed(2)
	q.High = parseDecimal(latest.High).StringFixed(2)
	q.Low = parseDecimal(latest.Low).StringFixed(2)
	q.Change = change.StringFixed(2)
	q.ChangePercent = pct.StringFixed(2)
	q.Volume = formatVolume(latest.Volume)
	if q.LastUpdated == "" {
		q.LastUpdated = latest.Label
	}
	return q
}

// NormalizeAll maps Normalize over a batch, one Quote per series.
func NormalizeAll(series []provider.Series, names map[string]string) []Quote {
	out := make([]Quote, 0, len(series))
	for _, s := range series {
		out = append(out, Normalize(s, names))
	}
	return out
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formatVolume(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return humanize.Comma(n)
}
