package static

import (
	"context"
	"fmt"
	"hash/fnv"

	"stockboard/internal/provider"
)

// Provider serves canned series, for demo runs and tests.
type Provider struct {
	Series map[string]provider.Series
}

func (p *Provider) Name() string { return "Static" }

func (p *Provider) Fetch(_ context.Context, symbol string) (provider.Series, error) {
	s, ok := p.Series[symbol]
	if !ok {
		return provider.Series{}, provider.Errf(provider.KindProvider, symbol, "no canned data for symbol")
	}
	return s, nil
}

// Demo builds a provider with deterministic pseudo-quotes for the given
// symbols, so the board shows plausible movement without an API key.
func Demo(symbols []string) *Provider {
	series := make(map[string]provider.Series, len(symbols))
	for _, sym := range symbols {
		h := fnv.New32a()
		h.Write([]byte(sym))
		n := h.Sum32()

		base := 20 + float64(n%4000)/10  // 20.0 .. 419.9
		delta := float64(int32(n%700)-350) / 100 // -3.50 .. +3.49
		prev := base - delta
		vol := 100_000 + n%9_000_000

		series[sym] = provider.Series{
			Symbol:        sym,
			LastRefreshed: "2025-01-02 09:35:00",
			Samples: []provider.Sample{
				{
					Label:  "2025-01-02 09:35:00",
					Close:  fmt.Sprintf("%.4f", base),
					High:   fmt.Sprintf("%.4f", base+0.42),
					Low:    fmt.Sprintf("%.4f", base-0.37),
					Volume: fmt.Sprintf("%d", vol),
				},
				{
					Label:  "2025-01-02 09:30:00",
					Close:  fmt.Sprintf("%.4f", prev),
					High:   fmt.Sprintf("%.4f", prev+0.40),
					Low:    fmt.Sprintf("%.4f", prev-0.40),
					Volume: fmt.Sprintf("%d", vol-50_000),
				},
			},
		}
	}
	return &Provider{Series: series}
}
