package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"stockboard/internal/provider"
)

// Batch fetches every symbol concurrently and waits for all requests to
// settle. The join policy is all-or-nothing: the first failure cancels the
// remaining requests and fails the whole batch, so a partially fetched
// watchlist is never observable. Results keep the request order; each
// goroutine writes only its own slot, so no locking is needed.
func Batch(ctx context.Context, p provider.Provider, symbols []string) ([]provider.Series, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]provider.Series, len(symbols))
	for i, symbol := range symbols {
		g.Go(func() error {
			s, err := p.Fetch(ctx, symbol)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
