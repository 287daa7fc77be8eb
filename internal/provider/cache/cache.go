package cache

import (
    "context"
    "sync"
    "time"

    "stockboard/internal/provider"
)

// entry stores a cached series for a single symbol with expiry.
type entry struct {
    expiresAt time.Time
    series    provider.Series
}

// Provider caches results per symbol for a TTL.
// A refresh inside the TTL reuses the cached series instead of spending
// rate-limit budget. Expired entries are never served: a symbol whose fetch
// fails surfaces the error rather than stale data.
type Provider struct {
    P        provider.Provider
    TTL      time.Duration
    MaxItems int

    mu    sync.RWMutex
    items map[string]entry // key: symbol
}

func (c *Provider) Name() string { return c.P.Name() }

// Fetch returns the series for symbol, using the cache when still valid.
func (c *Provider) Fetch(ctx context.Context, symbol string) (provider.Series, error) {
    if c.P == nil || c.TTL <= 0 {
        return c.P.Fetch(ctx, symbol)
    }

    now := time.Now()
    c.mu.RLock()
    e, ok := c.items[symbol]
    c.mu.RUnlock()
    if ok && now.Before(e.expiresAt) {
        return e.series, nil
    }

    fresh, err := c.P.Fetch(ctx, symbol)
    if err != nil {
        return provider.Series{}, err
    }

    c.mu.Lock()
    if c.items == nil { c.items = make(map[string]entry) }
    c.items[symbol] = entry{expiresAt: now.Add(c.TTL), series: fresh}
    // best-effort cap cache size: drop expired entries first, then arbitrary
    if c.MaxItems > 0 && len(c.items) > c.MaxItems {
        for k, v := range c.items {
            if now.After(v.expiresAt) {
                delete(c.items, k)
            }
            if len(c.items) <= c.MaxItems {
                break
            }
        }
        for k := range c.items {
            if len(c.items) <= c.MaxItems { break }
            if k != symbol { delete(c.items, k) }
        }
    }
    c.mu.Unlock()

    return fresh, nil
}
