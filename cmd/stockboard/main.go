package main

import (
    "bufio"
    "context"
    "flag"
    "fmt"
    "log"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "stockboard/internal/board"
    "stockboard/internal/config"
    "stockboard/internal/fetch"
    "stockboard/internal/httpx"
    "stockboard/internal/provider"
    "stockboard/internal/provider/alphavantage"
    "stockboard/internal/provider/cache"
    "stockboard/internal/provider/ratelimit"
    "stockboard/internal/provider/static"
    "stockboard/internal/quote"
    "stockboard/internal/render"
)

func main() {
    var configPath string
    var symbolsCSV string
    var interval string
    var timeout int
    var demo bool

    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.StringVar(&symbolsCSV, "symbols", "", "comma-separated watchlist, overrides config")
    flag.StringVar(&interval, "interval", "", "intraday interval (1min, 5min, 15min, ...), overrides config")
    flag.IntVar(&timeout, "timeout", 0, "request timeout seconds, overrides config")
    flag.BoolVar(&demo, "demo", getenvBool("DEMO", false), "serve deterministic demo data, no network")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    if symbolsCSV != "" { cfg.Symbols = splitCSV(symbolsCSV) }
    if interval != "" { cfg.AlphaVantage.Interval = interval }
    if timeout > 0 { cfg.RequestTimeoutSec = timeout }
    if len(cfg.Symbols) == 0 { log.Fatal("no symbols configured") }

    fetcher := buildFetcher(cfg, demo)
    store := board.NewStore(fetcher)
    store.Subscribe(func(snap board.Snapshot) {
        // home cursor and clear before each repaint
        fmt.Print("\033[H\033[2J")
        fmt.Print(render.Table(snap))
        fmt.Print("> ")
    })

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    go store.Refresh(ctx)

    lines := make(chan string)
    go func() {
        sc := bufio.NewScanner(os.Stdin)
        for sc.Scan() {
            lines <- sc.Text()
        }
        close(lines)
    }()

    for {
        select {
        case <-ctx.Done():
            return
        case line, ok := <-lines:
            if !ok { return }
            if quit := command(ctx, store, line); quit { return }
        }
    }
}

// command dispatches one input line. Returns true when the user quits.
func command(ctx context.Context, store *board.Store, line string) bool {
    line = strings.TrimSpace(line)
    switch {
    case line == "q" || line == "quit":
        return true
    case line == "" || line == "r":
        // refresh on its own goroutine so a newer one can supersede it
        go store.Refresh(ctx)
    case strings.HasPrefix(line, "/"):
        store.SetSearch(strings.TrimSpace(strings.TrimPrefix(line, "/")))
    case strings.HasPrefix(line, "s "):
        col := strings.TrimSpace(strings.TrimPrefix(line, "s "))
        key, ok := board.ParseSortKey(col)
        if !ok {
            fmt.Printf("unknown column %q (symbol, name, price, change, percent, high, low, volume)\n> ", col)
            return false
        }
        store.SortBy(key)
    default:
        fmt.Println("commands: enter/r refresh, /TERM filter, s COLUMN sort, q quit")
        fmt.Print("> ")
    }
    return false
}

// buildFetcher wires the provider chain and closes over it as a board fetcher.
// A missing API key is not fatal here: the board starts and shows the
// configuration error on the first refresh, without any request going out.
func buildFetcher(cfg config.Config, demo bool) board.Fetcher {
    var p provider.Provider
    if demo {
        p = static.Demo(cfg.Symbols)
    } else {
        httpClient := httpx.New(time.Duration(cfg.RequestTimeoutSec) * time.Second)
        av, err := alphavantage.New(cfg.AlphaVantage.APIKey,
            alphavantage.WithBaseURL(cfg.AlphaVantage.Endpoint),
            alphavantage.WithHTTPClient(httpClient),
            alphavantage.WithInterval(cfg.AlphaVantage.Interval),
            alphavantage.WithOutputSize(cfg.AlphaVantage.OutputSize),
        )
        if err != nil {
            return func(context.Context) ([]quote.Quote, error) { return nil, err }
        }
        p = av
        if cfg.AlphaVantage.MaxRequestsPerMinute > 0 {
            rate := float64(cfg.AlphaVantage.MaxRequestsPerMinute) / 60.0
            burst := cfg.AlphaVantage.Burst
            if burst <= 0 { burst = 1 }
            p = &ratelimit.TokenBucketProvider{P: p, TB: ratelimit.NewTokenBucket(rate, burst)}
        } else if cfg.AlphaVantage.MinRequestIntervalSec > 0 {
            interval := time.Duration(cfg.AlphaVantage.MinRequestIntervalSec) * time.Second
            p = &ratelimit.MinInterval{P: p, Interval: interval}
        }
        if cfg.AlphaVantage.CacheTTLSeconds > 0 {
            p = &cache.Provider{P: p, TTL: time.Duration(cfg.AlphaVantage.CacheTTLSeconds) * time.Second}
        }
    }
    symbols := cfg.Symbols
    names := cfg.Names
    timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
    return func(ctx context.Context) ([]quote.Quote, error) {
        ctx, cancel := context.WithTimeout(ctx, timeout)
        defer cancel()
        series, err := fetch.Batch(ctx, p, symbols)
        if err != nil { return nil, err }
        return quote.NormalizeAll(series, names), nil
    }
}

func splitCSV(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p != "" { out = append(out, p) }
    }
    return out
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }
func getenvBool(key string, def bool) bool {
    if v := os.Getenv(key); v != "" {
        switch strings.ToLower(v) {
        case "1", "true", "yes", "y": return true
        case "0", "false", "no", "n": return false
        }
    }
    return def
}
