package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "os"
    "strings"
    "time"

    "github.com/charmbracelet/glamour"

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
    var format string
    var timeout int
    var demo bool

    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.StringVar(&symbolsCSV, "symbols", "", "comma-separated watchlist, overrides config")
    flag.StringVar(&format, "format", "json", "output format: json, md or table")
    flag.IntVar(&timeout, "timeout", 0, "request timeout seconds, overrides config")
    flag.BoolVar(&demo, "demo", false, "use deterministic demo data, no network")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    if symbolsCSV != "" { cfg.Symbols = splitCSV(symbolsCSV) }
    if timeout > 0 { cfg.RequestTimeoutSec = timeout }
    if len(cfg.Symbols) == 0 { log.Fatal("no symbols provided") }

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
        if err != nil { log.Fatalf("alphavantage: %v", err) }
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

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeoutSec)*time.Second)
    defer cancel()

    series, err := fetch.Batch(ctx, p, cfg.Symbols)
    if err != nil { log.Fatalf("fetch: %v", err) }
    quotes := quote.NormalizeAll(series, cfg.Names)

    snap := board.Snapshot{State: board.StateReady, Quotes: quotes, SortKey: board.SortSymbol, SortAsc: true}
    switch format {
    case "json":
        out := struct {
            Quotes []quote.Quote `json:"quotes"`
        }{Quotes: quotes}
        b, _ := json.MarshalIndent(out, "", "  ")
        fmt.Println(string(b))
    case "md":
        md := render.Markdown(snap)
        r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
        if err != nil {
            fmt.Print(md)
            return
        }
        styled, err := r.Render(md)
        if err != nil {
            fmt.Print(md)
            return
        }
        fmt.Print(styled)
    case "table":
        fmt.Print(render.Table(snap))
    default:
        log.Fatalf("unknown format %q (json, md, table)", format)
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
