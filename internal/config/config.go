package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"

    "github.com/joho/godotenv"
)

type AlphaVantage struct {
    APIKey                string `json:"api_key"`
    Endpoint              string `json:"endpoint"`
    Interval              string `json:"interval"`
    OutputSize            string `json:"output_size"`
    MaxRequestsPerMinute  int    `json:"max_requests_per_minute"`
    Burst                 int    `json:"burst"`
    MinRequestIntervalSec int    `json:"min_request_interval_sec"`
    CacheTTLSeconds       int    `json:"cache_ttl_sec"`
}

type Config struct {
    Symbols           []string          `json:"symbols"`
    Names             map[string]string `json:"names"`
    RequestTimeoutSec int               `json:"request_timeout_sec"`
    AlphaVantage      AlphaVantage      `json:"alphavantage"`
}

func Default() Config {
    return Config{
        Symbols: []string{"AAPL", "MSFT", "GOOGL", "AMZN", "META"},
        Names: map[string]string{
            "AAPL":  "Apple Inc.",
            "MSFT":  "Microsoft Corporation",
            "GOOGL": "Alphabet Inc.",
            "AMZN":  "Amazon.com, Inc.",
            "META":  "Meta Platforms, Inc.",
            "TSLA":  "Tesla, Inc.",
            "NVDA":  "NVIDIA Corporation",
            "NFLX":  "Netflix, Inc.",
        },
        RequestTimeoutSec: 10,
        AlphaVantage: AlphaVantage{
            Endpoint:   "https://www.alphavantage.co",
            Interval:   "5min",
            OutputSize: "compact",
            // free tier quota
            MaxRequestsPerMinute: 5,
            Burst:                5,
            CacheTTLSeconds:      60,
        },
    }
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. A .env file is loaded first when present, and
// environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
    _ = godotenv.Load()
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("SYMBOLS"); v != "" { cfg.Symbols = splitCSV(v) }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.RequestTimeoutSec = x }
    }
    if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" { cfg.AlphaVantage.APIKey = v }
    if v := os.Getenv("ALPHAVANTAGE_ENDPOINT"); v != "" { cfg.AlphaVantage.Endpoint = v }
    if v := os.Getenv("ALPHAVANTAGE_INTERVAL"); v != "" { cfg.AlphaVantage.Interval = v }
    if v := os.Getenv("ALPHAVANTAGE_OUTPUT_SIZE"); v != "" { cfg.AlphaVantage.OutputSize = v }
    if v := os.Getenv("ALPHAVANTAGE_MAX_RPM"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.AlphaVantage.MaxRequestsPerMinute = x }
    }
    if v := os.Getenv("ALPHAVANTAGE_BURST"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.AlphaVantage.Burst = x }
    }
    if v := os.Getenv("ALPHAVANTAGE_MIN_INTERVAL_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.AlphaVantage.MinRequestIntervalSec = x }
    }
    if v := os.Getenv("ALPHAVANTAGE_CACHE_TTL_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.AlphaVantage.CacheTTLSeconds = x }
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
