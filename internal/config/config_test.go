package config

import (
    "os"
    "path/filepath"
    "testing"
)

func TestDefault(t *testing.T) {
    cfg := Default()
    if len(cfg.Symbols) == 0 {
        t.Fatal("default watchlist empty")
    }
    if cfg.AlphaVantage.Interval != "5min" {
        t.Fatalf("default interval: %s", cfg.AlphaVantage.Interval)
    }
    if cfg.AlphaVantage.APIKey != "" {
        t.Fatal("default config must not carry a credential")
    }
    if cfg.Names["AAPL"] == "" {
        t.Fatal("default name table missing AAPL")
    }
}

func TestLoad_EnvOverrides(t *testing.T) {
    t.Setenv("ALPHAVANTAGE_API_KEY", "secret")
    t.Setenv("SYMBOLS", "IBM, TSLA ,")
    t.Setenv("REQUEST_TIMEOUT_SEC", "25")
    t.Setenv("ALPHAVANTAGE_INTERVAL", "15min")
    t.Setenv("ALPHAVANTAGE_MIN_INTERVAL_SEC", "12")

    cfg, err := Load("")
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if cfg.AlphaVantage.APIKey != "secret" {
        t.Fatalf("api key override: %q", cfg.AlphaVantage.APIKey)
    }
    if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "IBM" || cfg.Symbols[1] != "TSLA" {
        t.Fatalf("symbols override: %v", cfg.Symbols)
    }
    if cfg.RequestTimeoutSec != 25 {
        t.Fatalf("timeout override: %d", cfg.RequestTimeoutSec)
    }
    if cfg.AlphaVantage.Interval != "15min" {
        t.Fatalf("interval override: %s", cfg.AlphaVantage.Interval)
    }
    if cfg.AlphaVantage.MinRequestIntervalSec != 12 {
        t.Fatalf("min interval override: %d", cfg.AlphaVantage.MinRequestIntervalSec)
    }
}

func TestLoad_FileThenEnv(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "config.json")
    data := `{"symbols":["IBM"],"alphavantage":{"api_key":"from-file","interval":"1min"}}`
    if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
        t.Fatal(err)
    }
    t.Setenv("ALPHAVANTAGE_API_KEY", "from-env")

    cfg, err := Load(path)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    // env wins over file for the credential
    if cfg.AlphaVantage.APIKey != "from-env" {
        t.Fatalf("api key: %q", cfg.AlphaVantage.APIKey)
    }
    if cfg.AlphaVantage.Interval != "1min" {
        t.Fatalf("interval from file: %q", cfg.AlphaVantage.Interval)
    }
    if len(cfg.Symbols) != 1 || cfg.Symbols[0] != "IBM" {
        t.Fatalf("symbols from file: %v", cfg.Symbols)
    }
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
    cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if len(cfg.Symbols) == 0 {
        t.Fatal("defaults not applied")
    }
}
