package provider

import (
    "errors"
    "fmt"
)

// Kind classifies a fetch failure.
type Kind int

const (
    KindConfig      Kind = iota // credential missing or unusable
    KindTransport               // connection failure or non-success HTTP status
    KindProvider                // API-reported error payload
    KindRateLimited             // API-reported throttling notice or HTTP 429
    KindMalformed               // expected field absent from an otherwise OK payload
)

func (k Kind) String() string {
    switch k {
    case KindConfig:
        return "configuration"
    case KindTransport:
        return "transport"
    case KindProvider:
        return "provider"
    case KindRateLimited:
        return "rate limit"
    case KindMalformed:
        return "malformed response"
    }
    return "unknown"
}

// Error is a classified fetch error, optionally tied to one symbol.
type Error struct {
    Kind   Kind
    Symbol string
    Err    error
}

func (e *Error) Error() string {
    if e.Symbol != "" {
        return fmt.Sprintf("%s: %s error: %v", e.Symbol, e.Kind, e.Err)
    }
    return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errf builds a classified error. Symbol may be empty for batch-level failures.
func Errf(kind Kind, symbol, format string, args ...any) *Error {
    return &Error{Kind: kind, Symbol: symbol, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the classification of err. Unclassified errors (plain
// transport failures, canceled contexts) count as transport errors.
func KindOf(err error) Kind {
    var pe *Error
    if errors.As(err, &pe) { return pe.Kind }
    return KindTransport
}
