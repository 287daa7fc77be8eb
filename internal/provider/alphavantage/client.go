package alphavantage

import (
	"net/http"
	"net/url"
	"strings"

	"stockboard/internal/provider"
)

const defaultBaseURL = "https://www.alphavantage.co"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=alphavantage_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Alpha Vantage query API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains query parameters sent with each request, including the
	// API key.
	query url.Values
	// interval is the intraday sampling interval, e.g. "5min". It selects the
	// time-series key of the response.
	interval string
}

// ClientOption is a configuration option for the Alpha Vantage client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithInterval sets the intraday sampling interval (1min, 5min, 15min, ...).
func WithInterval(interval string) ClientOption {
	return func(c *Client) {
		c.interval = interval
		c.query.Set("interval", interval)
	}
}

// WithOutputSize sets the output size hint ("compact" or "full").
func WithOutputSize(size string) ClientOption {
	return func(c *Client) {
		c.query.Set("outputsize", size)
	}
}

// New creates a new Alpha Vantage client. The API key is required: without it
// the constructor fails with a configuration error, so no request can ever be
// attempted against the API unauthenticated.
func New(key string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(key) == "" {
		return nil, provider.Errf(provider.KindConfig, "", "ALPHAVANTAGE_API_KEY is not set")
	}
	var client = &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
		interval:   "5min",
	}
	// https://www.alphavantage.co/documentation/#intraday
	client.query.Set("function", "TIME_SERIES_INTRADAY")
	client.query.Set("interval", client.interval)
	client.query.Set("outputsize", "compact")
	client.query.Set("apikey", key)
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// Name implements provider.Provider.
func (c *Client) Name() string { return "AlphaVantage" }
