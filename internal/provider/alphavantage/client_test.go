package alphavantage_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"stockboard/internal/provider"
	alphavantage "stockboard/internal/provider/alphavantage"
)

func TestNew(t *testing.T) {
	t.Parallel()

	// Assert: a valid key should return a client.
	client, err := alphavantage.New("test")
	require.NoErrorf(t, err, "unexpected error: %v", err)
	require.NotNilf(t, client, "unexpected nil client")
	require.Equal(t, "AlphaVantage", client.Name())
}

func TestNew_MissingKey(t *testing.T) {
	t.Parallel()

	// Arrange: a mock http client with no expectations, so the controller
	// fails the test if any request is attempted.
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	// Act: construct without a key.
	client, err := alphavantage.New("  ", alphavantage.WithHTTPClient(httpClient))

	// Assert: a configuration error, no client, zero network calls.
	require.Error(t, err)
	require.Nil(t, client)
	require.Equal(t, provider.KindConfig, provider.KindOf(err))
}

func TestWithHeader(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock http client that checks the custom header.
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bar", req.Header.Get("foo"))
			return okResponse(t, intradayBody("2025-01-02 09:35:00", "101.0000")), nil
		}).
		Times(1)

	// Arrange: create a new client with a custom header.
	client, err := alphavantage.New("test", alphavantage.WithHTTPClient(httpClient), alphavantage.WithHeader(http.Header{
		"foo": []string{"bar"},
	}))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: fetch with the custom header.
	_, err = client.Fetch(t.Context(), "AAPL")
	require.NoError(t, err)
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock http client
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	// Arrange: define a base url
	baseURL := "http://localhost:8080"

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Truef(t, req.URL.String()[:len(baseURL)] == baseURL, "expected url to start with base url, received: %s", req.URL.String())
			return okResponse(t, intradayBody("2025-01-02 09:35:00", "101.0000")), nil
		}).
		Times(1)

	// Arrange: create a new client.
	client, err := alphavantage.New("test", alphavantage.WithHTTPClient(httpClient), alphavantage.WithBaseURL(baseURL))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: fetch against the overridden base URL.
	_, err = client.Fetch(t.Context(), "AAPL")
	require.NoError(t, err)
}

func TestFetch_QueryParameters(t *testing.T) {
	t.Parallel()

	// Arrange: a mock http client that inspects the query string.
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			require.Equal(t, "TIME_SERIES_INTRADAY", q.Get("function"))
			require.Equal(t, "MSFT", q.Get("symbol"))
			require.Equal(t, "15min", q.Get("interval"))
			require.Equal(t, "full", q.Get("outputsize"))
			require.Equal(t, "test", q.Get("apikey"))
			return okResponse(t, intradayBodyInterval("15min", "2025-01-02 09:35:00", "101.0000")), nil
		}).
		Times(1)

	client, err := alphavantage.New("test",
		alphavantage.WithHTTPClient(httpClient),
		alphavantage.WithInterval("15min"),
		alphavantage.WithOutputSize("full"),
	)
	require.NoError(t, err)

	// Act & Assert
	_, err = client.Fetch(t.Context(), "MSFT")
	require.NoError(t, err)
}
