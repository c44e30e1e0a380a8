package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func testGoldFXClient(t *testing.T, srv *httptest.Server, apiKey string) *GoldFXClient {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	httpClient := &http.Client{Transport: &rewriteTransport{inner: srv.Client().Transport, target: u}}
	return NewGoldFXClient(httpClient, u.Host, apiKey)
}

func TestGoldFXClient_GetGold(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "has_altin": {"alis": 5807.5, "satis": 5858.7, "degisim": 0.74},
            "gram_altin": {"alis": 5778.46, "satis": 5876.28, "degisim": 1.55}
        }`))
	}))
	t.Cleanup(srv.Close)

	c := testGoldFXClient(t, srv, "test-key")

	body, err := c.GetGold(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/altin", gotPath)
	require.Len(t, body, 2)
	require.InDelta(t, 5807.5, body["has_altin"].Buy, 1e-9)
	require.InDelta(t, 1.55, body["gram_altin"].Change, 1e-9)
}

func TestGoldFXClient_GetCurrency(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"dolar": {"alis": 34.125, "satis": 34.225, "degisim": 0.55}}`))
	}))
	t.Cleanup(srv.Close)

	c := testGoldFXClient(t, srv, "test-key")

	body, err := c.GetCurrency(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/doviz", gotPath)
	require.InDelta(t, 34.225, body["dolar"].Sell, 1e-9)
}

func TestGoldFXClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := testGoldFXClient(t, srv, "test-key")

	_, err := c.GetGold(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
	require.Contains(t, err.Error(), `"altin"`)
}

func TestGoldFXClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	c := testGoldFXClient(t, srv, "test-key")

	_, err := c.GetCurrency(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), `failed to decode response for feed "doviz"`)
}
