package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// testHaremClient points a HaremClient at the test server by abusing the
// client transport, since the real client always speaks https to a host.
func testHaremClient(t *testing.T, srv *httptest.Server, apiKey string) *HaremClient {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	httpClient := &http.Client{Transport: &rewriteTransport{inner: srv.Client().Transport, target: u}}
	return NewHaremClient(httpClient, u.Host, apiKey)
}

// rewriteTransport forces requests onto the plain-http test server.
type rewriteTransport struct {
	inner  http.RoundTripper
	target *url.URL
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return t.inner.RoundTrip(req)
}

func TestHaremClient_Success(t *testing.T) {
	var gotPath, gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "success": true,
            "data": [
                {"key": "Has Altın", "buy": "5.777,76", "sell": "5.858,70", "percent": "0.74"},
                {"key": "ONS", "buy": "4.239,50", "sell": "4.239,90", "percent": "0.53"}
            ]
        }`))
	}))
	t.Cleanup(srv.Close)

	c := testHaremClient(t, srv, "test-key")

	quotes, err := c.GetQuotes(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/harem_altin/prices", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.NotEmpty(t, gotHost)
	require.Len(t, quotes, 2)
	require.Equal(t, "Has Altın", quotes[0].Key)
	require.Equal(t, "5.777,76", quotes[0].Buy)
}

func TestHaremClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := testHaremClient(t, srv, "")

	_, err := c.GetQuotes(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 403")
}

func TestHaremClient_NonSuccessFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": false, "message": "quota exceeded", "data": []}`))
	}))
	t.Cleanup(srv.Close)

	c := testHaremClient(t, srv, "test-key")

	_, err := c.GetQuotes(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-success result: quota exceeded")
}

func TestHaremClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := testHaremClient(t, srv, "test-key")

	_, err := c.GetQuotes(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode combined feed response")
}
