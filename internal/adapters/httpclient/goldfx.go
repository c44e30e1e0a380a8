package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"goldrates/internal/domain"
)

// GoldFXClient talks to the split feeds: one endpoint for gold quotes and
// one for currency quotes, both keyed objects with numeric fields.
type GoldFXClient struct {
	http   *http.Client
	host   string
	apiKey string
}

func (c *GoldFXClient) GetGold(ctx context.Context) (map[string]domain.SplitQuote, error) {
	return c.getKeyed(ctx, "altin")
}

func (c *GoldFXClient) GetCurrency(ctx context.Context) (map[string]domain.SplitQuote, error) {
	return c.getKeyed(ctx, "doviz")
}

func (c *GoldFXClient) getKeyed(ctx context.Context, path string) (map[string]domain.SplitQuote, error) {
	u := fmt.Sprintf("https://%s/%s", c.host, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for feed %q: %w", path, err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for feed %q: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for feed %q: %s", resp.StatusCode, path, resp.Status)
	}

	var body map[string]domain.SplitQuote
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for feed %q: %w", path, err)
	}

	return body, nil
}

func NewGoldFXClient(httpClient *http.Client, host string, apiKey string) *GoldFXClient {
	return &GoldFXClient{http: httpClient, host: host, apiKey: apiKey}
}
