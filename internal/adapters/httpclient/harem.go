package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"goldrates/internal/domain"
)

// HaremClient talks to the combined gold+currency feed behind RapidAPI.
type HaremClient struct {
	http   *http.Client
	host   string
	apiKey string
}

type haremResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    []domain.CombinedQuote `json:"data"`
}

func (c *HaremClient) GetQuotes(ctx context.Context) ([]domain.CombinedQuote, error) {
	u := fmt.Sprintf("https://%s/harem_altin/prices", c.host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create combined feed request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute combined feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from combined feed: %s", resp.StatusCode, resp.Status)
	}

	var body haremResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode combined feed response: %w", err)
	}

	if !body.Success {
		return nil, fmt.Errorf("combined feed returned non-success result: %s", body.Message)
	}

	return body.Data, nil
}

func NewHaremClient(httpClient *http.Client, host string, apiKey string) *HaremClient {
	return &HaremClient{http: httpClient, host: host, apiKey: apiKey}
}
