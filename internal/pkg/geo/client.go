// Package geo provides a best-effort IP geolocation client used to guess
// an origin city when a query arrives without one.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultLookupURL = "https://ipapi.co/json/"

// Client calls an ip-to-city lookup endpoint with a bounded timeout. Any
// failure is reported to the caller, who treats it as "no city known".
type Client struct {
	LookupURL  string
	httpClient *http.Client
}

func NewClient(lookupURL string, timeout time.Duration) *Client {
	if lookupURL == "" {
		lookupURL = DefaultLookupURL
	}

	return &Client{
		LookupURL:  lookupURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// City returns the city name for the caller's public IP.
func (c *Client) City(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("build geolocation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call geolocation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	var body struct {
		City string `json:"city"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode geolocation response: %w", err)
	}

	if body.City == "" {
		return "", fmt.Errorf("geolocation response has no city")
	}

	return body.City, nil
}
