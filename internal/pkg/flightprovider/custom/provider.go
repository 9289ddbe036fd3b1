// Package custom is the provider client for arbitrary search URLs whose
// response shape is unknown ahead of time. It leans on a heuristic price
// extractor and should be treated as best effort only.
package custom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/providerutils"
)

const (
	ProviderName = "custom"

	// unknownAirline labels candidates when the free-form response gave no
	// usable carrier info.
	unknownAirline = "Unknown"
)

type Provider struct {
	SearchAPIURL string
	APIKey       string
	httpClient   *http.Client
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Provider{
		SearchAPIURL: config.SearchAPIURL,
		APIKey:       config.APIKey,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (p *Provider) Search(ctx context.Context, req flightprovider.SearchRequest) ([]dto.FlightCandidate, error) {
	searchURL := providerutils.BuildSearchURL(p.SearchAPIURL, p.APIKey, req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", providerutils.ErrProviderUnavailable)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call custom provider: %w", providerutils.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("custom provider returned status %d: %w",
			resp.StatusCode, providerutils.ErrProviderUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read custom provider response: %w", providerutils.ErrProviderUnavailable)
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal custom provider response: %w",
			providerutils.ErrProviderMalformedResponse)
	}

	extracted := Extract(decoded)

	candidates := make([]dto.FlightCandidate, 0, len(extracted))
	for _, candidate := range extracted {
		candidates = append(candidates, dto.FlightCandidate{
			Airline:     unknownAirline,
			Price:       candidate.Price,
			Currency:    req.Currency,
			Stops:       0,
			BookingLink: candidate.BookingLink,
		})
	}

	return candidates, nil
}
