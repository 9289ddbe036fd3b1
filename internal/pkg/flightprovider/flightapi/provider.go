package flightapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/providerutils"
)

const (
	ProviderName = "flightapi"

	// DefaultSearchAPIURL is the oneway search endpoint used when no
	// explicit base URL is configured.
	DefaultSearchAPIURL = "https://api.flightapi.io/oneway"

	// maxCandidates caps how many entries are taken from the raw list.
	maxCandidates = 10
)

// priceKeys are probed in order for the fare amount.
var priceKeys = []string{"total", "totalAmount", "amount", "grandTotal", "price"}

// Provider is the structured client for the named flight price service.
// A single GET per search, no retries; transport and parse failures map to
// typed errors so the caller can fall back.
type Provider struct {
	SearchAPIURL string
	APIKey       string
	httpClient   *http.Client
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	baseURL := config.SearchAPIURL
	if baseURL == "" {
		baseURL = DefaultSearchAPIURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Provider{
		SearchAPIURL: baseURL,
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
		return nil, fmt.Errorf("call flight search API: %w", providerutils.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("flight search API returned status %d: %w",
			resp.StatusCode, providerutils.ErrProviderUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", providerutils.ErrProviderUnavailable)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", providerutils.ErrProviderMalformedResponse)
	}

	candidates := make([]dto.FlightCandidate, 0, maxCandidates)

	for _, raw := range entries {
		if len(candidates) == maxCandidates {
			break
		}

		candidate, err := parseEntry(raw, req.Currency)
		if err != nil {
			// one malformed entry must not fail the whole batch
			slog.WarnContext(ctx, "skipping malformed flight entry", slog.String("error", err.Error()))
			continue
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func parseEntry(raw json.RawMessage, currency string) (dto.FlightCandidate, error) {
	var entry flightEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return dto.FlightCandidate{}, fmt.Errorf("unmarshal flight entry: %w", err)
	}

	if len(entry.Legs) == 0 {
		return dto.FlightCandidate{}, errors.New("flight entry has no legs")
	}

	leg := entry.Legs[0]
	if leg.Carrier.Name == "" {
		return dto.FlightCandidate{}, errors.New("flight leg has no carrier name")
	}

	amount, priceCurrency, err := priceAmount(entry.Price)
	if err != nil {
		return dto.FlightCandidate{}, fmt.Errorf("parse price: %w", err)
	}

	if priceCurrency == "" {
		priceCurrency = currency
	}

	stops := len(leg.Segments) - 1
	if stops < 0 {
		stops = 0
	}

	return dto.FlightCandidate{
		Airline:   leg.Carrier.Name,
		Price:     amount,
		Currency:  priceCurrency,
		Duration:  leg.Duration,
		Departure: leg.Departure,
		Arrival:   leg.Arrival,
		Stops:     stops,
	}, nil
}

// priceAmount digs the fare amount out of the price block, accepting a bare
// number or the first present of the known nested keys.
func priceAmount(raw json.RawMessage) (float64, string, error) {
	if len(raw) == 0 {
		return 0, "", errors.New("no price block")
	}

	var direct float64
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct, "", nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return 0, "", fmt.Errorf("unmarshal price block: %w", err)
	}

	var priceCurrency string
	if rawCurrency, ok := fields["currency"]; ok {
		_ = json.Unmarshal(rawCurrency, &priceCurrency)
	}

	for _, key := range priceKeys {
		rawAmount, ok := fields[key]
		if !ok {
			continue
		}

		var amount float64
		if err := json.Unmarshal(rawAmount, &amount); err == nil {
			return amount, priceCurrency, nil
		}
	}

	return 0, "", errors.New("price block has no known amount field")
}
