package flightprovider

import (
	"context"
	"time"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
)

// SearchRequest carries the resolved inputs every provider needs. Origin and
// Destination are 3-letter codes; callers must not dispatch with either
// missing.
type SearchRequest struct {
	Origin      string
	Destination string
	Date        string
	Adults      int
	Currency    string
}

// FlightProviderConfig configures a single provider client.
type FlightProviderConfig struct {
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
}

type FlightProvider interface {
	Search(ctx context.Context, req SearchRequest) ([]dto.FlightCandidate, error)
}

type FlightProviderFactory struct {
	Provider map[string]FlightProvider
}

func NewFlightProviderFactory() *FlightProviderFactory {
	return &FlightProviderFactory{
		Provider: make(map[string]FlightProvider),
	}
}

func (f *FlightProviderFactory) AddProvider(name string, provider FlightProvider) {
	f.Provider[name] = provider
}

func (f *FlightProviderFactory) GetProvider(name string) FlightProvider {
	return f.Provider[name]
}
