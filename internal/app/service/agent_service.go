package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/custom"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/flightapi"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/mockair"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/iata"
)

// seed placeholders used when a place resolved to nothing at all
const (
	originPlaceholder      = "AAA"
	destinationPlaceholder = "BBB"
)

// maxResultCandidates caps every search result at three flights.
const maxResultCandidates = 3

type PlaceResolver interface {
	Resolve(ctx context.Context, input string, role iata.Role) iata.Place
}

// AgentService is the dispatch orchestrator: it resolves the query's places,
// decides between the live provider and the mock generator, and always
// produces a result. Configuration is passed in at construction and treated
// as read-only for the life of the process.
type AgentService struct {
	Resolver        PlaceResolver
	ProviderFactory *flightprovider.FlightProviderFactory
	Provider        string
	APIKey          string
	DefaultCurrency string
}

func NewAgentService(resolver PlaceResolver, factory *flightprovider.FlightProviderFactory,
	provider, apiKey, defaultCurrency string) *AgentService {
	return &AgentService{
		Resolver:        resolver,
		ProviderFactory: factory,
		Provider:        provider,
		APIKey:          apiKey,
		DefaultCurrency: defaultCurrency,
	}
}

// FindFlights never fails: every upstream error, timeout, or unresolved
// place degrades to the deterministic mock path, so a well-formed query
// always gets flights back.
func (s *AgentService) FindFlights(ctx context.Context, query dto.FlightQuery) dto.SearchResult {
	query = query.WithDefaults(s.DefaultCurrency)

	origin := s.Resolver.Resolve(ctx, query.Origin, iata.RoleOrigin)
	destination := s.Resolver.Resolve(ctx, query.Destination, iata.RoleDestination)

	if s.shouldUseProvider() && s.APIKey != "" && origin.Code != "" && destination.Code != "" {
		if flights, ok := s.searchProvider(ctx, origin, destination, query); ok {
			return dto.SearchResult{
				Origin:      origin.Label(),
				Destination: destination.Label(),
				Flights:     flights,
			}
		}
	}

	flights := mockair.Generate(
		origin.SeedLabel(originPlaceholder),
		destination.SeedLabel(destinationPlaceholder),
		query.Date, query.Adults, query.Currency,
	)

	return dto.SearchResult{
		Origin:      origin.Label(),
		Destination: destination.Label(),
		Flights:     flights,
	}
}

// shouldUseProvider preserves the loose trigger the clients depend on: an
// identifier mentioning "flightapi", anything that looks like a URL, or the
// mere presence of an API key selects the live path. Deliberately not
// hardened; the URL case exists to support arbitrary custom providers.
func (s *AgentService) shouldUseProvider() bool {
	return strings.Contains(strings.ToLower(s.Provider), "flightapi") ||
		strings.HasPrefix(s.Provider, "http") ||
		s.APIKey != ""
}

// providerName picks the structured client for the named service and the
// heuristic client for raw URLs.
func (s *AgentService) providerName() string {
	if strings.HasPrefix(s.Provider, "http") {
		return custom.ProviderName
	}

	return flightapi.ProviderName
}

// searchProvider performs the single provider attempt. Any error, panic, or
// empty result reports ok=false so the caller falls through to the mock.
func (s *AgentService) searchProvider(ctx context.Context,
	origin, destination iata.Place, query dto.FlightQuery,
) (flights []dto.FlightCandidate, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "provider search panicked", slog.Any("message", r))

			flights, ok = nil, false
		}
	}()

	provider := s.ProviderFactory.GetProvider(s.providerName())
	if provider == nil {
		return nil, false
	}

	candidates, err := provider.Search(ctx, flightprovider.SearchRequest{
		Origin:      origin.Code,
		Destination: destination.Code,
		Date:        query.Date,
		Adults:      query.Adults,
		Currency:    query.Currency,
	})
	if err != nil {
		slog.WarnContext(ctx, "provider search failed, falling back to mock",
			slog.String("provider", s.providerName()),
			slog.Any("error", err))

		return nil, false
	}

	if len(candidates) == 0 {
		return nil, false
	}

	if len(candidates) > maxResultCandidates {
		candidates = candidates[:maxResultCandidates]
	}

	return candidates, true
}
