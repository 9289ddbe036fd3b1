//go:build unit

package flightapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider/providerutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(serverURL string) *Provider {
	return NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: serverURL,
		APIKey:       "test-key",
	})
}

func searchRequest() flightprovider.SearchRequest {
	return flightprovider.SearchRequest{
		Origin:      "LOS",
		Destination: "LHR",
		Date:        "2025-11-10",
		Adults:      1,
		Currency:    "USD",
	}
}

const entryWithTwoSegments = `{
	"legs": [{
		"carrier": {"name": "Sample Air", "code": "SA"},
		"duration": "7h 45m",
		"departure": "2025-11-10T08:00:00Z",
		"arrival": "2025-11-10T15:45:00Z",
		"segments": [{"flight_number": "SA88"}, {"flight_number": "SA12"}]
	}],
	"price": {"total": 523.5, "currency": "USD"}
}`

func TestSearchSkipsMalformedEntries(t *testing.T) {
	// three entries, the middle one has no price amount
	body := fmt.Sprintf(`[%s, {"legs": [{"carrier": {"name": "Broken Air"}}], "price": {}}, %s]`,
		entryWithTwoSegments,
		`{"legs": [{"carrier": {"name": "Other Air"}, "segments": [{"flight_number": "OA1"}]}],
			"price": {"amount": 610}}`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "LOS", r.URL.Query().Get("from"))
		assert.Equal(t, "LHR", r.URL.Query().Get("to"))

		fmt.Fprint(w, body)
	}))
	defer server.Close()

	candidates, err := newTestProvider(server.URL).Search(context.Background(), searchRequest())

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Sample Air", candidates[0].Airline)
	assert.Equal(t, 523.5, candidates[0].Price)
	assert.Equal(t, "USD", candidates[0].Currency)
	assert.Equal(t, "7h 45m", candidates[0].Duration)
	assert.Equal(t, 1, candidates[0].Stops)

	assert.Equal(t, "Other Air", candidates[1].Airline)
	assert.Equal(t, 610.0, candidates[1].Price)
	assert.Equal(t, 0, candidates[1].Stops)
}

func TestSearchCapsCandidates(t *testing.T) {
	entries := make([]string, 12)
	for i := range entries {
		entries[i] = entryWithTwoSegments
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "[%s]", strings.Join(entries, ","))
	}))
	defer server.Close()

	candidates, err := newTestProvider(server.URL).Search(context.Background(), searchRequest())

	require.NoError(t, err)
	assert.Len(t, candidates, 10)
}

func TestSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).Search(context.Background(), searchRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, providerutils.ErrProviderUnavailable)
}

func TestSearchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"unexpected": "shape"}`)
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).Search(context.Background(), searchRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, providerutils.ErrProviderMalformedResponse)
}

func TestSearchUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	_, err := newTestProvider(server.URL).Search(context.Background(), searchRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, providerutils.ErrProviderUnavailable)
}

func TestPriceAmountKeyPrecedence(t *testing.T) {
	amount, currency, err := priceAmount([]byte(`{"amount": 100, "total": 90, "currency": "EUR"}`))

	require.NoError(t, err)
	assert.Equal(t, 90.0, amount)
	assert.Equal(t, "EUR", currency)
}

func TestPriceAmountBareNumber(t *testing.T) {
	amount, currency, err := priceAmount([]byte(`199.99`))

	require.NoError(t, err)
	assert.Equal(t, 199.99, amount)
	assert.Empty(t, currency)
}
