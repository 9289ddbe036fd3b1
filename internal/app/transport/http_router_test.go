//go:build unit

package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/config"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/endpoints"
	"github.com/ijalalfrz/a2a-flight-agent/internal/app/service"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/iata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(agent endpoints.FlightAgentService) http.Handler {
	cfg := config.Config{}

	return MakeHTTPRouter(&cfg, endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(agent),
	})
}

func newTestAgent() *service.AgentService {
	return service.NewAgentService(
		iata.NewResolver(nil),
		flightprovider.NewFlightProviderFactory(),
		"mock", "", "USD",
	)
}

func postFlight(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/a2a/flight", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(newTestAgent())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, config.Version, health.Version)
}

func TestFlightEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(newTestAgent())

	recorder := postFlight(t, router, "this is not json")

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "invalid json", errResp.Error)
}

func TestFlightEndpointEmptyObject(t *testing.T) {
	router := newTestRouter(newTestAgent())

	recorder := postFlight(t, router, "{}")

	require.Equal(t, http.StatusOK, recorder.Code)

	var result dto.SearchResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, "Unknown", result.Origin)
	assert.Equal(t, "Unknown", result.Destination)
	assert.Len(t, result.Flights, 3)
}

func TestFlightEndpointBareQuery(t *testing.T) {
	router := newTestRouter(newTestAgent())

	recorder := postFlight(t, router,
		`{"destination": "London", "date": "2025-11-10", "adults": 1}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result dto.SearchResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, "London", result.Destination)
	require.Len(t, result.Flights, 3)

	// seed is the char-code sum of "AAA"+"LHR": base price 475, one adult
	assert.Equal(t, 485.0, result.Flights[0].Price)
	assert.Equal(t, 505.0, result.Flights[1].Price)
	assert.Equal(t, 525.0, result.Flights[2].Price)
}

func TestFlightEndpointRPCRoundTrip(t *testing.T) {
	router := newTestRouter(newTestAgent())

	recorder := postFlight(t, router, `{
		"jsonrpc": "2.0",
		"id": "flight001",
		"method": "flight/search",
		"params": {"query": {"destination": "London", "date": "2025-11-10", "adults": 1}}
	}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      string            `json:"id"`
		Result  *dto.SearchResult `json:"result"`
		Error   *json.RawMessage  `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, "flight001", resp.ID)
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Len(t, resp.Result.Flights, 3)
}

func TestFlightEndpointAgentUnavailable(t *testing.T) {
	router := newTestRouter(nil)

	t.Run("bare_request", func(t *testing.T) {
		recorder := postFlight(t, router, "{}")

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
		assert.Equal(t, "agent not available", errResp.Error)
	})

	t.Run("rpc_request", func(t *testing.T) {
		recorder := postFlight(t, router,
			`{"jsonrpc": "2.0", "id": "x-1", "method": "flight/search", "params": {}}`)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var resp struct {
			ID    string `json:"id"`
			Error *struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

		assert.Equal(t, "x-1", resp.ID)
		require.NotNil(t, resp.Error)
		assert.Equal(t, -32603, resp.Error.Code)
		assert.Equal(t, "agent not available", resp.Error.Message)
	})
}
