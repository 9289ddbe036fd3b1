//go:build unit

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightQueryWithDefaults(t *testing.T) {
	t.Run("empty_query_gets_all_defaults", func(t *testing.T) {
		got := FlightQuery{}.WithDefaults("USD")

		assert.Equal(t, DefaultDepartureDate, got.Date)
		assert.Equal(t, 1, got.Adults)
		assert.Equal(t, "USD", got.Currency)
		assert.Empty(t, got.Origin)
		assert.Empty(t, got.Destination)
	})

	t.Run("populated_fields_kept", func(t *testing.T) {
		query := FlightQuery{
			Origin:      "Lagos",
			Destination: "London",
			Date:        "2025-11-10",
			Adults:      4,
			Currency:    "NGN",
		}

		assert.Equal(t, query, query.WithDefaults("USD"))
	})

	t.Run("zero_adults_becomes_one", func(t *testing.T) {
		got := FlightQuery{Adults: -2}.WithDefaults("USD")

		assert.Equal(t, 1, got.Adults)
	})
}
