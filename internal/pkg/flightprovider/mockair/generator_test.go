//go:build unit

package mockair

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterminism(t *testing.T) {
	first := Generate("AAA", "LHR", "2025-11-10", 1, "USD")
	second := Generate("AAA", "LHR", "2025-11-10", 1, "USD")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Generate() not deterministic (-first +second):\n%s", diff)
	}
}

func TestGeneratePriceLadder(t *testing.T) {
	// seed("AAA"+"LHR") = 65*3 + 76 + 72 + 82 = 425, base = 425%500 + 50 = 475
	flights := Generate("AAA", "LHR", "2025-11-10", 1, "USD")

	require.Len(t, flights, 3)

	base := 475.0
	perAdult := 10.0

	assert.Equal(t, base+perAdult, flights[0].Price)
	assert.Equal(t, base+20+perAdult, flights[1].Price)
	assert.Equal(t, base+40+perAdult, flights[2].Price)

	for i, flight := range flights {
		assert.Equal(t, "USD", flight.Currency)
		assert.Equal(t, 0, flight.Stops)
		assert.Equal(t, "2h 30m", flight.Duration)
		assert.NotEmpty(t, flight.BookingLink)
		assert.Equal(t, []string{"MockAir1", "MockAir2", "MockAir3"}[i], flight.Airline)
	}
}

func TestGenerateAdultsRaisePrices(t *testing.T) {
	single := Generate("LOS", "LHR", "2025-11-10", 1, "USD")
	family := Generate("LOS", "LHR", "2025-11-10", 4, "USD")

	for i := range single {
		assert.Equal(t, single[i].Price+30, family[i].Price)
	}
}

func TestGenerateSchedule(t *testing.T) {
	flights := Generate("LOS", "LHR", "2025-11-10", 1, "USD")

	assert.Equal(t, "2025-11-10T08:00:00Z", flights[0].Departure)
	assert.Equal(t, "2025-11-10T10:30:00Z", flights[0].Arrival)
	assert.Equal(t, "2025-11-10T08:45:00Z", flights[1].Departure)
	assert.Equal(t, "2025-11-10T09:30:00Z", flights[2].Departure)
}

func TestGenerateUnparseableDate(t *testing.T) {
	flights := Generate("LOS", "LHR", "whenever works", 1, "USD")

	require.Len(t, flights, 3)
	assert.Equal(t, "2099-01-01T08:00:00Z", flights[0].Departure)
}
