//go:build unit

package custom

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) interface{} {
	t.Helper()

	var value interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &value))

	return value
}

func TestExtract(t *testing.T) {
	extractFrom := func(body string, want []Candidate) func(t *testing.T) {
		return func(t *testing.T) {
			got := Extract(decode(t, body))

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("nested_prices_sorted_ascending", extractFrom(
		`{"results": [
			{"fare": {"total": 300.0}},
			{"price": 120.5, "link": "https://x.example/book/1"},
			{"offer": {"amount": 210.0, "more": "https://x.example/purchase/2"}}
		]}`,
		[]Candidate{
			{Price: 120.5, BookingLink: "https://x.example/book/1"},
			{Price: 210.0, BookingLink: "https://x.example/purchase/2"},
			{Price: 300.0},
		},
	))

	t.Run("price_key_case_insensitive", extractFrom(
		`{"PRICE": 99.0}`,
		[]Candidate{{Price: 99.0}},
	))

	t.Run("string_price_ignored", extractFrom(
		`{"price": "120.50"}`,
		nil,
	))

	t.Run("link_without_booking_words_ignored", extractFrom(
		`{"price": 80.0, "link": "https://x.example/about"}`,
		[]Candidate{{Price: 80.0}},
	))

	t.Run("ties_keep_encounter_order", extractFrom(
		`[{"price": 50.0, "url": "https://x.example/book/first"},
		  {"price": 50.0, "url": "https://x.example/book/second"}]`,
		[]Candidate{
			{Price: 50.0, BookingLink: "https://x.example/book/first"},
			{Price: 50.0, BookingLink: "https://x.example/book/second"},
		},
	))

	t.Run("no_prices_anywhere", extractFrom(
		`{"data": {"flights": ["a", "b"]}}`,
		nil,
	))
}

func TestExtractDepthLimit(t *testing.T) {
	// build a document nested far past the depth cap with a price at the bottom
	value := map[string]interface{}{"price": 10.0}
	for i := 0; i < maxDepth+10; i++ {
		value = map[string]interface{}{"nested": value}
	}

	assert.Empty(t, Extract(value))
}

func TestExtractShallowWithinLimit(t *testing.T) {
	value := map[string]interface{}{"price": 10.0}
	for i := 0; i < 5; i++ {
		value = map[string]interface{}{"nested": value}
	}

	assert.Len(t, Extract(value), 1)
}
