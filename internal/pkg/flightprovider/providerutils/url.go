package providerutils

import (
	"net/url"
	"strconv"

	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/flightprovider"
)

// BuildSearchURL appends the provider query parameters to a base URL,
// keeping any query string the base already carries.
func BuildSearchURL(base, apiKey string, req flightprovider.SearchRequest) string {
	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("from", req.Origin)
	params.Set("to", req.Destination)
	params.Set("date", req.Date)
	params.Set("adults", strconv.Itoa(req.Adults))
	params.Set("currency", req.Currency)

	separator := "?"
	if parsed, err := url.Parse(base); err == nil && parsed.RawQuery != "" {
		separator = "&"
	}

	return base + separator + params.Encode()
}
