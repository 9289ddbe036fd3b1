package dto

// DefaultDepartureDate is the far-future placeholder used when a query
// arrives without a date. The date field is free-form and never validated.
const DefaultDepartureDate = "2099-01-01"

// FlightQuery is the canonical, envelope-independent flight search query.
// Every inbound wire shape normalizes into this type; missing fields are
// filled by WithDefaults so downstream code never sees absent values.
type FlightQuery struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date,omitempty"`
	Adults      int    `json:"adults,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// WithDefaults returns a copy with placeholder values for absent fields.
func (q FlightQuery) WithDefaults(defaultCurrency string) FlightQuery {
	if q.Date == "" {
		q.Date = DefaultDepartureDate
	}

	if q.Adults < 1 {
		q.Adults = 1
	}

	if q.Currency == "" {
		q.Currency = defaultCurrency
	}

	return q
}

// FlightCandidate is a single priced flight option, produced either by a
// live provider or by the deterministic mock generator.
type FlightCandidate struct {
	Airline     string  `json:"airline"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Duration    string  `json:"duration,omitempty"`
	Departure   string  `json:"departure,omitempty"`
	Arrival     string  `json:"arrival,omitempty"`
	Stops       int     `json:"stops"`
	BookingLink string  `json:"booking_link,omitempty"`
}

// SearchResult is the uniform answer returned for every well-formed query.
// The mock path always carries exactly three candidates, the provider path
// at most three.
type SearchResult struct {
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Flights     []FlightCandidate `json:"flights"`
}
