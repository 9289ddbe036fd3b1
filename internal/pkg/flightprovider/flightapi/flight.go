package flightapi

import "encoding/json"

// flightEntry is one priced itinerary in the provider's response list. The
// price block is kept raw because the amount moves between nested keys
// depending on the fare source.
type flightEntry struct {
	Legs  []flightLeg     `json:"legs"`
	Price json.RawMessage `json:"price"`
}

type flightLeg struct {
	Carrier   carrier         `json:"carrier"`
	Duration  string          `json:"duration"`
	Departure string          `json:"departure"`
	Arrival   string          `json:"arrival"`
	Segments  []flightSegment `json:"segments"`
}

type carrier struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type flightSegment struct {
	FlightNumber string `json:"flight_number"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
}
