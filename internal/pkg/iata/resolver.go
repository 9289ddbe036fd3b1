package iata

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
)

// Role tells the resolver which side of the trip an input belongs to. Only
// a missing origin triggers the geolocation fallback.
type Role int

const (
	RoleOrigin Role = iota
	RoleDestination
)

// Geolocator reports a best-effort city name for the caller's IP address.
type Geolocator interface {
	City(ctx context.Context) (string, error)
}

// Place is the outcome of resolving a free-text or coded location input.
// Any of the fields may be empty; an unresolved place is not an error.
type Place struct {
	RawInput string
	CityName string
	Code     string
}

// Label picks the best human-readable name for a place.
func (p Place) Label() string {
	switch {
	case p.CityName != "":
		return p.CityName
	case p.Code != "":
		return p.Code
	case p.RawInput != "":
		return p.RawInput
	default:
		return "Unknown"
	}
}

// SeedLabel picks the label feeding the mock generator's seed: code first,
// then raw input, then the caller's fixed placeholder.
func (p Place) SeedLabel(fallback string) string {
	switch {
	case p.Code != "":
		return p.Code
	case p.RawInput != "":
		return p.RawInput
	default:
		return fallback
	}
}

// cityCodes maps known city names to their airport/city code. Unknown names
// resolve to an absent code and route the search to the mock path.
var cityCodes = map[string]string{
	"London":    "LHR",
	"Paris":     "CDG",
	"New York":  "JFK",
	"Tokyo":     "HND",
	"Lagos":     "LOS",
	"Nairobi":   "NBO",
	"Dubai":     "DXB",
	"Singapore": "SIN",
	"Accra":     "ACC",
}

// Resolver maps place inputs to 3-letter codes, consulting the geolocator
// only when an origin is missing entirely.
type Resolver struct {
	geolocator Geolocator
}

func NewResolver(geolocator Geolocator) *Resolver {
	return &Resolver{geolocator: geolocator}
}

// Resolve turns a raw input into a Place. A 3-letter alphabetic input passes
// through as an uppercased code without any lookup; everything else is
// treated as a city name and looked up in the static table.
func (r *Resolver) Resolve(ctx context.Context, input string, role Role) Place {
	if input == "" {
		if role != RoleOrigin || r.geolocator == nil {
			return Place{}
		}

		city, err := r.geolocator.City(ctx)
		if err != nil {
			slog.WarnContext(ctx, "geolocation lookup failed", slog.String("error", err.Error()))

			return Place{}
		}

		return Place{CityName: city, Code: cityCodes[city]}
	}

	if isCode(input) {
		return Place{RawInput: input, Code: strings.ToUpper(input)}
	}

	return Place{RawInput: input, CityName: input, Code: cityCodes[input]}
}

func isCode(input string) bool {
	if len(input) != 3 {
		return false
	}

	for _, r := range input {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
