// Package mockair generates deterministic synthetic flight candidates. It
// is the unconditional fallback: whenever no provider is configured or a
// provider call fails, the caller still gets three reproducible flights.
package mockair

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ijalalfrz/a2a-flight-agent/internal/app/dto"
	"github.com/ijalalfrz/a2a-flight-agent/internal/pkg/utils"
)

const (
	candidateCount = 3

	// pricing constants: base derives from the route seed, each later
	// candidate costs 20 more, each adult adds 10
	priceModulus   = 500
	priceFloor     = 50
	priceStep      = 20
	pricePerAdult  = 10
	durationMins   = 150
	departureHour  = 8
	departureSpace = 45 * time.Minute
)

// Generate returns exactly three candidates, byte-identical for identical
// inputs. The seed is the character-code sum of the two route labels.
func Generate(originLabel, destinationLabel, date string, adults int, currency string) []dto.FlightCandidate {
	seed := 0
	for _, r := range originLabel + destinationLabel {
		seed += int(r)
	}

	base := float64(seed%priceModulus + priceFloor)
	departureBase := departureTime(date)

	candidates := make([]dto.FlightCandidate, candidateCount)

	for i := 0; i < candidateCount; i++ {
		departure := departureBase.Add(time.Duration(i) * departureSpace)
		arrival := departure.Add(durationMins * time.Minute)

		candidates[i] = dto.FlightCandidate{
			Airline:   fmt.Sprintf("MockAir%d", i+1),
			Price:     base + float64(priceStep*i) + float64(pricePerAdult*adults),
			Currency:  currency,
			Duration:  utils.ConvertMinutesToDuration(durationMins),
			Departure: departure.Format(time.RFC3339),
			Arrival:   arrival.Format(time.RFC3339),
			Stops:     0,
			BookingLink: fmt.Sprintf("https://example.com/book?from=%s&to=%s&date=%s&adults=%d",
				url.QueryEscape(originLabel), url.QueryEscape(destinationLabel),
				url.QueryEscape(date), adults),
		}
	}

	return candidates
}

// departureTime anchors candidates at 08:00 UTC on the requested date. The
// date field is free-form; anything unparseable falls back to the default
// placeholder so output stays deterministic.
func departureTime(date string) time.Time {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day, _ = time.Parse("2006-01-02", dto.DefaultDepartureDate)
	}

	return day.Add(departureHour * time.Hour)
}
