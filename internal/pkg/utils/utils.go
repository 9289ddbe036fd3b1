package utils

import (
	"fmt"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ConvertHourToDuration convert hour to duration format string
// Example: 2.5 -> "2h 30m"
func ConvertHourToDuration(durationInHours float64) string {
	return ConvertMinutesToDuration(int64(durationInHours * 60))
}
