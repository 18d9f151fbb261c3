package domain

import (
	"fmt"
	"time"
)

const (
	cardOne = "1"
	cardTwo = "2"

	// defaultStation fills group 2 when the record carries no station number.
	defaultStation = "00000"
)

// SynopticHour floors the UTC hour of t to the 3-hourly synoptic schedule
// (00, 03, 06, 09, 12, 15, 18, 21).
func SynopticHour(t time.Time) int {
	return t.UTC().Hour() / 3 * 3
}

// encodeStation passes the station number through unchanged.
func encodeStation(station string) string {
	if isBlank(station) {
		return defaultStation
	}
	return station
}

func encodeHour(observedAt time.Time) string {
	return fmt.Sprintf("%02d", SynopticHour(observedAt))
}
