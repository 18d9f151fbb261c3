package domain

import (
	"math"
	"strings"
)

const defaultSquallField = "0"

// encodeHumidity builds 91fff with relative humidity in whole percent.
func encodeHumidity(raw string) string {
	return "91" + zeroPad(math.Round(parseFloatOrZero(raw)), 3)
}

// encodeSquall builds 90dqqqt. Direction and time are copied as entered.
func encodeSquall(s Squall) string {
	return "90" + squallField(s.Direction) + "0" + squallField(s.Time)
}

func squallField(raw string) string {
	if isBlank(raw) {
		return defaultSquallField
	}
	return strings.TrimSpace(raw)
}

// encodeVisibility builds 32hVV: low cloud height code and a visibility code formed from
// the first digit of the reading times ten.
func encodeVisibility(lowCloudHeight, visibility string) string {
	return "32" + codeDigit(lowCloudHeight, defaultCodeDigit) + visibilityCode(visibility)
}

func visibilityCode(raw string) string {
	d, ok := firstDigit(raw)
	if !ok {
		return "00"
	}
	return zeroPad(float64(d*10), 2)
}

// encodeSunshine builds 55SSS with sunshine duration in tenths of an hour.
func encodeSunshine(raw string) string {
	return "55" + zeroPad(math.Round(parseFloatOrZero(raw)*10), 3)
}
