package domain

import "math"

const (
	defaultCloudDigit = "0"

	// highSpeedKnots is the threshold above which ff cannot hold the speed in two figures.
	// WMO convention adds 50 to dd and reports the excess over 100 in ff.
	highSpeedKnots = 100
)

// encodeWind builds Nddff from the total cloud amount and the mean wind.
func encodeWind(totalCloud string, w Wind) string {
	speed := math.Round(parseFloatOrZero(w.SpeedKnots))
	if speed < 0 {
		speed = 0
	}
	dd := directionCode(parseFloatOrZero(w.DirectionDegrees), speed)
	ff := speed

	// The offset is decided on the observed speed, before ff is reduced.
	if speed >= highSpeedKnots {
		dd += 50
		ff = speed - highSpeedKnots
	}

	return codeDigit(totalCloud, defaultCloudDigit) + zeroPad(float64(dd), 2) + zeroPad(ff, 2)
}

// directionCode converts degrees to tens of degrees. Calm is 0 and 355-359 wraps to 36.
func directionCode(degrees, speed float64) int {
	if speed == 0 {
		return 0
	}
	if degrees >= 355 {
		return 36
	}
	if degrees < 0 {
		degrees = 0
	}
	return int(math.Floor((degrees + 5) / 10))
}
