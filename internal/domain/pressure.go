package domain

const (
	defaultPressureDigits = "0000"
	defaultChangeDigits   = "000"
	defaultTendency       = "0"
)

// encodePressure builds 3PPPP4PPPP from station-level and sea-level pressure.
func encodePressure(p Pressure) string {
	return "3" + pressureDigits(p.StationLevel) + "4" + pressureDigits(p.SeaLevel)
}

// pressureDigits keeps the last four digits of a reading with the decimal point removed,
// e.g. "1013.2" -> "0132", "987.5" -> "9875".
func pressureDigits(raw string) string {
	if _, ok := parseDecimal(raw); !ok {
		return defaultPressureDigits
	}
	return lastDigits(raw, 4)
}

// encodePressureChange24h builds 58ppp for a rise or no change and 59ppp for a fall.
func encodePressureChange24h(raw string) string {
	v, ok := parseDecimal(raw)
	if !ok {
		return "58" + defaultChangeDigits
	}
	prefix := "58"
	if v < 0 {
		prefix = "59"
	}
	return prefix + lastDigits(raw, 3)
}

// encodePressureTendency builds 5appp from the tendency characteristic and the 3-hour change.
func encodePressureTendency(p Pressure) string {
	digits := defaultChangeDigits
	if _, ok := parseDecimal(p.Change3h); ok {
		digits = lastDigits(p.Change3h, 3)
	}
	return "5" + codeDigit(p.Tendency, defaultTendency) + digits
}
