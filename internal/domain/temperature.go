package domain

import "strings"

// maxMinPrefix selects the extreme-temperature group by synoptic hour: the night
// minimum (2SnTnTnTn) at 00 and 03 UTC, the day maximum (1SnTxTxTx) at 09 and 12 UTC.
var maxMinPrefix = map[int]string{
	0:  "2",
	3:  "2",
	9:  "1",
	12: "1",
}

func encodeDryBulb(raw string) string {
	return "1" + signMagnitude(parseFloatOrZero(raw))
}

func encodeDewPoint(raw string) string {
	return "2" + signMagnitude(parseFloatOrZero(trimDewPoint(raw)))
}

// trimDewPoint drops one trailing "0" from the dew point as entered. Upstream forms
// append a padding zero to this field only; other temperatures are read as-is.
func trimDewPoint(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), "0")
}

// encodeMaxMinTemperature returns "" at hours that carry no extreme-temperature group.
func encodeMaxMinTemperature(raw string, hour int) string {
	prefix, ok := maxMinPrefix[hour]
	if !ok {
		return ""
	}
	return prefix + signMagnitude(parseFloatOrZero(raw))
}
