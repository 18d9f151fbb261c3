package domain

import "strings"

const (
	defaultWeatherCode = "00"
	defaultCodeDigit   = "0"
	defaultLayerHeight = "00"

	significantSeparator = " / "
)

// encodeWeather builds 7wwW1W2.
func encodeWeather(w Weather) string {
	return "7" + codeNumber(w.Present, 2) +
		codeDigit(w.Past1, defaultCodeDigit) +
		codeDigit(w.Past2, defaultCodeDigit)
}

// encodeCloudForms builds 8NhCLCMCH: low cloud amount followed by the low, medium and
// high cloud forms.
func encodeCloudForms(c Cloud) string {
	return "8" + codeDigit(c.Low.Amount, defaultCodeDigit) +
		codeDigit(c.Low.Form, defaultCodeDigit) +
		codeDigit(c.Medium.Form, defaultCodeDigit) +
		codeDigit(c.High.Form, defaultCodeDigit)
}

// encodeCloudDirections builds 56DLDMDH.
func encodeCloudDirections(c Cloud) string {
	return "56" + codeDigit(c.Low.Direction, defaultCodeDigit) +
		codeDigit(c.Medium.Direction, defaultCodeDigit) +
		codeDigit(c.High.Direction, defaultCodeDigit)
}

// encodeSignificantLayers emits one 8NsChshs segment per layer that has any field set.
// Layers with nothing observed are left out entirely rather than zero-filled.
func encodeSignificantLayers(layers [4]SignificantLayer) string {
	segments := make([]string, 0, len(layers))
	for _, l := range layers {
		if isBlank(l.Amount) && isBlank(l.Form) && isBlank(l.Height) {
			continue
		}
		height := defaultLayerHeight
		if v, ok := parseDecimal(l.Height); ok {
			height = zeroPad(v, 2)
		}
		segments = append(segments, "8"+
			codeDigit(l.Amount, defaultCodeDigit)+
			codeDigit(l.Form, defaultCodeDigit)+
			height)
	}
	return strings.Join(segments, significantSeparator)
}
