package domain

import (
	"math"
	"strconv"
	"strings"
)

// parseDecimal parses an optional decimal reading. Reports false for empty or malformed input.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	v, _ := parseDecimal(s)
	return v
}

// zeroPad renders the integer part of a non-negative value as exactly width digits.
// Negative values become 0; values too wide for the field are clamped to all nines.
func zeroPad(value float64, width int) string {
	if math.IsNaN(value) || value < 0 {
		value = 0
	}
	limit := math.Pow10(width) - 1
	if value > limit {
		value = limit
	}
	s := strconv.FormatInt(int64(math.Trunc(value)), 10)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// signMagnitude encodes a temperature as a sign digit and three digits of tenths.
//
//	12.3 -> "0123"   -0.05 -> "1001"   0 -> "0000"
func signMagnitude(celsius float64) string {
	sign := "0"
	if celsius < 0 {
		sign = "1"
	}
	return sign + zeroPad(math.Round(math.Abs(celsius)*10), 3)
}

// lastDigits strips everything but digits from s and returns the last n of them,
// left-padded with zeros.
func lastDigits(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) >= n {
		return digits[len(digits)-n:]
	}
	return strings.Repeat("0", n-len(digits)) + digits
}

// codeDigit returns the first character of a single-figure code, accepting a digit or the
// WMO solidus for "not observed". Anything else yields def.
func codeDigit(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	c := s[0]
	if (c >= '0' && c <= '9') || c == '/' {
		return string(c)
	}
	return def
}

// codeNumber renders a numeric code of the given width, e.g. present weather "2" -> "02".
func codeNumber(s string, width int) string {
	v, ok := parseDecimal(s)
	if !ok {
		return strings.Repeat("0", width)
	}
	return zeroPad(v, width)
}

// firstDigit returns the first decimal digit in s as an integer.
func firstDigit(s string) (int, bool) {
	for _, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			return int(r - '0'), true
		}
	}
	return 0, false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
