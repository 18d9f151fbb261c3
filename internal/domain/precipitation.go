package domain

import (
	"math"
	"time"
)

// Duration indicator (tR) values that are not taken from a rule table.
const (
	TrUndetermined = "/"
	TrAmountOnly   = "0"
)

// intermittentRule places an intermittent episode in the 6-hour window before the report.
// The window is [H+from, H+to]. With covers set, the episode must span the whole window;
// otherwise it must lie inside it.
type intermittentRule struct {
	from   time.Duration
	to     time.Duration
	covers bool
	tr     string
}

var intermittentRules = []intermittentRule{
	{from: -6 * time.Hour, to: -3 * time.Hour, tr: "1"},
	{from: -3 * time.Hour, to: 0, tr: "2"},
	{from: -6 * time.Hour, to: 0, covers: true, tr: "3"},
}

func (r intermittentRule) matches(h, start, end time.Time) bool {
	lo, hi := h.Add(r.from), h.Add(r.to)
	if r.covers {
		return !start.After(lo) && !end.Before(hi)
	}
	return !start.Before(lo) && !end.After(hi)
}

// continuousRule classifies continuous rain by duration and by hours since it ended.
// Bounds are inclusive and rules are tried in order; the first match wins.
type continuousRule struct {
	maxDuration float64
	maxSinceEnd float64
	tr          string
}

var continuousRules = []continuousRule{
	{maxDuration: 2, maxSinceEnd: 2, tr: "4"},
	{maxDuration: 2, maxSinceEnd: 4, tr: "5"},
	{maxDuration: 2, maxSinceEnd: 6, tr: "6"},
	{maxDuration: 4, maxSinceEnd: 2, tr: "7"},
	{maxDuration: 4, maxSinceEnd: 4, tr: "8"},
	{maxDuration: 6, maxSinceEnd: 2, tr: "9"},
}

func (r continuousRule) matches(durationHours, sinceEndHours float64) bool {
	return durationHours <= r.maxDuration && sinceEndHours <= r.maxSinceEnd
}

// ClassifyDuration returns the tR indicator for the precipitation reported at h.
func ClassifyDuration(h time.Time, p Precipitation) string {
	switch {
	case p.Start == nil && p.End == nil:
		if precipitationAmount(p) > 0 {
			return TrAmountOnly
		}
		return TrUndetermined
	case p.Start == nil || p.End == nil:
		return TrUndetermined
	case p.Intermittent:
		return classifyIntermittent(h, *p.Start, *p.End)
	default:
		return classifyContinuous(h, *p.Start, *p.End)
	}
}

func classifyIntermittent(h, start, end time.Time) string {
	if end.Before(start) {
		return TrUndetermined
	}
	for _, r := range intermittentRules {
		if r.matches(h, start, end) {
			return r.tr
		}
	}
	return TrUndetermined
}

func classifyContinuous(h, start, end time.Time) string {
	if start.Before(h.Add(-6*time.Hour)) || end.After(h) {
		return TrUndetermined
	}

	duration := wrapDay(end.Sub(start).Hours())
	sinceEnd := wrapDay(h.Sub(end).Hours())

	for _, r := range continuousRules {
		if r.matches(duration, sinceEnd) {
			return r.tr
		}
	}
	return TrUndetermined
}

// wrapDay maps a negative clock difference onto the previous day.
func wrapDay(hours float64) float64 {
	if hours < 0 {
		return hours + 24
	}
	return hours
}

// precipitationAmount prefers the amount since the previous report and falls back to
// the 24-hour total.
func precipitationAmount(p Precipitation) float64 {
	if v, ok := parseDecimal(p.AmountSincePrevious); ok {
		return v
	}
	return parseFloatOrZero(p.AmountLast24h)
}

// encodePrecipitation builds 6RRRtR.
func encodePrecipitation(h time.Time, p Precipitation) string {
	return "6" + zeroPad(precipitationAmount(p), 3) + ClassifyDuration(h, p)
}

// encodePrecipitation24h builds 7RRRR with the 24-hour total in tenths of a millimetre.
func encodePrecipitation24h(p Precipitation) string {
	return "7" + zeroPad(math.Round(parseFloatOrZero(p.AmountLast24h)*10), 4)
}
