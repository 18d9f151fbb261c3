// Package domain encodes surface weather observations into WMO FM-12 SYNOP groups.
//
// # Data Source
//
// Observation records are assembled upstream by the station data-entry system, which joins a
// station's latest pressure/temperature entry with its wind, cloud and precipitation
// observation for the same synoptic hour and publishes the result as one JSON document.
// Every reading is an optional decimal string; an empty string means "not observed".
//
// # Report Layout
//
// An encoded report is always exactly 21 groups in a fixed order:
//
//	 1  C1         literal "1"
//	 2  IIiii      station number, verbatim
//	 3  32hVV      low cloud height, visibility
//	 4  Nddff      total cloud, wind direction, wind speed
//	 5  1SnTTT     dry-bulb temperature
//	 6  2SnTdTdTd  dew point
//	 7  3PPPP4PPPP station-level and sea-level pressure
//	 8  6RRRtR     precipitation amount and duration indicator
//	 9  7wwW1W2    present and past weather
//	10  8NhCLCMCH  low cloud amount, cloud forms
//	11  1SnTxTxTx  maximum (09/12 UTC) or 2SnTnTnTn minimum (00/03 UTC), else empty
//	12  56DLDMDH   cloud drift directions
//	13  5appp      3-hour pressure tendency
//	14  55SSS      sunshine duration
//	15  C2         literal "2"
//	16  GG         synoptic hour
//	17  58/59ppp   24-hour pressure change
//	18  7RRRR      24-hour precipitation
//	19  8NsChshs   significant cloud layers, joined with " / ", may be empty
//	20  90dqqqt    squall direction and time, pass-through
//	21  91fff      relative humidity
//
// # Conventions
//
// Temperatures use sign-magnitude: a sign digit (0 for >= 0, 1 for < 0) followed by the
// absolute value in tenths of a degree, e.g. -3.4 C -> "1034".
//
// Pressures drop the decimal point and keep the last four digits, e.g. 1013.2 hPa -> "0132".
//
// Wind direction is coded in tens of degrees. Calm is "00" and 355-359 wraps to "36".
// Speeds of 100 knots or more add 50 to the direction code and report speed minus 100.
//
// The precipitation duration indicator tR is "/" when the rain episode cannot be placed in
// the 6-hour window before the report, and "0" when an amount is known but timing is not.
//
// # Missing Data
//
// Missing readings never fail encoding. Each group declares its own default next to its
// encoder. The only record that is refused is one without a station number; see
// [ErrUnencodable].
package domain
