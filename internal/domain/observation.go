package domain

import "time"

// Observation is one station's assembled observation for a synoptic hour.
// All readings are decimal or code strings as entered; "" means not observed.
type Observation struct {
	DataType      string        `json:"data_type,omitempty"`
	StationNumber string        `json:"station_number"`
	ObservedAt    time.Time     `json:"observed_at"`
	Pressure      Pressure      `json:"pressure"`
	Temperature   Temperature   `json:"temperature"`
	Wind          Wind          `json:"wind"`
	Cloud         Cloud         `json:"cloud"`
	Weather       Weather       `json:"weather"`
	Precipitation Precipitation `json:"precipitation"`
	Visibility    string        `json:"visibility,omitempty"`
	Squall        Squall        `json:"squall"`
	SunshineHours string        `json:"sunshine_hours,omitempty"`
}

// Pressure readings in hPa.
type Pressure struct {
	BarAsRead    string `json:"bar_as_read,omitempty"`
	StationLevel string `json:"station_level,omitempty"`
	SeaLevel     string `json:"sea_level,omitempty"`
	Change24h    string `json:"change_24h,omitempty"`
	Change3h     string `json:"change_3h,omitempty"`
	Tendency     string `json:"tendency,omitempty"` // WMO code table 0200 characteristic "a"
}

// Temperature readings in degrees Celsius, humidity in percent.
type Temperature struct {
	DryBulb          string `json:"dry_bulb,omitempty"`
	MaxMin           string `json:"max_min,omitempty"`
	DewPoint         string `json:"dew_point,omitempty"`
	RelativeHumidity string `json:"relative_humidity,omitempty"`
}

// Wind holds the mean surface wind.
type Wind struct {
	SpeedKnots       string `json:"speed_knots,omitempty"`
	DirectionDegrees string `json:"direction_degrees,omitempty"`
}

// CloudLayer describes one of the low, medium or high cloud etages using WMO code digits.
type CloudLayer struct {
	Amount    string `json:"amount,omitempty"`
	Form      string `json:"form,omitempty"`
	Direction string `json:"direction,omitempty"`
	Height    string `json:"height,omitempty"`
}

// SignificantLayer is an individually reported cloud layer (8NsChshs).
type SignificantLayer struct {
	Amount string `json:"amount,omitempty"`
	Form   string `json:"form,omitempty"`
	Height string `json:"height,omitempty"`
}

// Cloud groups the total cover, the three etages and up to four significant layers.
type Cloud struct {
	TotalAmount string              `json:"total_amount,omitempty"`
	Low         CloudLayer          `json:"low"`
	Medium      CloudLayer          `json:"medium"`
	High        CloudLayer          `json:"high"`
	Significant [4]SignificantLayer `json:"significant"`
}

// Weather holds present (ww) and past (W1, W2) weather codes.
type Weather struct {
	Present string `json:"present,omitempty"`
	Past1   string `json:"past_1,omitempty"`
	Past2   string `json:"past_2,omitempty"`
}

// Precipitation holds the amount in mm and the timing of the rain episode, if recorded.
type Precipitation struct {
	AmountSincePrevious string     `json:"amount_since_previous,omitempty"`
	AmountLast24h       string     `json:"amount_last_24h,omitempty"`
	Start               *time.Time `json:"start,omitempty"`
	End                 *time.Time `json:"end,omitempty"`
	Intermittent        bool       `json:"intermittent"`
}

// Squall fields are copied into group 20 without interpretation.
type Squall struct {
	Direction string `json:"direction,omitempty"`
	Time      string `json:"time,omitempty"`
}
