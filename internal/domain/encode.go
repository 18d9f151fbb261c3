package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDataType is used when the record does not name its report type.
const DefaultDataType = "SYNOP"

// ErrUnencodable marks a record that is too incomplete to encode.
var ErrUnencodable = errors.New("record unencodable")

// UnencodableError names the field that made a record unencodable.
type UnencodableError struct {
	Field string
}

func (e *UnencodableError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrUnencodable, e.Field)
}

// Unwrap lets errors.Is match ErrUnencodable.
func (e *UnencodableError) Unwrap() error {
	return ErrUnencodable
}

// EncodeGroups encodes every group of the report. It never fails: missing readings take
// each group's default and a missing station number becomes "00000".
func EncodeGroups(obs Observation) Groups {
	hour := SynopticHour(obs.ObservedAt)

	return Groups{
		CardOne:           cardOne,
		Station:           encodeStation(obs.StationNumber),
		Visibility:        encodeVisibility(obs.Cloud.Low.Height, obs.Visibility),
		Wind:              encodeWind(obs.Cloud.TotalAmount, obs.Wind),
		Temperature:       encodeDryBulb(obs.Temperature.DryBulb),
		DewPoint:          encodeDewPoint(obs.Temperature.DewPoint),
		Pressure:          encodePressure(obs.Pressure),
		Precipitation:     encodePrecipitation(obs.ObservedAt, obs.Precipitation),
		Weather:           encodeWeather(obs.Weather),
		CloudForms:        encodeCloudForms(obs.Cloud),
		MaxMinTemperature: encodeMaxMinTemperature(obs.Temperature.MaxMin, hour),
		CloudDirections:   encodeCloudDirections(obs.Cloud),
		PressureTendency:  encodePressureTendency(obs.Pressure),
		Sunshine:          encodeSunshine(obs.SunshineHours),
		CardTwo:           cardTwo,
		Hour:              encodeHour(obs.ObservedAt),
		PressureChange:    encodePressureChange24h(obs.Pressure.Change24h),
		Precipitation24h:  encodePrecipitation24h(obs.Precipitation),
		SignificantClouds: encodeSignificantLayers(obs.Cloud.Significant),
		Squall:            encodeSquall(obs.Squall),
		Humidity:          encodeHumidity(obs.Temperature.RelativeHumidity),
	}
}

// Encode validates the record and returns its encoded report. A record without a station
// number is refused with an *UnencodableError so data entry can prompt for correction.
func Encode(obs Observation) (Report, error) {
	if isBlank(obs.StationNumber) {
		return Report{}, &UnencodableError{Field: "station_number"}
	}
	return NewReport(obs, EncodeGroups(obs)), nil
}

// NewReport attaches header fields derived from the observation to encoded groups.
func NewReport(obs Observation, groups Groups) Report {
	dataType := strings.TrimSpace(obs.DataType)
	if dataType == "" {
		dataType = DefaultDataType
	}
	at := obs.ObservedAt.UTC()

	return Report{
		DataType:      dataType,
		StationNo:     groups.Station,
		Year:          at.Format("2006"),
		Month:         at.Format("01"),
		Day:           at.Format("02"),
		WeatherRemark: WeatherRemark(obs.Weather.Present),
		WeatherIcon:   WeatherIcon(obs.Weather.Present),
		Measurements:  groups.Measurements(),
		Groups:        groups,
	}
}

// EncodeStandalone is Encode for records that arrive without a transport timestamp to
// fall back on, such as HTTP requests and files. Such records must carry observed_at.
func EncodeStandalone(obs Observation) (Report, error) {
	if obs.ObservedAt.IsZero() {
		return Report{}, &UnencodableError{Field: "observed_at"}
	}
	return Encode(obs)
}
