package domain

import (
	"errors"
	"fmt"
)

// ErrReportNotFound is returned by report stores that hold nothing for a station.
var ErrReportNotFound = errors.New("report not found")

// GroupCount is the fixed number of groups in an encoded report.
const GroupCount = 21

// Groups holds one encoded SYNOP group per field, in report order.
type Groups struct {
	CardOne           string // 1  C1
	Station           string // 2  IIiii
	Visibility        string // 3  32hVV
	Wind              string // 4  Nddff
	Temperature       string // 5  1SnTTT
	DewPoint          string // 6  2SnTdTdTd
	Pressure          string // 7  3PPPP4PPPP
	Precipitation     string // 8  6RRRtR
	Weather           string // 9  7wwW1W2
	CloudForms        string // 10 8NhCLCMCH
	MaxMinTemperature string // 11 1SnTxTxTx / 2SnTnTnTn
	CloudDirections   string // 12 56DLDMDH
	PressureTendency  string // 13 5appp
	Sunshine          string // 14 55SSS
	CardTwo           string // 15 C2
	Hour              string // 16 GG
	PressureChange    string // 17 58ppp / 59ppp
	Precipitation24h  string // 18 7RRRR
	SignificantClouds string // 19 8NsChshs
	Squall            string // 20 90dqqqt
	Humidity          string // 21 91fff
}

// Measurements flattens the groups into their positional sequence.
func (g Groups) Measurements() []string {
	return []string{
		g.CardOne,
		g.Station,
		g.Visibility,
		g.Wind,
		g.Temperature,
		g.DewPoint,
		g.Pressure,
		g.Precipitation,
		g.Weather,
		g.CloudForms,
		g.MaxMinTemperature,
		g.CloudDirections,
		g.PressureTendency,
		g.Sunshine,
		g.CardTwo,
		g.Hour,
		g.PressureChange,
		g.Precipitation24h,
		g.SignificantClouds,
		g.Squall,
		g.Humidity,
	}
}

// GroupsFromMeasurements rebuilds Groups from a stored measurement list.
func GroupsFromMeasurements(m []string) (Groups, error) {
	if len(m) != GroupCount {
		return Groups{}, fmt.Errorf("rebuild groups: got %d measurements, want %d", len(m), GroupCount)
	}
	return Groups{
		CardOne:           m[0],
		Station:           m[1],
		Visibility:        m[2],
		Wind:              m[3],
		Temperature:       m[4],
		DewPoint:          m[5],
		Pressure:          m[6],
		Precipitation:     m[7],
		Weather:           m[8],
		CloudForms:        m[9],
		MaxMinTemperature: m[10],
		CloudDirections:   m[11],
		PressureTendency:  m[12],
		Sunshine:          m[13],
		CardTwo:           m[14],
		Hour:              m[15],
		PressureChange:    m[16],
		Precipitation24h:  m[17],
		SignificantClouds: m[18],
		Squall:            m[19],
		Humidity:          m[20],
	}, nil
}

// DurationIndicator returns the tR digit of the precipitation group.
func (g Groups) DurationIndicator() string {
	if g.Precipitation == "" {
		return TrUndetermined
	}
	return g.Precipitation[len(g.Precipitation)-1:]
}

// Report is an encoded observation with its header fields.
type Report struct {
	DataType      string   `json:"dataType"`
	StationNo     string   `json:"stationNo"`
	Year          string   `json:"year"`
	Month         string   `json:"month"`
	Day           string   `json:"day"`
	WeatherRemark string   `json:"weatherRemark"`
	WeatherIcon   string   `json:"weatherIcon,omitempty"`
	Measurements  []string `json:"measurements"`

	Groups Groups `json:"-"`
}

// Key identifies the report by station and synoptic hour, e.g. "41571-2024060112".
func (r Report) Key() string {
	return r.StationNo + "-" + r.Year + r.Month + r.Day + r.Groups.Hour
}
