package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObservation(t *testing.T) {
	payload := `{
		"data_type": "SYNOP",
		"station_number": "41571",
		"observed_at": "2024-06-01T17:20:00+05:00",
		"pressure": {"station_level": "948.6", "sea_level": "1006.3", "change_24h": "-1.5"},
		"temperature": {"dry_bulb": "31.4", "dew_point": "18.20", "relative_humidity": "46"},
		"wind": {"speed_knots": "12", "direction_degrees": "225"},
		"cloud": {
			"total_amount": "4",
			"low": {"amount": "2", "form": "1"},
			"significant": [{"amount": "2", "form": "8", "height": "25"}]
		},
		"weather": {"present": "61", "past_1": "6"},
		"precipitation": {
			"amount_since_previous": "7",
			"start": "2024-06-01T07:30:00Z",
			"end": "2024-06-01T09:00:00Z"
		},
		"visibility": "6"
	}`

	obs, err := ParseObservation(RawEvent{Value: []byte(payload)})
	require.NoError(t, err)

	assert.Equal(t, "41571", obs.StationNumber)
	assert.Equal(t, time.Date(2024, time.June, 1, 12, 20, 0, 0, time.UTC), obs.ObservedAt)
	assert.Equal(t, time.UTC, obs.ObservedAt.Location())
	assert.Equal(t, "948.6", obs.Pressure.StationLevel)
	assert.Equal(t, "18.20", obs.Temperature.DewPoint)
	assert.Equal(t, "225", obs.Wind.DirectionDegrees)
	assert.Equal(t, "8", obs.Cloud.Significant[0].Form)
	assert.Equal(t, SignificantLayer{}, obs.Cloud.Significant[1])
	assert.Equal(t, "6", obs.Weather.Past1)
	require.NotNil(t, obs.Precipitation.Start)
	require.NotNil(t, obs.Precipitation.End)
	assert.False(t, obs.Precipitation.Intermittent)

	report, err := Encode(obs)
	require.NoError(t, err)
	assert.Equal(t, "60075", report.Groups.Precipitation)
	assert.Equal(t, "Continuous slight rain", report.WeatherRemark)
}

func TestParseObservation_FallsBackToMessageTime(t *testing.T) {
	ts := time.Date(2024, time.June, 1, 6, 0, 0, 0, time.UTC)

	obs, err := ParseObservation(RawEvent{
		Value:     []byte(`{"station_number": "41571"}`),
		Timestamp: ts,
	})
	require.NoError(t, err)
	assert.Equal(t, ts, obs.ObservedAt)
}

func TestParseObservation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"invalid json", `{not json`, "parse observation"},
		{"empty payload", ``, "parse observation"},
		{"wrong type", `{"station_number": 41571}`, "parse observation"},
		{"null", ` null `, "observation payload is null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObservation(RawEvent{Value: []byte(tt.value)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := ParseObservation(RawEvent{Value: []byte("null")})
	assert.ErrorIs(t, err, ErrNilObservation)
}
