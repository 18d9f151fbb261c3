package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Message header names set on every encoded report.
const (
	HeaderStationNo = "station_no"
	HeaderDataType  = "data_type"
	HeaderEncodedAt = "encoded_at"
)

// SerializeReport marshals a report into an OutputEvent keyed by station and hour.
func SerializeReport(report Report, encodedAt time.Time) (OutputEvent, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(report.Key()),
		Value: data,
		Headers: map[string]string{
			HeaderStationNo: report.StationNo,
			HeaderDataType:  report.DataType,
			HeaderEncodedAt: encodedAt.UTC().Format(time.RFC3339),
		},
		Report: report,
	}, nil
}
