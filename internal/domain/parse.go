package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilObservation is returned for a payload that decodes to no record at all.
var ErrNilObservation = errors.New("observation payload is null")

// ParseObservation deserializes a RawEvent's value into an Observation.
// When the record carries no observation time, the message timestamp is used.
func ParseObservation(raw RawEvent) (Observation, error) {
	if bytes.Equal(bytes.TrimSpace(raw.Value), []byte("null")) {
		return Observation{}, ErrNilObservation
	}

	var obs Observation
	if err := json.Unmarshal(raw.Value, &obs); err != nil {
		return Observation{}, fmt.Errorf("parse observation: %w", err)
	}

	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = raw.Timestamp
	}
	obs.ObservedAt = obs.ObservedAt.UTC()

	return obs, nil
}
