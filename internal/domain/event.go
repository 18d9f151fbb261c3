package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
// Report is kept alongside the bytes for loaders that store structured columns.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
	Report  Report
}
