package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/synop-encoder/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("41571"),
		Value:     []byte(`{"station_number":"41571"}`),
		Topic:     "assembled-observations",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("data-entry")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("41571"), raw.Key)
	assert.JSONEq(t, `{"station_number":"41571"}`, string(raw.Value))
	assert.Equal(t, "assembled-observations", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "data-entry", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestMapOutputToMessage(t *testing.T) {
	report, err := domain.Encode(domain.Observation{
		StationNumber: "41571",
		ObservedAt:    time.Date(2024, time.June, 1, 12, 20, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	encodedAt := time.Date(2024, time.June, 1, 12, 31, 0, 0, time.UTC)
	event, err := domain.SerializeReport(report, encodedAt)
	require.NoError(t, err)

	msg := mapOutputToMessage(event)

	assert.Equal(t, []byte("41571-2024060112"), msg.Key)
	assert.Contains(t, string(msg.Value), `"stationNo":"41571"`)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "data_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("SYNOP"), msg.Headers[0].Value)
	assert.Equal(t, "encoded_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(encodedAt.Format(time.RFC3339)), msg.Headers[1].Value)
	assert.Equal(t, "station_no", msg.Headers[2].Key)
	assert.Equal(t, []byte("41571"), msg.Headers[2].Value)
}

func TestMapOutputToMessage_NoHeaders(t *testing.T) {
	msg := mapOutputToMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("{}")})
	assert.Empty(t, msg.Headers)
	assert.Equal(t, []byte("k"), msg.Key)
}
