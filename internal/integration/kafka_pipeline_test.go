//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/synop-encoder/internal/adapter/kafka"
	"github.com/couchcryptid/synop-encoder/internal/adapter/sqlite"
	"github.com/couchcryptid/synop-encoder/internal/config"
	"github.com/couchcryptid/synop-encoder/internal/domain"
	"github.com/couchcryptid/synop-encoder/internal/observability"
	"github.com/couchcryptid/synop-encoder/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSourceTopic = "test-observations"
	testSinkTopic   = "test-reports"
)

// publishedReport holds a deserialized message read from the sink topic.
type publishedReport struct {
	Report  domain.Report
	Key     string
	Headers map[string]string
}

type fixture struct {
	Name         string          `json:"name"`
	Observation  json.RawMessage `json:"observation"`
	Measurements []string        `json:"measurements"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile("../pipeline/testdata/observations.json")
	require.NoError(t, err)
	var fixtures []fixture
	require.NoError(t, json.Unmarshal(data, &fixtures))
	require.NotEmpty(t, fixtures)
	return fixtures
}

func testConfig(broker, group string) *config.Config {
	return &config.Config{
		KafkaBrokers:       []string{broker},
		KafkaSourceTopic:   testSourceTopic,
		KafkaSinkTopic:     testSinkTopic,
		KafkaGroupID:       fmt.Sprintf("%s-%d", group, time.Now().UnixNano()),
		BatchFlushInterval: 5 * time.Second,
	}
}

func publish(ctx context.Context, t *testing.T, broker string, msgs ...kafkago.Message) {
	t.Helper()
	producer := &kafkago.Writer{
		Addr:  kafkago.TCP(broker),
		Topic: testSourceTopic,
	}
	t.Cleanup(func() { _ = producer.Close() })
	require.NoError(t, producer.WriteMessages(ctx, msgs...))
}

func sinkConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

// readReport reads a single message from the sink consumer and deserializes it.
func readReport(ctx context.Context, t *testing.T, consumer *kafkago.Reader) publishedReport {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var report domain.Report
	require.NoError(t, json.Unmarshal(msg.Value, &report), "unmarshal sink message")

	return publishedReport{Report: report, Key: string(msg.Key), Headers: headers}
}

// TestKafkaReaderWriter round-trips one observation through the Reader and Writer adapters.
func TestKafkaReaderWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-reader")

	f := loadFixtures(t)[0]
	publish(ctx, t, broker, kafkago.Message{Key: []byte("41571"), Value: f.Observation})

	// Retry because the consumer group may need time to rebalance before
	// partitions are assigned and messages become available.
	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	var batch []domain.RawEvent
	for len(batch) == 0 {
		var err error
		batch, err = reader.ExtractBatch(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, ctx.Err(), "timed out waiting for message from source topic")
	}
	require.Len(t, batch, 1)
	raw := batch[0]
	assert.Equal(t, []byte("41571"), raw.Key)
	assert.Equal(t, testSourceTopic, raw.Topic)
	require.NotNil(t, raw.Commit, "commit callback should be set")
	require.NoError(t, raw.Commit(ctx))

	encoder := pipeline.NewEncoder(discardLogger(), observability.NewMetricsForTesting())
	out, err := encoder.Transform(ctx, raw)
	require.NoError(t, err)

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })
	require.NoError(t, writer.LoadBatch(ctx, []domain.OutputEvent{out}))

	pr := readReport(ctx, t, sinkConsumer(t, broker))
	assert.Equal(t, "41571-2024060112", pr.Key)
	assert.Equal(t, "41571", pr.Headers[domain.HeaderStationNo])
	assert.Equal(t, "SYNOP", pr.Headers[domain.HeaderDataType])
	_, err = time.Parse(time.RFC3339, pr.Headers[domain.HeaderEncodedAt])
	assert.NoError(t, err, "encoded_at should be valid RFC3339")
	assert.Equal(t, f.Measurements, pr.Report.Measurements)
}

// TestPipelineEndToEnd runs Reader -> Encoder -> FanOut(archive, Writer) against real Kafka
// and checks every fixture arrives encoded on the sink topic and in the archive.
func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-pipeline")

	fixtures := loadFixtures(t)
	msgs := make([]kafkago.Message, 0, len(fixtures)+1)
	for i, f := range fixtures {
		msgs = append(msgs, kafkago.Message{Key: []byte(fmt.Sprintf("record-%d", i)), Value: f.Observation})
	}
	// A poison pill between valid records must be skipped without stalling the pipeline.
	msgs = append(msgs[:1], append([]kafkago.Message{{Key: []byte("bad"), Value: []byte("not-json{{{")}}, msgs[1:]...)...)
	publish(ctx, t, broker, msgs...)

	metrics := observability.NewMetricsForTesting()
	archive, err := sqlite.Open(ctx, ":memory:", discardLogger(), metrics)
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(reader, pipeline.NewEncoder(discardLogger(), metrics),
		pipeline.NewFanOut(archive, writer), discardLogger(), metrics, 50)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)
	received := map[string]publishedReport{}
	for len(received) < len(fixtures) {
		pr := readReport(ctx, t, consumer)
		received[pr.Report.StationNo] = pr
	}

	pipelineCancel()
	require.NoError(t, <-errCh)
	require.NoError(t, p.CheckReadiness(ctx))

	for _, f := range fixtures {
		var obs domain.Observation
		require.NoError(t, json.Unmarshal(f.Observation, &obs))

		pr, ok := received[obs.StationNumber]
		require.True(t, ok, "missing report for %s", f.Name)
		assert.Equal(t, f.Measurements, pr.Report.Measurements, f.Name)

		stored, err := archive.Latest(ctx, obs.StationNumber)
		require.NoError(t, err, f.Name)
		assert.Equal(t, f.Measurements, stored.Measurements, f.Name)
	}

	// Verify no further message arrives (the poison pill was skipped).
	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	_, err = consumer.ReadMessage(readCtx)
	readCancel()
	assert.Error(t, err, "expected no extra message on sink topic")
}
