package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/synop-encoder/internal/domain"
	"github.com/couchcryptid/synop-encoder/internal/observability"
)

// Encoder implements Transformer by parsing an observation message and encoding it
// as a SYNOP report.
type Encoder struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewEncoder creates an Encoder.
func NewEncoder(logger *slog.Logger, metrics *observability.Metrics) *Encoder {
	return &Encoder{logger: logger, metrics: metrics}
}

func (e *Encoder) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	obs, err := domain.ParseObservation(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	report, err := domain.Encode(obs)
	if err != nil {
		if errors.Is(err, domain.ErrUnencodable) {
			e.metrics.UnencodableRecords.Inc()
		}
		return domain.OutputEvent{}, err
	}

	tr := report.Groups.DurationIndicator()
	e.metrics.DurationIndicators.WithLabelValues(tr).Inc()
	e.logger.Debug("observation encoded",
		"station_no", report.StationNo,
		"hour", report.Groups.Hour,
		"tr", tr,
	)

	return domain.SerializeReport(report, clock.Now())
}
