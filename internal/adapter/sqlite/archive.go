// Package sqlite archives encoded reports in a local SQLite database so the latest
// report per station can be served without replaying the sink topic.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/couchcryptid/synop-encoder/internal/domain"
	"github.com/couchcryptid/synop-encoder/internal/observability"

	_ "modernc.org/sqlite"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS reports (
	station_no     TEXT NOT NULL,
	report_date    TEXT NOT NULL,
	hour           TEXT NOT NULL,
	data_type      TEXT NOT NULL,
	weather_remark TEXT NOT NULL,
	weather_icon   TEXT NOT NULL DEFAULT '',
	measurements   TEXT NOT NULL,
	encoded_at     TEXT NOT NULL,
	PRIMARY KEY (station_no, report_date, hour)
)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_station_time ON reports (station_no, report_date DESC, hour DESC)`,
}

const upsertReport = `
INSERT INTO reports (station_no, report_date, hour, data_type, weather_remark, weather_icon, measurements, encoded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (station_no, report_date, hour) DO UPDATE SET
	data_type      = excluded.data_type,
	weather_remark = excluded.weather_remark,
	weather_icon   = excluded.weather_icon,
	measurements   = excluded.measurements,
	encoded_at     = excluded.encoded_at`

// Archive stores one row per station and synoptic hour. A re-encoded report replaces
// the earlier one. It implements pipeline.BatchLoader.
type Archive struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Open opens (or creates) the archive at path. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, logger *slog.Logger, metrics *observability.Metrics) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open report archive: %w", err)
	}
	// One connection: SQLite serializes writers and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %q: %w", pragma, err)
		}
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create reports schema: %w", err)
		}
	}

	logger.Info("report archive opened", "path", path)
	return &Archive{db: db, logger: logger, metrics: metrics}, nil
}

// LoadBatch upserts every report in the batch inside one transaction.
func (a *Archive) LoadBatch(ctx context.Context, events []domain.OutputEvent) (err error) {
	if len(events) == 0 {
		return nil
	}
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		a.metrics.ArchiveWrites.WithLabelValues(outcome).Inc()
	}()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, upsertReport)
	if err != nil {
		return fmt.Errorf("prepare report upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		r := e.Report
		measurements, err := json.Marshal(r.Measurements)
		if err != nil {
			return fmt.Errorf("marshal measurements for %s: %w", r.Key(), err)
		}
		if _, err := stmt.ExecContext(ctx,
			r.StationNo,
			reportDate(r),
			r.Groups.Hour,
			r.DataType,
			r.WeatherRemark,
			r.WeatherIcon,
			string(measurements),
			e.Headers[domain.HeaderEncodedAt],
		); err != nil {
			return fmt.Errorf("upsert report %s: %w", r.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}
	return nil
}

// Latest returns the most recent archived report for a station.
func (a *Archive) Latest(ctx context.Context, station string) (domain.Report, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT report_date, data_type, weather_remark, weather_icon, measurements
		FROM reports
		WHERE station_no = ?
		ORDER BY report_date DESC, hour DESC
		LIMIT 1`, station)

	var date, measurements string
	r := domain.Report{StationNo: station}
	if err := row.Scan(&date, &r.DataType, &r.WeatherRemark, &r.WeatherIcon, &measurements); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Report{}, domain.ErrReportNotFound
		}
		return domain.Report{}, fmt.Errorf("query latest report: %w", err)
	}

	if err := json.Unmarshal([]byte(measurements), &r.Measurements); err != nil {
		return domain.Report{}, fmt.Errorf("decode measurements: %w", err)
	}
	groups, err := domain.GroupsFromMeasurements(r.Measurements)
	if err != nil {
		return domain.Report{}, err
	}
	r.Groups = groups

	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return domain.Report{}, fmt.Errorf("malformed report date %q", date)
	}
	r.Year, r.Month, r.Day = parts[0], parts[1], parts[2]
	return r, nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}

func reportDate(r domain.Report) string {
	return r.Year + "-" + r.Month + "-" + r.Day
}
