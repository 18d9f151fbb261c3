// Command synopenc encodes observation records into SYNOP reports from the command line.
// Input is a JSON observation, a JSON array of observations, or a stream of either.
// Every record must carry station_number and observed_at.
//
// Usage:
//
//	synopenc -in observations.json
//	synopenc -format json < observation.json
//	synopenc -check internal/pipeline/testdata/observations.json
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/synop-encoder/internal/domain"
	"github.com/couchcryptid/synop-encoder/internal/observability"
	"github.com/google/go-cmp/cmp"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "synopenc:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("synopenc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "-", "observation JSON file, or - for stdin")
	format := fs.String("format", "text", "output format: text or json")
	check := fs.String("check", "", "fixture file of observations with expected measurements to verify")
	level := fs.String("log-level", "warn", "log level for diagnostics on stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := observability.NewLoggerTo(stderr, *level, "text")

	if *check != "" {
		return runCheck(*check, stdout)
	}

	if *format != "text" && *format != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}

	r := stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	records, err := readObservations(r)
	if err != nil {
		return err
	}
	return encodeAll(records, *format, stdout, logger)
}

// readObservations splits the input into individual observation documents.
func readObservations(r io.Reader) ([]json.RawMessage, error) {
	dec := json.NewDecoder(r)
	var records []json.RawMessage
	for {
		var doc json.RawMessage
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}

		if trimmed := bytes.TrimSpace(doc); len(trimmed) > 0 && trimmed[0] == '[' {
			var batch []json.RawMessage
			if err := json.Unmarshal(trimmed, &batch); err != nil {
				return nil, fmt.Errorf("decode input array: %w", err)
			}
			records = append(records, batch...)
			continue
		}
		records = append(records, doc)
	}
}

func encodeAll(records []json.RawMessage, format string, w io.Writer, logger *slog.Logger) error {
	enc := json.NewEncoder(w)
	failed := 0
	for i, rec := range records {
		report, err := encodeRecord(rec)
		if err != nil {
			logger.Warn("record skipped", "index", i, "error", err)
			failed++
			continue
		}

		if format == "json" {
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintln(w, formatText(report)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records could not be encoded", failed, len(records))
	}
	return nil
}

func encodeRecord(rec json.RawMessage) (domain.Report, error) {
	obs, err := domain.ParseObservation(domain.RawEvent{Value: rec})
	if err != nil {
		return domain.Report{}, err
	}
	return domain.EncodeStandalone(obs)
}

// formatText renders a report on one line: station, date and hour, then the
// non-empty groups in order.
func formatText(r domain.Report) string {
	groups := make([]string, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		if m != "" {
			groups = append(groups, m)
		}
	}
	return fmt.Sprintf("%s %s-%s-%sT%sZ %s", r.StationNo, r.Year, r.Month, r.Day, r.Groups.Hour, strings.Join(groups, " "))
}

// fixture is one observation with the report it must encode to.
type fixture struct {
	Name         string          `json:"name"`
	Observation  json.RawMessage `json:"observation"`
	Remark       string          `json:"remark"`
	Measurements []string        `json:"measurements"`
}

// runCheck encodes every fixture and reports any that differ from the expected report.
func runCheck(path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}
	var fixtures []fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	failed := 0
	for _, f := range fixtures {
		report, err := encodeRecord(f.Observation)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", f.Name, err)
			continue
		}
		diff := cmp.Diff(f.Measurements, report.Measurements)
		if f.Remark != report.WeatherRemark {
			diff += fmt.Sprintf("remark: want %q, got %q\n", f.Remark, report.WeatherRemark)
		}
		if diff != "" {
			failed++
			fmt.Fprintf(w, "FAIL %s (-want +got):\n%s", f.Name, diff)
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", f.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(fixtures))
	}
	return nil
}
