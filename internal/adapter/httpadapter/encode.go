package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/synop-encoder/internal/domain"
)

const maxObservationBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleEncode encodes one observation posted as JSON and returns the report.
// Malformed JSON is a 400; a record missing its station or time is a 422.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxObservationBytes)

	var obs domain.Observation
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&obs); err != nil {
		s.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid observation: " + err.Error()})
		return
	}

	report, err := domain.EncodeStandalone(obs)
	if err != nil {
		var ue *domain.UnencodableError
		if errors.As(err, &ue) {
			s.metrics.UnencodableRecords.Inc()
			s.respond(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: ue.Field})
			return
		}
		s.logger.Error("encode observation failed", "error", err)
		s.respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	s.metrics.DurationIndicators.WithLabelValues(report.Groups.DurationIndicator()).Inc()
	s.respond(w, http.StatusOK, report)
}

// handleLatest returns the newest stored report for the station in the path.
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")

	report, err := s.reports.Latest(r.Context(), station)
	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		sharedobs.WriteJSON(w, http.StatusNotFound, errorResponse{Error: "no report for station " + station})
	case err != nil:
		s.logger.Error("latest report lookup failed", "error", err, "station_no", station)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		sharedobs.WriteJSON(w, http.StatusOK, report)
	}
}

// respond writes an encode response and counts it by status code.
func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	s.metrics.EncodeRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	sharedobs.WriteJSON(w, status, v)
}
