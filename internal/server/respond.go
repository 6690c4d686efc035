package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/coordinator"
	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

type errorBody struct {
	Error         string `json:"error"`
	Kind          string `json:"kind,omitempty"`
	ScreeningURL  string `json:"screening_url,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	ConflictWith  string `json:"conflict_with,omitempty"`
	Retryable     bool   `json:"retryable,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondErr maps a coordinator error onto a status code and a body the
// caller can act on: redirect to screening, show the date, or retry.
func (s *Server) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Error: err.Error(), Kind: coordinator.Kind(err)}
	var status int

	var (
		notEligible *coordinator.NotEligibleError
		window      *coordinator.OutOfWindowError
		already     *coordinator.AlreadyRegisteredError
	)
	switch {
	case errors.As(err, &notEligible):
		status = http.StatusForbidden
		body.ScreeningURL = notEligible.ScreeningURL
	case errors.As(err, &window):
		status = http.StatusUnprocessableEntity
		body.ScheduledDate = window.ScheduledDate.Format(time.DateOnly)
		body.EndDate = window.EndDate.Format(time.DateOnly)
	case errors.As(err, &already):
		status = http.StatusConflict
		body.ConflictWith = already.ConflictTargetName
	case errors.Is(err, coordinator.ErrAlreadyRegistered), errors.Is(err, coordinator.ErrInvalidTransition), errors.Is(err, coordinator.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, coordinator.ErrNotFound), errors.Is(err, repository.ErrObjectNotFound):
		status = http.StatusNotFound
		body.Kind = "not_found"
	case errors.Is(err, coordinator.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, eligibility.ErrScorerUnavailable):
		status = http.StatusBadGateway
		body.Kind = "scorer_unavailable"
		body.Retryable = true
	default:
		status = http.StatusServiceUnavailable
		body.Retryable = true
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		body.Error = "temporarily unavailable, please retry"
	}
	respondJSON(w, status, body)
}

func decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
