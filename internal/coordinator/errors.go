package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
	"gitlab.com/bloodcamp/coordinator/internal/metrics"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

// Business-rule rejections and failures. Every error returned by the
// Coordinator matches exactly one of these with errors.Is.
var (
	ErrNotEligible       = errors.New("donor is not eligible to register")
	ErrAlreadyRegistered = errors.New("donor already has an active registration")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrOutOfWindow       = errors.New("outside of the campaign schedule")
	ErrStoreFailure      = errors.New("store failure")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("already exists")
)

type NotEligibleError struct {
	Resolution eligibility.Resolution
	Reason     string
	// ScreeningURL points the donor back to the screening flow.
	ScreeningURL string
}

func (e *NotEligibleError) Error() string {
	return "not eligible: " + e.Reason
}

func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}

type AlreadyRegisteredError struct {
	RegistrationID     string
	ConflictTargetName string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("already registered for %q", e.ConflictTargetName)
}

func (e *AlreadyRegisteredError) Unwrap() error {
	return ErrAlreadyRegistered
}

// OutOfWindowError carries the local dates the campaign is scheduled for.
type OutOfWindowError struct {
	ScheduledDate time.Time
	EndDate       time.Time
	Today         time.Time
}

func (e *OutOfWindowError) Error() string {
	start, end := e.ScheduledDate.Format(time.DateOnly), e.EndDate.Format(time.DateOnly)
	if start == end {
		return fmt.Sprintf("check-in is only possible on %s, today is %s", start, e.Today.Format(time.DateOnly))
	}
	return fmt.Sprintf("check-in is only possible from %s to %s, today is %s", start, end, e.Today.Format(time.DateOnly))
}

func (e *OutOfWindowError) Unwrap() error {
	return ErrOutOfWindow
}

type TransitionError struct {
	From repository.RegistrationStatus
	To   repository.RegistrationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("registration cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// translate maps store errors onto the coordinator taxonomy. Errors that
// already belong to it pass through untouched.
func translate(op string, err error) error {
	var (
		active *storage.ActiveRegistrationError
		state  *storage.InvalidStateError
	)
	switch {
	case err == nil:
		return nil
	case isKnown(err):
		return err
	case errors.As(err, &active):
		return &AlreadyRegisteredError{RegistrationID: active.Existing.ID, ConflictTargetName: active.TargetName}
	case errors.Is(err, repository.ErrActiveRegistration):
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, err)
	case errors.As(err, &state):
		return &TransitionError{From: state.Current, To: state.Target}
	case errors.Is(err, repository.ErrObjectNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, repository.ErrAlreadyExists):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	metrics.OperationErrorsTotal.WithLabelValues(op).Inc()
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, op, err)
}

func isKnown(err error) bool {
	for _, target := range []error{ErrNotEligible, ErrAlreadyRegistered, ErrNotFound, ErrInvalidTransition, ErrOutOfWindow, ErrStoreFailure, ErrInvalidInput, ErrDuplicate} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Kind names the taxonomy entry of err, for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotEligible):
		return "not_eligible"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrOutOfWindow):
		return "out_of_window"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDuplicate):
		return "duplicate"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "store_failure"
	}
}

// reject counts a failed operation by kind and returns err unchanged.
func reject(op string, err error) error {
	if err != nil {
		metrics.RegistrationRejectionsTotal.WithLabelValues(op, Kind(err)).Inc()
	}
	return err
}

func joinGroups(groups []string) string {
	return strings.Join(groups, ", ")
}
