package storage

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/bloodcamp/coordinator/internal/aggregate"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

// Store is the persistence surface the coordinator works against. Every
// mutating method is atomic on its own.
type Store interface {
	CreateDonor(ctx context.Context, donor *repository.Donor) error
	GetDonor(ctx context.Context, id string) (*repository.Donor, error)
	UpdateDonorVerdict(ctx context.Context, id string, verdict repository.Verdict, note string, at time.Time) error
	ListMatchingDonors(ctx context.Context, city string, groups []string) ([]*repository.Donor, error)

	CreateCampaign(ctx context.Context, campaign *repository.Campaign) error
	GetCampaign(ctx context.Context, id string) (*repository.Campaign, error)
	SetCampaignStatus(ctx context.Context, id string, status repository.CampaignStatus) (*repository.Campaign, error)
	CreateBloodRequest(ctx context.Context, req *repository.BloodRequest) error
	GetBloodRequest(ctx context.Context, id string) (*repository.BloodRequest, error)

	// CreateExclusiveRegistration inserts reg unless the donor already holds an
	// active registration. When that registration is for the same target it is
	// returned with created=false; otherwise the error is an
	// *ActiveRegistrationError.
	CreateExclusiveRegistration(ctx context.Context, reg *repository.Registration) (*repository.Registration, bool, error)
	GetRegistration(ctx context.Context, id string) (*repository.Registration, error)
	ListCampaignRegistrations(ctx context.Context, campaignID string) ([]*repository.Registration, error)
	ListDonorRegistrations(ctx context.Context, donorID string) ([]*repository.Registration, error)

	// CheckIn moves a booked campaign registration to checked_in and gives it
	// the next queue number of the campaign. An already checked-in
	// registration is returned unchanged with changed=false.
	CheckIn(ctx context.Context, id, campaignID string, now time.Time, guard CheckInGuard) (*repository.Registration, bool, error)
	Transition(ctx context.Context, id string, t Transition) (*TransitionResult, error)
	// Amend changes fields of a registration without moving its status.
	Amend(ctx context.Context, id string, a Amendment) (*repository.Registration, error)
	RecomputeCampaign(ctx context.Context, campaignID string, now time.Time) (*RecomputeResult, error)
}

// CheckInGuard runs while the campaign row is locked and may veto the check-in.
type CheckInGuard func(campaign *repository.Campaign, now time.Time) error

// Transition describes a status change of one registration.
type Transition struct {
	From []repository.RegistrationStatus
	To   repository.RegistrationStatus
	At   time.Time
	// Apply mutates the remaining fields; status and updated_at are set by
	// the store.
	Apply func(reg *repository.Registration)
}

// Allowed reports whether t may start from status s.
func (t Transition) Allowed(s repository.RegistrationStatus) bool {
	for _, from := range t.From {
		if from == s {
			return true
		}
	}
	return false
}

// Amendment is a field correction allowed only while the registration is in
// one of the While statuses.
type Amendment struct {
	While []repository.RegistrationStatus
	At    time.Time
	Apply func(reg *repository.Registration)
}

func (a Amendment) Allowed(s repository.RegistrationStatus) bool {
	for _, st := range a.While {
		if st == s {
			return true
		}
	}
	return false
}

type TransitionResult struct {
	Registration *repository.Registration
	Previous     repository.RegistrationStatus
	// Changed is false when the registration was already in the target status.
	Changed bool
	// RequestClosed reports that this completion closed its blood request.
	RequestClosed bool
}

type RecomputeResult struct {
	Campaign *repository.Campaign
	Metrics  aggregate.Metrics
	// GoalReachedNow is true only for the single recomputation that first saw
	// the collected volume reach the target.
	GoalReachedNow bool
}

// ActiveRegistrationError carries the registration that blocks a new one.
type ActiveRegistrationError struct {
	Existing   *repository.Registration
	TargetName string
}

func (e *ActiveRegistrationError) Error() string {
	return fmt.Sprintf("donor %s already registered for %q (registration %s)", e.Existing.DonorID, e.TargetName, e.Existing.ID)
}

func (e *ActiveRegistrationError) Unwrap() error {
	return repository.ErrActiveRegistration
}

// InvalidStateError reports the status a rejected transition started from.
type InvalidStateError struct {
	Current repository.RegistrationStatus
	Target  repository.RegistrationStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("registration cannot move from %s to %s", e.Current, e.Target)
}

func (e *InvalidStateError) Unwrap() error {
	return repository.ErrInvalidState
}
