package repository

import (
	"errors"
	"time"
)

var (
	ErrObjectNotFound = errors.New("not found")
	// ErrActiveRegistration means the donor already holds a booked or
	// checked-in registration.
	ErrActiveRegistration = errors.New("donor already has an active registration")
	// ErrInvalidState means the row is not in a state the requested change
	// may start from.
	ErrInvalidState = errors.New("invalid state for transition")
	// ErrAlreadyExists means a row with the supplied id is already stored.
	ErrAlreadyExists = errors.New("already exists")
)

type Verdict string

const (
	VerdictNotDone Verdict = "not_done"
	VerdictPassed  Verdict = "passed"
	VerdictFailed  Verdict = "failed"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCancelled CampaignStatus = "cancelled"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCancelled:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestOpen   RequestStatus = "open"
	RequestClosed RequestStatus = "closed"
)

type RegistrationStatus string

const (
	StatusBooked    RegistrationStatus = "booked"
	StatusCheckedIn RegistrationStatus = "checked_in"
	StatusCompleted RegistrationStatus = "completed"
	StatusDeferred  RegistrationStatus = "deferred"
	StatusCancelled RegistrationStatus = "cancelled"
	StatusRejected  RegistrationStatus = "rejected"
)

// ActiveRegistrationIndex is the partial unique index that allows one booked
// or checked-in registration per donor.
const ActiveRegistrationIndex = "registrations_one_active_per_donor"

// DonorPrimaryKey guards client-supplied donor ids.
const DonorPrimaryKey = "donors_pkey"

// ActiveStatuses are the statuses that count against the one-per-donor limit.
var ActiveStatuses = []RegistrationStatus{StatusBooked, StatusCheckedIn}

func (s RegistrationStatus) Active() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

type TargetType string

const (
	TargetCampaign     TargetType = "campaign"
	TargetBloodRequest TargetType = "blood_request"
)

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func ValidBloodGroup(group string) bool {
	for _, g := range BloodGroups {
		if g == group {
			return true
		}
	}
	return false
}

type Donor struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	BloodGroup       string     `db:"blood_group" json:"blood_group"`
	City             string     `db:"city" json:"city"`
	District         string     `db:"district" json:"district"`
	ScreeningVerdict Verdict    `db:"screening_verdict" json:"screening_verdict"`
	ScreeningNote    string     `db:"screening_note" json:"screening_note"`
	VerdictAt        *time.Time `db:"verdict_at" json:"verdict_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type Campaign struct {
	ID                string         `db:"id" json:"id"`
	HospitalID        string         `db:"hospital_id" json:"hospital_id"`
	Name              string         `db:"name" json:"name"`
	City              string         `db:"city" json:"city"`
	District          string         `db:"district" json:"district"`
	TargetVolumeMl    int            `db:"target_volume_ml" json:"target_volume_ml"`
	TargetBloodGroups []string       `db:"target_blood_groups" json:"target_blood_groups"`
	StartAt           time.Time      `db:"start_at" json:"start_at"`
	EndAt             time.Time      `db:"end_at" json:"end_at"`
	Status            CampaignStatus `db:"status" json:"status"`
	CoverImageURL     string         `db:"cover_image_url" json:"cover_image_url"`
	CollectedVolumeMl int            `db:"collected_volume_ml" json:"collected_volume_ml"`
	CompletedCount    int            `db:"completed_count" json:"completed_count"`
	DeferredCount     int            `db:"deferred_count" json:"deferred_count"`
	RegisteredCount   int            `db:"registered_count" json:"registered_count"`
	GoalReachedAt     *time.Time     `db:"goal_reached_at" json:"goal_reached_at,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

type BloodRequest struct {
	ID            string        `db:"id" json:"id"`
	HospitalID    string        `db:"hospital_id" json:"hospital_id"`
	Name          string        `db:"name" json:"name"`
	City          string        `db:"city" json:"city"`
	BloodGroup    string        `db:"blood_group" json:"blood_group"`
	RequiredUnits int           `db:"required_units" json:"required_units"`
	Urgency       string        `db:"urgency" json:"urgency"`
	Status        RequestStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

type Registration struct {
	ID              string             `db:"id" json:"id"`
	DonorID         string             `db:"donor_id" json:"donor_id"`
	CampaignID      *string            `db:"campaign_id" json:"campaign_id,omitempty"`
	BloodRequestID  *string            `db:"blood_request_id" json:"blood_request_id,omitempty"`
	Status          RegistrationStatus `db:"status" json:"status"`
	QueueNumber     *int               `db:"queue_number" json:"queue_number,omitempty"`
	DonatedVolumeMl *int               `db:"donated_volume_ml" json:"donated_volume_ml,omitempty"`
	BloodGroup      *string            `db:"blood_group" json:"blood_group,omitempty"`
	CheckedInAt     *time.Time         `db:"checked_in_at" json:"checked_in_at,omitempty"`
	CompletedAt     *time.Time         `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt       time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at" json:"updated_at"`
}

// TargetID returns the campaign or blood request the registration points at.
func (r *Registration) TargetID() (string, TargetType) {
	if r.CampaignID != nil {
		return *r.CampaignID, TargetCampaign
	}
	if r.BloodRequestID != nil {
		return *r.BloodRequestID, TargetBloodRequest
	}
	return "", ""
}

// Clone returns a deep copy, so callers can mutate pointer fields freely.
func (r *Registration) Clone() *Registration {
	if r == nil {
		return nil
	}
	c := *r
	c.CampaignID = clonePtr(r.CampaignID)
	c.BloodRequestID = clonePtr(r.BloodRequestID)
	c.QueueNumber = clonePtr(r.QueueNumber)
	c.DonatedVolumeMl = clonePtr(r.DonatedVolumeMl)
	c.BloodGroup = clonePtr(r.BloodGroup)
	c.CheckedInAt = clonePtr(r.CheckedInAt)
	c.CompletedAt = clonePtr(r.CompletedAt)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
