package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/bloodcamp/coordinator/internal/aggregate"
	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

// createAttempts bounds the insert/lookup loop of CreateExclusiveRegistration
// when the blocking registration disappears between the two statements.
const createAttempts = 3

// Storage is the postgres-backed Store.
type Storage struct {
	db            db.DB
	donors        DonorRepository
	campaigns     CampaignRepository
	requests      BloodRequestRepository
	registrations RegistrationRepository
	timeNow       func() time.Time
}

func NewStorage(
	database db.DB,
	donors DonorRepository,
	campaigns CampaignRepository,
	requests BloodRequestRepository,
	registrations RegistrationRepository,
) *Storage {
	return &Storage{
		db:            database,
		donors:        donors,
		campaigns:     campaigns,
		requests:      requests,
		registrations: registrations,
		timeNow:       time.Now,
	}
}

func (s *Storage) stamp(createdAt, updatedAt *time.Time) {
	now := s.timeNow().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func (s *Storage) CreateDonor(ctx context.Context, donor *repository.Donor) error {
	s.stamp(&donor.CreatedAt, &donor.UpdatedAt)
	if donor.ScreeningVerdict == "" {
		donor.ScreeningVerdict = repository.VerdictNotDone
	}
	if err := s.donors.Create(ctx, donor); err != nil {
		if db.IsUniqueViolation(err, repository.DonorPrimaryKey) {
			return fmt.Errorf("donor %s: %w", donor.ID, repository.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create donor: %w", err)
	}
	return nil
}

func (s *Storage) GetDonor(ctx context.Context, id string) (*repository.Donor, error) {
	return s.donors.GetByID(ctx, id)
}

func (s *Storage) UpdateDonorVerdict(ctx context.Context, id string, verdict repository.Verdict, note string, at time.Time) error {
	return s.donors.UpdateVerdict(ctx, id, verdict, note, at)
}

func (s *Storage) ListMatchingDonors(ctx context.Context, city string, groups []string) ([]*repository.Donor, error) {
	return s.donors.ListMatching(ctx, city, groups)
}

func (s *Storage) CreateCampaign(ctx context.Context, campaign *repository.Campaign) error {
	s.stamp(&campaign.CreatedAt, &campaign.UpdatedAt)
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (s *Storage) GetCampaign(ctx context.Context, id string) (*repository.Campaign, error) {
	return s.campaigns.GetByID(ctx, id)
}

func (s *Storage) SetCampaignStatus(ctx context.Context, id string, status repository.CampaignStatus) (*repository.Campaign, error) {
	if err := s.campaigns.UpdateStatus(ctx, id, status, s.timeNow().UTC()); err != nil {
		return nil, err
	}
	return s.campaigns.GetByID(ctx, id)
}

func (s *Storage) CreateBloodRequest(ctx context.Context, req *repository.BloodRequest) error {
	s.stamp(&req.CreatedAt, &req.UpdatedAt)
	if req.Status == "" {
		req.Status = repository.RequestOpen
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create blood request: %w", err)
	}
	return nil
}

func (s *Storage) GetBloodRequest(ctx context.Context, id string) (*repository.BloodRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *Storage) CreateExclusiveRegistration(ctx context.Context, reg *repository.Registration) (*repository.Registration, bool, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		created, err := s.registrations.CreateExclusive(ctx, reg)
		if err != nil {
			return nil, false, err
		}
		if created {
			return reg, true, nil
		}

		existing, err := s.registrations.GetActiveByDonor(ctx, reg.DonorID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			// the blocking registration left the active set in between
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to load active registration of donor %s: %w", reg.DonorID, err)
		}
		if sameTarget(existing, reg) {
			return existing, false, nil
		}
		return nil, false, s.conflict(ctx, existing)
	}
	return nil, false, fmt.Errorf("registration for donor %s kept conflicting after %d attempts", reg.DonorID, createAttempts)
}

func sameTarget(a, b *repository.Registration) bool {
	aID, aType := a.TargetID()
	bID, bType := b.TargetID()
	return aID == bID && aType == bType
}

// conflict builds the error describing the registration that blocks a new one.
func (s *Storage) conflict(ctx context.Context, existing *repository.Registration) error {
	targetID, targetType := existing.TargetID()
	name := targetID
	switch targetType {
	case repository.TargetCampaign:
		if c, err := s.campaigns.GetByID(ctx, targetID); err == nil {
			name = c.Name
		}
	case repository.TargetBloodRequest:
		if r, err := s.requests.GetByID(ctx, targetID); err == nil {
			name = r.Name
		}
	}
	return &ActiveRegistrationError{Existing: existing, TargetName: name}
}

func (s *Storage) GetRegistration(ctx context.Context, id string) (*repository.Registration, error) {
	return s.registrations.GetByID(ctx, id)
}

func (s *Storage) ListCampaignRegistrations(ctx context.Context, campaignID string) ([]*repository.Registration, error) {
	return s.registrations.ListByCampaign(ctx, campaignID)
}

func (s *Storage) ListDonorRegistrations(ctx context.Context, donorID string) ([]*repository.Registration, error) {
	return s.registrations.ListByDonor(ctx, donorID)
}

func (s *Storage) CheckIn(ctx context.Context, id, campaignID string, now time.Time, guard CheckInGuard) (*repository.Registration, bool, error) {
	var (
		result  *repository.Registration
		changed bool
	)
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		reg, err := s.registrations.GetByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if reg.CampaignID == nil || *reg.CampaignID != campaignID {
			return fmt.Errorf("registration %s in campaign %s: %w", id, campaignID, repository.ErrObjectNotFound)
		}
		if reg.Status == repository.StatusCheckedIn {
			result = reg
			return nil
		}
		if reg.Status != repository.StatusBooked {
			return &InvalidStateError{Current: reg.Status, Target: repository.StatusCheckedIn}
		}

		campaign, err := s.campaigns.GetByIDTx(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(campaign, now); err != nil {
				return err
			}
		}

		if reg.QueueNumber == nil {
			next, err := s.registrations.NextQueueNumberTx(ctx, tx, campaignID)
			if err != nil {
				return err
			}
			reg.QueueNumber = &next
		}
		reg.Status = repository.StatusCheckedIn
		reg.CheckedInAt = &now
		reg.UpdatedAt = now
		if err := s.registrations.UpdateTx(ctx, tx, reg); err != nil {
			return fmt.Errorf("failed to check in registration %s: %w", id, err)
		}
		result, changed = reg, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, changed, nil
}

func (s *Storage) Transition(ctx context.Context, id string, t Transition) (*TransitionResult, error) {
	var res *TransitionResult
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		reg, err := s.registrations.GetByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}
		res = &TransitionResult{Registration: reg, Previous: reg.Status}
		if reg.Status == t.To {
			return nil
		}
		if !t.Allowed(reg.Status) {
			return &InvalidStateError{Current: reg.Status, Target: t.To}
		}

		reg.Status = t.To
		reg.UpdatedAt = t.At
		if t.Apply != nil {
			t.Apply(reg)
		}
		if err := s.registrations.UpdateTx(ctx, tx, reg); err != nil {
			return err
		}
		res.Changed = true

		if t.To == repository.StatusCompleted && reg.BloodRequestID != nil {
			closed, err := s.closeRequestIfFilled(ctx, tx, *reg.BloodRequestID, t.At)
			if err != nil {
				return err
			}
			res.RequestClosed = closed
		}
		return nil
	})
	if err != nil {
		if db.IsUniqueViolation(err, repository.ActiveRegistrationIndex) && res != nil {
			existing, getErr := s.registrations.GetActiveByDonor(ctx, res.Registration.DonorID)
			if getErr != nil {
				return nil, fmt.Errorf("%w: %v", repository.ErrActiveRegistration, getErr)
			}
			return nil, s.conflict(ctx, existing)
		}
		return nil, err
	}
	return res, nil
}

func (s *Storage) Amend(ctx context.Context, id string, a Amendment) (*repository.Registration, error) {
	var result *repository.Registration
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		reg, err := s.registrations.GetByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !a.Allowed(reg.Status) {
			return &InvalidStateError{Current: reg.Status, Target: reg.Status}
		}
		if a.Apply != nil {
			a.Apply(reg)
		}
		reg.UpdatedAt = a.At
		if err := s.registrations.UpdateTx(ctx, tx, reg); err != nil {
			return fmt.Errorf("failed to amend registration %s: %w", id, err)
		}
		result = reg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Storage) closeRequestIfFilled(ctx context.Context, tx db.Tx, requestID string, at time.Time) (bool, error) {
	req, err := s.requests.GetByIDTx(ctx, tx, requestID)
	if err != nil {
		return false, err
	}
	if req.Status == repository.RequestClosed {
		return false, nil
	}
	completed, err := s.registrations.CountCompletedByRequestTx(ctx, tx, requestID)
	if err != nil {
		return false, err
	}
	if completed < req.RequiredUnits {
		return false, nil
	}
	if err := s.requests.CloseTx(ctx, tx, requestID, at); err != nil {
		return false, err
	}
	return true, nil
}

// RecomputeCampaign rewrites the derived columns of a campaign from all of
// its registrations. The campaign row lock orders concurrent recomputations,
// so the last one to commit has read every earlier committed mutation.
func (s *Storage) RecomputeCampaign(ctx context.Context, campaignID string, now time.Time) (*RecomputeResult, error) {
	var res *RecomputeResult
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		campaign, err := s.campaigns.GetByIDTx(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		regs, err := s.registrations.ListByCampaignTx(ctx, tx, campaignID)
		if err != nil {
			return err
		}

		m := aggregate.Compute(regs)
		if err := s.campaigns.UpdateMetricsTx(ctx, tx, campaignID, m, now); err != nil {
			return err
		}
		reached, err := s.campaigns.MarkGoalReachedTx(ctx, tx, campaignID, now)
		if err != nil {
			return err
		}

		campaign.CollectedVolumeMl = m.CollectedVolumeMl
		campaign.CompletedCount = m.CompletedCount
		campaign.DeferredCount = m.DeferredCount
		campaign.RegisteredCount = m.RegisteredCount
		campaign.UpdatedAt = now
		if reached {
			campaign.GoalReachedAt = &now
		}
		res = &RecomputeResult{Campaign: campaign, Metrics: m, GoalReachedNow: reached}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

var _ Store = (*Storage)(nil)
