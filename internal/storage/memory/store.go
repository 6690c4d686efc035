// Package memory keeps the whole store in process memory behind a single
// mutex. It backs tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gitlab.com/bloodcamp/coordinator/internal/aggregate"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

type Store struct {
	mu            sync.Mutex
	donors        map[string]*repository.Donor
	campaigns     map[string]*repository.Campaign
	requests      map[string]*repository.BloodRequest
	registrations map[string]*repository.Registration
	timeNow       func() time.Time
}

func New() *Store {
	return &Store{
		donors:        make(map[string]*repository.Donor),
		campaigns:     make(map[string]*repository.Campaign),
		requests:      make(map[string]*repository.BloodRequest),
		registrations: make(map[string]*repository.Registration),
		timeNow:       time.Now,
	}
}

var _ storage.Store = (*Store)(nil)

func (s *Store) CreateDonor(_ context.Context, donor *repository.Donor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.donors[donor.ID]; ok {
		return fmt.Errorf("donor %s: %w", donor.ID, repository.ErrAlreadyExists)
	}
	now := s.timeNow().UTC()
	if donor.CreatedAt.IsZero() {
		donor.CreatedAt = now
	}
	donor.UpdatedAt = donor.CreatedAt
	if donor.ScreeningVerdict == "" {
		donor.ScreeningVerdict = repository.VerdictNotDone
	}
	c := *donor
	s.donors[donor.ID] = &c
	return nil
}

func (s *Store) GetDonor(_ context.Context, id string) (*repository.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.donors[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	c := *d
	return &c, nil
}

func (s *Store) UpdateDonorVerdict(_ context.Context, id string, verdict repository.Verdict, note string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.donors[id]
	if !ok {
		return repository.ErrObjectNotFound
	}
	d.ScreeningVerdict = verdict
	d.ScreeningNote = note
	d.VerdictAt = &at
	d.UpdatedAt = at
	return nil
}

func (s *Store) ListMatchingDonors(_ context.Context, city string, groups []string) ([]*repository.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*repository.Donor
	for _, d := range s.donors {
		if !strings.EqualFold(d.City, city) {
			continue
		}
		if len(groups) > 0 && !contains(groups, d.BloodGroup) {
			continue
		}
		c := *d
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign *repository.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[campaign.ID]; ok {
		return fmt.Errorf("campaign %s: %w", campaign.ID, repository.ErrAlreadyExists)
	}
	now := s.timeNow().UTC()
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = now
	}
	campaign.UpdatedAt = campaign.CreatedAt
	s.campaigns[campaign.ID] = cloneCampaign(campaign)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*repository.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return cloneCampaign(c), nil
}

func (s *Store) SetCampaignStatus(_ context.Context, id string, status repository.CampaignStatus) (*repository.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	c.Status = status
	c.UpdatedAt = s.timeNow().UTC()
	return cloneCampaign(c), nil
}

func (s *Store) CreateBloodRequest(_ context.Context, req *repository.BloodRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[req.ID]; ok {
		return fmt.Errorf("blood request %s already exists", req.ID)
	}
	now := s.timeNow().UTC()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = req.CreatedAt
	if req.Status == "" {
		req.Status = repository.RequestOpen
	}
	c := *req
	s.requests[req.ID] = &c
	return nil
}

func (s *Store) GetBloodRequest(_ context.Context, id string) (*repository.BloodRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	c := *r
	return &c, nil
}

func (s *Store) CreateExclusiveRegistration(_ context.Context, reg *repository.Registration) (*repository.Registration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.activeOf(reg.DonorID); existing != nil {
		existingID, existingType := existing.TargetID()
		regID, regType := reg.TargetID()
		if existingID == regID && existingType == regType {
			return existing.Clone(), false, nil
		}
		return nil, false, s.conflict(existing)
	}
	if _, ok := s.registrations[reg.ID]; ok {
		return nil, false, fmt.Errorf("registration %s already exists", reg.ID)
	}
	s.registrations[reg.ID] = reg.Clone()
	return reg.Clone(), true, nil
}

// activeOf must be called with mu held.
func (s *Store) activeOf(donorID string) *repository.Registration {
	for _, r := range s.registrations {
		if r.DonorID == donorID && r.Status.Active() {
			return r
		}
	}
	return nil
}

// conflict must be called with mu held.
func (s *Store) conflict(existing *repository.Registration) error {
	id, targetType := existing.TargetID()
	name := id
	switch targetType {
	case repository.TargetCampaign:
		if c, ok := s.campaigns[id]; ok {
			name = c.Name
		}
	case repository.TargetBloodRequest:
		if r, ok := s.requests[id]; ok {
			name = r.Name
		}
	}
	return &storage.ActiveRegistrationError{Existing: existing.Clone(), TargetName: name}
}

func (s *Store) GetRegistration(_ context.Context, id string) (*repository.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.registrations[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return r.Clone(), nil
}

func (s *Store) ListCampaignRegistrations(_ context.Context, campaignID string) ([]*repository.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.filter(func(r *repository.Registration) bool {
		return r.CampaignID != nil && *r.CampaignID == campaignID
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) ListDonorRegistrations(_ context.Context, donorID string) ([]*repository.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.filter(func(r *repository.Registration) bool { return r.DonorID == donorID })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) filter(keep func(*repository.Registration) bool) []*repository.Registration {
	var out []*repository.Registration
	for _, r := range s.registrations {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *Store) CheckIn(_ context.Context, id, campaignID string, now time.Time, guard storage.CheckInGuard) (*repository.Registration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrations[id]
	if !ok || reg.CampaignID == nil || *reg.CampaignID != campaignID {
		return nil, false, repository.ErrObjectNotFound
	}
	if reg.Status == repository.StatusCheckedIn {
		return reg.Clone(), false, nil
	}
	if reg.Status != repository.StatusBooked {
		return nil, false, &storage.InvalidStateError{Current: reg.Status, Target: repository.StatusCheckedIn}
	}
	campaign, ok := s.campaigns[campaignID]
	if !ok {
		return nil, false, repository.ErrObjectNotFound
	}
	if guard != nil {
		if err := guard(cloneCampaign(campaign), now); err != nil {
			return nil, false, err
		}
	}

	if reg.QueueNumber == nil {
		next := 1
		for _, r := range s.registrations {
			if r.CampaignID != nil && *r.CampaignID == campaignID && r.QueueNumber != nil && *r.QueueNumber >= next {
				next = *r.QueueNumber + 1
			}
		}
		reg.QueueNumber = &next
	}
	reg.Status = repository.StatusCheckedIn
	reg.CheckedInAt = &now
	reg.UpdatedAt = now
	return reg.Clone(), true, nil
}

func (s *Store) Transition(_ context.Context, id string, t storage.Transition) (*storage.TransitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.registrations[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	res := &storage.TransitionResult{Previous: stored.Status}
	if stored.Status == t.To {
		res.Registration = stored.Clone()
		return res, nil
	}
	if !t.Allowed(stored.Status) {
		return nil, &storage.InvalidStateError{Current: stored.Status, Target: t.To}
	}
	if t.To.Active() {
		if other := s.activeOf(stored.DonorID); other != nil && other.ID != stored.ID {
			return nil, s.conflict(other)
		}
	}

	// work on a copy so a failed step leaves the stored row untouched
	reg := stored.Clone()
	reg.Status = t.To
	reg.UpdatedAt = t.At
	if t.Apply != nil {
		t.Apply(reg)
	}
	s.registrations[id] = reg
	res.Registration = reg.Clone()
	res.Changed = true

	if t.To == repository.StatusCompleted && reg.BloodRequestID != nil {
		res.RequestClosed = s.closeRequestIfFilled(*reg.BloodRequestID, t.At)
	}
	return res, nil
}

func (s *Store) Amend(_ context.Context, id string, a storage.Amendment) (*repository.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.registrations[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	if !a.Allowed(stored.Status) {
		return nil, &storage.InvalidStateError{Current: stored.Status, Target: stored.Status}
	}
	reg := stored.Clone()
	if a.Apply != nil {
		a.Apply(reg)
	}
	reg.UpdatedAt = a.At
	s.registrations[id] = reg
	return reg.Clone(), nil
}

func (s *Store) closeRequestIfFilled(requestID string, at time.Time) bool {
	req, ok := s.requests[requestID]
	if !ok || req.Status == repository.RequestClosed {
		return false
	}
	completed := 0
	for _, r := range s.registrations {
		if r.BloodRequestID != nil && *r.BloodRequestID == requestID && r.Status == repository.StatusCompleted {
			completed++
		}
	}
	if completed < req.RequiredUnits {
		return false
	}
	req.Status = repository.RequestClosed
	req.UpdatedAt = at
	return true
}

func (s *Store) RecomputeCampaign(_ context.Context, campaignID string, now time.Time) (*storage.RecomputeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[campaignID]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	regs := s.filter(func(r *repository.Registration) bool {
		return r.CampaignID != nil && *r.CampaignID == campaignID
	})
	m := aggregate.Compute(regs)

	c.CollectedVolumeMl = m.CollectedVolumeMl
	c.CompletedCount = m.CompletedCount
	c.DeferredCount = m.DeferredCount
	c.RegisteredCount = m.RegisteredCount
	c.UpdatedAt = now

	reached := false
	if c.GoalReachedAt == nil && m.GoalReached(c.TargetVolumeMl) {
		at := now
		c.GoalReachedAt = &at
		reached = true
	}
	return &storage.RecomputeResult{Campaign: cloneCampaign(c), Metrics: m, GoalReachedNow: reached}, nil
}

func cloneCampaign(c *repository.Campaign) *repository.Campaign {
	out := *c
	out.TargetBloodGroups = append([]string(nil), c.TargetBloodGroups...)
	if c.GoalReachedAt != nil {
		at := *c.GoalReachedAt
		out.GoalReachedAt = &at
	}
	return &out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
