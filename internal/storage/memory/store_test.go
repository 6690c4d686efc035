package memory_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
	"gitlab.com/bloodcamp/coordinator/internal/storage/memory"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func seed(t *testing.T, s *memory.Store, campaigns ...string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range campaigns {
		require.NoError(t, s.CreateCampaign(ctx, &repository.Campaign{
			ID: id, Name: "Campaign " + id, TargetVolumeMl: 900,
			StartAt: now, EndAt: now.Add(8 * time.Hour), Status: repository.CampaignActive,
		}))
	}
}

func newReg(id, donorID, campaignID string) *repository.Registration {
	return &repository.Registration{
		ID: id, DonorID: donorID, CampaignID: strPtr(campaignID),
		Status: repository.StatusBooked, CreatedAt: now, UpdatedAt: now,
	}
}

func TestStore_CreateDonor_TakenID(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.CreateDonor(ctx, &repository.Donor{ID: "d1", Name: "First"}))

	err := s.CreateDonor(ctx, &repository.Donor{ID: "d1", Name: "Second"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	d, err := s.GetDonor(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "First", d.Name)
}

func TestStore_CreateExclusiveRegistration(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	seed(t, s, "x", "y")

	got, created, err := s.CreateExclusiveRegistration(ctx, newReg("r1", "d1", "x"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "r1", got.ID)

	// same target: idempotent
	got, created, err = s.CreateExclusiveRegistration(ctx, newReg("r2", "d1", "x"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "r1", got.ID)

	_, _, err = s.CreateExclusiveRegistration(ctx, newReg("r3", "d1", "y"))
	var conflict *storage.ActiveRegistrationError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Campaign x", conflict.TargetName)
	assert.ErrorIs(t, err, repository.ErrActiveRegistration)

	regs, err := s.ListDonorRegistrations(ctx, "d1")
	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestStore_ConcurrentRegistrationsOfOneDonor(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	targets := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"}
	seed(t, s, targets...)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			_, ok, err := s.CreateExclusiveRegistration(ctx, newReg(fmt.Sprintf("r%d", i), "d1", target))
			if err == nil && ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i, target)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestStore_CheckIn_QueueNumbers(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	seed(t, s, "x")

	const n = 20
	for i := 0; i < n; i++ {
		_, _, err := s.CreateExclusiveRegistration(ctx, newReg(fmt.Sprintf("r%d", i), fmt.Sprintf("d%d", i), "x"))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	numbers := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, _, err := s.CheckIn(ctx, fmt.Sprintf("r%d", i), "x", now, nil)
			assert.NoError(t, err)
			numbers[i] = *reg.QueueNumber
		}(i)
	}
	wg.Wait()

	sort.Ints(numbers)
	for i, got := range numbers {
		assert.Equal(t, i+1, got)
	}

	// second check-in keeps the number
	reg, changed, err := s.CheckIn(ctx, "r0", "x", now, nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NotNil(t, reg.QueueNumber)
}

func TestStore_TransitionAndRecompute(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	seed(t, s, "x")

	_, _, err := s.CreateExclusiveRegistration(ctx, newReg("r1", "d1", "x"))
	require.NoError(t, err)
	_, _, err = s.CreateExclusiveRegistration(ctx, newReg("r2", "d2", "x"))
	require.NoError(t, err)

	complete := func(volume int) storage.Transition {
		return storage.Transition{
			From: []repository.RegistrationStatus{repository.StatusBooked, repository.StatusCheckedIn},
			To:   repository.StatusCompleted,
			At:   now,
			Apply: func(r *repository.Registration) {
				r.DonatedVolumeMl = &volume
			},
		}
	}

	res, err := s.Transition(ctx, "r1", complete(450))
	require.NoError(t, err)
	assert.True(t, res.Changed)

	rec, err := s.RecomputeCampaign(ctx, "x", now)
	require.NoError(t, err)
	assert.Equal(t, 450, rec.Metrics.CollectedVolumeMl)
	assert.False(t, rec.GoalReachedNow)

	_, err = s.Transition(ctx, "r2", complete(450))
	require.NoError(t, err)
	rec, err = s.RecomputeCampaign(ctx, "x", now)
	require.NoError(t, err)
	assert.True(t, rec.GoalReachedNow)

	rec, err = s.RecomputeCampaign(ctx, "x", now)
	require.NoError(t, err)
	assert.False(t, rec.GoalReachedNow, "goal event fires once")
	assert.Equal(t, 900, rec.Campaign.CollectedVolumeMl)
}

func TestStore_Transition_ReopenBlockedByOtherActive(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	seed(t, s, "x", "y")

	_, _, err := s.CreateExclusiveRegistration(ctx, newReg("r1", "d1", "x"))
	require.NoError(t, err)
	_, err = s.Transition(ctx, "r1", storage.Transition{
		From: []repository.RegistrationStatus{repository.StatusBooked},
		To:   repository.StatusCancelled,
		At:   now,
	})
	require.NoError(t, err)
	_, _, err = s.CreateExclusiveRegistration(ctx, newReg("r2", "d1", "y"))
	require.NoError(t, err)

	_, err = s.Transition(ctx, "r1", storage.Transition{
		From: []repository.RegistrationStatus{repository.StatusCancelled},
		To:   repository.StatusBooked,
		At:   now,
	})
	assert.ErrorIs(t, err, repository.ErrActiveRegistration)

	reg, err := s.GetRegistration(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusCancelled, reg.Status)
}

func TestStore_Amend(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	seed(t, s, "x")

	_, _, err := s.CreateExclusiveRegistration(ctx, newReg("r1", "d1", "x"))
	require.NoError(t, err)

	amend := storage.Amendment{
		While: repository.ActiveStatuses,
		At:    now.Add(time.Minute),
		Apply: func(r *repository.Registration) { r.BloodGroup = strPtr("B+") },
	}
	reg, err := s.Amend(ctx, "r1", amend)
	require.NoError(t, err)
	assert.Equal(t, "B+", *reg.BloodGroup)
	assert.Equal(t, repository.StatusBooked, reg.Status)

	_, err = s.Transition(ctx, "r1", storage.Transition{
		From: []repository.RegistrationStatus{repository.StatusBooked},
		To:   repository.StatusDeferred,
		At:   now,
	})
	require.NoError(t, err)

	_, err = s.Amend(ctx, "r1", amend)
	assert.ErrorIs(t, err, repository.ErrInvalidState)

	_, err = s.Amend(ctx, "missing", amend)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}
