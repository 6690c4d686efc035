// Package coordinator drives donor registrations through their lifecycle:
// eligibility gating, the one-active-registration rule, same-day check-in
// with queue numbers, completion and campaign progress.
package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
	"gitlab.com/bloodcamp/coordinator/internal/metrics"
	"gitlab.com/bloodcamp/coordinator/internal/notifier"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

// Gate resolves whether a donor may register right now.
type Gate interface {
	Resolve(ctx context.Context, donorID string) (eligibility.Resolution, error)
	ScreeningURL(donorID, targetID string) string
}

type Options struct {
	// Location decides which calendar day "today" is for check-in.
	Location *time.Location
	// OpTimeout bounds an operation whose context has no deadline.
	OpTimeout time.Duration
	// FanOutWorkers limits concurrent notifications on campaign creation.
	FanOutWorkers int
}

type Coordinator struct {
	store         storage.Store
	gate          Gate
	notifier      notifier.Notifier
	logger        *zap.Logger
	loc           *time.Location
	opTimeout     time.Duration
	fanOutWorkers int
	timeNow       func() time.Time
}

func New(store storage.Store, gate Gate, n notifier.Notifier, opts Options, logger *zap.Logger) *Coordinator {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.FanOutWorkers <= 0 {
		opts.FanOutWorkers = 8
	}
	return &Coordinator{
		store:         store,
		gate:          gate,
		notifier:      n,
		logger:        logger.With(zap.String("component", "coordinator")),
		loc:           opts.Location,
		opTimeout:     opts.OpTimeout,
		fanOutWorkers: opts.FanOutWorkers,
		timeNow:       time.Now,
	}
}

func (c *Coordinator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

func (c *Coordinator) now() time.Time {
	return c.timeNow().UTC()
}

// Register books the donor onto a campaign or blood request. Registering
// again for the target the donor already holds returns that registration.
func (c *Coordinator) Register(ctx context.Context, donorID, targetID string, targetType repository.TargetType) (*repository.Registration, error) {
	const op = "register"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reg, created, err := c.register(ctx, donorID, targetID, targetType)
	if err != nil {
		return nil, reject(op, err)
	}
	if created {
		metrics.RegistrationsCreatedTotal.WithLabelValues(string(targetType)).Inc()
		c.logger.Info("registration created",
			zap.String("registration_id", reg.ID),
			zap.String("donor_id", donorID),
			zap.String("target_id", targetID),
			zap.String("target_type", string(targetType)),
		)
	}
	return reg, nil
}

func (c *Coordinator) register(ctx context.Context, donorID, targetID string, targetType repository.TargetType) (*repository.Registration, bool, error) {
	const op = "register"
	if donorID == "" || targetID == "" {
		return nil, false, invalidInput("donor and target are required")
	}

	donor, err := c.store.GetDonor(ctx, donorID)
	if err != nil {
		return nil, false, translate(op, err)
	}
	res, err := c.gate.Resolve(ctx, donorID)
	if err != nil {
		return nil, false, translate(op, err)
	}
	if !res.Eligible {
		return nil, false, &NotEligibleError{
			Resolution:   res,
			Reason:       res.Reason,
			ScreeningURL: c.gate.ScreeningURL(donorID, targetID),
		}
	}

	now := c.now()
	reg := &repository.Registration{
		ID:        uuid.NewString(),
		DonorID:   donorID,
		Status:    repository.StatusBooked,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var (
		hospitalID string
		targetName string
	)
	switch targetType {
	case repository.TargetCampaign:
		campaign, err := c.store.GetCampaign(ctx, targetID)
		if err != nil {
			return nil, false, translate(op, err)
		}
		if campaign.Status != repository.CampaignActive {
			return nil, false, fmt.Errorf("%w: campaign %q is %s", ErrInvalidTransition, campaign.Name, campaign.Status)
		}
		if len(campaign.TargetBloodGroups) > 0 && !contains(campaign.TargetBloodGroups, donor.BloodGroup) {
			return nil, false, &NotEligibleError{
				Resolution: res,
				Reason:     fmt.Sprintf("campaign %q accepts blood groups %s only", campaign.Name, joinGroups(campaign.TargetBloodGroups)),
			}
		}
		reg.CampaignID = &campaign.ID
		hospitalID, targetName = campaign.HospitalID, campaign.Name
	case repository.TargetBloodRequest:
		req, err := c.store.GetBloodRequest(ctx, targetID)
		if err != nil {
			return nil, false, translate(op, err)
		}
		if req.Status != repository.RequestOpen {
			return nil, false, fmt.Errorf("%w: blood request %q is %s", ErrInvalidTransition, req.Name, req.Status)
		}
		reg.BloodRequestID = &req.ID
		hospitalID, targetName = req.HospitalID, req.Name
	default:
		return nil, false, invalidInput("unknown target type %q", targetType)
	}

	saved, created, err := c.store.CreateExclusiveRegistration(ctx, reg)
	if err != nil {
		return nil, false, translate(op, err)
	}

	// Recompute on replays too, so a retry after a failed recompute converges.
	if saved.CampaignID != nil {
		if _, err := c.recompute(ctx, *saved.CampaignID); err != nil {
			return nil, false, translate(op, err)
		}
	}

	if created {
		c.notify(ctx, notifier.Notification{
			RecipientID: hospitalID,
			Title:       "New donor registration",
			Body:        fmt.Sprintf("%s registered for %s.", donor.Name, targetName),
			ActionType:  notifier.ActionRegistrationCreated,
			ActionURL:   targetURL(targetType, targetID),
			Metadata: map[string]string{
				"registration_id": saved.ID,
				"donor_id":        donorID,
				"target_id":       targetID,
				"target_type":     string(targetType),
			},
		})
	}
	return saved, created, nil
}

// CheckIn admits a booked donor on the campaign's scheduled day and assigns
// the next queue number. Checking in twice returns the first result.
func (c *Coordinator) CheckIn(ctx context.Context, registrationID, campaignID string) (*repository.Registration, error) {
	const op = "check_in"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reg, changed, err := c.store.CheckIn(ctx, registrationID, campaignID, c.now(), c.checkInGuard)
	if err != nil {
		return nil, reject(op, translate(op, err))
	}
	if _, err := c.recompute(ctx, campaignID); err != nil {
		return nil, reject(op, translate(op, err))
	}

	if changed {
		metrics.CheckInsTotal.Inc()
		metrics.RegistrationTransitionsTotal.WithLabelValues(string(repository.StatusCheckedIn)).Inc()
		queue := 0
		if reg.QueueNumber != nil {
			queue = *reg.QueueNumber
		}
		c.logger.Info("donor checked in",
			zap.String("registration_id", reg.ID),
			zap.String("campaign_id", campaignID),
			zap.Int("queue_number", queue),
		)
		c.notify(ctx, notifier.Notification{
			RecipientID: reg.DonorID,
			Title:       "You are checked in",
			Body:        fmt.Sprintf("Your queue number is %d.", queue),
			ActionType:  notifier.ActionRegistrationStatus,
			ActionURL:   registrationURL(reg.ID),
			Metadata: map[string]string{
				"registration_id": reg.ID,
				"status":          string(reg.Status),
				"queue_number":    fmt.Sprint(queue),
			},
		})
	}
	return reg, nil
}

type CompleteInput struct {
	RegistrationID string
	// DonorID and HospitalID, when set, must match the registration.
	DonorID    string
	HospitalID string
	VolumeMl   int
	BloodGroup string
}

type CompleteResult struct {
	Registration *repository.Registration
	// Metrics is set for campaign registrations.
	Metrics     *CampaignView
	GoalReached bool
}

// CompleteDonation records a finished donation from booked or checked_in.
// A volume outside the permitted set is recorded as DefaultVolumeMl.
func (c *Coordinator) CompleteDonation(ctx context.Context, in CompleteInput) (*CompleteResult, error) {
	const op = "complete_donation"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.completeDonation(ctx, in)
	if err != nil {
		return nil, reject(op, err)
	}
	return res, nil
}

func (c *Coordinator) completeDonation(ctx context.Context, in CompleteInput) (*CompleteResult, error) {
	const op = "complete_donation"
	if in.BloodGroup != "" && !repository.ValidBloodGroup(in.BloodGroup) {
		return nil, invalidInput("unknown blood group %q", in.BloodGroup)
	}

	current, err := c.store.GetRegistration(ctx, in.RegistrationID)
	if err != nil {
		return nil, translate(op, err)
	}
	if in.DonorID != "" && current.DonorID != in.DonorID {
		return nil, fmt.Errorf("%w: registration %s of donor %s", ErrNotFound, in.RegistrationID, in.DonorID)
	}
	hospitalID, targetName, err := c.owner(ctx, current)
	if err != nil {
		return nil, translate(op, err)
	}
	if in.HospitalID != "" && hospitalID != in.HospitalID {
		return nil, fmt.Errorf("%w: registration %s at hospital %s", ErrNotFound, in.RegistrationID, in.HospitalID)
	}

	volume := NormalizeVolume(in.VolumeMl)
	now := c.now()
	tr, err := c.store.Transition(ctx, in.RegistrationID, storage.Transition{
		From: repository.ActiveStatuses,
		To:   repository.StatusCompleted,
		At:   now,
		Apply: func(reg *repository.Registration) {
			reg.DonatedVolumeMl = &volume
			reg.CompletedAt = &now
			if in.BloodGroup != "" {
				group := in.BloodGroup
				reg.BloodGroup = &group
			}
		},
	})
	if err != nil {
		return nil, translate(op, err)
	}
	reg := tr.Registration

	out := &CompleteResult{Registration: reg}
	if reg.CampaignID != nil {
		rc, err := c.recompute(ctx, *reg.CampaignID)
		if err != nil {
			return nil, translate(op, err)
		}
		out.Metrics = viewOf(rc.Campaign)
		out.GoalReached = rc.GoalReachedNow
	}

	if tr.Changed {
		metrics.DonationsCompletedTotal.Inc()
		metrics.RegistrationTransitionsTotal.WithLabelValues(string(repository.StatusCompleted)).Inc()
		if reg.DonatedVolumeMl != nil {
			metrics.CollectedVolumeMl.Add(float64(*reg.DonatedVolumeMl))
		}
		c.logger.Info("donation completed",
			zap.String("registration_id", reg.ID),
			zap.String("donor_id", reg.DonorID),
			zap.Int("volume_ml", volume),
		)
		c.notify(ctx, notifier.Notification{
			RecipientID: reg.DonorID,
			Title:       "Thank you for donating",
			Body:        fmt.Sprintf("Your donation of %d ml at %s has been recorded.", volume, targetName),
			ActionType:  notifier.ActionDonationThanks,
			ActionURL:   registrationURL(reg.ID),
			Metadata: map[string]string{
				"registration_id": reg.ID,
				"volume_ml":       fmt.Sprint(volume),
			},
		})
	}
	if tr.RequestClosed && reg.BloodRequestID != nil {
		c.logger.Info("blood request filled", zap.String("blood_request_id", *reg.BloodRequestID))
		c.notify(ctx, notifier.Notification{
			RecipientID: hospitalID,
			Title:       "Blood request filled",
			Body:        fmt.Sprintf("%s has received all required units.", targetName),
			ActionType:  notifier.ActionRequestFilled,
			ActionURL:   targetURL(repository.TargetBloodRequest, *reg.BloodRequestID),
			Metadata:    map[string]string{"blood_request_id": *reg.BloodRequestID},
		})
	}
	return out, nil
}

// DeferOrCancel ends a booked or checked-in registration without a donation.
// StatusRejected applies to blood request registrations only. The queue
// number stays on the record.
func (c *Coordinator) DeferOrCancel(ctx context.Context, registrationID string, target repository.RegistrationStatus) (*repository.Registration, error) {
	const op = "defer_or_cancel"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reg, err := c.deferOrCancel(ctx, registrationID, target)
	return reg, reject(op, err)
}

func (c *Coordinator) deferOrCancel(ctx context.Context, registrationID string, target repository.RegistrationStatus) (*repository.Registration, error) {
	const op = "defer_or_cancel"
	switch target {
	case repository.StatusDeferred, repository.StatusCancelled, repository.StatusRejected:
	default:
		return nil, invalidInput("status %q cannot end a registration", target)
	}

	current, err := c.store.GetRegistration(ctx, registrationID)
	if err != nil {
		return nil, translate(op, err)
	}
	if target == repository.StatusRejected && current.BloodRequestID == nil {
		return nil, &TransitionError{From: current.Status, To: target}
	}

	tr, err := c.store.Transition(ctx, registrationID, storage.Transition{
		From: repository.ActiveStatuses,
		To:   target,
		At:   c.now(),
	})
	if err != nil {
		return nil, translate(op, err)
	}
	if err := c.afterTransition(ctx, op, tr); err != nil {
		return nil, err
	}
	return tr.Registration, nil
}

// Reopen puts a terminated registration back to booked after a staff
// mistake. Volume and completion time are cleared, the queue number is
// kept. The donor must not hold another active registration.
func (c *Coordinator) Reopen(ctx context.Context, registrationID string) (*repository.Registration, error) {
	const op = "reopen"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tr, err := c.store.Transition(ctx, registrationID, storage.Transition{
		From: []repository.RegistrationStatus{
			repository.StatusCompleted,
			repository.StatusDeferred,
			repository.StatusCancelled,
			repository.StatusRejected,
		},
		To: repository.StatusBooked,
		At: c.now(),
		Apply: func(reg *repository.Registration) {
			reg.DonatedVolumeMl = nil
			reg.CompletedAt = nil
		},
	})
	if err != nil {
		return nil, reject(op, translate(op, err))
	}
	if err := c.afterTransition(ctx, op, tr); err != nil {
		return nil, reject(op, err)
	}
	return tr.Registration, nil
}

func (c *Coordinator) afterTransition(ctx context.Context, op string, tr *storage.TransitionResult) error {
	reg := tr.Registration
	if reg.CampaignID != nil {
		if _, err := c.recompute(ctx, *reg.CampaignID); err != nil {
			return translate(op, err)
		}
	}
	if !tr.Changed {
		return nil
	}

	metrics.RegistrationTransitionsTotal.WithLabelValues(string(reg.Status)).Inc()
	c.logger.Info("registration status changed",
		zap.String("registration_id", reg.ID),
		zap.String("from", string(tr.Previous)),
		zap.String("to", string(reg.Status)),
	)
	c.notify(ctx, notifier.Notification{
		RecipientID: reg.DonorID,
		Title:       "Registration updated",
		Body:        fmt.Sprintf("Your registration is now %s.", statusLabel(reg.Status)),
		ActionType:  notifier.ActionRegistrationStatus,
		ActionURL:   registrationURL(reg.ID),
		Metadata: map[string]string{
			"registration_id": reg.ID,
			"previous_status": string(tr.Previous),
			"status":          string(reg.Status),
		},
	})
	return nil
}

// CorrectBloodGroup lets staff fix the recorded blood group until the
// donation is completed.
func (c *Coordinator) CorrectBloodGroup(ctx context.Context, registrationID, group string) (*repository.Registration, error) {
	const op = "correct_blood_group"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if !repository.ValidBloodGroup(group) {
		return nil, reject(op, invalidInput("unknown blood group %q", group))
	}
	reg, err := c.store.Amend(ctx, registrationID, storage.Amendment{
		While: repository.ActiveStatuses,
		At:    c.now(),
		Apply: func(reg *repository.Registration) {
			reg.BloodGroup = &group
		},
	})
	if err != nil {
		return nil, reject(op, translate(op, err))
	}
	return reg, nil
}

func (c *Coordinator) Registration(ctx context.Context, id string) (*repository.Registration, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reg, err := c.store.GetRegistration(ctx, id)
	return reg, translate("get_registration", err)
}

// DonorRegistrations lists the donor's history, newest first.
func (c *Coordinator) DonorRegistrations(ctx context.Context, donorID string) ([]*repository.Registration, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.store.GetDonor(ctx, donorID); err != nil {
		return nil, translate("donor_registrations", err)
	}
	regs, err := c.store.ListDonorRegistrations(ctx, donorID)
	if err != nil {
		return nil, translate("donor_registrations", err)
	}
	return regs, nil
}

// owner returns the hospital and display name of the registration's target.
func (c *Coordinator) owner(ctx context.Context, reg *repository.Registration) (string, string, error) {
	id, targetType := reg.TargetID()
	switch targetType {
	case repository.TargetCampaign:
		campaign, err := c.store.GetCampaign(ctx, id)
		if err != nil {
			return "", "", err
		}
		return campaign.HospitalID, campaign.Name, nil
	case repository.TargetBloodRequest:
		req, err := c.store.GetBloodRequest(ctx, id)
		if err != nil {
			return "", "", err
		}
		return req.HospitalID, req.Name, nil
	}
	return "", "", fmt.Errorf("registration %s has no target: %w", reg.ID, repository.ErrObjectNotFound)
}

// recompute refreshes the campaign aggregates. Whichever call first stamps
// the goal sends the goal notification, whatever operation it runs under.
func (c *Coordinator) recompute(ctx context.Context, campaignID string) (*storage.RecomputeResult, error) {
	started := time.Now()
	res, err := c.store.RecomputeCampaign(ctx, campaignID, c.now())
	metrics.AggregateRecomputeDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return nil, fmt.Errorf("recompute campaign %s: %w", campaignID, err)
	}
	if res.GoalReachedNow {
		c.notifyGoalReached(ctx, res.Campaign)
	}
	return res, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
