package coordinator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.com/bloodcamp/coordinator/internal/metrics"
	"gitlab.com/bloodcamp/coordinator/internal/notifier"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

const notifyTimeout = 3 * time.Second

// notify hands n to the notifier and swallows any failure. It runs detached
// from ctx cancellation so a finished operation still gets its message out.
func (c *Coordinator) notify(ctx context.Context, n notifier.Notification) {
	if c.notifier == nil || n.RecipientID == "" {
		return
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := c.notifier.Notify(nctx, n); err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(n.ActionType).Inc()
		c.logger.Warn("notification failed",
			zap.String("recipient_id", n.RecipientID),
			zap.String("action_type", n.ActionType),
			zap.Error(err),
		)
	}
}

func (c *Coordinator) notifyGoalReached(ctx context.Context, campaign *repository.Campaign) {
	c.logger.Info("campaign goal reached",
		zap.String("campaign_id", campaign.ID),
		zap.Int("collected_volume_ml", campaign.CollectedVolumeMl),
		zap.Int("target_volume_ml", campaign.TargetVolumeMl),
	)
	metrics.GoalsReachedTotal.Inc()
	c.notify(ctx, notifier.Notification{
		RecipientID: campaign.HospitalID,
		Title:       "Campaign goal reached",
		Body:        fmt.Sprintf("%s collected %d ml of its %d ml target.", campaign.Name, campaign.CollectedVolumeMl, campaign.TargetVolumeMl),
		ActionType:  notifier.ActionGoalReached,
		ActionURL:   targetURL(repository.TargetCampaign, campaign.ID),
		Metadata: map[string]string{
			"campaign_id":         campaign.ID,
			"collected_volume_ml": fmt.Sprint(campaign.CollectedVolumeMl),
		},
	})
}

// fanOut sends template to every donor in city whose blood group is in
// groups (all groups when empty). It never fails the caller.
func (c *Coordinator) fanOut(ctx context.Context, city string, groups []string, template notifier.Notification) {
	donors, err := c.store.ListMatchingDonors(ctx, city, groups)
	if err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(template.ActionType).Inc()
		c.logger.Warn("failed to list donors for notification", zap.String("city", city), zap.Error(err))
		return
	}

	var g errgroup.Group
	g.SetLimit(c.fanOutWorkers)
	for _, donor := range donors {
		n := template
		n.RecipientID = donor.ID
		g.Go(func() error {
			c.notify(ctx, n)
			return nil
		})
	}
	_ = g.Wait()
	c.logger.Debug("notification fan-out done",
		zap.String("action_type", template.ActionType),
		zap.Int("recipients", len(donors)),
	)
}

func targetURL(targetType repository.TargetType, id string) string {
	if targetType == repository.TargetBloodRequest {
		return "/blood-requests/" + id
	}
	return "/campaigns/" + id
}

func registrationURL(id string) string {
	return "/registrations/" + id
}

func statusLabel(s repository.RegistrationStatus) string {
	switch s {
	case repository.StatusCheckedIn:
		return "checked in"
	default:
		return string(s)
	}
}
