package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

const (
	ActionRegistrationCreated = "registration_created"
	ActionRegistrationStatus  = "registration_status"
	ActionGoalReached         = "campaign_goal_reached"
	ActionDonationThanks      = "donation_thanks"
	ActionCampaignNearby      = "campaign_nearby"
	ActionBloodRequestNearby  = "blood_request_nearby"
	ActionRequestFilled       = "blood_request_filled"
)

type Notification struct {
	RecipientID string
	Title       string
	Body        string
	ActionType  string
	ActionURL   string
	Metadata    map[string]string
}

// Notifier hands a notification to a delivery channel. Callers treat errors
// as non-fatal.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// OutboxNotifier writes every notification as an outbox task; the relay
// publishes it to Kafka later. The write is its own statement and never
// joins a registration transaction.
type OutboxNotifier struct {
	db      db.DB
	repo    storage.OutboxTaskRepository
	topic   string
	timeNow func() time.Time
}

func NewOutboxNotifier(database db.DB, repo storage.OutboxTaskRepository, topic string) *OutboxNotifier {
	return &OutboxNotifier{db: database, repo: repo, topic: topic, timeNow: time.Now}
}

func (n *OutboxNotifier) Notify(ctx context.Context, msg Notification) error {
	payload, err := json.Marshal(toPayload(msg, n.timeNow().UTC()))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	task := &repository.OutboxTask{Payload: payload, Topic: n.topic}
	if err := n.repo.Create(ctx, n.db, task); err != nil {
		return fmt.Errorf("failed to enqueue notification for %s: %w", msg.RecipientID, err)
	}
	return nil
}

func toPayload(msg Notification, at time.Time) repository.NotificationPayload {
	return repository.NotificationPayload{
		RecipientID: msg.RecipientID,
		Title:       msg.Title,
		Body:        msg.Body,
		ActionType:  msg.ActionType,
		ActionURL:   msg.ActionURL,
		Metadata:    msg.Metadata,
		CreatedAt:   at,
	}
}

// LogNotifier only logs. Used with the memory driver.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(zap.String("component", "notifier"))}
}

func (n *LogNotifier) Notify(_ context.Context, msg Notification) error {
	n.logger.Info("notification",
		zap.String("recipient_id", msg.RecipientID),
		zap.String("action_type", msg.ActionType),
		zap.String("title", msg.Title),
		zap.String("action_url", msg.ActionURL),
		zap.Any("metadata", msg.Metadata),
	)
	return nil
}
