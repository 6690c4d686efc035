package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/config"
	"gitlab.com/bloodcamp/coordinator/internal/logger"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

// The consumer reads donor notifications relayed from the outbox and logs
// them; delivery channels (push, SMS) plug in here.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("config", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel).With(zap.String("component", "notification_consumer"))
	defer func() { _ = log.Sync() }()

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is empty")
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.ConsumerGroup,
		Topic:          cfg.Kafka.NotificationTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	log.Info("consumer connected",
		zap.String("topic", cfg.Kafka.NotificationTopic),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shutdown signal received, stopping consumer")
				return
			}
			log.Error("failed to read message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		var n repository.NotificationPayload
		if err := json.Unmarshal(m.Value, &n); err != nil {
			log.Warn("skipping malformed notification",
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
			continue
		}

		log.Info("notification",
			zap.String("recipient_id", n.RecipientID),
			zap.String("action_type", n.ActionType),
			zap.String("title", n.Title),
			zap.String("action_url", n.ActionURL),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.Time("created_at", n.CreatedAt),
		)
	}
}
