package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.com/bloodcamp/coordinator/internal/config"
	"gitlab.com/bloodcamp/coordinator/internal/coordinator"
	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
	"gitlab.com/bloodcamp/coordinator/internal/kafka"
	"gitlab.com/bloodcamp/coordinator/internal/logger"
	"gitlab.com/bloodcamp/coordinator/internal/notifier"
	"gitlab.com/bloodcamp/coordinator/internal/repository/postgresql"
	"gitlab.com/bloodcamp/coordinator/internal/server"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
	"gitlab.com/bloodcamp/coordinator/internal/storage/memory"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("config", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("coordinator stopped with error", zap.Error(err))
	}
	log.Info("coordinator gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	var (
		store     storage.Store
		notify    notifier.Notifier
		publisher *kafka.Publisher
	)

	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("using in-memory storage, state is lost on restart")
		store = memory.New()
		notify = notifier.NewLogNotifier(log)
	default:
		database, err := db.NewDb(ctx, cfg.DB.DSN(), 0)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.Migrate(ctx, database); err != nil {
			return err
		}

		store = storage.NewStorage(
			database,
			postgresql.NewDonorRepo(database),
			postgresql.NewCampaignRepo(database),
			postgresql.NewBloodRequestRepo(database),
			postgresql.NewRegistrationRepo(database),
		)

		outbox := postgresql.NewOutboxTaskRepo()
		notify = notifier.NewOutboxNotifier(database, outbox, cfg.Kafka.NotificationTopic)

		var producer kafka.Producer
		if len(cfg.Kafka.Brokers) > 0 {
			producer = kafka.NewWriterProducer(cfg.Kafka.Brokers)
		} else {
			log.Warn("KAFKA_BROKERS is empty, outbox tasks are only logged")
			producer = kafka.NewLogProducer(log)
		}
		publisher = kafka.NewPublisher(database, outbox, producer, kafka.PublisherConfig{
			PollInterval: cfg.Outbox.PollInterval,
			BatchSize:    cfg.Outbox.BatchSize,
			MaxAttempts:  cfg.Outbox.MaxAttempts,
		}, log)
	}

	var cache eligibility.VerdictCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, verdicts are read from storage", zap.Error(err))
		} else {
			cache = eligibility.NewRedisVerdictCache(client, cfg.Redis.VerdictTTL)
		}
	}

	gate := eligibility.NewGate(store, cache, cfg.Screener.BaseURL, log)

	var scorer eligibility.Scorer
	if cfg.Scorer.URL != "" {
		scorer = eligibility.NewHTTPScorer(cfg.Scorer.URL, cfg.Scorer.Timeout, cfg.Scorer.RetryCount, log)
	} else {
		log.Warn("SCORER_URL is empty, screening submissions are rejected")
		scorer = eligibility.UnavailableScorer{}
	}
	screening := eligibility.NewScreening(store, scorer, cache, cfg.Scorer.Timeout, log)

	coord := coordinator.New(store, gate, notify, coordinator.Options{
		Location:  cfg.Timezone,
		OpTimeout: cfg.OpTimeout,
	}, log)
	srv := server.New(coord, gate, screening, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})
	if publisher != nil {
		g.Go(func() error {
			publisher.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if publisher != nil {
			publisher.Shutdown()
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
