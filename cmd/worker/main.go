package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/email"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/accounting"
	"github.com/Domenick1991/airport/internal/worker"
	"github.com/go-co-op/gocron/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const publishBackoff = 500 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.FlightsCacheTTLDuration())
	defer redisCache.Close()

	opts := []accounting.AccountingServiceOption{
		accounting.WithLocker(redisCache, cfg.Worker.AccountingLockTTL()),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, kafka.WithRetries(cfg.Kafka.PublishAttempts, publishBackoff))
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logger.Warn("kafka unreachable at startup", "error", err)
		}
		opts = append(opts, accounting.WithProducer(producer, cfg.Kafka.FlightEventsTopic))
	}
	accountant := accounting.NewAccountingService(
		repository.NewTxManager(pool),
		repository.NewFlightRepository(pool),
		repository.NewCrewRepository(pool),
		opts...,
	)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Error("create scheduler", "error", err)
		os.Exit(1)
	}
	if _, err := worker.ScheduleAccounting(ctx, scheduler, accountant, cfg.Worker.AccountingInterval()); err != nil {
		logger.Error("schedule accounting", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	logger.Info("accounting scheduled", "interval", cfg.Worker.AccountingInterval())

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
		defer consumer.Close()

		sender := email.NewSender(logger)
		go func() {
			if err := consumer.Consume(ctx, worker.NotificationHandler(sender)); err != nil {
				logger.Error("consumer stopped", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down worker")
	if err := scheduler.Shutdown(); err != nil {
		logger.Error("scheduler shutdown", "error", err)
	}
}
