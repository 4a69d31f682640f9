package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airport/api"
	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/bootstrap"
	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/Domenick1991/airport/internal/service/orders"
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

	applied, err := repository.Migrate(ctx, pool)
	if err != nil {
		logger.Error("apply migrations", "error", err)
		os.Exit(1)
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", "files", applied)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.FlightsCacheTTLDuration())
	defer redisCache.Close()

	tx := repository.NewTxManager(pool)
	flightRepo := repository.NewFlightRepository(pool)

	catalogService := catalog.NewCatalogService(catalog.Repositories{
		Airports:      repository.NewAirportRepository(pool),
		Routes:        repository.NewRouteRepository(pool),
		AirplaneTypes: repository.NewAirplaneTypeRepository(pool),
		Airplanes:     repository.NewAirplaneRepository(pool),
		Crews:         repository.NewCrewRepository(pool),
	}, catalog.WithCache(redisCache))
	flightService := flights.NewFlightService(flightRepo, tx, redisCache)

	healthChecks := map[string]func(context.Context) error{
		"postgres": pool.Ping,
		"redis":    redisCache.Ping,
	}

	orderOpts := []orders.OrderServiceOption{orders.WithCache(redisCache)}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, kafka.WithRetries(cfg.Kafka.PublishAttempts, publishBackoff))
		defer producer.Close()
		healthChecks["kafka"] = producer.CheckConnection
		orderOpts = append(orderOpts,
			orders.WithProducer(producer, cfg.Kafka.OrderEventsTopic),
			orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	} else {
		logger.Warn("kafka brokers not configured, order events are disabled")
	}
	orderService := orders.NewOrderService(
		tx,
		repository.NewOrderRepository(pool),
		repository.NewTicketRepository(pool),
		flightRepo,
		orderOpts...,
	)

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	router := api.NewRouter(logger, tokens, api.Services{
		Catalog: catalogService,
		Flights: flightService,
		Orders:  orderService,
	}, api.RouterOptions{
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
		DefaultPageSize: cfg.Booking.DefaultPageSize,
		Idempotency:     redisCache,
		HealthChecks:    healthChecks,
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
