// Package accounting credits the duration of finished flights to their crew.
package accounting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/Domenick1991/airport/internal/repository"
)

const lockName = "accounting-pass"

type AccountingUseCase interface {
	RunPass(ctx context.Context) (PassResult, error)
}

// Locker is a best-effort cross-instance mutex. Correctness does not depend
// on it: every flight is claimed with a conditional update.
type Locker interface {
	AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, error)
	ReleaseLock(ctx context.Context, name, token string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type PassResult struct {
	// Skipped is set when another instance holds the run lock.
	Skipped    bool
	Pending    int
	NotArrived int
	Accounted  int
	Failed     int
	Hours      float64
}

type AccountingService struct {
	tx      repository.Transactor
	flights repository.FlightRepository
	crews   repository.CrewRepository

	locker   Locker
	lockTTL  time.Duration
	producer Producer
	topic    string
	now      func() time.Time
}

type AccountingServiceOption func(*AccountingService)

func WithLocker(locker Locker, ttl time.Duration) AccountingServiceOption {
	return func(s *AccountingService) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

func WithProducer(producer Producer, topic string) AccountingServiceOption {
	return func(s *AccountingService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithClock(now func() time.Time) AccountingServiceOption {
	return func(s *AccountingService) {
		s.now = now
	}
}

func NewAccountingService(tx repository.Transactor, flights repository.FlightRepository, crews repository.CrewRepository, opts ...AccountingServiceOption) *AccountingService {
	s := &AccountingService{tx: tx, flights: flights, crews: crews, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunPass credits every finished, unaccounted flight exactly once. It is safe
// to run concurrently and repeatedly. A failing flight is logged and left for
// the next pass.
func (s *AccountingService) RunPass(ctx context.Context) (PassResult, error) {
	var res PassResult

	if s.locker != nil {
		token, err := s.locker.AcquireLock(ctx, lockName, s.lockTTL)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "accounting lock unavailable, running unlocked", "error", err)
		case token == "":
			res.Skipped = true
			metrics.AccountingRuns.WithLabelValues("skipped").Inc()
			return res, nil
		default:
			defer func() {
				if err := s.locker.ReleaseLock(context.WithoutCancel(ctx), lockName, token); err != nil {
					slog.WarnContext(ctx, "failed to release accounting lock", "error", err)
				}
			}()
		}
	}

	pending, err := s.flights.ListUnaccounted(ctx)
	if err != nil {
		metrics.AccountingRuns.WithLabelValues("failed").Inc()
		return res, fmt.Errorf("list unaccounted flights: %w", err)
	}
	res.Pending = len(pending)

	now := s.now()
	for _, f := range pending {
		if err := ctx.Err(); err != nil {
			metrics.AccountingRuns.WithLabelValues("cancelled").Inc()
			return res, err
		}
		if !f.IsOver(now) {
			res.NotArrived++
			continue
		}

		hours, credited, claimed, err := s.accountFlight(ctx, f.ID)
		if err != nil {
			res.Failed++
			metrics.AccountingFailures.Inc()
			slog.ErrorContext(ctx, "failed to account flight", "flight_id", f.ID, "error", err)
			continue
		}
		if !claimed {
			continue
		}

		res.Accounted++
		res.Hours += hours
		metrics.FlightsAccounted.Inc()
		metrics.CrewHoursCredited.Add(hours * float64(credited))
		slog.InfoContext(ctx, "flight accounted", "flight_id", f.ID, "hours", hours, "crew", credited)
		s.publish(ctx, kafka.NewFlightAccountedEvent(f.ID, hours, credited))
	}

	metrics.AccountingRuns.WithLabelValues("completed").Inc()
	return res, nil
}

// accountFlight claims the flight and credits its crew in one transaction.
// The hours come from the claimed row, not from the listing.
func (s *AccountingService) accountFlight(ctx context.Context, id int64) (float64, int64, bool, error) {
	var (
		hours    float64
		credited int64
		claimed  bool
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		f, ok, err := s.flights.ClaimForAccounting(ctx, id)
		if err != nil || !ok {
			return err
		}
		hours = f.FlyingHours()
		credited, err = s.crews.AddFlyingHours(ctx, id, hours)
		if err != nil {
			return err
		}
		claimed = true
		return nil
	})
	if err != nil {
		return 0, 0, false, err
	}
	return hours, credited, claimed, nil
}

func (s *AccountingService) publish(ctx context.Context, event kafka.FlightAccountedEvent) {
	if s.producer == nil || s.topic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.topic, event.Key(), event); err != nil {
		slog.WarnContext(ctx, "failed to publish flight event", "flight_id", event.FlightID, "error", err)
	}
}

var _ AccountingUseCase = (*AccountingService)(nil)
