package flights

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/Domenick1991/airport/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter repository.FlightFilter, page repository.Page) ([]domain.Flight, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, p domain.Principal, f domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, p domain.Principal, f domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, p domain.Principal, id int64) error
}

// FlightCache stores flight listings under a version that every write bumps.
type FlightCache interface {
	FlightsVersion(ctx context.Context) (int64, error)
	GetFlights(ctx context.Context, version int64, filterKey string) ([]domain.Flight, int, error)
	SetFlights(ctx context.Context, version int64, filterKey string, flights []domain.Flight, total int) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	tx    repository.Transactor
	cache FlightCache
}

func NewFlightService(repo repository.FlightRepository, tx repository.Transactor, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, tx: tx, cache: cache}
}

func (s *FlightService) List(ctx context.Context, filter repository.FlightFilter, page repository.Page) ([]domain.Flight, int, error) {
	key := FilterKey(filter, page)

	var (
		version int64
		cached  bool
	)
	if s.cache != nil {
		v, err := s.cache.FlightsVersion(ctx)
		if err == nil {
			version, cached = v, true
			if flights, total, err := s.cache.GetFlights(ctx, version, key); err == nil && flights != nil {
				metrics.FlightsCache.WithLabelValues("hit").Inc()
				return flights, total, nil
			}
			metrics.FlightsCache.WithLabelValues("miss").Inc()
		} else {
			metrics.FlightsCache.WithLabelValues("error").Inc()
			slog.WarnContext(ctx, "flights cache unavailable", "error", err)
		}
	}

	flights, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	if cached {
		_ = s.cache.SetFlights(ctx, version, key, flights, total)
	}
	return flights, total, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, p domain.Principal, f domain.Flight) (*domain.Flight, error) {
	f.ID = 0
	return s.save(ctx, p, f, s.repo.Create)
}

func (s *FlightService) Update(ctx context.Context, p domain.Principal, f domain.Flight) (*domain.Flight, error) {
	return s.save(ctx, p, f, s.repo.Update)
}

// save validates f, then locks the crew rows and checks for overlapping
// assignments before persisting, all in one transaction.
func (s *FlightService) save(ctx context.Context, p domain.Principal, f domain.Flight, persist func(context.Context, *domain.Flight) error) (*domain.Flight, error) {
	if !p.IsStaff {
		return nil, domain.ErrForbidden
	}
	f.Accounted = false
	if err := f.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.LockCrew(ctx, f.CrewIDs); err != nil {
			return err
		}
		overlap, err := s.repo.HasCrewOverlap(ctx, f.CrewIDs, f.DepartureTime, f.ArrivalTime, f.ID)
		if err != nil {
			return fmt.Errorf("check crew overlap: %w", err)
		}
		if overlap {
			return domain.FieldError("crew", domain.ErrCrewOverlap)
		}
		return persist(ctx, &f)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.repo.GetByID(ctx, f.ID)
}

func (s *FlightService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if !p.IsStaff {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate flights cache", "error", err)
	}
}

// FilterKey renders filter and page into a stable cache key. Name filters are
// matched case-insensitively, so they are lower-cased.
func FilterKey(filter repository.FlightFilter, page repository.Page) string {
	var b strings.Builder
	if len(filter.IDs) > 0 {
		ids := make([]string, len(filter.IDs))
		for i, id := range filter.IDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		b.WriteString("ids=" + strings.Join(ids, ",") + ";")
	}
	str := func(name, v string) {
		if v != "" {
			b.WriteString(name + "=" + strings.ToLower(v) + ";")
		}
	}
	num := func(name string, v *int) {
		if v != nil {
			b.WriteString(name + "=" + strconv.Itoa(*v) + ";")
		}
	}
	str("from", filter.From)
	str("to", filter.To)
	str("plane", filter.PlaneName)
	str("dep_date", filter.DepartureDate)
	num("dep_hour", filter.DepartureHour)
	num("dep_min", filter.DepartureMinute)
	str("arr_date", filter.ArrivalDate)
	num("arr_hour", filter.ArrivalHour)
	num("arr_min", filter.ArrivalMinute)
	fmt.Fprintf(&b, "limit=%d;offset=%d", page.Limit, page.Offset)
	return b.String()
}

var _ FlightUseCase = (*FlightService)(nil)
