// Package catalog manages the reference data flights are built from:
// airports, routes, airplane types, airplanes and crew members.
package catalog

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type CatalogUseCase interface {
	ListAirports(ctx context.Context, filter repository.AirportFilter, page repository.Page) ([]domain.Airport, int, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, p domain.Principal, a domain.Airport) (*domain.Airport, error)
	UpdateAirport(ctx context.Context, p domain.Principal, a domain.Airport) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, p domain.Principal, id int64) error

	ListRoutes(ctx context.Context, filter repository.RouteFilter, page repository.Page) ([]domain.Route, int, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, p domain.Principal, r domain.Route) (*domain.Route, error)
	UpdateRoute(ctx context.Context, p domain.Principal, r domain.Route) (*domain.Route, error)
	DeleteRoute(ctx context.Context, p domain.Principal, id int64) error

	ListAirplaneTypes(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.AirplaneType, int, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, p domain.Principal, t domain.AirplaneType) (*domain.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, p domain.Principal, t domain.AirplaneType) (*domain.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, p domain.Principal, id int64) error

	ListAirplanes(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.Airplane, int, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, p domain.Principal, a domain.Airplane) (*domain.Airplane, error)
	UpdateAirplane(ctx context.Context, p domain.Principal, a domain.Airplane) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, p domain.Principal, id int64) error

	ListCrews(ctx context.Context, filter repository.CrewFilter, page repository.Page) ([]domain.Crew, int, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, p domain.Principal, c domain.Crew) (*domain.Crew, error)
	UpdateCrew(ctx context.Context, p domain.Principal, c domain.Crew) (*domain.Crew, error)
	DeleteCrew(ctx context.Context, p domain.Principal, id int64) error
}

// FlightsInvalidator drops cached flight listings, which embed catalog data.
type FlightsInvalidator interface {
	InvalidateFlights(ctx context.Context) error
}

type Repositories struct {
	Airports      repository.AirportRepository
	Routes        repository.RouteRepository
	AirplaneTypes repository.AirplaneTypeRepository
	Airplanes     repository.AirplaneRepository
	Crews         repository.CrewRepository
}

type CatalogService struct {
	repos Repositories
	cache FlightsInvalidator
}

type CatalogServiceOption func(*CatalogService)

func WithCache(cache FlightsInvalidator) CatalogServiceOption {
	return func(s *CatalogService) {
		s.cache = cache
	}
}

func NewCatalogService(repos Repositories, opts ...CatalogServiceOption) *CatalogService {
	s := &CatalogService{repos: repos}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func requireStaff(p domain.Principal) error {
	if !p.IsStaff {
		return domain.ErrForbidden
	}
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate flights cache", "error", err)
	}
}

func (s *CatalogService) ListAirports(ctx context.Context, filter repository.AirportFilter, page repository.Page) ([]domain.Airport, int, error) {
	return s.repos.Airports.List(ctx, filter, page)
}

func (s *CatalogService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.repos.Airports.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, p domain.Principal, a domain.Airport) (*domain.Airport, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Airports.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *CatalogService) UpdateAirport(ctx context.Context, p domain.Principal, a domain.Airport) (*domain.Airport, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Airports.Update(ctx, &a); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &a, nil
}

func (s *CatalogService) DeleteAirport(ctx context.Context, p domain.Principal, id int64) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	if err := s.repos.Airports.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListRoutes(ctx context.Context, filter repository.RouteFilter, page repository.Page) ([]domain.Route, int, error) {
	return s.repos.Routes.List(ctx, filter, page)
}

func (s *CatalogService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.repos.Routes.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, p domain.Principal, r domain.Route) (*domain.Route, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Routes.Create(ctx, &r); err != nil {
		return nil, err
	}
	return s.repos.Routes.GetByID(ctx, r.ID)
}

func (s *CatalogService) UpdateRoute(ctx context.Context, p domain.Principal, r domain.Route) (*domain.Route, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Routes.Update(ctx, &r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repos.Routes.GetByID(ctx, r.ID)
}

func (s *CatalogService) DeleteRoute(ctx context.Context, p domain.Principal, id int64) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	if err := s.repos.Routes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.AirplaneType, int, error) {
	return s.repos.AirplaneTypes.List(ctx, filter, page)
}

func (s *CatalogService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.repos.AirplaneTypes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, p domain.Principal, t domain.AirplaneType) (*domain.AirplaneType, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.AirplaneTypes.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *CatalogService) UpdateAirplaneType(ctx context.Context, p domain.Principal, t domain.AirplaneType) (*domain.AirplaneType, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.AirplaneTypes.Update(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *CatalogService) DeleteAirplaneType(ctx context.Context, p domain.Principal, id int64) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	if err := s.repos.AirplaneTypes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListAirplanes(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.Airplane, int, error) {
	return s.repos.Airplanes.List(ctx, filter, page)
}

func (s *CatalogService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.repos.Airplanes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, p domain.Principal, a domain.Airplane) (*domain.Airplane, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Airplanes.Create(ctx, &a); err != nil {
		return nil, err
	}
	return s.repos.Airplanes.GetByID(ctx, a.ID)
}

func (s *CatalogService) UpdateAirplane(ctx context.Context, p domain.Principal, a domain.Airplane) (*domain.Airplane, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Airplanes.Update(ctx, &a); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repos.Airplanes.GetByID(ctx, a.ID)
}

func (s *CatalogService) DeleteAirplane(ctx context.Context, p domain.Principal, id int64) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	if err := s.repos.Airplanes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListCrews(ctx context.Context, filter repository.CrewFilter, page repository.Page) ([]domain.Crew, int, error) {
	return s.repos.Crews.List(ctx, filter, page)
}

func (s *CatalogService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.repos.Crews.GetByID(ctx, id)
}

func (s *CatalogService) CreateCrew(ctx context.Context, p domain.Principal, c domain.Crew) (*domain.Crew, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Crews.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCrew renames a crew member. Flying hours in c are ignored; the
// returned value carries the stored hours.
func (s *CatalogService) UpdateCrew(ctx context.Context, p domain.Principal, c domain.Crew) (*domain.Crew, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	c.FlyingHours = 0
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Crews.Update(ctx, &c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &c, nil
}

func (s *CatalogService) DeleteCrew(ctx context.Context, p domain.Principal, id int64) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	if err := s.repos.Crews.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
