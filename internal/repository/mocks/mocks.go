// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Transactor runs fn inline without a database.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

var _ repository.Transactor = (*Transactor)(nil)

type AirportRepository struct {
	mock.Mock
}

func (m *AirportRepository) List(ctx context.Context, filter repository.AirportFilter, page repository.Page) ([]domain.Airport, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Airport), args.Int(1), args.Error(2)
}

func (m *AirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *AirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AirportRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type RouteRepository struct {
	mock.Mock
}

func (m *RouteRepository) List(ctx context.Context, filter repository.RouteFilter, page repository.Page) ([]domain.Route, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Route), args.Int(1), args.Error(2)
}

func (m *RouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *RouteRepository) Create(ctx context.Context, r *domain.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RouteRepository) Update(ctx context.Context, r *domain.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RouteRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type AirplaneTypeRepository struct {
	mock.Mock
}

func (m *AirplaneTypeRepository) List(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.AirplaneType, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.AirplaneType), args.Int(1), args.Error(2)
}

func (m *AirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *AirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *AirplaneTypeRepository) Update(ctx context.Context, t *domain.AirplaneType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *AirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type AirplaneRepository struct {
	mock.Mock
}

func (m *AirplaneRepository) List(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.Airplane, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Airplane), args.Int(1), args.Error(2)
}

func (m *AirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *AirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AirplaneRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type CrewRepository struct {
	mock.Mock
}

func (m *CrewRepository) List(ctx context.Context, filter repository.CrewFilter, page repository.Page) ([]domain.Crew, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Crew), args.Int(1), args.Error(2)
}

func (m *CrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *CrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CrewRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CrewRepository) AddFlyingHours(ctx context.Context, flightID int64, hours float64) (int64, error) {
	args := m.Called(ctx, flightID, hours)
	return args.Get(0).(int64), args.Error(1)
}

type FlightRepository struct {
	mock.Mock
}

func (m *FlightRepository) List(ctx context.Context, filter repository.FlightFilter, page repository.Page) ([]domain.Flight, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Flight), args.Int(1), args.Error(2)
}

func (m *FlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *FlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	return m.Called(ctx, f).Error(0)
}

func (m *FlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	return m.Called(ctx, f).Error(0)
}

func (m *FlightRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *FlightRepository) LockCrew(ctx context.Context, crewIDs []int64) error {
	return m.Called(ctx, crewIDs).Error(0)
}

func (m *FlightRepository) HasCrewOverlap(ctx context.Context, crewIDs []int64, departure, arrival time.Time, excludeFlightID int64) (bool, error) {
	args := m.Called(ctx, crewIDs, departure, arrival, excludeFlightID)
	return args.Bool(0), args.Error(1)
}

func (m *FlightRepository) ListUnaccounted(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *FlightRepository) ClaimForAccounting(ctx context.Context, id int64) (domain.Flight, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Flight), args.Bool(1), args.Error(2)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) List(ctx context.Context, filter repository.OrderFilter, page repository.Page) ([]domain.Order, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

func (m *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) List(ctx context.Context, filter repository.TicketFilter, page repository.Page) ([]domain.Ticket, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Ticket), args.Int(1), args.Error(2)
}

func (m *TicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *TicketRepository) SeatTaken(ctx context.Context, flightID int64, row, seat int, excludeTicketID int64) (bool, error) {
	args := m.Called(ctx, flightID, row, seat, excludeTicketID)
	return args.Bool(0), args.Error(1)
}

func (m *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TicketRepository) DeleteByOrder(ctx context.Context, orderID int64) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *TicketRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ repository.AirportRepository      = (*AirportRepository)(nil)
	_ repository.RouteRepository        = (*RouteRepository)(nil)
	_ repository.AirplaneTypeRepository = (*AirplaneTypeRepository)(nil)
	_ repository.AirplaneRepository     = (*AirplaneRepository)(nil)
	_ repository.CrewRepository         = (*CrewRepository)(nil)
	_ repository.FlightRepository       = (*FlightRepository)(nil)
	_ repository.OrderRepository        = (*OrderRepository)(nil)
	_ repository.TicketRepository       = (*TicketRepository)(nil)
)
