package api

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/Domenick1991/airport/internal/service/orders"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

var _ flights.FlightUseCase = (*MockFlightUseCase)(nil)

func (m *MockFlightUseCase) List(ctx context.Context, filter repository.FlightFilter, page repository.Page) ([]domain.Flight, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Flight), args.Int(1), args.Error(2)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, p domain.Principal, f domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, p, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, p domain.Principal, f domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, p, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

// MockOrderUseCase is a mock implementation of orders.OrderUseCase
type MockOrderUseCase struct {
	mock.Mock
}

var _ orders.OrderUseCase = (*MockOrderUseCase)(nil)

func (m *MockOrderUseCase) CreateOrder(ctx context.Context, p domain.Principal, specs []domain.TicketSpec) (*domain.Order, error) {
	args := m.Called(ctx, p, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) UpdateOrder(ctx context.Context, p domain.Principal, id int64, specs []domain.TicketSpec) (*domain.Order, error) {
	args := m.Called(ctx, p, id, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) GetOrder(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(ctx context.Context, p domain.Principal, filter repository.OrderFilter, page repository.Page) ([]domain.Order, int, error) {
	args := m.Called(ctx, p, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderUseCase) DeleteOrder(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockOrderUseCase) ListTickets(ctx context.Context, p domain.Principal, filter repository.TicketFilter, page repository.Page) ([]domain.Ticket, int, error) {
	args := m.Called(ctx, p, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Ticket), args.Int(1), args.Error(2)
}

func (m *MockOrderUseCase) GetTicket(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockOrderUseCase) UpdateTicket(ctx context.Context, p domain.Principal, id int64, spec domain.TicketSpec) (*domain.Ticket, error) {
	args := m.Called(ctx, p, id, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockOrderUseCase) DeleteTicket(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

// MockCatalogUseCase is a mock implementation of catalog.CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

var _ catalog.CatalogUseCase = (*MockCatalogUseCase)(nil)

func (m *MockCatalogUseCase) ListAirports(ctx context.Context, filter repository.AirportFilter, page repository.Page) ([]domain.Airport, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Airport), args.Int(1), args.Error(2)
}

func (m *MockCatalogUseCase) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockCatalogUseCase) CreateAirport(ctx context.Context, p domain.Principal, a domain.Airport) (*domain.Airport, error) {
	args := m.Called(ctx, p, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateAirport(ctx context.Context, p domain.Principal, a domain.Airport) (*domain.Airport, error) {
	args := m.Called(ctx, p, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteAirport(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockCatalogUseCase) ListRoutes(ctx context.Context, filter repository.RouteFilter, page repository.Page) ([]domain.Route, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Route), args.Int(1), args.Error(2)
}

func (m *MockCatalogUseCase) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockCatalogUseCase) CreateRoute(ctx context.Context, p domain.Principal, r domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, p, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateRoute(ctx context.Context, p domain.Principal, r domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, p, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteRoute(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockCatalogUseCase) ListAirplaneTypes(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.AirplaneType, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockCatalogUseCase) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogUseCase) CreateAirplaneType(ctx context.Context, p domain.Principal, t domain.AirplaneType) (*domain.AirplaneType, error) {
	args := m.Called(ctx, p, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateAirplaneType(ctx context.Context, p domain.Principal, t domain.AirplaneType) (*domain.AirplaneType, error) {
	args := m.Called(ctx, p, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteAirplaneType(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockCatalogUseCase) ListAirplanes(ctx context.Context, filter repository.NameFilter, page repository.Page) ([]domain.Airplane, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Airplane), args.Int(1), args.Error(2)
}

func (m *MockCatalogUseCase) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockCatalogUseCase) CreateAirplane(ctx context.Context, p domain.Principal, a domain.Airplane) (*domain.Airplane, error) {
	args := m.Called(ctx, p, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateAirplane(ctx context.Context, p domain.Principal, a domain.Airplane) (*domain.Airplane, error) {
	args := m.Called(ctx, p, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteAirplane(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockCatalogUseCase) ListCrews(ctx context.Context, filter repository.CrewFilter, page repository.Page) ([]domain.Crew, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Crew), args.Int(1), args.Error(2)
}

func (m *MockCatalogUseCase) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCatalogUseCase) CreateCrew(ctx context.Context, p domain.Principal, c domain.Crew) (*domain.Crew, error) {
	args := m.Called(ctx, p, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateCrew(ctx context.Context, p domain.Principal, c domain.Crew) (*domain.Crew, error) {
	args := m.Called(ctx, p, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteCrew(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}
