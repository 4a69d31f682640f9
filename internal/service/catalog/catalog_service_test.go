package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	staff    = domain.Principal{UserID: 1, IsStaff: true}
	customer = domain.Principal{UserID: 2}
)

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateFlights(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestCatalogService_CreateAirport(t *testing.T) {
	airports := &mocks.AirportRepository{}
	service := NewCatalogService(Repositories{Airports: airports})
	ctx := context.Background()

	airports.On("Create", ctx, mock.AnythingOfType("*domain.Airport")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Airport).ID = 10 }).
		Return(nil).Once()

	a, err := service.CreateAirport(ctx, staff, domain.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"})

	require.NoError(t, err)
	assert.EqualValues(t, 10, a.ID)
	airports.AssertExpectations(t)
}

func TestCatalogService_WritesRequireStaff(t *testing.T) {
	airports := &mocks.AirportRepository{}
	crews := &mocks.CrewRepository{}
	service := NewCatalogService(Repositories{Airports: airports, Crews: crews})
	ctx := context.Background()

	_, err := service.CreateAirport(ctx, customer, domain.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, service.DeleteCrew(ctx, customer, 3), domain.ErrForbidden)

	airports.AssertNotCalled(t, "Create")
	crews.AssertNotCalled(t, "Delete")
}

func TestCatalogService_CreateRoute_Validation(t *testing.T) {
	routes := &mocks.RouteRepository{}
	service := NewCatalogService(Repositories{Routes: routes})
	ctx := context.Background()

	_, err := service.CreateRoute(ctx, staff, domain.Route{SourceID: 1, DestinationID: 1, Distance: 100})

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "destination", vErr.Field)
	routes.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateRoute_ReturnsJoinedRoute(t *testing.T) {
	routes := &mocks.RouteRepository{}
	service := NewCatalogService(Repositories{Routes: routes})
	ctx := context.Background()

	joined := &domain.Route{ID: 4, SourceID: 1, DestinationID: 2, Distance: 100,
		Source: &domain.Airport{ID: 1, Name: "A"}, Destination: &domain.Airport{ID: 2, Name: "B"}}
	routes.On("Create", ctx, mock.AnythingOfType("*domain.Route")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Route).ID = 4 }).
		Return(nil).Once()
	routes.On("GetByID", ctx, int64(4)).Return(joined, nil).Once()

	r, err := service.CreateRoute(ctx, staff, domain.Route{SourceID: 1, DestinationID: 2, Distance: 100})

	require.NoError(t, err)
	assert.Equal(t, joined, r)
	routes.AssertExpectations(t)
}

func TestCatalogService_CreateAirplane_RejectsEmptyLayout(t *testing.T) {
	airplanes := &mocks.AirplaneRepository{}
	service := NewCatalogService(Repositories{Airplanes: airplanes})

	_, err := service.CreateAirplane(context.Background(), staff, domain.Airplane{Name: "UR-1", Rows: 0, SeatsInRow: 4, AirplaneTypeID: 1})

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "rows", vErr.Field)
	airplanes.AssertNotCalled(t, "Create")
}

func TestCatalogService_UpdateCrew_IgnoresFlyingHours(t *testing.T) {
	crews := &mocks.CrewRepository{}
	cache := &MockInvalidator{}
	service := NewCatalogService(Repositories{Crews: crews}, WithCache(cache))
	ctx := context.Background()

	crews.On("Update", ctx, mock.MatchedBy(func(c *domain.Crew) bool {
		return c.ID == 3 && c.FlyingHours == 0 && c.FirstName == "Ivan"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Crew).FlyingHours = 120.5
	}).Return(nil).Once()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	c, err := service.UpdateCrew(ctx, staff, domain.Crew{ID: 3, FirstName: "Ivan", LastName: "Petrenko", FlyingHours: 9999})

	require.NoError(t, err)
	assert.Equal(t, 120.5, c.FlyingHours)
	crews.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_DeleteAirport_NotFound(t *testing.T) {
	airports := &mocks.AirportRepository{}
	cache := &MockInvalidator{}
	service := NewCatalogService(Repositories{Airports: airports}, WithCache(cache))
	ctx := context.Background()

	airports.On("Delete", ctx, int64(99)).Return(domain.ErrNotFound).Once()

	err := service.DeleteAirport(ctx, staff, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}

func TestCatalogService_CacheFailureDoesNotFailWrite(t *testing.T) {
	airplanes := &mocks.AirplaneRepository{}
	cache := &MockInvalidator{}
	service := NewCatalogService(Repositories{Airplanes: airplanes}, WithCache(cache))
	ctx := context.Background()

	airplanes.On("Delete", ctx, int64(5)).Return(nil).Once()
	cache.On("InvalidateFlights", ctx).Return(errors.New("redis down")).Once()

	assert.NoError(t, service.DeleteAirplane(ctx, staff, 5))
	cache.AssertExpectations(t)
}

func TestCatalogService_ListCrews(t *testing.T) {
	crews := &mocks.CrewRepository{}
	service := NewCatalogService(Repositories{Crews: crews})
	ctx := context.Background()

	filter := repository.CrewFilter{LastName: "Koval"}
	page := repository.Page{Limit: 20}
	want := []domain.Crew{{ID: 1, FirstName: "Olena", LastName: "Koval"}}
	crews.On("List", ctx, filter, page).Return(want, 1, nil).Once()

	got, total, err := service.ListCrews(ctx, filter, page)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, want, got)
}
