package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) FlightsVersion(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) GetFlights(ctx context.Context, version int64, filterKey string) ([]domain.Flight, int, error) {
	args := m.Called(ctx, version, filterKey)
	return args.Get(0).([]domain.Flight), args.Int(1), args.Error(2)
}

func (m *MockCache) SetFlights(ctx context.Context, version int64, filterKey string, flights []domain.Flight, total int) error {
	return m.Called(ctx, version, filterKey, flights, total).Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var (
	staff    = domain.Principal{UserID: 1, IsStaff: true}
	customer = domain.Principal{UserID: 2}

	departure = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	page      = repository.Page{Limit: 20}
)

func sampleFlights() []domain.Flight {
	return []domain.Flight{{
		ID:               4,
		RouteID:          1,
		AirplaneID:       2,
		DepartureTime:    departure,
		ArrivalTime:      departure.Add(2 * time.Hour),
		TicketsAvailable: 149,
	}}
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, mockCache)
	ctx := context.Background()

	filter := repository.FlightFilter{From: "Kyiv"}
	key := FilterKey(filter, page)
	flights := sampleFlights()

	mockCache.On("FlightsVersion", ctx).Return(int64(3), nil).Once()
	mockCache.On("GetFlights", ctx, int64(3), key).Return(([]domain.Flight)(nil), 0, nil).Once()
	mockRepo.On("List", ctx, filter, page).Return(flights, 1, nil).Once()
	mockCache.On("SetFlights", ctx, int64(3), key, flights, 1).Return(nil).Once()

	result, total, err := service.List(ctx, filter, page)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, flights, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, mockCache)
	ctx := context.Background()

	flights := sampleFlights()
	key := FilterKey(repository.FlightFilter{}, page)

	mockCache.On("FlightsVersion", ctx).Return(int64(0), nil).Once()
	mockCache.On("GetFlights", ctx, int64(0), key).Return(flights, 1, nil).Once()

	result, total, err := service.List(ctx, repository.FlightFilter{}, page)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, flights, result)
	mockRepo.AssertNotCalled(t, "List")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_List_CacheError(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, mockCache)
	ctx := context.Background()

	flights := sampleFlights()
	mockCache.On("FlightsVersion", ctx).Return(int64(0), errors.New("cache error")).Once()
	mockRepo.On("List", ctx, repository.FlightFilter{}, page).Return(flights, 1, nil).Once()

	result, _, err := service.List(ctx, repository.FlightFilter{}, page)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertNotCalled(t, "GetFlights")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_List_RepositoryError(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, nil)
	ctx := context.Background()

	expectedErr := errors.New("database error")
	mockRepo.On("List", ctx, repository.FlightFilter{}, page).Return([]domain.Flight{}, 0, expectedErr).Once()

	result, _, err := service.List(ctx, repository.FlightFilter{}, page)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, result)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, nil)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(999)).Return(nil, domain.ErrNotFound).Once()

	result, err := service.GetByID(ctx, 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, result)
}

func newFlight() domain.Flight {
	return domain.Flight{
		RouteID:       1,
		AirplaneID:    2,
		CrewIDs:       []int64{7, 8},
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
	}
}

func TestFlightService_Create(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	mockCache := &MockCache{}
	tx := &mocks.Transactor{}
	service := NewFlightService(mockRepo, tx, mockCache)
	ctx := context.Background()

	in := newFlight()
	stored := &domain.Flight{ID: 11, RouteID: 1, AirplaneID: 2, CrewIDs: in.CrewIDs}

	mockRepo.On("LockCrew", ctx, in.CrewIDs).Return(nil).Once()
	mockRepo.On("HasCrewOverlap", ctx, in.CrewIDs, in.DepartureTime, in.ArrivalTime, int64(0)).Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Flight).ID = 11 }).
		Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockRepo.On("GetByID", ctx, int64(11)).Return(stored, nil).Once()

	f, err := service.Create(ctx, staff, in)

	require.NoError(t, err)
	assert.Equal(t, stored, f)
	assert.Equal(t, 1, tx.Calls)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Create_CrewOverlap(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, mockCache)
	ctx := context.Background()

	in := newFlight()
	mockRepo.On("LockCrew", ctx, in.CrewIDs).Return(nil).Once()
	mockRepo.On("HasCrewOverlap", ctx, in.CrewIDs, in.DepartureTime, in.ArrivalTime, int64(0)).Return(true, nil).Once()

	_, err := service.Create(ctx, staff, in)

	assert.ErrorIs(t, err, domain.ErrCrewOverlap)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "crew", vErr.Field)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}

func TestFlightService_Update_ExcludesItself(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, nil)
	ctx := context.Background()

	in := newFlight()
	in.ID = 11
	in.Accounted = true

	mockRepo.On("LockCrew", ctx, in.CrewIDs).Return(nil).Once()
	mockRepo.On("HasCrewOverlap", ctx, in.CrewIDs, in.DepartureTime, in.ArrivalTime, int64(11)).Return(false, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(f *domain.Flight) bool { return f.ID == 11 && !f.Accounted })).Return(nil).Once()
	mockRepo.On("GetByID", ctx, int64(11)).Return(&domain.Flight{ID: 11}, nil).Once()

	_, err := service.Update(ctx, staff, in)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Create_Rejections(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	tx := &mocks.Transactor{}
	service := NewFlightService(mockRepo, tx, nil)
	ctx := context.Background()

	_, err := service.Create(ctx, customer, newFlight())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	bad := newFlight()
	bad.ArrivalTime = bad.DepartureTime
	_, err = service.Create(ctx, staff, bad)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "arrival_time", vErr.Field)

	assert.Zero(t, tx.Calls)
}

func TestFlightService_Delete(t *testing.T) {
	mockRepo := &mocks.FlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, &mocks.Transactor{}, mockCache)
	ctx := context.Background()

	assert.ErrorIs(t, service.Delete(ctx, customer, 3), domain.ErrForbidden)

	mockRepo.On("Delete", ctx, int64(3)).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	assert.NoError(t, service.Delete(ctx, staff, 3))
	mockCache.AssertExpectations(t)
}

func TestFilterKey(t *testing.T) {
	hour := 7
	key := FilterKey(repository.FlightFilter{
		IDs:           []int64{3, 1},
		From:          "KYIV",
		DepartureHour: &hour,
	}, repository.Page{Limit: 20, Offset: 40})

	assert.Equal(t, "ids=3,1;from=kyiv;dep_hour=7;limit=20;offset=40", key)
	assert.Equal(t, "limit=0;offset=0", FilterKey(repository.FlightFilter{}, repository.Page{}))
}
