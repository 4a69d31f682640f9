package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleFlight() *domain.Flight {
	dep := time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC)
	return &domain.Flight{
		ID:            1,
		RouteID:       3,
		AirplaneID:    4,
		CrewIDs:       []int64{7},
		DepartureTime: dep,
		ArrivalTime:   dep.Add(2*time.Hour + 15*time.Minute),
		Route: &domain.Route{
			ID: 3, Distance: 470,
			Source:      &domain.Airport{ID: 1, Name: "Boryspil"},
			Destination: &domain.Airport{ID: 2, Name: "Lviv"},
		},
		Airplane:         &domain.Airplane{ID: 4, Name: "UR-PSA", Rows: 30, SeatsInRow: 6, AirplaneType: &domain.AirplaneType{ID: 1, Name: "Boeing 737"}},
		Crew:             []domain.Crew{{ID: 7, FirstName: "Olena", LastName: "Koval"}},
		TicketsAvailable: 178,
	}
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newTestContext("GET", "/flights?id=1,2&from=bory&departure_date=2024-05-21&departure_hour=10&page=2&page_size=5", "", customer)

	expectedFilter := repository.FlightFilter{
		IDs:           []int64{1, 2},
		From:          "bory",
		DepartureDate: "2024-05-21",
		DepartureHour: ptr(10),
	}
	mockService.On("List", mock.Anything, expectedFilter, repository.Page{Limit: 5, Offset: 5}).
		Return([]domain.Flight{*sampleFlight()}, 6, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 6, body["count"])
	assert.EqualValues(t, 2, body["page"])
	results := body["results"].([]any)
	assert.Len(t, results, 1)
	item := results[0].(map[string]any)
	assert.Equal(t, "UR-PSA", item["airplane"])
	assert.Equal(t, map[string]any{"source": "Boryspil", "destination": "Lviv"}, item["route"])
	assert.EqualValues(t, 178, item["tickets_available"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_listRejectsBadFilters(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		field string
	}{
		{name: "hour out of range", query: "departure_hour=24", field: "departure_hour"},
		{name: "minute not a number", query: "arrival_minute=ab", field: "arrival_minute"},
		{name: "malformed date", query: "arrival_date=21.05.2024", field: "arrival_date"},
		{name: "bad id list", query: "id=1,x", field: "id"},
		{name: "page size too large", query: "page_size=500", field: "page_size"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFlightUseCase{}
			handler := NewFlightHandler(mockService)
			c, w := newTestContext("GET", "/flights?"+tc.query, "", customer)

			handler.list(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, fieldErrorsOf(t, w), tc.field)
			mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newTestContext("GET", "/flights/1", "", customer)
	withID(c, "1")
	mockService.On("GetByID", mock.Anything, int64(1)).Return(sampleFlight(), nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 2.25, body["flight_time"])
	assert.Equal(t, 470.0, body["distance"])
	crew := body["crew"].([]any)
	assert.Equal(t, "Olena", crew[0].(map[string]any)["first_name"])
	airplane := body["airplane"].(map[string]any)
	assert.EqualValues(t, 180, airplane["capacity"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_getNotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newTestContext("GET", "/flights/999", "", customer)
	withID(c, "999")
	mockService.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_getInvalidID(t *testing.T) {
	handler := NewFlightHandler(&MockFlightUseCase{})

	c, w := newTestContext("GET", "/flights/abc", "", customer)
	withID(c, "abc")

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	body := `{"route":3,"airplane":4,"crew":[7],"departure_time":"2024-05-21T10:00:00Z","arrival_time":"2024-05-21T12:15:00Z"}`
	c, w := newTestContext("POST", "/flights", body, staff)

	want := domain.Flight{
		RouteID:       3,
		AirplaneID:    4,
		CrewIDs:       []int64{7},
		DepartureTime: time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2024, 5, 21, 12, 15, 0, 0, time.UTC),
	}
	mockService.On("Create", mock.Anything, staff, want).Return(sampleFlight(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_createArrivalBeforeDeparture(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	body := `{"route":3,"airplane":4,"departure_time":"2024-05-21T10:00:00Z","arrival_time":"2024-05-21T09:00:00Z"}`
	c, w := newTestContext("POST", "/flights", body, staff)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, fieldErrorsOf(t, w), "arrival_time")
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightHandler_createCrewOverlap(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	body := `{"route":3,"airplane":4,"crew":[7],"departure_time":"2024-05-21T10:00:00Z","arrival_time":"2024-05-21T12:00:00Z"}`
	c, w := newTestContext("POST", "/flights", body, staff)
	mockService.On("Create", mock.Anything, staff, mock.Anything).Return(nil, domain.FieldError("crew", domain.ErrCrewOverlap))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrCrewOverlap.Error(), fieldErrorsOf(t, w)["crew"])
}

func TestFlightHandler_deleteInternalError(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	c, w := newTestContext("DELETE", "/flights/1", "", staff)
	withID(c, "1")
	mockService.On("Delete", mock.Anything, staff, int64(1)).Return(errors.New("connection reset"))

	handler.delete(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func ptr[T any](v T) *T {
	return &v
}
