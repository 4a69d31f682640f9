package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", auth.RequireStaff(), h.create)
	router.PUT("/:id", auth.RequireStaff(), h.update)
	router.DELETE("/:id", auth.RequireStaff(), h.delete)
}

type flightRequest struct {
	Route         int64     `json:"route" binding:"required,gt=0"`
	Airplane      int64     `json:"airplane" binding:"required,gt=0"`
	Crew          []int64   `json:"crew" binding:"dive,gt=0"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required,gtfield=DepartureTime"`
}

func (r flightRequest) flight(id int64) domain.Flight {
	return domain.Flight{
		ID:            id,
		RouteID:       r.Route,
		AirplaneID:    r.Airplane,
		CrewIDs:       r.Crew,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
	}
}

// flightFilter reads the listing filters, writing a 400 response on the first bad one.
func flightFilter(c *gin.Context) (repository.FlightFilter, bool) {
	filter := repository.FlightFilter{
		From:      c.Query("from"),
		To:        c.Query("to"),
		PlaneName: c.Query("plane_name"),
	}

	var err error
	if filter.IDs, err = parseIDList(c.Query("id")); err != nil {
		badRequest(c, "id", err.Error())
		return filter, false
	}

	dates := []struct {
		name string
		dst  *string
	}{
		{"departure_date", &filter.DepartureDate},
		{"arrival_date", &filter.ArrivalDate},
	}
	for _, d := range dates {
		if *d.dst, err = queryDate(c, d.name); err != nil {
			badRequest(c, d.name, err.Error())
			return filter, false
		}
	}

	clock := []struct {
		name string
		max  int
		dst  **int
	}{
		{"departure_hour", 23, &filter.DepartureHour},
		{"departure_minute", 59, &filter.DepartureMinute},
		{"arrival_hour", 23, &filter.ArrivalHour},
		{"arrival_minute", 59, &filter.ArrivalMinute},
	}
	for _, q := range clock {
		if *q.dst, err = queryInt(c, q.name, 0, q.max); err != nil {
			badRequest(c, q.name, err.Error())
			return filter, false
		}
	}
	return filter, true
}

func (h *FlightHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	filter, ok := flightFilter(c)
	if !ok {
		return
	}
	flights, total, err := h.service.List(c.Request.Context(), filter, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, flights, flightListShape))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightShape(*flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if !bindJSON(c, &req) {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), principal(c), req.flight(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flightShape(*flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req flightRequest
	if !bindJSON(c, &req) {
		return
	}
	flight, err := h.service.Update(c.Request.Context(), principal(c), req.flight(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightShape(*flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
