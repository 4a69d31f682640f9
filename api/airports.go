package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service catalog.CatalogUseCase
}

func NewAirportHandler(service catalog.CatalogUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", auth.RequireStaff(), h.create)
	router.PUT("/:id", auth.RequireStaff(), h.update)
	router.DELETE("/:id", auth.RequireStaff(), h.delete)
}

type airportRequest struct {
	Name           string `json:"name" binding:"required,notblank"`
	ClosestBigCity string `json:"closest_big_city" binding:"required,notblank"`
}

func (r airportRequest) airport(id int64) domain.Airport {
	return domain.Airport{ID: id, Name: r.Name, ClosestBigCity: r.ClosestBigCity}
}

func (h *AirportHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	filter := repository.AirportFilter{Name: c.Query("name")}
	airports, total, err := h.service.ListAirports(c.Request.Context(), filter, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, airports, airportListShape))
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportShape(*airport))
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if !bindJSON(c, &req) {
		return
	}
	airport, err := h.service.CreateAirport(c.Request.Context(), principal(c), req.airport(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airportShape(*airport))
}

func (h *AirportHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req airportRequest
	if !bindJSON(c, &req) {
		return
	}
	airport, err := h.service.UpdateAirport(c.Request.Context(), principal(c), req.airport(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportShape(*airport))
}

func (h *AirportHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type RouteHandler struct {
	service catalog.CatalogUseCase
}

func NewRouteHandler(service catalog.CatalogUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", auth.RequireStaff(), h.create)
	router.PUT("/:id", auth.RequireStaff(), h.update)
	router.DELETE("/:id", auth.RequireStaff(), h.delete)
}

type routeRequest struct {
	Source      int64   `json:"source" binding:"required,gt=0"`
	Destination int64   `json:"destination" binding:"required,gt=0,nefield=Source"`
	Distance    float64 `json:"distance" binding:"required,gt=0"`
}

func (r routeRequest) route(id int64) domain.Route {
	return domain.Route{ID: id, SourceID: r.Source, DestinationID: r.Destination, Distance: r.Distance}
}

func (h *RouteHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	filter := repository.RouteFilter{From: c.Query("from"), To: c.Query("to")}
	routes, total, err := h.service.ListRoutes(c.Request.Context(), filter, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, routes, routeListShape))
}

func (h *RouteHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeShape(*route))
}

func (h *RouteHandler) create(c *gin.Context) {
	var req routeRequest
	if !bindJSON(c, &req) {
		return
	}
	route, err := h.service.CreateRoute(c.Request.Context(), principal(c), req.route(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeShape(*route))
}

func (h *RouteHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req routeRequest
	if !bindJSON(c, &req) {
		return
	}
	route, err := h.service.UpdateRoute(c.Request.Context(), principal(c), req.route(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeShape(*route))
}

func (h *RouteHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoute(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
