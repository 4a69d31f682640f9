package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirplaneTypeHandler struct {
	service catalog.CatalogUseCase
}

func NewAirplaneTypeHandler(service catalog.CatalogUseCase) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", auth.RequireStaff(), h.create)
	router.PUT("/:id", auth.RequireStaff(), h.update)
	router.DELETE("/:id", auth.RequireStaff(), h.delete)
}

type airplaneTypeRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	types, total, err := h.service.ListAirplaneTypes(c.Request.Context(), repository.NameFilter{Name: c.Query("name")}, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, types, airplaneTypeShape))
}

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeShape(*t))
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	var req airplaneTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.service.CreateAirplaneType(c.Request.Context(), principal(c), domain.AirplaneType{Name: req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneTypeShape(*t))
}

func (h *AirplaneTypeHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req airplaneTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.service.UpdateAirplaneType(c.Request.Context(), principal(c), domain.AirplaneType{ID: id, Name: req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeShape(*t))
}

func (h *AirplaneTypeHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type AirplaneHandler struct {
	service catalog.CatalogUseCase
}

func NewAirplaneHandler(service catalog.CatalogUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", auth.RequireStaff(), h.create)
	router.PUT("/:id", auth.RequireStaff(), h.update)
	router.DELETE("/:id", auth.RequireStaff(), h.delete)
}

type airplaneRequest struct {
	Name         string `json:"name" binding:"required,notblank"`
	Rows         int    `json:"rows" binding:"required,min=1"`
	SeatsInRow   int    `json:"seats_in_row" binding:"required,min=1"`
	AirplaneType int64  `json:"airplane_type" binding:"required,gt=0"`
}

func (r airplaneRequest) airplane(id int64) domain.Airplane {
	return domain.Airplane{ID: id, Name: r.Name, Rows: r.Rows, SeatsInRow: r.SeatsInRow, AirplaneTypeID: r.AirplaneType}
}

func (h *AirplaneHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	airplanes, total, err := h.service.ListAirplanes(c.Request.Context(), repository.NameFilter{Name: c.Query("name")}, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, airplanes, airplaneListShape))
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneShape(*airplane))
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req airplaneRequest
	if !bindJSON(c, &req) {
		return
	}
	airplane, err := h.service.CreateAirplane(c.Request.Context(), principal(c), req.airplane(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneShape(*airplane))
}

func (h *AirplaneHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req airplaneRequest
	if !bindJSON(c, &req) {
		return
	}
	airplane, err := h.service.UpdateAirplane(c.Request.Context(), principal(c), req.airplane(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneShape(*airplane))
}

func (h *AirplaneHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
