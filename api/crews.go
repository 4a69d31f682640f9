package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service catalog.CatalogUseCase
}

func NewCrewHandler(service catalog.CatalogUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", auth.RequireStaff(), h.create)
	router.PUT("/:id", auth.RequireStaff(), h.update)
	router.DELETE("/:id", auth.RequireStaff(), h.delete)
}

// flying_hours is only honoured on create; afterwards the accountant owns it.
type crewRequest struct {
	FirstName   string  `json:"first_name" binding:"required,notblank"`
	LastName    string  `json:"last_name" binding:"required,notblank"`
	FlyingHours float64 `json:"flying_hours" binding:"min=0"`
}

func (r crewRequest) crew(id int64) domain.Crew {
	return domain.Crew{ID: id, FirstName: r.FirstName, LastName: r.LastName, FlyingHours: r.FlyingHours}
}

func (h *CrewHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	filter := repository.CrewFilter{FirstName: c.Query("first_name"), LastName: c.Query("last_name")}
	crews, total, err := h.service.ListCrews(c.Request.Context(), filter, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, crews, crewShape))
}

func (h *CrewHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crewShape(*crew))
}

func (h *CrewHandler) create(c *gin.Context) {
	var req crewRequest
	if !bindJSON(c, &req) {
		return
	}
	crew, err := h.service.CreateCrew(c.Request.Context(), principal(c), req.crew(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crewShape(*crew))
}

func (h *CrewHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req crewRequest
	if !bindJSON(c, &req) {
		return
	}
	crew, err := h.service.UpdateCrew(c.Request.Context(), principal(c), req.crew(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crewShape(*crew))
}

func (h *CrewHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
