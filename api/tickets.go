package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/orders"
	"github.com/gin-gonic/gin"
)

// TicketHandler exposes tickets directly. Tickets are only created through orders.
type TicketHandler struct {
	service orders.OrderUseCase
}

func NewTicketHandler(service orders.OrderUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *TicketHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	filter := repository.TicketFilter{Route: c.Query("route")}
	if raw := c.Query("id"); raw != "" {
		from, to, err := parseIDRange(raw)
		if err != nil {
			badRequest(c, "id", err.Error())
			return
		}
		if from == to {
			filter.ID = from
		} else {
			filter.IDFrom, filter.IDTo = from, to
		}
	}
	tickets, total, err := h.service.ListTickets(c.Request.Context(), principal(c), filter, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, tickets, ticketShape))
}

func (h *TicketHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ticket, err := h.service.GetTicket(c.Request.Context(), principal(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketShape(*ticket))
}

func (h *TicketHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ticketRequest
	if !bindJSON(c, &req) {
		return
	}
	ticket, err := h.service.UpdateTicket(c.Request.Context(), principal(c), id, req.spec())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketShape(*ticket))
}

func (h *TicketHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTicket(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
