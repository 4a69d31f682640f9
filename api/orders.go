package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/orders"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service orders.OrderUseCase
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

// Register mounts the order routes. Extra middleware, such as idempotency,
// wraps order creation only.
func (h *OrderHandler) Register(router *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", append(createMiddleware, h.create)...)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// Row and seat are only required to be present. Their bounds depend on the
// airplane, so the service reports the seat before the row with the valid range.
type ticketRequest struct {
	Row    *int  `json:"row" binding:"required"`
	Seat   *int  `json:"seat" binding:"required"`
	Flight int64 `json:"flight" binding:"required,gt=0"`
}

func (r ticketRequest) spec() domain.TicketSpec {
	return domain.TicketSpec{Row: *r.Row, Seat: *r.Seat, FlightID: r.Flight}
}

type orderRequest struct {
	Tickets []ticketRequest `json:"tickets" binding:"dive"`
}

func (r orderRequest) specs() []domain.TicketSpec {
	specs := make([]domain.TicketSpec, 0, len(r.Tickets))
	for _, t := range r.Tickets {
		specs = append(specs, t.spec())
	}
	return specs
}

func (h *OrderHandler) list(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	ticketIDs, err := parseIDList(c.Query("ticket_id"))
	if err != nil {
		badRequest(c, "ticket_id", err.Error())
		return
	}
	orders, total, err := h.service.ListOrders(c.Request.Context(), principal(c), repository.OrderFilter{TicketIDs: ticketIDs}, page.window())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paged(page, total, orders, orderShape))
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), principal(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderShape(*order))
}

func (h *OrderHandler) create(c *gin.Context) {
	var req orderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.service.CreateOrder(c.Request.Context(), principal(c), req.specs())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderShape(*order))
}

func (h *OrderHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req orderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.service.UpdateOrder(c.Request.Context(), principal(c), id, req.specs())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderShape(*order))
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
