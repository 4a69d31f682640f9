package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/Domenick1991/airport/internal/repository"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, p domain.Principal, specs []domain.TicketSpec) (*domain.Order, error)
	UpdateOrder(ctx context.Context, p domain.Principal, id int64, specs []domain.TicketSpec) (*domain.Order, error)
	GetOrder(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, p domain.Principal, filter repository.OrderFilter, page repository.Page) ([]domain.Order, int, error)
	DeleteOrder(ctx context.Context, p domain.Principal, id int64) error

	ListTickets(ctx context.Context, p domain.Principal, filter repository.TicketFilter, page repository.Page) ([]domain.Ticket, int, error)
	GetTicket(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error)
	UpdateTicket(ctx context.Context, p domain.Principal, id int64, spec domain.TicketSpec) (*domain.Ticket, error)
	DeleteTicket(ctx context.Context, p domain.Principal, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type FlightsInvalidator interface {
	InvalidateFlights(ctx context.Context) error
}

type OrderService struct {
	tx      repository.Transactor
	orders  repository.OrderRepository
	tickets repository.TicketRepository
	flights repository.FlightRepository

	cache              FlightsInvalidator
	producer           Producer
	orderTopic         string
	notificationsTopic string
	now                func() time.Time
}

type OrderServiceOption func(*OrderService)

func WithProducer(producer Producer, orderTopic string) OrderServiceOption {
	return func(s *OrderService) {
		s.producer = producer
		s.orderTopic = orderTopic
	}
}

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func WithCache(cache FlightsInvalidator) OrderServiceOption {
	return func(s *OrderService) {
		s.cache = cache
	}
}

func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *OrderService) {
		s.now = now
	}
}

func NewOrderService(
	tx repository.Transactor,
	orders repository.OrderRepository,
	tickets repository.TicketRepository,
	flights repository.FlightRepository,
	opts ...OrderServiceOption,
) *OrderService {
	s := &OrderService{
		tx:      tx,
		orders:  orders,
		tickets: tickets,
		flights: flights,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder books every requested seat for p in one transaction. Either
// the order and all of its tickets are stored, or nothing is.
func (s *OrderService) CreateOrder(ctx context.Context, p domain.Principal, specs []domain.TicketSpec) (*domain.Order, error) {
	if len(specs) == 0 {
		return nil, domain.FieldError("tickets", domain.ErrEmptyOrder)
	}

	order := &domain.Order{UserID: p.UserID}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, order); err != nil {
			return err
		}
		tickets, err := s.issueTickets(ctx, order, specs)
		if err != nil {
			return err
		}
		order.Tickets = tickets
		return nil
	})
	if err != nil {
		s.countConflict(err)
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	metrics.TicketsIssued.Add(float64(len(order.Tickets)))
	s.afterWrite(ctx, kafka.EventOrderCreated, order)
	return order, nil
}

// UpdateOrder replaces the order's tickets with specs. On any failure the
// original tickets are kept.
func (s *OrderService) UpdateOrder(ctx context.Context, p domain.Principal, id int64, specs []domain.TicketSpec) (*domain.Order, error) {
	if len(specs) == 0 {
		return nil, domain.FieldError("tickets", domain.ErrEmptyOrder)
	}

	var order *domain.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.ownedOrder(ctx, p, id)
		if err != nil {
			return err
		}
		if err := s.tickets.DeleteByOrder(ctx, order.ID); err != nil {
			return err
		}
		tickets, err := s.issueTickets(ctx, order, specs)
		if err != nil {
			return err
		}
		order.Tickets = tickets
		return nil
	})
	if err != nil {
		s.countConflict(err)
		return nil, err
	}

	metrics.TicketsIssued.Add(float64(len(order.Tickets)))
	s.afterWrite(ctx, kafka.EventOrderUpdated, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error) {
	return s.ownedOrder(ctx, p, id)
}

func (s *OrderService) ListOrders(ctx context.Context, p domain.Principal, filter repository.OrderFilter, page repository.Page) ([]domain.Order, int, error) {
	filter.UserID = scope(p)
	return s.orders.List(ctx, filter, page)
}

func (s *OrderService) DeleteOrder(ctx context.Context, p domain.Principal, id int64) error {
	order, err := s.ownedOrder(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}
	s.afterWrite(ctx, kafka.EventOrderDeleted, order)
	return nil
}

func (s *OrderService) ListTickets(ctx context.Context, p domain.Principal, filter repository.TicketFilter, page repository.Page) ([]domain.Ticket, int, error) {
	filter.UserID = scope(p)
	return s.tickets.List(ctx, filter, page)
}

func (s *OrderService) GetTicket(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error) {
	return s.ownedTicket(ctx, p, id)
}

// UpdateTicket moves a ticket to another seat or flight with the same checks
// as order creation. The ticket's current seat does not count as taken.
func (s *OrderService) UpdateTicket(ctx context.Context, p domain.Principal, id int64, spec domain.TicketSpec) (*domain.Ticket, error) {
	var ticket *domain.Ticket
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		ticket, err = s.ownedTicket(ctx, p, id)
		if err != nil {
			return err
		}
		if err := s.checkSpec(ctx, spec, ticket.ID, map[int64]*domain.Flight{}); err != nil {
			return err
		}
		ticket.Row, ticket.Seat, ticket.FlightID = spec.Row, spec.Seat, spec.FlightID
		return s.tickets.Update(ctx, ticket)
	})
	if err != nil {
		s.countConflict(err)
		return nil, err
	}

	s.orderChanged(ctx, ticket.OrderID)
	return ticket, nil
}

func (s *OrderService) DeleteTicket(ctx context.Context, p domain.Principal, id int64) error {
	ticket, err := s.ownedTicket(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticket.ID); err != nil {
		return err
	}
	s.orderChanged(ctx, ticket.OrderID)
	return nil
}

// issueTickets validates and stores specs as tickets of order. Errors are
// reported against the offending position, e.g. tickets[1].seat.
func (s *OrderService) issueTickets(ctx context.Context, order *domain.Order, specs []domain.TicketSpec) ([]domain.Ticket, error) {
	flights := make(map[int64]*domain.Flight)
	seen := make(map[domain.SeatKey]struct{}, len(specs))
	tickets := make([]domain.Ticket, 0, len(specs))

	for i, spec := range specs {
		if _, dup := seen[spec.Key()]; dup {
			return nil, atIndex(i, domain.FieldError("seat", domain.ErrSeatTaken))
		}
		seen[spec.Key()] = struct{}{}

		if err := s.checkSpec(ctx, spec, 0, flights); err != nil {
			return nil, atIndex(i, err)
		}

		t := domain.Ticket{Row: spec.Row, Seat: spec.Seat, FlightID: spec.FlightID, OrderID: order.ID, OwnerID: order.UserID}
		if err := s.tickets.Create(ctx, &t); err != nil {
			return nil, atIndex(i, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// checkSpec applies the per-ticket rules: the flight exists and is not over,
// the seat is inside the airplane layout and nobody else holds it.
func (s *OrderService) checkSpec(ctx context.Context, spec domain.TicketSpec, excludeTicketID int64, flights map[int64]*domain.Flight) error {
	flight, ok := flights[spec.FlightID]
	if !ok {
		var err error
		flight, err = s.flights.GetByID(ctx, spec.FlightID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("flight", fmt.Sprintf("flight %d does not exist", spec.FlightID))
		}
		if err != nil {
			return err
		}
		flights[spec.FlightID] = flight
	}

	if flight.IsOver(s.now()) {
		return domain.FieldError("flight", domain.ErrFlightOver)
	}
	if flight.Airplane == nil {
		return fmt.Errorf("flight %d has no airplane loaded", flight.ID)
	}
	if err := domain.ValidateSeat(spec.Seat, flight.Airplane.SeatsInRow, spec.Row, flight.Airplane.Rows); err != nil {
		return err
	}

	taken, err := s.tickets.SeatTaken(ctx, spec.FlightID, spec.Row, spec.Seat, excludeTicketID)
	if err != nil {
		return err
	}
	if taken {
		return domain.FieldError("seat", domain.ErrSeatTaken)
	}
	return nil
}

// ownedOrder loads an order visible to p. Orders of other users are reported
// as missing.
func (s *OrderService) ownedOrder(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(order.UserID) {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) ownedTicket(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(ticket.OwnerID) {
		return nil, domain.ErrNotFound
	}
	return ticket, nil
}

func scope(p domain.Principal) int64 {
	if p.IsStaff {
		return 0
	}
	return p.UserID
}

func atIndex(i int, err error) error {
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		return err
	}
	return &domain.ValidationError{
		Field:   fmt.Sprintf("tickets[%d].%s", i, vErr.Field),
		Message: vErr.Message,
		Err:     vErr.Err,
	}
}

func (s *OrderService) countConflict(err error) {
	if errors.Is(err, domain.ErrSeatTaken) {
		metrics.SeatConflicts.Inc()
	}
}

// orderChanged reloads the order after a ticket-level write and announces it.
func (s *OrderService) orderChanged(ctx context.Context, orderID int64) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		slog.WarnContext(ctx, "failed to reload order after ticket change", "order_id", orderID, "error", err)
		s.invalidate(ctx)
		return
	}
	s.afterWrite(ctx, kafka.EventOrderUpdated, order)
}

func (s *OrderService) afterWrite(ctx context.Context, eventType string, order *domain.Order) {
	s.invalidate(ctx)
	if err := s.publish(ctx, eventType, order); err != nil {
		slog.WarnContext(ctx, "failed to publish order event", "type", eventType, "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate flights cache", "error", err)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.orderTopic == "" {
		return nil
	}
	event := kafka.NewOrderEvent(eventType, order)
	if err := s.producer.Publish(ctx, s.orderTopic, event.Key(), event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.Key(), event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
