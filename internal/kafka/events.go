package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/google/uuid"
)

const (
	EventOrderCreated    = "order_created"
	EventOrderUpdated    = "order_updated"
	EventOrderDeleted    = "order_deleted"
	EventFlightAccounted = "flight_accounted"
)

type TicketInfo struct {
	TicketID int64 `json:"ticket_id"`
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type OrderEvent struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	OrderID    int64        `json:"order_id"`
	UserID     int64        `json:"user_id"`
	Tickets    []TicketInfo `json:"tickets"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func NewOrderEvent(eventType string, order *domain.Order) OrderEvent {
	tickets := make([]TicketInfo, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, TicketInfo{TicketID: t.ID, FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}
	return OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Tickets:    tickets,
		OccurredAt: time.Now().UTC(),
	}
}

func (e OrderEvent) Key() string {
	return fmt.Sprintf("order-%d", e.OrderID)
}

type FlightAccountedEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	FlightID     int64     `json:"flight_id"`
	Hours        float64   `json:"hours"`
	CrewCredited int64     `json:"crew_credited"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewFlightAccountedEvent(flightID int64, hours float64, credited int64) FlightAccountedEvent {
	return FlightAccountedEvent{
		ID:           uuid.NewString(),
		Type:         EventFlightAccounted,
		FlightID:     flightID,
		Hours:        hours,
		CrewCredited: credited,
		OccurredAt:   time.Now().UTC(),
	}
}

func (e FlightAccountedEvent) Key() string {
	return fmt.Sprintf("flight-%d", e.FlightID)
}

func DecodeOrderEvent(data []byte) (OrderEvent, error) {
	var event OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("decode order event: %w", err)
	}
	if event.Type == "" {
		return event, fmt.Errorf("decode order event: missing type")
	}
	return event, nil
}
