package domain

import (
	"fmt"
	"time"
)

type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID int64
	OrderID  int64
	// OwnerID is the user id of the order the ticket belongs to.
	OwnerID int64
}

// TicketSpec is a requested seat on a flight, before it is persisted.
type TicketSpec struct {
	Row      int
	Seat     int
	FlightID int64
}

// ValidateSeat reports whether seat and row fall inside the airplane layout.
// The seat bound is checked first.
func ValidateSeat(seat, seatsInRow, row, rows int) error {
	if seat < 1 || seat > seatsInRow {
		return NewValidationError("seat", fmt.Sprintf("seat must be in range [1, %d], not %d", seatsInRow, seat))
	}
	if row < 1 || row > rows {
		return NewValidationError("row", fmt.Sprintf("row must be in range [1, %d], not %d", rows, row))
	}
	return nil
}

// SeatKey identifies a seat on a flight.
type SeatKey struct {
	FlightID int64
	Row      int
	Seat     int
}

func (t TicketSpec) Key() SeatKey {
	return SeatKey{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
}
