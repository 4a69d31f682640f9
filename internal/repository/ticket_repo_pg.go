package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TicketFilter narrows ticket listings. A zero UserID lists every user's
// tickets. IDFrom/IDTo form an inclusive range and are ignored when ID is set.
type TicketFilter struct {
	UserID int64
	ID     int64
	IDFrom int64
	IDTo   int64
	// Route matches either the source or the destination airport name.
	Route string
}

type TicketRepository interface {
	List(ctx context.Context, filter TicketFilter, page Page) ([]domain.Ticket, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	// SeatTaken reports whether the seat is held by a ticket other than excludeTicketID.
	SeatTaken(ctx context.Context, flightID int64, row, seat int, excludeTicketID int64) (bool, error)
	Create(ctx context.Context, t *domain.Ticket) error
	Update(ctx context.Context, t *domain.Ticket) error
	DeleteByOrder(ctx context.Context, orderID int64) error
	Delete(ctx context.Context, id int64) error
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketFrom = ` FROM tickets t
	JOIN orders o ON o.id = t.order_id`

const ticketSelect = `SELECT t.id, t."row", t.seat, t.flight_id, t.order_id, o.user_id` + ticketFrom

func scanTicket(row interface{ Scan(...any) error }) (domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID, &t.OwnerID)
	return t, err
}

func (r *PGTicketRepository) List(ctx context.Context, filter TicketFilter, page Page) ([]domain.Ticket, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.UserID != 0 {
		w.add("o.user_id = ?", filter.UserID)
	}
	switch {
	case filter.ID != 0:
		w.add("t.id = ?", filter.ID)
	case filter.IDFrom != 0 || filter.IDTo != 0:
		w.add("t.id BETWEEN ? AND ?", filter.IDFrom, filter.IDTo)
	}
	if filter.Route != "" {
		w.add(`EXISTS (SELECT 1 FROM flights f
			JOIN routes r ON r.id = f.route_id
			JOIN airports s ON s.id = r.source_id
			JOIN airports d ON d.id = r.destination_id
			WHERE f.id = t.flight_id AND (s.name ILIKE ? OR d.name ILIKE ?))`,
			contains(filter.Route), contains(filter.Route))
	}

	total, err := countRows(ctx, q, ticketFrom, &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, ticketSelect+w.String()+` ORDER BY t.id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, rows.Err()
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	t, err := scanTicket(conn(ctx, r.db).QueryRow(ctx, ticketSelect+` WHERE t.id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *PGTicketRepository) SeatTaken(ctx context.Context, flightID int64, row, seat int, excludeTicketID int64) (bool, error) {
	var taken bool
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT EXISTS (
		SELECT 1 FROM tickets WHERE flight_id = $1 AND "row" = $2 AND seat = $3 AND id <> $4
	)`, flightID, row, seat, excludeTicketID).Scan(&taken)
	if err != nil {
		return false, translate(err)
	}
	return taken, nil
}

func (r *PGTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Row, t.Seat, t.FlightID, t.OrderID,
	).Scan(&t.ID)
	return translate(err)
}

func (r *PGTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	return expectOne(conn(ctx, r.db).Exec(ctx,
		`UPDATE tickets SET "row" = $2, seat = $3, flight_id = $4 WHERE id = $1`,
		t.ID, t.Row, t.Seat, t.FlightID,
	))
}

func (r *PGTicketRepository) DeleteByOrder(ctx context.Context, orderID int64) error {
	_, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM tickets WHERE order_id = $1`, orderID)
	return translate(err)
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "tickets", id)
}

var _ TicketRepository = (*PGTicketRepository)(nil)
