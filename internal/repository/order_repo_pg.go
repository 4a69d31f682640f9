package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderFilter narrows order listings. A zero UserID lists every user's orders.
type OrderFilter struct {
	UserID    int64
	TicketIDs []int64
}

type OrderRepository interface {
	List(ctx context.Context, filter OrderFilter, page Page) ([]domain.Order, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	// Delete removes the order together with its tickets.
	Delete(ctx context.Context, id int64) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) List(ctx context.Context, filter OrderFilter, page Page) ([]domain.Order, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.UserID != 0 {
		w.add("o.user_id = ?", filter.UserID)
	}
	if len(filter.TicketIDs) > 0 {
		w.add("EXISTS (SELECT 1 FROM tickets t WHERE t.order_id = o.id AND t.id = ANY(?))", filter.TicketIDs)
	}

	total, err := countRows(ctx, q, "FROM orders o", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, `SELECT o.id, o.user_id, o.created_at FROM orders o`+w.String()+` ORDER BY o.created_at DESC, o.id DESC`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		o.Tickets = []domain.Ticket{}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, user_id, created_at FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	o.Tickets = []domain.Ticket{}
	orders := []domain.Order{o}
	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *PGOrderRepository) attachTickets(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, "row", seat, flight_id, order_id
		FROM tickets WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return err
		}
		o := &orders[index[t.OrderID]]
		t.OwnerID = o.UserID
		o.Tickets = append(o.Tickets, t)
	}
	return rows.Err()
}

func (r *PGOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, o.UserID,
	).Scan(&o.ID, &o.CreatedAt)
	return translate(err)
}

func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "orders", id)
}

var _ OrderRepository = (*PGOrderRepository)(nil)
