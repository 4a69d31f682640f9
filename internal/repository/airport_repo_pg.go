package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportFilter struct {
	Name string
}

type AirportRepository interface {
	List(ctx context.Context, filter AirportFilter, page Page) ([]domain.Airport, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, a *domain.Airport) error
	Update(ctx context.Context, a *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context, filter AirportFilter, page Page) ([]domain.Airport, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.Name != "" {
		w.add("name ILIKE ?", contains(filter.Name))
	}

	total, err := countRows(ctx, q, "FROM airports", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, `SELECT id, name, closest_big_city FROM airports`+w.String()+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestBigCity); err != nil {
			return nil, 0, err
		}
		airports = append(airports, a)
	}
	return airports, total, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name, closest_big_city FROM airports WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.ClosestBigCity)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		a.Name, a.ClosestBigCity,
	).Scan(&a.ID)
	return translate(err)
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	return expectOne(conn(ctx, r.db).Exec(ctx,
		`UPDATE airports SET name = $2, closest_big_city = $3 WHERE id = $1`,
		a.ID, a.Name, a.ClosestBigCity,
	))
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "airports", id)
}

var _ AirportRepository = (*PGAirportRepository)(nil)

type RouteFilter struct {
	From string
	To   string
}

type RouteRepository interface {
	List(ctx context.Context, filter RouteFilter, page Page) ([]domain.Route, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, rt *domain.Route) error
	Update(ctx context.Context, rt *domain.Route) error
	Delete(ctx context.Context, id int64) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `SELECT r.id, r.source_id, r.destination_id, r.distance,
	s.name, s.closest_big_city, d.name, d.closest_big_city
	FROM routes r
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id`

func scanRoute(row interface{ Scan(...any) error }) (domain.Route, error) {
	var (
		rt   domain.Route
		src  domain.Airport
		dest domain.Airport
	)
	err := row.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance,
		&src.Name, &src.ClosestBigCity, &dest.Name, &dest.ClosestBigCity)
	src.ID, dest.ID = rt.SourceID, rt.DestinationID
	rt.Source, rt.Destination = &src, &dest
	return rt, err
}

func (r *PGRouteRepository) List(ctx context.Context, filter RouteFilter, page Page) ([]domain.Route, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.From != "" {
		w.add("s.name ILIKE ?", contains(filter.From))
	}
	if filter.To != "" {
		w.add("d.name ILIKE ?", contains(filter.To))
	}

	total, err := countRows(ctx, q, `FROM routes r
		JOIN airports s ON s.id = r.source_id
		JOIN airports d ON d.id = r.destination_id`, &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, routeSelect+w.String()+` ORDER BY r.id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, 0, err
		}
		routes = append(routes, rt)
	}
	return routes, total, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	rt, err := scanRoute(conn(ctx, r.db).QueryRow(ctx, routeSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return &rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, rt *domain.Route) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		rt.SourceID, rt.DestinationID, rt.Distance,
	).Scan(&rt.ID)
	return translate(err)
}

func (r *PGRouteRepository) Update(ctx context.Context, rt *domain.Route) error {
	return expectOne(conn(ctx, r.db).Exec(ctx,
		`UPDATE routes SET source_id = $2, destination_id = $3, distance = $4 WHERE id = $1`,
		rt.ID, rt.SourceID, rt.DestinationID, rt.Distance,
	))
}

func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "routes", id)
}

var _ RouteRepository = (*PGRouteRepository)(nil)
