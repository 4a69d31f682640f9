package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NameFilter struct {
	Name string
}

type AirplaneTypeRepository interface {
	List(ctx context.Context, filter NameFilter, page Page) ([]domain.AirplaneType, int, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, t *domain.AirplaneType) error
	Update(ctx context.Context, t *domain.AirplaneType) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context, filter NameFilter, page Page) ([]domain.AirplaneType, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.Name != "" {
		w.add("name ILIKE ?", contains(filter.Name))
	}

	total, err := countRows(ctx, q, "FROM airplane_types", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, `SELECT id, name FROM airplane_types`+w.String()+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, 0, err
		}
		types = append(types, t)
	}
	return types, total, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id = $1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	return translate(conn(ctx, r.db).QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID))
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, t *domain.AirplaneType) error {
	return expectOne(conn(ctx, r.db).Exec(ctx, `UPDATE airplane_types SET name = $2 WHERE id = $1`, t.ID, t.Name))
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "airplane_types", id)
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)

type AirplaneRepository interface {
	List(ctx context.Context, filter NameFilter, page Page) ([]domain.Airplane, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, a *domain.Airplane) error
	Update(ctx context.Context, a *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

const airplaneSelect = `SELECT a.id, a.name, a."rows", a.seats_in_row, a.airplane_type_id, apt.name
	FROM airplanes a
	JOIN airplane_types apt ON apt.id = a.airplane_type_id`

func scanAirplane(row interface{ Scan(...any) error }) (domain.Airplane, error) {
	var (
		a  domain.Airplane
		at domain.AirplaneType
	)
	err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &at.Name)
	at.ID = a.AirplaneTypeID
	a.AirplaneType = &at
	return a, err
}

func (r *PGAirplaneRepository) List(ctx context.Context, filter NameFilter, page Page) ([]domain.Airplane, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.Name != "" {
		w.add("a.name ILIKE ?", contains(filter.Name))
	}

	total, err := countRows(ctx, q, "FROM airplanes a", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, airplaneSelect+w.String()+` ORDER BY a.id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		a, err := scanAirplane(rows)
		if err != nil {
			return nil, 0, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, total, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	a, err := scanAirplane(conn(ctx, r.db).QueryRow(ctx, airplaneSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO airplanes (name, "rows", seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID,
	).Scan(&a.ID)
	return translate(err)
}

func (r *PGAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	return expectOne(conn(ctx, r.db).Exec(ctx,
		`UPDATE airplanes SET name = $2, "rows" = $3, seats_in_row = $4, airplane_type_id = $5 WHERE id = $1`,
		a.ID, a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID,
	))
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "airplanes", id)
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
