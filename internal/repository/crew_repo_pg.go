package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewFilter struct {
	FirstName string
	LastName  string
}

type CrewRepository interface {
	List(ctx context.Context, filter CrewFilter, page Page) ([]domain.Crew, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, c *domain.Crew) error
	// Update changes the names only. Flying hours are owned by AddFlyingHours.
	Update(ctx context.Context, c *domain.Crew) error
	Delete(ctx context.Context, id int64) error
	// AddFlyingHours credits hours to every crew member assigned to the flight
	// and returns how many members were credited.
	AddFlyingHours(ctx context.Context, flightID int64, hours float64) (int64, error)
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) List(ctx context.Context, filter CrewFilter, page Page) ([]domain.Crew, int, error) {
	q := conn(ctx, r.db)

	var w where
	if filter.FirstName != "" {
		w.add("first_name ILIKE ?", contains(filter.FirstName))
	}
	if filter.LastName != "" {
		w.add("last_name ILIKE ?", contains(filter.LastName))
	}

	total, err := countRows(ctx, q, "FROM crews", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, `SELECT id, first_name, last_name, flying_hours FROM crews`+w.String()+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.FlyingHours); err != nil {
			return nil, 0, err
		}
		crews = append(crews, c)
	}
	return crews, total, rows.Err()
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, first_name, last_name, flying_hours FROM crews WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.FlyingHours)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *PGCrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO crews (first_name, last_name, flying_hours) VALUES ($1, $2, $3) RETURNING id`,
		c.FirstName, c.LastName, c.FlyingHours,
	).Scan(&c.ID)
	return translate(err)
}

func (r *PGCrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`UPDATE crews SET first_name = $2, last_name = $3 WHERE id = $1 RETURNING flying_hours`,
		c.ID, c.FirstName, c.LastName,
	).Scan(&c.FlyingHours)
	return translate(err)
}

func (r *PGCrewRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "crews", id)
}

func (r *PGCrewRepository) AddFlyingHours(ctx context.Context, flightID int64, hours float64) (int64, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE crews SET flying_hours = flying_hours + $2
		WHERE id IN (SELECT crew_id FROM flight_crews WHERE flight_id = $1)`,
		flightID, hours,
	)
	if err != nil {
		return 0, translate(err)
	}
	return tag.RowsAffected(), nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
