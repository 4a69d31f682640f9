package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightFilter narrows flight listings. Dates are YYYY-MM-DD strings and all
// date and time parts are compared in UTC. Nil pointers mean "any".
type FlightFilter struct {
	IDs       []int64
	From      string
	To        string
	PlaneName string

	DepartureDate   string
	DepartureHour   *int
	DepartureMinute *int
	ArrivalDate     string
	ArrivalHour     *int
	ArrivalMinute   *int
}

type FlightRepository interface {
	List(ctx context.Context, filter FlightFilter, page Page) ([]domain.Flight, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	Delete(ctx context.Context, id int64) error

	// LockCrew takes row locks on the given crew members until the surrounding
	// transaction ends. A missing crew member is a validation error.
	LockCrew(ctx context.Context, crewIDs []int64) error
	// HasCrewOverlap reports whether any of the crew members is assigned to a
	// flight other than excludeFlightID whose interval overlaps [departure, arrival).
	HasCrewOverlap(ctx context.Context, crewIDs []int64, departure, arrival time.Time, excludeFlightID int64) (bool, error)

	ListUnaccounted(ctx context.Context) ([]domain.Flight, error)
	// ClaimForAccounting marks the flight accounted and returns its times. The
	// boolean is false when another pass already claimed it.
	ClaimForAccounting(ctx context.Context, id int64) (domain.Flight, bool, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightFrom = ` FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN airplane_types apt ON apt.id = a.airplane_type_id`

const flightSelect = `SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time, f.accounted,
	r.source_id, r.destination_id, r.distance, s.name, s.closest_big_city, d.name, d.closest_big_city,
	a.name, a."rows", a.seats_in_row, a.airplane_type_id, apt.name,
	a."rows" * a.seats_in_row - (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.id)` + flightFrom

func scanFlight(row interface{ Scan(...any) error }) (domain.Flight, error) {
	var (
		f    domain.Flight
		rt   domain.Route
		src  domain.Airport
		dest domain.Airport
		pl   domain.Airplane
		pt   domain.AirplaneType
	)
	err := row.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.Accounted,
		&rt.SourceID, &rt.DestinationID, &rt.Distance, &src.Name, &src.ClosestBigCity, &dest.Name, &dest.ClosestBigCity,
		&pl.Name, &pl.Rows, &pl.SeatsInRow, &pl.AirplaneTypeID, &pt.Name,
		&f.TicketsAvailable)
	if err != nil {
		return f, err
	}
	src.ID, dest.ID = rt.SourceID, rt.DestinationID
	rt.ID, rt.Source, rt.Destination = f.RouteID, &src, &dest
	pt.ID = pl.AirplaneTypeID
	pl.ID, pl.AirplaneType = f.AirplaneID, &pt
	f.Route, f.Airplane = &rt, &pl
	f.CrewIDs = []int64{}
	f.Crew = []domain.Crew{}
	return f, nil
}

func flightWhere(filter FlightFilter) *where {
	var w where
	if len(filter.IDs) > 0 {
		w.add("f.id = ANY(?)", filter.IDs)
	}
	if filter.From != "" {
		w.add("s.name ILIKE ?", contains(filter.From))
	}
	if filter.To != "" {
		w.add("d.name ILIKE ?", contains(filter.To))
	}
	if filter.PlaneName != "" {
		w.add("a.name ILIKE ?", contains(filter.PlaneName))
	}
	if filter.DepartureDate != "" {
		w.add("(f.departure_time AT TIME ZONE 'UTC')::date = ?::date", filter.DepartureDate)
	}
	if filter.DepartureHour != nil {
		w.add("EXTRACT(HOUR FROM f.departure_time AT TIME ZONE 'UTC') = ?", *filter.DepartureHour)
	}
	if filter.DepartureMinute != nil {
		w.add("EXTRACT(MINUTE FROM f.departure_time AT TIME ZONE 'UTC') = ?", *filter.DepartureMinute)
	}
	if filter.ArrivalDate != "" {
		w.add("(f.arrival_time AT TIME ZONE 'UTC')::date = ?::date", filter.ArrivalDate)
	}
	if filter.ArrivalHour != nil {
		w.add("EXTRACT(HOUR FROM f.arrival_time AT TIME ZONE 'UTC') = ?", *filter.ArrivalHour)
	}
	if filter.ArrivalMinute != nil {
		w.add("EXTRACT(MINUTE FROM f.arrival_time AT TIME ZONE 'UTC') = ?", *filter.ArrivalMinute)
	}
	return &w
}

func (r *PGFlightRepository) List(ctx context.Context, filter FlightFilter, page Page) ([]domain.Flight, int, error) {
	q := conn(ctx, r.db)
	w := flightWhere(filter)

	total, err := countRows(ctx, q, flightFrom, w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := q.Query(ctx, flightSelect+w.String()+` ORDER BY f.departure_time, f.id`+limit, args...)
	if err != nil {
		return nil, 0, translate(err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, 0, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachCrew(ctx, flights); err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(conn(ctx, r.db).QueryRow(ctx, flightSelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	flights := []domain.Flight{f}
	if err := r.attachCrew(ctx, flights); err != nil {
		return nil, err
	}
	return &flights[0], nil
}

func (r *PGFlightRepository) attachCrew(ctx context.Context, flights []domain.Flight) error {
	if len(flights) == 0 {
		return nil
	}
	ids := make([]int64, len(flights))
	index := make(map[int64]int, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
		index[f.ID] = i
	}

	rows, err := conn(ctx, r.db).Query(ctx, `SELECT fc.flight_id, c.id, c.first_name, c.last_name, c.flying_hours
		FROM flight_crews fc
		JOIN crews c ON c.id = fc.crew_id
		WHERE fc.flight_id = ANY($1)
		ORDER BY c.id`, ids)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			flightID int64
			c        domain.Crew
		)
		if err := rows.Scan(&flightID, &c.ID, &c.FirstName, &c.LastName, &c.FlyingHours); err != nil {
			return err
		}
		f := &flights[index[flightID]]
		f.Crew = append(f.Crew, c)
		f.CrewIDs = append(f.CrewIDs, c.ID)
	}
	return rows.Err()
}

// Create inserts the flight and its crew set. Call it inside a transaction.
func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	q := conn(ctx, r.db)
	err := q.QueryRow(ctx,
		`INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime,
	).Scan(&f.ID)
	if err != nil {
		return translate(err)
	}
	return r.replaceCrew(ctx, q, f.ID, f.CrewIDs)
}

// Update rewrites the flight and replaces its crew set. The accounted flag is
// left untouched. Call it inside a transaction.
func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	q := conn(ctx, r.db)
	err := expectOne(q.Exec(ctx,
		`UPDATE flights SET route_id = $2, airplane_id = $3, departure_time = $4, arrival_time = $5 WHERE id = $1`,
		f.ID, f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime,
	))
	if err != nil {
		return err
	}
	return r.replaceCrew(ctx, q, f.ID, f.CrewIDs)
}

func (r *PGFlightRepository) replaceCrew(ctx context.Context, q querier, flightID int64, crewIDs []int64) error {
	if _, err := q.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id = $1`, flightID); err != nil {
		return translate(err)
	}
	if len(crewIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx,
		`INSERT INTO flight_crews (flight_id, crew_id) SELECT $1, UNNEST($2::bigint[])`,
		flightID, crewIDs,
	)
	return translate(err)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, conn(ctx, r.db), "flights", id)
}

func (r *PGFlightRepository) LockCrew(ctx context.Context, crewIDs []int64) error {
	if len(crewIDs) == 0 {
		return nil
	}
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id FROM crews WHERE id = ANY($1) ORDER BY id FOR UPDATE`, crewIDs)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		found++
	}
	if err := rows.Err(); err != nil {
		return translate(err)
	}
	if found != len(crewIDs) {
		return domain.NewValidationError("crew", "crew member does not exist")
	}
	return nil
}

func (r *PGFlightRepository) HasCrewOverlap(ctx context.Context, crewIDs []int64, departure, arrival time.Time, excludeFlightID int64) (bool, error) {
	if len(crewIDs) == 0 {
		return false, nil
	}
	var overlap bool
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT EXISTS (
		SELECT 1 FROM flight_crews fc
		JOIN flights f ON f.id = fc.flight_id
		WHERE fc.crew_id = ANY($1)
		  AND f.id <> $2
		  AND f.departure_time < $4
		  AND f.arrival_time > $3
	)`, crewIDs, excludeFlightID, departure, arrival).Scan(&overlap)
	if err != nil {
		return false, translate(err)
	}
	return overlap, nil
}

func (r *PGFlightRepository) ListUnaccounted(ctx context.Context) ([]domain.Flight, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, route_id, airplane_id, departure_time, arrival_time
		FROM flights WHERE NOT accounted ORDER BY arrival_time, id`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) ClaimForAccounting(ctx context.Context, id int64) (domain.Flight, bool, error) {
	f := domain.Flight{ID: id}
	err := conn(ctx, r.db).QueryRow(ctx, `UPDATE flights SET accounted = TRUE
		WHERE id = $1 AND NOT accounted
		RETURNING route_id, airplane_id, departure_time, arrival_time`, id,
	).Scan(&f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime)
	if err != nil {
		err = translate(err)
		if errors.Is(err, domain.ErrNotFound) {
			return f, false, nil
		}
		return f, false, err
	}
	f.Accounted = true
	return f, true, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
