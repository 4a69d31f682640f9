package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

const ticketSeatConstraint = "tickets_flight_row_seat_key"

// constraintFields maps schema constraint names to the request field they guard.
var constraintFields = map[string]string{
	"airports_name_key":               "name",
	"airplane_types_name_key":         "name",
	"airplanes_name_key":              "name",
	"routes_source_id_fkey":           "source",
	"routes_destination_id_fkey":      "destination",
	"routes_distinct_airports":        "destination",
	"routes_distance_positive":        "distance",
	"airplanes_airplane_type_id_fkey": "airplane_type",
	"airplanes_layout_positive":       "rows",
	"flights_route_id_fkey":           "route",
	"flights_airplane_id_fkey":        "airplane",
	"flights_arrival_after_departure": "arrival_time",
	"flight_crews_crew_id_fkey":       "crew",
	"tickets_flight_id_fkey":          "flight",
	ticketSeatConstraint:              "seat",
}

// translate maps storage errors onto domain errors. Unknown errors pass through.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	field, ok := constraintFields[pgErr.ConstraintName]
	if !ok {
		field = "detail"
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == ticketSeatConstraint {
			return domain.FieldError(field, domain.ErrSeatTaken)
		}
		return &domain.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("object with this %s already exists", field),
			Err:     domain.ErrAlreadyExists,
		}
	case pgForeignKeyViolation:
		return domain.NewValidationError(field, "referenced object does not exist")
	case pgCheckViolation:
		return domain.NewValidationError(field, "value violates constraint "+pgErr.ConstraintName)
	}
	return err
}
