// Package pgtest starts a throwaway Postgres for integration tests and seeds
// the reference data a flight needs.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewDB runs a migrated Postgres container that lives as long as the test.
func NewDB(t testing.TB) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("airport"),
		postgres.WithUsername("airport"),
		postgres.WithPassword("airport"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := repository.Migrate(ctx, pool)
	require.NoError(t, err)
	require.NotEmpty(t, applied)

	return pool
}

type Seeded struct {
	Flight   domain.Flight
	Airplane domain.Airplane
	Crew     []domain.Crew
}

// SeedFlight stores a flight on a 2x2 airplane between two fresh airports.
// One crew member is created per entry of crewHours, starting with that many
// flying hours; with none given a single member starts at zero.
func SeedFlight(t testing.TB, pool *pgxpool.Pool, departure, arrival time.Time, crewHours ...float64) Seeded {
	t.Helper()
	ctx := context.Background()
	tag := departure.Format(time.RFC3339)

	src := &domain.Airport{Name: "Boryspil " + tag, ClosestBigCity: "Kyiv"}
	dst := &domain.Airport{Name: "Heathrow " + tag, ClosestBigCity: "London"}
	airports := repository.NewAirportRepository(pool)
	require.NoError(t, airports.Create(ctx, src))
	require.NoError(t, airports.Create(ctx, dst))

	route := &domain.Route{SourceID: src.ID, DestinationID: dst.ID, Distance: 2130}
	require.NoError(t, repository.NewRouteRepository(pool).Create(ctx, route))

	pt := &domain.AirplaneType{Name: "Boeing " + tag}
	require.NoError(t, repository.NewAirplaneTypeRepository(pool).Create(ctx, pt))
	plane := &domain.Airplane{Name: "UR-" + tag, Rows: 2, SeatsInRow: 2, AirplaneTypeID: pt.ID}
	require.NoError(t, repository.NewAirplaneRepository(pool).Create(ctx, plane))

	if len(crewHours) == 0 {
		crewHours = []float64{0}
	}
	crews := repository.NewCrewRepository(pool)
	members := make([]domain.Crew, 0, len(crewHours))
	ids := make([]int64, 0, len(crewHours))
	for i, hours := range crewHours {
		c := &domain.Crew{FirstName: "Olena", LastName: fmt.Sprintf("Koval-%d", i), FlyingHours: hours}
		require.NoError(t, crews.Create(ctx, c))
		members = append(members, *c)
		ids = append(ids, c.ID)
	}

	flight := &domain.Flight{
		RouteID:       route.ID,
		AirplaneID:    plane.ID,
		CrewIDs:       ids,
		DepartureTime: departure,
		ArrivalTime:   arrival,
	}
	require.NoError(t, repository.NewTxManager(pool).WithinTransaction(ctx, func(ctx context.Context) error {
		return repository.NewFlightRepository(pool).Create(ctx, flight)
	}))
	return Seeded{Flight: *flight, Airplane: *plane, Crew: members}
}

// Count returns the number of rows in table.
func Count(t testing.TB, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}
