package domain

import (
	"math"
	"time"
)

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	CrewIDs       []int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	// Accounted is set once the flight duration has been credited to its crew.
	Accounted bool

	Route            *Route
	Airplane         *Airplane
	Crew             []Crew
	TicketsAvailable int
}

func (f Flight) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}

func (f Flight) IsOver(now time.Time) bool {
	return !now.Before(f.ArrivalTime)
}

// FlyingHours is the flight duration in hours rounded to two decimals.
func (f Flight) FlyingHours() float64 {
	return RoundHours(f.Duration().Hours())
}

func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func (f Flight) Validate() error {
	if f.RouteID <= 0 {
		return NewValidationError("route", "this field is required")
	}
	if f.AirplaneID <= 0 {
		return NewValidationError("airplane", "this field is required")
	}
	if f.DepartureTime.IsZero() {
		return NewValidationError("departure_time", "this field is required")
	}
	if !f.ArrivalTime.After(f.DepartureTime) {
		return NewValidationError("arrival_time", "arrival_time must be after departure_time")
	}
	seen := make(map[int64]struct{}, len(f.CrewIDs))
	for _, id := range f.CrewIDs {
		if _, dup := seen[id]; dup {
			return NewValidationError("crew", "crew member is listed more than once")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share an instant.
// Intervals that only touch at an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
