package domain

import "strings"

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
}

func (a Airport) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "this field may not be blank")
	}
	if strings.TrimSpace(a.ClosestBigCity) == "" {
		return NewValidationError("closest_big_city", "this field may not be blank")
	}
	return nil
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      float64

	Source      *Airport
	Destination *Airport
}

func (r Route) Validate() error {
	if r.SourceID <= 0 {
		return NewValidationError("source", "this field is required")
	}
	if r.DestinationID <= 0 {
		return NewValidationError("destination", "this field is required")
	}
	if r.SourceID == r.DestinationID {
		return NewValidationError("destination", "destination must differ from source")
	}
	if r.Distance <= 0 {
		return NewValidationError("distance", "distance must be positive")
	}
	return nil
}
