package domain

import "strings"

type Crew struct {
	ID          int64
	FirstName   string
	LastName    string
	FlyingHours float64
}

func (c Crew) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return NewValidationError("first_name", "this field may not be blank")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return NewValidationError("last_name", "this field may not be blank")
	}
	if c.FlyingHours < 0 {
		return NewValidationError("flying_hours", "flying_hours must not be negative")
	}
	return nil
}
