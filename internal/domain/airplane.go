package domain

import "strings"

type AirplaneType struct {
	ID   int64
	Name string
}

func (t AirplaneType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("name", "this field may not be blank")
	}
	return nil
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64

	AirplaneType *AirplaneType
}

func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

func (a Airplane) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "this field may not be blank")
	}
	if a.Rows <= 0 {
		return NewValidationError("rows", "rows must be positive")
	}
	if a.SeatsInRow <= 0 {
		return NewValidationError("seats_in_row", "seats_in_row must be positive")
	}
	if a.AirplaneTypeID <= 0 {
		return NewValidationError("airplane_type", "this field is required")
	}
	return nil
}
