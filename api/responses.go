package api

import (
	"time"

	"github.com/Domenick1991/airport/internal/domain"
)

// List endpoints return compact shapes, detail endpoints embed related objects.

type airportListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type airportResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func airportListShape(a domain.Airport) airportListItem {
	return airportListItem{ID: a.ID, Name: a.Name}
}

func airportShape(a domain.Airport) airportResponse {
	return airportResponse{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

type routeListItem struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type routeResponse struct {
	ID          int64           `json:"id"`
	Source      airportResponse `json:"source"`
	Destination airportResponse `json:"destination"`
	Distance    float64         `json:"distance"`
}

func airportName(a *domain.Airport) string {
	if a == nil {
		return ""
	}
	return a.Name
}

func airportRef(a *domain.Airport, id int64) airportResponse {
	if a == nil {
		return airportResponse{ID: id}
	}
	return airportShape(*a)
}

func routeListShape(r domain.Route) routeListItem {
	return routeListItem{ID: r.ID, Source: airportName(r.Source), Destination: airportName(r.Destination)}
}

func routeShape(r domain.Route) routeResponse {
	return routeResponse{
		ID:          r.ID,
		Source:      airportRef(r.Source, r.SourceID),
		Destination: airportRef(r.Destination, r.DestinationID),
		Distance:    r.Distance,
	}
}

type airplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func airplaneTypeShape(t domain.AirplaneType) airplaneTypeResponse {
	return airplaneTypeResponse{ID: t.ID, Name: t.Name}
}

type airplaneListItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AirplaneType string `json:"airplane_type"`
}

type airplaneResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Rows         int                  `json:"rows"`
	SeatsInRow   int                  `json:"seats_in_row"`
	Capacity     int                  `json:"capacity"`
	AirplaneType airplaneTypeResponse `json:"airplane_type"`
}

func airplaneListShape(a domain.Airplane) airplaneListItem {
	item := airplaneListItem{ID: a.ID, Name: a.Name}
	if a.AirplaneType != nil {
		item.AirplaneType = a.AirplaneType.Name
	}
	return item
}

func airplaneShape(a domain.Airplane) airplaneResponse {
	resp := airplaneResponse{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		Capacity:     a.Capacity(),
		AirplaneType: airplaneTypeResponse{ID: a.AirplaneTypeID},
	}
	if a.AirplaneType != nil {
		resp.AirplaneType = airplaneTypeShape(*a.AirplaneType)
	}
	return resp
}

type crewResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	FlyingHours float64 `json:"flying_hours"`
}

func crewShape(c domain.Crew) crewResponse {
	return crewResponse{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, FlyingHours: c.FlyingHours}
}

type flightRoute struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type flightListItem struct {
	ID               int64       `json:"id"`
	Route            flightRoute `json:"route"`
	Airplane         string      `json:"airplane"`
	Distance         float64     `json:"distance"`
	DepartureTime    time.Time   `json:"departure_time"`
	ArrivalTime      time.Time   `json:"arrival_time"`
	TicketsAvailable int         `json:"tickets_available"`
}

type flightCrewMember struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type flightResponse struct {
	ID               int64              `json:"id"`
	Route            flightRoute        `json:"route"`
	Airplane         airplaneResponse   `json:"airplane"`
	Crew             []flightCrewMember `json:"crew"`
	DepartureTime    time.Time          `json:"departure_time"`
	ArrivalTime      time.Time          `json:"arrival_time"`
	FlightTime       float64            `json:"flight_time"`
	Distance         float64            `json:"distance"`
	TicketsAvailable int                `json:"tickets_available"`
}

func flightRouteOf(f domain.Flight) (flightRoute, float64) {
	if f.Route == nil {
		return flightRoute{}, 0
	}
	return flightRoute{Source: airportName(f.Route.Source), Destination: airportName(f.Route.Destination)}, f.Route.Distance
}

func flightListShape(f domain.Flight) flightListItem {
	route, distance := flightRouteOf(f)
	item := flightListItem{
		ID:               f.ID,
		Route:            route,
		Distance:         distance,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		TicketsAvailable: f.TicketsAvailable,
	}
	if f.Airplane != nil {
		item.Airplane = f.Airplane.Name
	}
	return item
}

func flightShape(f domain.Flight) flightResponse {
	route, distance := flightRouteOf(f)
	resp := flightResponse{
		ID:               f.ID,
		Route:            route,
		Airplane:         airplaneResponse{ID: f.AirplaneID},
		Crew:             make([]flightCrewMember, 0, len(f.Crew)),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		FlightTime:       f.FlyingHours(),
		Distance:         distance,
		TicketsAvailable: f.TicketsAvailable,
	}
	if f.Airplane != nil {
		resp.Airplane = airplaneShape(*f.Airplane)
	}
	for _, c := range f.Crew {
		resp.Crew = append(resp.Crew, flightCrewMember{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName})
	}
	return resp
}

type ticketResponse struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
	Order  int64 `json:"order"`
}

func ticketShape(t domain.Ticket) ticketResponse {
	return ticketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID, Order: t.OrderID}
}

type orderResponse struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
}

func orderShape(o domain.Order) orderResponse {
	resp := orderResponse{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: make([]ticketResponse, 0, len(o.Tickets))}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, ticketShape(t))
	}
	return resp
}
