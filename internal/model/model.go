// Package model defines the core domain types for the ticketing dataset
// generator: the six entities that end up as SQL rows, plus the Dataset
// aggregate the exporter consumes.
package model

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPaid      ReservationStatus = "PAID"
	StatusPending   ReservationStatus = "PENDING"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// TicketStatusValid marks tickets belonging to a paid reservation. Tickets of
// unpaid reservations carry the reservation status instead.
const TicketStatusValid = "VALID"

// FareTier is a named pricing multiplier applied to an event's base price.
type FareTier string

const (
	FareStandard FareTier = "STANDARD"
	FareReduced  FareTier = "REDUCED"
	FareStudent  FareTier = "STUDENT"
	FareSenior   FareTier = "SENIOR"
	FareGroup    FareTier = "GROUP"
)

// Venue is a performance hall. Immutable once created.
type Venue struct {
	ID       int
	Name     string
	Capacity int
	Layout   string
}

// EventDefinition describes a show independent of any scheduled performance.
type EventDefinition struct {
	ID          int
	Title       string
	Description string
	Category    string
	DurationMin int
	BasePrice   float64
}

// Session is one scheduled performance of an event in a venue. It is only
// created once the slot allocator has confirmed a free interval.
type Session struct {
	ID      int
	EventID int
	Start   time.Time
	VenueID int
	Seats   int // copied from venue capacity at creation
}

// Customer is a ticket buyer, possibly shared by several reservations.
type Customer struct {
	ID        int
	LastName  string
	FirstName string
	Email     string
	Phone     string
}

// Reservation groups 1–4 tickets bought by one customer. Total is the sum of
// the ticket prices, computed once at creation.
type Reservation struct {
	ID         int
	CustomerID int
	CreatedAt  time.Time
	Status     ReservationStatus
	Total      float64
}

// Ticket is a single seat sold under a reservation for a session.
type Ticket struct {
	ID            int
	ReservationID int
	SessionID     int
	Fare          FareTier
	Price         float64
	Code          string
	Status        string
}

// Dataset holds every generated record in generation order. This is the
// exporter's entire input; it carries no behaviour.
type Dataset struct {
	Venues       []Venue
	Events       []EventDefinition
	Sessions     []Session
	Customers    []Customer
	Reservations []Reservation
	Tickets      []Ticket
}
