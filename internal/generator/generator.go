// Package generator orchestrates the construction of the full synthetic
// dataset: venues and event definitions from the catalog, sessions placed
// through the slot allocator, then customers, reservations and tickets.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/catalog"
	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/model"
	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/schedule"
	"github.com/google/uuid"
)

// ID bases per entity. Events count from 1, everything else from 100.
const (
	venueIDBase       = 100
	eventIDBase       = 1
	sessionIDBase     = 100
	customerIDBase    = 100
	reservationIDBase = 100
	ticketIDBase      = 100
)

const (
	// customerReuseRate is the probability that a reservation is placed by an
	// already-known customer rather than a new one.
	customerReuseRate = 0.3

	maxTicketsPerReservation = 4
)

// Config is the generation scenario. All three counts must be positive.
type Config struct {
	Events       int
	Days         int
	Reservations int
}

// Validate checks that every count is a positive integer.
func (c Config) Validate() error {
	if c.Events <= 0 {
		return fmt.Errorf("event count must be positive, got %d", c.Events)
	}
	if c.Days <= 0 {
		return fmt.Errorf("day count must be positive, got %d", c.Days)
	}
	if c.Reservations <= 0 {
		return fmt.Errorf("reservation count must be positive, got %d", c.Reservations)
	}
	return nil
}

// Generator builds datasets. All randomness flows through the injected
// source, so a seeded source yields a reproducible dataset.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithNow overrides the clock, letting tests pin the generated date range.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New constructs a Generator drawing randomness from rng.
func New(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{rng: rng, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate runs the whole pipeline and returns the dataset. The only error
// condition is an invalid config; capacity exhaustion during session
// placement silently yields fewer sessions.
func (g *Generator) Generate(cfg Config) (*model.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ds := &model.Dataset{}
	g.buildVenues(ds)
	g.buildEvents(ds, cfg.Events)

	alloc := schedule.NewAllocator(catalog.BaseHours, catalog.PrepTime, catalog.ClosingHour)
	g.buildSessions(ds, alloc, cfg.Days)

	g.buildReservations(ds, cfg.Reservations)
	return ds, nil
}

// buildVenues enumerates the fixed catalog venues.
func (g *Generator) buildVenues(ds *model.Dataset) {
	for i, v := range catalog.Venues {
		ds.Venues = append(ds.Venues, model.Venue{
			ID:       venueIDBase + i,
			Name:     v.Name,
			Capacity: v.Capacity,
			Layout:   v.Layout,
		})
	}
}

// buildEvents creates count event definitions with a uniformly random
// category and a title drawn from that category's pool.
func (g *Generator) buildEvents(ds *model.Dataset, count int) {
	for i := 0; i < count; i++ {
		cat := catalog.Categories[g.rng.Intn(len(catalog.Categories))]
		title := cat.Titles[g.rng.Intn(len(cat.Titles))]
		ds.Events = append(ds.Events, model.EventDefinition{
			ID:          eventIDBase + i,
			Title:       title,
			Description: "Description de " + title,
			Category:    cat.Name,
			DurationMin: cat.DurationMin,
			BasePrice:   cat.BasePrice,
		})
	}
}

// buildSessions crosses every simulated day (starting one day from now) with
// every event. Each pairing picks a random venue and asks the allocator for a
// free slot; a day/event pairing with no admissible slot simply produces no
// session. Each chosen slot is committed before the next lookup so the
// allocator never double-books.
func (g *Generator) buildSessions(ds *model.Dataset, alloc *schedule.Allocator, days int) {
	id := sessionIDBase
	base := g.now().AddDate(0, 0, 1)

	for day := 0; day < days; day++ {
		date := base.AddDate(0, 0, day)
		for _, evt := range ds.Events {
			venue := ds.Venues[g.rng.Intn(len(ds.Venues))]
			duration := time.Duration(evt.DurationMin) * time.Minute

			slots := alloc.AvailableSlots(date, venue.ID, duration)
			if len(slots) == 0 {
				continue
			}
			start := slots[g.rng.Intn(len(slots))]

			ds.Sessions = append(ds.Sessions, model.Session{
				ID:      id,
				EventID: evt.ID,
				Start:   start,
				VenueID: venue.ID,
				Seats:   venue.Capacity,
			})
			alloc.Commit(start, duration, venue.ID)
			id++
		}
	}
}

// buildReservations creates count reservations, each with 1–4 tickets for a
// random session. With no sessions to book against (degenerate config) the
// whole phase is skipped, customers included.
func (g *Generator) buildReservations(ds *model.Dataset, count int) {
	if len(ds.Sessions) == 0 {
		return
	}

	eventByID := make(map[int]model.EventDefinition, len(ds.Events))
	for _, e := range ds.Events {
		eventByID[e.ID] = e
	}

	customerID := customerIDBase
	reservationID := reservationIDBase
	ticketID := ticketIDBase

	for i := 0; i < count; i++ {
		var cust model.Customer
		if len(ds.Customers) > 0 && g.rng.Float64() < customerReuseRate {
			cust = ds.Customers[g.rng.Intn(len(ds.Customers))]
		} else {
			cust = g.newCustomer(customerID)
			ds.Customers = append(ds.Customers, cust)
			customerID++
		}

		session := ds.Sessions[g.rng.Intn(len(ds.Sessions))]
		evt := eventByID[session.EventID]
		status := catalog.PickWeighted(g.rng, catalog.StatusWeights)

		var total float64
		for n := g.rng.Intn(maxTicketsPerReservation) + 1; n > 0; n-- {
			fare := catalog.PickWeighted(g.rng, catalog.FareWeights)
			price := evt.BasePrice * catalog.FareMultipliers[fare]
			ds.Tickets = append(ds.Tickets, model.Ticket{
				ID:            ticketID,
				ReservationID: reservationID,
				SessionID:     session.ID,
				Fare:          fare,
				Price:         price,
				Code:          ticketCode(ticketID, reservationID),
				Status:        ticketStatus(status),
			})
			total += price
			ticketID++
		}

		ds.Reservations = append(ds.Reservations, model.Reservation{
			ID:         reservationID,
			CustomerID: cust.ID,
			CreatedAt:  g.now(),
			Status:     status,
			Total:      total,
		})
		reservationID++
	}
}

// newCustomer synthesizes a customer with contact details derived from the
// name pools.
func (g *Generator) newCustomer(id int) model.Customer {
	last := catalog.LastNames[g.rng.Intn(len(catalog.LastNames))]
	first := catalog.FirstNames[g.rng.Intn(len(catalog.FirstNames))]
	return model.Customer{
		ID:        id,
		LastName:  last,
		FirstName: first,
		Email:     strings.ToLower(first) + "." + strings.ToLower(last) + "@email.com",
		Phone:     fmt.Sprintf("06%08d", 10000000+g.rng.Intn(90000000)),
	}
}

// ticketCode embeds both IDs plus a random 8-hex-character suffix so codes
// stay unique even across independent runs.
func ticketCode(ticketID, reservationID int) string {
	u := uuid.New()
	return fmt.Sprintf("B%d-%d-%x", ticketID, reservationID, u[:4])
}

// ticketStatus derives a ticket's status from its reservation: VALID for paid
// reservations, otherwise the reservation status verbatim.
func ticketStatus(s model.ReservationStatus) string {
	if s == model.StatusPaid {
		return model.TicketStatusValid
	}
	return string(s)
}
