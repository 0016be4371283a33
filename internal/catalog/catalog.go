// Package catalog holds the static reference data the generator draws from:
// venues, event categories, pricing tiers, status weights, operating hours
// and name pools. Pure configuration, no behaviour beyond weighted sampling.
package catalog

import (
	"math/rand"
	"time"

	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/model"
)

// PrepTime is the setup/teardown margin around every session: 30 min of prep
// plus a 5 min safety buffer, applied on both sides of the booked interval.
const PrepTime = 35 * time.Minute

// ClosingHour is the operating-hours boundary; no session may end at or past
// this hour of the day.
const ClosingHour = 23

// BaseHours are the canonical daily start times sessions are drawn from.
var BaseHours = []int{11, 14, 17, 20}

// VenueSpec describes one of the fixed venues.
type VenueSpec struct {
	Name     string
	Capacity int
	Layout   string
}

// Venues is the fixed set of halls, enumerated once per run.
var Venues = []VenueSpec{
	{Name: "Grande Salle Opéra", Capacity: 500, Layout: "Theatre"},
	{Name: "Auditorium Principal", Capacity: 300, Layout: "Concert"},
	{Name: "Salle Mozart", Capacity: 200, Layout: "Concert"},
	{Name: "Théâtre Municipal", Capacity: 400, Layout: "Theatre"},
}

// Category groups the titles, duration and base price shared by a kind of
// event.
type Category struct {
	Name        string
	Titles      []string
	DurationMin int
	BasePrice   float64
}

// Categories lists every event category, in a fixed order so that seeded runs
// are reproducible.
var Categories = []Category{
	{Name: "Opera", Titles: []string{"La Traviata", "Carmen", "Don Giovanni"}, DurationMin: 180, BasePrice: 60},
	{Name: "Theatre", Titles: []string{"Le Misanthrope", "Hamlet", "Cyrano"}, DurationMin: 150, BasePrice: 45},
	{Name: "Concert", Titles: []string{"Symphonie n°5", "Les Quatre Saisons"}, DurationMin: 120, BasePrice: 50},
	{Name: "Danse", Titles: []string{"Lac des Cygnes", "Casse-Noisette"}, DurationMin: 150, BasePrice: 55},
}

// Weighted pairs a value with its relative sampling weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// PickWeighted samples one value from the table with probability proportional
// to its weight. Weights need not sum to 1. The table must be non-empty.
func PickWeighted[T any](rng *rand.Rand, table []Weighted[T]) T {
	var total float64
	for _, w := range table {
		total += w.Weight
	}
	r := rng.Float64() * total
	for _, w := range table {
		r -= w.Weight
		if r < 0 {
			return w.Value
		}
	}
	// Float rounding can leave r at exactly 0 after the last entry.
	return table[len(table)-1].Value
}

// StatusWeights is the reservation-status distribution.
var StatusWeights = []Weighted[model.ReservationStatus]{
	{Value: model.StatusPaid, Weight: 0.85},
	{Value: model.StatusPending, Weight: 0.10},
	{Value: model.StatusCancelled, Weight: 0.05},
}

// FareMultipliers maps each fare tier to its price multiplier.
var FareMultipliers = map[model.FareTier]float64{
	model.FareStandard: 1.0,
	model.FareReduced:  0.8,
	model.FareStudent:  0.5,
	model.FareSenior:   0.7,
	model.FareGroup:    0.85,
}

// FareWeights samples fare tiers uniformly; kept as a weight table so the
// distribution can be skewed without touching the builder.
var FareWeights = []Weighted[model.FareTier]{
	{Value: model.FareStandard, Weight: 1},
	{Value: model.FareReduced, Weight: 1},
	{Value: model.FareStudent, Weight: 1},
	{Value: model.FareSenior, Weight: 1},
	{Value: model.FareGroup, Weight: 1},
}

// Name pools for synthesized customers.
var (
	LastNames  = []string{"Martin", "Dubois", "Thomas", "Robert", "Petit", "Durand"}
	FirstNames = []string{"Jean", "Marie", "Pierre", "Sophie", "Paul", "Catherine"}
)
