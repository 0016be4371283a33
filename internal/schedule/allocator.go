// Package schedule implements the slot allocator: it tracks, per venue, the
// time intervals already booked (inflated by the preparation margin) and
// computes which of the canonical base hours can still take a session of a
// given duration on a given day.
package schedule

import (
	"slices"
	"time"
)

// interval is a half-open [start, end) time range, already inflated by the
// preparation margin on both sides.
type interval struct {
	start, end time.Time
}

// overlaps reports whether two half-open intervals intersect. Intervals that
// touch exactly at a boundary do not overlap.
func (iv interval) overlaps(o interval) bool {
	return iv.start.Before(o.end) && o.start.Before(iv.end)
}

// Allocator owns the occupancy state of every venue. It is not safe for
// concurrent use; the generator drives it strictly sequentially.
type Allocator struct {
	baseHours   []int
	prep        time.Duration
	closingHour int
	booked      map[int][]interval // venue ID → intervals sorted by start
}

// NewAllocator builds an empty allocator for the given candidate base hours,
// preparation margin, and closing hour.
func NewAllocator(baseHours []int, prep time.Duration, closingHour int) *Allocator {
	return &Allocator{
		baseHours:   slices.Clone(baseHours),
		prep:        prep,
		closingHour: closingHour,
		booked:      make(map[int][]interval),
	}
}

// AvailableSlots returns the admissible unpadded start times for a booking of
// the given duration in a venue on the given day, in base-hour order. The
// time-of-day component of day is ignored. A candidate is rejected when its
// unpadded end reaches or passes the closing hour, or when its padded window
// overlaps an interval already booked that day. An empty result is a normal
// capacity-exhaustion outcome, not an error. Pure query; no state change.
func (a *Allocator) AvailableSlots(day time.Time, venueID int, duration time.Duration) []time.Time {
	dayBooked := a.bookedOn(day, venueID)
	closing := atHour(day, a.closingHour)

	var slots []time.Time
	for _, hour := range a.baseHours {
		start := atHour(day, hour)
		end := start.Add(duration)
		if !end.Before(closing) {
			continue
		}
		padded := interval{start: start.Add(-a.prep), end: end.Add(a.prep)}
		if slices.ContainsFunc(dayBooked, padded.overlaps) {
			continue
		}
		slots = append(slots, start)
	}
	return slots
}

// Commit records a chosen slot: the interval inflated by the prep margin on
// both ends is inserted into the venue's booked list, kept sorted by start.
// The caller must commit each chosen slot before the next availability query
// so that later lookups see it.
func (a *Allocator) Commit(start time.Time, duration time.Duration, venueID int) {
	iv := interval{start: start.Add(-a.prep), end: start.Add(duration).Add(a.prep)}
	ivs := a.booked[venueID]
	i := slices.IndexFunc(ivs, func(x interval) bool { return !x.start.Before(iv.start) })
	if i == -1 {
		a.booked[venueID] = append(ivs, iv)
		return
	}
	a.booked[venueID] = slices.Insert(ivs, i, iv)
}

// bookedOn returns the venue's booked intervals whose padded start falls on
// the same calendar day.
func (a *Allocator) bookedOn(day time.Time, venueID int) []interval {
	y, m, d := day.Date()
	var out []interval
	for _, iv := range a.booked[venueID] {
		iy, im, id := iv.start.Date()
		if iy == y && im == m && id == d {
			out = append(out, iv)
		}
	}
	return out
}

// atHour normalizes day to the given whole hour, dropping any finer
// time-of-day component.
func atHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
