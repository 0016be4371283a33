package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/catalog"
	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/model"
)

var testNow = time.Date(2026, time.August, 1, 9, 30, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return New(rng, WithNow(func() time.Time { return testNow }))
}

func generate(t *testing.T, seed int64, cfg Config) *model.Dataset {
	t.Helper()
	ds, err := newTestGenerator(seed).Generate(cfg)
	require.NoError(t, err)
	return ds
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"all positive", Config{Events: 10, Days: 60, Reservations: 1000}, true},
		{"zero events", Config{Events: 0, Days: 60, Reservations: 1000}, false},
		{"negative days", Config{Events: 10, Days: -1, Reservations: 1000}, false},
		{"zero reservations", Config{Events: 10, Days: 60, Reservations: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGenerate_RejectsInvalidConfig(t *testing.T) {
	_, err := newTestGenerator(1).Generate(Config{Events: 0, Days: 1, Reservations: 1})
	assert.ErrorContains(t, err, "invalid config")
}

func TestGenerate_DatasetShape(t *testing.T) {
	ds := generate(t, 1, Config{Events: 10, Days: 20, Reservations: 200})

	require.Len(t, ds.Venues, len(catalog.Venues))
	for i, v := range ds.Venues {
		assert.Equal(t, 100+i, v.ID)
		assert.Equal(t, catalog.Venues[i].Capacity, v.Capacity)
	}

	require.Len(t, ds.Events, 10)
	for i, e := range ds.Events {
		assert.Equal(t, 1+i, e.ID)
		assert.NotEmpty(t, e.Title)
		assert.Equal(t, "Description de "+e.Title, e.Description)
	}

	require.NotEmpty(t, ds.Sessions)
	require.Len(t, ds.Reservations, 200)

	venueByID := map[int]model.Venue{}
	for _, v := range ds.Venues {
		venueByID[v.ID] = v
	}
	eventByID := map[int]model.EventDefinition{}
	for _, e := range ds.Events {
		eventByID[e.ID] = e
	}

	for i, s := range ds.Sessions {
		assert.Equal(t, 100+i, s.ID)
		require.Contains(t, eventByID, s.EventID)
		require.Contains(t, venueByID, s.VenueID)
		assert.Equal(t, venueByID[s.VenueID].Capacity, s.Seats)
	}
}

func TestGenerate_SessionsStartInsideSimulatedRange(t *testing.T) {
	const days = 5
	ds := generate(t, 2, Config{Events: 6, Days: days, Reservations: 10})

	first := testNow.AddDate(0, 0, 1)
	last := testNow.AddDate(0, 0, days)
	for _, s := range ds.Sessions {
		assert.False(t, s.Start.Before(time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)))
		assert.False(t, s.Start.After(time.Date(last.Year(), last.Month(), last.Day(), 23, 0, 0, 0, time.UTC)))
	}
}

func TestGenerate_SessionIntervalsNeverOverlap(t *testing.T) {
	ds := generate(t, 3, Config{Events: 12, Days: 30, Reservations: 10})
	require.NotEmpty(t, ds.Sessions)

	durations := map[int]time.Duration{}
	for _, e := range ds.Events {
		durations[e.ID] = time.Duration(e.DurationMin) * time.Minute
	}

	type padded struct {
		start, end time.Time
	}
	byVenue := map[int][]padded{}
	for _, s := range ds.Sessions {
		byVenue[s.VenueID] = append(byVenue[s.VenueID], padded{
			start: s.Start.Add(-catalog.PrepTime),
			end:   s.Start.Add(durations[s.EventID] + catalog.PrepTime),
		})
	}

	for venueID, ivs := range byVenue {
		for i := range ivs {
			for j := 0; j < i; j++ {
				a, b := ivs[i], ivs[j]
				assert.False(t, a.start.Before(b.end) && b.start.Before(a.end),
					"venue %d: [%v,%v) overlaps [%v,%v)", venueID, a.start, a.end, b.start, b.end)
			}
		}
	}
}

func TestGenerate_SessionsEndBeforeClosing(t *testing.T) {
	ds := generate(t, 4, Config{Events: 12, Days: 15, Reservations: 10})
	require.NotEmpty(t, ds.Sessions)

	durations := map[int]time.Duration{}
	for _, e := range ds.Events {
		durations[e.ID] = time.Duration(e.DurationMin) * time.Minute
	}
	for _, s := range ds.Sessions {
		end := s.Start.Add(durations[s.EventID])
		closing := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(),
			catalog.ClosingHour, 0, 0, 0, s.Start.Location())
		assert.True(t, end.Before(closing), "session %d ends at %v", s.ID, end)
	}
}

func TestGenerate_ReservationTotalsAndTicketCounts(t *testing.T) {
	ds := generate(t, 5, Config{Events: 8, Days: 10, Reservations: 300})

	ticketsByReservation := map[int][]model.Ticket{}
	for _, tk := range ds.Tickets {
		ticketsByReservation[tk.ReservationID] = append(ticketsByReservation[tk.ReservationID], tk)
	}

	for _, r := range ds.Reservations {
		tickets := ticketsByReservation[r.ID]
		require.NotEmpty(t, tickets, "reservation %d has no tickets", r.ID)
		assert.LessOrEqual(t, len(tickets), 4)

		var sum float64
		for _, tk := range tickets {
			sum += tk.Price
		}
		assert.InDelta(t, sum, r.Total, 1e-9, "reservation %d", r.ID)
	}
}

func TestGenerate_TicketStatusMirrorsReservation(t *testing.T) {
	ds := generate(t, 6, Config{Events: 8, Days: 10, Reservations: 300})
	require.NotEmpty(t, ds.Tickets)

	statusByReservation := map[int]model.ReservationStatus{}
	for _, r := range ds.Reservations {
		statusByReservation[r.ID] = r.Status
	}

	for _, tk := range ds.Tickets {
		rs := statusByReservation[tk.ReservationID]
		if rs == model.StatusPaid {
			assert.Equal(t, model.TicketStatusValid, tk.Status)
		} else {
			assert.Equal(t, string(rs), tk.Status)
		}
	}
}

func TestGenerate_TicketPricesFollowFareTiers(t *testing.T) {
	ds := generate(t, 7, Config{Events: 8, Days: 10, Reservations: 100})

	eventByID := map[int]model.EventDefinition{}
	for _, e := range ds.Events {
		eventByID[e.ID] = e
	}
	sessionByID := map[int]model.Session{}
	for _, s := range ds.Sessions {
		sessionByID[s.ID] = s
	}

	for _, tk := range ds.Tickets {
		evt := eventByID[sessionByID[tk.SessionID].EventID]
		mult, ok := catalog.FareMultipliers[tk.Fare]
		require.True(t, ok, "unknown fare tier %q", tk.Fare)
		assert.InDelta(t, evt.BasePrice*mult, tk.Price, 1e-9)
	}
}

func TestGenerate_TicketCodesUnique(t *testing.T) {
	ds := generate(t, 8, Config{Events: 8, Days: 20, Reservations: 500})
	require.NotEmpty(t, ds.Tickets)

	seen := map[string]bool{}
	for _, tk := range ds.Tickets {
		assert.False(t, seen[tk.Code], "duplicate code %s", tk.Code)
		seen[tk.Code] = true
	}
}

func TestGenerate_CustomersAreReused(t *testing.T) {
	ds := generate(t, 9, Config{Events: 8, Days: 10, Reservations: 400})

	// With 30% reuse there must be fewer customers than reservations.
	assert.Less(t, len(ds.Customers), len(ds.Reservations))

	customerIDs := map[int]bool{}
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
		assert.NotEmpty(t, c.Email)
		assert.Len(t, c.Phone, 10)
	}
	for _, r := range ds.Reservations {
		assert.True(t, customerIDs[r.CustomerID], "reservation %d references unknown customer", r.ID)
	}
}

func TestBuildReservations_SkippedWithoutSessions(t *testing.T) {
	g := newTestGenerator(10)
	ds := &model.Dataset{}
	g.buildVenues(ds)
	g.buildEvents(ds, 3)

	// No sessions were generated, so the reservation phase must be a no-op:
	// no customers, reservations or tickets are minted.
	g.buildReservations(ds, 50)

	assert.Empty(t, ds.Customers)
	assert.Empty(t, ds.Reservations)
	assert.Empty(t, ds.Tickets)
}
