// cmd/main.go is the application entry point.
// It parses the scenario flags, runs the generator, and writes the SQL file.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/generator"
	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/sqlexport"
)

func main() {
	// ── 1. Scenario flags ─────────────────────────────────────────────────
	events := flag.Int("events", 10, "number of event definitions to generate")
	days := flag.Int("days", 60, "number of simulated days, starting tomorrow")
	reservations := flag.Int("reservations", 1000, "number of reservations to generate")
	out := flag.String("o", "donnees_billetterie.sql", "output SQL file path")
	flag.Parse()

	cfg := generator.Config{
		Events:       *events,
		Days:         *days,
		Reservations: *reservations,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// ── 2. Generate the dataset ───────────────────────────────────────────
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := generator.New(rng)

	ds, err := gen.Generate(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("✓ Generated %d venues, %d events, %d sessions, %d customers, %d reservations, %d tickets",
		len(ds.Venues), len(ds.Events), len(ds.Sessions),
		len(ds.Customers), len(ds.Reservations), len(ds.Tickets))

	// ── 3. Export as SQL ──────────────────────────────────────────────────
	if err := sqlexport.WriteFile(*out, ds); err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("✓ Wrote %s", *out)
}
