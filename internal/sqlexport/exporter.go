// Package sqlexport serializes a generated dataset as a single SQL
// transaction of INSERT statements, one per record, grouped by table. It is
// a pure formatting pass; the dataset is never mutated.
package sqlexport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/billetterie-datagen/internal/model"
)

// Export writes the dataset to w wrapped in BEGIN;/COMMIT;, one INSERT per
// record in generation order, with a blank line between table groups.
func Export(w io.Writer, ds *model.Dataset) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "BEGIN;\n\n")

	for _, v := range ds.Venues {
		fmt.Fprintf(bw, "INSERT INTO SALLE VALUES (%d, %s, %d, %s);\n",
			v.ID, quote(v.Name), v.Capacity, quote(v.Layout))
	}
	fmt.Fprintln(bw)

	for _, e := range ds.Events {
		fmt.Fprintf(bw, "INSERT INTO EVENEMENT VALUES (%d, %s, %s, %s, %s, %s);\n",
			e.ID, quote(e.Title), quote(e.Description), quote(e.Category),
			quote(fmtDuration(e.DurationMin)), fmtPrice(e.BasePrice))
	}
	fmt.Fprintln(bw)

	for _, s := range ds.Sessions {
		fmt.Fprintf(bw, "INSERT INTO SEANCE VALUES (%d, %d, %s, %d, %d);\n",
			s.ID, s.EventID, quote(fmtTime(s.Start)), s.VenueID, s.Seats)
	}
	fmt.Fprintln(bw)

	for _, c := range ds.Customers {
		fmt.Fprintf(bw, "INSERT INTO CLIENT VALUES (%d, %s, %s, %s, %s);\n",
			c.ID, quote(c.LastName), quote(c.FirstName), quote(c.Email), quote(c.Phone))
	}
	fmt.Fprintln(bw)

	for _, r := range ds.Reservations {
		fmt.Fprintf(bw, "INSERT INTO RESERVATION VALUES (%d, %d, %s, %s, %s);\n",
			r.ID, r.CustomerID, quote(fmtTime(r.CreatedAt)), quote(string(r.Status)), fmtPrice(r.Total))
	}
	fmt.Fprintln(bw)

	for _, t := range ds.Tickets {
		fmt.Fprintf(bw, "INSERT INTO BILLET VALUES (%d, %d, %d, %s, %s, %s, %s);\n",
			t.ID, t.ReservationID, t.SessionID, quote(string(t.Fare)), fmtPrice(t.Price),
			quote(t.Code), quote(t.Status))
	}

	fmt.Fprintf(bw, "\nCOMMIT;\n")

	// bufio errors are sticky, so one check after the final flush covers
	// every write above.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write sql: %w", err)
	}
	return nil
}

// WriteFile exports the dataset to path, creating or truncating the file.
// Any I/O failure is returned to the caller.
func WriteFile(path string, ds *model.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Export(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// quote renders s as a single-quoted SQL string literal, doubling embedded
// quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// fmtTime renders a timestamp in the stable format shared by every date
// column.
func fmtTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// fmtDuration renders a minute count as HH:MM:00.
func fmtDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// fmtPrice renders a price with two decimals.
func fmtPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
