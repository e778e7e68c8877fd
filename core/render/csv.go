// Package render: CSV renderer.
// Flattens the dataset into the tabular
// movie,cinema,showtime_day,nb_showings,showtimes shape.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

// CSVRenderer writes the records as a flat table. Showtimes are joined
// with ";" inside one cell.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes a header row followed by one row per record.
func (r *CSVRenderer) Render(ds *core.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"movie", "cinema", "showtime_day", "nb_showings", "showtimes"}); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range ds.Records {
		row := []string{
			rec.Movie,
			rec.Cinema,
			rec.ShowtimeDay,
			strconv.Itoa(rec.NbShowings),
			strings.Join(rec.Showtimes, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}
