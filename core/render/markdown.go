// Package render: Markdown renderer.
// Emits one table per showtime day, grouped for human reading.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

// MarkdownRenderer writes the schedule as per-date Markdown tables.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render walks the merged records in order, opening a new table whenever
// the date changes. Merge order guarantees ascending dates per cinema, so
// the day sections follow the dataset's own ordering.
func (r *MarkdownRenderer) Render(ds *core.Dataset) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Paris Showtimes\n\n")
	fmt.Fprintf(&b, "Generated %s from %s.\n", ds.Metadata.CreatedAt, strings.Join(ds.Metadata.Sources, ", "))

	byDay := make(map[string][]core.CanonicalRecord)
	var days []string
	for _, rec := range ds.Records {
		if _, seen := byDay[rec.ShowtimeDay]; !seen {
			days = append(days, rec.ShowtimeDay)
		}
		byDay[rec.ShowtimeDay] = append(byDay[rec.ShowtimeDay], rec)
	}
	sort.Strings(days)

	for _, day := range days {
		fmt.Fprintf(&b, "\n## %s\n\n", day)
		b.WriteString("| Movie | Cinema | Showings | Times |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, rec := range byDay[day] {
			fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
				rec.Movie, rec.Cinema, rec.NbShowings, strings.Join(rec.Showtimes, ", "))
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
