package core

import "time"

// DateRange is the inclusive span of showtime days in a dataset.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Metadata is the envelope exporters attach around the canonical records.
// Everything here is computed from the records themselves.
type Metadata struct {
	CreatedAt    string         `json:"created_at"`
	Sources      []string       `json:"sources"`
	TotalRecords int            `json:"total_records"`
	Cinemas      []string       `json:"cinemas"`
	DateRange    DateRange      `json:"date_range"`
	PerCinema    map[string]int `json:"showings_per_cinema"`
	PerDate      map[string]int `json:"showings_per_date"`
}

// Dataset is the final merged schedule: an ordered record collection plus
// its metadata envelope.
type Dataset struct {
	Metadata Metadata          `json:"metadata"`
	Records  []CanonicalRecord `json:"records"`
}

// Empty reports whether no source contributed any record.
func (d *Dataset) Empty() bool {
	return len(d.Records) == 0
}

// NewDataset wraps merged records in a computed metadata envelope.
// Records are expected to already be in merge order; cinema order in the
// envelope follows first appearance.
func NewDataset(records []CanonicalRecord, sources []string, now time.Time) *Dataset {
	meta := Metadata{
		CreatedAt:    now.UTC().Format(time.RFC3339),
		Sources:      sources,
		TotalRecords: len(records),
		PerCinema:    make(map[string]int),
		PerDate:      make(map[string]int),
	}

	seenCinema := make(map[string]bool)
	for _, r := range records {
		if !seenCinema[r.Cinema] {
			seenCinema[r.Cinema] = true
			meta.Cinemas = append(meta.Cinemas, r.Cinema)
		}
		meta.PerCinema[r.Cinema] += r.NbShowings
		meta.PerDate[r.ShowtimeDay] += r.NbShowings

		if meta.DateRange.Start == "" || r.ShowtimeDay < meta.DateRange.Start {
			meta.DateRange.Start = r.ShowtimeDay
		}
		if r.ShowtimeDay > meta.DateRange.End {
			meta.DateRange.End = r.ShowtimeDay
		}
	}

	return &Dataset{Metadata: meta, Records: records}
}
