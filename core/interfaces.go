// Package core defines the canonical showtime types and the pipeline
// interfaces shared by every source parser. Each stage of the pipeline is a
// clean, testable interface.
package core

import (
	"context"
	"time"
)

// FetchResult holds a raw provider document and response metadata.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       []byte
}

// RawToken is one line of extracted program text, tagged with its position
// in the document. Tokens are ephemeral: produced and consumed within a
// single parse pass.
type RawToken struct {
	Text  string
	Index int
	Page  int
}

// FilmShowing is one scheduled screening in a source's native shape.
// Title is required; every other field is present only when the source
// format carries it.
type FilmShowing struct {
	Title          string
	Showtime       string // "13h30" or "13:30", empty when the source only reports counts
	Duration       string
	Director       string
	Category       string
	Genre          string
	AgeRestriction string
	UGCLabel       string
	HasTrailer     bool
}

// DateBlock groups the showings of one calendar date by cinema hall.
// Halls preserves the order halls were first seen in the document.
type DateBlock struct {
	Date     time.Time
	DayName  string
	Halls    []string
	Showings map[string][]FilmShowing
}

// CanonicalRecord is the unified output unit every source is normalized
// into. Showtimes is never nil: an absent showtime list serializes as [].
type CanonicalRecord struct {
	Movie       string   `json:"movie"`
	Cinema      string   `json:"cinema"`
	ShowtimeDay string   `json:"showtime_day"` // ISO-8601 date
	NbShowings  int      `json:"nb_showings"`
	Showtimes   []string `json:"showtimes"`
}

// Key returns the deduplication key (movie, cinema, showtime_day).
func (r CanonicalRecord) Key() RecordKey {
	return RecordKey{Movie: r.Movie, Cinema: r.Cinema, ShowtimeDay: r.ShowtimeDay}
}

// RecordKey identifies at most one CanonicalRecord per merge pass.
type RecordKey struct {
	Movie       string
	Cinema      string
	ShowtimeDay string
}

// Fetcher retrieves a raw document from a provider URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts the canonical dataset into a final output format.
type Renderer interface {
	Render(ds *Dataset) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".csv").
	Extension() string
}

// Clock supplies the run date for components that anchor relative dates.
// Injected so tests can pin a fixed date.
type Clock func() time.Time
