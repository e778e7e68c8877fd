// Package normalize maps each source's native record shape into the
// canonical (movie, cinema, showtime_day, nb_showings, showtimes) schema.
// One explicit normalizer exists per source variant; all of them share the
// same field normalization rules.
package normalize

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/dulac"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/sources/ugc"
)

// cinemaAliases routes variant spellings of the same physical cinema onto
// one canonical name, so cross-source records group correctly.
var cinemaAliases = map[string]string{
	"Cinéma Christine":      "Christine",
	"Christine Cinéma Club": "Christine",
	"Cinéma des Écoles":     "Ecoles",
	"Écoles Cinéma Club":    "Ecoles",
	"Le Christine":          "Christine",
	"Les Écoles":            "Ecoles",
}

var spaceRe = regexp.MustCompile(`\s+`)

// Title trims and collapses internal whitespace. Case is preserved:
// all-caps listings stay all-caps in the canonical output.
func Title(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// Cinema returns the canonical name for a cinema, applying the fixed alias
// table after whitespace cleanup.
func Cinema(name string) string {
	name = Title(name)
	if canonical, ok := cinemaAliases[name]; ok {
		return canonical
	}
	return name
}

// Day validates and canonicalizes an ISO-8601 date string.
func Day(s string) (string, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// FromUGC flattens the UGC film-dates export. UGC reports per-cinema
// showing counts but no individual times, so every record carries an empty
// showtime list and the source-reported count.
func FromUGC(export *ugc.Export) []core.CanonicalRecord {
	if export == nil {
		return nil
	}

	ids := make([]string, 0, len(export.Films))
	for id := range export.Films {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var records []core.CanonicalRecord
	for _, id := range ids {
		film := export.Films[id]
		movie := Title(film.Title)
		if movie == "" {
			continue
		}
		for _, cinema := range film.Cinemas {
			name := Cinema(cinema.Name)
			for _, date := range film.AvailableDates {
				day, ok := Day(date)
				if !ok || name == "" {
					log.Warn().Str("movie", movie).Str("date", date).Msg("dropping UGC record with unresolvable key")
					continue
				}
				records = append(records, core.CanonicalRecord{
					Movie:       movie,
					Cinema:      name,
					ShowtimeDay: day,
					NbShowings:  cinema.ShowtimeCount,
					Showtimes:   []string{},
				})
			}
		}
	}
	return records
}

// FromDulac flattens the Dulac export. Showtimes are enumerated by the
// source, so nb_showings is their count, falling back to the reported
// count when the enumeration is empty.
func FromDulac(export *dulac.Export) []core.CanonicalRecord {
	if export == nil {
		return nil
	}

	dates := make([]string, 0, len(export.Dates))
	for date := range export.Dates {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var records []core.CanonicalRecord
	for _, date := range dates {
		day, ok := Day(date)
		if !ok {
			log.Warn().Str("date", date).Msg("dropping Dulac day with invalid date")
			continue
		}
		for _, cinema := range export.Dates[date].Cinemas {
			name := Cinema(cinema.Name)
			for _, film := range cinema.Films {
				movie := Title(film.Title)
				if movie == "" || name == "" {
					continue
				}
				times := append([]string{}, film.Showtimes...)
				nb := len(times)
				if nb == 0 {
					nb = film.ShowtimeCount
				}
				records = append(records, core.CanonicalRecord{
					Movie:       movie,
					Cinema:      name,
					ShowtimeDay: day,
					NbShowings:  nb,
					Showtimes:   times,
				})
			}
		}
	}
	return records
}

// FromDateBlocks folds Paris Cinema Club DateBlocks into canonical
// records. Each showing is one screening; showings sharing
// (movie, cinema, date) accumulate into a single record whose
// nb_showings equals the accumulated showtime count.
func FromDateBlocks(blocks []core.DateBlock) []core.CanonicalRecord {
	var order []core.RecordKey
	grouped := make(map[core.RecordKey]*core.CanonicalRecord)

	for _, block := range blocks {
		day := block.Date.Format("2006-01-02")
		for _, hall := range block.Halls {
			cinema := Cinema(hall)
			for _, showing := range block.Showings[hall] {
				movie := Title(showing.Title)
				if movie == "" || cinema == "" {
					continue
				}
				key := core.RecordKey{Movie: movie, Cinema: cinema, ShowtimeDay: day}
				rec, ok := grouped[key]
				if !ok {
					rec = &core.CanonicalRecord{
						Movie:       movie,
						Cinema:      cinema,
						ShowtimeDay: day,
						Showtimes:   []string{},
					}
					grouped[key] = rec
					order = append(order, key)
				}
				if showing.Showtime != "" {
					rec.Showtimes = append(rec.Showtimes, showing.Showtime)
				}
				rec.NbShowings = len(rec.Showtimes)
			}
		}
	}

	records := make([]core.CanonicalRecord, 0, len(order))
	for _, key := range order {
		records = append(records, *grouped[key])
	}
	return records
}
