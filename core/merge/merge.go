// Package merge unions normalized records across sources into the final
// ordered dataset, collapsing duplicates per (movie, cinema, showtime_day).
package merge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

// group accumulates every input record sharing one key. No record's
// information is ever dropped: times union, counts take the maximum.
type group struct {
	record   core.CanonicalRecord
	times    map[string]bool
	maxCount int
	firstIdx int
}

// Merge produces the final dataset from the ordered union of per-source
// records. Within a key, showtimes are set-unioned (exact duplicates
// collapse) and sorted chronologically; nb_showings is recomputed from the
// union when it is non-empty, otherwise the maximum reported count wins.
// Output ordering is cinema, then ascending date, then first-seen movie
// order. The result is deterministic for identical input and idempotent.
func Merge(records []core.CanonicalRecord) []core.CanonicalRecord {
	groups := make(map[core.RecordKey]*group)
	var order []core.RecordKey

	for i, rec := range records {
		key := rec.Key()
		g, ok := groups[key]
		if !ok {
			g = &group{
				record: core.CanonicalRecord{
					Movie:       rec.Movie,
					Cinema:      rec.Cinema,
					ShowtimeDay: rec.ShowtimeDay,
				},
				times:    make(map[string]bool),
				firstIdx: i,
			}
			groups[key] = g
			order = append(order, key)
		}
		for _, t := range rec.Showtimes {
			g.times[t] = true
		}
		if rec.NbShowings > g.maxCount {
			g.maxCount = rec.NbShowings
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Cinema != b.Cinema {
			return a.Cinema < b.Cinema
		}
		if a.ShowtimeDay != b.ShowtimeDay {
			return a.ShowtimeDay < b.ShowtimeDay
		}
		return groups[a].firstIdx < groups[b].firstIdx
	})

	out := make([]core.CanonicalRecord, 0, len(order))
	for _, key := range order {
		g := groups[key]
		rec := g.record
		rec.Showtimes = sortedTimes(g.times)
		if len(rec.Showtimes) > 0 {
			rec.NbShowings = len(rec.Showtimes)
		} else {
			rec.NbShowings = g.maxCount
		}
		out = append(out, rec)
	}
	return out
}

// sortedTimes orders a showtime set chronologically. Both "13h30" and
// "13:30" styles sort by their minute-of-day value; the style itself
// breaks exact-value ties so ordering stays deterministic.
func sortedTimes(set map[string]bool) []string {
	times := make([]string, 0, len(set))
	for t := range set {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool {
		mi, mj := minuteOfDay(times[i]), minuteOfDay(times[j])
		if mi != mj {
			return mi < mj
		}
		return times[i] < times[j]
	})
	return times
}

func minuteOfDay(t string) int {
	sep := strings.IndexAny(t, "h:")
	if sep < 0 {
		return 0
	}
	hour, err := strconv.Atoi(t[:sep])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(t[sep+1:])
	if err != nil {
		return hour * 60
	}
	return hour*60 + minute
}
