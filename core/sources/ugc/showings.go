package ugc

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CinemaCount is the per-cinema showing count for a film. UGC exposes how
// many screenings a cinema runs but not their individual times.
type CinemaCount struct {
	Name          string `json:"name"`
	ShowtimeCount int    `json:"showtime_count"`
}

// FilmDates is the builder output for one film: the dates it plays on and
// the cinemas showing it.
type FilmDates struct {
	FilmID         string        `json:"film_id"`
	Title          string        `json:"title"`
	AvailableDates []string      `json:"available_dates"`
	Cinemas        []CinemaCount `json:"cinemas"`
}

// Export is the persisted per-film dates document the combine step reads.
type Export struct {
	Films map[string]FilmDates `json:"films"`
}

// DecodeExport parses a persisted film-dates document. Entries without a
// title are dropped; other missing keys stay zero-valued.
func DecodeExport(data []byte) (*Export, error) {
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("decoding UGC export: %w", err)
	}
	for id, film := range export.Films {
		if strings.TrimSpace(film.Title) == "" {
			delete(export.Films, id)
		}
	}
	return &export, nil
}

var (
	navDateRe = regexp.MustCompile(`nav_date_\d+_(\d{4}-\d{2}-\d{2})`)
	isoDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	hhmmRe    = regexp.MustCompile(`(\d{2}:\d{2})`)
)

// ParseDaysPage extracts the available dates from the day-navigation
// fragment. Dates live in element ids like "nav_date_1_2025-07-31"; when
// none are found, any ISO date in the text is taken as a fallback.
// The result is deduplicated and sorted.
func ParseDaysPage(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dates []string
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	doc.Find("div[id]").Each(func(_ int, s *goquery.Selection) {
		if m := navDateRe.FindStringSubmatch(s.AttrOr("id", "")); m != nil {
			add(m[1])
		}
	})

	if len(dates) == 0 {
		for _, d := range isoDateRe.FindAllString(doc.Text(), -1) {
			add(d)
		}
	}

	sort.Strings(dates)
	return dates, nil
}

// ParseShowingsPage extracts per-cinema screening times from the showings
// fragment for one film and date.
func ParseShowingsPage(html string) ([]CinemaCount, map[string][]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, err
	}

	var counts []CinemaCount
	times := make(map[string][]string)

	doc.Find("div.component--cinema-list-item").Each(func(_ int, sec *goquery.Selection) {
		name := strings.TrimSpace(sec.Find("a.color--dark-blue").First().Text())
		if name == "" {
			name = "Unknown Cinema"
		}

		sec.Find("li").Each(func(_ int, li *goquery.Selection) {
			text := strings.TrimSpace(li.Find("div.screening-start").First().Text())
			if m := hhmmRe.FindStringSubmatch(text); m != nil {
				times[name] = append(times[name], m[1])
			}
		})

		counts = append(counts, CinemaCount{Name: name, ShowtimeCount: len(times[name])})
	})

	return counts, times, nil
}
