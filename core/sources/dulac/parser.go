// Package dulac parses the Dulac Cinemas booking site: the per-day
// showtimes page it serves as HTML, and the JSON export derived from it.
package dulac

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// SourceName identifies this provider in dataset metadata.
const SourceName = "Dulac Cinemas"

// Film is one listed film with its enumerated screening times.
type Film struct {
	Title         string   `json:"title"`
	Kind          string   `json:"kind"`
	Duration      string   `json:"duration"`
	Showtimes     []string `json:"showtimes"`
	ShowtimeCount int      `json:"showtime_count"`
}

// Cinema groups the films one house plays on a given day.
type Cinema struct {
	Name     string `json:"name"`
	CinemaID string `json:"cinema_id"`
	Films    []Film `json:"films"`
}

// Day is one date's listing across every Dulac house.
type Day struct {
	Date    string   `json:"date"`
	Cinemas []Cinema `json:"cinemas"`
}

// Export is the persisted multi-day document the combine step reads.
type Export struct {
	Dates map[string]Day `json:"dates"`
}

// DecodeExport parses a persisted showtimes document. Schema drift is
// tolerated: missing optional keys stay zero-valued; film entries without
// a title are skipped.
func DecodeExport(data []byte) (*Export, error) {
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("decoding Dulac export: %w", err)
	}
	for dateStr, day := range export.Dates {
		for ci := range day.Cinemas {
			kept := day.Cinemas[ci].Films[:0]
			for _, film := range day.Cinemas[ci].Films {
				if strings.TrimSpace(film.Title) == "" {
					log.Debug().Str("date", dateStr).Str("cinema", day.Cinemas[ci].Name).Msg("skipping film entry without title")
					continue
				}
				kept = append(kept, film)
			}
			day.Cinemas[ci].Films = kept
		}
		export.Dates[dateStr] = day
	}
	return &export, nil
}

var hhmmRe = regexp.MustCompile(`(\d{2}:\d{2})`)

// ParseDayPage extracts one day's listing from the booking site's HTML.
// Malformed or empty markup yields an empty day, not an error.
func ParseDayPage(html, date string) (Day, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Day{Date: date}, err
	}

	day := Day{Date: date}
	doc.Find("div.wrapper-salle").Each(func(_ int, sec *goquery.Selection) {
		nameElem := sec.Find("h2").First()
		cinema := Cinema{
			Name:     strings.TrimSpace(nameElem.Text()),
			CinemaID: nameElem.AttrOr("data-cinema-id", ""),
		}
		if cinema.Name == "" {
			cinema.Name = "Unknown Cinema"
		}

		sec.Find("li.film-item-affiche").Each(func(_ int, item *goquery.Selection) {
			title := strings.TrimSpace(item.Find("div.movie-title").First().Text())
			if title == "" {
				return
			}

			film := Film{
				Title:    title,
				Kind:     strings.TrimSpace(item.Find("span.film-kind").First().Text()),
				Duration: strings.TrimSpace(item.Find("span.film-duration").First().Text()),
			}

			item.Find("ul.list-horaires li.item-horaire").Each(func(_ int, h *goquery.Selection) {
				text := strings.TrimSpace(h.Find("div.field-content.field_seance_date").First().Text())
				if m := hhmmRe.FindStringSubmatch(text); m != nil {
					film.Showtimes = append(film.Showtimes, m[1])
				}
			})
			film.ShowtimeCount = len(film.Showtimes)

			cinema.Films = append(cinema.Films, film)
		})

		day.Cinemas = append(day.Cinemas, cinema)
	})

	return day, nil
}
