// Package ugc parses the HTML fragments UGC's film endpoints return.
// The films endpoint answers with embedded HTML grouped into sections of
// film tiles; the showings and day-navigation endpoints answer with
// smaller fragments of the same markup family.
package ugc

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// SourceName identifies this provider in dataset metadata.
const SourceName = "UGC"

// Film is one tile of the films listing.
type Film struct {
	Title          string `json:"title"`
	FilmID         string `json:"film_id"`
	URL            string `json:"url"`
	Genre          string `json:"genre"`
	Label          string `json:"label"`
	PosterURL      string `json:"poster_url"`
	AgeRestriction string `json:"age_restriction"`
	UGCLabel       string `json:"ugc_label"`
	HasTrailer     bool   `json:"has_trailer"`
}

// Section is one heading-delimited group of film tiles.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Films []Film `json:"films"`
}

// FilmsPage is the parsed films listing.
type FilmsPage struct {
	Sections   []Section `json:"sections"`
	TotalFilms int       `json:"total_films"`
}

var (
	filmIDRe = regexp.MustCompile(`film_.*?_(\d+)\.html`)
	ageRe    = regexp.MustCompile(`picto-noir-(\d+)\.png`)
)

// ParseFilmsPage extracts the section/tile structure from the films
// listing HTML. Malformed or empty input yields an empty page, not an
// error; tiles missing a title are dropped.
func ParseFilmsPage(html string) (*FilmsPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	page := &FilmsPage{}
	doc.Find("div.sub-nav-section").Each(func(_ int, sec *goquery.Selection) {
		section := Section{
			ID:    sec.AttrOr("id", "unknown"),
			Title: strings.TrimSpace(sec.Find("h2.title--medium-caps").First().Text()),
		}

		sec.Find("div.component--film-tile").Each(func(_ int, tile *goquery.Selection) {
			film, ok := parseFilmTile(tile)
			if !ok {
				log.Debug().Str("section", section.ID).Msg("dropping film tile without title")
				return
			}
			section.Films = append(section.Films, film)
		})

		page.Sections = append(page.Sections, section)
		page.TotalFilms += len(section.Films)
	})

	return page, nil
}

func parseFilmTile(tile *goquery.Selection) (Film, bool) {
	link := tile.Find("a.color--dark-blue").First()
	title := strings.TrimSpace(link.Text())
	if title == "" {
		return Film{}, false
	}

	film := Film{
		Title: title,
		URL:   link.AttrOr("href", ""),
		Genre: link.AttrOr("data-film-kind", ""),
		Label: link.AttrOr("data-film-label", ""),
	}

	if m := filmIDRe.FindStringSubmatch(film.URL); m != nil {
		film.FilmID = m[1]
	}

	film.PosterURL = tile.Find("img.lozad").First().AttrOr("data-src", "")

	if src := tile.Find(`img[alt="interdiction"]`).First().AttrOr("src", ""); src != "" {
		if m := ageRe.FindStringSubmatch(src); m != nil {
			film.AgeRestriction = m[1] + "+"
		}
	}

	film.UGCLabel = strings.TrimSpace(tile.Find("span.film-tag").First().Text())
	film.HasTrailer = tile.Find("a.see-video").Length() > 0

	return film, true
}

// AllFilms flattens every section into one film list, section order
// preserved.
func (p *FilmsPage) AllFilms() []Film {
	var films []Film
	for _, sec := range p.Sections {
		films = append(films, sec.Films...)
	}
	return films
}
