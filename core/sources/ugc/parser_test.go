package ugc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filmsHTML = `
<div class="sub-nav-section" id="nowShowing">
  <h2 class="title--medium-caps">À l'affiche</h2>
  <div class="component--film-tile">
    <a class="color--dark-blue" href="film_dracula_17055.html" data-film-kind="Épouvante" data-film-label="vo">DRACULA</a>
    <img class="lozad" data-src="/img/dracula.jpg">
    <img alt="interdiction" src="/img/picto-noir-12.png">
    <span class="film-tag">UGC Culte</span>
    <a class="see-video" href="#">Bande-annonce</a>
  </div>
  <div class="component--film-tile">
    <a class="color--dark-blue" href="film_playtime_4242.html">Playtime</a>
  </div>
  <div class="component--film-tile">
    <a class="color--dark-blue" href="film_broken_1.html">   </a>
  </div>
</div>
<div class="sub-nav-section" id="comingSoon">
  <h2 class="title--medium-caps">Prochainement</h2>
</div>`

func TestParseFilmsPage(t *testing.T) {
	page, err := ParseFilmsPage(filmsHTML)
	require.NoError(t, err)
	require.Len(t, page.Sections, 2)
	assert.Equal(t, 2, page.TotalFilms)

	sec := page.Sections[0]
	assert.Equal(t, "nowShowing", sec.ID)
	assert.Equal(t, "À l'affiche", sec.Title)
	require.Len(t, sec.Films, 2)

	dracula := sec.Films[0]
	assert.Equal(t, "DRACULA", dracula.Title)
	assert.Equal(t, "17055", dracula.FilmID)
	assert.Equal(t, "film_dracula_17055.html", dracula.URL)
	assert.Equal(t, "Épouvante", dracula.Genre)
	assert.Equal(t, "vo", dracula.Label)
	assert.Equal(t, "/img/dracula.jpg", dracula.PosterURL)
	assert.Equal(t, "12+", dracula.AgeRestriction)
	assert.Equal(t, "UGC Culte", dracula.UGCLabel)
	assert.True(t, dracula.HasTrailer)

	playtime := sec.Films[1]
	assert.Equal(t, "4242", playtime.FilmID)
	assert.Empty(t, playtime.AgeRestriction)
	assert.False(t, playtime.HasTrailer)

	assert.Empty(t, page.Sections[1].Films)
}

func TestParseFilmsPageEmptyInput(t *testing.T) {
	for _, html := range []string{"", "<div>nothing relevant</div>", "<<<not html"} {
		page, err := ParseFilmsPage(html)
		require.NoError(t, err)
		assert.Zero(t, page.TotalFilms)
	}
}

func TestAllFilms(t *testing.T) {
	page, err := ParseFilmsPage(filmsHTML)
	require.NoError(t, err)
	films := page.AllFilms()
	require.Len(t, films, 2)
	assert.Equal(t, "DRACULA", films[0].Title)
}

func TestDecodeExport(t *testing.T) {
	data := []byte(`{
	  "films": {
	    "17055": {
	      "film_id": "17055",
	      "title": "DRACULA",
	      "available_dates": ["2025-07-31"],
	      "cinemas": [{"name": "UGC Ciné Cité Les Halles", "showtime_count": 4}]
	    },
	    "9999": {"film_id": "9999", "title": "  "}
	  }
	}`)

	export, err := DecodeExport(data)
	require.NoError(t, err)
	// The titleless entry is skipped, not an error.
	require.Len(t, export.Films, 1)
	film := export.Films["17055"]
	assert.Equal(t, "DRACULA", film.Title)
	assert.Equal(t, []string{"2025-07-31"}, film.AvailableDates)
	require.Len(t, film.Cinemas, 1)
	assert.Equal(t, 4, film.Cinemas[0].ShowtimeCount)
}

func TestDecodeExportInvalidJSON(t *testing.T) {
	_, err := DecodeExport([]byte("{broken"))
	assert.Error(t, err)
}

func TestParseDaysPage(t *testing.T) {
	html := `
	<div id="nav_date_2_2025-08-01"></div>
	<div id="nav_date_1_2025-07-31"></div>
	<div id="nav_date_3_2025-07-31"></div>`

	dates, err := ParseDaysPage(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-07-31", "2025-08-01"}, dates)
}

func TestParseDaysPageTextFallback(t *testing.T) {
	dates, err := ParseDaysPage(`<p>Prochaines séances : 2025-08-02 et 2025-08-03</p>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-02", "2025-08-03"}, dates)
}

func TestParseShowingsPage(t *testing.T) {
	html := `
	<div class="component--cinema-list-item">
	  <a class="color--dark-blue">UGC Ciné Cité Les Halles</a>
	  <ul>
	    <li><div class="screening-start">10:45</div></li>
	    <li><div class="screening-start">Séance 14:20</div></li>
	    <li><div class="other">not a time</div></li>
	  </ul>
	</div>
	<div class="component--cinema-list-item">
	  <a class="color--dark-blue">UGC Montparnasse</a>
	</div>`

	counts, times, err := ParseShowingsPage(html)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, CinemaCount{Name: "UGC Ciné Cité Les Halles", ShowtimeCount: 2}, counts[0])
	assert.Equal(t, []string{"10:45", "14:20"}, times["UGC Ciné Cité Les Halles"])
	assert.Equal(t, CinemaCount{Name: "UGC Montparnasse", ShowtimeCount: 0}, counts[1])
}
