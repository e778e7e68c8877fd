package segment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

var runDate = time.Date(2025, time.July, 30, 11, 45, 0, 0, time.UTC) // a Wednesday

func fixedClock() time.Time { return runDate }

func tokens(lines ...string) []core.RawToken {
	toks := make([]core.RawToken, 0, len(lines))
	for i, l := range lines {
		toks = append(toks, core.RawToken{Text: l, Index: i, Page: 1})
	}
	return toks
}

func newSegmenter() *Segmenter {
	return New([]string{"Christine", "Ecoles"}, fixedClock)
}

func TestSegmentAssignsConsecutiveDates(t *testing.T) {
	blocks := newSegmenter().Segment(tokens(
		"HORAIRES DU 30 JUILLET AU 5 AOÛT",
		"MERCREDI 30",
		"13h30 : Les Parapluies de Cherbourg Cannes Fever",
		"JEUDI 31",
		"14h00 : Le Mépris",
		"VENDREDI 1",
		"16h00 : Playtime",
	))

	require.Len(t, blocks, 3)
	assert.Equal(t, "2025-07-30", blocks[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-07-31", blocks[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-08-01", blocks[2].Date.Format("2006-01-02"))
	assert.Equal(t, "Wednesday", blocks[0].DayName)
	assert.Equal(t, "Thursday", blocks[1].DayName)
	assert.Equal(t, "Friday", blocks[2].DayName)
}

func TestSegmentTwoColumnSplit(t *testing.T) {
	blocks := newSegmenter().Segment(tokens(
		"MERCREDI 30",
		"13h30 Blow Out 13h30 Body Double",
	))

	require.Len(t, blocks, 1)
	block := blocks[0]
	require.Len(t, block.Showings["Christine"], 1)
	require.Len(t, block.Showings["Ecoles"], 1)
	assert.Equal(t, "Blow Out", block.Showings["Christine"][0].Title)
	assert.Equal(t, "Body Double", block.Showings["Ecoles"][0].Title)
	assert.Equal(t, "13h30", block.Showings["Christine"][0].Showtime)
	assert.Equal(t, "13h30", block.Showings["Ecoles"][0].Showtime)
}

func TestSegmentDurationNotMistakenForColumn(t *testing.T) {
	blocks := newSegmenter().Segment(tokens(
		"MERCREDI 30",
		"20h00 : Barry Lyndon Stanley Kubrick 3h05",
	))

	require.Len(t, blocks, 1)
	showings := blocks[0].Showings["Christine"]
	require.Len(t, showings, 1)
	assert.Equal(t, "Barry Lyndon", showings[0].Title)
	assert.Equal(t, "3h05", showings[0].Duration)
	assert.Empty(t, blocks[0].Showings["Ecoles"])
}

func TestSegmentHallHeaderAttribution(t *testing.T) {
	blocks := newSegmenter().Segment(tokens(
		"MERCREDI 30",
		"ÉCOLES",
		"18h00 : Mulholland Drive David Lynch",
		"JEUDI 31",
		"18h00 : Eraserhead David Lynch",
	))

	require.Len(t, blocks, 2)
	// Header switches the current hall...
	require.Len(t, blocks[0].Showings["Ecoles"], 1)
	assert.Equal(t, "Mulholland Drive", blocks[0].Showings["Ecoles"][0].Title)
	// ...and the date boundary resets it to the default.
	require.Len(t, blocks[1].Showings["Christine"], 1)
	assert.Equal(t, "Eraserhead", blocks[1].Showings["Christine"][0].Title)
}

func TestSegmentDegradedSingleBlock(t *testing.T) {
	blocks := newSegmenter().Segment(tokens(
		"13h30 : Le Samouraï",
		"19h00 : Le Cercle Rouge",
	))

	require.Len(t, blocks, 1)
	assert.Equal(t, "2025-07-30", blocks[0].Date.Format("2006-01-02"))
	assert.Len(t, blocks[0].Showings["Christine"], 2)
}

func TestSegmentDefaultHall(t *testing.T) {
	seg := newSegmenter()
	seg.DefaultHall = "Ecoles"
	blocks := seg.Segment(tokens(
		"MERCREDI 30",
		"13h30 : Persona",
	))

	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Showings["Ecoles"], 1)
	assert.Equal(t, "Persona", blocks[0].Showings["Ecoles"][0].Title)
}

func TestSegmentDiscardsNoise(t *testing.T) {
	blocks := newSegmenter().Segment(tokens(
		"MERCREDI 30",
		"TARIF UNIQUE 7 EUROS",
		"13h30 : Playtime",
		"lignes sans aucun motif reconnu",
	))

	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Showings["Christine"], 1)
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, newSegmenter().Segment(nil))
}
