package pccclub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runDate = time.Date(2025, time.July, 30, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return runDate }

const christineProgram = `HORAIRES DU 30 JUILLET AU 5 AOÛT

MERCREDI 30
13h30 : Les Parapluies de Cherbourg Cannes Fever
19h00 : Les Parapluies de Cherbourg Cannes Fever

JEUDI 31
14h00 : Blow Out (35mm)
`

func TestTokenize(t *testing.T) {
	tokens := Tokenize("un\n\ndeux\ftrois\n")
	require.Len(t, tokens, 3)
	assert.Equal(t, "un", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].Index)
	assert.Equal(t, 1, tokens[1].Page)
	assert.Equal(t, "trois", tokens[2].Text)
	assert.Equal(t, 2, tokens[2].Page)
}

func TestParseForAssignsRunDates(t *testing.T) {
	blocks := NewParser(fixedClock).ParseFor("Christine", christineProgram)

	require.Len(t, blocks, 2)
	assert.Equal(t, "2025-07-30", blocks[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-07-31", blocks[1].Date.Format("2006-01-02"))

	first := blocks[0].Showings["Christine"]
	require.Len(t, first, 2)
	assert.Equal(t, "Les Parapluies de Cherbourg", first[0].Title)
	assert.Equal(t, "13h30", first[0].Showtime)
	assert.Equal(t, "Cannes Fever", first[0].Category)
	assert.Equal(t, "19h00", first[1].Showtime)

	second := blocks[1].Showings["Christine"]
	require.Len(t, second, 1)
	assert.Equal(t, "Blow Out", second[0].Title)
	assert.Equal(t, "(35mm)", second[0].Duration)
}

func TestParseForOtherHall(t *testing.T) {
	blocks := NewParser(fixedClock).ParseFor("Ecoles", "MERCREDI 30\n18h00 : Persona\n")
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Showings["Ecoles"], 1)
	assert.Empty(t, blocks[0].Showings["Christine"])
}

func TestParseDegradedMode(t *testing.T) {
	blocks := NewParser(fixedClock).Parse("13h30 : Playtime\n")
	require.Len(t, blocks, 1)
	assert.Equal(t, "2025-07-30", blocks[0].Date.Format("2006-01-02"))
}

func TestParseEmptyText(t *testing.T) {
	assert.Empty(t, NewParser(fixedClock).Parse(""))
}
