package extract

import "strings"

// categories is the fixed vocabulary of known program strands. Text that
// matches nothing here is never forced into a category.
var categories = []string{
	"Cannes Fever",
	"SORTIE NATIONALE",
	"Far West",
	"Summer of Love",
	"Toujours à l'affiche",
}

// knownDirectors is the fixed list a director may be matched against.
// Directors are never inferred from free text.
var knownDirectors = []string{
	"Wes Anderson",
	"David Lynch",
	"Stanley Kubrick",
	"Wong Kar-wai",
}

// frenchDays maps uppercase French day names to their English weekday.
var frenchDays = map[string]string{
	"LUNDI":    "Monday",
	"MARDI":    "Tuesday",
	"MERCREDI": "Wednesday",
	"JEUDI":    "Thursday",
	"VENDREDI": "Friday",
	"SAMEDI":   "Saturday",
	"DIMANCHE": "Sunday",
}

// IsDayToken reports whether s is a French day-of-week name.
func IsDayToken(s string) bool {
	_, ok := frenchDays[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// DayName returns the English weekday for a French day name, if known.
func DayName(s string) (string, bool) {
	name, ok := frenchDays[strings.ToUpper(strings.TrimSpace(s))]
	return name, ok
}

func isCategoryToken(s string) bool {
	for _, c := range categories {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
