// Package extract recognizes sub-fields (showtime, duration, category,
// director, title) inside one line of program text. Patterns are tried in
// priority order and extraction is always best-effort: a line matching no
// pattern is noise for the caller to discard, never an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

var (
	// timeRe matches "13h30", "9h05" and "13:30" style tokens.
	timeRe = regexp.MustCompile(`^(\d{1,2})[h:](\d{2})$`)

	// durationRe matches duration annotations inside a title remainder:
	// a parenthesized print format "(35mm)" or a running time "1h30".
	durationRe = regexp.MustCompile(`\((\d+mm)\)|(\d{1,2}h\d{2})`)

	// dirPrefixRe strips "dir." / "réal." prefixes in front of a director name.
	dirPrefixRe = regexp.MustCompile(`(?i)\b(?:dir\.|réal\.)\s*`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// Time validates a candidate showtime token. Values outside 00h00–23h59
// are rejected. The source's own separator style is preserved.
func Time(s string) (string, bool) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Duration finds a duration annotation in text and returns it along with
// the text with the annotation removed.
func Duration(text string) (dur string, rest string) {
	loc := durationRe.FindStringIndex(text)
	if loc == nil {
		return "", text
	}
	dur = text[loc[0]:loc[1]]
	rest = text[:loc[0]] + text[loc[1]:]
	return dur, rest
}

// Category matches text against the fixed vocabulary of program strands
// and returns the match plus the text with it removed. Unmatched text is
// left alone, never forced into a category.
func Category(text string) (cat string, rest string) {
	for _, c := range categories {
		if idx := strings.Index(text, c); idx >= 0 {
			return c, text[:idx] + text[idx+len(c):]
		}
	}
	return "", text
}

// Director matches text against the known-directors list only, stripping a
// "dir." prefix when one precedes the name.
func Director(text string) (dir string, rest string) {
	for _, d := range knownDirectors {
		idx := strings.Index(text, d)
		if idx < 0 {
			continue
		}
		rest = text[:idx] + text[idx+len(d):]
		rest = dirPrefixRe.ReplaceAllString(rest, "")
		return d, rest
	}
	return "", text
}

// CleanTitle collapses whitespace and strips stray punctuation from a title
// remainder. It returns ok=false when nothing usable is left: an empty or
// too-short remainder, or a bare category/day-of-week token (guards against
// header lines being misread as titles).
func CleanTitle(s string) (string, bool) {
	// Sub-field removal can leave behind empty bracket pairs
	// ("Title [Cannes Fever]" → "Title []").
	s = spaceRe.ReplaceAllString(s, " ")
	for _, empty := range []string{"[]", "[ ]", "()", "( )"} {
		s = strings.ReplaceAll(s, empty, "")
	}
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,:;")
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 3 {
		return "", false
	}
	if isCategoryToken(s) || IsDayToken(s) {
		return "", false
	}
	return s, true
}

// Showing assembles one FilmShowing from a movie-info remainder and its
// already-validated showtime. The remainder is stripped of category,
// director and duration sub-fields in that order; whatever survives is the
// title. ok=false means the line carried no usable title and the candidate
// must be dropped.
func Showing(text, showtime string) (core.FilmShowing, bool) {
	if len(strings.TrimSpace(text)) < 3 {
		return core.FilmShowing{}, false
	}

	cat, rest := Category(text)
	dir, rest := Director(rest)
	dur, rest := Duration(rest)

	title, ok := CleanTitle(rest)
	if !ok {
		return core.FilmShowing{}, false
	}

	return core.FilmShowing{
		Title:    title,
		Showtime: showtime,
		Duration: dur,
		Director: dir,
		Category: cat,
	}, true
}
