// Package segment partitions a flat program-text token stream into
// day-sized DateBlocks. The document carries day names but no absolute
// calendar dates, so the first block is anchored to an injected run date
// and each following block advances one calendar day.
package segment

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/extract"
)

var (
	// dayBoundaryRe matches day headers like "MERCREDI 30" or "JEUDI 31".
	dayBoundaryRe = regexp.MustCompile(`^([A-ZÀÂÄÉÈÊËÏÎÔÖÙÛÜŸÇ]+)\s+(\d{1,2})$`)

	// showingLineRe matches a program line carrying one or two showings.
	// The weekly program lays the two halls out side by side, so a single
	// physical line may encode one showing per hall:
	//   "13h30 : FILM A (35mm)   19h00 : FILM B Cannes Fever"
	// The colon after the time is present in most program revisions but
	// not all, so it is optional.
	showingLineRe = regexp.MustCompile(`^(\d{1,2}[h:]\d{2})\s*:?\s*(.+?)(?:\s+(\d{1,2}[h:]\d{2})\s*:?\s*(.+))?$`)
)

// Segmenter converts a token stream into DateBlocks, attributing each
// showing to a cinema hall. Exactly two halls exist for this source. A
// showing line is attributed to the most recently seen hall header; hall
// attribution resets to DefaultHall at every date boundary. In two-column
// lines column order maps onto hall order regardless of the current hall.
type Segmenter struct {
	Halls       []string
	Now         core.Clock
	DefaultHall string
}

// New creates a Segmenter over the given halls using the injected clock.
// The default hall is the first one.
func New(halls []string, now core.Clock) *Segmenter {
	if now == nil {
		now = time.Now
	}
	s := &Segmenter{Halls: halls, Now: now}
	if len(halls) > 0 {
		s.DefaultHall = halls[0]
	}
	return s
}

// Segment walks the token stream and produces one DateBlock per day
// boundary. When the document contains no day boundary at all, every
// recognized showing lands in a single block at the run date, a silent
// degraded mode, not an error.
func (s *Segmenter) Segment(tokens []core.RawToken) []core.DateBlock {
	runDate := truncateToDay(s.Now())

	var blocks []core.DateBlock
	var orphans []hallShowing
	currentHall := s.DefaultHall

	for _, tok := range tokens {
		line := strings.TrimSpace(tok.Text)
		if line == "" {
			continue
		}

		if name, num, ok := dayBoundary(line); ok {
			date := runDate.AddDate(0, 0, len(blocks))
			blocks = append(blocks, core.DateBlock{
				Date:     date,
				DayName:  date.Weekday().String(),
				Showings: make(map[string][]core.FilmShowing),
			})
			currentHall = s.DefaultHall
			log.Debug().Str("day", name).Int("num", num).Str("date", date.Format("2006-01-02")).Msg("day boundary")
			continue
		}

		if hall, ok := s.hallHeader(line); ok {
			currentHall = hall
			continue
		}

		showings := s.parseShowingLine(line, currentHall)
		if len(showings) == 0 {
			log.Debug().Int("index", tok.Index).Str("line", line).Msg("discarding unrecognized line")
			continue
		}

		if len(blocks) == 0 {
			orphans = append(orphans, showings...)
			continue
		}
		appendShowings(&blocks[len(blocks)-1], showings)
	}

	if len(blocks) == 0 && len(orphans) > 0 {
		block := core.DateBlock{
			Date:     runDate,
			DayName:  runDate.Weekday().String(),
			Showings: make(map[string][]core.FilmShowing),
		}
		appendShowings(&block, orphans)
		return []core.DateBlock{block}
	}

	return blocks
}

// hallShowing pairs a parsed showing with the hall it belongs to.
type hallShowing struct {
	hall    string
	showing core.FilmShowing
}

// parseShowingLine extracts one or two showings from a program line. A
// two-column line splits into two distinct showings, column 1 → first
// hall, column 2 → second hall, never merged into one record. The split is
// only kept when both columns yield a valid showing: a duration like
// "1h45" inside a title would otherwise be mistaken for a second column.
func (s *Segmenter) parseShowingLine(line, currentHall string) []hallShowing {
	m := showingLineRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	t1, ok := extract.Time(m[1])
	if !ok {
		return nil
	}

	if m[3] != "" && len(s.Halls) >= 2 && !strings.HasSuffix(m[2], "(") {
		if t2, ok := extract.Time(m[3]); ok {
			first, ok1 := extract.Showing(m[2], t1)
			second, ok2 := extract.Showing(m[4], t2)
			if ok1 && ok2 {
				return []hallShowing{
					{hall: s.Halls[0], showing: first},
					{hall: s.Halls[1], showing: second},
				}
			}
		}
	}

	// Single column: everything after the first time is one movie info.
	rest := strings.TrimSpace(line[len(m[1]):])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	showing, ok := extract.Showing(rest, t1)
	if !ok {
		return nil
	}
	return []hallShowing{{hall: currentHall, showing: showing}}
}

// hallHeader reports whether the line is a header naming a known hall.
func (s *Segmenter) hallHeader(line string) (string, bool) {
	folded := strings.ToUpper(stripDiacritics(line))
	for _, h := range s.Halls {
		if folded == strings.ToUpper(stripDiacritics(h)) {
			return h, true
		}
	}
	return "", false
}

func dayBoundary(line string) (string, int, bool) {
	m := dayBoundaryRe.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	if _, ok := extract.DayName(m[1]); !ok {
		return "", 0, false
	}
	num, _ := strconv.Atoi(m[2])
	return m[1], num, true
}

func appendShowings(block *core.DateBlock, showings []hallShowing) {
	for _, hs := range showings {
		if _, seen := block.Showings[hs.hall]; !seen {
			block.Halls = append(block.Halls, hs.hall)
		}
		block.Showings[hs.hall] = append(block.Showings[hs.hall], hs.showing)
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// stripDiacritics folds the accented characters appearing in hall names.
func stripDiacritics(s string) string {
	replacer := strings.NewReplacer("É", "E", "È", "E", "Ê", "E", "é", "e", "è", "e", "ê", "e")
	return replacer.Replace(s)
}
