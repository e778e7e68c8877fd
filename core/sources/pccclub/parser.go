// Package pccclub parses the Paris Cinema Club weekly program. The input
// is plain text already extracted from the program PDF by an external
// collaborator; this package never touches binary PDF structure.
package pccclub

import (
	"strings"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
	"github.com/XxdarkadamxX/Cinema-showtimes-app/core/segment"
)

// SourceName identifies this provider in dataset metadata.
const SourceName = "Paris Cinema Club"

// Halls are the two physical halls the weekly program covers, in the
// order the two-column layout presents them.
var Halls = []string{"Christine", "Ecoles"}

// Tokenize turns extracted program text into an ordered token stream.
// Blank lines are dropped; form feeds advance the page counter.
func Tokenize(text string) []core.RawToken {
	var tokens []core.RawToken
	page := 1
	index := 0
	for _, rawLine := range strings.Split(text, "\n") {
		for i, part := range strings.Split(rawLine, "\f") {
			if i > 0 {
				page++
			}
			line := strings.TrimSpace(part)
			if line == "" {
				continue
			}
			tokens = append(tokens, core.RawToken{Text: line, Index: index, Page: page})
			index++
		}
	}
	return tokens
}

// Parser turns weekly program text into DateBlocks.
type Parser struct {
	seg *segment.Segmenter
}

// NewParser creates a Parser anchored to the injected clock.
func NewParser(now core.Clock) *Parser {
	return &Parser{seg: segment.New(Halls, now)}
}

// Parse segments a program text into DateBlocks. Missing day markers
// degrade to a single block at the run date.
func (p *Parser) Parse(text string) []core.DateBlock {
	return p.seg.Segment(Tokenize(text))
}

// ParseFor parses a single-hall weekly program (the provider publishes one
// PDF per hall). Every showing in the stream is attributed to that hall
// unless a two-column line or an explicit header says otherwise.
func (p *Parser) ParseFor(hall, text string) []core.DateBlock {
	seg := segment.New(Halls, p.seg.Now)
	seg.DefaultHall = hall
	return seg.Segment(Tokenize(text))
}
