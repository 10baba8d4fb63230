// File: services/planner/enrich.go
package planner

import (
	"net/url"
	"regexp"
	"strings"
)

// placeMentionRe matches an action verb followed by a place-name span that
// runs until sentence-ending punctuation or a line break.
var placeMentionRe = regexp.MustCompile(`(?i)\b(?:visit|explore|discover|experience|see|check out|tour|dine at|eat at|lunch at|dinner at|brunch at|stay at|relax at|unwind at|swim at|sunbathe at|hike|trek|climb|kayak|snorkel at|surf at|stroll through|stroll along|walk through|walk along|wander through|browse|shop at|picnic at|photograph|admire|marvel at|sample|taste)\s+([^.!?\n]+)`)

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// Enrich appends a map-search link after each unique place mention in the
// recommendation text. Pure text transform: deduplicates case-insensitively
// per call and skips any link already present, so repeated passes are
// no-ops.
func Enrich(text, destination string) string {
	matches := placeMentionRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	type insertion struct {
		pos  int
		link string
	}
	var insertions []insertion
	seen := make(map[string]bool)

	for _, m := range matches {
		span := text[m[2]:m[3]]
		name := normalizePlaceName(span)
		if len(name) < 3 {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		link := mapSearchBase + url.QueryEscape(name+" "+destination)
		if strings.Contains(text, link) {
			continue
		}
		insertions = append(insertions, insertion{pos: m[3], link: link})
	}

	// Apply from the back so earlier offsets stay valid.
	for i := len(insertions) - 1; i >= 0; i-- {
		ins := insertions[i]
		text = text[:ins.pos] + " (" + ins.link + ")" + text[ins.pos:]
	}
	return text
}

// normalizePlaceName collapses whitespace and truncates the span at the
// first dash or open parenthesis, which typically start a price or rating
// annotation rather than the name itself.
func normalizePlaceName(span string) string {
	if i := strings.IndexAny(span, "-("); i >= 0 {
		span = span[:i]
	}
	return strings.Join(strings.Fields(span), " ")
}
