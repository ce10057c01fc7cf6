// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package signals extracts structured preference signals from free-text chat
// messages using fixed keyword and regex matching.
//
// Extraction is a pure function of the input text: no state, no storage, no
// model. The keyword table is an immutable process-wide table constructed at
// package init. Matching is deliberately simple:
//
//   - Polarity markers decide like vs dislike for every genre mentioned in
//     the same message; negative markers win over positive ones.
//   - Genre keywords match by substring containment on the lowercased text.
//   - Year bounds match "after/since/from <year>" and "before/until <year>".
//
// There is no natural-language understanding beyond this. "I don't love slow
// movies but horror is fine" reads as a negative-polarity message mentioning
// horror, and that is by contract, not a bug to fix here.
package signals

import (
	"regexp"
	"strings"

	"github.com/tomtom215/cinescribe/internal/models"
)

// Draft is an extracted signal before persistence. The store assigns IDs and
// timestamps when a draft is appended to a session.
type Draft struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Confidence levels assigned by the extractor. Genre mentions with an
// explicit polarity marker are strong; bare mentions are a weak baseline.
// Year bounds are literal numbers and carry full confidence.
const (
	ConfidenceStrong   = 0.9
	ConfidenceBaseline = 0.6
	ConfidenceExact    = 1.0
)

// genreKeyword maps a lowercase keyword phrase to its canonical genre label.
type genreKeyword struct {
	keyword string
	label   string
}

// genreTable is the fixed ordered keyword table. Order matters: output genre
// signals are emitted in table order, and multiple keywords mapping to the
// same label collapse to a single signal for that label.
var genreTable = []genreKeyword{
	{"action", "Action"},
	{"adventure", "Adventure"},
	{"animated", "Animation"},
	{"animation", "Animation"},
	{"comedy", "Comedy"},
	{"crime", "Crime"},
	{"documentary", "Documentary"},
	{"drama", "Drama"},
	{"fantasy", "Fantasy"},
	{"horror", "Horror"},
	{"musical", "Musical"},
	{"mystery", "Mystery"},
	{"romance", "Romance"},
	{"romantic", "Romance"},
	{"science fiction", "Science Fiction"},
	{"sci-fi", "Science Fiction"},
	{"scifi", "Science Fiction"},
	{"thriller", "Thriller"},
	{"western", "Western"},
}

// Polarity markers are matched as whole words on the lowercased text.
// "like" does not match inside "dislike": \b requires a word/non-word edge.
var (
	positiveRe = regexp.MustCompile(`\b(like|love|enjoy|prefer)\b`)
	negativeRe = regexp.MustCompile(`\b(dislike|hate|don't like|do not like)\b`)
)

// Year bound patterns, tried in order; the first match wins per bound.
var (
	yearMinRes = []*regexp.Regexp{
		regexp.MustCompile(`\bafter\s+(\d{4})\b`),
		regexp.MustCompile(`\bsince\s+(\d{4})\b`),
		regexp.MustCompile(`\bfrom\s+(\d{4})\b`),
	}
	yearMaxRes = []*regexp.Regexp{
		regexp.MustCompile(`\bbefore\s+(\d{4})\b`),
		regexp.MustCompile(`\buntil\s+(\d{4})\b`),
	}
)

// Extract maps free text to an ordered, deduplicated list of signal drafts.
//
// Output order is fixed: genre signals in keyword-table order, then year_min,
// then year_max. No two drafts in one call share (Type, Value). Empty or
// blank text yields an empty result, never an error.
func Extract(text string) []Draft {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	negative := negativeRe.MatchString(lower)
	positive := positiveRe.MatchString(lower)

	genreType := models.SignalLikeGenre
	if negative {
		// Negative polarity takes precedence when both appear.
		genreType = models.SignalDislikeGenre
	}

	confidence := ConfidenceBaseline
	if negative || positive {
		confidence = ConfidenceStrong
	}

	type key struct{ typ, value string }
	seen := make(map[key]struct{})

	var drafts []Draft
	add := func(d Draft) {
		k := key{d.Type, d.Value}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		drafts = append(drafts, d)
	}

	for _, g := range genreTable {
		if strings.Contains(lower, g.keyword) {
			add(Draft{Type: genreType, Value: g.label, Confidence: confidence})
		}
	}

	for _, re := range yearMinRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			add(Draft{Type: models.SignalYearMin, Value: m[1], Confidence: ConfidenceExact})
			break
		}
	}

	for _, re := range yearMaxRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			add(Draft{Type: models.SignalYearMax, Value: m[1], Confidence: ConfidenceExact})
			break
		}
	}

	return drafts
}
