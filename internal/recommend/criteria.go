// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package recommend

import (
	"strconv"

	"github.com/tomtom215/cinescribe/internal/models"
)

// Criteria is the fully-typed filter consumed by the parameterized query
// layer. Conditions combine with AND; genre slices are insertion-ordered
// sets. It is never assembled by string concatenation.
type Criteria struct {
	// LikedGenres: genre field must contain at least one (if non-empty).
	LikedGenres []string

	// DislikedGenres: genre field must contain none of these.
	DislikedGenres []string

	// YearMin/YearMax bound the release year inclusively when set.
	YearMin *int
	YearMax *int

	// ExcludeUserID excludes movies already rated by this user when > 0.
	ExcludeUserID int

	// Limit caps the result size.
	Limit int
}

// ColdStart reports whether the criteria carry no positive preference at
// all: no liked genres and no year bounds. Disliked genres alone do not
// leave the cold-start state.
func (c Criteria) ColdStart() bool {
	return len(c.LikedGenres) == 0 && c.YearMin == nil && c.YearMax == nil
}

// FoldSignals reduces a session's signals, in creation order, into Criteria.
//
// Genre signals accumulate into insertion-ordered deduplicated sets. Year
// bounds use last-occurrence-wins: each new mention overwrites the previous
// value rather than merging by min/max. That mirrors the way a conversation
// revises itself ("after 2000... actually after 2010") and is the inherited
// behavior; callers must not "fix" it to an aggregate.
func FoldSignals(sigs []models.PreferenceSignal) Criteria {
	c := Criteria{
		LikedGenres:    []string{},
		DislikedGenres: []string{},
	}

	liked := make(map[string]struct{})
	disliked := make(map[string]struct{})

	for _, s := range sigs {
		switch s.Type {
		case models.SignalLikeGenre:
			if _, dup := liked[s.Value]; !dup {
				liked[s.Value] = struct{}{}
				c.LikedGenres = append(c.LikedGenres, s.Value)
			}
		case models.SignalDislikeGenre:
			if _, dup := disliked[s.Value]; !dup {
				disliked[s.Value] = struct{}{}
				c.DislikedGenres = append(c.DislikedGenres, s.Value)
			}
		case models.SignalYearMin:
			if year, err := strconv.Atoi(s.Value); err == nil {
				c.YearMin = &year
			}
		case models.SignalYearMax:
			if year, err := strconv.Atoi(s.Value); err == nil {
				c.YearMax = &year
			}
		}
	}

	return c
}

// BasisFromCriteria exposes resolved criteria in response form.
func BasisFromCriteria(c Criteria) Basis {
	return Basis{
		LikedGenres:    c.LikedGenres,
		DislikedGenres: c.DislikedGenres,
		YearMin:        c.YearMin,
		YearMax:        c.YearMax,
	}
}
