// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package recommend

import (
	"testing"

	"github.com/tomtom215/cinescribe/internal/models"
)

func sig(typ, value string) models.PreferenceSignal {
	return models.PreferenceSignal{Type: typ, Value: value, Confidence: 0.9}
}

func TestFoldSignalsEmpty(t *testing.T) {
	t.Parallel()

	c := FoldSignals(nil)

	if !c.ColdStart() {
		t.Error("expected cold start for empty signal list")
	}
	if c.LikedGenres == nil || c.DislikedGenres == nil {
		t.Error("genre sets must be non-nil empty slices")
	}
	if len(c.LikedGenres) != 0 || len(c.DislikedGenres) != 0 {
		t.Errorf("expected empty genre sets, got %v / %v", c.LikedGenres, c.DislikedGenres)
	}
}

func TestFoldSignalsInsertionOrderAndDedup(t *testing.T) {
	t.Parallel()

	c := FoldSignals([]models.PreferenceSignal{
		sig(models.SignalLikeGenre, "Comedy"),
		sig(models.SignalLikeGenre, "Horror"),
		sig(models.SignalLikeGenre, "Comedy"), // defensive re-dedup
		sig(models.SignalDislikeGenre, "Action"),
	})

	wantLiked := []string{"Comedy", "Horror"}
	if len(c.LikedGenres) != len(wantLiked) {
		t.Fatalf("liked = %v, want %v", c.LikedGenres, wantLiked)
	}
	for i, g := range wantLiked {
		if c.LikedGenres[i] != g {
			t.Errorf("liked[%d] = %q, want %q", i, c.LikedGenres[i], g)
		}
	}
	if len(c.DislikedGenres) != 1 || c.DislikedGenres[0] != "Action" {
		t.Errorf("disliked = %v, want [Action]", c.DislikedGenres)
	}
	if c.ColdStart() {
		t.Error("liked genres present, must not be cold start")
	}
}

func TestFoldSignalsYearLastOccurrenceWins(t *testing.T) {
	t.Parallel()

	c := FoldSignals([]models.PreferenceSignal{
		sig(models.SignalYearMin, "2000"),
		sig(models.SignalYearMax, "2020"),
		sig(models.SignalYearMin, "1990"), // later mention overwrites, not min/max merge
	})

	if c.YearMin == nil || *c.YearMin != 1990 {
		t.Errorf("year_min = %v, want 1990", c.YearMin)
	}
	if c.YearMax == nil || *c.YearMax != 2020 {
		t.Errorf("year_max = %v, want 2020", c.YearMax)
	}
	if c.ColdStart() {
		t.Error("year bounds present, must not be cold start")
	}
}

func TestFoldSignalsMalformedYearSkipped(t *testing.T) {
	t.Parallel()

	c := FoldSignals([]models.PreferenceSignal{
		sig(models.SignalYearMin, "not-a-year"),
	})

	if c.YearMin != nil {
		t.Errorf("year_min = %v, want nil", c.YearMin)
	}
}

func TestColdStartDislikesOnly(t *testing.T) {
	t.Parallel()

	c := FoldSignals([]models.PreferenceSignal{
		sig(models.SignalDislikeGenre, "Horror"),
	})

	// Disliked genres alone do not leave the cold-start state.
	if !c.ColdStart() {
		t.Error("expected cold start when only dislikes are present")
	}
}
