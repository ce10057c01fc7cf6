// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package signals

import (
	"testing"

	"github.com/tomtom215/cinescribe/internal/models"
)

func TestExtractEmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t"} {
		if got := Extract(text); len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want empty", text, got)
		}
	}
}

func TestExtractNoKeywords(t *testing.T) {
	t.Parallel()

	// Polarity markers alone yield nothing.
	texts := []string{
		"I really like this app",
		"hate mondays",
		"recommend me something good",
	}
	for _, text := range texts {
		if got := Extract(text); len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want empty", text, got)
		}
	}
}

func TestExtractBaselineConfidence(t *testing.T) {
	t.Parallel()

	got := Extract("any good comedy out there?")
	if len(got) != 1 {
		t.Fatalf("expected 1 signal, got %d: %v", len(got), got)
	}
	want := Draft{Type: models.SignalLikeGenre, Value: "Comedy", Confidence: ConfidenceBaseline}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestExtractNegativePolarityWithYear(t *testing.T) {
	t.Parallel()

	got := Extract("I hate action movies after 2015")
	want := []Draft{
		{Type: models.SignalDislikeGenre, Value: "Action", Confidence: ConfidenceStrong},
		{Type: models.SignalYearMin, Value: "2015", Confidence: ConfidenceExact},
	}
	assertDrafts(t, got, want)
}

func TestExtractNegativeWinsOverPositive(t *testing.T) {
	t.Parallel()

	got := Extract("I like comedy but I hate horror")
	want := []Draft{
		{Type: models.SignalDislikeGenre, Value: "Comedy", Confidence: ConfidenceStrong},
		{Type: models.SignalDislikeGenre, Value: "Horror", Confidence: ConfidenceStrong},
	}
	assertDrafts(t, got, want)
}

func TestExtractDislikeDoesNotTriggerPositiveLike(t *testing.T) {
	t.Parallel()

	// "dislike" must not match the whole-word positive marker "like".
	got := Extract("I dislike westerns")
	want := []Draft{
		{Type: models.SignalDislikeGenre, Value: "Western", Confidence: ConfidenceStrong},
	}
	assertDrafts(t, got, want)
}

func TestExtractCanonicalLabelCollapse(t *testing.T) {
	t.Parallel()

	got := Extract("I like sci-fi and science fiction")
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 signal, got %d: %v", len(got), got)
	}
	want := Draft{Type: models.SignalLikeGenre, Value: "Science Fiction", Confidence: ConfidenceStrong}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestExtractOutputOrder(t *testing.T) {
	t.Parallel()

	got := Extract("I love thriller and comedy from 1990 until 2005")
	want := []Draft{
		{Type: models.SignalLikeGenre, Value: "Comedy", Confidence: ConfidenceStrong},
		{Type: models.SignalLikeGenre, Value: "Thriller", Confidence: ConfidenceStrong},
		{Type: models.SignalYearMin, Value: "1990", Confidence: ConfidenceExact},
		{Type: models.SignalYearMax, Value: "2005", Confidence: ConfidenceExact},
	}
	assertDrafts(t, got, want)
}

func TestExtractYearPatternPriority(t *testing.T) {
	t.Parallel()

	// "after" outranks "since"; only the first matching pattern is used.
	got := Extract("movies since 1980 but really after 2000")
	want := []Draft{
		{Type: models.SignalYearMin, Value: "2000", Confidence: ConfidenceExact},
	}
	assertDrafts(t, got, want)
}

func TestExtractYearBoundsOnly(t *testing.T) {
	t.Parallel()

	got := Extract("anything before 1999")
	want := []Draft{
		{Type: models.SignalYearMax, Value: "1999", Confidence: ConfidenceExact},
	}
	assertDrafts(t, got, want)
}

func TestExtractCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Extract("I LOVE HORROR")
	want := []Draft{
		{Type: models.SignalLikeGenre, Value: "Horror", Confidence: ConfidenceStrong},
	}
	assertDrafts(t, got, want)
}

func TestExtractNoDuplicateTypeValuePairs(t *testing.T) {
	t.Parallel()

	texts := []string{
		"I like sci-fi and science fiction and scifi",
		"romantic romance comedy comedy",
		"animated animation after 2010 after 2010",
		"I hate action and I hate action movies",
	}

	for _, text := range texts {
		got := Extract(text)
		seen := make(map[[2]string]bool)
		for _, d := range got {
			k := [2]string{d.Type, d.Value}
			if seen[k] {
				t.Errorf("Extract(%q) emitted duplicate (%s, %s)", text, d.Type, d.Value)
			}
			seen[k] = true
		}
	}
}

func assertDrafts(t *testing.T, got, want []Draft) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d signals %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("signal[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
