// Package coherencetest provides test utilities for coherence.
package coherencetest

import (
	"testing"
	"time"

	"github.com/crateframework/coherence"
)

// NewTestCatalog creates a small three-archetype catalog covering one
// archetype per category, with distinct correlate and affect profiles so
// ranking tests can force clear winners.
func NewTestCatalog() *coherence.Catalog {
	return coherence.NewCatalog(
		coherence.ArchetypeDefinition{
			ID:             "builder",
			Name:           "The Builder",
			Category:       coherence.Static,
			Function:       "Builds things",
			PrimaryAffects: []coherence.Affect{coherence.Care, coherence.Seeking},
			States: map[coherence.CoherenceState]coherence.StateContent{
				coherence.StateHigh: {Label: "Master Builder", Description: "Builds well."},
				coherence.StateBase: {Label: "Builder", Description: "Builds."},
				coherence.StateLow:  {Label: "Stuck Builder", Description: "Cannot build."},
			},
			Correlates: map[coherence.Trait]float64{
				coherence.Conscientiousness: 0.8,
				coherence.Openness:          0.5,
			},
		},
		coherence.ArchetypeDefinition{
			ID:             "explorer",
			Name:           "The Explorer",
			Category:       coherence.Dynamic,
			Function:       "Explores things",
			PrimaryAffects: []coherence.Affect{coherence.Seeking},
			States: map[coherence.CoherenceState]coherence.StateContent{
				coherence.StateHigh: {Label: "Trailblazer", Description: "Explores well."},
				coherence.StateBase: {Label: "Explorer", Description: "Explores."},
				coherence.StateLow:  {Label: "Wanderer", Description: "Drifts."},
			},
			Correlates: map[coherence.Trait]float64{
				coherence.Extraversion: 0.8,
				coherence.Openness:     0.8,
				coherence.Emotionality: -0.6,
			},
		},
		coherence.ArchetypeDefinition{
			ID:             "mender",
			Name:           "The Mender",
			Category:       coherence.Updater,
			Function:       "Mends things",
			PrimaryAffects: []coherence.Affect{coherence.Care, coherence.Panic},
			States: map[coherence.CoherenceState]coherence.StateContent{
				coherence.StateHigh: {Label: "Restorer", Description: "Mends well."},
				coherence.StateBase: {Label: "Mender", Description: "Mends."},
				coherence.StateLow:  {Label: "Fixer", Description: "Over-mends."},
			},
			Correlates: map[coherence.Trait]float64{
				coherence.Emotionality:  0.8,
				coherence.Agreeableness: 0.8,
			},
		},
	)
}

// NeutralTraits returns a trait profile with every dimension at 50.
// Against any catalog this scores every archetype at exactly 50.
func NeutralTraits() coherence.TraitProfile {
	return coherence.TraitProfile{
		Honesty:           50,
		Emotionality:      50,
		Extraversion:      50,
		Agreeableness:     50,
		Conscientiousness: 50,
		Openness:          50,
	}
}

// NewMoodObservation creates an observation for a known mood label at a
// fixed offset before now, failing the test on unknown labels.
func NewMoodObservation(t *testing.T, label string, hoursAgo float64, now time.Time) coherence.MoodObservation {
	t.Helper()
	obs, err := coherence.NewMoodObservation(label, now.Add(-time.Duration(hoursAgo*float64(time.Hour))))
	if err != nil {
		t.Fatalf("failed to create mood observation %q: %v", label, err)
	}
	return obs
}

// NewEmotionalState creates an emotional state with the given primary
// affect at full intensity and no secondary affect.
func NewEmotionalState(primary coherence.Affect) *coherence.EmotionalState {
	return &coherence.EmotionalState{
		Primary:   coherence.NewAffectObservation(primary, 100),
		Timestamp: time.Now(),
	}
}

// RequireRanking asserts that scores are ranked in the exact archetype
// order given.
func RequireRanking(t *testing.T, scores []coherence.ArchetypeScore, want ...coherence.ArchetypeID) {
	t.Helper()
	if len(scores) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(scores))
	}
	for i, id := range want {
		if scores[i].ArchetypeID != id {
			t.Fatalf("rank %d: expected %s, got %s", i, id, scores[i].ArchetypeID)
		}
	}
}

// RequireState asserts a profile's current coherence state.
func RequireState(t *testing.T, profile coherence.UserArchetypeProfile, want coherence.CoherenceState) {
	t.Helper()
	if profile.State != want {
		t.Fatalf("expected state %s, got %s", want, profile.State)
	}
}
