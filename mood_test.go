package coherence

import (
	"errors"
	"testing"
	"time"
)

func TestMoodQuadrantsCoverAllContributions(t *testing.T) {
	total := 0
	for quadrant, labels := range MoodQuadrants {
		if len(labels) != 9 {
			t.Errorf("quadrant %s has %d labels, want 9", quadrant, len(labels))
		}
		for _, label := range labels {
			if _, ok := MoodContributions[label]; !ok {
				t.Errorf("quadrant %s label %q has no contribution vector", quadrant, label)
			}
			total++
		}
	}

	if total != 36 {
		t.Errorf("expected 36 mood labels, got %d", total)
	}
	if len(MoodContributions) != 36 {
		t.Errorf("expected 36 contribution vectors, got %d", len(MoodContributions))
	}
}

func TestMoodContributionSigns(t *testing.T) {
	// High-positive moods never pull an axis below zero; low-negative
	// moods never push one above zero. The high-negative quadrant is
	// exempt: stress moods may carry an agency spike.
	for _, label := range MoodQuadrants[HighPositive] {
		delta := MoodContributions[label]
		if delta.C < 0 || delta.A < 0 || delta.T < 0 {
			t.Errorf("%s: positive mood with negative contribution %+v", label, delta)
		}
	}
	for _, label := range MoodQuadrants[LowNegative] {
		delta := MoodContributions[label]
		if delta.C > 0 || delta.A > 0 || delta.T > 0 {
			t.Errorf("%s: low-negative mood with positive contribution %+v", label, delta)
		}
	}
}

func TestResolveMood(t *testing.T) {
	delta, err := ResolveMood("Focused")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != (CATDelta{C: 2, A: 1, T: 0}) {
		t.Errorf("ResolveMood(Focused) = %+v, want {2 1 0}", delta)
	}
}

func TestResolveMoodUnknown(t *testing.T) {
	_, err := ResolveMood("Ebullient")
	if err == nil {
		t.Fatal("expected error for unknown mood")
	}
	if !errors.Is(err, ErrUnknownMood) {
		t.Errorf("expected ErrUnknownMood, got %v", err)
	}

	// Labels are case-sensitive.
	if _, err := ResolveMood("focused"); !errors.Is(err, ErrUnknownMood) {
		t.Errorf("expected ErrUnknownMood for lowercase label, got %v", err)
	}
}

func TestNewMoodObservation(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	obs, err := NewMoodObservation("Calm", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.Label != "Calm" {
		t.Errorf("Label = %q, want Calm", obs.Label)
	}
	if !obs.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", obs.Timestamp, at)
	}
	if obs.CAT != (CATDelta{C: 1, A: 0, T: 2}) {
		t.Errorf("CAT = %+v, want {1 0 2}", obs.CAT)
	}

	if _, err := NewMoodObservation("Nonexistent", at); !errors.Is(err, ErrUnknownMood) {
		t.Errorf("expected ErrUnknownMood, got %v", err)
	}
}
