package coherence

import (
	"testing"
	"time"
)

func TestAffectValence(t *testing.T) {
	for _, a := range Affects {
		if _, ok := AffectValences[a]; !ok {
			t.Errorf("affect %s missing from AffectValences", a)
		}
	}

	if Seeking.Valence() != Positive {
		t.Error("SEEKING should be positive")
	}
	if Panic.Valence() != Negative {
		t.Error("PANIC should be negative")
	}
	if Affect("GRIEF").Valence() != Negative {
		t.Error("unknown affect should read as negative")
	}
}

func TestNewAffectObservation(t *testing.T) {
	obs := NewAffectObservation(Rage, 70)
	if obs.Affect != Rage {
		t.Errorf("Affect = %s, want RAGE", obs.Affect)
	}
	if obs.Intensity != 70 {
		t.Errorf("Intensity = %d, want 70", obs.Intensity)
	}
	if obs.Valence != Negative {
		t.Errorf("Valence = %s, want negative", obs.Valence)
	}
}

func TestEmotionalStateIsPositive(t *testing.T) {
	secondary := func(a Affect, intensity int) *AffectObservation {
		obs := NewAffectObservation(a, intensity)
		return &obs
	}

	tests := []struct {
		name  string
		state EmotionalState
		want  bool
	}{
		{
			"positive primary alone",
			EmotionalState{Primary: NewAffectObservation(Play, 80)},
			true,
		},
		{
			"negative primary",
			EmotionalState{Primary: NewAffectObservation(Fear, 40)},
			false,
		},
		{
			"positive primary with mild negative secondary",
			EmotionalState{Primary: NewAffectObservation(Care, 80), Secondary: secondary(Fear, 30)},
			true,
		},
		{
			"positive primary with strong negative secondary",
			EmotionalState{Primary: NewAffectObservation(Care, 80), Secondary: secondary(Fear, 70)},
			false,
		},
		{
			"positive primary with strong positive secondary",
			EmotionalState{Primary: NewAffectObservation(Care, 80), Secondary: secondary(Play, 90)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsPositive(); got != tt.want {
				t.Errorf("IsPositive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmotionalStateIntensity(t *testing.T) {
	primaryOnly := EmotionalState{
		Primary:   NewAffectObservation(Seeking, 60),
		Timestamp: time.Now(),
	}
	if got := primaryOnly.Intensity(); got != 60 {
		t.Errorf("Intensity() = %v, want 60", got)
	}

	sec := NewAffectObservation(Fear, 30)
	both := EmotionalState{
		Primary:   NewAffectObservation(Seeking, 60),
		Secondary: &sec,
	}
	// (60 + 30*0.5) / 1.5 = 50
	if got := both.Intensity(); got != 50 {
		t.Errorf("Intensity() with secondary = %v, want 50", got)
	}
}
