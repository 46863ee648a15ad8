package coherence

import "time"

// Affect is one of Panksepp's seven primary emotional systems, extended
// with PEACE for contentment and groundedness.
type Affect string

const (
	Seeking Affect = "SEEKING" // curiosity, exploration, anticipation
	Rage    Affect = "RAGE"    // anger, frustration, boundary violation
	Fear    Affect = "FEAR"    // anxiety, apprehension, threat response
	Lust    Affect = "LUST"    // desire, passion, attraction
	Care    Affect = "CARE"    // nurturing, attachment, empathy
	Panic   Affect = "PANIC"   // separation distress, grief, loss
	Play    Affect = "PLAY"    // joy, social engagement, lightness
	Peace   Affect = "PEACE"   // contentment, equanimity, groundedness
)

// Affects lists every affect in canonical order.
var Affects = []Affect{Seeking, Rage, Fear, Lust, Care, Panic, Play, Peace}

// Valence marks an affect as broadly positive or negative.
type Valence string

const (
	Positive Valence = "positive"
	Negative Valence = "negative"
)

// AffectValences maps each affect to its valence.
var AffectValences = map[Affect]Valence{
	Seeking: Positive,
	Rage:    Negative,
	Fear:    Negative,
	Lust:    Positive,
	Care:    Positive,
	Panic:   Negative,
	Play:    Positive,
	Peace:   Positive,
}

// Valence returns the affect's valence. Unknown affects read as negative,
// which keeps a malformed input from inflating positivity checks.
func (a Affect) Valence() Valence {
	if v, ok := AffectValences[a]; ok {
		return v
	}
	return Negative
}

// AffectObservation is a single affect measurement.
type AffectObservation struct {
	Affect    Affect
	Intensity int // 0-100, caller-validated
	Valence   Valence
}

// NewAffectObservation builds an observation with the valence resolved from
// the affect.
func NewAffectObservation(affect Affect, intensity int) AffectObservation {
	return AffectObservation{
		Affect:    affect,
		Intensity: intensity,
		Valence:   affect.Valence(),
	}
}

// EmotionalState captures the current primary affect, an optional secondary
// affect, and the mood labels reported at the same check-in.
type EmotionalState struct {
	Primary   AffectObservation
	Secondary *AffectObservation
	Moods     []string
	Timestamp time.Time
}

// IsPositive reports whether the state is predominantly positive: the
// primary affect must be positive and any secondary negative affect must not
// exceed intensity 50.
func (s EmotionalState) IsPositive() bool {
	if s.Primary.Valence == Negative {
		return false
	}
	if s.Secondary != nil && s.Secondary.Valence == Negative && s.Secondary.Intensity > 50 {
		return false
	}
	return true
}

// Intensity returns the overall emotional intensity, weighting a secondary
// affect at half the primary.
func (s EmotionalState) Intensity() float64 {
	if s.Secondary == nil {
		return float64(s.Primary.Intensity)
	}
	return (float64(s.Primary.Intensity) + float64(s.Secondary.Intensity)*0.5) / 1.5
}
