package coherence

// CoherenceState is the discrete integration level derived from a CAT
// profile.
type CoherenceState string

const (
	StateHigh CoherenceState = "HIGH"
	StateBase CoherenceState = "BASE"
	StateLow  CoherenceState = "LOW"
)

// CoherenceStates lists the states in descending order of integration.
var CoherenceStates = []CoherenceState{StateHigh, StateBase, StateLow}

// Thresholds for ClassifyCoherence, on the raw -3..+3 scale.
const (
	highAverageThreshold = 1.5
	lowAverageThreshold  = -1.0
	lowAxisThreshold     = -2.0
)

// ClassifyCoherence maps a raw CAT profile to a coherence state. The input
// is on the canonical internal -3..+3 scale; convert percentage scores with
// Denormalize first.
//
// This is a first-match decision list, not independent rules: HIGH is
// checked before LOW so contradictory input resolves toward HIGH.
func ClassifyCoherence(cat RawCAT) CoherenceState {
	average := cat.Average()

	if average >= highAverageThreshold && cat.Clarity > 0 && cat.Agency > 0 && cat.Trust > 0 {
		return StateHigh
	}
	if average <= lowAverageThreshold ||
		cat.Clarity <= lowAxisThreshold || cat.Agency <= lowAxisThreshold || cat.Trust <= lowAxisThreshold {
		return StateLow
	}
	return StateBase
}
