package coherence

import "math"

// StabilityLevel classifies how settled a user's recent mood pattern is.
type StabilityLevel string

const (
	Stable   StabilityLevel = "Stable"
	Variable StabilityLevel = "Variable"
	Volatile StabilityLevel = "Volatile"
)

// StabilityIndex measures the dispersion of mood observations on a 0-100
// scale, where 100 is perfectly steady. Each observation's CAT vector is
// converted to a percentage composite individually (no decay weighting;
// this measures spread, not central tendency) and the index is
// 100 - 2*stddev of those composites, clamped.
//
// With fewer than two observations the index is DefaultStabilityPrior.
func StabilityIndex(observations []MoodObservation) int {
	if len(observations) < 2 {
		return DefaultStabilityPrior
	}

	composites := make([]float64, len(observations))
	for i, obs := range observations {
		c := RawToPercentage(float64(obs.CAT.C))
		a := RawToPercentage(float64(obs.CAT.A))
		t := RawToPercentage(float64(obs.CAT.T))
		composites[i] = float64(c+a+t) / 3
	}

	var mean float64
	for _, v := range composites {
		mean += v
	}
	mean /= float64(len(composites))

	var variance float64
	for _, v := range composites {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(composites))

	return clampScore(int(math.Round(100 - 2*math.Sqrt(variance))))
}

// ClassifyStability buckets a stability index: >=80 Stable, >=60 Variable,
// otherwise Volatile.
func ClassifyStability(index int) StabilityLevel {
	switch {
	case index >= 80:
		return Stable
	case index >= 60:
		return Variable
	default:
		return Volatile
	}
}
