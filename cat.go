package coherence

import "math"

// The CAT framework measures three dimensions of psychological coherence:
// Clarity (mental clarity and understanding), Agency (sense of control and
// self-efficacy), and Trust (trust in self, others, and the process).
//
// Two scales exist and must never be compared directly: the internal raw
// scale (roughly -3..+3, carried by RawCAT) and the canonical output scale
// (0..100, carried by CATProfile). The distinct types keep the conversion
// explicit.

// Dimension identifies one CAT axis.
type Dimension string

const (
	Clarity Dimension = "clarity"
	Agency  Dimension = "agency"
	Trust   Dimension = "trust"
)

// CATDelta is a per-mood contribution vector on the raw scale.
// Contributions are small integers, typically in [-2, 2] per axis.
type CATDelta struct {
	C int `yaml:"c"`
	A int `yaml:"a"`
	T int `yaml:"t"`
}

// RawCAT is a CAT vector on the internal -3..+3 scale, as produced by
// decay-weighted averaging of mood contributions.
type RawCAT struct {
	Clarity float64
	Agency  float64
	Trust   float64
}

// Average returns the mean of the three axes, still on the raw scale.
func (r RawCAT) Average() float64 {
	return (r.Clarity + r.Agency + r.Trust) / 3
}

// CATProfile holds resolved CAT scores on the canonical 0-100 scale.
type CATProfile struct {
	Clarity int `yaml:"clarity"`
	Agency  int `yaml:"agency"`
	Trust   int `yaml:"trust"`
}

// Score returns the profile's value for a dimension.
func (p CATProfile) Score(d Dimension) int {
	switch d {
	case Agency:
		return p.Agency
	case Trust:
		return p.Trust
	default:
		return p.Clarity
	}
}

// CATSummary extends a CATProfile with its composite score and the
// dominant/gap dimensions. Dominant is the highest-scoring axis, gap the
// lowest; ties resolve by fixed axis priority (see AggregateMoods).
type CATSummary struct {
	CATProfile
	Composite int
	Dominant  Dimension
	Gap       Dimension
}

// RawToPercentage converts a raw per-axis value (expected domain roughly
// -3..+3) to the 0-100 scale. The result is clamped, so out-of-domain raw
// values saturate at the scale ends.
func RawToPercentage(x float64) int {
	return clampScore(int(math.Round((3 + x) * 16.67)))
}

// Normalize converts a raw -3..+3 value to 0-100 using the linear six-point
// span. Unlike RawToPercentage it maps the domain edges exactly to 0 and 100.
func Normalize(x float64) int {
	return int(math.Round((x + 3) / 6 * 100))
}

// Denormalize converts a 0-100 value back to the raw -3..+3 scale.
func Denormalize(p int) float64 {
	return float64(p)/100*6 - 3
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
