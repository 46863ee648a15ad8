package coherence

import (
	"context"
	"math"
	"time"

	"github.com/zoobzio/capitan"
)

// DecayWeight returns the recency weight for an observation hoursAgo old:
// exp(-lambda * hoursAgo) with lambda = DefaultDecayLambda. Weights fall in
// (0, 1] for non-negative ages. A future timestamp produces a negative age
// and therefore a weight above 1; that is accepted as-is by design, not
// clamped.
func DecayWeight(hoursAgo float64) float64 {
	return math.Exp(-DefaultDecayLambda * hoursAgo)
}

// AggregateMoods collapses mood observations into a CAT summary using
// decay-weighted averaging against now.
//
// With no observations the summary is the neutral baseline: all axes 50,
// composite 50, dominant Clarity, gap Trust.
func AggregateMoods(ctx context.Context, observations []MoodObservation, now time.Time) CATSummary {
	if len(observations) == 0 {
		return CATSummary{
			CATProfile: CATProfile{Clarity: 50, Agency: 50, Trust: 50},
			Composite:  50,
			Dominant:   Clarity,
			Gap:        Trust,
		}
	}

	var cSum, aSum, tSum, totalWeight float64
	for _, obs := range observations {
		hoursAgo := now.Sub(obs.Timestamp).Hours()
		weight := DecayWeight(hoursAgo)
		cSum += float64(obs.CAT.C) * weight
		aSum += float64(obs.CAT.A) * weight
		tSum += float64(obs.CAT.T) * weight
		totalWeight += weight
	}

	raw := RawCAT{}
	if totalWeight > 0 {
		raw = RawCAT{
			Clarity: cSum / totalWeight,
			Agency:  aSum / totalWeight,
			Trust:   tSum / totalWeight,
		}
	}

	profile := CATProfile{
		Clarity: RawToPercentage(raw.Clarity),
		Agency:  RawToPercentage(raw.Agency),
		Trust:   RawToPercentage(raw.Trust),
	}

	summary := CATSummary{
		CATProfile: profile,
		Composite:  int(math.Round(float64(profile.Clarity+profile.Agency+profile.Trust) / 3)),
		Dominant:   dominantDimension(profile),
		Gap:        gapDimension(profile),
	}

	capitan.Emit(ctx, MoodsAggregated,
		FieldObservationCount.Field(len(observations)),
		FieldComposite.Field(summary.Composite),
	)

	return summary
}

// dominantDimension returns the highest-scoring axis. Ties resolve by axis
// priority Clarity > Agency > Trust.
func dominantDimension(p CATProfile) Dimension {
	dominant := Clarity
	for _, d := range []Dimension{Agency, Trust} {
		if p.Score(d) > p.Score(dominant) {
			dominant = d
		}
	}
	return dominant
}

// gapDimension returns the lowest-scoring axis. Ties resolve by the reverse
// priority, so Trust wins a tied minimum.
func gapDimension(p CATProfile) Dimension {
	gap := Trust
	for _, d := range []Dimension{Agency, Clarity} {
		if p.Score(d) < p.Score(gap) {
			gap = d
		}
	}
	return gap
}
