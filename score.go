package coherence

import "sort"

// ArchetypeScore is one archetype's match result against a trait profile.
// Score converges to roughly 0-100 by construction but is not bounded;
// Confidence is the score clamped to 0-100.
type ArchetypeScore struct {
	ArchetypeID ArchetypeID
	Score       float64
	Confidence  float64
}

// ScoreTraits scores a trait profile against every archetype in the catalog
// and returns the full ranking, sorted descending by score. The sort is
// stable, so tied archetypes keep catalog order.
//
// Per archetype: each declared correlate weight is multiplied by the
// profile's trait score normalized from 0-100 to -1..1; the signed products
// and absolute weights accumulate, and the score is the weighted average
// rescaled to 0-100. An archetype with no correlates (or all-zero weights)
// scores a neutral 50.
func ScoreTraits(catalog *Catalog, profile TraitProfile) []ArchetypeScore {
	scores := make([]ArchetypeScore, 0, catalog.Len())
	for _, def := range catalog.All() {
		score := correlateScore(profile, def.Correlates)
		scores = append(scores, ArchetypeScore{
			ArchetypeID: def.ID,
			Score:       score,
			Confidence:  scoreToConfidence(score),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

func correlateScore(profile TraitProfile, correlates map[Trait]float64) float64 {
	var totalScore, weightSum float64

	// Iterate in canonical trait order; map iteration order must not leak
	// into results.
	for _, trait := range Traits {
		weight, ok := correlates[trait]
		if !ok {
			continue
		}
		normalized := (float64(profile.Score(trait)) - 50) / 50
		totalScore += weight * normalized
		weightSum += abs(weight)
	}

	if weightSum == 0 {
		return 50
	}
	return ((totalScore / weightSum) + 1) * 50
}

// scoreToConfidence converts a score to a confidence percentage: a score of
// 50 reads as 50% confidence, 75 as 75%, clamped to 0-100.
func scoreToConfidence(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
