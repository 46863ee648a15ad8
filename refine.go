package coherence

import "sort"

// RefineScores adjusts a ranked score list using the current dominant
// affect and re-sorts it. An archetype whose first-listed primary affect
// matches gains PrimaryAffectBoost; one listing the affect anywhere else
// gains SecondaryAffectBoost; otherwise the score is unchanged. Confidence
// is recomputed from the adjusted score.
//
// The re-sort is stable with the same tie-break as ScoreTraits: tied
// entries keep their incoming order. An archetype ID missing from the
// catalog passes through unmodified; there is nothing to refine.
func RefineScores(catalog *Catalog, scores []ArchetypeScore, emotional EmotionalState) []ArchetypeScore {
	refined := make([]ArchetypeScore, len(scores))
	for i, score := range scores {
		def, ok := catalog.Get(score.ArchetypeID)
		if !ok {
			refined[i] = score
			continue
		}

		boost := affectBoost(emotional.Primary.Affect, def.PrimaryAffects)
		refined[i] = ArchetypeScore{
			ArchetypeID: score.ArchetypeID,
			Score:       score.Score + boost,
			Confidence:  scoreToConfidence(score.Score + boost),
		}
	}

	sort.SliceStable(refined, func(i, j int) bool {
		return refined[i].Score > refined[j].Score
	})
	return refined
}

func affectBoost(current Affect, affects []Affect) float64 {
	if len(affects) == 0 {
		return 0
	}
	if affects[0] == current {
		return PrimaryAffectBoost
	}
	for _, a := range affects[1:] {
		if a == current {
			return SecondaryAffectBoost
		}
	}
	return 0
}
