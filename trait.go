package coherence

// Trait is one factor of the HEXACO personality model.
type Trait string

const (
	Honesty           Trait = "honesty"           // Honesty-Humility
	Emotionality      Trait = "emotionality"      // fearfulness, anxiety, sentimentality
	Extraversion      Trait = "extraversion"      // sociability, liveliness
	Agreeableness     Trait = "agreeableness"     // forgiveness, patience
	Conscientiousness Trait = "conscientiousness" // organization, diligence
	Openness          Trait = "openness"          // creativity, inquisitiveness
)

// Traits lists the six factors in canonical order.
var Traits = []Trait{
	Honesty, Emotionality, Extraversion,
	Agreeableness, Conscientiousness, Openness,
}

// TraitProfile is a full HEXACO profile with scores on the 0-100 scale.
// Values outside 0-100 are not validated here; well-formed input is the
// caller's responsibility.
type TraitProfile struct {
	Honesty           int
	Emotionality      int
	Extraversion      int
	Agreeableness     int
	Conscientiousness int
	Openness          int
}

// Score returns the profile's value for a trait.
func (p TraitProfile) Score(t Trait) int {
	switch t {
	case Honesty:
		return p.Honesty
	case Emotionality:
		return p.Emotionality
	case Extraversion:
		return p.Extraversion
	case Agreeableness:
		return p.Agreeableness
	case Conscientiousness:
		return p.Conscientiousness
	case Openness:
		return p.Openness
	default:
		return 0
	}
}

// TraitLevel buckets a trait score.
type TraitLevel string

const (
	LevelHigh    TraitLevel = "high"
	LevelLow     TraitLevel = "low"
	LevelNeutral TraitLevel = "neutral"
)

// Level returns the bucket for a trait score: >=65 high, <=35 low.
func Level(score int) TraitLevel {
	switch {
	case score >= 65:
		return LevelHigh
	case score <= 35:
		return LevelLow
	default:
		return LevelNeutral
	}
}

// DominantTraits returns every trait scoring at or above the threshold, in
// canonical trait order.
func (p TraitProfile) DominantTraits(threshold int) []Trait {
	var dominant []Trait
	for _, t := range Traits {
		if p.Score(t) >= threshold {
			dominant = append(dominant, t)
		}
	}
	return dominant
}

// PrimarySecondary returns the two highest-scoring traits. Ties resolve by
// canonical trait order.
func (p TraitProfile) PrimarySecondary() (primary, secondary Trait) {
	primary, secondary = Traits[0], Traits[1]
	if p.Score(secondary) > p.Score(primary) {
		primary, secondary = secondary, primary
	}
	for _, t := range Traits[2:] {
		switch {
		case p.Score(t) > p.Score(primary):
			primary, secondary = t, primary
		case p.Score(t) > p.Score(secondary):
			secondary = t
		}
	}
	return primary, secondary
}
