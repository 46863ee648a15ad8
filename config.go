package coherence

// Default tuning for the scoring pipeline.
// These are read at call time; adjust them at composition time if a
// deployment needs different weighting. Individual operations never
// mutate them.
var (
	// DefaultDecayLambda is the exponential decay constant applied to mood
	// observations by hours of age. 0.1 gives a half-life of roughly 6.93
	// hours, so yesterday's check-in still registers but barely.
	DefaultDecayLambda = 0.1

	// DefaultStabilityPrior is the stability index reported when fewer than
	// two observations exist. It reads as "probably stable, insufficient
	// data" rather than penalizing new users for having no history.
	DefaultStabilityPrior = 85

	// PrimaryAffectBoost is added to an archetype's score when its
	// first-listed primary affect matches the current dominant affect.
	PrimaryAffectBoost = 10.0

	// SecondaryAffectBoost is added when the current dominant affect appears
	// anywhere else in the archetype's primary-affects list.
	SecondaryAffectBoost = 5.0
)
