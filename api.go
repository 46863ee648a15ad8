// Package coherence computes a person's psychological coherence state and
// matches it to one of a fixed set of behavioral archetypes.
//
// Three independent signal sources feed the pipeline: a HEXACO-style trait
// profile, short-lived mood observations from check-ins, and a derived
// three-dimensional coherence score across Clarity, Agency, and Trust (the
// "CAT" profile).
//
// # Core Types
//
//   - [MoodObservation] - A timestamped mood label with its CAT contribution
//   - [RawCAT] - A CAT vector on the internal -3..+3 scale
//   - [CATProfile] / [CATSummary] - Resolved CAT scores on the 0-100 scale
//   - [TraitProfile] - Six HEXACO trait scores, each 0-100
//   - [EmotionalState] - Current primary (and optional secondary) affect
//   - [Catalog] - An ordered, immutable set of [ArchetypeDefinition] entries
//   - [UserArchetypeProfile] - A user's assignment and its state history
//
// # Scoring
//
// Mood observations aggregate into a CAT summary with exponential recency
// weighting ([AggregateMoods]); the same observations yield a dispersion-based
// stability index ([StabilityIndex], [ClassifyStability]). Trait profiles are
// scored against every archetype's correlate weights ([ScoreTraits]) and the
// ranking is optionally refined by the current dominant affect
// ([RefineScores]).
//
// # Detection
//
// A [Detector] owns a read-only catalog and composes the scoring stages into
// a single pipz pipeline:
//
//	detector := coherence.NewDetector(coherence.BuiltinCatalog())
//	result, err := detector.Detect(ctx, traits, emotional, cat)
//
// Detection is pure computation; a single Detector may be shared across any
// number of concurrent callers.
//
// # Profiles
//
// Profile lifecycle operations are pure functions from old value to new
// value: [NewProfile] creates an assignment with one synthetic history entry,
// [UpdateState] appends a transition (a no-op when the state is unchanged),
// and [StateDistribution] derives per-state dwell times from history.
//
// # Observability
//
// The package emits capitan signals throughout execution. See signals.go
// for the complete list, including DetectionStarted, DetectionCompleted,
// ScoresRefined, and ProfileStateChanged.
package coherence
