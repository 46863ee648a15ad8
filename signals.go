package coherence

import "github.com/zoobzio/capitan"

// Signal definitions for scoring and lifecycle events.
// Signals follow the pattern: coherence.<entity>.<event>.
var (
	// Detection pipeline signals.
	DetectionStarted = capitan.NewSignal(
		"coherence.detection.started",
		"Archetype detection began for a trait profile",
	)
	DetectionCompleted = capitan.NewSignal(
		"coherence.detection.completed",
		"Archetype detection produced a ranked result",
	)
	DetectionFailed = capitan.NewSignal(
		"coherence.detection.failed",
		"Archetype detection could not produce a result",
	)

	// Scoring stage signals.
	ScoresRanked = capitan.NewSignal(
		"coherence.scores.ranked",
		"Correlate scoring produced the full archetype ranking",
	)
	ScoresRefined = capitan.NewSignal(
		"coherence.scores.refined",
		"Ranking adjusted by the current dominant affect",
	)
	StateClassified = capitan.NewSignal(
		"coherence.state.classified",
		"CAT profile mapped to a coherence state",
	)

	// Mood aggregation signals.
	MoodsAggregated = capitan.NewSignal(
		"coherence.moods.aggregated",
		"Mood observations collapsed into a CAT summary",
	)

	// Profile lifecycle signals.
	ProfileCreated = capitan.NewSignal(
		"coherence.profile.created",
		"User archetype profile created from an assessment",
	)
	ProfileStateChanged = capitan.NewSignal(
		"coherence.profile.state_changed",
		"User coherence state transitioned and history appended",
	)
)

// Field keys for coherence event data.
var (
	// Identity.
	FieldTraceID = capitan.NewStringKey("trace_id")
	FieldUserID  = capitan.NewStringKey("user_id")

	// Detection metadata.
	FieldArchetype   = capitan.NewStringKey("archetype")
	FieldScore       = capitan.NewFloat32Key("score")
	FieldConfidence  = capitan.NewIntKey("confidence")
	FieldState       = capitan.NewStringKey("state")
	FieldCatalogSize = capitan.NewIntKey("catalog_size")
	FieldAffect      = capitan.NewStringKey("affect")

	// Aggregation metadata.
	FieldObservationCount = capitan.NewIntKey("observation_count")
	FieldComposite        = capitan.NewIntKey("composite")

	// Lifecycle metadata.
	FieldTrigger       = capitan.NewStringKey("trigger")
	FieldHistoryLength = capitan.NewIntKey("history_length")

	// Timing.
	FieldDuration = capitan.NewDurationKey("duration")

	// Error information.
	FieldError = capitan.NewErrorKey("error")
)
