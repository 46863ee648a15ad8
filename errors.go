package coherence

import "errors"

// Sentinel errors surfaced by scoring and lookup operations.
// Wrap sites add context; callers match with errors.Is.
var (
	// ErrEmptyCatalog is returned by detection when the archetype catalog
	// has no entries. No valid ranking is possible, so the pipeline fails
	// rather than synthesizing a result.
	ErrEmptyCatalog = errors.New("archetype catalog is empty")

	// ErrUnknownMood is returned when a mood label has no contribution
	// mapping.
	ErrUnknownMood = errors.New("unknown mood label")

	// ErrUnknownArchetype is returned by catalog lookups that require the
	// archetype to exist. Score refinement does not use it; there an
	// unknown ID passes through unmodified.
	ErrUnknownArchetype = errors.New("unknown archetype")
)
