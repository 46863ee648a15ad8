package coherence

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Trigger tags what caused a coherence state transition.
type Trigger string

const (
	TriggerAssessment     Trigger = "assessment"
	TriggerCheckIn        Trigger = "check-in"
	TriggerGoalCompletion Trigger = "goal-completion"
	TriggerManual         Trigger = "manual"
	TriggerSystem         Trigger = "system"
)

// MetaMode modifies how an archetype expresses, independent of state.
type MetaMode string

const (
	ModePlayer  MetaMode = "player"
	ModeWitness MetaMode = "witness"
)

// SecondaryArchetype is a ranked secondary tendency.
type SecondaryArchetype struct {
	Archetype ArchetypeID
	Strength  float64 // confidence 0-100
}

// StateHistoryEntry is one entry in a profile's state change log.
type StateHistoryEntry struct {
	State     CoherenceState
	Timestamp time.Time
	Trigger   Trigger
	CAT       *CATProfile     // scores at time of change, if captured
	Emotional *EmotionalState // emotional state at time of change, if captured
}

// UserArchetypeProfile is a user's archetype assignment as it evolves over
// time. Lifecycle operations are pure: they take a profile value and return
// a new one, never mutating shared state. Callers that share one record per
// user across requests must serialize writes themselves.
type UserArchetypeProfile struct {
	UserID string

	Primary         ArchetypeID
	PrimaryStrength float64
	Secondary       []SecondaryArchetype

	State    CoherenceState
	MetaMode MetaMode // empty when no meta-mode is active

	History []StateHistoryEntry

	Traits     *TraitProfile // last known trait profile, if any
	AssessedAt time.Time
	UpdatedAt  time.Time
}

// NewProfile creates a profile in the BASE state with one synthetic
// "assessment" history entry.
func NewProfile(ctx context.Context, userID string, primary ArchetypeID, strength float64) UserArchetypeProfile {
	return NewProfileWithState(ctx, userID, primary, strength, StateBase)
}

// NewProfileWithState creates a profile with an explicit initial state.
func NewProfileWithState(ctx context.Context, userID string, primary ArchetypeID, strength float64, initial CoherenceState) UserArchetypeProfile {
	now := time.Now()
	profile := UserArchetypeProfile{
		UserID:          userID,
		Primary:         primary,
		PrimaryStrength: strength,
		State:           initial,
		History: []StateHistoryEntry{{
			State:     initial,
			Timestamp: now,
			Trigger:   TriggerAssessment,
		}},
		AssessedAt: now,
		UpdatedAt:  now,
	}

	capitan.Emit(ctx, ProfileCreated,
		FieldUserID.Field(userID),
		FieldArchetype.Field(string(primary)),
		FieldState.Field(string(initial)),
	)
	return profile
}

// ProfileFromDetection creates a profile from a detection result, carrying
// the ranked secondary archetypes and the source trait profile.
func ProfileFromDetection(ctx context.Context, userID string, result DetectionResult, traits TraitProfile) UserArchetypeProfile {
	profile := NewProfileWithState(ctx, userID, result.Primary.ArchetypeID, result.Primary.Confidence, result.State)

	profile.Secondary = make([]SecondaryArchetype, len(result.Secondary))
	for i, s := range result.Secondary {
		profile.Secondary[i] = SecondaryArchetype{Archetype: s.ArchetypeID, Strength: s.Confidence}
	}
	t := traits
	profile.Traits = &t
	return profile
}

// UpdateState transitions a profile to a new coherence state, appending a
// history entry and bumping UpdatedAt. Transitioning to the current state
// is a no-op: the input profile is returned unchanged and history is not
// duplicated. CAT scores are an optional snapshot stored on the entry.
func UpdateState(ctx context.Context, profile UserArchetypeProfile, state CoherenceState, trigger Trigger, cat *CATProfile) UserArchetypeProfile {
	return updateStateAt(ctx, profile, state, trigger, cat, nil, time.Now())
}

// UpdateStateWithSnapshot is UpdateState plus an emotional-state snapshot
// stored on the history entry.
func UpdateStateWithSnapshot(ctx context.Context, profile UserArchetypeProfile, state CoherenceState, trigger Trigger, cat *CATProfile, emotional *EmotionalState) UserArchetypeProfile {
	return updateStateAt(ctx, profile, state, trigger, cat, emotional, time.Now())
}

func updateStateAt(ctx context.Context, profile UserArchetypeProfile, state CoherenceState, trigger Trigger, cat *CATProfile, emotional *EmotionalState, now time.Time) UserArchetypeProfile {
	if profile.State == state {
		return profile
	}

	entry := StateHistoryEntry{
		State:     state,
		Timestamp: now,
		Trigger:   trigger,
		CAT:       cat,
		Emotional: emotional,
	}

	updated := profile
	updated.State = state
	// Copy-on-append so the old and new values never share history storage.
	updated.History = append(append([]StateHistoryEntry(nil), profile.History...), entry)
	updated.UpdatedAt = now

	capitan.Emit(ctx, ProfileStateChanged,
		FieldUserID.Field(profile.UserID),
		FieldState.Field(string(state)),
		FieldTrigger.Field(string(trigger)),
		FieldHistoryLength.Field(len(updated.History)),
	)
	return updated
}

// StateDistribution derives the total wall-clock time spent in each state
// across an ordered history. Each entry lasts until the next entry's
// timestamp, or until now for the last entry. All three states appear in
// the result, zero-valued when never visited. This is a read; history is
// not modified.
func StateDistribution(history []StateHistoryEntry, now time.Time) map[CoherenceState]time.Duration {
	distribution := map[CoherenceState]time.Duration{
		StateHigh: 0,
		StateBase: 0,
		StateLow:  0,
	}

	for i, entry := range history {
		end := now
		if i+1 < len(history) {
			end = history[i+1].Timestamp
		}
		distribution[entry.State] += end.Sub(entry.Timestamp)
	}
	return distribution
}
