package coherence

// NudgeCategory groups nudges by the kind of intervention they suggest.
type NudgeCategory string

const (
	NudgeReflection NudgeCategory = "reflection" // introspective prompts
	NudgeAction     NudgeCategory = "action"     // behavioral suggestions
	NudgeConnection NudgeCategory = "connection" // social/relational
	NudgeReframe    NudgeCategory = "reframe"    // cognitive reframing
	NudgeGrounding  NudgeCategory = "grounding"  // present-moment awareness
	NudgeActivation NudgeCategory = "activation" // energy/motivation
)

// NudgeUrgency ranks how soon a nudge should surface.
type NudgeUrgency string

const (
	UrgencyLow    NudgeUrgency = "low"
	UrgencyMedium NudgeUrgency = "medium"
	UrgencyHigh   NudgeUrgency = "high"
)

// NudgeRecommendation is a context-aware suggestion tied to an archetype
// state. The core treats title/content/rationale as opaque editorial
// payload.
type NudgeRecommendation struct {
	ID           string        `yaml:"id"`
	Category     NudgeCategory `yaml:"category"`
	Title        string        `yaml:"title"`
	Content      string        `yaml:"content"`
	Rationale    string        `yaml:"rationale,omitempty"`
	Urgency      NudgeUrgency  `yaml:"urgency"`
	TargetTraits []Trait       `yaml:"targetTraits,omitempty"`
}

// NudgeContext describes the situation nudges are being selected for.
type NudgeContext struct {
	ArchetypeID  ArchetypeID
	State        CoherenceState
	CurrentMoods []string
}

// SelectNudges picks up to max nudges for a context. In the LOW state
// high-urgency nudges take priority when enough exist; otherwise selection
// preserves the available order.
func SelectNudges(available []NudgeRecommendation, nctx NudgeContext, max int) []NudgeRecommendation {
	if max <= 0 || len(available) == 0 {
		return nil
	}

	if nctx.State == StateLow {
		var urgent []NudgeRecommendation
		for _, n := range available {
			if n.Urgency == UrgencyHigh {
				urgent = append(urgent, n)
			}
		}
		if len(urgent) >= max {
			return urgent[:max]
		}
	}

	if len(available) > max {
		available = available[:max]
	}
	return append([]NudgeRecommendation(nil), available...)
}
