package coherence

import "testing"

func testNudges() []NudgeRecommendation {
	return []NudgeRecommendation{
		{ID: "n1", Category: NudgeReflection, Title: "Journal", Urgency: UrgencyLow},
		{ID: "n2", Category: NudgeGrounding, Title: "Breathe", Urgency: UrgencyHigh},
		{ID: "n3", Category: NudgeAction, Title: "Walk", Urgency: UrgencyMedium},
		{ID: "n4", Category: NudgeConnection, Title: "Call someone", Urgency: UrgencyHigh},
	}
}

func TestSelectNudgesRespectsMax(t *testing.T) {
	nctx := NudgeContext{ArchetypeID: "architect", State: StateBase}

	selected := SelectNudges(testNudges(), nctx, 2)
	if len(selected) != 2 {
		t.Fatalf("selected %d nudges, want 2", len(selected))
	}
	// BASE state keeps available order.
	if selected[0].ID != "n1" || selected[1].ID != "n2" {
		t.Errorf("selection = %s, %s; want n1, n2", selected[0].ID, selected[1].ID)
	}
}

func TestSelectNudgesLowStatePrefersUrgent(t *testing.T) {
	nctx := NudgeContext{ArchetypeID: "architect", State: StateLow}

	selected := SelectNudges(testNudges(), nctx, 2)
	if len(selected) != 2 {
		t.Fatalf("selected %d nudges, want 2", len(selected))
	}
	for _, n := range selected {
		if n.Urgency != UrgencyHigh {
			t.Errorf("LOW state selected %s urgency %s, want high", n.ID, n.Urgency)
		}
	}
}

func TestSelectNudgesLowStateFallsBack(t *testing.T) {
	// Only one high-urgency nudge but max is 2: not enough urgent ones,
	// so selection falls back to available order.
	available := []NudgeRecommendation{
		{ID: "n1", Urgency: UrgencyLow},
		{ID: "n2", Urgency: UrgencyHigh},
		{ID: "n3", Urgency: UrgencyLow},
	}
	nctx := NudgeContext{State: StateLow}

	selected := SelectNudges(available, nctx, 2)
	if len(selected) != 2 {
		t.Fatalf("selected %d nudges, want 2", len(selected))
	}
	if selected[0].ID != "n1" || selected[1].ID != "n2" {
		t.Errorf("selection = %s, %s; want n1, n2", selected[0].ID, selected[1].ID)
	}
}

func TestSelectNudgesEdgeCases(t *testing.T) {
	nctx := NudgeContext{State: StateBase}

	if got := SelectNudges(nil, nctx, 3); got != nil {
		t.Errorf("nil available returned %v", got)
	}
	if got := SelectNudges(testNudges(), nctx, 0); got != nil {
		t.Errorf("zero max returned %v", got)
	}

	// Fewer available than max returns them all.
	one := testNudges()[:1]
	if got := SelectNudges(one, nctx, 5); len(got) != 1 {
		t.Errorf("selected %d, want 1", len(got))
	}
}

func TestSelectNudgesCopiesResult(t *testing.T) {
	available := testNudges()
	selected := SelectNudges(available, NudgeContext{State: StateBase}, 2)

	selected[0].Title = "Tampered"
	if available[0].Title == "Tampered" {
		t.Error("selection aliases the available slice")
	}
}
