package coherence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"
)

// Detection is the carrier that flows through the detector pipeline. Each
// stage reads the inputs it needs and fills in its output field.
type Detection struct {
	TraceID   string
	Traits    TraitProfile
	Emotional *EmotionalState
	CAT       *RawCAT
	Scores    []ArchetypeScore
	State     CoherenceState
	Timestamp time.Time
}

// Clone creates an independent copy for parallel pipeline connectors.
func (d *Detection) Clone() *Detection {
	clone := &Detection{
		TraceID:   d.TraceID,
		Traits:    d.Traits,
		State:     d.State,
		Timestamp: d.Timestamp,
	}
	if d.Emotional != nil {
		emotional := *d.Emotional
		if d.Emotional.Secondary != nil {
			secondary := *d.Emotional.Secondary
			emotional.Secondary = &secondary
		}
		emotional.Moods = append([]string(nil), d.Emotional.Moods...)
		clone.Emotional = &emotional
	}
	if d.CAT != nil {
		cat := *d.CAT
		clone.CAT = &cat
	}
	if d.Scores != nil {
		clone.Scores = append([]ArchetypeScore(nil), d.Scores...)
	}
	return clone
}

// Compile-time check: *Detection must implement pipz.Cloner[*Detection].
var _ interface{ Clone() *Detection } = (*Detection)(nil)

// DetectionResult is the outcome of one full detection run.
type DetectionResult struct {
	TraceID   string
	Primary   ArchetypeScore
	Secondary []ArchetypeScore // next-ranked, at most 3
	State     CoherenceState
	Timestamp time.Time
}

// Detector matches trait profiles against an archetype catalog. It holds no
// mutable state beyond the read-only catalog reference it was constructed
// with, so one instance may serve any number of concurrent callers.
type Detector struct {
	catalog  *Catalog
	pipeline *pipz.Sequence[*Detection]
}

// NewDetector builds a detector over the given catalog. The catalog is an
// explicit dependency owned by the caller's composition root; nothing here
// is a process-wide singleton, so independently-configured detectors can
// coexist.
func NewDetector(catalog *Catalog) *Detector {
	d := &Detector{catalog: catalog}

	score := pipz.Apply(pipz.Name("score-traits"), d.scoreStage)
	refine := pipz.NewFilter(pipz.Name("refine-if-emotional"),
		func(_ context.Context, det *Detection) bool { return det.Emotional != nil },
		pipz.Apply(pipz.Name("refine-scores"), d.refineStage),
	)
	classify := pipz.Transform(pipz.Name("classify-state"), d.classifyStage)

	d.pipeline = pipz.NewSequence(pipz.Name("detect"), score, refine, classify)
	return d
}

// Catalog returns the catalog this detector was built over.
func (d *Detector) Catalog() *Catalog {
	return d.catalog
}

// Detect runs the full pipeline: correlate scoring, affect refinement when
// an emotional state is supplied, and coherence classification when a raw
// CAT profile is supplied (BASE otherwise).
//
// An empty catalog is the one unconditionally fatal condition; the error
// matches ErrEmptyCatalog. Both optional inputs may be nil.
func (d *Detector) Detect(ctx context.Context, traits TraitProfile, emotional *EmotionalState, cat *RawCAT) (DetectionResult, error) {
	start := time.Now()

	det := &Detection{
		TraceID:   uuid.New().String(),
		Traits:    traits,
		Emotional: emotional,
		CAT:       cat,
		State:     StateBase,
		Timestamp: start,
	}

	capitan.Emit(ctx, DetectionStarted,
		FieldTraceID.Field(det.TraceID),
		FieldCatalogSize.Field(d.catalog.Len()),
	)

	if d.catalog.Len() == 0 {
		err := fmt.Errorf("detect: %w", ErrEmptyCatalog)
		d.emitFailed(ctx, det, start, err)
		return DetectionResult{}, err
	}

	out, err := d.pipeline.Process(ctx, det)
	if err != nil {
		d.emitFailed(ctx, det, start, err)
		return DetectionResult{}, fmt.Errorf("detect: %w", err)
	}

	secondary := out.Scores[1:]
	if len(secondary) > 3 {
		secondary = secondary[:3]
	}

	result := DetectionResult{
		TraceID:   out.TraceID,
		Primary:   out.Scores[0],
		Secondary: append([]ArchetypeScore(nil), secondary...),
		State:     out.State,
		Timestamp: out.Timestamp,
	}

	capitan.Emit(ctx, DetectionCompleted,
		FieldTraceID.Field(out.TraceID),
		FieldArchetype.Field(string(result.Primary.ArchetypeID)),
		FieldScore.Field(float32(result.Primary.Score)),
		FieldState.Field(string(result.State)),
		FieldDuration.Field(time.Since(start)),
	)

	return result, nil
}

// scoreStage runs the correlate scorer over the whole catalog.
func (d *Detector) scoreStage(ctx context.Context, det *Detection) (*Detection, error) {
	det.Scores = ScoreTraits(d.catalog, det.Traits)
	if len(det.Scores) == 0 {
		return det, fmt.Errorf("score: %w", ErrEmptyCatalog)
	}

	capitan.Emit(ctx, ScoresRanked,
		FieldTraceID.Field(det.TraceID),
		FieldCatalogSize.Field(len(det.Scores)),
		FieldArchetype.Field(string(det.Scores[0].ArchetypeID)),
		FieldScore.Field(float32(det.Scores[0].Score)),
	)
	return det, nil
}

// refineStage adjusts the ranking by the current dominant affect. Only
// reached when an emotional state was supplied.
func (d *Detector) refineStage(ctx context.Context, det *Detection) (*Detection, error) {
	det.Scores = RefineScores(d.catalog, det.Scores, *det.Emotional)

	capitan.Emit(ctx, ScoresRefined,
		FieldTraceID.Field(det.TraceID),
		FieldAffect.Field(string(det.Emotional.Primary.Affect)),
		FieldArchetype.Field(string(det.Scores[0].ArchetypeID)),
		FieldScore.Field(float32(det.Scores[0].Score)),
	)
	return det, nil
}

// classifyStage resolves the coherence state; without CAT input the state
// stays at its BASE default.
func (d *Detector) classifyStage(ctx context.Context, det *Detection) *Detection {
	if det.CAT == nil {
		return det
	}
	det.State = ClassifyCoherence(*det.CAT)

	capitan.Emit(ctx, StateClassified,
		FieldTraceID.Field(det.TraceID),
		FieldState.Field(string(det.State)),
	)
	return det
}

func (d *Detector) emitFailed(ctx context.Context, det *Detection, start time.Time, err error) {
	capitan.Error(ctx, DetectionFailed,
		FieldTraceID.Field(det.TraceID),
		FieldCatalogSize.Field(d.catalog.Len()),
		FieldDuration.Field(time.Since(start)),
		FieldError.Field(err),
	)
}
