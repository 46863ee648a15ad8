package coherence

import (
	"context"
	"time"

	"github.com/zoobzio/pipz"
)

// -----------------------------------------------------------------------------
// Adapter Functions - wrap functions to create Detection processors
// -----------------------------------------------------------------------------

// Do creates a processor from a custom function that can fail.
// This is the easiest way to add custom logic to a detection pipeline.
//
// Example:
//
//	validate := coherence.Do("validate-traits", func(ctx context.Context, det *coherence.Detection) (*coherence.Detection, error) {
//	    for _, trait := range coherence.Traits {
//	        if s := det.Traits.Score(trait); s < 0 || s > 100 {
//	            return det, fmt.Errorf("trait %s out of range: %d", trait, s)
//	        }
//	    }
//	    return det, nil
//	})
func Do(name string, fn func(context.Context, *Detection) (*Detection, error)) pipz.Processor[*Detection] {
	return pipz.Apply(pipz.Name(name), fn)
}

// Transform creates a processor from a pure transformation function.
// Use this when your operation cannot fail.
//
// Example:
//
//	stamp := coherence.Transform("stamp", func(ctx context.Context, det *coherence.Detection) *coherence.Detection {
//	    det.Timestamp = time.Now()
//	    return det
//	})
func Transform(name string, fn func(context.Context, *Detection) *Detection) pipz.Processor[*Detection] {
	return pipz.Transform(pipz.Name(name), fn)
}

// Effect creates a processor that performs a side effect without modifying
// the detection. Use this for logging, metrics, or other observational
// operations.
//
// Example:
//
//	logger := coherence.Effect("log-primary", func(ctx context.Context, det *coherence.Detection) error {
//	    log.Printf("primary candidate: %s", det.Scores[0].ArchetypeID)
//	    return nil
//	})
func Effect(name string, fn func(context.Context, *Detection) error) pipz.Processor[*Detection] {
	return pipz.Effect(pipz.Name(name), fn)
}

// -----------------------------------------------------------------------------
// Sequential Connectors - process detections in order
// -----------------------------------------------------------------------------

// Sequence creates a sequential pipeline of detection processors.
// Each processor receives the output of the previous one.
//
// Example:
//
//	pipeline := coherence.Sequence("custom-detect",
//	    validate,
//	    coherence.Do("score", scoreFn),
//	)
func Sequence(name string, processors ...pipz.Chainable[*Detection]) *pipz.Sequence[*Detection] {
	return pipz.NewSequence(pipz.Name(name), processors...)
}

// -----------------------------------------------------------------------------
// Control Flow Connectors - route detections based on conditions
// -----------------------------------------------------------------------------

// Filter creates a conditional processor that either processes or passes
// through. When the predicate returns true, the processor is executed.
// When false, the detection passes through unchanged.
//
// Example:
//
//	onlyWithCAT := coherence.Filter("cat-only",
//	    func(ctx context.Context, det *coherence.Detection) bool {
//	        return det.CAT != nil
//	    },
//	    classifyProcessor,
//	)
func Filter(name string, predicate func(context.Context, *Detection) bool, processor pipz.Chainable[*Detection]) *pipz.Filter[*Detection] {
	return pipz.NewFilter(pipz.Name(name), predicate, processor)
}

// Switch creates a router that directs detections to different processors.
// The condition function returns a route key that determines which processor
// handles the detection.
//
// Example:
//
//	router := coherence.Switch("by-state", func(ctx context.Context, det *coherence.Detection) coherence.CoherenceState {
//	    return det.State
//	})
//	router.AddRoute(coherence.StateLow, supportHandler)
//	router.AddRoute(coherence.StateHigh, celebrateHandler)
func Switch[K comparable](name string, condition func(context.Context, *Detection) K) *pipz.Switch[*Detection, K] {
	return pipz.NewSwitch(pipz.Name(name), condition)
}

// -----------------------------------------------------------------------------
// Error Handling Connectors - handle failures gracefully
// -----------------------------------------------------------------------------

// Retry creates a processor that retries on failure up to maxAttempts times.
//
// Example:
//
//	reliable := coherence.Retry("reliable-enrich", enrichProcessor, 3)
func Retry(name string, processor pipz.Chainable[*Detection], maxAttempts int) *pipz.Retry[*Detection] {
	return pipz.NewRetry(pipz.Name(name), processor, maxAttempts)
}

// Timeout creates a processor that enforces a time limit on execution.
// If the timeout expires, the operation is canceled and an error is returned.
//
// Example:
//
//	bounded := coherence.Timeout("bounded-enrich", enrichProcessor, 5*time.Second)
func Timeout(name string, processor pipz.Chainable[*Detection], duration time.Duration) *pipz.Timeout[*Detection] {
	return pipz.NewTimeout(pipz.Name(name), processor, duration)
}

// -----------------------------------------------------------------------------
// Parallel Connectors - process detections concurrently
// These require *Detection to implement pipz.Cloner[*Detection] (see detect.go Clone())
// -----------------------------------------------------------------------------

// Concurrent runs all processors in parallel and returns the original
// detection. Each processor receives an isolated clone. Use the reducer to
// aggregate results.
//
// Example:
//
//	parallel := coherence.Concurrent("fan-out", nil, // no reducer
//	    metricsRecorder,
//	    auditLogger,
//	)
func Concurrent(name string, reducer func(original *Detection, results map[pipz.Name]*Detection, errors map[pipz.Name]error) *Detection, processors ...pipz.Chainable[*Detection]) *pipz.Concurrent[*Detection] {
	return pipz.NewConcurrent(pipz.Name(name), reducer, processors...)
}
