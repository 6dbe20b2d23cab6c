// Package shrink reduces a failing value to a locally minimal one.
package shrink

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"goprop/property"
	"goprop/strategy"
)

const (
	// DefaultMaxSteps bounds the number of accepted shrink steps.
	DefaultMaxSteps = 1000
	// DefaultNoProgressBound stops the search after this many consecutive
	// accepted steps that did not decrease the complexity measure. It only
	// triggers when a strategy violates its strictly-decreasing contract.
	DefaultNoProgressBound = 16
)

// Options configure one minimization search.
type Options[V any] struct {
	// Budget on accepted shrink steps. Zero means DefaultMaxSteps.
	MaxSteps int
	// Per-candidate evaluation timeout. Zero disables the bound.
	Timeout time.Duration
	// Complexity measure used by the no-progress guard. Zero value falls
	// back to the length of the fmt representation.
	Measure func(V) int
	// Progress logging. Zero value logs nothing.
	Logger zerolog.Logger
}

// Result is the outcome of a minimization search.
type Result[V any] struct {
	// The simplest still-failing value found.
	Value V
	// Why the property failed on Value.
	Reason string
	// Number of accepted shrink steps from the original value to Value.
	Steps int
	// Number of candidates evaluated in total.
	Tried int
	// True when a budget or the no-progress guard stopped the search before
	// it reached a local minimum.
	Truncated bool
}

// Minimize greedily searches the shrink space of a failing sample.
//
// Candidates of the current value are tried in the order the strategy emits
// them; the first candidate that still falsifies the property becomes the
// new current value and the candidate iteration restarts from it. The search
// stops when a full iteration produces no failing candidate (the value is
// locally minimal), when the step budget is exhausted, or when the
// no-progress guard trips. The best value found so far is always returned: a
// truncated search reports partial progress instead of discarding it.
//
// Only a Fail verdict accepts a candidate. Candidates whose evaluation times
// out or passes are skipped, so the result always reproduces the failure.
func Minimize[V any](failing *strategy.Sample[V], reason string, prop property.Prop[V], opts Options[V]) Result[V] {
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	measure := opts.Measure
	if measure == nil {
		measure = func(v V) int { return len(fmt.Sprint(v)) }
	}

	res := Result[V]{Value: failing.Value, Reason: reason}
	current := failing
	complexity := measure(current.Value)
	noProgress := 0

	for res.Steps < maxSteps {
		accepted := false
		alts := current.Shrink()
		for alt, ok := alts(); ok; alt, ok = alts() {
			res.Tried++
			verdict := property.EvalTimeout(prop, alt.Value, opts.Timeout)
			if verdict.Outcome != property.Fail {
				continue
			}

			current = alt
			res.Value = alt.Value
			res.Reason = verdict.Reason
			res.Steps++
			accepted = true

			c := measure(alt.Value)
			if c >= complexity {
				noProgress++
			} else {
				noProgress = 0
			}
			complexity = c

			opts.Logger.Debug().
				Int("step", res.Steps).
				Int("complexity", c).
				Str("reason", verdict.Reason).
				Msg("accepted shrink candidate")
			break
		}

		if !accepted {
			return res
		}
		if noProgress > DefaultNoProgressBound {
			opts.Logger.Warn().
				Int("steps", res.Steps).
				Msg("shrink made no progress, stopping with best value found")
			res.Truncated = true
			return res
		}
	}

	res.Truncated = true
	return res
}
