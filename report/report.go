// Package report formats the final result of a property run.
package report

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/go-cmp/cmp"

	"goprop/property"
)

// A Result records the outcome of running one property.
//
// A failing Result carries everything needed to reproduce the failure
// deterministically: the seed and the index of the failing trial. Re-running
// the same property with the same seed, or replaying just the recorded
// index, regenerates the original failing value byte for byte.
type Result[V any] struct {
	// Overall outcome of the run.
	Status property.Outcome
	// Name of the property, if it was given one.
	Name string
	// Seed of the run. Sufficient, together with Index, to reproduce a
	// failure.
	Seed int64
	// Number of trials that passed.
	Passed int
	// Number of trials abandoned because a filtered strategy exhausted its
	// retries.
	Discarded int
	// Index of the trial the run stopped at. Zero-based. -1 when all trials
	// passed.
	Index int
	// Wall-clock duration of the run, including shrinking.
	Elapsed time.Duration

	// The value of the first failing trial, before shrinking.
	Original V
	// The simplest still-failing value found. Equal to Original when no
	// shrink candidate reproduced the failure.
	Minimal V
	// Number of accepted shrink steps between Original and Minimal.
	ShrinkSteps int
	// Why the property failed on Minimal.
	Reason string
	// Stack trace, when the original failure was a panic.
	Stack []byte
}

// Failed reports whether the run falsified the property.
func (r *Result[V]) Failed() bool {
	return r.Status == property.Fail
}

// Render formats the result for humans.
//
// A failure shows the minimal counterexample, the original value it was
// shrunk from, and the seed/index pair that reproduces it. Exhausted and
// timeout outcomes carry no value.
func (r *Result[V]) Render() string {
	name := r.Name
	if name == "" {
		name = "property"
	}
	switch r.Status {
	case property.Pass:
		return fmt.Sprintf("+ %s: OK, passed %d trials (discarded %d) in %v. seed=%d",
			name, r.Passed, r.Discarded, r.Elapsed.Round(time.Microsecond), r.Seed)
	case property.Exhausted:
		return fmt.Sprintf("? %s: gave up, strategy exhausted (passed %d, discarded %d). seed=%d",
			name, r.Passed, r.Discarded, r.Seed)
	case property.Timeout:
		return fmt.Sprintf("? %s: trial %d timed out (passed %d). seed=%d",
			name, r.Index, r.Passed, r.Seed)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "! %s: falsified after %d passed trials.\n", name, r.Passed)
	wrt := tabwriter.NewWriter(&buf, 4, 4, 1, ' ', 0)
	fmt.Fprintf(wrt, "reason:\t%s\n", r.Reason)
	fmt.Fprintf(wrt, "minimal:\t%#v\n", r.Minimal)
	fmt.Fprintf(wrt, "original:\t%#v\t(%d shrinks)\n", r.Original, r.ShrinkSteps)
	if diff := safeDiff(r.Original, r.Minimal); diff != "" && r.ShrinkSteps > 0 {
		fmt.Fprintf(wrt, "shrink diff (-original +minimal):\t\n")
		wrt.Flush()
		buf.WriteString(diff)
	} else {
		wrt.Flush()
	}
	fmt.Fprintf(&buf, "reproduce with: Seed(%d) and Replay(%d)\n", r.Seed, r.Index)
	if len(r.Stack) > 0 {
		fmt.Fprintf(&buf, "panic stack:\n%s", r.Stack)
	}
	return buf.String()
}

// Diff two values without letting cmp panic on types it cannot compare,
// such as structs with unexported fields. An empty string suppresses the
// diff section.
func safeDiff[V any](original, minimal V) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(original, minimal)
}
