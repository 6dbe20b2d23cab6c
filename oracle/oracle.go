// Package oracle checks a data structure implementation against a reference
// implementation under randomized operation sequences.
//
// Both implementations start empty and are mutated in lockstep by the same
// sequence. A disagreement on any single operation's observable result, a
// violated structural invariant, or a disagreement on the full observable
// state at the end of the sequence falsifies the property, and the sequence
// is shrunk toward a minimal reproducer.
package oracle

import (
	"cmp"
	"fmt"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"goprop"
	"goprop/property"
	"goprop/report"
	"goprop/strategy"
)

// A Set is the observable surface the driver exercises on both the candidate
// and the reference implementation.
type Set[K cmp.Ordered] interface {
	// Insert the key. Reports whether the key was absent.
	Insert(key K) bool
	// Remove the key. Reports whether the key was present.
	Remove(key K) bool
	// Contains reports whether the key is present.
	Contains(key K) bool
	// Items enumerates all keys in sorted order.
	Items() []K
}

// A candidate may additionally expose a structural invariant, for example a
// heap-order or balance invariant. The driver checks it after every
// operation.
type InvariantChecker interface {
	CheckInvariant() error
}

// A Driver pairs a candidate implementation with a reference implementation
// and drives both with the same operation sequences.
type Driver[K cmp.Ordered] struct {
	newCandidate func() Set[K]
	newReference func() Set[K]
	keys         strategy.Strategy[K]
	maxOps       int
}

// New creates a driver. Both constructors must return fresh, empty
// instances: the driver creates a new pair for every replayed sequence.
// Keys are drawn from the provided strategy.
func New[K cmp.Ordered](newCandidate, newReference func() Set[K], keys strategy.Strategy[K]) *Driver[K] {
	return &Driver[K]{
		newCandidate: newCandidate,
		newReference: newReference,
		keys:         keys,
		maxOps:       DefaultMaxOps,
	}
}

// WithMaxOps returns a copy of the driver drawing sequences of at most n
// operations.
func (d *Driver[K]) WithMaxOps(n int) *Driver[K] {
	cp := *d
	if n > 0 {
		cp.maxOps = n
	}
	return &cp
}

// Sequence is the strategy over operation sequences the driver runs with.
func (d *Driver[K]) Sequence() strategy.Strategy[[]Operation[K]] {
	return sequence[K]{keys: d.keys, maxOps: d.maxOps}
}

// Property replays an operation sequence against a fresh candidate and a
// fresh reference in lockstep.
//
// After each operation the observable result of the two implementations must
// agree and the candidate's structural invariant, if it exposes one, must
// hold. After the full sequence the sorted enumerations must agree. An empty
// sequence is vacuously consistent and always passes.
func (d *Driver[K]) Property() property.Prop[[]Operation[K]] {
	return func(ops []Operation[K]) error {
		candidate := d.newCandidate()
		reference := d.newReference()

		for i, op := range ops {
			var got, want bool
			switch op.Kind {
			case Insert:
				got = candidate.Insert(op.Key)
				want = reference.Insert(op.Key)
			case Remove:
				got = candidate.Remove(op.Key)
				want = reference.Remove(op.Key)
			case Query:
				got = candidate.Contains(op.Key)
				want = reference.Contains(op.Key)
			default:
				return fmt.Errorf("step %d: unknown operation kind %v", i, op.Kind)
			}
			if got != want {
				return fmt.Errorf("step %d: %v: candidate returned %v, reference returned %v", i, op, got, want)
			}
			if ic, ok := candidate.(InvariantChecker); ok {
				if err := ic.CheckInvariant(); err != nil {
					return fmt.Errorf("step %d: %v: candidate invariant violated: %w", i, op, err)
				}
			}
		}

		if diff := gocmp.Diff(reference.Items(), candidate.Items(), cmpopts.EquateEmpty()); diff != "" {
			return fmt.Errorf("final state disagrees (-reference +candidate):\n%s", diff)
		}
		return nil
	}
}

// Run checks the differential property with the given options.
func (d *Driver[K]) Run(opts ...goprop.Option) *report.Result[[]Operation[K]] {
	return goprop.Run(d.Sequence(), d.Property(), opts...)
}

// Check is Run adapted to a test: it fails t with the rendered report unless
// every trial passed.
func (d *Driver[K]) Check(t testing.TB, opts ...goprop.Option) *report.Result[[]Operation[K]] {
	t.Helper()
	return goprop.Check(t, d.Sequence(), d.Property(), opts...)
}
