// Package strategy describes value spaces for property-based testing.
//
// A Strategy pairs a generator with a shrinker: it can draw a pseudo-random
// value of its value space from a random.Source, and every drawn value
// carries a lazy sequence of strictly simpler alternatives used to reduce a
// failing value to a minimal counterexample.
//
// Strategies are immutable once composed and can be reused across any number
// of trials. Drawn values are never mutated by the strategy that produced
// them.
package strategy

import (
	"errors"

	"goprop/random"
)

// ErrExhausted is returned by Draw when a filtered strategy could not
// produce an accepted value within its retry bound. The runner reports it as
// a distinct outcome; it is not a property failure and does not trigger
// shrinking.
var ErrExhausted = errors.New("strategy: exhausted retries without an accepted value")

// A Strategy describes a value space.
//
// Draw produces one pseudo-random sample of the value space. Draw must
// terminate and must not mutate previously returned samples. The only error
// Draw returns is ErrExhausted (possibly wrapped).
type Strategy[V any] interface {
	Draw(src *random.Source) (*Sample[V], error)
}

// A strategy built from a plain draw function.
type strategyFunc[V any] func(src *random.Source) (*Sample[V], error)

func (f strategyFunc[V]) Draw(src *random.Source) (*Sample[V], error) {
	return f(src)
}

// New creates a Strategy from a draw function.
func New[V any](draw func(src *random.Source) (*Sample[V], error)) Strategy[V] {
	return strategyFunc[V](draw)
}

// A strategy that can name its simplest value without drawing.
//
// Primitive and composite strategies implement this where a canonical minimal
// value exists; the union combinator uses it to offer earlier-listed
// alternatives as shrink candidates.
type minimizer[V any] interface {
	Minimal() (*Sample[V], bool)
}

// Minimal reports the canonical simplest sample of the strategy, if it has
// one.
func Minimal[V any](s Strategy[V]) (*Sample[V], bool) {
	if m, ok := s.(minimizer[V]); ok {
		return m.Minimal()
	}
	return nil, false
}

// Const is a strategy that always produces the same value and never shrinks.
func Const[V any](v V) Strategy[V] {
	return constStrategy[V]{v: v}
}

type constStrategy[V any] struct {
	v V
}

func (c constStrategy[V]) Draw(src *random.Source) (*Sample[V], error) {
	return Leaf(c.v), nil
}

func (c constStrategy[V]) Minimal() (*Sample[V], bool) {
	return Leaf(c.v), true
}
