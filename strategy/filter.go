package strategy

import (
	"fmt"

	"goprop/random"
)

// DefaultRetryLimit bounds how many times a filtered strategy re-draws
// before giving up with ErrExhausted.
const DefaultRetryLimit = 100

// Filter restricts a strategy to the values accepted by keep.
//
// Draw re-draws on rejection up to the retry limit and returns ErrExhausted
// once the limit is reached. The predicate is applied to every shrink
// candidate as well, so shrinking never escapes the filtered value space.
func Filter[V any](inner Strategy[V], keep func(V) bool) *Filtered[V] {
	return &Filtered[V]{inner: inner, keep: keep, retries: DefaultRetryLimit}
}

type Filtered[V any] struct {
	inner   Strategy[V]
	keep    func(V) bool
	retries int
}

// WithRetryLimit returns a copy of the strategy with a different re-draw
// bound.
func (f *Filtered[V]) WithRetryLimit(n int) *Filtered[V] {
	if n <= 0 {
		n = DefaultRetryLimit
	}
	return &Filtered[V]{inner: f.inner, keep: f.keep, retries: n}
}

func (f *Filtered[V]) Draw(src *random.Source) (*Sample[V], error) {
	for attempt := 0; attempt < f.retries; attempt++ {
		s, err := f.inner.Draw(src)
		if err != nil {
			return nil, err
		}
		if f.keep(s.Value) {
			return s.Prune(f.keep), nil
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrExhausted, f.retries)
}

func (f *Filtered[V]) Minimal() (*Sample[V], bool) {
	s, ok := Minimal(f.inner)
	if !ok || !f.keep(s.Value) {
		return nil, false
	}
	return s.Prune(f.keep), true
}
