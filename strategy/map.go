package strategy

import "goprop/random"

// Map transforms every value of a strategy with f.
//
// Shrinking survives the transform: the drawn pre-image travels with the
// sample, shrink candidates are produced in the A space and mapped through f,
// so no inverse of f is needed.
func Map[A, V any](inner Strategy[A], f func(A) V) Strategy[V] {
	return mapped[A, V]{inner: inner, f: f}
}

type mapped[A, V any] struct {
	inner Strategy[A]
	f     func(A) V
}

func (m mapped[A, V]) Draw(src *random.Source) (*Sample[V], error) {
	s, err := m.inner.Draw(src)
	if err != nil {
		return nil, err
	}
	return MapSample(s, m.f), nil
}

func (m mapped[A, V]) Minimal() (*Sample[V], bool) {
	s, ok := Minimal(m.inner)
	if !ok {
		return nil, false
	}
	return MapSample(s, m.f), true
}

// Map2 draws from two strategies and combines the values with f. Each
// component shrinks independently while the other is held fixed.
func Map2[A, B, V any](sa Strategy[A], sb Strategy[B], f func(A, B) V) Strategy[V] {
	return Map(Tuple2(sa, sb), func(p Pair[A, B]) V {
		return f(p.First, p.Second)
	})
}
