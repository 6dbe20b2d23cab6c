package strategy

// A Sample is one drawn value together with its shrink alternatives.
//
// The alternatives are produced lazily and each alternative is itself a
// Sample, so an accepted shrink candidate can be shrunk further. Keeping the
// shrink capability attached to the drawn value is what lets mapped and
// filtered strategies stay shrinkable: the pre-image of a transformed value
// is captured in the alternative closures instead of being reconstructed
// from the value.
//
// The alternative sequence of a well-formed Sample is finite and every
// alternative is strictly simpler than the sample itself by the owning
// strategy's complexity order, which is what guarantees that shrinking
// terminates.
type Sample[V any] struct {
	Value  V
	shrink func() Seq[*Sample[V]]
}

// Create a sample with the given lazy shrink alternatives.
func NewSample[V any](v V, shrink func() Seq[*Sample[V]]) *Sample[V] {
	return &Sample[V]{Value: v, shrink: shrink}
}

// Create a sample with no shrink alternatives.
func Leaf[V any](v V) *Sample[V] {
	return &Sample[V]{Value: v}
}

// Shrink returns a fresh sequence of simpler candidate samples.
//
// The candidates are ordered simplest first. A sample that cannot be
// simplified returns an empty sequence.
func (s *Sample[V]) Shrink() Seq[*Sample[V]] {
	if s.shrink == nil {
		return EmptySeq[*Sample[V]]()
	}
	return s.shrink()
}

// Transform a sample and all of its shrink alternatives.
func MapSample[A, V any](s *Sample[A], f func(A) V) *Sample[V] {
	return NewSample(f(s.Value), func() Seq[*Sample[V]] {
		return MapSeq(s.Shrink(), func(alt *Sample[A]) *Sample[V] {
			return MapSample(alt, f)
		})
	})
}

// Prune every shrink alternative whose value does not satisfy keep.
//
// The sample's own value is assumed to satisfy keep already. Pruning applies
// recursively, so no candidate reachable by any number of shrink steps
// escapes the predicate.
func (s *Sample[V]) Prune(keep func(V) bool) *Sample[V] {
	return NewSample(s.Value, func() Seq[*Sample[V]] {
		pruned := s.Shrink().Filter(func(alt *Sample[V]) bool {
			return keep(alt.Value)
		})
		return MapSeq(pruned, func(alt *Sample[V]) *Sample[V] {
			return alt.Prune(keep)
		})
	})
}
