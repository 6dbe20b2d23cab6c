package strategy

// A Seq is a lazy, finite sequence of values.
//
// Calling the function returns the next value and true, or the zero value and
// false once the sequence is exhausted. Sequences are single-use: iterate a
// Seq once and request a fresh one for another pass.
type Seq[V any] func() (V, bool)

// An empty sequence.
func EmptySeq[V any]() Seq[V] {
	return func() (V, bool) {
		var zero V
		return zero, false
	}
}

// A sequence containing exactly one value.
func OneSeq[V any](v V) Seq[V] {
	done := false
	return func() (V, bool) {
		if done {
			var zero V
			return zero, false
		}
		done = true
		return v, true
	}
}

// A sequence yielding the elements of the slice in order.
func SliceSeq[V any](vs []V) Seq[V] {
	i := 0
	return func() (V, bool) {
		if i >= len(vs) {
			var zero V
			return zero, false
		}
		v := vs[i]
		i++
		return v, true
	}
}

// Concatenate several sequences into one, consumed left to right.
func ConcatSeq[V any](seqs ...Seq[V]) Seq[V] {
	i := 0
	return func() (V, bool) {
		for i < len(seqs) {
			if v, ok := seqs[i](); ok {
				return v, true
			}
			i++
		}
		var zero V
		return zero, false
	}
}

// Transform every element of the sequence lazily.
func MapSeq[A, V any](seq Seq[A], f func(A) V) Seq[V] {
	return func() (V, bool) {
		a, ok := seq()
		if !ok {
			var zero V
			return zero, false
		}
		return f(a), true
	}
}

// Keep only the elements for which keep returns true.
func (seq Seq[V]) Filter(keep func(V) bool) Seq[V] {
	return func() (V, bool) {
		for {
			v, ok := seq()
			if !ok {
				var zero V
				return zero, false
			}
			if keep(v) {
				return v, true
			}
		}
	}
}

// Drain the sequence into a slice. Intended for tests and reporting.
func (seq Seq[V]) Collect() []V {
	out := []V{}
	for v, ok := seq(); ok; v, ok = seq() {
		out = append(out, v)
	}
	return out
}
