package strategy

import (
	"fmt"

	"goprop/random"
)

// DefaultSliceLimit is the maximum length SliceOf draws.
const DefaultSliceLimit = 50

// SliceOf is a strategy over slices of 0 to DefaultSliceLimit elements.
func SliceOf[V any](elem Strategy[V]) Strategy[[]V] {
	return SliceOfN(elem, 0, DefaultSliceLimit)
}

// SliceOfN is a strategy over slices with length in [min, max].
//
// Shrinking first tries the shortest allowed slice, then removes halving
// numbers of elements from the tail and from the front, then shrinks
// individual elements left to right. Every candidate is at most as long as
// the value it was derived from, and the shortest allowed candidate always
// appears first unless the value already has minimal length.
func SliceOfN[V any](elem Strategy[V], min, max int) Strategy[[]V] {
	if min < 0 || min > max {
		panic(fmt.Sprintf("strategy: SliceOfN with invalid bounds [%d, %d]", min, max))
	}
	return collection[V]{elem: elem, min: min, max: max}
}

type collection[V any] struct {
	elem     Strategy[V]
	min, max int
}

func (c collection[V]) Draw(src *random.Source) (*Sample[[]V], error) {
	n := c.min + src.Intn(c.max-c.min+1)
	elems := make([]*Sample[V], n)
	for i := range elems {
		s, err := c.elem.Draw(src)
		if err != nil {
			return nil, err
		}
		elems[i] = s
	}
	return c.sample(elems), nil
}

func (c collection[V]) Minimal() (*Sample[[]V], bool) {
	if c.min == 0 {
		return c.sample(nil), true
	}
	es, ok := Minimal(c.elem)
	if !ok {
		return nil, false
	}
	elems := make([]*Sample[V], c.min)
	for i := range elems {
		elems[i] = es
	}
	return c.sample(elems), true
}

func (c collection[V]) sample(elems []*Sample[V]) *Sample[[]V] {
	values := make([]V, len(elems))
	for i, e := range elems {
		values[i] = e.Value
	}
	return NewSample(values, func() Seq[*Sample[[]V]] {
		return c.shrinkCandidates(elems)
	})
}

// The shrink candidates of a slice, ordered shortest first, in three phases:
// the minimal-length prefix, length collapses with halving removal sizes
// (cutting the tail, then the front), and element-wise shrinks left to
// right.
func (c collection[V]) shrinkCandidates(elems []*Sample[V]) Seq[*Sample[[]V]] {
	n := len(elems)

	phase := 0
	k := (n - c.min) / 2
	fromFront := false
	i := 0
	var elemAlts Seq[*Sample[V]]

	return func() (*Sample[[]V], bool) {
		if phase == 0 {
			phase = 1
			if n > c.min {
				return c.sample(elems[:c.min]), true
			}
		}
		if phase == 1 {
			if k >= 1 {
				var candidate []*Sample[V]
				if fromFront {
					candidate = elems[k:]
					k /= 2
				} else {
					candidate = elems[:n-k]
				}
				fromFront = !fromFront
				return c.sample(candidate), true
			}
			phase = 2
		}
		for i < n {
			if elemAlts == nil {
				elemAlts = elems[i].Shrink()
			}
			alt, ok := elemAlts()
			if !ok {
				elemAlts = nil
				i++
				continue
			}
			replaced := make([]*Sample[V], n)
			copy(replaced, elems)
			replaced[i] = alt
			return c.sample(replaced), true
		}
		return nil, false
	}
}
