package strategy

import "goprop/random"

// A Weighted pairs a strategy with its relative selection weight.
type Weighted[V any] struct {
	Weight int
	S      Strategy[V]
}

// OneOf chooses uniformly among the given strategies.
//
// Alternatives listed earlier are considered simpler: a value drawn from a
// later alternative first offers the minimal values of all earlier
// alternatives as shrink candidates before shrinking within its own
// alternative.
func OneOf[V any](alts ...Strategy[V]) Strategy[V] {
	weighted := make([]Weighted[V], len(alts))
	for i, s := range alts {
		weighted[i] = Weighted[V]{Weight: 1, S: s}
	}
	return WeightedUnion(weighted...)
}

// WeightedUnion chooses among the given strategies with probability
// proportional to their weights. Alternatives with non-positive weight are
// never drawn but still count as simpler shrink targets for later ones.
// Panics if no alternative has positive weight.
func WeightedUnion[V any](alts ...Weighted[V]) Strategy[V] {
	total := 0
	for _, a := range alts {
		if a.Weight > 0 {
			total += a.Weight
		}
	}
	if total == 0 {
		panic("strategy: WeightedUnion needs at least one positive weight")
	}
	return union[V]{alts: alts, total: total}
}

type union[V any] struct {
	alts  []Weighted[V]
	total int
}

func (u union[V]) Draw(src *random.Source) (*Sample[V], error) {
	pick := src.Intn(u.total)
	chosen := 0
	for i, a := range u.alts {
		if a.Weight <= 0 {
			continue
		}
		if pick < a.Weight {
			chosen = i
			break
		}
		pick -= a.Weight
	}
	s, err := u.alts[chosen].S.Draw(src)
	if err != nil {
		return nil, err
	}
	return u.sample(chosen, s), nil
}

// Wrap an alternative's sample so that switching to an earlier-listed
// alternative is tried before shrinking within the chosen one.
func (u union[V]) sample(chosen int, s *Sample[V]) *Sample[V] {
	return NewSample(s.Value, func() Seq[*Sample[V]] {
		var earlier []*Sample[V]
		for i := 0; i < chosen; i++ {
			if m, ok := Minimal(u.alts[i].S); ok {
				earlier = append(earlier, u.sample(i, m))
			}
		}
		within := MapSeq(s.Shrink(), func(alt *Sample[V]) *Sample[V] {
			return u.sample(chosen, alt)
		})
		return ConcatSeq(SliceSeq(earlier), within)
	})
}

func (u union[V]) Minimal() (*Sample[V], bool) {
	for i, a := range u.alts {
		if m, ok := Minimal(a.S); ok {
			return u.sample(i, m), true
		}
	}
	return nil, false
}
