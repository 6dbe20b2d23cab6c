package strategy

import "goprop/random"

// Pair holds two values drawn from a Tuple2 strategy.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds three values drawn from a Tuple3 strategy.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 combines two strategies into a strategy over pairs.
//
// A pair shrinks each component independently while the other component is
// held fixed, first-component candidates first.
func Tuple2[A, B any](sa Strategy[A], sb Strategy[B]) Strategy[Pair[A, B]] {
	return tuple2[A, B]{sa: sa, sb: sb}
}

type tuple2[A, B any] struct {
	sa Strategy[A]
	sb Strategy[B]
}

func (t tuple2[A, B]) Draw(src *random.Source) (*Sample[Pair[A, B]], error) {
	// Each component draws from its own fork so that changing one component
	// strategy never perturbs the values the other one sees.
	a, err := t.sa.Draw(src.Fork())
	if err != nil {
		return nil, err
	}
	b, err := t.sb.Draw(src.Fork())
	if err != nil {
		return nil, err
	}
	return pairSample(a, b), nil
}

func (t tuple2[A, B]) Minimal() (*Sample[Pair[A, B]], bool) {
	a, ok := Minimal(t.sa)
	if !ok {
		return nil, false
	}
	b, ok := Minimal(t.sb)
	if !ok {
		return nil, false
	}
	return pairSample(a, b), true
}

func pairSample[A, B any](a *Sample[A], b *Sample[B]) *Sample[Pair[A, B]] {
	return NewSample(Pair[A, B]{First: a.Value, Second: b.Value}, func() Seq[*Sample[Pair[A, B]]] {
		firsts := MapSeq(a.Shrink(), func(alt *Sample[A]) *Sample[Pair[A, B]] {
			return pairSample(alt, b)
		})
		seconds := MapSeq(b.Shrink(), func(alt *Sample[B]) *Sample[Pair[A, B]] {
			return pairSample(a, alt)
		})
		return ConcatSeq(firsts, seconds)
	})
}

// Tuple3 combines three strategies into a strategy over triples, with the
// same independent per-component shrinking as Tuple2.
func Tuple3[A, B, C any](sa Strategy[A], sb Strategy[B], sc Strategy[C]) Strategy[Triple[A, B, C]] {
	return Map(Tuple2(Tuple2(sa, sb), sc), func(p Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: p.First.First, Second: p.First.Second, Third: p.Second}
	})
}
