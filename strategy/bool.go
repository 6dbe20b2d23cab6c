package strategy

import "goprop/random"

// Bool is a strategy over booleans. True shrinks to false.
func Bool() Strategy[bool] {
	return boolStrategy{}
}

type boolStrategy struct{}

func (boolStrategy) Draw(src *random.Source) (*Sample[bool], error) {
	if src.Bool() {
		return NewSample(true, func() Seq[*Sample[bool]] {
			return OneSeq(Leaf(false))
		}), nil
	}
	return Leaf(false), nil
}

func (boolStrategy) Minimal() (*Sample[bool], bool) {
	return Leaf(false), true
}
