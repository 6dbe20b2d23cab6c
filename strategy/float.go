package strategy

import (
	"math"

	"golang.org/x/exp/constraints"

	"goprop/random"
)

// Float64 is a strategy over finite float64 values in [-max, max], shrinking
// toward zero. Magnitudes are sampled on an exponential scale so small and
// large values are both represented.
func Float64(max float64) Strategy[float64] {
	if max <= 0 || math.IsInf(max, 0) || math.IsNaN(max) {
		max = math.MaxFloat64
	}
	return floatStrategy{max: max}
}

type floatStrategy struct {
	max float64
}

func (fs floatStrategy) Draw(src *random.Source) (*Sample[float64], error) {
	// Spread the exponent uniformly below log2(max) so the draw is not
	// dominated by values near max. The exponent never exceeds log2(max),
	// which keeps every magnitude within the bound.
	hi := math.Log2(fs.max)
	lo := math.Min(hi, -1022)
	exp := hi - src.Float64()*(hi-lo)
	v := math.Exp2(exp) * src.Float64()
	if src.Bool() {
		v = -v
	}
	return floatSample(v), nil
}

func (fs floatStrategy) Minimal() (*Sample[float64], bool) {
	return Leaf(0.0), true
}

func floatSample(v float64) *Sample[float64] {
	return NewSample(v, func() Seq[*Sample[float64]] {
		return MapSeq(towardZeroFloat(v), floatSample)
	})
}

// Shrink candidates for a float: zero, the truncated integer part, then
// halves of v. The magnitude strictly decreases along the sequence read back
// to front, and the sequence is cut off once candidates stop being
// meaningfully smaller, which keeps it finite.
func towardZeroFloat(v float64) Seq[float64] {
	if v == 0 {
		return EmptySeq[float64]()
	}
	candidates := []float64{0}
	if t := math.Trunc(v); t != v && t != 0 {
		candidates = append(candidates, t)
	}
	half := v / 2
	for i := 0; i < 64 && half != 0 && math.Abs(half) > math.Abs(v)*1e-9; i++ {
		candidates = append(candidates, v-half)
		half /= 2
	}
	return SliceSeq(candidates)
}

// Float is the generic form of Float64 for any float type.
func Float[T constraints.Float](max T) Strategy[T] {
	return Map(Float64(float64(max)), func(v float64) T { return T(v) })
}
