package strategy

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"goprop/random"
)

// Toward produces the classic integer shrink candidates: the target itself,
// then values converging on v by repeated halving of the remaining distance.
//
// The candidates are ordered simplest first and the distance to the target
// strictly increases along the sequence, so iterating from the front always
// tries the simplest viable reduction first.
func Toward[T constraints.Integer](v, target T) Seq[T] {
	if v == target {
		return EmptySeq[T]()
	}
	emittedTarget := false
	delta := v - target
	return func() (T, bool) {
		if !emittedTarget {
			emittedTarget = true
			return target, true
		}
		delta /= 2
		if delta == 0 {
			var zero T
			return zero, false
		}
		return v - delta, true
	}
}

// IntRange is a strategy producing integers in the closed interval
// [low, high]. Values shrink toward the in-range value closest to zero.
// Panics if low > high.
func IntRange[T constraints.Integer](low, high T) Strategy[T] {
	if low > high {
		panic(fmt.Sprintf("strategy: IntRange with low %v > high %v", low, high))
	}
	target := low
	if low <= 0 && high >= 0 {
		target = 0
	} else if high < 0 {
		target = high
	}
	return intRange[T]{low: low, high: high, target: target}
}

type intRange[T constraints.Integer] struct {
	low, high, target T
}

func (ir intRange[T]) Draw(src *random.Source) (*Sample[T], error) {
	// Modular arithmetic makes the span computation valid for signed ranges
	// too; a span of zero means the interval covers the whole 64-bit domain.
	span := uint64(ir.high) - uint64(ir.low) + 1
	var v T
	if span == 0 {
		v = T(src.Uint64())
	} else {
		v = ir.low + T(src.Uint64n(span))
	}
	return ir.sample(v), nil
}

func (ir intRange[T]) sample(v T) *Sample[T] {
	return NewSample(v, func() Seq[*Sample[T]] {
		return MapSeq(Toward(v, ir.target), ir.sample)
	})
}

func (ir intRange[T]) Minimal() (*Sample[T], bool) {
	return ir.sample(ir.target), true
}

// Int is a strategy over the full range of the integer type T, shrinking
// toward zero.
func Int[T constraints.Integer]() Strategy[T] {
	var zero T
	allOnes := ^zero
	if allOnes > zero {
		// Unsigned: all bits set is the maximum.
		return IntRange(zero, allOnes)
	}
	// Signed: the minimum has only the sign bit set.
	min := T(1) << (bitSize[T]() - 1)
	return IntRange(min, ^min)
}

func bitSize[T constraints.Integer]() uint {
	size := uint(1)
	for v := T(1); v<<1 != 0 && size < 64; v <<= 1 {
		size++
	}
	return size
}

// Byte is a strategy over single bytes, shrinking toward zero.
func Byte() Strategy[byte] {
	return IntRange[byte](0, 255)
}
