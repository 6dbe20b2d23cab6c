package strategy

// Rune is a strategy over printable runes, biased toward ASCII. Runes shrink
// toward the low end of their range, non-ASCII runes switch to the ASCII
// range first.
func Rune() Strategy[rune] {
	return WeightedUnion(
		Weighted[rune]{Weight: 9, S: IntRange[rune](' ', '~')},
		Weighted[rune]{Weight: 1, S: IntRange[rune](0xa1, 0x24f)},
	)
}

// String is a strategy over strings of printable runes, up to
// DefaultSliceLimit runes long. Strings shrink like rune slices: toward the
// empty string first, then by tail collapse, then rune by rune.
func String() Strategy[string] {
	return Map(SliceOf(Rune()), func(rs []rune) string { return string(rs) })
}

// StringN is a strategy over strings with rune count in [min, max].
func StringN(min, max int) Strategy[string] {
	return Map(SliceOfN(Rune(), min, max), func(rs []rune) string { return string(rs) })
}

// Bytes is a strategy over byte slices up to DefaultSliceLimit bytes long.
func Bytes() Strategy[[]byte] {
	return SliceOf(Byte())
}

// BytesN is a strategy over byte slices with length in [min, max].
func BytesN(min, max int) Strategy[[]byte] {
	return SliceOfN(Byte(), min, max)
}
