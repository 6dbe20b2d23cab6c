package random

// A Source is a deterministic pseudo-random bit generator.
//
// Given the same seed a Source always produces the same sequence of bits.
// Sources can be forked into independent sub-sources so that draws performed
// inside one combinator do not perturb the sequences observed by another,
// even when composition order changes.
//
// A Source is not safe for concurrent use. Fork sub-sources and hand them off
// instead of sharing one Source between goroutines.
type Source struct {
	state uint64
	gamma uint64
}

const (
	goldenGamma = 0x9e3779b97f4a7c15

	mixA = 0xbf58476d1ce4e5b9
	mixB = 0x94d049bb133111eb
)

// Create a new Source seeded with the provided seed.
func New(seed int64) *Source {
	return &Source{
		state: mix(uint64(seed)),
		gamma: goldenGamma,
	}
}

// Create a Source for a specific position in a simulation.
//
// The same (seed, path) pair always yields the same Source, independently of
// any other Source. The runner uses this to derive the per-trial source from
// (seed, trial index) and, in parallel mode, (seed, worker index, trial index).
func FromPath(seed int64, path ...uint64) *Source {
	src := New(seed)
	for _, p := range path {
		src = src.Fork()
		src.state = mix(src.state + mix(p))
	}
	return src
}

// finalization step of splitmix64
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mixA
	z = (z ^ (z >> 27)) * mixB
	return z ^ (z >> 31)
}

// Return the next 64 pseudo-random bits and advance the internal position.
func (s *Source) Uint64() uint64 {
	s.state += s.gamma
	return mix(s.state)
}

// Fork returns an independent sub-source.
//
// The child draws a disjoint stream: its state and stream constant are both
// derived from the parent, and the parent position advances by two steps, so
// later parent draws are unaffected by how much the child is used.
func (s *Source) Fork() *Source {
	state := s.Uint64()
	// The stream constant must be odd for the state increment to cycle over
	// all 64-bit values.
	gamma := mix(s.Uint64()) | 1
	return &Source{state: state, gamma: gamma}
}

// Return a pseudo-random int in the interval [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with non-positive n")
	}
	return int(s.Uint64() % uint64(n))
}

// Return a pseudo-random uint64 in the interval [0, n). Panics if n == 0.
func (s *Source) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("random: Uint64n called with zero n")
	}
	return s.Uint64() % n
}

// Return a pseudo-random boolean.
func (s *Source) Bool() bool {
	return s.Uint64()&1 == 1
}

// Return a pseudo-random float64 in the half-open interval [0, 1).
func (s *Source) Float64() float64 {
	// 53 bits of mantissa
	return float64(s.Uint64()>>11) / (1 << 53)
}
