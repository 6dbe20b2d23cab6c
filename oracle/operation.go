package oracle

import (
	"cmp"
	"fmt"

	"goprop/random"
	"goprop/strategy"
)

// Kind tags one operation of an operation sequence.
type Kind uint8

const (
	Insert Kind = iota
	Remove
	Query
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "Insert"
	case Remove:
		return "Remove"
	case Query:
		return "Query"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// An Operation is one tagged call against the paired implementations.
// Operation order inside a sequence is significant: the driver replays the
// exact call order against both implementations.
type Operation[K cmp.Ordered] struct {
	Kind Kind
	Key  K
}

func (op Operation[K]) String() string {
	return fmt.Sprintf("%v(%v)", op.Kind, op.Key)
}

// DefaultMaxOps is the maximum sequence length drawn by a Driver unless
// configured otherwise.
const DefaultMaxOps = 40

// relative draw weights per operation kind; inserts dominate so sequences
// reach interesting states before querying them
var kindWeights = []struct {
	kind   Kind
	weight int
}{
	{Insert, 4},
	{Remove, 3},
	{Query, 3},
}

// A sequence strategy over operations with a shrink order specialized for
// differential testing. Candidates are tried in this order:
//
//  1. the empty sequence
//  2. the sequence with every Query removed
//  3. single Query removals, latest first
//  4. tail collapses, halving the number of removed operations
//  5. single removals at any position, latest first
//  6. per-operation key shrinks, left to right
//
// Queries and late operations go first because they carry the least semantic
// weight, which converges on short reproducers faster than uniform removal.
type sequence[K cmp.Ordered] struct {
	keys   strategy.Strategy[K]
	maxOps int
}

// A drawn operation keeps its key sample so key shrinking stays available.
type opSample[K cmp.Ordered] struct {
	kind Kind
	key  *strategy.Sample[K]
}

func (s sequence[K]) Draw(src *random.Source) (*strategy.Sample[[]Operation[K]], error) {
	n := src.Intn(s.maxOps + 1)
	ops := make([]opSample[K], n)
	for i := range ops {
		key, err := s.keys.Draw(src)
		if err != nil {
			return nil, err
		}
		ops[i] = opSample[K]{kind: s.drawKind(src), key: key}
	}
	return s.sample(ops), nil
}

func (s sequence[K]) drawKind(src *random.Source) Kind {
	total := 0
	for _, kw := range kindWeights {
		total += kw.weight
	}
	pick := src.Intn(total)
	for _, kw := range kindWeights {
		if pick < kw.weight {
			return kw.kind
		}
		pick -= kw.weight
	}
	return Insert
}

func (s sequence[K]) Minimal() (*strategy.Sample[[]Operation[K]], bool) {
	return s.sample(nil), true
}

func (s sequence[K]) sample(ops []opSample[K]) *strategy.Sample[[]Operation[K]] {
	values := make([]Operation[K], len(ops))
	for i, op := range ops {
		values[i] = Operation[K]{Kind: op.kind, Key: op.key.Value}
	}
	return strategy.NewSample(values, func() strategy.Seq[*strategy.Sample[[]Operation[K]]] {
		return s.shrinkCandidates(ops)
	})
}

func (s sequence[K]) shrinkCandidates(ops []opSample[K]) strategy.Seq[*strategy.Sample[[]Operation[K]]] {
	n := len(ops)
	queries := 0
	for _, op := range ops {
		if op.kind == Query {
			queries++
		}
	}

	var candidates []strategy.Seq[*strategy.Sample[[]Operation[K]]]

	if n > 0 {
		candidates = append(candidates, strategy.OneSeq(s.sample(nil)))
	}
	if queries > 0 && queries < n {
		kept := make([]opSample[K], 0, n-queries)
		for _, op := range ops {
			if op.kind != Query {
				kept = append(kept, op)
			}
		}
		candidates = append(candidates, strategy.OneSeq(s.sample(kept)))
	}
	candidates = append(candidates,
		s.queryRemovals(ops),
		s.tailCollapses(ops),
		s.singleRemovals(ops),
		s.keyShrinks(ops),
	)
	return strategy.ConcatSeq(candidates...)
}

// Candidates with one Query operation removed, latest first.
func (s sequence[K]) queryRemovals(ops []opSample[K]) strategy.Seq[*strategy.Sample[[]Operation[K]]] {
	i := len(ops) - 1
	return func() (*strategy.Sample[[]Operation[K]], bool) {
		for ; i >= 0; i-- {
			if ops[i].kind != Query {
				continue
			}
			candidate := removeAt(ops, i)
			i--
			return s.sample(candidate), true
		}
		return nil, false
	}
}

// Candidates that drop a tail of halving size: first half the sequence, then
// ever smaller tail cuts down to a single operation.
func (s sequence[K]) tailCollapses(ops []opSample[K]) strategy.Seq[*strategy.Sample[[]Operation[K]]] {
	n := len(ops)
	k := n / 2
	return func() (*strategy.Sample[[]Operation[K]], bool) {
		if k < 1 {
			return nil, false
		}
		candidate := ops[:n-k]
		k /= 2
		return s.sample(candidate), true
	}
}

// Candidates with one operation of any kind removed, latest first.
func (s sequence[K]) singleRemovals(ops []opSample[K]) strategy.Seq[*strategy.Sample[[]Operation[K]]] {
	i := len(ops) - 1
	return func() (*strategy.Sample[[]Operation[K]], bool) {
		if i < 0 {
			return nil, false
		}
		candidate := removeAt(ops, i)
		i--
		return s.sample(candidate), true
	}
}

// Same-length candidates with one operation's key replaced by a simpler one,
// left to right.
func (s sequence[K]) keyShrinks(ops []opSample[K]) strategy.Seq[*strategy.Sample[[]Operation[K]]] {
	i := 0
	var alts strategy.Seq[*strategy.Sample[K]]
	return func() (*strategy.Sample[[]Operation[K]], bool) {
		for i < len(ops) {
			if alts == nil {
				alts = ops[i].key.Shrink()
			}
			alt, ok := alts()
			if !ok {
				alts = nil
				i++
				continue
			}
			candidate := make([]opSample[K], len(ops))
			copy(candidate, ops)
			candidate[i] = opSample[K]{kind: ops[i].kind, key: alt}
			return s.sample(candidate), true
		}
		return nil, false
	}
}

func removeAt[K cmp.Ordered](ops []opSample[K], i int) []opSample[K] {
	out := make([]opSample[K], 0, len(ops)-1)
	out = append(out, ops[:i]...)
	return append(out, ops[i+1:]...)
}
