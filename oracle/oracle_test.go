package oracle_test

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"goprop"
	"goprop/oracle"
	"goprop/property"
	"goprop/random"
	"goprop/strategy"
)

// A candidate ordered set backed by a sorted slice.
type sortedSet[K cmp.Ordered] struct {
	keys []K
}

func (s *sortedSet[K]) Insert(key K) bool {
	i, found := slices.BinarySearch(s.keys, key)
	if found {
		return false
	}
	s.keys = slices.Insert(s.keys, i, key)
	return true
}

func (s *sortedSet[K]) Remove(key K) bool {
	i, found := slices.BinarySearch(s.keys, key)
	if !found {
		return false
	}
	s.keys = slices.Delete(s.keys, i, i+1)
	return true
}

func (s *sortedSet[K]) Contains(key K) bool {
	_, found := slices.BinarySearch(s.keys, key)
	return found
}

func (s *sortedSet[K]) Items() []K {
	return slices.Clone(s.keys)
}

func (s *sortedSet[K]) CheckInvariant() error {
	if !slices.IsSorted(s.keys) {
		return fmt.Errorf("keys out of order: %v", s.keys)
	}
	for i := 1; i < len(s.keys); i++ {
		if s.keys[i] == s.keys[i-1] {
			return fmt.Errorf("duplicate key %v", s.keys[i])
		}
	}
	return nil
}

// A buggy candidate: membership queries keep answering true for any key that
// was ever inserted, even after it was removed.
type leakyContains struct {
	present map[int]struct{}
	seen    map[int]struct{}
}

func newLeakyContains() *leakyContains {
	return &leakyContains{present: map[int]struct{}{}, seen: map[int]struct{}{}}
}

func (s *leakyContains) Insert(key int) bool {
	_, ok := s.present[key]
	s.present[key] = struct{}{}
	s.seen[key] = struct{}{}
	return !ok
}

func (s *leakyContains) Remove(key int) bool {
	_, ok := s.present[key]
	delete(s.present, key)
	return ok
}

func (s *leakyContains) Contains(key int) bool {
	_, ok := s.seen[key]
	return ok
}

func (s *leakyContains) Items() []int {
	out := make([]int, 0, len(s.present))
	for k := range s.present {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func newDriver(candidate func() oracle.Set[int]) *oracle.Driver[int] {
	return oracle.New(candidate,
		func() oracle.Set[int] { return oracle.NewMapSet[int]() },
		strategy.IntRange(0, 5),
	)
}

func TestScenarioTrace(t *testing.T) {
	// The canonical consistency scenario: observable results of the sequence
	// against a fresh ordered set.
	ops := []oracle.Operation[int]{
		{Kind: oracle.Insert, Key: 3},
		{Kind: oracle.Insert, Key: 1},
		{Kind: oracle.Insert, Key: 2},
		{Kind: oracle.Query, Key: 2},
		{Kind: oracle.Remove, Key: 1},
		{Kind: oracle.Query, Key: 1},
	}
	want := []bool{true, true, true, true, true, false}

	set := &sortedSet[int]{}
	got := make([]bool, len(ops))
	for i, op := range ops {
		switch op.Kind {
		case oracle.Insert:
			got[i] = set.Insert(op.Key)
		case oracle.Remove:
			got[i] = set.Remove(op.Key)
		case oracle.Query:
			got[i] = set.Contains(op.Key)
		}
	}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Fatalf("Observable trace differs (-want +got):\n%s", diff)
	}

	// The differential property must agree that the sequence is consistent.
	prop := newDriver(func() oracle.Set[int] { return &sortedSet[int]{} }).Property()
	if err := prop(ops); err != nil {
		t.Fatalf("Consistent scenario reported as failure: %v", err)
	}

	// A candidate that lies about Query(1) after Remove(1) must be caught.
	bugged := newDriver(func() oracle.Set[int] { return newLeakyContains() }).Property()
	err := bugged(ops)
	if err == nil {
		t.Fatalf("Inconsistent candidate not detected")
	}
	if !strings.Contains(err.Error(), "Query(1)") {
		t.Fatalf("Failure does not name the disagreeing operation: %v", err)
	}
}

func TestCorrectCandidatePasses(t *testing.T) {
	newDriver(func() oracle.Set[int] { return &sortedSet[int]{} }).
		Check(t, goprop.Seed(101), goprop.Trials(300))
}

func TestBuggyCandidateShrinksToCore(t *testing.T) {
	res := newDriver(func() oracle.Set[int] { return newLeakyContains() }).
		Run(goprop.Seed(101), goprop.Trials(300))

	require.Equal(t, property.Fail, res.Status, "the leaky candidate must be falsified")

	// The minimal reproducer is insert, remove, then the lying query, all on
	// the same key.
	require.Len(t, res.Minimal, 3)
	require.Equal(t, oracle.Insert, res.Minimal[0].Kind)
	require.Equal(t, oracle.Remove, res.Minimal[1].Kind)
	require.Equal(t, oracle.Query, res.Minimal[2].Kind)
	key := res.Minimal[0].Key
	require.Equal(t, key, res.Minimal[1].Key)
	require.Equal(t, key, res.Minimal[2].Key)
}

func TestEmptySequencePasses(t *testing.T) {
	prop := newDriver(func() oracle.Set[int] { return newLeakyContains() }).Property()
	if err := prop(nil); err != nil {
		t.Fatalf("Empty sequence must be vacuously consistent, got %v", err)
	}
	if err := prop([]oracle.Operation[int]{}); err != nil {
		t.Fatalf("Empty sequence must be vacuously consistent, got %v", err)
	}
}

func TestInvariantViolationDetected(t *testing.T) {
	res := newDriver(func() oracle.Set[int] { return &capped{MapSet: oracle.NewMapSet[int]()} }).
		Run(goprop.Seed(7), goprop.Trials(200))

	require.Equal(t, property.Fail, res.Status)
	require.Contains(t, res.Reason, "invariant violated")

	// Two inserts of distinct keys are the smallest sequence breaking the
	// capacity invariant.
	require.Len(t, res.Minimal, 2)
	require.Equal(t, oracle.Insert, res.Minimal[0].Kind)
	require.Equal(t, oracle.Insert, res.Minimal[1].Kind)
	require.NotEqual(t, res.Minimal[0].Key, res.Minimal[1].Key)
}

// A candidate whose structural invariant forbids more than one element.
type capped struct {
	*oracle.MapSet[int]
}

func (c *capped) CheckInvariant() error {
	if n := len(c.Items()); n > 1 {
		return fmt.Errorf("capacity exceeded: %d items", n)
	}
	return nil
}

func TestSequenceDeterministic(t *testing.T) {
	d := newDriver(func() oracle.Set[int] { return &sortedSet[int]{} })
	s := d.Sequence()

	a := goprop.Run(s, func([]oracle.Operation[int]) error { return nil }, goprop.Seed(40), goprop.Trials(5))
	require.Equal(t, property.Pass, a.Status)

	draw := func() []oracle.Operation[int] {
		sample, err := s.Draw(random.New(40))
		require.NoError(t, err)
		return sample.Value
	}
	require.Empty(t, gocmp.Diff(draw(), draw()))
}

func TestSequenceShrinkDropsQueriesFirst(t *testing.T) {
	d := newDriver(func() oracle.Set[int] { return &sortedSet[int]{} }).WithMaxOps(20)
	s := d.Sequence()

	src := random.New(9)
	for i := 0; i < 5000; i++ {
		sample, err := s.Draw(src)
		require.NoError(t, err)
		queries := 0
		for _, op := range sample.Value {
			if op.Kind == oracle.Query {
				queries++
			}
		}
		if queries == 0 || queries == len(sample.Value) || len(sample.Value) < 4 {
			continue
		}

		alts := sample.Shrink()
		first, ok := alts()
		require.True(t, ok)
		require.Empty(t, first.Value, "the first candidate must be the empty sequence")

		second, ok := alts()
		require.True(t, ok)
		require.Len(t, second.Value, len(sample.Value)-queries)
		for _, op := range second.Value {
			require.NotEqual(t, oracle.Query, op.Kind, "the query-free candidate still contains a query")
		}
		return
	}
	t.Fatalf("No mixed sequence drawn in 5000 attempts")
}
