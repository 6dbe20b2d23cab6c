package oracle

import (
	"cmp"
	"slices"
)

// MapSet is a trivially correct Set backed by the built-in map. It is the
// usual reference implementation for differential runs.
type MapSet[K cmp.Ordered] struct {
	m map[K]struct{}
}

// NewMapSet creates an empty reference set.
func NewMapSet[K cmp.Ordered]() *MapSet[K] {
	return &MapSet[K]{m: make(map[K]struct{})}
}

func (s *MapSet[K]) Insert(key K) bool {
	_, present := s.m[key]
	s.m[key] = struct{}{}
	return !present
}

func (s *MapSet[K]) Remove(key K) bool {
	_, present := s.m[key]
	delete(s.m, key)
	return present
}

func (s *MapSet[K]) Contains(key K) bool {
	_, present := s.m[key]
	return present
}

func (s *MapSet[K]) Items() []K {
	out := make([]K, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
