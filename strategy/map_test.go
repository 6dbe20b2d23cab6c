package strategy

import (
	"strings"
	"testing"

	"goprop/random"
)

func TestMapTransforms(t *testing.T) {
	s := Map(IntRange(0, 100), func(v int) int { return v * 2 })
	src := random.New(13)
	for i := 0; i < 100; i++ {
		sample, err := s.Draw(src)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if sample.Value%2 != 0 {
			t.Fatalf("Mapped draw produced untransformed value %v", sample.Value)
		}
	}
}

func TestMapPreservesShrinking(t *testing.T) {
	// The transform has no inverse, shrinking must still work through the
	// retained pre-image.
	s := Map(IntRange(0, 1000), func(v int) string { return strings.Repeat("x", v) })
	sample := drawWhere(t, s, func(v string) bool { return len(v) > 10 })

	first, ok := sample.Shrink()()
	if !ok {
		t.Fatalf("Mapped sample has no shrink candidates")
	}
	if first.Value != "" {
		t.Fatalf("First candidate should map the pre-image target 0 to the empty string, got %q", first.Value)
	}
}

func TestStringShrinksToEmpty(t *testing.T) {
	sample := drawWhere(t, String(), func(v string) bool { return len(v) > 0 })
	first, ok := sample.Shrink()()
	if !ok {
		t.Fatalf("Non-empty string has no shrink candidates")
	}
	if first.Value != "" {
		t.Fatalf("First candidate of a non-empty string should be empty, got %q", first.Value)
	}
}

func TestTuple2ShrinksComponentsIndependently(t *testing.T) {
	s := Tuple2(IntRange(0, 100), IntRange(0, 100))
	sample := drawWhere(t, s, func(p Pair[int, int]) bool { return p.First > 10 && p.Second > 10 })

	alts := sample.Shrink()
	for alt, ok := alts(); ok; alt, ok = alts() {
		firstChanged := alt.Value.First != sample.Value.First
		secondChanged := alt.Value.Second != sample.Value.Second
		if firstChanged && secondChanged {
			t.Fatalf("Candidate %v changed both components of %v at once", alt.Value, sample.Value)
		}
		if !firstChanged && !secondChanged {
			t.Fatalf("Candidate equals the original pair %v", sample.Value)
		}
	}
}

func TestTuple2Deterministic(t *testing.T) {
	s := Tuple2(IntRange(0, 1000), String())
	a, err := s.Draw(random.New(99))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	b, err := s.Draw(random.New(99))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if a.Value != b.Value {
		t.Fatalf("Tuple draw with the same seed produced %v and %v", a.Value, b.Value)
	}
}

func TestMap2(t *testing.T) {
	type point struct{ x, y int }
	s := Map2(IntRange(1, 10), IntRange(1, 10), func(x, y int) point { return point{x, y} })
	sample, err := s.Draw(random.New(3))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	v := sample.Value
	if v.x < 1 || v.x > 10 || v.y < 1 || v.y > 10 {
		t.Fatalf("Map2 produced out-of-range point %v", v)
	}
}

func TestConstNeverShrinks(t *testing.T) {
	sample, err := Const("fixed").Draw(random.New(1))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if sample.Value != "fixed" {
		t.Fatalf("Const drew %q", sample.Value)
	}
	if _, ok := sample.Shrink()(); ok {
		t.Fatalf("Const value should have no shrink candidates")
	}
}

func TestBoolShrinksToFalse(t *testing.T) {
	sample := drawWhere(t, Bool(), func(v bool) bool { return v })
	first, ok := sample.Shrink()()
	if !ok || first.Value {
		t.Fatalf("True should shrink to false")
	}
}
