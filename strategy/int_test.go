package strategy

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"goprop/random"
)

func TestTowardOrder(t *testing.T) {
	got := Toward(100, 0).Collect()
	want := []int{0, 50, 75, 88, 94, 97, 99}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Toward(100, 0) candidates wrong (-want +got):\n%s", diff)
	}
}

func TestTowardNegative(t *testing.T) {
	for _, c := range Toward(-64, 0).Collect() {
		if c < -64 || c > 0 {
			t.Fatalf("Toward(-64, 0) produced out-of-range candidate %v", c)
		}
	}
}

func TestTowardAtTarget(t *testing.T) {
	if got := Toward(5, 5).Collect(); len(got) != 0 {
		t.Fatalf("Toward at the target should have no candidates, got %v", got)
	}
}

func TestIntRangeDeterministic(t *testing.T) {
	s := IntRange(-1000, 1000)
	a, err := s.Draw(random.New(11))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	b, err := s.Draw(random.New(11))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if a.Value != b.Value {
		t.Fatalf("Draw with the same seed produced %v and %v", a.Value, b.Value)
	}
}

func TestIntRangeBounds(t *testing.T) {
	s := IntRange(-5, 17)
	src := random.New(1)
	for i := 0; i < 1000; i++ {
		sample, err := s.Draw(src)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if sample.Value < -5 || sample.Value > 17 {
			t.Fatalf("Draw produced out-of-range value %v", sample.Value)
		}
	}
}

func TestIntRangeShrinkStaysInRange(t *testing.T) {
	// A strictly positive range shrinks toward its low bound, never below.
	s := IntRange(10, 100)
	src := random.New(2)
	sample, err := s.Draw(src)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	alts := sample.Shrink()
	count := 0
	for alt, ok := alts(); ok; alt, ok = alts() {
		count++
		if alt.Value < 10 || alt.Value > 100 {
			t.Fatalf("Shrink candidate %v escapes range [10, 100]", alt.Value)
		}
	}
	if sample.Value != 10 && count == 0 {
		t.Fatalf("Shrinkable value %v produced no candidates", sample.Value)
	}
}

func TestIntRangeFirstCandidateIsTarget(t *testing.T) {
	s := IntRange(-100, 100)
	src := random.New(3)
	for i := 0; i < 50; i++ {
		sample, err := s.Draw(src)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if sample.Value == 0 {
			continue
		}
		first, ok := sample.Shrink()()
		if !ok {
			t.Fatalf("Non-zero value %v has no shrink candidates", sample.Value)
		}
		if first.Value != 0 {
			t.Fatalf("First shrink candidate of %v should be 0, got %v", sample.Value, first.Value)
		}
	}
}

func TestIntFullRange(t *testing.T) {
	src := random.New(4)
	s := Int[int8]()
	seen := map[int8]bool{}
	for i := 0; i < 5000; i++ {
		sample, err := s.Draw(src)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		seen[sample.Value] = true
	}
	// With 5000 draws over 256 values both extremes should appear.
	if !seen[-128] || !seen[127] {
		t.Fatalf("Int[int8] never drew an extreme value: min=%v max=%v", seen[-128], seen[127])
	}
}

func TestMinimal(t *testing.T) {
	m, ok := Minimal(IntRange(-100, 100))
	if !ok || m.Value != 0 {
		t.Fatalf("Minimal of IntRange(-100, 100) should be 0, got %v (ok=%v)", m, ok)
	}
	m, ok = Minimal(IntRange(10, 100))
	if !ok || m.Value != 10 {
		t.Fatalf("Minimal of IntRange(10, 100) should be 10, got %v (ok=%v)", m, ok)
	}
	m, ok = Minimal(IntRange(-100, -10))
	if !ok || m.Value != -10 {
		t.Fatalf("Minimal of IntRange(-100, -10) should be -10, got %v (ok=%v)", m, ok)
	}
}
