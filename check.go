package goprop

import (
	"testing"

	"goprop/property"
	"goprop/report"
	"goprop/strategy"
)

// Check runs the property and fails the test with the rendered report unless
// every trial passed.
//
// This is the usual entry point from test code:
//
//	goprop.Check(t, strategy.Int[int](), goprop.Prop(func(v int) bool {
//		return decode(encode(v)) == v
//	}))
func Check[V any](t testing.TB, strat strategy.Strategy[V], prop property.Prop[V], opts ...Option) *report.Result[V] {
	t.Helper()
	res := Run(strat, prop, opts...)
	if res.Status != property.Pass {
		t.Fatal(res.Render())
	}
	return res
}
