package goprop

import (
	"fmt"
	"io"
	"testing"

	"goprop/property"
	"goprop/strategy"
)

// Properties is a named collection of properties checked as one batch with
// shared options.
type Properties struct {
	opts  []Option
	names []string
	runs  []func(opts ...Option) (bool, string)
}

// NewProperties creates an empty collection. The provided options apply to
// every property in it; per-property options given to Property take
// precedence.
func NewProperties(opts ...Option) *Properties {
	return &Properties{opts: opts}
}

// Property registers a named check. Use ForAll to build the check from a
// strategy and a predicate.
func (p *Properties) Property(name string, check func(opts ...Option) (bool, string), opts ...Option) {
	combined := append(append([]Option{Named(name)}, p.opts...), opts...)
	p.names = append(p.names, name)
	p.runs = append(p.runs, func(extra ...Option) (bool, string) {
		return check(append(combined, extra...)...)
	})
}

// ForAll builds a check verifying that the property holds for all values
// drawn from the strategy.
func ForAll[V any](strat strategy.Strategy[V], prop property.Prop[V]) func(opts ...Option) (bool, string) {
	return func(opts ...Option) (bool, string) {
		res := Run(strat, prop, opts...)
		return res.Status == property.Pass, res.Render()
	}
}

// Run checks every registered property, writing one rendered result per
// property to w. Returns true if all of them passed.
func (p *Properties) Run(w io.Writer) bool {
	ok := true
	for _, run := range p.runs {
		passed, rendered := run()
		if !passed {
			ok = false
		}
		fmt.Fprintln(w, rendered)
	}
	return ok
}

// TestingRun checks every registered property as a subtest of t.
func (p *Properties) TestingRun(t *testing.T) {
	for i, run := range p.runs {
		run := run
		t.Run(p.names[i], func(t *testing.T) {
			if passed, rendered := run(); !passed {
				t.Fatal(rendered)
			}
		})
	}
}
