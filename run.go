// Package goprop is a property-based testing engine.
//
// A property is checked by drawing many pseudo-random values from a
// strategy, evaluating a predicate on each, and, on the first falsifying
// value, deterministically reducing it to a locally minimal counterexample:
//
//	result := goprop.Run(
//		strategy.SliceOf(strategy.Int[int]()),
//		goprop.Prop(func(xs []int) bool { return len(xs) <= 10 }),
//		goprop.Trials(200),
//	)
//	if result.Failed() {
//		fmt.Println(result.Render())
//	}
//
// Every run is reproducible: a failing result records the seed and trial
// index that regenerate the original failing value, and passing those back
// via Seed and Replay re-executes exactly that case. A passing run only
// means the property held for the sampled trials; it is not a proof.
package goprop

import (
	"time"

	"goprop/property"
	"goprop/random"
	"goprop/report"
	"goprop/shrink"
	"goprop/strategy"
)

// Prop adapts a boolean predicate to the property form used by Run.
func Prop[V any](pred func(V) bool) property.Prop[V] {
	return property.FromBool(pred)
}

// Run checks the property against freshly drawn values of the strategy.
//
// Trials run until the configured count is reached or a trial fails or times
// out; the first failure wins and is shrunk to a locally minimal
// counterexample. See the Option constructors for the recognized
// configuration.
func Run[V any](strat strategy.Strategy[V], prop property.Prop[V], opts ...Option) *report.Result[V] {
	cfg := newSettings(opts)
	if !cfg.seedSet {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.retryLimit > 0 {
		if f, ok := strat.(interface {
			WithRetryLimit(n int) *strategy.Filtered[V]
		}); ok {
			strat = f.WithRetryLimit(cfg.retryLimit)
		}
	}

	start := time.Now()
	res := &report.Result[V]{
		Status: property.Pass,
		Name:   cfg.name,
		Seed:   cfg.seed,
		Index:  -1,
	}

	if cfg.replay >= 0 {
		runTrial(strat, prop, cfg, cfg.replay, res)
	} else if cfg.workers > 1 {
		runParallel(strat, prop, cfg, res)
	} else {
		for i := 0; i < cfg.trials && res.Status == property.Pass; i++ {
			runTrial(strat, prop, cfg, i, res)
		}
	}

	// A run that produced no value at all is exhausted, not passing.
	if res.Status == property.Pass && res.Passed == 0 && res.Discarded > 0 {
		res.Status = property.Exhausted
	}
	res.Elapsed = time.Since(start)
	return res
}

// RunBool is Run for a plain boolean predicate.
func RunBool[V any](strat strategy.Strategy[V], pred func(V) bool, opts ...Option) *report.Result[V] {
	return Run(strat, Prop(pred), opts...)
}

// Execute the trial with the given index and fold its outcome into the
// result. On failure the drawn value is shrunk before recording.
func runTrial[V any](strat strategy.Strategy[V], prop property.Prop[V], cfg settings, index int, res *report.Result[V]) {
	sample, verdict := evalTrial(strat, prop, cfg, index)
	foldOutcome(prop, cfg, index, sample, verdict, res)
}

func foldOutcome[V any](prop property.Prop[V], cfg settings, index int, sample *strategy.Sample[V], verdict property.Verdict, res *report.Result[V]) {
	cfg.logger.Debug().
		Int64("seed", cfg.seed).
		Int("trial", index).
		Stringer("outcome", verdict.Outcome).
		Msg("trial finished")

	switch verdict.Outcome {
	case property.Pass:
		res.Passed++
	case property.Exhausted:
		res.Discarded++
	case property.Timeout:
		res.Status = property.Timeout
		res.Index = index
	case property.Fail:
		recordFailure(prop, cfg, index, sample, verdict, res)
	}
}

// Draw the trial's value and evaluate the property on it. The source is
// derived from (seed, trial index), so any single trial can be regenerated
// without running the ones before it.
func evalTrial[V any](strat strategy.Strategy[V], prop property.Prop[V], cfg settings, index int) (*strategy.Sample[V], property.Verdict) {
	src := random.FromPath(cfg.seed, uint64(index))
	sample, err := strat.Draw(src)
	if err != nil {
		return nil, property.Verdict{Outcome: property.Exhausted}
	}
	return sample, property.EvalTimeout(prop, sample.Value, cfg.timeout)
}

func recordFailure[V any](prop property.Prop[V], cfg settings, index int, sample *strategy.Sample[V], verdict property.Verdict, res *report.Result[V]) {
	minimized := shrink.Minimize(sample, verdict.Reason, prop, shrink.Options[V]{
		MaxSteps: cfg.shrinkSteps,
		Timeout:  cfg.timeout,
		Logger:   cfg.logger,
	})

	res.Status = property.Fail
	res.Index = index
	res.Original = sample.Value
	res.Minimal = minimized.Value
	res.ShrinkSteps = minimized.Steps
	res.Reason = minimized.Reason
	res.Stack = verdict.Stack
}
