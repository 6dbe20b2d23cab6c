package goprop

import (
	"golang.org/x/sync/errgroup"

	"goprop/property"
	"goprop/report"
	"goprop/strategy"
)

// Evaluate trials on cfg.workers goroutines, one batch of workers at a time.
//
// Batches are a barrier: a batch only starts once the previous one is fully
// processed, and within a finished batch outcomes are folded in index order.
// Together with per-trial-index sources this makes the parallel run report
// exactly what the sequential run with the same seed reports — the lowest
// failing index wins even if a higher index failed first in wall-clock time.
//
// Shrinking is inherently serial (each candidate depends on the previous
// verdict) and happens after the workers have stopped.
func runParallel[V any](strat strategy.Strategy[V], prop property.Prop[V], cfg settings, res *report.Result[V]) {
	type trialResult struct {
		sample  *strategy.Sample[V]
		verdict property.Verdict
	}

	for base := 0; base < cfg.trials && res.Status == property.Pass; base += cfg.workers {
		n := cfg.workers
		if base+n > cfg.trials {
			n = cfg.trials - base
		}

		batch := make([]trialResult, n)
		var g errgroup.Group
		for w := 0; w < n; w++ {
			index := base + w
			slot := &batch[w]
			g.Go(func() error {
				slot.sample, slot.verdict = evalTrial(strat, prop, cfg, index)
				return nil
			})
		}
		// Workers only report through their own slot, so the only error
		// source is a panic, which errgroup propagates.
		_ = g.Wait()

		for w := 0; w < n && res.Status == property.Pass; w++ {
			foldOutcome(prop, cfg, base+w, batch[w].sample, batch[w].verdict, res)
		}
	}
}
