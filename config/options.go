// Package config holds the option values recognized by the runner.
//
// Application code does not normally use this package directly; the root
// package provides a constructor for every option.
package config

import (
	"time"

	"github.com/rs/zerolog"
)

// Controls reproducibility of the run.
//
// The same seed always produces the same sequence of trials. Default is a
// time-derived seed, recorded in the result so any run can be reproduced.
type SeedOption struct{ Seed int64 }

func (o SeedOption) Opt() {}

// Number of trials to run. Exploration budget of the run.
//
// Default is 100.
type TrialsOption struct{ N int }

func (o TrialsOption) Opt() {}

// Budget on accepted shrink steps when searching for a minimal
// counterexample.
//
// Default is 1000.
type MaxShrinkStepsOption struct{ N int }

func (o MaxShrinkStepsOption) Opt() {}

// Bound on the wall-clock time of a single trial.
//
// Guards against non-terminating properties. Exceeding the bound is reported
// as a distinct timeout outcome, never as a pass or a failure.
// Default is no bound.
type TrialTimeoutOption struct{ D time.Duration }

func (o TrialTimeoutOption) Opt() {}

// Bound on re-draws of a filtered strategy before the trial is abandoned as
// exhausted.
//
// Applies to the top-level strategy of the run. Default is the strategy's
// own bound.
type FilterRetryLimitOption struct{ N int }

func (o FilterRetryLimitOption) Opt() {}

// Number of workers evaluating trials in parallel before a failure is found.
//
// Default is 1 (fully sequential).
type ParallelOption struct{ Workers int }

func (o ParallelOption) Opt() {}

// Logger for per-trial and per-shrink-step progress events.
//
// Default is a disabled logger.
type LoggerOption struct{ Log zerolog.Logger }

func (o LoggerOption) Opt() {}

// Re-run only the trial with the given index instead of fresh trials.
//
// Together with the seed this forces deterministic re-execution of a known
// failing case.
type ReplayOption struct{ Index int }

func (o ReplayOption) Opt() {}

// Name of the property, used in reports.
type NameOption struct{ Name string }

func (o NameOption) Opt() {}
