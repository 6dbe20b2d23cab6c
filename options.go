package goprop

import (
	"time"

	"github.com/rs/zerolog"

	"goprop/config"
	"goprop/shrink"
)

// An Option configures a property run.
//
// See the constructor functions for the full set of recognized options.
// Default values are used for options that are not provided.
type Option interface {
	// noop method
	Opt()
}

// Seed fixes the seed of the run.
//
// The same seed always reproduces the same trials, including any failure.
// Without this option a time-derived seed is used and recorded in the
// result.
func Seed(seed int64) Option {
	return config.SeedOption{Seed: seed}
}

// Trials configures how many values are drawn and checked.
//
// Default value is 100.
func Trials(n int) Option {
	return config.TrialsOption{N: n}
}

// MaxShrinkSteps bounds the number of accepted shrink steps when a failing
// value is reduced.
//
// Default value is 1000. When the bound is reached the best value found so
// far is reported.
func MaxShrinkSteps(n int) Option {
	return config.MaxShrinkStepsOption{N: n}
}

// TrialTimeout bounds the wall-clock time of a single trial.
//
// Exceeding the bound is a distinct timeout outcome: the engine infers
// neither a pass nor a failure from it. Default is no bound.
func TrialTimeout(d time.Duration) Option {
	return config.TrialTimeoutOption{D: d}
}

// FilterRetryLimit bounds the re-draws of the run's top-level filtered
// strategy before a trial is abandoned as exhausted.
//
// Default is the strategy's own retry bound.
func FilterRetryLimit(n int) Option {
	return config.FilterRetryLimitOption{N: n}
}

// Parallel evaluates trials on n workers until the first failure is found.
//
// Trial sources are derived per trial index, and the run reports the lowest
// failing index, so the result is identical to the sequential run with the
// same seed. Shrinking is always sequential.
func Parallel(n int) Option {
	return config.ParallelOption{Workers: n}
}

// WithLogger configures a logger receiving per-trial and per-shrink-step
// progress events.
//
// Default is a disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return config.LoggerOption{Log: log}
}

// Replay re-executes only the trial with the given index.
//
// Supplying the seed and index recorded in a failing result forces
// deterministic re-execution of that failure, including shrinking.
func Replay(index int) Option {
	return config.ReplayOption{Index: index}
}

// Named sets the property name used in reports.
func Named(name string) Option {
	return config.NameOption{Name: name}
}

// The resolved configuration of one run.
type settings struct {
	seed        int64
	seedSet     bool
	trials      int
	shrinkSteps int
	timeout     time.Duration
	retryLimit  int
	workers     int
	logger      zerolog.Logger
	replay      int
	name        string
}

func newSettings(opts []Option) settings {
	s := settings{
		trials:      100,
		shrinkSteps: shrink.DefaultMaxSteps,
		workers:     1,
		logger:      zerolog.Nop(),
		replay:      -1,
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case config.SeedOption:
			s.seed = t.Seed
			s.seedSet = true
		case config.TrialsOption:
			if t.N > 0 {
				s.trials = t.N
			}
		case config.MaxShrinkStepsOption:
			if t.N > 0 {
				s.shrinkSteps = t.N
			}
		case config.TrialTimeoutOption:
			s.timeout = t.D
		case config.FilterRetryLimitOption:
			s.retryLimit = t.N
		case config.ParallelOption:
			if t.Workers > 1 {
				s.workers = t.Workers
			}
		case config.LoggerOption:
			s.logger = t.Log
		case config.ReplayOption:
			s.replay = t.Index
		case config.NameOption:
			s.name = t.Name
		}
	}
	return s
}
