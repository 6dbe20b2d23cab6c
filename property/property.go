// Package property defines property predicates and the tagged outcome of
// evaluating one on a single value.
package property

import (
	"fmt"
	"runtime/debug"
	"time"
)

// A Prop is a predicate over one value of the value space under test.
//
// Returning nil means the property holds for the value. Returning an error
// falsifies it; the error message is carried into the report. A panic inside
// a Prop also falsifies it and is captured with its stack trace.
type Prop[V any] func(V) error

// FromBool adapts a boolean predicate to a Prop.
func FromBool[V any](pred func(V) bool) Prop[V] {
	return func(v V) error {
		if !pred(v) {
			return fmt.Errorf("predicate returned false")
		}
		return nil
	}
}

// Outcome tags the result of one trial.
type Outcome int

const (
	// The property held for the drawn value.
	Pass Outcome = iota
	// The property was falsified by the drawn value.
	Fail
	// The strategy could not produce a value within its retry bound.
	Exhausted
	// The trial exceeded the configured per-trial timeout.
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Exhausted:
		return "exhausted"
	case Timeout:
		return "timeout"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// A Verdict is the converted result of evaluating a property on one value.
// Failures inside the property, including panics, never propagate past the
// trial boundary; they are converted into a Fail verdict here.
type Verdict struct {
	Outcome Outcome
	// Why the property failed. Empty unless Outcome is Fail.
	Reason string
	// Stack trace of the recovered panic, if the failure was a panic.
	Stack []byte
}

// Eval runs the property on one value, converting a returned error or a
// panic into a Fail verdict.
func Eval[V any](prop Prop[V], v V) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = Verdict{
				Outcome: Fail,
				Reason:  fmt.Sprintf("panic: %v", r),
				Stack:   debug.Stack(),
			}
		}
	}()
	if err := prop(v); err != nil {
		return Verdict{Outcome: Fail, Reason: err.Error()}
	}
	return Verdict{Outcome: Pass}
}

// EvalTimeout runs the property on one value, giving up after the provided
// timeout. A zero or negative timeout disables the bound.
//
// The evaluation runs on its own goroutine; if the property never returns,
// that goroutine is abandoned. A Timeout verdict says nothing about whether
// the property would eventually have passed or failed.
func EvalTimeout[V any](prop Prop[V], v V, timeout time.Duration) Verdict {
	if timeout <= 0 {
		return Eval(prop, v)
	}
	done := make(chan Verdict, 1)
	go func() {
		done <- Eval(prop, v)
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case verdict := <-done:
		return verdict
	case <-timer.C:
		return Verdict{Outcome: Timeout}
	}
}
