// Package result provides a two-state container for the outcome
// of a fallible operation: either a success value or a classified
// fault. Consumers must build values through Ok, Err, or From;
// the zero value is not a meaningful state.
package result

import (
	"fmt"

	"digital.vasic.faults/pkg/fault"
)

// Result holds either a success value of type T or a fault. The
// two states are disjoint: exactly one of Value and Fault carries
// data.
type Result[T any] struct {
	value T
	fault *fault.Error
	ok    bool
}

// Ok creates a Result in the success state.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a Result in the failure state. A nil descriptor is
// normalized to an internal fault so the failure state always
// carries one.
func Err[T any](f *fault.Error) Result[T] {
	if f == nil {
		f = fault.ForSystem(
			fault.KindInternal,
			"failure state constructed without a fault",
		)
	}
	return Result[T]{fault: f}
}

// From adapts a conventional (T, error) return into a Result.
// A nil error produces the success state; anything else is
// coerced through fault.From.
func From[T any](value T, err error) Result[T] {
	if err == nil {
		return Ok(value)
	}
	return Err[T](fault.From(err))
}

// IsOk returns true in the success state.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr returns true in the failure state.
func (r Result[T]) IsErr() bool { return !r.ok }

// Value returns the success value, or the zero value of T in the
// failure state.
func (r Result[T]) Value() T { return r.value }

// Fault returns the fault descriptor, or nil in the success
// state.
func (r Result[T]) Fault() *fault.Error { return r.fault }

// String renders the result for diagnostics.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("ok(%v)", r.value)
	}
	return fmt.Sprintf("err(%v)", r.fault)
}
