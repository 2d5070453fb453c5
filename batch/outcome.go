package batch

import (
	"github.com/kbukum/faultkit/apperr"
)

// Outcome is the per-item result of a batch operation: either a value or a
// classified error, never both.
type Outcome[T any] struct {
	value T
	err   *apperr.Error
}

// Success creates a successful outcome.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Failure creates a failed outcome.
func Failure[T any](err *apperr.Error) Outcome[T] {
	return Outcome[T]{err: err}
}

// IsSuccess reports whether the outcome holds a value.
func (o Outcome[T]) IsSuccess() bool { return o.err == nil }

// Value returns the value and whether the outcome was a success.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.err == nil
}

// Err returns the classified error, or nil for a success.
func (o Outcome[T]) Err() *apperr.Error { return o.err }

// Result is the ordered sequence of outcomes of one batch operation,
// index-aligned with the inputs that produced it.
type Result[T any] []Outcome[T]

// Len returns the number of outcomes.
func (r Result[T]) Len() int { return len(r) }

// SuccessCount returns the number of successful outcomes.
func (r Result[T]) SuccessCount() int {
	n := 0
	for _, o := range r {
		if o.IsSuccess() {
			n++
		}
	}
	return n
}

// FailureCount returns the number of failed outcomes.
func (r Result[T]) FailureCount() int {
	return len(r) - r.SuccessCount()
}

// SuccessRatio returns successes divided by total, or 0 for an empty result.
func (r Result[T]) SuccessRatio() float64 {
	if len(r) == 0 {
		return 0
	}
	return float64(r.SuccessCount()) / float64(len(r))
}

// Successes returns the values of the successful outcomes, in input order.
func (r Result[T]) Successes() []T {
	out := make([]T, 0, len(r))
	for _, o := range r {
		if v, ok := o.Value(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Failures returns the errors of the failed outcomes, in input order.
func (r Result[T]) Failures() []*apperr.Error {
	var out []*apperr.Error
	for _, o := range r {
		if o.err != nil {
			out = append(out, o.err)
		}
	}
	return out
}
