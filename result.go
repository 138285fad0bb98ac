package promise

import "fmt"

// Result is an immutable view of a settlement: a value for a fulfilled
// promise, or a reason for a rejected one.
type Result[T any] struct {
	value T
	err   error
	state State
}

// Val builds a fulfilled Result carrying value.
func Val[T any](value T) Result[T] {
	return Result[T]{value: value, state: StateFulfilled}
}

// Err builds a rejected Result carrying reason.
func Err[T any](reason error) Result[T] {
	return Result[T]{err: reason, state: StateRejected}
}

func (r Result[T]) Val() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) State() State {
	if "" == r.state {
		return StatePending
	}

	return r.state
}

func (r Result[T]) String() string {
	switch r.State() {
	case StateFulfilled:
		return fmt.Sprintf("fulfilled: %v", r.value)
	case StateRejected:
		return fmt.Sprintf("rejected: %s", r.err)
	default:
		return "pending"
	}
}
