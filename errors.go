package promise

import "fmt"

// PanicError is the rejection reason used when a function run by Async
// panics instead of returning.
type PanicError struct {
	value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("promise: recovered panic: %v", e.value)
}

// Value returns the recovered panic value.
func (e *PanicError) Value() any {
	return e.value
}
