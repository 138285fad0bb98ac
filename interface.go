package promise

// State describes where a promise is in its lifecycle. A promise starts
// pending and moves exactly once to either fulfilled or rejected.
type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

// Resolver fulfills a promise with a value.
type Resolver[T any] func(value T)

// Rejector rejects a promise with a reason.
type Rejector func(reason error)

// Completer is the write side of a promise: the settling capability a
// producer holds. Both calls are idempotent; the first settlement wins.
type Completer[T any] interface {
	Resolve(value T)
	Reject(reason error)
}
