package promise

import "time"

// Delay returns a promise fulfilled with value after d has elapsed.
func Delay[T any](d time.Duration, value T) *Promise[T] {
	p := Pending[T]()
	time.AfterFunc(d, func() {
		p.Resolve(value)
	})

	return p
}

// DelayErr returns a promise rejected with reason after d has elapsed.
// Racing a promise against DelayErr is the intended way to put a deadline
// on it:
//
//	res := promise.Race(p, promise.DelayErr[int](time.Second, errTimeout))
func DelayErr[T any](d time.Duration, reason error) *Promise[T] {
	p := Pending[T]()
	time.AfterFunc(d, func() {
		p.Reject(reason)
	})

	return p
}
