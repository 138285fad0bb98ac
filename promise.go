package promise

import (
	"context"
	"sync"
)

// Promise is a cell for a value that becomes available at most once, in the
// future. Producers settle it through Resolve or Reject; consumers attach
// continuations through Then, Catch and Finally, or block on Await.
//
// The zero value is not usable; create promises through Pending, New,
// Resolve, Reject or Async.
type Promise[T any] struct {
	mu    sync.Mutex
	state State
	done  chan struct{}

	onFulfilled func(value T)
	onRejected  func(reason error)
	onFinalized func()

	value T
	err   error
}

// Pending returns a promise in the pending state. The caller keeps the
// settling capability in the form of the Resolve and Reject methods.
func Pending[T any]() *Promise[T] {
	return &Promise[T]{
		state: StatePending,
		done:  make(chan struct{}),
	}
}

// New runs executor synchronously, handing it the new promise's settling
// functions. The executor typically starts a deferred computation and closes
// over resolve/reject to call later; it does not have to settle the promise
// before returning. A panic inside executor propagates out of New.
func New[T any](executor func(resolve Resolver[T], reject Rejector)) *Promise[T] {
	if nil == executor {
		panic("promise: nil executor")
	}

	p := Pending[T]()
	executor(p.Resolve, p.Reject)

	return p
}

// Resolve returns a promise already fulfilled with value.
func Resolve[T any](value T) *Promise[T] {
	p := Pending[T]()
	p.Resolve(value)

	return p
}

// Reject returns a promise already rejected with reason.
func Reject[T any](reason error) *Promise[T] {
	p := Pending[T]()
	p.Reject(reason)

	return p
}

// Async runs fn on its own goroutine and settles the returned promise with
// its outcome. A panic inside fn rejects the promise with a *PanicError.
func Async[T any](fn func() (T, error)) *Promise[T] {
	if nil == fn {
		panic("promise: nil function")
	}

	p := Pending[T]()

	go func() {
		defer func() {
			if v := recover(); nil != v {
				p.Reject(&PanicError{value: v})
			}
		}()

		if value, err := fn(); nil != err {
			p.Reject(err)
		} else {
			p.Resolve(value)
		}
	}()

	return p
}

// Resolve fulfills the promise with value. Only the first settlement has an
// effect; once the promise is fulfilled or rejected, further calls are
// silently ignored. The fulfillment continuation, if attached, runs
// synchronously on the calling goroutine, after the internal lock has been
// released.
func (p *Promise[T]) Resolve(value T) {
	p.mu.Lock()
	if StatePending != p.state {
		p.mu.Unlock()
		return
	}

	p.state = StateFulfilled
	p.value = value
	onFulfilled, onFinalized := p.onFulfilled, p.onFinalized
	close(p.done)
	p.mu.Unlock()

	if nil != onFulfilled {
		onFulfilled(value)
	}
	if nil != onFinalized {
		onFinalized()
	}
}

// Reject settles the promise with reason. Like Resolve, only the first
// settlement wins.
func (p *Promise[T]) Reject(reason error) {
	p.mu.Lock()
	if StatePending != p.state {
		p.mu.Unlock()
		return
	}

	p.state = StateRejected
	p.err = reason
	onRejected, onFinalized := p.onRejected, p.onFinalized
	close(p.done)
	p.mu.Unlock()

	if nil != onRejected {
		onRejected(reason)
	}
	if nil != onFinalized {
		onFinalized()
	}
}

// Then attaches handler as the fulfillment continuation. If the promise is
// already fulfilled, handler runs immediately, before Then returns. While the
// promise is pending the slot holds a single continuation: attaching again
// replaces the previous handler, and only the replacement will observe the
// value. Then returns the receiver so attachments compose fluently.
func (p *Promise[T]) Then(handler func(value T)) *Promise[T] {
	if nil == handler {
		panic("promise: nil handler")
	}

	p.mu.Lock()
	if StatePending == p.state {
		p.onFulfilled = handler
		p.mu.Unlock()

		return p
	}
	state, value := p.state, p.value
	p.mu.Unlock()

	if StateFulfilled == state {
		handler(value)
	}

	return p
}

// Catch attaches handler as the rejection continuation, with the same
// single-slot and run-immediately-if-settled contract as Then.
func (p *Promise[T]) Catch(handler func(reason error)) *Promise[T] {
	if nil == handler {
		panic("promise: nil handler")
	}

	p.mu.Lock()
	if StatePending == p.state {
		p.onRejected = handler
		p.mu.Unlock()

		return p
	}
	state, reason := p.state, p.err
	p.mu.Unlock()

	if StateRejected == state {
		handler(reason)
	}

	return p
}

// Finally attaches handler to run on either settlement, after the Then or
// Catch continuation. Single-slot, like Then.
func (p *Promise[T]) Finally(handler func()) *Promise[T] {
	if nil == handler {
		panic("promise: nil handler")
	}

	p.mu.Lock()
	if StatePending == p.state {
		p.onFinalized = handler
		p.mu.Unlock()

		return p
	}
	p.mu.Unlock()

	handler()

	return p
}

// State reports the promise's current state.
func (p *Promise[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Value returns the fulfillment value, or the zero value while the promise
// is pending or rejected.
func (p *Promise[T]) Value() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.value
}

// Err returns the rejection reason, or nil while the promise is pending or
// fulfilled.
func (p *Promise[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

// Res snapshots the settlement as a Result. ok is false while the promise is
// still pending.
func (p *Promise[T]) Res() (res Result[T], ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if StatePending == p.state {
		return Result[T]{}, false
	}

	return Result[T]{value: p.value, err: p.err, state: p.state}, true
}

// WaitChan returns a channel that is closed when the promise settles. Any
// number of goroutines may receive from it; waiting is read-only and does
// not occupy the continuation slot.
func (p *Promise[T]) WaitChan() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done. It returns the
// fulfillment value, the rejection reason, or ctx.Err(); a context error
// does not settle the promise.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()

		return p.value, p.err

	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}
