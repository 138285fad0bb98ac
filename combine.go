package promise

import (
	"sync/atomic"

	"go.uber.org/multierr"
)

// The combinators below observe their inputs through Then/Catch and
// therefore occupy the inputs' continuation slots.

// All derives a promise that fulfills with every input's value, in input
// order, once all inputs have fulfilled. The first rejection among the
// inputs rejects the derived promise with that reason. All of no promises
// fulfills immediately with an empty slice.
func All[T any](promises ...*Promise[T]) *Promise[[]T] {
	all := Pending[[]T]()

	if 0 == len(promises) {
		all.Resolve([]T{})

		return all
	}

	var (
		values  = make([]T, len(promises))
		pending atomic.Int64
	)
	pending.Store(int64(len(promises)))

	for i, p := range promises {
		i := i
		p.Then(func(value T) {
			values[i] = value
			if 0 == pending.Add(-1) {
				all.Resolve(values)
			}
		}).Catch(all.Reject)
	}

	return all
}

// AllSettled derives a promise that always fulfills, with every input's
// outcome in input order, once no input is left pending.
func AllSettled[T any](promises ...*Promise[T]) *Promise[[]Result[T]] {
	settled := Pending[[]Result[T]]()

	if 0 == len(promises) {
		settled.Resolve([]Result[T]{})

		return settled
	}

	var (
		results = make([]Result[T], len(promises))
		pending atomic.Int64
	)
	pending.Store(int64(len(promises)))

	for i, p := range promises {
		i := i
		record := func(res Result[T]) {
			results[i] = res
			if 0 == pending.Add(-1) {
				settled.Resolve(results)
			}
		}

		p.Then(func(value T) {
			record(Val(value))
		}).Catch(func(reason error) {
			record(Err[T](reason))
		})
	}

	return settled
}

// Race derives a promise that adopts the first settlement among the inputs,
// fulfilled or rejected. Race of no promises never settles.
func Race[T any](promises ...*Promise[T]) *Promise[T] {
	winner := Pending[T]()

	for _, p := range promises {
		p.Then(winner.Resolve).Catch(winner.Reject)
	}

	return winner
}

// Any derives a promise that fulfills with the first fulfillment among the
// inputs. If every input rejects, the derived promise rejects with the
// inputs' reasons combined. Any of no promises never settles.
func Any[T any](promises ...*Promise[T]) *Promise[T] {
	first := Pending[T]()

	if 0 == len(promises) {
		return first
	}

	var (
		reasons = make([]error, len(promises))
		pending atomic.Int64
	)
	pending.Store(int64(len(promises)))

	for i, p := range promises {
		i := i
		p.Then(first.Resolve).Catch(func(reason error) {
			reasons[i] = reason
			if 0 == pending.Add(-1) {
				first.Reject(multierr.Combine(reasons...))
			}
		})
	}

	return first
}
