// Package promise provides a single-resolution asynchronous value cell.
//
// A Promise[T] decouples the producer of a value from its consumer in time:
// the producer settles the cell at most once, through Resolve or Reject, and
// the consumer registers interest whether or not the value has already
// arrived. Redundant settlements are silently ignored, so a value is never
// delivered downstream twice even when Resolve is called from more than one
// code path.
//
// A continuation attached through Then, Catch or Finally runs exactly once:
// at attachment time if the promise has already settled, otherwise
// synchronously on the goroutine that settles it. Each of the three slots
// holds a single continuation; attaching again while pending replaces the
// previous handler. Code that needs several independent observers should
// have each of them block on Await or WaitChan instead, which any number of
// goroutines may do.
//
// Dependent asynchronous steps are sequenced with FlatMap and Map, which
// derive a new promise instead of nesting callbacks. Rejections skip the
// mapping function and propagate to the end of the chain.
//
// The promise owns no goroutine and never blocks a settling or attaching
// caller. Continuations are invoked with no internal lock held, so they may
// call back into this or any related promise.
package promise
