package promise

// FlatMap derives a promise that settles with the outcome of the promise fn
// returns. fn runs once p fulfills; its promise's settlement, fulfilled or
// rejected, is forwarded to the derived promise. If p rejects, fn is never
// invoked and the rejection propagates as-is.
//
// FlatMap occupies p's continuation slots; it is the chaining primitive, and
// satisfies the usual bind laws: FlatMap(FlatMap(p, f), g) settles like
// FlatMap(p, func(v) { return FlatMap(f(v), g) }).
//
// FlatMap and Map are package functions because a Go method cannot introduce
// the second type parameter.
func FlatMap[T, U any](p *Promise[T], fn func(value T) *Promise[U]) *Promise[U] {
	if nil == fn {
		panic("promise: nil function")
	}

	return New(func(resolve Resolver[U], reject Rejector) {
		p.Then(func(value T) {
			fn(value).Then(resolve).Catch(reject)
		}).Catch(reject)
	})
}

// Map derives a promise fulfilled with fn applied to p's value. Rejections
// propagate without invoking fn.
func Map[T, U any](p *Promise[T], fn func(value T) U) *Promise[U] {
	if nil == fn {
		panic("promise: nil function")
	}

	return FlatMap(p, func(value T) *Promise[U] {
		return Resolve(fn(value))
	})
}
