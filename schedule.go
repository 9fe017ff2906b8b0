package csp

// Schedule wraps a per-item stage factory into a new stage that, for each
// value read from its input, constructs a fresh Stage[None, Out] via
// factory, starts it in the background writing into a shared output
// stream, and keeps a reference to it until the outer stage's own input
// drains. This effects dynamic fan-out with unbounded concurrency: one
// sub-pipeline per input item, all merging into a single output stream.
func Schedule[In, Out any](factory func(v In) *Stage[None, Out]) *Stage[In, Out] {
	if factory == nil {
		panic(ErrNilFactory)
	}

	outer := Transform[In, Out](nil)
	outer.output.SetAlwaysLock(true)

	var spawned []*Stage[None, Out]

	outer.body = func(o *Stage[In, Out]) {
		var v In
		for o.Read(&v) {
			inner := factory(v)
			inner.output = outer.output
			inner.ownsOutput = false
			inner.startBackground()
			spawned = append(spawned, inner)
		}

		for _, inner := range spawned {
			inner.join()
		}
	}

	return outer
}
