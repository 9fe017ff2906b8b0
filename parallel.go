package csp

// Parallel wraps inner into a new stage that spawns n clones of inner's
// body, round-robins the outer stage's input among them, and funnels their
// outputs through one shared output stream. Output ordering across items
// that originated from different clones is unspecified — parallelism is
// offered only where order does not matter, per spec.
//
// inner itself is never started; only its body function is reused across
// the n clones, each of which gets its own private input stream and shares
// the outer stage's output stream.
func Parallel[In, Out any](n int, inner *Stage[In, Out]) *Stage[In, Out] {
	if n <= 0 {
		panic(ErrZeroWorkers)
	}
	if inner == nil || inner.body == nil {
		panic(ErrNilBody)
	}

	outer := Transform[In, Out](nil)
	outer.output.SetAlwaysLock(true)

	clones := make([]*Stage[In, Out], n)
	for i := range clones {
		c := &Stage[In, Out]{body: inner.body}
		c.input.Store(NewStream[In]())
		c.ownsInput = true
		c.output = outer.output
		c.ownsOutput = false
		clones[i] = c
	}

	outer.body = func(o *Stage[In, Out]) {
		for _, c := range clones {
			c.startBackground()
		}

		var v In
		next := 0
		for o.Read(&v) {
			clones[next].input.Load().Write(v)
			next = (next + 1) % n
		}

		for _, c := range clones {
			c.input.Load().Done()
		}
		for _, c := range clones {
			c.join()
		}
	}

	return outer
}
