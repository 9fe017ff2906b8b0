package csp

// Pipe binds right's input stream to left's output stream, starts left
// running in the background, and returns right unstarted. Chain calls
// left-associatively to build a pipeline: csp.Pipe(csp.Pipe(s1, s2), s3)
// realizes the shell-style s1 | s2 | s3.
//
// right inherits left's keep-alive list plus left itself, so a caller that
// only holds the rightmost handle still keeps every predecessor alive: when
// the final stage is joined (via Drain or Run), every stage behind it joins
// too, in the order they were composed.
func Pipe[A, B, C any](left *Stage[A, B], right *Stage[B, C]) *Stage[B, C] {
	right.setInput(left.output)
	right.head = left.headStage()

	right.keepAlive = make([]lifecycle, 0, len(left.keepAlive)+1)
	right.keepAlive = append(right.keepAlive, left.keepAlive...)
	right.keepAlive = append(right.keepAlive, left)
	left.keepAlive = nil

	left.startBackground()
	return right
}

// Drain runs last's body on the calling goroutine, then reads its output
// stream to completion into a collection. It blocks until the whole
// pipeline — last and every stage in its keep-alive list — has finished,
// and every stage's background task has been joined before Drain returns.
func Drain[A, B any](last *Stage[A, B]) []B {
	if last.output == nil {
		panic(ErrStageHasNoOutput)
	}
	last.doStart()

	var results []B
	var v B
	for last.output.Read(&v) {
		results = append(results, v)
	}

	last.join()
	return results
}

// Run drives a sink stage (Out == None) to completion on the calling
// goroutine. It blocks until the whole pipeline has finished and every
// stage's background task has been joined.
func Run[A any](last *Stage[A, None]) {
	last.doStart()
	last.join()
}
