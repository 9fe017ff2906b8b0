// Package csp implements a small concurrency substrate for composing a
// computation as a linear pipeline of stages connected by typed, buffered,
// one-way message streams.
//
// A [Stage] reads from at most one [Stream] and writes to at most one other,
// running on its own goroutine. [Pipe] binds one stage's output stream to
// the next stage's input and keeps every intermediate stage alive for as
// long as the rightmost handle in the chain survives. [Drain] and [Run]
// terminate a pipeline on the calling goroutine. [Parallel] and [Schedule]
// add fan-out forms on top of the same stream discipline.
package csp
