package stages

import "github.com/hambosto/csp"

// ChanIter emits f(x) for each input value, a one-to-one transform.
func ChanIter[T, U any](f func(T) U) *csp.Stage[T, U] {
	return csp.Transform(func(s *csp.Stage[T, U]) {
		var v T
		for s.Read(&v) {
			s.Put(f(v))
		}
	})
}

// ChanReadWrite calls f(stage, x) for each input value, letting f emit zero
// or more outputs per input via the stage it is given.
func ChanReadWrite[T, U any](f func(s *csp.Stage[T, U], x T)) *csp.Stage[T, U] {
	return csp.Transform(func(s *csp.Stage[T, U]) {
		var v T
		for s.Read(&v) {
			f(s, v)
		}
	})
}

// ChanRead calls f(x) for each input value and emits nothing; it is a sink.
func ChanRead[T any](f func(T)) *csp.Stage[T, csp.None] {
	return csp.Sink(func(s *csp.Stage[T, csp.None]) {
		var v T
		for s.Read(&v) {
			f(v)
		}
	})
}
