package stages

import (
	"github.com/hambosto/csp"
	"github.com/schollz/progressbar/v3"
)

// Vec emits each element of xs in order, then terminates.
func Vec[T any](xs []T) *csp.Stage[csp.None, T] {
	return VecWithProgress(xs, false)
}

// VecWithProgress behaves like Vec, additionally reporting a count-based
// progress bar to stderr as elements are emitted — xs's length is known
// up front, the same condition under which the teacher's chunked writer
// reports progress against a known total size.
func VecWithProgress[T any](xs []T, showProgress bool) *csp.Stage[csp.None, T] {
	return csp.Source(func(s *csp.Stage[csp.None, T]) {
		var bar *progressbar.ProgressBar
		if showProgress {
			bar = progressbar.Default(int64(len(xs)), "emitting")
		}
		for _, x := range xs {
			s.Put(x)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	})
}
