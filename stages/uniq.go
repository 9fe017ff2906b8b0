package stages

import (
	"strings"

	"github.com/hambosto/csp"
)

// Uniq suppresses adjacent duplicate elements, comparing with ==. It does
// not sort; pair it with csp.Sort upstream to deduplicate a whole stream.
func Uniq[T comparable]() *csp.Stage[T, T] {
	return UniqFunc(func(a, b T) bool { return a == b })
}

// UniqFunc suppresses adjacent elements for which equal reports true,
// letting callers plug in a custom equality (e.g. case-insensitive string
// comparison). equal must report whether two elements are the same, not the
// reverse — emitting on equality instead of on difference was a bug in one
// revision of the original source and is explicitly not the semantics here.
func UniqFunc[T any](equal func(a, b T) bool) *csp.Stage[T, T] {
	return csp.Transform(func(s *csp.Stage[T, T]) {
		var prev T
		has := false

		var v T
		for s.Read(&v) {
			if !has || !equal(prev, v) {
				s.Put(v)
				prev = v
				has = true
			}
		}
	})
}

// UniqFold is UniqFunc specialized for case-insensitive string streams.
func UniqFold() *csp.Stage[string, string] {
	return UniqFunc(strings.EqualFold)
}
