package stages

import (
	"strings"

	"github.com/hambosto/csp"
)

// Grab passes through strings containing needle, or strings not containing
// it when invert is true.
func Grab(needle string, invert bool) *csp.Stage[string, string] {
	return csp.Transform(func(s *csp.Stage[string, string]) {
		var line string
		for s.Read(&line) {
			if strings.Contains(line, needle) != invert {
				s.Put(line)
			}
		}
	})
}
