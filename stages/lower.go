package stages

import (
	"strings"

	"github.com/hambosto/csp"
)

// ToLower case-folds every input string to lower case.
func ToLower() *csp.Stage[string, string] {
	return csp.Transform(func(s *csp.Stage[string, string]) {
		var line string
		for s.Read(&line) {
			s.Put(strings.ToLower(line))
		}
	})
}
