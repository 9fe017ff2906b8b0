package stages

import (
	"testing"

	"github.com/hambosto/csp"
)

func TestGrab(t *testing.T) {
	tests := []struct {
		name   string
		needle string
		invert bool
		in     []string
		want   []string
	}{
		{"matches", "cat", false, []string{"cat", "dog", "scat", "bird"}, []string{"cat", "scat"}},
		{"inverted", "cat", true, []string{"cat", "dog", "scat", "bird"}, []string{"dog", "bird"}},
		{"no match", "zzz", false, []string{"cat", "dog"}, nil},
		{"empty input", "cat", false, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := csp.Drain(csp.Pipe(Vec(tt.in), Grab(tt.needle, tt.invert)))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
