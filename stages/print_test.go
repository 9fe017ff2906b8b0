package stages

import (
	"bufio"
	"io"
	"os"
	"testing"

	"github.com/hambosto/csp"
)

func captureStdout(t *testing.T, f func()) []string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()
	_ = w.Close()

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_, _ = io.Discard.Write(nil)
	return lines
}

func TestPrint_WritesEachLine(t *testing.T) {
	in := []string{"one", "two", "three"}

	lines := captureStdout(t, func() {
		csp.Run(csp.Pipe(Vec(in), Print()))
	})

	if len(lines) != len(in) {
		t.Fatalf("got %v, want %v", lines, in)
	}
	for i := range in {
		if lines[i] != in[i] {
			t.Fatalf("got %v, want %v", lines, in)
		}
	}
}
