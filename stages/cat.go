package stages

import (
	"bufio"
	"os"
	"sync/atomic"

	"github.com/hambosto/csp"
	"github.com/schollz/progressbar/v3"
)

// Cat reads the file at path line by line and emits each line. On failure to
// open or read the file, it stores a nonzero code in status and returns; the
// stage's output stream is still closed normally by the csp lifecycle, so
// downstream stages drain cleanly rather than deadlocking.
func Cat(path string, status *atomic.Int32) *csp.Stage[csp.None, string] {
	return CatWithProgress(path, status, false)
}

// CatWithProgress behaves like Cat, and additionally reports bytes-read
// progress to stderr via a progress bar when showProgress is true and the
// file's size can be determined up front.
func CatWithProgress(path string, status *atomic.Int32, showProgress bool) *csp.Stage[csp.None, string] {
	return csp.Source(func(s *csp.Stage[csp.None, string]) {
		f, err := os.Open(path)
		if err != nil {
			status.Store(1)
			return
		}
		defer f.Close()

		var bar *progressbar.ProgressBar
		if showProgress {
			if info, statErr := f.Stat(); statErr == nil {
				bar = progressbar.DefaultBytes(info.Size(), "reading "+path)
			}
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if bar != nil {
				_ = bar.Add(len(line) + 1)
			}
			s.Put(line)
		}
		if err := scanner.Err(); err != nil {
			status.Store(1)
		}
	})
}
