package stages

import (
	"bufio"
	"os/exec"
	"sync/atomic"

	"github.com/hambosto/csp"
	"golang.org/x/sync/errgroup"
)

// ExecR runs cmd in a shell and emits its stdout, one line per element.
// status is set to 1 if the command fails to start or exits non-zero.
func ExecR(cmd string, status *atomic.Int32) *csp.Stage[csp.None, string] {
	return csp.Source(func(s *csp.Stage[csp.None, string]) {
		c := exec.Command("/bin/sh", "-c", cmd)
		out, err := c.StdoutPipe()
		if err != nil {
			status.Store(1)
			return
		}
		if err := c.Start(); err != nil {
			status.Store(1)
			return
		}
		scanner := bufio.NewScanner(out)
		for scanner.Scan() {
			s.Put(scanner.Text())
		}
		if err := c.Wait(); err != nil {
			status.Store(1)
		}
	})
}

// ExecW runs cmd in a shell, feeding it each input line on stdin. It is a
// sink: it has no output stream. status is set to 1 on start or exit failure.
func ExecW(cmd string, status *atomic.Int32) *csp.Stage[string, csp.None] {
	return csp.Sink(func(s *csp.Stage[string, csp.None]) {
		c := exec.Command("/bin/sh", "-c", cmd)
		in, err := c.StdinPipe()
		if err != nil {
			status.Store(1)
			return
		}
		if err := c.Start(); err != nil {
			status.Store(1)
			return
		}
		w := bufio.NewWriter(in)
		var line string
		for s.Read(&line) {
			if _, err := w.WriteString(line); err != nil {
				break
			}
			if err := w.WriteByte('\n'); err != nil {
				break
			}
		}
		_ = w.Flush()
		_ = in.Close()
		if err := c.Wait(); err != nil {
			status.Store(1)
		}
	})
}

// ExecRW runs cmd in a shell, concurrently writing each input line to its
// stdin and emitting each line of its stdout, bridging the pipeline through
// the subprocess in both directions at once. The two halves run on an
// errgroup so a write-side failure does not block forever on a stalled
// read, and vice versa.
func ExecRW(cmd string, status *atomic.Int32) *csp.Stage[string, string] {
	return csp.Transform(func(s *csp.Stage[string, string]) {
		c := exec.Command("/bin/sh", "-c", cmd)
		in, err := c.StdinPipe()
		if err != nil {
			status.Store(1)
			return
		}
		out, err := c.StdoutPipe()
		if err != nil {
			status.Store(1)
			return
		}
		if err := c.Start(); err != nil {
			status.Store(1)
			return
		}

		var g errgroup.Group
		g.Go(func() error {
			// Closing stdin on every exit path lets the child, and with it
			// the read half, finish even after a write failure.
			defer in.Close()
			w := bufio.NewWriter(in)
			var line string
			for s.Read(&line) {
				if _, err := w.WriteString(line); err != nil {
					return err
				}
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			return in.Close()
		})
		g.Go(func() error {
			scanner := bufio.NewScanner(out)
			for scanner.Scan() {
				s.Put(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				// Keep draining stdout so the child, and the write half
				// feeding it, are not left blocked on a full pipe.
				buf := make([]byte, 4096)
				for {
					if _, rerr := out.Read(buf); rerr != nil {
						break
					}
				}
				return err
			}
			return nil
		})

		writeErr := g.Wait()
		waitErr := c.Wait()
		if writeErr != nil || waitErr != nil {
			status.Store(1)
		}
	})
}
