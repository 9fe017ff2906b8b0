package csp

import (
	"runtime"
	"sync"
	"sync/atomic"

	safecast "github.com/ccoveille/go-safecast/v2"
)

// Stream is a bounded-capacity, chunked FIFO carrying values of a single
// element type between one producer goroutine and one consumer goroutine,
// or between many producer goroutines if AlwaysLock is set.
//
// Internally a Stream is a singly-linked list of fixed-size chunk nodes.
// While chunk-count is above 2 (the "fast band"), a single producer can
// write into the tail node and a single consumer can read from the head
// node without taking the lock, because the two ends never touch the same
// node. Once chunk-count drops to 2 or fewer (the "tight band") the two
// ends may be the same or adjacent nodes, so both sides take the lock.
type Stream[T any] struct {
	mu   sync.Mutex
	cond sync.Cond

	head *chunkNode[T]
	tail *chunkNode[T]

	chunkCount atomic.Int64

	readCursor  atomic.Int64
	writeCursor atomic.Int64

	finished            atomic.Bool
	finishedWriteCursor atomic.Int64

	alwaysLock atomic.Bool
	unbuffered atomic.Bool

	waiters atomic.Int64
}

// NewStream returns an empty stream. The first chunk node is allocated
// lazily on the first Write.
func NewStream[T any]() *Stream[T] {
	s := &Stream[T]{}
	s.cond.L = &s.mu
	return s
}

// SetAlwaysLock forces every Write onto the locked path. Combinators with
// more than one producer writing into the same stream (Parallel, Schedule)
// must set this before any producer starts.
func (s *Stream[T]) SetAlwaysLock(v bool) { s.alwaysLock.Store(v) }

// SetUnbuffered makes every completed Write wake blocked readers, rather
// than only on chunk rollover. Useful when producer and consumer exchange
// single elements and latency matters more than lock amortization.
func (s *Stream[T]) SetUnbuffered(v bool) { s.unbuffered.Store(v) }

// Write appends v to the stream. It never fails and never blocks on
// capacity; it may block briefly on the internal lock while the stream is
// in the tight band, on chunk rollover, or when AlwaysLock is set.
func (s *Stream[T]) Write(v T) {
	if s.alwaysLock.Load() || s.chunkCount.Load() <= 2 {
		s.writeLocked(v)
		return
	}

	tail := s.tail
	idx := s.writeCursor.Load()
	tail.data[idx] = v

	if idx+1 == ChunkSize {
		s.mu.Lock()
		node := newChunkNode[T]()
		tail.next = node
		s.tail = node
		s.chunkCount.Add(1)
		s.writeCursor.Store(0)
		s.mu.Unlock()
		s.cond.Broadcast()
		return
	}

	s.writeCursor.Store(idx + 1)
	if s.unbuffered.Load() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

// writeLocked handles the first write, chunk rollover under contention, and
// every write while AlwaysLock is set or the stream is in the tight band.
func (s *Stream[T]) writeLocked(v T) {
	s.mu.Lock()

	if s.tail == nil {
		node := newChunkNode[T]()
		s.head, s.tail = node, node
		s.chunkCount.Store(1)
		s.writeCursor.Store(0)
	}

	idx := s.writeCursor.Load()
	s.tail.data[idx] = v

	if idx+1 == ChunkSize {
		node := newChunkNode[T]()
		s.tail.next = node
		s.tail = node
		s.chunkCount.Add(1)
		s.writeCursor.Store(0)
	} else {
		s.writeCursor.Store(idx + 1)
	}

	s.mu.Unlock()
	s.cond.Broadcast()
}

// Read blocks until either an element is available, in which case it is
// moved into out and true is returned, or the stream is finished and fully
// drained, in which case false is returned. Spurious wakeups are retried
// internally; callers never see them.
func (s *Stream[T]) Read(out *T) bool {
	for {
		if s.chunkCount.Load() > 2 {
			if ok := s.readFast(out); ok {
				return true
			}
			// chunk-count dropped into the tight band between the load
			// above and the attempt; fall through and retry locked.
		}

		if done, ok := s.readTight(out); ok {
			return done
		}
		// readTight parks on its own; it returned (_, false) only because
		// chunk-count rose above 2, so retry on the fast path.
	}
}

// readFast consumes one element from the head chunk without taking the
// lock. It only runs while chunk-count > 2, which guarantees head != tail
// and that the head chunk is fully populated, so every index below
// ChunkSize holds a valid, already-published element.
func (s *Stream[T]) readFast(out *T) bool {
	head := s.head
	idx := s.readCursor.Load()
	if idx >= ChunkSize {
		return false
	}

	*out = head.data[idx]
	var zero T
	head.data[idx] = zero

	if idx+1 == ChunkSize {
		s.mu.Lock()
		s.head = head.next
		s.chunkCount.Add(-1)
		s.readCursor.Store(0)
		s.mu.Unlock()
	} else {
		s.readCursor.Store(idx + 1)
	}
	return true
}

// readTight implements the locked read path used whenever chunk-count <= 2.
// The boolean result reports whether the caller should retry (false) or
// return the first value immediately (true, with that value being the
// stream-finished signal carried in out's caller-visible return).
func (s *Stream[T]) readTight(out *T) (result, handled bool) {
	s.mu.Lock()
	for {
		if s.chunkCount.Load() > 2 {
			s.mu.Unlock()
			return false, false
		}

		readIdx := s.readCursor.Load()
		headIsTail := s.head == s.tail

		var limit int64
		if headIsTail {
			limit = s.writeCursor.Load()
		} else {
			limit = ChunkSize
		}

		if readIdx < limit {
			*out = s.head.data[readIdx]
			var zero T
			s.head.data[readIdx] = zero

			if readIdx+1 == ChunkSize && !headIsTail {
				s.head = s.head.next
				s.chunkCount.Add(-1)
				s.readCursor.Store(0)
			} else {
				s.readCursor.Store(readIdx + 1)
			}
			s.mu.Unlock()
			return true, true
		}

		if s.finished.Load() {
			s.mu.Unlock()
			return false, true
		}

		s.waiters.Add(1)
		s.cond.Wait()
		s.waiters.Add(-1)
	}
}

// Done declares end-of-stream. It must be called exactly once by the
// producer side. It records the current write cursor so a reader looking
// at the tail chunk knows exactly where the valid region ends, then wakes
// every blocked reader, re-notifying until none remain recorded as waiting
// (this covers the race where a reader had decided to park but had not yet
// called cond.Wait).
func (s *Stream[T]) Done() {
	s.mu.Lock()
	s.finishedWriteCursor.Store(s.writeCursor.Load())
	s.finished.Store(true)
	s.mu.Unlock()

	for s.waiters.Load() > 0 {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
		runtime.Gosched()
	}
}

// itemsRemaining reports whether a reader could still find data, either
// buffered or yet to be written. Nothing in the package calls it (Len
// computes its count directly); it does not itself take the lock, so
// callers must hold s.mu or otherwise not race a writer.
func (s *Stream[T]) itemsRemaining() bool {
	if !s.finished.Load() {
		return true
	}
	if s.chunkCount.Load() > 1 {
		return true
	}
	return s.readCursor.Load() < s.finishedWriteCursor.Load()
}

// Len reports a snapshot count of buffered-but-unread elements. It is not
// used by the read/write fast paths; it exists for diagnostics and tests.
func (s *Stream[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cc, err := safecast.ToInt(s.chunkCount.Load())
	if err != nil || cc == 0 {
		return 0
	}

	read, _ := safecast.ToInt(s.readCursor.Load())
	write, _ := safecast.ToInt(s.writeCursor.Load())

	if cc == 1 {
		n := write - read
		if n < 0 {
			return 0
		}
		return n
	}

	// (cc-2) full interior chunks, plus the partial head and tail.
	return (ChunkSize - read) + (cc-2)*ChunkSize + write
}
