package csp

import (
	"runtime"
	"sync/atomic"
)

// None stands in for the unit/void type: a Stage[None, Out] has no input
// stream, a Stage[In, None] has no output stream.
type None struct{}

// lifecycle is satisfied by every *Stage[In, Out] instantiation via its
// join method. It lets a Stage's keep-alive list hold references to
// predecessor stages of different element types.
type lifecycle interface {
	join()
}

// inputAttachable is satisfied by every *Stage[In, Out] instantiation via
// its setInput method. Encap uses it to attach a feed stream to a pipeline's
// head stage without knowing the head's full Stage type, only its input
// element type.
type inputAttachable[In any] interface {
	setInput(in *Stream[In])
}

// Stage is a running unit of work with at most one input stream and at
// most one output stream, a body function supplied at construction, and
// flags controlling ownership of its streams.
type Stage[In, Out any] struct {
	input  atomic.Pointer[Stream[In]]
	output *Stream[Out]

	ownsInput  bool
	ownsOutput bool

	body func(s *Stage[In, Out])

	done    chan struct{}
	started bool
	running bool

	keepAlive []lifecycle

	// head points at the first stage of the chain this stage was composed
	// into, boxed as any since its element types differ from this stage's
	// own. nil means this stage is its own head (it was never passed
	// through Pipe as the right-hand side).
	head any
}

// headStage returns the first stage of the chain s belongs to: s itself if
// s was never composed via Pipe, or the original left-most stage otherwise.
func (s *Stage[In, Out]) headStage() any {
	if s.head != nil {
		return s.head
	}
	return s
}

// newStage builds a stage with a freshly allocated output stream if
// hasOutput is set. It is unexported: callers construct stages through the
// Source/Sink/Transform helpers below or through the built-in stages in the
// csp/stages package.
//
// hasInput stages deliberately start with a nil input stream rather than a
// private pre-allocated one: a stage meant to sit at the head of a pipeline
// built for Encap gets its real input attached only after Pipe has already
// started it running in the background (Pipe cannot know a later Encap call
// is coming). Leaving input nil until attached lets that stage's first Read
// spin in waitForInput for the real stream to show up, instead of silently
// reading from (and blocking forever on) a stream nobody will ever write to
// or close. The spin is bounded: if nothing is attached within it, Read
// panics with ErrStageHasNoInput.
func newStage[In, Out any](hasInput, hasOutput bool, body func(*Stage[In, Out])) *Stage[In, Out] {
	s := &Stage[In, Out]{body: body}
	s.ownsInput = hasInput
	if hasOutput {
		s.output = NewStream[Out]()
		s.ownsOutput = true
	}
	return s
}

// Source constructs a stage with no input stream: body only writes to Out.
func Source[Out any](body func(s *Stage[None, Out])) *Stage[None, Out] {
	return newStage[None, Out](false, true, body)
}

// Sink constructs a stage with no output stream: body only reads from In.
func Sink[In any](body func(s *Stage[In, None])) *Stage[In, None] {
	return newStage[In, None](true, false, body)
}

// Transform constructs a stage with both an input and an output stream.
func Transform[In, Out any](body func(s *Stage[In, Out])) *Stage[In, Out] {
	return newStage[In, Out](true, true, body)
}

// Output returns the stage's output stream, or nil if Out is None. Intended
// for combinators (Parallel, Schedule, Pipe) that need to rewire streams;
// ordinary stage bodies should use Put instead.
func (s *Stage[In, Out]) Output() *Stream[Out] { return s.output }

// Input returns the stage's input stream, or nil if In is None or it has
// not been attached yet.
func (s *Stage[In, Out]) Input() *Stream[In] { return s.input.Load() }

// setInput attaches in as the stage's input stream. Used by Pipe; the
// atomic store gives a background stage spinning in waitForInput a
// synchronizes-with edge the moment it observes the new pointer.
func (s *Stage[In, Out]) setInput(in *Stream[In]) { s.input.Store(in) }

// Put writes v to the stage's output stream. It panics if the stage has no
// output stream — a Stage[In, None] has no Out-typed values to put, and the
// library has no in-band error channel for a body's own programming
// mistakes (see spec's error handling design, §7).
func (s *Stage[In, Out]) Put(v Out) {
	if s.output == nil {
		panic(ErrStageHasNoOutput)
	}
	s.output.Write(v)
}

// Read blocks for a value from the stage's input stream. It tolerates a
// brief window where the input stream pointer has not yet been attached by
// a concurrently running Pipe call, spinning with Gosched until it appears.
func (s *Stage[In, Out]) Read(out *In) bool {
	in := s.waitForInput()
	if in == nil {
		panic(ErrStageHasNoInput)
	}
	return in.Read(out)
}

func (s *Stage[In, Out]) waitForInput() *Stream[In] {
	// A background stage started by Pipe may begin running before the
	// composer has finished assigning its input stream pointer; spin for a
	// short, bounded window rather than busy-looping forever on misuse.
	in := s.input.Load()
	for i := 0; in == nil && i < 10000; i++ {
		runtime.Gosched()
		in = s.input.Load()
	}
	return in
}

// doStart runs the body synchronously on the calling goroutine. On return,
// if the stage owns its output stream, it calls Done on it — this is
// mandatory and is not left to the body, so a successful return can never
// silently orphan a downstream reader.
func (s *Stage[In, Out]) doStart() {
	s.running = true
	s.body(s)
	s.running = false
	if s.ownsOutput && s.output != nil {
		s.output.Done()
	}
}

// startBackground spawns a goroutine that calls doStart, recording a task
// handle that join waits on.
func (s *Stage[In, Out]) startBackground() {
	if s.started {
		panic(ErrAlreadyStarted)
	}
	s.started = true
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		s.doStart()
	}()
}

// join blocks until the stage's background task (if any) has returned, then
// joins every stage in its keep-alive list. A stage that was run in the
// foreground (via Run/Drain) has no task of its own to wait for, so join
// only waits on its keep-alive list.
func (s *Stage[In, Out]) join() {
	if s.started && s.done != nil {
		<-s.done
		s.started = false
	}
	for _, k := range s.keepAlive {
		k.join()
	}
}
