package csp

// Encapsulator exposes a fully built pipeline behind a plain put/close/read
// handle, so callers outside pipeline-composition code can feed it values
// and drain its results without holding any of the underlying stages
// directly. HeadIn is the input element type of the pipeline's first stage,
// which may differ from pipeline's own In (the type flowing into its last
// stage) whenever pipeline was built by composing two or more stages.
type Encapsulator[HeadIn, Out any] struct {
	feed   *Stream[HeadIn]
	output *Stream[Out]
	tail   lifecycle
}

// Encap hangs a fresh feed stream off the pipeline's head stage — the
// left-most stage of the chain, found through the head reference that Pipe
// records on each right-hand stage — and starts the whole pipeline running in the
// background. The feed stream has AlwaysLock set, so multiple goroutines
// may call Put concurrently — this resolves the spec's open question about
// concurrent encapsulated producers in the affirmative.
//
// HeadIn must be given explicitly: it cannot be inferred from pipeline,
// whose own type parameters describe its last stage, not its first.
func Encap[HeadIn, In, Out any](pipeline *Stage[In, Out]) *Encapsulator[HeadIn, Out] {
	head, ok := pipeline.headStage().(inputAttachable[HeadIn])
	if !ok {
		panic(ErrHeadTypeMismatch)
	}

	feed := NewStream[HeadIn]()
	feed.SetAlwaysLock(true)
	head.setInput(feed)
	pipeline.startBackground()

	return &Encapsulator[HeadIn, Out]{feed: feed, output: pipeline.output, tail: pipeline}
}

// Put forwards v into the pipeline head's feed stream. Safe to call from
// multiple goroutines concurrently.
func (e *Encapsulator[HeadIn, Out]) Put(v HeadIn) {
	e.feed.Write(v)
}

// CloseInput declares end-of-input on the feed stream, letting the pipeline
// drain and eventually signal Done on its own output.
func (e *Encapsulator[HeadIn, Out]) CloseInput() {
	e.feed.Done()
}

// Read blocks for the pipeline's next output value, returning false once
// the pipeline has fully drained after CloseInput.
func (e *Encapsulator[HeadIn, Out]) Read(out *Out) bool {
	return e.output.Read(out)
}

// Close waits for the encapsulated pipeline's background task (and every
// stage behind it) to finish. Callers that drain Read to completion do not
// need to call this separately, since Read returning false already implies
// the pipeline has finished producing; Close exists for callers that stop
// reading early after CloseInput and still want a clean join.
func (e *Encapsulator[HeadIn, Out]) Close() {
	e.tail.join()
}
