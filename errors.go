package csp

import "errors"

// Stream errors
var (
	// ErrNilStream indicates an operation was attempted against a nil stream.
	ErrNilStream = errors.New("csp: stream is nil")
)

// Stage lifecycle errors
var (
	// ErrStageHasNoInput indicates Read was called on a stage whose In type
	// is None, or whose input stream has not been attached yet.
	ErrStageHasNoInput = errors.New("csp: stage has no input stream")

	// ErrStageHasNoOutput indicates Put was called on a stage whose Out type
	// is None.
	ErrStageHasNoOutput = errors.New("csp: stage has no output stream")

	// ErrAlreadyStarted indicates startBackground was called on a stage that
	// is already running in the background.
	ErrAlreadyStarted = errors.New("csp: stage already started")
)

// Composition and combinator errors
var (
	// ErrNilBody indicates a stage was configured without a body function.
	ErrNilBody = errors.New("csp: stage body is nil")

	// ErrZeroWorkers indicates Parallel was called with N <= 0.
	ErrZeroWorkers = errors.New("csp: parallel requires at least one worker")

	// ErrNilFactory indicates Schedule was called with a nil stage factory.
	ErrNilFactory = errors.New("csp: schedule requires a non-nil factory")

	// ErrHeadTypeMismatch indicates Encap's HeadIn type argument does not
	// match the input element type of the pipeline's actual head stage.
	ErrHeadTypeMismatch = errors.New("csp: encap head type does not match pipeline's head input type")
)
