package csp

const (
	// ChunkSize is the capacity unit of a Stream: the number of elements
	// held by one chunk node. Kept a small power of two so the tight-band /
	// fast-band crossover (chunk-count <= 2) happens often enough to exercise
	// both read/write paths under test, matching spec.md's CHUNK constant.
	ChunkSize = 32
)

const (
	// DefaultParallelism is used by Parallel callers that don't want to
	// hardcode a worker count; it is not applied automatically.
	DefaultParallelism = 4
)
