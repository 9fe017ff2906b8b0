package csp

import "container/heap"

// sortHeap adapts a slice and a comparator to container/heap.Interface. When
// reverse is false, Less compares arguments in the order container/heap
// expects, so the root holds the least element and Sort emits ascending.
// When reverse is true, Less swaps the argument order rather than negating
// the comparator's result — negating would invert a comparator that relies
// on strict-weak-ordering ties (e.g. stable multi-key comparators), while
// swapping the arguments it is called with always yields the correct
// opposite order. Accidentally negating here instead of swapping is the
// classic bug this type exists to prevent.
type sortHeap[T any] struct {
	items   []T
	less    func(a, b T) bool
	reverse bool
}

func (h *sortHeap[T]) Len() int { return len(h.items) }

func (h *sortHeap[T]) Less(i, j int) bool {
	if h.reverse {
		return h.less(h.items[j], h.items[i])
	}
	return h.less(h.items[i], h.items[j])
}

func (h *sortHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *sortHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

func (h *sortHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// Sort returns a stage that emits every input value in the order given by
// less (ascending), or its reverse if reverse is true. Sort pushes every
// value onto a heap as it arrives and, once its input ends, drains the heap
// one element at a time via Put, so a downstream stage can start consuming
// already-sorted elements from the chunked stream while this stage is still
// popping the rest — the pipeline's throughput overlaps this stage's drain
// phase with downstream work instead of serializing fully behind it.
func Sort[T any](less func(a, b T) bool, reverse bool) *Stage[T, T] {
	return Transform(func(s *Stage[T, T]) {
		h := &sortHeap[T]{less: less, reverse: reverse}
		heap.Init(h)

		var v T
		for s.Read(&v) {
			heap.Push(h, v)
		}

		for h.Len() > 0 {
			s.Put(heap.Pop(h).(T))
		}
	})
}
