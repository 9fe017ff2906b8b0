package csp

import (
	"sort"
	"testing"
)

func vecStage(xs []int) *Stage[None, int] {
	return Source(func(s *Stage[None, int]) {
		for _, x := range xs {
			s.Put(x)
		}
	})
}

func idStage() *Stage[int, int] {
	return Transform(func(s *Stage[int, int]) {
		var v int
		for s.Read(&v) {
			s.Put(v)
		}
	})
}

func TestDrain_RoundTripIdentity(t *testing.T) {
	xs := []int{5, 3, 9, 1, 4}
	got := Drain(Pipe(vecStage(xs), idStage()))

	if len(got) != len(xs) {
		t.Fatalf("got %v, want %v", got, xs)
	}
	for i := range xs {
		if got[i] != xs[i] {
			t.Fatalf("got %v, want %v", got, xs)
		}
	}
}

func TestDrain_SortIsIdempotent(t *testing.T) {
	xs := []int{5, 3, 9, 1, 4, 1, 5}
	asc := func(a, b int) bool { return a < b }

	first := Sort(asc, false)
	second := Sort(asc, false)
	got := Drain(Pipe(Pipe(vecStage(xs), first), second))

	want := append([]int(nil), xs...)
	sort.Ints(want)

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDrain_LongerThanThreeChunksActivatesFastBand(t *testing.T) {
	n := ChunkSize*3 + 11
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}

	got := Drain(Pipe(vecStage(xs), idStage()))
	if len(got) != n {
		t.Fatalf("got %d elements, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("element %d = %d, want %d", i, v, i)
		}
	}
}
