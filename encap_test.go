package csp

import (
	"strconv"
	"strings"
	"sync"
	"testing"
)

func containsStage(needle string, invert bool) *Stage[string, string] {
	return Transform(func(s *Stage[string, string]) {
		var v string
		for s.Read(&v) {
			if strings.Contains(v, needle) != invert {
				s.Put(v)
			}
		}
	})
}

func itoaStage() *Stage[int, string] {
	return Transform(func(s *Stage[int, string]) {
		var v int
		for s.Read(&v) {
			s.Put(strconv.Itoa(v))
		}
	})
}

func TestEncap_ConcurrentPutAndDrain(t *testing.T) {
	pipeline := Pipe(containsStage("a", false), containsStage("b", false))
	enc := Encap[string](pipeline)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		enc.Put("ab")
		enc.Put("ba")
		enc.Put("a")
		enc.Put("b")
		enc.CloseInput()
	}()

	var got []string
	var v string
	for enc.Read(&v) {
		got = append(got, v)
	}
	wg.Wait()
	enc.Close()

	want := map[string]int{"ab": 1, "ba": 1}
	seen := map[string]int{}
	for _, g := range got {
		seen[g]++
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 elements matching both 'a' and 'b'", got)
	}
	for k, c := range want {
		if seen[k] != c {
			t.Fatalf("got %v, want each of %v exactly once", got, want)
		}
	}
}

func TestEncap_ThreeStageChainRoutesThroughEveryStage(t *testing.T) {
	pipeline := Pipe(Pipe(containsStage("a", false), containsStage("b", false)), containsStage("c", false))
	enc := Encap[string](pipeline)

	go func() {
		enc.Put("abc")
		enc.Put("ab")
		enc.Put("bc")
		enc.Put("ac")
		enc.CloseInput()
	}()

	var got []string
	var v string
	for enc.Read(&v) {
		got = append(got, v)
	}
	enc.Close()

	if len(got) != 1 || got[0] != "abc" {
		t.Fatalf("got %v, want only the element matching 'a', 'b', and 'c'", got)
	}
}

func TestEncap_FeedTypeDiffersFromTailInputType(t *testing.T) {
	// itoaStage's input is int; containsStage's input (and the composed
	// pipeline's own In) is string. Encap must attach the feed to itoaStage,
	// not to the string-typed tail, so HeadIn is int here.
	pipeline := Pipe(itoaStage(), containsStage("1", false))
	enc := Encap[int](pipeline)

	go func() {
		enc.Put(1)
		enc.Put(2)
		enc.Put(12)
		enc.CloseInput()
	}()

	var got []string
	var v string
	for enc.Read(&v) {
		got = append(got, v)
	}
	enc.Close()

	want := map[string]bool{"1": true, "12": true}
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 elements containing '1'", got)
	}
	for _, g := range got {
		if !want[g] {
			t.Fatalf("got %v, want only elements containing '1'", got)
		}
	}
}

func TestEncap_CloseWithoutReadingJoinsCleanly(t *testing.T) {
	pipeline := containsStage("x", false)
	enc := Encap[string](pipeline)

	enc.Put("nope")
	enc.Put("xyz")
	enc.CloseInput()

	var v string
	for enc.Read(&v) {
	}
	enc.Close()
}
