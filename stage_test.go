package csp

import "testing"

func TestStage_SourceTransformSink(t *testing.T) {
	src := Source(func(s *Stage[None, int]) {
		for i := 1; i <= 5; i++ {
			s.Put(i)
		}
	})
	double := Transform(func(s *Stage[int, int]) {
		var v int
		for s.Read(&v) {
			s.Put(v * 2)
		}
	})

	got := Drain(Pipe(src, double))

	want := []int{2, 4, 6, 8, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStage_SinkDrivesPipelineOnCaller(t *testing.T) {
	src := Source(func(s *Stage[None, int]) {
		for i := 0; i < 3; i++ {
			s.Put(i)
		}
	})

	var collected []int
	sink := Sink(func(s *Stage[int, None]) {
		var v int
		for s.Read(&v) {
			collected = append(collected, v)
		}
	})

	Run(Pipe(src, sink))

	if len(collected) != 3 {
		t.Fatalf("got %v, want 3 elements", collected)
	}
}

func TestStage_PutOnSinkPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic from Put on a Stage with no output")
		}
	}()

	s := Sink(func(s *Stage[int, None]) {})
	s.Put(None{})
}

func TestStage_ReadOnSourcePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic from Read on a Stage with no input")
		}
	}()

	s := Source(func(s *Stage[None, int]) {})
	var v None
	s.Read(&v)
}

func TestStage_EmptyPipelineTerminatesCleanly(t *testing.T) {
	src := Source(func(s *Stage[None, int]) {})
	got := Drain(src)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestStage_NoLiveTaskAfterDrain(t *testing.T) {
	src := Source(func(s *Stage[None, int]) {
		for i := 0; i < 10; i++ {
			s.Put(i)
		}
	})
	lower := Transform(func(s *Stage[int, int]) {
		var v int
		for s.Read(&v) {
			s.Put(v)
		}
	})
	upper := Transform(func(s *Stage[int, int]) {
		var v int
		for s.Read(&v) {
			s.Put(v)
		}
	})

	tail := Pipe(Pipe(src, lower), upper)
	Drain(tail)

	if src.started {
		t.Fatalf("src still marked started after drain")
	}
	if lower.started {
		t.Fatalf("lower still marked started after drain")
	}
}
