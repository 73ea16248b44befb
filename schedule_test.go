package orbitfx

import (
	"testing"
	"time"
)

func TestSchedulerFiresInTimeOrder(t *testing.T) {
	var s Scheduler
	var got []string

	s.After(300*time.Millisecond, func() { got = append(got, "c") })
	s.After(100*time.Millisecond, func() { got = append(got, "a") })
	s.After(200*time.Millisecond, func() { got = append(got, "b") })

	if s.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", s.Pending())
	}

	if ran := s.Advance(150 * time.Millisecond); ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
	if ran := s.Advance(time.Second); ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerTiesKeepInsertionOrder(t *testing.T) {
	var s Scheduler
	var got []int
	for i := 0; i < 5; i++ {
		s.After(50*time.Millisecond, func() { got = append(got, i) })
	}
	s.Advance(50 * time.Millisecond)
	for i := range got {
		if got[i] != i {
			t.Fatalf("order = %v, want 0..4", got)
		}
	}
}

func TestSchedulerExactBoundary(t *testing.T) {
	var s Scheduler
	fired := false
	s.After(100*time.Millisecond, func() { fired = true })

	s.Advance(99 * time.Millisecond)
	if fired {
		t.Fatal("fired before due")
	}
	s.Advance(time.Millisecond)
	if !fired {
		t.Fatal("should fire exactly at due time")
	}
	if s.Now() != 100*time.Millisecond {
		t.Errorf("Now = %v, want 100ms", s.Now())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	fired := false
	h := s.After(10*time.Millisecond, func() { fired = true })
	if !h.Valid() {
		t.Fatal("handle should be valid")
	}

	if !s.Cancel(h) {
		t.Fatal("Cancel should succeed for a pending task")
	}
	if s.Cancel(h) {
		t.Error("second Cancel should report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("canceled task fired")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	var s Scheduler
	for i := 0; i < 4; i++ {
		s.After(time.Duration(i)*time.Millisecond, func() { t.Error("canceled task fired") })
	}
	if n := s.CancelAll(); n != 4 {
		t.Errorf("CancelAll = %d, want 4", n)
	}
	s.Advance(time.Second)
}

func TestSchedulerNestedTaskInWindow(t *testing.T) {
	var s Scheduler
	var got []string
	s.After(10*time.Millisecond, func() {
		got = append(got, "outer")
		s.After(0, func() { got = append(got, "inner") })
	})
	s.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[1] != "inner" {
		t.Errorf("got = %v, want [outer inner]", got)
	}
}

func TestSchedulerZeroHandle(t *testing.T) {
	var h TaskHandle
	if h.Valid() {
		t.Error("zero handle should be invalid")
	}
}
