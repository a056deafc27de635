package tactile

import (
	"testing"
	"time"
)

func newTestScheduler() (*ManualClock, *Scheduler) {
	clock := NewManualClock(time.Unix(0, 0))
	return clock, NewScheduler(clock)
}

func TestSchedulerFiresInDueOrder(t *testing.T) {
	clock, s := newTestScheduler()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	if n := s.Update(); n != 0 {
		t.Fatalf("Update before due fired %d", n)
	}
	clock.Advance(10 * time.Millisecond)
	if n := s.Update(); n != 2 {
		t.Errorf("Update fired %d, want 2", n)
	}
	clock.Advance(time.Second)
	s.Update()

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock, s := newTestScheduler()
	fired := false
	id := s.After(time.Millisecond, func() { fired = true })

	if !s.Pending(id) {
		t.Error("Pending = false before Cancel")
	}
	if !s.Cancel(id) {
		t.Error("Cancel = false, want true")
	}
	if s.Cancel(id) {
		t.Error("second Cancel = true, want false")
	}
	if s.Pending(id) || s.Len() != 0 {
		t.Errorf("Pending = %v Len = %d after Cancel", s.Pending(id), s.Len())
	}

	clock.Advance(time.Second)
	if n := s.Update(); n != 0 || fired {
		t.Errorf("cancelled task fired (n=%d)", n)
	}
	if s.Cancel(0) {
		t.Error("Cancel(0) = true")
	}
}

func TestSchedulerCancelFromCallback(t *testing.T) {
	clock, s := newTestScheduler()
	var second TimerID
	secondFired := false
	s.After(time.Millisecond, func() { s.Cancel(second) })
	second = s.After(time.Millisecond, func() { secondFired = true })

	clock.Advance(time.Millisecond)
	s.Update()
	if secondFired {
		t.Error("task cancelled by an earlier callback still fired")
	}
}

func TestSchedulerChainedZeroDelay(t *testing.T) {
	clock, s := newTestScheduler()
	var n int
	s.After(0, func() {
		n++
		s.After(0, func() { n++ })
	})
	clock.Advance(0)
	if fired := s.Update(); fired != 2 || n != 2 {
		t.Errorf("fired = %d n = %d, want 2", fired, n)
	}
}

func TestManualClockNeverRewinds(t *testing.T) {
	clock := NewManualClock(time.Unix(10, 0))
	clock.Advance(-time.Hour)
	if got := clock.Now(); !got.Equal(time.Unix(10, 0)) {
		t.Errorf("Now() = %v, want unchanged", got)
	}
}

func TestDebouncerTrailingCall(t *testing.T) {
	clock, s := newTestScheduler()
	d := NewDebouncer(s)
	var got []int
	for i := 1; i <= 3; i++ {
		d.Call("k", 100*time.Millisecond, func() { got = append(got, i) })
		clock.Advance(50 * time.Millisecond)
		s.Update()
	}
	if !d.Pending("k") {
		t.Fatal("Pending = false during burst")
	}
	clock.Advance(100 * time.Millisecond)
	s.Update()

	if len(got) != 1 || got[0] != 3 {
		t.Errorf("calls = %v, want [3]", got)
	}
	if d.Pending("k") || s.Len() != 0 {
		t.Error("debouncer left work pending")
	}
}

func TestDebouncerKeysIndependent(t *testing.T) {
	clock, s := newTestScheduler()
	d := NewDebouncer(s)
	var a, b int
	d.Call("a", 10*time.Millisecond, func() { a++ })
	d.Call("b", 10*time.Millisecond, func() { b++ })
	d.Cancel("a")

	clock.Advance(time.Second)
	s.Update()
	if a != 0 || b != 1 {
		t.Errorf("a = %d b = %d, want 0 1", a, b)
	}
}

func TestDebouncerCancelAll(t *testing.T) {
	clock, s := newTestScheduler()
	d := NewDebouncer(s)
	var n int
	d.Call("a", time.Millisecond, func() { n++ })
	d.Call("b", time.Millisecond, func() { n++ })
	d.CancelAll()

	clock.Advance(time.Second)
	s.Update()
	if n != 0 || s.Len() != 0 {
		t.Errorf("n = %d Len = %d after CancelAll", n, s.Len())
	}
}

func TestSchedulerNextDue(t *testing.T) {
	clock, s := newTestScheduler()
	if _, ok := s.NextDue(); ok {
		t.Fatal("NextDue ok on empty scheduler")
	}
	a := s.After(10*time.Millisecond, func() {})
	s.After(30*time.Millisecond, func() {})
	s.Cancel(a)

	due, ok := s.NextDue()
	if !ok || !due.Equal(clock.Now().Add(30*time.Millisecond)) {
		t.Errorf("NextDue = %v, %v; want +30ms", due, ok)
	}
}
