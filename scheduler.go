package tactile

import (
	"container/heap"
	"time"
)

// Clock supplies the current time to a Scheduler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. The zero value starts
// at the zero time.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a ManualClock positioned at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d. Negative durations are ignored so the
// clock never runs backwards.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.t = c.t.Add(d)
	}
}

// TimerID identifies a scheduled task. The zero value never refers to a task.
type TimerID uint64

type task struct {
	id    TimerID
	due   time.Time
	fn    func()
	index int
}

// taskQueue orders tasks by due time, then by scheduling order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].id < q[j].id
	}
	return q[i].due.Before(q[j].due)
}
func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler runs delayed callbacks on the caller's goroutine. Nothing fires
// until Update is called, which makes it suitable for a frame loop: call
// Update once per frame after feeding input.
//
// Cancel is O(1): the task is dropped from the lookup table and skipped when
// it reaches the front of the queue.
type Scheduler struct {
	clock  Clock
	nextID TimerID
	live   map[TimerID]*task
	queue  taskQueue
}

// NewScheduler creates a scheduler reading time from clock. A nil clock uses
// SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock: clock,
		live:  make(map[TimerID]*task),
	}
}

// Now returns the scheduler clock's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After schedules fn to run once d has elapsed and returns its token.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	s.nextID++
	t := &task{id: s.nextID, due: s.clock.Now().Add(d), fn: fn}
	s.live[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel prevents the task from firing. It reports whether the task was still
// pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	t.fn = nil
	return true
}

// Pending reports whether the task has neither fired nor been cancelled.
func (s *Scheduler) Pending(id TimerID) bool {
	_, ok := s.live[id]
	return ok
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.live)
}

// NextDue returns the due time of the earliest pending task.
func (s *Scheduler) NextDue() (time.Time, bool) {
	for len(s.queue) > 0 && s.queue[0].fn == nil {
		heap.Pop(&s.queue)
	}
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// Update runs every task whose due time has passed, in due order, and returns
// how many ran. Tasks scheduled by a running callback are eligible in the same
// call when already due.
func (s *Scheduler) Update() int {
	now := s.clock.Now()
	fired := 0
	for len(s.queue) > 0 {
		t := s.queue[0]
		if t.fn != nil && t.due.After(now) {
			break
		}
		heap.Pop(&s.queue)
		if t.fn == nil {
			continue
		}
		fn := t.fn
		t.fn = nil
		delete(s.live, t.id)
		fn()
		fired++
	}
	return fired
}

// Debouncer coalesces repeated calls per key into a single trailing call.
type Debouncer struct {
	sched *Scheduler
	timer map[string]TimerID
}

// NewDebouncer creates a debouncer that schedules on sched.
func NewDebouncer(sched *Scheduler) *Debouncer {
	return &Debouncer{sched: sched, timer: make(map[string]TimerID)}
}

// Call (re)arms key so that fn runs after delay unless Call is invoked again
// for the same key first. Only the most recent fn runs.
func (d *Debouncer) Call(key string, delay time.Duration, fn func()) {
	if id, ok := d.timer[key]; ok {
		d.sched.Cancel(id)
	}
	var id TimerID
	id = d.sched.After(delay, func() {
		if d.timer[key] == id {
			delete(d.timer, key)
		}
		fn()
	})
	d.timer[key] = id
}

// Cancel drops the pending call for key, if any.
func (d *Debouncer) Cancel(key string) {
	if id, ok := d.timer[key]; ok {
		d.sched.Cancel(id)
		delete(d.timer, key)
	}
}

// CancelAll drops every pending call.
func (d *Debouncer) CancelAll() {
	for key, id := range d.timer {
		d.sched.Cancel(id)
		delete(d.timer, key)
	}
}

// Pending reports whether key has a call waiting.
func (d *Debouncer) Pending(key string) bool {
	id, ok := d.timer[key]
	return ok && d.sched.Pending(id)
}
