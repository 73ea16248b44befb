package orbitfx

import "time"

// TaskHandle identifies a task queued on a Scheduler. The zero value refers
// to no task.
type TaskHandle struct {
	id uint64
}

// Valid reports whether h refers to a task that was queued.
func (h TaskHandle) Valid() bool {
	return h.id != 0
}

type scheduledTask struct {
	id uint64
	at time.Duration
	fn func()
}

// Scheduler runs delayed callbacks against a frame-driven clock. Time only
// moves when Advance is called, so tests step it exactly and a paused game
// pauses every pending task.
//
// Tasks fire in order of due time; tasks due at the same time fire in the
// order they were queued.
type Scheduler struct {
	now    time.Duration
	tasks  []scheduledTask // sorted by (at, id)
	nextID uint64
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// After queues fn to run once the clock has advanced by delay.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskHandle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := scheduledTask{id: s.nextID, at: s.now + delay, fn: fn}

	// Insertion keeps the queue sorted; ties go after existing tasks.
	i := len(s.tasks)
	s.tasks = append(s.tasks, t)
	for i > 0 && s.tasks[i-1].at > t.at {
		s.tasks[i] = s.tasks[i-1]
		i--
	}
	s.tasks[i] = t
	return TaskHandle{id: t.id}
}

// Cancel removes the task behind h. It reports false if the task already ran
// or was canceled.
func (s *Scheduler) Cancel(h TaskHandle) bool {
	for i := range s.tasks {
		if s.tasks[i].id == h.id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task and returns how many were dropped.
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = s.tasks[:0]
	return n
}

// Advance moves the clock forward by dt and runs every task that has come
// due, returning how many ran. Tasks queued by a running task with a due time
// inside the window also run in this call.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].at <= s.now {
		t := s.tasks[0]
		s.tasks = append(s.tasks[:0], s.tasks[1:]...)
		t.fn()
		ran++
	}
	return ran
}
