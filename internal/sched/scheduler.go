// Package sched is a single-threaded, virtual-time task scheduler.
//
// It stands in for a UI runtime's frame callback, interval timer and
// one-shot timer primitives. Nothing runs on its own: the owner calls
// Advance (once per display frame in the terminal program, or with
// arbitrary steps in tests) and every task that has come due fires on
// the caller's goroutine, in deadline order. A Scheduler is not safe for
// concurrent use.
package sched

import (
	"sort"
	"time"
)

// Handle identifies a scheduled task. The zero Handle refers to nothing.
type Handle struct {
	id uint64
}

// Valid reports whether h was returned by a successful schedule call.
func (h Handle) Valid() bool {
	return h.id != 0
}

type taskKind int

const (
	kindFrame taskKind = iota
	kindOnce
	kindEvery
)

type task struct {
	id     uint64
	kind   taskKind
	due    time.Time
	period time.Duration
	scope  uint64
	fn     func(now time.Time)
}

// Scheduler holds pending tasks and the current virtual time.
type Scheduler struct {
	now       time.Time
	lastID    uint64
	lastScope uint64
	tasks     map[uint64]*task
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{
		now:   start,
		tasks: make(map[uint64]*task),
	}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Pending returns the number of tasks that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// RequestFrame registers fn to run once on the next call to Advance.
// Frames requested while Advance is running fire on the following call.
func (s *Scheduler) RequestFrame(fn func(now time.Time)) Handle {
	return s.add(&task{kind: kindFrame, fn: fn})
}

// After registers fn to run once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func(now time.Time)) Handle {
	if d < 0 {
		d = 0
	}
	return s.add(&task{kind: kindOnce, due: s.now.Add(d), fn: fn})
}

// Every registers fn to run every d until cancelled. A non-positive
// period is rejected and the zero Handle returned.
func (s *Scheduler) Every(d time.Duration, fn func(now time.Time)) Handle {
	if d <= 0 {
		return Handle{}
	}
	return s.add(&task{kind: kindEvery, due: s.now.Add(d), period: d, fn: fn})
}

// Cancel removes the task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.tasks[h.id]; !ok {
		return false
	}
	delete(s.tasks, h.id)
	return true
}

func (s *Scheduler) add(t *task) Handle {
	s.lastID++
	t.id = s.lastID
	s.tasks[t.id] = t
	return Handle{id: t.id}
}

// Advance moves the clock to `to` and fires everything that came due:
// timers first, in deadline order, then the frames that were requested
// before this call. An interval that fell behind fires once per missed
// period. Advance returns the number of callbacks run. Moving the clock
// backwards is ignored apart from running the pending frames.
func (s *Scheduler) Advance(to time.Time) int {
	frameCut := s.lastID
	fired := 0

	for {
		t := s.nextDue(to)
		if t == nil {
			break
		}
		s.now = t.due
		if t.kind == kindEvery {
			t.due = t.due.Add(t.period)
		} else {
			delete(s.tasks, t.id)
		}
		t.fn(s.now)
		fired++
	}

	if to.After(s.now) {
		s.now = to
	}

	var frames []*task
	for _, t := range s.tasks {
		if t.kind == kindFrame && t.id <= frameCut {
			frames = append(frames, t)
		}
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].id < frames[j].id })
	for _, t := range frames {
		// an earlier frame callback may have cancelled this one
		if _, ok := s.tasks[t.id]; !ok {
			continue
		}
		delete(s.tasks, t.id)
		t.fn(s.now)
		fired++
	}

	return fired
}

func (s *Scheduler) nextDue(to time.Time) *task {
	var next *task
	for _, t := range s.tasks {
		if t.kind == kindFrame || t.due.After(to) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.id < next.id) {
			next = t
		}
	}
	return next
}
