package sched

import "time"

// Scope groups the tasks of one activation so they can be stopped
// together. Once stopped, a scope schedules nothing and any callback it
// wrapped returns without running, even if it was already due.
type Scope struct {
	s       *Scheduler
	gen     uint64
	stopped bool
	handles map[uint64]struct{}
}

// Scope opens a new scope with the next generation number.
func (s *Scheduler) Scope() *Scope {
	s.lastScope++
	return &Scope{
		s:       s,
		gen:     s.lastScope,
		handles: make(map[uint64]struct{}),
	}
}

// Generation returns the scope's generation number. Later scopes from
// the same scheduler have larger generations.
func (sc *Scope) Generation() uint64 {
	return sc.gen
}

// Active reports whether Stop has not been called yet.
func (sc *Scope) Active() bool {
	return !sc.stopped
}

// Now returns the scheduler time.
func (sc *Scope) Now() time.Time {
	return sc.s.Now()
}

// RequestFrame is Scheduler.RequestFrame bound to the scope.
func (sc *Scope) RequestFrame(fn func(now time.Time)) Handle {
	if sc.stopped {
		return Handle{}
	}
	var h Handle
	h = sc.s.RequestFrame(sc.guard(&h, true, fn))
	sc.handles[h.id] = struct{}{}
	return h
}

// After is Scheduler.After bound to the scope.
func (sc *Scope) After(d time.Duration, fn func(now time.Time)) Handle {
	if sc.stopped {
		return Handle{}
	}
	var h Handle
	h = sc.s.After(d, sc.guard(&h, true, fn))
	sc.handles[h.id] = struct{}{}
	return h
}

// Every is Scheduler.Every bound to the scope.
func (sc *Scope) Every(d time.Duration, fn func(now time.Time)) Handle {
	if sc.stopped {
		return Handle{}
	}
	var h Handle
	h = sc.s.Every(d, sc.guard(&h, false, fn))
	if h.Valid() {
		sc.handles[h.id] = struct{}{}
	}
	return h
}

// Cancel cancels a single task of this scope.
func (sc *Scope) Cancel(h Handle) bool {
	delete(sc.handles, h.id)
	return sc.s.Cancel(h)
}

// Stop cancels every pending task of the scope and marks it inactive.
// It returns the number of tasks cancelled.
func (sc *Scope) Stop() int {
	n := 0
	for id := range sc.handles {
		if sc.s.Cancel(Handle{id: id}) {
			n++
		}
	}
	sc.handles = make(map[uint64]struct{})
	sc.stopped = true
	return n
}

// Pending returns how many of the scope's tasks are still scheduled.
func (sc *Scope) Pending() int {
	return len(sc.handles)
}

func (sc *Scope) guard(h *Handle, once bool, fn func(now time.Time)) func(now time.Time) {
	return func(now time.Time) {
		if once {
			delete(sc.handles, h.id)
		}
		if sc.stopped {
			return
		}
		fn(now)
	}
}
