package mode

import (
	"testing"
	"time"

	"github.com/sethgrid/whiskers/internal/sched"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ticker counts interval ticks while its mode is active.
type ticker struct {
	starts int
	ticks  int
}

func (tk *ticker) Start(sc *sched.Scope) {
	tk.starts++
	sc.Every(100*time.Millisecond, func(time.Time) { tk.ticks++ })
}

// framer counts frames while its mode is active.
type framer struct {
	frames int
}

func (f *framer) Start(sc *sched.Scope) {
	var frame func(time.Time)
	frame = func(time.Time) {
		f.frames++
		sc.RequestFrame(frame)
	}
	sc.RequestFrame(frame)
}

func newTestController() (*sched.Scheduler, *Panes, *Controller, *framer, *ticker) {
	s := sched.New(epoch)
	panes := NewPanes(All...)
	f := &framer{}
	tk := &ticker{}
	c := NewController(s, panes, map[Mode]Behavior{
		Chase:   f,
		Feeding: tk,
	}, nil)
	return s, panes, c, f, tk
}

func TestSwitchShowsExactlyOneRegion(t *testing.T) {
	_, panes, c, _, _ := newTestController()
	for _, m := range All {
		t.Run(string(m), func(t *testing.T) {
			if !c.Switch(m) {
				t.Fatalf("Switch(%s) refused", m)
			}
			if panes.VisibleCount() != 1 || !panes.Visible(m) {
				t.Errorf("after switching to %s: %d visible, own visible=%v", m, panes.VisibleCount(), panes.Visible(m))
			}
			if c.Active() != m {
				t.Errorf("active = %s", c.Active())
			}
		})
	}
}

func TestSwitchInvalidIsNoop(t *testing.T) {
	_, panes, c, _, _ := newTestController()
	c.Switch(Horoscope)
	gen := c.Generation()

	for _, bad := range []Mode{"", "dance", "CHASE"} {
		if c.Switch(bad) {
			t.Errorf("Switch(%q) accepted", bad)
		}
	}
	if c.SwitchName("nap") {
		t.Error("SwitchName(nap) accepted")
	}
	if c.Active() != Horoscope || c.Generation() != gen || !panes.Visible(Horoscope) {
		t.Error("invalid switch changed state")
	}
}

func TestSwitchName(t *testing.T) {
	_, _, c, _, _ := newTestController()
	if !c.SwitchName(" Feeding ") || c.Active() != Feeding {
		t.Errorf("SwitchName did not parse, active = %q", c.Active())
	}
}

func TestLeavingFeedingStopsTicks(t *testing.T) {
	s, _, c, _, tk := newTestController()
	c.Switch(Feeding)
	s.Advance(epoch.Add(time.Second))
	if tk.ticks != 10 {
		t.Fatalf("expected 10 ticks, got %d", tk.ticks)
	}

	c.Switch(Horoscope)
	s.Advance(epoch.Add(10 * time.Second))
	if tk.ticks != 10 {
		t.Errorf("ticks continued after switch: %d", tk.ticks)
	}
}

func TestLeavingChaseStopsFrames(t *testing.T) {
	s, _, c, f, _ := newTestController()
	c.Switch(Chase)
	now := epoch
	for i := 0; i < 3; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Advance(now)
	}
	c.Switch(Chatbot)
	for i := 0; i < 3; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Advance(now)
	}
	if f.frames != 3 {
		t.Errorf("expected 3 frames, got %d", f.frames)
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing scheduled in chatbot mode, got %d", s.Pending())
	}
}

func TestAtMostOneBackgroundProcess(t *testing.T) {
	s, _, c, _, tk := newTestController()
	for i := 0; i < 5; i++ {
		c.Switch(Chase)
		c.Switch(Feeding)
	}
	if s.Pending() != 1 {
		t.Errorf("expected exactly the feeding interval pending, got %d", s.Pending())
	}
	if tk.starts != 5 {
		t.Errorf("feeding started %d times", tk.starts)
	}
}

func TestRestartSameMode(t *testing.T) {
	s, _, c, _, tk := newTestController()
	c.Switch(Feeding)
	first := c.Generation()
	c.Switch(Feeding)
	if c.Generation() <= first {
		t.Error("restart did not open a new generation")
	}
	s.Advance(epoch.Add(time.Second))
	if tk.ticks != 10 {
		t.Errorf("expected a single interval running, got %d ticks", tk.ticks)
	}
}

func TestMissingRegionTolerated(t *testing.T) {
	s := sched.New(epoch)
	panes := NewPanes(Chase)
	started := false
	c := NewController(s, panes, map[Mode]Behavior{
		Rating: BehaviorFunc(func(*sched.Scope) { started = true }),
	}, nil)

	if !c.Switch(Rating) {
		t.Fatal("switch refused")
	}
	if panes.VisibleCount() != 0 {
		t.Errorf("expected nothing visible, got %d", panes.VisibleCount())
	}
	if !started {
		t.Error("initializer did not run")
	}

	nilRegions := NewController(s, nil, nil, nil)
	if !nilRegions.Switch(Chase) {
		t.Error("switch without regions refused")
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		from Mode
		step int
		want Mode
	}{
		{Chase, 1, Chatbot},
		{Feeding, 1, Chase},
		{Chase, -1, Feeding},
		{Rating, 3, Feeding},
		{"bogus", 1, Chatbot},
	}
	for _, tt := range tests {
		if got := Next(tt.from, tt.step); got != tt.want {
			t.Errorf("Next(%s, %d) = %s, want %s", tt.from, tt.step, got, tt.want)
		}
	}
}
