package feeding

import (
	"math"
	"testing"
	"time"

	"github.com/sethgrid/whiskers/internal/sched"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func started() (*sched.Scheduler, *sched.Scope, *Behavior) {
	s := sched.New(epoch)
	sc := s.Scope()
	b := New(DefaultParams())
	b.Start(sc)
	return s, sc, b
}

func TestFeedClampsAndGrows(t *testing.T) {
	_, _, b := started()

	if b.State.Hunger != 100 || b.State.Scale() != 1 {
		t.Fatalf("initial state %+v scale %v", b.State, b.State.Scale())
	}
	if !b.Feed() {
		t.Fatal("first feed ignored")
	}
	if b.State.Hunger != 100 {
		t.Errorf("hunger = %d, want 100 (clamped)", b.State.Hunger)
	}
	if math.Abs(b.State.Scale()-1.2) > 1e-9 {
		t.Errorf("scale = %v, want 1.2", b.State.Scale())
	}
}

func TestFloatAndReset(t *testing.T) {
	s, _, b := started()

	var events []Event
	b.OnEvent = func(e Event) { events = append(events, e) }

	clicks := 0
	for !b.State.Floating {
		if clicks > 20 {
			t.Fatal("never started floating")
		}
		b.Feed()
		clicks++
	}
	if clicks != 10 {
		t.Errorf("floated after %d clicks, want 10", clicks)
	}
	if b.State.Scale() < FloatScale {
		t.Errorf("floating at scale %v", b.State.Scale())
	}

	before := b.State
	if b.Feed() {
		t.Error("feed while floating should be ignored")
	}
	if b.State != before {
		t.Errorf("state changed while floating: %+v -> %+v", before, b.State)
	}

	s.Advance(epoch.Add(3999 * time.Millisecond))
	if !b.State.Floating {
		t.Fatal("reset before 4s")
	}

	s.Advance(epoch.Add(4000 * time.Millisecond))
	if b.State.Floating || b.State.Hunger != 100 || b.State.Scale() != 1 {
		t.Errorf("after reset: %+v scale %v", b.State, b.State.Scale())
	}
	if len(events) != 12 || events[10] != EventFloat || events[11] != EventReset {
		t.Errorf("unexpected events %v", events)
	}
}

func TestHungerDrains(t *testing.T) {
	s, _, b := started()

	s.Advance(epoch.Add(5 * time.Second))
	if b.State.Hunger != 80 {
		t.Errorf("hunger after 10 ticks = %d, want 80", b.State.Hunger)
	}
	if b.State.Warning != "" {
		t.Errorf("unexpected warning %q", b.State.Warning)
	}

	// 36 ticks: 100 - 72 = 28
	s.Advance(epoch.Add(18 * time.Second))
	if b.State.Hunger != 28 {
		t.Errorf("hunger = %d, want 28", b.State.Hunger)
	}
	if b.State.Warning != WarningText {
		t.Errorf("warning = %q, want %q", b.State.Warning, WarningText)
	}

	b.Feed()
	if b.State.Hunger != 53 || b.State.Warning != "" {
		t.Errorf("after feed hunger=%d warning=%q", b.State.Hunger, b.State.Warning)
	}

	s.Advance(epoch.Add(time.Minute))
	if b.State.Hunger != 0 {
		t.Errorf("hunger should floor at 0, got %d", b.State.Hunger)
	}
}

func TestStopFreezesHunger(t *testing.T) {
	s, sc, b := started()

	s.Advance(epoch.Add(2 * time.Second))
	sc.Stop()
	frozen := b.State.Hunger

	s.Advance(epoch.Add(30 * time.Second))
	if b.State.Hunger != frozen {
		t.Errorf("hunger changed after stop: %d -> %d", frozen, b.State.Hunger)
	}
}

func TestStopCancelsPendingReset(t *testing.T) {
	s, sc, b := started()
	for !b.State.Floating {
		b.Feed()
	}
	sc.Stop()
	s.Advance(epoch.Add(10 * time.Second))
	if !b.State.Floating {
		t.Error("stale reset ran after the scope was stopped")
	}
}

func TestRestartResets(t *testing.T) {
	s, sc, b := started()
	s.Advance(epoch.Add(10 * time.Second))
	b.Feed()
	sc.Stop()

	b.Start(s.Scope())
	if b.State.Hunger != 100 || b.State.Feeds != 0 || b.State.Floating {
		t.Errorf("restart did not reset: %+v", b.State)
	}
}

func TestHungerStaysInRange(t *testing.T) {
	s := sched.New(epoch)
	p := DefaultParams()
	p.Decay = -10
	p.FeedAmount = -60
	b := New(p)
	b.Start(s.Scope())

	s.Advance(epoch.Add(time.Second))
	if b.State.Hunger != MaxHunger {
		t.Errorf("hunger after 1s = %d, want at most %d", b.State.Hunger, MaxHunger)
	}
	for i := 0; i < 3; i++ {
		b.Feed()
	}
	if b.State.Hunger < 0 {
		t.Errorf("hunger after 3 feeds = %d, want at least 0", b.State.Hunger)
	}
}
