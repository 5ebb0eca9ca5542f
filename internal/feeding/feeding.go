// Package feeding implements the hunger meter: feeding makes the cat
// bigger until it floats away, and hunger drains on a timer.
package feeding

import (
	"time"

	"github.com/sethgrid/whiskers/internal/sched"
)

const (
	MaxHunger     = 100
	ScaleStep     = 0.2
	FloatScale    = 3.0
	WarningText   = "Your cat is getting hungry!"
	DefaultFeed   = 25
	DefaultDecay  = 2
	DefaultWarn   = 30
	DefaultTick   = 500 * time.Millisecond
	DefaultFloat  = 4 * time.Second
	initialHunger = MaxHunger
)

// Event is reported to Behavior.OnEvent.
type Event int

const (
	EventFed Event = iota
	EventFloat
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventFed:
		return "fed"
	case EventFloat:
		return "float"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Params are the tunables of the feeding behavior.
type Params struct {
	FeedAmount int
	Decay      int
	WarnBelow  int
	Tick       time.Duration
	FloatReset time.Duration
}

// DefaultParams returns the stock tunables.
func DefaultParams() Params {
	return Params{
		FeedAmount: DefaultFeed,
		Decay:      DefaultDecay,
		WarnBelow:  DefaultWarn,
		Tick:       DefaultTick,
		FloatReset: DefaultFloat,
	}
}

// State is what the feeding pane renders.
type State struct {
	Hunger   int
	Feeds    int
	Floating bool
	Warning  string
}

// Scale is the sprite's size factor.
func (s State) Scale() float64 {
	return 1 + float64(s.Feeds)*ScaleStep
}

// Behavior owns the feeding state for one activation at a time.
type Behavior struct {
	Params Params
	State  State

	// OnEvent, if set, is told about feeds, floating and resets.
	OnEvent func(Event)

	scope *sched.Scope
}

// New returns a behavior in its initial state.
func New(p Params) *Behavior {
	b := &Behavior{Params: p}
	b.reset()
	return b
}

// Start resets the state and starts draining hunger on sc.
func (b *Behavior) Start(sc *sched.Scope) {
	b.scope = sc
	b.reset()
	sc.Every(b.Params.Tick, func(time.Time) { b.drain() })
}

// Feed handles one click on the feed button. It reports whether the
// click had any effect; clicks while floating are ignored.
func (b *Behavior) Feed() bool {
	if b.State.Floating {
		return false
	}
	b.State.Hunger = clampHunger(b.State.Hunger + b.Params.FeedAmount)
	b.State.Feeds++
	b.updateWarning()
	b.emit(EventFed)

	if b.State.Scale() >= FloatScale {
		b.State.Floating = true
		b.emit(EventFloat)
		if b.scope != nil {
			b.scope.After(b.Params.FloatReset, func(time.Time) {
				b.reset()
				b.emit(EventReset)
			})
		}
	}
	return true
}

func (b *Behavior) drain() {
	b.State.Hunger = clampHunger(b.State.Hunger - b.Params.Decay)
	b.updateWarning()
}

func clampHunger(h int) int {
	return min(max(h, 0), MaxHunger)
}

func (b *Behavior) updateWarning() {
	if b.State.Hunger < b.Params.WarnBelow {
		b.State.Warning = WarningText
	} else {
		b.State.Warning = ""
	}
}

func (b *Behavior) reset() {
	b.State = State{Hunger: initialHunger}
	b.updateWarning()
}

func (b *Behavior) emit(e Event) {
	if b.OnEvent != nil {
		b.OnEvent(e)
	}
}
