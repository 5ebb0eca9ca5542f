package mode

import (
	"io"
	"log/slog"

	"github.com/sethgrid/whiskers/internal/sched"
)

// Behavior is a mode's initializer. Anything it schedules must go
// through sc so the controller can stop it on the next switch.
type Behavior interface {
	Start(sc *sched.Scope)
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(sc *sched.Scope)

// Start calls f(sc).
func (f BehaviorFunc) Start(sc *sched.Scope) { f(sc) }

// Regions shows and hides the per-mode display regions.
type Regions interface {
	HideAll()
	// Show reveals the region for m and reports whether one exists.
	Show(m Mode) bool
}

// Controller holds the active mode. It is not safe for concurrent use;
// every call happens on the UI goroutine.
type Controller struct {
	sched     *sched.Scheduler
	regions   Regions
	behaviors map[Mode]Behavior
	log       *slog.Logger

	active Mode
	scope  *sched.Scope
}

// NewController creates a controller with no active mode. A nil logger
// discards.
func NewController(s *sched.Scheduler, regions Regions, behaviors map[Mode]Behavior, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		sched:     s,
		regions:   regions,
		behaviors: behaviors,
		log:       log,
	}
}

// Active returns the current mode, or "" before the first switch.
func (c *Controller) Active() Mode {
	return c.active
}

// Generation returns the generation of the current activation, zero
// before the first switch.
func (c *Controller) Generation() uint64 {
	if c.scope == nil {
		return 0
	}
	return c.scope.Generation()
}

// Switch stops the previous mode's background work, shows the region for
// m and starts m. Invalid modes are ignored and Switch reports false.
// Switching to the active mode restarts it.
func (c *Controller) Switch(m Mode) bool {
	if !m.Valid() {
		c.log.Debug("ignoring invalid mode", "mode", string(m))
		return false
	}

	stopped := c.Stop()
	c.scope = c.sched.Scope()
	c.active = m

	shown := false
	if c.regions != nil {
		c.regions.HideAll()
		shown = c.regions.Show(m)
	}
	if b, ok := c.behaviors[m]; ok && b != nil {
		b.Start(c.scope)
	}

	c.log.Debug("switched mode",
		"mode", string(m),
		"generation", c.scope.Generation(),
		"cancelled", stopped,
		"region", shown,
	)
	return true
}

// SwitchName parses name and switches to it.
func (c *Controller) SwitchName(name string) bool {
	m, ok := Parse(name)
	if !ok {
		c.log.Debug("ignoring unknown mode name", "name", name)
		return false
	}
	return c.Switch(m)
}

// Stop cancels the active mode's tasks without starting another mode.
// It returns the number of tasks cancelled.
func (c *Controller) Stop() int {
	if c.scope == nil {
		return 0
	}
	return c.scope.Stop()
}
