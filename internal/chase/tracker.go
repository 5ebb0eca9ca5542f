// Package chase moves the cat toward the pointer a little every frame.
package chase

import (
	"math"
	"time"

	"github.com/sethgrid/whiskers/internal/sched"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultSmoothing is the fraction of the remaining distance closed per frame.
const DefaultSmoothing = 0.05

// SpriteOffset turns the raw heading into the sprite's facing; the cat
// art points up at zero degrees.
const SpriteOffset = 90.0

// Tracker holds the cat and pointer positions.
type Tracker struct {
	Cat       r2.Vec
	Pointer   r2.Vec
	Angle     float64 // degrees
	Smoothing float64
	Frames    int
}

// NewTracker returns a tracker with both positions at the origin. A
// smoothing constant outside (0,1) falls back to DefaultSmoothing.
func NewTracker(k float64) *Tracker {
	if k <= 0 || k >= 1 {
		k = DefaultSmoothing
	}
	return &Tracker{Smoothing: k}
}

// Reset puts cat and pointer at p.
func (t *Tracker) Reset(p r2.Vec) {
	t.Cat = p
	t.Pointer = p
	t.Angle = 0
	t.Frames = 0
}

// SetPointer records a new pointer position.
func (t *Tracker) SetPointer(p r2.Vec) {
	t.Pointer = p
}

// Step applies one frame of the update rule.
func (t *Tracker) Step() {
	delta := r2.Sub(t.Pointer, t.Cat)
	t.Cat = r2.Add(t.Cat, r2.Scale(t.Smoothing, delta))
	t.Angle = Facing(delta)
	t.Frames++
}

// Distance is how far the cat still is from the pointer.
func (t *Tracker) Distance() float64 {
	return r2.Norm(r2.Sub(t.Pointer, t.Cat))
}

// Facing converts a heading vector to sprite degrees.
func Facing(delta r2.Vec) float64 {
	return math.Atan2(delta.Y, delta.X)*180/math.Pi + SpriteOffset
}

// Loop drives a Tracker from a scheduler's frame callback.
type Loop struct {
	Tracker *Tracker

	// OnFrame, if set, runs after every step.
	OnFrame func(t *Tracker)
}

// Start resumes chasing from wherever the cat is and keeps requesting
// frames on sc until the scope is stopped.
func (l *Loop) Start(sc *sched.Scope) {
	var frame func(time.Time)
	frame = func(time.Time) {
		l.Tracker.Step()
		if l.OnFrame != nil {
			l.OnFrame(l.Tracker)
		}
		sc.RequestFrame(frame)
	}
	sc.RequestFrame(frame)
}
