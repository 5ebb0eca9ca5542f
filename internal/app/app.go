// Package app wires the scheduler, the mode controller and every mode's
// behavior into one toy.
package app

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sethgrid/whiskers/internal/chase"
	"github.com/sethgrid/whiskers/internal/chat"
	"github.com/sethgrid/whiskers/internal/config"
	"github.com/sethgrid/whiskers/internal/conditions"
	"github.com/sethgrid/whiskers/internal/feeding"
	"github.com/sethgrid/whiskers/internal/horoscope"
	"github.com/sethgrid/whiskers/internal/mode"
	"github.com/sethgrid/whiskers/internal/rating"
	"github.com/sethgrid/whiskers/internal/sched"
	"github.com/sethgrid/whiskers/internal/sound"
	"github.com/sethgrid/whiskers/internal/translate"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options are the runtime dependencies that are not configuration.
type Options struct {
	Start  time.Time
	Rand   *rand.Rand
	Logger *slog.Logger
	Sound  sound.Player
}

// App is the whole toy. Every method must be called from one goroutine.
type App struct {
	Config     config.Config
	Sched      *sched.Scheduler
	Panes      *mode.Panes
	Controller *mode.Controller

	Tracker   *chase.Tracker
	Chat      *chat.Session
	Rating    *rating.Panel
	Horoscope *horoscope.Panel
	Translate *translate.Panel
	Feeding   *feeding.Behavior

	log   *slog.Logger
	sound sound.Player
}

// New builds an App with no mode active yet.
func New(cfg config.Config, opts Options) *App {
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Start.UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}

	a := &App{
		Config:    cfg,
		Sched:     sched.New(opts.Start),
		Panes:     mode.NewPanes(mode.All...),
		Tracker:   chase.NewTracker(cfg.Smoothing),
		Chat:      chat.NewSession(opts.Rand, cfg.ChatDelay.Duration),
		Rating:    rating.NewPanel(rating.NewRater(opts.Rand, cfg.MaxImageBytes, cfg.PreviewWidth)),
		Horoscope: &horoscope.Panel{},
		Translate: translate.NewPanel(opts.Rand),
		Feeding:   feeding.New(cfg.FeedingParams()),
		log:       opts.Logger,
		sound:     opts.Sound,
	}
	a.Feeding.OnEvent = a.onFeedingEvent

	loop := &chase.Loop{Tracker: a.Tracker}
	a.Controller = mode.NewController(a.Sched, a.Panes, map[mode.Mode]mode.Behavior{
		mode.Chase:      mode.BehaviorFunc(loop.Start),
		mode.Chatbot:    a.Chat,
		mode.Rating:     a.Rating,
		mode.Horoscope:  a.Horoscope,
		mode.Translator: a.Translate,
		mode.Feeding:    a.Feeding,
	}, opts.Logger)
	return a
}

// Mode is the active mode.
func (a *App) Mode() mode.Mode {
	return a.Controller.Active()
}

// Switch changes mode; invalid modes are ignored.
func (a *App) Switch(m mode.Mode) bool {
	return a.Controller.Switch(m)
}

// Tick advances the scheduler to now, running due frames and timers.
func (a *App) Tick(now time.Time) int {
	return a.Sched.Advance(now)
}

// PointerMoved records a pointer position inside the chase region. It is
// ignored outside chase mode.
func (a *App) PointerMoved(p r2.Vec) {
	if a.Mode() != mode.Chase {
		return
	}
	a.Tracker.SetPointer(p)
}

// CenterCat puts the cat and pointer in the middle of a w×h region.
func (a *App) CenterCat(w, h float64) {
	a.Tracker.Reset(r2.Vec{X: w / 2, Y: h / 2})
}

// Feed clicks the feed button.
func (a *App) Feed() bool {
	if a.Mode() != mode.Feeding {
		return false
	}
	return a.Feeding.Feed()
}

// FeedingStatus derives the feeding conditions for display.
func (a *App) FeedingStatus() conditions.DerivedStatus {
	return conditions.DeriveStatus(a.Feeding.State, a.Config.WarnBelow)
}

// Ask chooses the i-th chat option.
func (a *App) Ask(i int) bool {
	if a.Mode() != mode.Chatbot {
		return false
	}
	return a.Chat.Choose(i)
}

// PickSign reads a horoscope.
func (a *App) PickSign(id string) {
	if a.Mode() != mode.Horoscope {
		return
	}
	a.Horoscope.Pick(id)
}

// Submit sends typed text to the translator or the rating pane.
func (a *App) Submit(text string) {
	switch a.Mode() {
	case mode.Translator:
		a.Translate.Submit(text)
	case mode.Rating:
		a.Rating.Submit(text)
		if a.Rating.Err != nil {
			a.log.Debug("rejected picture", "path", text, "err", a.Rating.Err)
		}
	}
}

func (a *App) onFeedingEvent(e feeding.Event) {
	a.log.Debug("feeding event", "event", e.String(), "hunger", a.Feeding.State.Hunger)
	switch e {
	case feeding.EventFed:
		a.sound.Play(sound.CueFeed)
	case feeding.EventFloat:
		a.sound.Play(sound.CueFloat)
	}
}
