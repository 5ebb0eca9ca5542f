// Package ui is the terminal front end, built on Bubble Tea.
//
// The [Model] owns an [app.App] and drives its scheduler from a frame
// tick, so every behavior callback runs inside Update on the program
// goroutine. Mouse hit-testing goes through bubblezone: tabs, chat
// options, horoscope signs, the feed button and the chase region are
// all marked zones.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sethgrid/whiskers/internal/app"
	"github.com/sethgrid/whiskers/internal/horoscope"
	"github.com/sethgrid/whiskers/internal/mode"
)

const (
	zoneChase  = "region:chase"
	zoneFeed   = "feed"
	tabPrefix  = "tab:"
	chatPrefix = "chat:"
	signPrefix = "sign:"

	headerHeight = 3
	footerHeight = 1
)

// frameMsg advances the scheduler. gen guards against ticks scheduled
// before a restart of the frame clock.
type frameMsg struct {
	gen int
	at  time.Time
}

// Model is the Bubble Tea model.
type Model struct {
	app   *app.App
	input textinput.Model

	width    int
	height   int
	sized    bool
	frameGen int
	interval time.Duration
	aspect   float64
}

// New wraps a for display. The caller switches a to its start mode.
func New(a *app.App) Model {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 40

	aspect := a.Config.CellAspect
	if aspect <= 0 {
		aspect = 2
	}
	m := Model{
		app:      a,
		input:    ti,
		interval: a.Config.FrameInterval.Duration,
		aspect:   aspect,
		width:    80,
		height:   24,
	}
	m.syncInput()
	return m
}

// Run starts the program in the alternate screen with mouse motion
// reporting and blocks until the user quits.
func Run(a *app.App) error {
	zone.NewGlobal()
	p := tea.NewProgram(New(a), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextFrame())
}

func (m Model) nextFrame() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.gen != m.frameGen {
			return m, nil
		}
		m.app.Tick(msg.at)
		return m, m.nextFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-6)
		if !m.sized {
			m.sized = true
			w, h := m.chaseSize()
			m.app.CenterCat(float64(w), float64(h)*m.aspect)
		}
		return m, nil

	case tea.ResumeMsg:
		return m.restart()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// restart drops any frame tick in flight and starts a new frame clock.
// It runs when the program resumes after a suspend.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.frameGen++
	return m, m.nextFrame()
}

func (m Model) typing() bool {
	switch m.app.Mode() {
	case mode.Translator, mode.Rating:
		return true
	}
	return false
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+z":
		return m, tea.Suspend
	case "tab":
		return m.switchTo(mode.Next(m.app.Mode(), 1))
	case "shift+tab":
		return m.switchTo(mode.Next(m.app.Mode(), -1))
	}

	if m.typing() {
		switch msg.String() {
		case "enter":
			m.app.Submit(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	key := msg.String()
	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		return m.switchTo(mode.All[int(key[0]-'1')])
	}

	switch m.app.Mode() {
	case mode.Chatbot:
		if len(key) == 1 && key[0] >= 'a' && key[0] <= 'c' {
			m.app.Ask(int(key[0] - 'a'))
		}
	case mode.Horoscope:
		for _, s := range horoscope.Signs {
			if strings.HasPrefix(s.ID, key) && len(key) == 1 {
				m.app.PickSign(s.ID)
				break
			}
		}
	case mode.Feeding:
		if key == " " || key == "enter" || key == "f" {
			m.app.Feed()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionMotion {
		if m.app.Mode() == mode.Chase && hit(zoneChase, msg) {
			x, y := zone.Get(zoneChase).Pos(msg)
			m.app.PointerMoved(r2.Vec{X: float64(x), Y: float64(y) * m.aspect})
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, md := range mode.All {
		if hit(tabPrefix+string(md), msg) {
			return m.switchTo(md)
		}
	}

	switch m.app.Mode() {
	case mode.Chatbot:
		for i := range m.app.Chat.Options {
			if hit(chatID(i), msg) {
				m.app.Ask(i)
				break
			}
		}
	case mode.Horoscope:
		for _, s := range horoscope.Signs {
			if hit(signPrefix+s.ID, msg) {
				m.app.PickSign(s.ID)
				break
			}
		}
	case mode.Feeding:
		if hit(zoneFeed, msg) {
			m.app.Feed()
		}
	}
	return m, nil
}

func (m Model) switchTo(md mode.Mode) (tea.Model, tea.Cmd) {
	if !m.app.Switch(md) {
		return m, nil
	}
	return m, m.syncInput()
}

// syncInput focuses the text input in the modes that take text.
func (m *Model) syncInput() tea.Cmd {
	m.input.SetValue("")
	switch m.app.Mode() {
	case mode.Translator:
		m.input.Placeholder = "words to translate"
		m.input.Prompt = "human> "
		return m.input.Focus()
	case mode.Rating:
		m.input.Placeholder = "path/to/picture.png"
		m.input.Prompt = "file> "
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// chaseSize is the chase region in cells.
func (m Model) chaseSize() (int, int) {
	return max(1, m.width), max(1, m.height-headerHeight-footerHeight)
}

func hit(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && !z.IsZero() && z.InBounds(msg)
}

func chatID(i int) string {
	return chatPrefix + string(rune('a'+i))
}
