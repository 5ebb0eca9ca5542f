package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sethgrid/whiskers/internal/art"
	"github.com/sethgrid/whiskers/internal/chat"
	"github.com/sethgrid/whiskers/internal/conditions"
	"github.com/sethgrid/whiskers/internal/feeding"
	"github.com/sethgrid/whiskers/internal/horoscope"
	"github.com/sethgrid/whiskers/internal/mode"
	"github.com/sethgrid/whiskers/internal/translate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fde68a"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a1a1aa"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#18181b")).
			Background(lipgloss.Color("#fde68a"))

	catStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b"))

	selectedStyle = buttonStyle.
			BorderForeground(lipgloss.Color("#fde68a"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f87171"))

	barFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	barLow   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#3f3f46"))
)

const barWidth = 20

func (m Model) View() string {
	header := m.header()
	footer := hintStyle.Render(m.help())

	var body string
	for _, md := range mode.All {
		if m.app.Panes.Visible(md) {
			body = m.pane(md)
			break
		}
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m Model) header() string {
	tabs := make([]string, 0, len(mode.All))
	for i, md := range mode.All {
		style := tabStyle
		if md == m.app.Mode() {
			style = activeTabStyle
		}
		label := fmt.Sprintf("%d %s", i+1, md.Title())
		tabs = append(tabs, zone.Mark(tabPrefix+string(md), style.Render(label)))
	}
	title := titleStyle.Render(m.app.Config.CatName)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
	)
}

func (m Model) help() string {
	switch m.app.Mode() {
	case mode.Chase:
		return "move the mouse • tab/1-6 modes • q quit"
	case mode.Chatbot:
		return "a-c or click to ask • tab/1-6 modes • q quit"
	case mode.Horoscope:
		return "first letter or click a sign • tab/1-6 modes • q quit"
	case mode.Feeding:
		return "space or click to feed • tab/1-6 modes • q quit"
	case mode.Translator, mode.Rating:
		return "enter to submit • tab modes • esc quit"
	}
	return "tab/1-6 modes • q quit"
}

func (m Model) pane(md mode.Mode) string {
	switch md {
	case mode.Chase:
		return m.chasePane()
	case mode.Chatbot:
		return m.chatPane()
	case mode.Rating:
		return m.ratingPane()
	case mode.Horoscope:
		return m.horoscopePane()
	case mode.Translator:
		return m.translatorPane()
	case mode.Feeding:
		return m.feedingPane()
	}
	return ""
}

func (m Model) chasePane() string {
	w, h := m.chaseSize()
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}

	t := m.app.Tracker
	sprite := art.ChaseSprite(t.Angle)
	sw, sh := art.Size(sprite)
	// centre the sprite on the cat
	left := int(math.Round(t.Cat.X)) - sw/2
	top := int(math.Round(t.Cat.Y/m.aspect)) - sh/2
	for dy, line := range strings.Split(sprite, "\n") {
		y := top + dy
		if y < 0 || y >= h {
			continue
		}
		for dx, r := range []rune(line) {
			x := left + dx
			if x < 0 || x >= w || r == ' ' {
				continue
			}
			grid[y][x] = r
		}
	}

	lines := make([]string, h)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return zone.Mark(zoneChase, catStyle.Render(strings.Join(lines, "\n")))
}

func (m Model) chatPane() string {
	s := m.app.Chat
	var b strings.Builder

	msgs := s.Messages
	if keep := m.height - headerHeight - footerHeight - 8; keep > 0 && len(msgs) > keep {
		msgs = msgs[len(msgs)-keep:]
	}
	for _, msg := range msgs {
		if msg.From == chat.SpeakerCat {
			b.WriteString(catStyle.Render(m.app.Config.CatName+": ") + msg.Text + "\n")
		} else {
			b.WriteString(userStyle.Render("you: "+msg.Text) + "\n")
		}
	}
	b.WriteString("\n")

	if s.Thinking {
		b.WriteString(hintStyle.Render(m.app.Config.CatName + " is thinking..."))
		return b.String()
	}
	for i, opt := range s.Options {
		label := fmt.Sprintf("[%c] %s", 'a'+i, opt)
		b.WriteString(zone.Mark(chatID(i), buttonStyle.Render(label)) + "\n")
	}
	return b.String()
}

func (m Model) ratingPane() string {
	p := m.app.Rating
	parts := []string{m.input.View(), ""}
	if p.Err != nil {
		parts = append(parts, warnStyle.Render(p.Message()))
	} else {
		parts = append(parts, p.Message())
	}
	if p.Result != nil {
		parts = append(parts, "", strings.Join(p.Result.Preview, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) horoscopePane() string {
	p := m.app.Horoscope
	buttons := make([]string, 0, len(horoscope.Signs))
	for _, s := range horoscope.Signs {
		style := buttonStyle
		if s.ID == p.Selected {
			style = selectedStyle
		}
		buttons = append(buttons, zone.Mark(signPrefix+s.ID, style.Render(s.Label)))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, buttons...), ""}
	if p.Text != "" {
		rows = append(rows, catStyle.Render(p.Text))
	} else {
		rows = append(rows, hintStyle.Render("Pick your sign."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) translatorPane() string {
	p := m.app.Translate
	out := p.Output
	if out == "" {
		out = hintStyle.Render("Your words, in cat.")
	} else if out == translate.EmptyPrompt {
		out = warnStyle.Render(out)
	} else {
		out = catStyle.Render(out)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.input.View(), "", out)
}

func (m Model) feedingPane() string {
	st := m.app.Feeding.State
	status := m.app.FeedingStatus()

	cat := catStyle.Render(art.FeedingArt(status, st.Scale()))
	bar := hungerBar(st.Hunger, m.app.Config.WarnBelow)
	line := fmt.Sprintf("hunger %s %3d  size x%.1f  %s", bar, st.Hunger, st.Scale(), conditions.FormatConditions(status.AllOrdered))

	rows := []string{line}
	if st.Warning != "" {
		rows = append(rows, warnStyle.Render(st.Warning))
	} else {
		rows = append(rows, "")
	}
	if st.Floating {
		rows = append(rows, hintStyle.Render("Up, up and away! Back in a moment."))
	} else {
		rows = append(rows, zone.Mark(zoneFeed, buttonStyle.Render("Feed")))
	}
	rows = append(rows, "", cat)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func hungerBar(hunger, warnBelow int) string {
	filled := min(max(hunger*barWidth/feeding.MaxHunger, 0), barWidth)
	style := barFull
	if hunger < warnBelow {
		style = barLow
	}
	return style.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", barWidth-filled))
}
