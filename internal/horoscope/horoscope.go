// Package horoscope maps cat zodiac signs to fixed fortunes.
package horoscope

import "github.com/sethgrid/whiskers/internal/sched"

// Unknown is shown for a sign that is not in the table.
const Unknown = "The stars are napping. Ask again after dinner."

// Sign is one zodiac entry.
type Sign struct {
	ID      string
	Label   string
	Fortune string
}

// Signs lists every sign in display order.
var Signs = []Sign{
	{"tuna", "Tuna", "A can opener will sound in your near future. Be ready."},
	{"yarn", "Yarn", "Today's tangles are tomorrow's treasures. Unravel boldly."},
	{"laser", "Laser", "You will chase something you can never catch. Enjoy it anyway."},
	{"catnip", "Catnip", "Expect a sudden burst of energy around 3 a.m."},
	{"box", "Box", "If it fits, you sit. The universe has prepared a box for you."},
	{"sunbeam", "Sunbeam", "Warmth finds you at noon. Follow it across the floor."},
	{"feather", "Feather", "A light touch brings great rewards. Swat gently."},
	{"mouse", "Mouse", "A small gift left on a doorstep will be misunderstood."},
}

var fortunes = func() map[string]string {
	m := make(map[string]string, len(Signs))
	for _, s := range Signs {
		m[s.ID] = s.Fortune
	}
	return m
}()

// Fortune returns the fortune for a sign id.
func Fortune(id string) (string, bool) {
	f, ok := fortunes[id]
	return f, ok
}

// Read is Fortune with the Unknown fallback.
func Read(id string) string {
	if f, ok := Fortune(id); ok {
		return f
	}
	return Unknown
}

// Panel is the horoscope pane's state.
type Panel struct {
	Selected string
	Text     string
}

// Start clears the previous reading.
func (p *Panel) Start(*sched.Scope) {
	p.Selected = ""
	p.Text = ""
}

// Pick shows the fortune for a sign.
func (p *Panel) Pick(id string) {
	p.Selected = id
	p.Text = Read(id)
}
