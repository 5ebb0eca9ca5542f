// Package mode switches between the toy's mutually exclusive modes and
// owns the lifecycle of whatever each mode keeps running.
package mode

import "strings"

// Mode identifies one of the six modes.
type Mode string

const (
	Chase      Mode = "chase"
	Chatbot    Mode = "chatbot"
	Rating     Mode = "rating"
	Horoscope  Mode = "horoscope"
	Translator Mode = "translator"
	Feeding    Mode = "feeding"
)

// All lists the modes in tab order.
var All = []Mode{Chase, Chatbot, Rating, Horoscope, Translator, Feeding}

var titles = map[Mode]string{
	Chase:      "Chase",
	Chatbot:    "Chat",
	Rating:     "Rate Me",
	Horoscope:  "Horoscope",
	Translator: "Translator",
	Feeding:    "Feed",
}

// Valid reports whether m is one of All.
func (m Mode) Valid() bool {
	_, ok := titles[m]
	return ok
}

// Title is the tab label.
func (m Mode) Title() string {
	if t, ok := titles[m]; ok {
		return t
	}
	return string(m)
}

// Parse accepts a mode name case-insensitively.
func Parse(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}

// Next returns the mode after m in tab order, wrapping around. Negative
// steps go backwards.
func Next(m Mode, step int) Mode {
	idx := 0
	for i, o := range All {
		if o == m {
			idx = i
			break
		}
	}
	n := len(All)
	return All[((idx+step)%n+n)%n]
}
