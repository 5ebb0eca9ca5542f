package chat

import (
	"math/rand"
	"time"

	"github.com/sethgrid/whiskers/internal/sched"
)

// Speaker says who sent a message.
type Speaker string

const (
	SpeakerCat  Speaker = "cat"
	SpeakerUser Speaker = "you"
)

// Message is one line of the transcript.
type Message struct {
	From Speaker
	Text string
}

// Session is the chat pane's state for one activation.
type Session struct {
	Messages []Message
	Options  []string
	Thinking bool
	Delay    time.Duration

	rng   *rand.Rand
	scope *sched.Scope
}

// NewSession creates a session. A nil rng gets a time-seeded one.
func NewSession(rng *rand.Rand, delay time.Duration) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if delay < 0 {
		delay = 0
	}
	s := &Session{Delay: delay, rng: rng}
	s.reset()
	return s
}

// Start clears the transcript and shows the greeting.
func (s *Session) Start(sc *sched.Scope) {
	s.scope = sc
	s.reset()
}

func (s *Session) reset() {
	s.Messages = []Message{{From: SpeakerCat, Text: Greeting}}
	s.Options = InitialOptions()
	s.Thinking = false
}

// Ask sends one of the offered prompts. While the cat is thinking there
// are no options and Ask reports false.
func (s *Session) Ask(prompt string) bool {
	if s.Thinking || s.scope == nil {
		return false
	}
	s.Messages = append(s.Messages, Message{From: SpeakerUser, Text: prompt})
	s.Options = nil
	s.Thinking = true

	answer := ReplyOrFallback(prompt)
	s.scope.After(s.Delay, func(time.Time) {
		s.Messages = append(s.Messages, Message{From: SpeakerCat, Text: answer})
		s.Thinking = false
		s.Options = Sample(s.rng, OptionCount)
	})
	return true
}

// Choose asks the i-th offered option (zero based).
func (s *Session) Choose(i int) bool {
	if i < 0 || i >= len(s.Options) {
		return false
	}
	return s.Ask(s.Options[i])
}
