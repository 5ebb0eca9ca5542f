// Package chat is a chatbot with canned answers and a thinking delay.
package chat

import (
	"math/rand"
	"time"
)

const (
	Greeting     = "Meow! I'm Whiskers. What would you like to talk about?"
	Fallback     = "Mrrp? I don't understand. Try asking about tuna."
	DefaultDelay = 1500 * time.Millisecond
	OptionCount  = 3
)

// Entry is one canned prompt and its answer.
type Entry struct {
	Prompt   string
	Response string
}

// Table is the canned conversation, in display order.
var Table = []Entry{
	{"How are you?", "Purrfectly fine, thank you! I just had a nap in a sunbeam."},
	{"What's your favorite food?", "Tuna. Obviously. Salmon is acceptable on weekends."},
	{"Do you like dogs?", "We have an understanding. They stay off my couch."},
	{"What do you do all day?", "Sleep, stare at walls, knock things off tables. The usual."},
	{"Can I pet you?", "You may pet me exactly three times. The fourth one costs extra."},
	{"Why do you knock things over?", "Gravity needs testing. Someone has to do it."},
	{"Do you love me?", "I sat on your keyboard, didn't I? That's basically a yes."},
	{"What's the meaning of life?", "A warm lap and an open can of tuna."},
}

var responses = func() map[string]string {
	m := make(map[string]string, len(Table))
	for _, e := range Table {
		m[e.Prompt] = e.Response
	}
	return m
}()

// Reply looks up the canned answer for an exact prompt match.
func Reply(prompt string) (string, bool) {
	r, ok := responses[prompt]
	return r, ok
}

// ReplyOrFallback is Reply with the fallback answer for unknown prompts.
func ReplyOrFallback(prompt string) string {
	if r, ok := Reply(prompt); ok {
		return r
	}
	return Fallback
}

// Prompts returns every known prompt in table order.
func Prompts() []string {
	out := make([]string, len(Table))
	for i, e := range Table {
		out[i] = e.Prompt
	}
	return out
}

// InitialOptions are the prompts offered with the greeting.
func InitialOptions() []string {
	return Prompts()[:OptionCount]
}

// Sample picks n distinct prompts at random. The prompt that was just
// asked is not excluded, so it can come straight back.
func Sample(rng *rand.Rand, n int) []string {
	all := Prompts()
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}
