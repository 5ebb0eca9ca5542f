// Package translate turns any text into cat. Every word is replaced by a
// random cat word regardless of what it was.
package translate

import (
	"math/rand"
	"strings"
	"time"

	"github.com/sethgrid/whiskers/internal/sched"
)

// EmptyPrompt is shown when there is nothing to translate.
const EmptyPrompt = "Type something for me to translate first!"

// Vocabulary is every word a translation can contain.
var Vocabulary = []string{"meow", "mew", "mrrp", "purr", "nya", "mrow", "prrt", "hiss"}

// Translate replaces each whitespace-separated token of input with a
// random vocabulary word and ends the sentence with a period.
func Translate(rng *rand.Rand, input string) string {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return EmptyPrompt
	}
	out := make([]string, len(tokens))
	for i := range tokens {
		out[i] = Vocabulary[rng.Intn(len(Vocabulary))]
	}
	return strings.Join(out, " ") + "."
}

// Panel is the translator pane's state.
type Panel struct {
	Input  string
	Output string

	rng *rand.Rand
}

// NewPanel creates a panel. A nil rng gets a time-seeded one.
func NewPanel(rng *rand.Rand) *Panel {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Panel{rng: rng}
}

// Start clears the previous translation.
func (p *Panel) Start(*sched.Scope) {
	p.Input = ""
	p.Output = ""
}

// Submit translates input and keeps both for display.
func (p *Panel) Submit(input string) string {
	p.Input = input
	p.Output = Translate(p.rng, input)
	return p.Output
}
