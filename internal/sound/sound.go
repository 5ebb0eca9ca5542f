// Package sound plays short tones for feeding events.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue is something worth a noise.
type Cue int

const (
	CueFeed Cue = iota
	CueFloat
)

// Player plays cues. Implementations must not block.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

const sampleRate = beep.SampleRate(44100)

// Beep plays sine tones through the system speaker.
type Beep struct{}

// NewBeep opens the speaker. Callers should fall back to Nop on error.
func NewBeep() (*Beep, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Beep{}, nil
}

// Play queues the cue's tones.
func (b *Beep) Play(c Cue) {
	var s beep.Streamer
	switch c {
	case CueFeed:
		s = tone(660, 60*time.Millisecond)
	case CueFloat:
		s = beep.Seq(
			tone(440, 90*time.Millisecond),
			tone(660, 90*time.Millisecond),
			tone(880, 150*time.Millisecond),
		)
	}
	if s != nil {
		speaker.Play(s)
	}
}

// Close releases the speaker.
func (b *Beep) Close() {
	speaker.Close()
}

func tone(freq int, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
