// Package rating gives an uploaded picture a random score out of ten.
package rating

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sethgrid/whiskers/internal/ascii"
	"github.com/sethgrid/whiskers/internal/sched"
)

const (
	MinRating           = 1
	MaxRating           = 10
	DefaultMaxBytes     = 5 << 20
	DefaultPreviewWidth = 40
	EmptyPrompt         = "Enter the path of a picture for me to judge."
)

var (
	ErrTooLarge = errors.New("file is too large")
	ErrNotImage = errors.New("file is not an image")
)

// Judgments holds the verdict for ratings 1 through 10.
var Judgments = [MaxRating]string{
	"I have seen better pictures in my litter box.",
	"Hiss. Take it away.",
	"Meh. I would not even knock it off a table.",
	"It's fine. Wake me when there is tuna.",
	"Average. Like a Tuesday nap.",
	"Not bad. I might sit on it.",
	"Ooh, shiny. I approve, mostly.",
	"Very nice! This deserves a slow blink.",
	"Magnificent. I will purr for you.",
	"PURRFECTION. Frame it next to my food bowl.",
}

// Judgment returns the verdict for a rating in [1,10].
func Judgment(r int) (string, bool) {
	if r < MinRating || r > MaxRating {
		return "", false
	}
	return Judgments[r-1], true
}

// Result is one rated picture.
type Result struct {
	Rating   int
	Judgment string
	Format   string
	Preview  []string
}

// Rater scores pictures.
type Rater struct {
	MaxBytes     int64
	PreviewWidth int

	rng *rand.Rand
}

// NewRater creates a rater. A nil rng gets a time-seeded one.
func NewRater(rng *rand.Rand, maxBytes int64, previewWidth int) *Rater {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if previewWidth <= 0 {
		previewWidth = DefaultPreviewWidth
	}
	return &Rater{MaxBytes: maxBytes, PreviewWidth: previewWidth, rng: rng}
}

// RateFile checks the size of the file at path, then rates its contents.
func (r *Rater) RateFile(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open picture: %w", err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	if info.Size() > r.MaxBytes {
		return Result{}, fmt.Errorf("%s is %d bytes, limit %d: %w", path, info.Size(), r.MaxBytes, ErrTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read picture: %w", err)
	}
	return r.Rate(data)
}

// Rate decodes data as an image and rates it.
func (r *Rater) Rate(data []byte) (Result, error) {
	if int64(len(data)) > r.MaxBytes {
		return Result{}, ErrTooLarge
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	score := MinRating + r.rng.Intn(MaxRating)
	judgment, _ := Judgment(score)
	return Result{
		Rating:   score,
		Judgment: judgment,
		Format:   format,
		Preview:  ascii.Convert(img, r.PreviewWidth),
	}, nil
}

// Panel is the rating pane's state.
type Panel struct {
	Result *Result
	Err    error

	rater *Rater
}

// NewPanel wraps a rater for display.
func NewPanel(r *Rater) *Panel {
	return &Panel{rater: r}
}

// Start clears the last result.
func (p *Panel) Start(*sched.Scope) {
	p.Result = nil
	p.Err = nil
}

// Submit rates the picture at path. Errors are kept for display; an
// empty path just shows the prompt again.
func (p *Panel) Submit(path string) {
	p.Result = nil
	p.Err = nil
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	res, err := p.rater.RateFile(path)
	if err != nil {
		p.Err = err
		return
	}
	p.Result = &res
}

// Message is the text shown above the preview.
func (p *Panel) Message() string {
	switch {
	case p.Err != nil && errors.Is(p.Err, ErrTooLarge):
		return "That picture is too big for me to carry."
	case p.Err != nil && errors.Is(p.Err, ErrNotImage):
		return "That is not a picture. I only judge pictures."
	case p.Err != nil:
		return "I couldn't find that picture."
	case p.Result != nil:
		return fmt.Sprintf("%d/10: %s", p.Result.Rating, p.Result.Judgment)
	}
	return EmptyPrompt
}
