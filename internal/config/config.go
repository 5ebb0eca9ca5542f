package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sethgrid/whiskers/internal/chase"
	"github.com/sethgrid/whiskers/internal/chat"
	"github.com/sethgrid/whiskers/internal/feeding"
	"github.com/sethgrid/whiskers/internal/mode"
	"github.com/sethgrid/whiskers/internal/rating"
)

const (
	Version              = "1.0"
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultCellAspect    = 2.0
)

var catNames = []string{
	"Whiskers",
	"Mochi",
	"Biscuit",
	"Pixel",
	"Noodle",
	"Tofu",
}

// RandomCatName picks a name for a new config.
func RandomCatName() string {
	return catNames[rand.Intn(len(catNames))]
}

// Duration is a time.Duration written as "1.5s" in config files.
type Duration struct {
	time.Duration
}

// D wraps d.
func D(d time.Duration) Duration {
	return Duration{d}
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

type Config struct {
	Version       string   `toml:"version" yaml:"version"`
	CatName       string   `toml:"catName" yaml:"catName"`
	StartMode     string   `toml:"startMode" yaml:"startMode"`
	Smoothing     float64  `toml:"smoothing" yaml:"smoothing"`
	FrameInterval Duration `toml:"frameInterval" yaml:"frameInterval"`
	CellAspect    float64  `toml:"cellAspect" yaml:"cellAspect"`

	ChatDelay Duration `toml:"chatDelay" yaml:"chatDelay"`

	HungerInterval Duration `toml:"hungerInterval" yaml:"hungerInterval"`
	HungerDecay    int      `toml:"hungerDecay" yaml:"hungerDecay"`
	FeedAmount     int      `toml:"feedAmount" yaml:"feedAmount"`
	WarnBelow      int      `toml:"warnBelow" yaml:"warnBelow"`
	FloatReset     Duration `toml:"floatReset" yaml:"floatReset"`

	MaxImageBytes int64 `toml:"maxImageBytes" yaml:"maxImageBytes"`
	PreviewWidth  int   `toml:"previewWidth" yaml:"previewWidth"`

	Sound bool `toml:"sound" yaml:"sound"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Version:        Version,
		CatName:        catNames[0],
		StartMode:      string(mode.Chase),
		Smoothing:      chase.DefaultSmoothing,
		FrameInterval:  D(DefaultFrameInterval),
		CellAspect:     DefaultCellAspect,
		ChatDelay:      D(chat.DefaultDelay),
		HungerInterval: D(feeding.DefaultTick),
		HungerDecay:    feeding.DefaultDecay,
		FeedAmount:     feeding.DefaultFeed,
		WarnBelow:      feeding.DefaultWarn,
		FloatReset:     D(feeding.DefaultFloat),
		MaxImageBytes:  rating.DefaultMaxBytes,
		PreviewWidth:   rating.DefaultPreviewWidth,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Smoothing <= 0 || c.Smoothing >= 1 {
		errs = append(errs, fmt.Errorf("smoothing must be between 0 and 1, got %v", c.Smoothing))
	}
	if c.FrameInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("frameInterval must be positive, got %v", c.FrameInterval))
	}
	if c.HungerInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("hungerInterval must be positive, got %v", c.HungerInterval))
	}
	if c.ChatDelay.Duration < 0 {
		errs = append(errs, fmt.Errorf("chatDelay must not be negative, got %v", c.ChatDelay))
	}
	if c.FloatReset.Duration < 0 {
		errs = append(errs, fmt.Errorf("floatReset must not be negative, got %v", c.FloatReset))
	}
	if c.HungerDecay < 0 {
		errs = append(errs, fmt.Errorf("hungerDecay must not be negative, got %d", c.HungerDecay))
	}
	if c.FeedAmount < 0 {
		errs = append(errs, fmt.Errorf("feedAmount must not be negative, got %d", c.FeedAmount))
	}
	if c.WarnBelow < 0 || c.WarnBelow > feeding.MaxHunger {
		errs = append(errs, fmt.Errorf("warnBelow must be between 0 and %d, got %d", feeding.MaxHunger, c.WarnBelow))
	}
	if c.CellAspect <= 0 {
		errs = append(errs, fmt.Errorf("cellAspect must be positive, got %v", c.CellAspect))
	}
	if c.MaxImageBytes <= 0 {
		errs = append(errs, fmt.Errorf("maxImageBytes must be positive, got %d", c.MaxImageBytes))
	}
	if c.PreviewWidth <= 0 {
		errs = append(errs, fmt.Errorf("previewWidth must be positive, got %d", c.PreviewWidth))
	}
	if c.StartMode != "" {
		if _, ok := mode.Parse(c.StartMode); !ok {
			errs = append(errs, fmt.Errorf("unknown startMode %q", c.StartMode))
		}
	}
	return errors.Join(errs...)
}

// FeedingParams converts the feeding keys.
func (c Config) FeedingParams() feeding.Params {
	return feeding.Params{
		FeedAmount: c.FeedAmount,
		Decay:      c.HungerDecay,
		WarnBelow:  c.WarnBelow,
		Tick:       c.HungerInterval.Duration,
		FloatReset: c.FloatReset.Duration,
	}
}

// Start is the mode to open with, falling back to chase.
func (c Config) Start() mode.Mode {
	if m, ok := mode.Parse(c.StartMode); ok {
		return m
	}
	return mode.Chase
}
