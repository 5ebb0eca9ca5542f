package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sethgrid/whiskers/internal/app"
	"github.com/sethgrid/whiskers/internal/art"
	"github.com/sethgrid/whiskers/internal/chase"
	"github.com/sethgrid/whiskers/internal/chat"
	"github.com/sethgrid/whiskers/internal/conditions"
	"github.com/sethgrid/whiskers/internal/config"
	"github.com/sethgrid/whiskers/internal/discovery"
	"github.com/sethgrid/whiskers/internal/horoscope"
	"github.com/sethgrid/whiskers/internal/mode"
	"github.com/sethgrid/whiskers/internal/rating"
	"github.com/sethgrid/whiskers/internal/sound"
	"github.com/sethgrid/whiskers/internal/translate"
	"github.com/sethgrid/whiskers/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the cat",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closeLog, err := newLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		start := cfg.Start()
		if name, _ := cmd.Flags().GetString("mode"); name != "" {
			m, ok := mode.Parse(name)
			if !ok {
				return fmt.Errorf("unknown mode %q (want one of %s)", name, modeNames())
			}
			start = m
		}

		if cmd.Flags().Changed("sound") {
			cfg.Sound, _ = cmd.Flags().GetBool("sound")
		}

		var player sound.Player = sound.Nop{}
		if cfg.Sound {
			b, err := sound.NewBeep()
			if err != nil {
				logger.Warn("sound disabled", "err", err)
			} else {
				player = b
			}
		}
		defer player.Close()

		logger.Info("starting", "config", path, "mode", start, "cat", cfg.CatName)
		a := app.New(cfg, app.Options{Logger: logger, Sound: player})
		a.Switch(start)
		return ui.Run(a)
	},
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		global, _ := cmd.Flags().GetBool("global")

		var baseDir string
		if global {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			baseDir = home
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			baseDir = cwd
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		}
		path, err := config.Init(baseDir, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintf(out, "# defaults (no %s found)\n", discovery.FileName)
		} else {
			fmt.Fprintf(out, "# %s\n", path)
		}
		fmt.Fprint(out, string(data))
		return nil
	},
}

var horoscopeCmd = &cobra.Command{
	Use:   "horoscope [sign]",
	Short: "Read a cat horoscope",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		list, _ := cmd.Flags().GetBool("list")
		if list || len(args) == 0 {
			for _, s := range horoscope.Signs {
				fmt.Fprintf(out, "%-8s %s\n", s.ID, s.Fortune)
			}
			return nil
		}
		fmt.Fprintln(out, horoscope.Read(strings.ToLower(args[0])))
		return nil
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate [words...]",
	Short: "Translate human words into cat",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		fmt.Fprintln(out, translate.Translate(rng, strings.Join(args, " ")))
		return nil
	},
}

var rateCmd = &cobra.Command{
	Use:   "rate <image>",
	Short: "Have the cat rate a picture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		rater := rating.NewRater(nil, cfg.MaxImageBytes, cfg.PreviewWidth)
		res, err := rater.RateFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, strings.Join(res.Preview, "\n"))
		fmt.Fprintf(out, "\n%s rates your %s %d/10: %s\n", cfg.CatName, res.Format, res.Rating, res.Judgment)
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "Ask the cat something",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		prompt := strings.TrimSpace(strings.Join(args, " "))

		options := chat.InitialOptions()
		if prompt == "" {
			fmt.Fprintf(out, "%s: %s\n", cfg.CatName, chat.Greeting)
		} else {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			fmt.Fprintf(out, "you: %s\n", prompt)
			fmt.Fprintf(out, "%s: %s\n", cfg.CatName, chat.ReplyOrFallback(prompt))
			options = chat.Sample(rng, chat.OptionCount)
		}

		fmt.Fprintln(out)
		for _, o := range options {
			fmt.Fprintf(out, "  - %s\n", o)
		}
		return nil
	},
}

var chaseCmd = &cobra.Command{
	Use:   "chase",
	Short: "Run the chase without a screen and print where the cat ends up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		frames, _ := cmd.Flags().GetInt("frames")
		csvPath, _ := cmd.Flags().GetString("csv")

		from, err := parseVec(fromFlag)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		to, err := parseVec(toFlag)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		if frames < 0 {
			return fmt.Errorf("--frames must not be negative")
		}

		rows := chase.Simulate(from, to, cfg.Smoothing, frames)
		last := rows[len(rows)-1]
		fmt.Fprintf(out, "after %d frames the cat is at (%.2f, %.2f), %.2f from the pointer, facing %.1f°\n",
			last.Frame, last.CatX, last.CatY, last.Distance, last.Angle)
		fmt.Fprintln(out, art.ChaseSprite(last.Angle))

		if csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("failed to create trace: %w", err)
			}
			defer f.Close()
			if err := chase.WriteTrace(f, rows); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %d rows to %s\n", len(rows), csvPath)
		}
		return nil
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Feed the cat without a screen and watch its hunger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		clicks, _ := cmd.Flags().GetInt("clicks")
		wait, _ := cmd.Flags().GetDuration("wait")

		a := app.New(cfg, app.Options{Start: time.Unix(0, 0)})
		a.Switch(mode.Feeding)
		for i := 0; i < clicks; i++ {
			if !a.Feed() {
				break
			}
		}
		a.Tick(a.Sched.Now().Add(wait))

		st := a.Feeding.State
		status := a.FeedingStatus()
		fmt.Fprintf(out, "%s is %s\n\n", cfg.CatName, status.Primary)
		fmt.Fprintf(out, "state: %s\n", conditions.FormatConditions(status.AllOrdered))
		fmt.Fprintf(out, "hunger: %d\n", st.Hunger)
		fmt.Fprintf(out, "feeds: %d\n", st.Feeds)
		fmt.Fprintf(out, "size: x%.1f\n", st.Scale())
		if st.Warning != "" {
			fmt.Fprintf(out, "\n%s\n", st.Warning)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, art.FeedingArt(status, st.Scale()))
		return nil
	},
}

func init() {
	playCmd.Flags().StringP("mode", "m", "", "Start in this mode ("+modeNames()+")")
	playCmd.Flags().Bool("sound", false, "Chirp when the cat is fed")
	initCmd.Flags().Bool("global", false, "Write the config to your home directory")
	horoscopeCmd.Flags().BoolP("list", "l", false, "List every sign")
	chaseCmd.Flags().String("from", "0,0", "Starting cat position as x,y")
	chaseCmd.Flags().String("to", "40,20", "Pointer position as x,y")
	chaseCmd.Flags().IntP("frames", "n", 60, "Number of frames to run")
	chaseCmd.Flags().String("csv", "", "Write a per-frame trace to this CSV file")
	feedCmd.Flags().IntP("clicks", "c", 1, "Number of times to press feed")
	feedCmd.Flags().DurationP("wait", "w", 0, "Time to let pass after feeding")
}

func modeNames() string {
	names := make([]string, len(mode.All))
	for i, m := range mode.All {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func parseVec(s string) (r2.Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Vec{}, fmt.Errorf("%q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Vec{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Vec{}, err
	}
	return r2.Vec{X: x, Y: y}, nil
}
