package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sethgrid/whiskers/internal/chat"
	"github.com/sethgrid/whiskers/internal/config"
	"github.com/sethgrid/whiskers/internal/feeding"
	"github.com/sethgrid/whiskers/internal/horoscope"
)

func TestParseVec(t *testing.T) {
	tests := []struct {
		in      string
		want    r2.Vec
		wantErr bool
	}{
		{"0,0", r2.Vec{}, false},
		{"12.5, -3", r2.Vec{X: 12.5, Y: -3}, false},
		{"40", r2.Vec{}, true},
		{"a,1", r2.Vec{}, true},
		{"1,b", r2.Vec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseVec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseVec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeNames(t *testing.T) {
	names := modeNames()
	for _, want := range []string{"chase", "feeding"} {
		if !strings.Contains(names, want) {
			t.Errorf("mode list %q missing %s", names, want)
		}
	}
}

// runCLI executes the root command with args against the config at
// cfgPath and returns what it printed.
func runCLI(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	for _, c := range root.Commands() {
		resetFlags(c)
	}

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return buf.String(), err
}

// resetFlags restores defaults left over from an earlier run.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func testConfig(t *testing.T) string {
	t.Helper()
	cfg := config.Default()
	cfg.CatName = "Testy"
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	return path
}

func TestCommands(t *testing.T) {
	cfgPath := testConfig(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{"version", []string{"-v"}, []string{Version}, nil},
		{"horoscope list", []string{"horoscope", "--list"}, []string{"tuna", "mouse", horoscope.Read("box")}, nil},
		{"horoscope sign", []string{"horoscope", "TUNA"}, []string{horoscope.Read("tuna")}, nil},
		{"horoscope unknown", []string{"horoscope", "dog"}, []string{horoscope.Unknown}, nil},
		{"chat greeting", []string{"chat"}, []string{"Testy: " + chat.Greeting, "  - " + chat.InitialOptions()[0]}, nil},
		{"chat prompt", []string{"chat", "What's", "your", "favorite", "food?"}, []string{"Tuna. Obviously."}, nil},
		{"chat unknown", []string{"chat", "what", "is", "2+2"}, []string{chat.Fallback}, nil},
		{"feed once", []string{"feed"}, []string{"hunger: 100", "feeds: 1", "size: x1.2"}, nil},
		{"feed to float", []string{"feed", "--clicks", "12"}, []string{"Testy is floating", "feeds: 10", "size: x3.0"}, nil},
		{"float resets", []string{"feed", "--clicks", "10", "--wait", "5s"}, []string{"feeds: 0"}, []string{"floating"}},
		{"starve", []string{"feed", "--clicks", "0", "--wait", "1m"}, []string{"hunger: 0", feeding.WarningText}, nil},
		{"chase", []string{"chase", "--from", "0,0", "--to", "40,20", "--frames", "200"}, []string{"after 200 frames", "(40.00, 20.00)"}, nil},
		{"config", []string{"config"}, []string{"# " + cfgPath, "Testy"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, cfgPath, tt.args...)
			if err != nil {
				t.Fatalf("whiskers %v: %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestChaseWritesCSV(t *testing.T) {
	cfgPath := testConfig(t)
	csvPath := filepath.Join(t.TempDir(), "trace.csv")

	out, err := runCLI(t, cfgPath, "chase", "--frames", "30", "--csv", csvPath)
	if err != nil {
		t.Fatalf("chase: %v", err)
	}
	if !strings.Contains(out, "Wrote 31 rows") {
		t.Errorf("unexpected output:\n%s", out)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("Failed to read trace: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 32 {
		t.Errorf("expected header + 31 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,cat_x,cat_y") {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestCommandErrors(t *testing.T) {
	cfgPath := testConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"bad from", []string{"chase", "--from", "nope"}},
		{"negative frames", []string{"chase", "--frames", "-1"}},
		{"missing picture", []string{"rate", filepath.Join(t.TempDir(), "missing.png")}},
		{"too many signs", []string{"horoscope", "tuna", "box"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, cfgPath, tt.args...); err == nil {
				t.Errorf("whiskers %v should fail", tt.args)
			}
		})
	}

	if _, err := runCLI(t, filepath.Join(t.TempDir(), "absent.toml"), "config"); err == nil {
		t.Error("missing --config file should fail")
	}
}
