package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sethgrid/whiskers/internal/app"
	"github.com/sethgrid/whiskers/internal/art"
	"github.com/sethgrid/whiskers/internal/chase"
	"github.com/sethgrid/whiskers/internal/conditions"
	"github.com/sethgrid/whiskers/internal/config"
	"github.com/sethgrid/whiskers/internal/discovery"
	"github.com/sethgrid/whiskers/internal/feeding"
	"github.com/sethgrid/whiskers/internal/mode"
)

func TestInitLoadAndPlay(t *testing.T) {
	tmpDir := t.TempDir()

	path, err := config.Init(tmpDir, "TestCat")
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}
	if path != discovery.ProjectConfigPath(tmpDir) {
		t.Errorf("Expected config at %s, got %s", discovery.ProjectConfigPath(tmpDir), path)
	}
	if _, err := config.Init(tmpDir, "Other"); err == nil {
		t.Error("Expected second init to fail")
	}

	// Discovery from a nested directory finds the project config
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	cfg, found, err := config.Resolve("", nested)
	if err != nil {
		t.Fatalf("Failed to resolve config: %v", err)
	}
	if found != path {
		t.Errorf("Expected resolved path %s, got %s", path, found)
	}
	if cfg.CatName != "TestCat" {
		t.Errorf("Expected name 'TestCat', got '%s'", cfg.CatName)
	}

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := app.New(cfg, app.Options{Start: now, Rand: rand.New(rand.NewSource(1))})
	a.Switch(cfg.Start())
	if a.Mode() != mode.Chase {
		t.Fatalf("Expected to start in chase, got %s", a.Mode())
	}

	// Ten feeds float the cat, and four seconds later it comes back down
	a.Switch(mode.Feeding)
	for i := 0; i < 10; i++ {
		a.Feed()
	}
	status := a.FeedingStatus()
	if status.Primary != conditions.CondFloating {
		t.Errorf("Expected floating, got %s", status.Primary)
	}
	floating := art.FeedingArt(status, a.Feeding.State.Scale())
	w, _ := art.Size(floating)
	base, _ := art.Size(art.Sprites["default"])
	if w <= base {
		t.Errorf("Expected stretched art wider than %d, got %d", base, w)
	}

	for i := 0; i < 250; i++ {
		now = now.Add(16 * time.Millisecond)
		a.Tick(now)
	}
	if a.Feeding.State.Floating || a.Feeding.State.Hunger != feeding.MaxHunger {
		t.Errorf("Expected reset after float, got %+v", a.Feeding.State)
	}

	// Let the cat starve, then leave: hunger stays where it was
	for i := 0; i < 2000; i++ {
		now = now.Add(16 * time.Millisecond)
		a.Tick(now)
	}
	if a.Feeding.State.Hunger != 0 || a.Feeding.State.Warning != feeding.WarningText {
		t.Errorf("Expected a starving cat, got %+v", a.Feeding.State)
	}
	a.Switch(mode.Horoscope)
	a.Switch(mode.Feeding)
	if a.Feeding.State.Hunger != feeding.MaxHunger {
		t.Errorf("Expected a fresh feeding session, got hunger %d", a.Feeding.State.Hunger)
	}
}

func TestChaseTraceCSV(t *testing.T) {
	rows := chase.Simulate(r2.Vec{}, r2.Vec{X: 100, Y: 50}, chase.DefaultSmoothing, 200)

	var buf bytes.Buffer
	if err := chase.WriteTrace(&buf, rows); err != nil {
		t.Fatalf("Failed to write trace: %v", err)
	}
	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != "frame,cat_x,cat_y,pointer_x,pointer_y,angle,distance" {
		t.Errorf("Unexpected header %q", header)
	}

	var back []chase.TraceRow
	if err := gocsv.Unmarshal(&buf, &back); err != nil {
		t.Fatalf("Failed to read trace: %v", err)
	}
	if len(back) != 201 {
		t.Fatalf("Expected 201 rows, got %d", len(back))
	}
	for i := 1; i < len(back); i++ {
		if back[i].Distance > back[i-1].Distance {
			t.Fatalf("Distance grew at frame %d", back[i].Frame)
		}
	}
	if back[200].Distance > 0.01 {
		t.Errorf("Expected the cat to arrive, distance %v", back[200].Distance)
	}
}
