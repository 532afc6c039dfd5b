package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/ravens/pkg/config"
)

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	cfg.Mute = true
	cfg.Verbose = true
	if cfg.ResourcesPath == "" {
		cfg.ResourcesPath = filepath.Join(t.TempDir(), "missing.yaml")
	}
	a, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return a
}

func TestNewAppWithoutResources(t *testing.T) {
	a := newTestApp(t, Config{ScreenWidth: 1024, ScreenHeight: 768, Seed: 3})

	if a.GetSceneManager().GetCurrentScene() == nil {
		t.Fatal("game scene should be active")
	}
	if w, h := a.Layout(1920, 1080); w != 1024 || h != 768 {
		t.Errorf("expected layout 1024x768, got %dx%d", w, h)
	}
	if !a.IsVerbose() {
		t.Error("expected verbose app")
	}
}

func TestNewAppFallsBackToDefaultSize(t *testing.T) {
	a := newTestApp(t, Config{})

	w, h := a.Layout(0, 0)
	if w != config.DefaultScreenWidth || h != config.DefaultScreenHeight {
		t.Errorf("expected default size, got %dx%d", w, h)
	}
}

func TestDeltaTimeFollowsWallClock(t *testing.T) {
	a := newTestApp(t, Config{ScreenWidth: 800, ScreenHeight: 600})

	now := a.start
	a.now = func() time.Time { return now }

	now = now.Add(16 * time.Millisecond)
	if dt := a.nextDeltaTime(); dt != 16 {
		t.Errorf("expected 16ms, got %f", dt)
	}

	now = now.Add(33 * time.Millisecond)
	if dt := a.nextDeltaTime(); dt != 33 {
		t.Errorf("expected 33ms, got %f", dt)
	}
}
