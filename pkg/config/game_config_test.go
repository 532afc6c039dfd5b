package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Spawn.IntervalMs != 500 {
		t.Errorf("expected spawn interval 500, got %f", cfg.Spawn.IntervalMs)
	}
	if cfg.Raven.SpriteWidth != 271 || cfg.Raven.SpriteHeight != 194 {
		t.Errorf("expected raven sprite 271x194, got %.0fx%.0f", cfg.Raven.SpriteWidth, cfg.Raven.SpriteHeight)
	}
	if cfg.Raven.MinScale != 0.4 || cfg.Raven.ScaleRange != 0.6 {
		t.Errorf("expected scale 0.4+0.6, got %.2f+%.2f", cfg.Raven.MinScale, cfg.Raven.ScaleRange)
	}
	if cfg.Explosion.FrameIntervalMs != 200 || cfg.Explosion.LastFrame != 5 {
		t.Errorf("unexpected explosion config: %+v", cfg.Explosion)
	}
	if cfg.Particle.Growth != 0.3 {
		t.Errorf("expected particle growth 0.3, got %f", cfg.Particle.Growth)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
screen:
  width: 1024
  height: 768
spawn:
  intervalMs: 750
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Screen.Width != 1024 || cfg.Screen.Height != 768 {
					t.Errorf("expected screen 1024x768, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
				}
				if cfg.Spawn.IntervalMs != 750 {
					t.Errorf("expected spawn interval 750, got %f", cfg.Spawn.IntervalMs)
				}
				if cfg.Raven.TrailBurst != 5 {
					t.Errorf("expected default trail burst 5, got %d", cfg.Raven.TrailBurst)
				}
			},
		},
		{
			name: "zero spawn interval",
			yamlContent: `
spawn:
  intervalMs: 0
`,
			wantErr:     true,
			errContains: "spawn.intervalMs",
		},
		{
			name: "trail chance out of range",
			yamlContent: `
raven:
  trailChance: 1.5
`,
			wantErr:     true,
			errContains: "trailChance",
		},
		{
			name: "max radius below fade margin",
			yamlContent: `
particle:
  maxRadiusMin: 4
  fadeMargin: 5
`,
			wantErr:     true,
			errContains: "maxRadiusMin",
		},
		{
			name:        "malformed yaml",
			yamlContent: "screen: [",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigEmptyPath(t *testing.T) {
	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("empty path should return defaults: %v", err)
	}
	if cfg.Spawn.IntervalMs != 500 {
		t.Errorf("expected default spawn interval, got %f", cfg.Spawn.IntervalMs)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read game config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScreenSize(t *testing.T) {
	cfg := DefaultGameConfig()

	w, h := cfg.ScreenSize(DefaultScreenWidth, DefaultScreenHeight)
	if w != 800 || h != 600 {
		t.Errorf("expected fallback 800x600, got %dx%d", w, h)
	}

	cfg.Screen.Width = 1280
	w, h = cfg.ScreenSize(DefaultScreenWidth, DefaultScreenHeight)
	if w != 1280 || h != 600 {
		t.Errorf("expected 1280x600, got %dx%d", w, h)
	}
}
