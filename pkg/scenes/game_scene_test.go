package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/entities"
	"github.com/decker502/ravens/pkg/game"
)

func newTestScene(t *testing.T) *GameScene {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Spawn.IntervalMs = 1e9
	return NewGameScene(nil, game.NewSceneManager(), nil, GameSceneOptions{
		Config:       cfg,
		ScreenWidth:  800,
		ScreenHeight: 600,
		Rand:         rand.New(rand.NewSource(1)),
	})
}

// TestGameSceneImplementsSceneInterface verifies that GameScene implements game.Scene.
func TestGameSceneImplementsSceneInterface(t *testing.T) {
	var _ game.Scene = newTestScene(t)
}

// TestNewGameSceneWithoutResources verifies the scene runs with placeholders only.
func TestNewGameSceneWithoutResources(t *testing.T) {
	scene := newTestScene(t)

	if scene.Loop() == nil {
		t.Fatal("scene should own a game loop")
	}
	if scene.ravenSheet != nil || scene.boomSheet != nil {
		t.Error("sprite sheets should be nil without a resource manager")
	}
	if w, h := scene.Loop().ScreenSize(); w != 800 || h != 600 {
		t.Errorf("expected loop size 800x600, got %.0fx%.0f", w, h)
	}
	if scene.DebugHitboxes() {
		t.Error("debug hitboxes should default to off")
	}
}

// TestGameSceneLoopReceivesClicks verifies the scene's loop resolves queued clicks.
func TestGameSceneLoopReceivesClicks(t *testing.T) {
	scene := newTestScene(t)
	loop := scene.Loop()

	if _, err := loop.AddRaven(entities.RavenParams{X: 300, Y: 200, SizeModifier: 1}); err != nil {
		t.Fatalf("failed to add raven: %v", err)
	}

	loop.QueueClick(310, 210)
	loop.Update(16)

	if loop.Score() != 1 {
		t.Errorf("expected score 1, got %d", loop.Score())
	}
}

func TestHUDText(t *testing.T) {
	if got := scoreText(12); got != "Score: 12" {
		t.Errorf("unexpected score text %q", got)
	}

	lines := gameOverLines(7)
	if lines[0] != "GAME OVER" {
		t.Errorf("unexpected title %q", lines[0])
	}
	if lines[1] != "Your Score was: 7" {
		t.Errorf("unexpected score line %q", lines[1])
	}
}

func TestClampFrame(t *testing.T) {
	tests := []struct {
		frame, cols, want int
	}{
		{0, 6, 0},
		{5, 6, 5},
		{6, 6, 5}, // 爆炸删除前的最后一次绘制
		{-1, 6, 0},
		{3, 1, 0},
	}

	for _, tt := range tests {
		if got := clampFrame(tt.frame, tt.cols); got != tt.want {
			t.Errorf("clampFrame(%d, %d) = %d, want %d", tt.frame, tt.cols, got, tt.want)
		}
	}
}
