package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
	"github.com/decker502/ravens/pkg/utils"
)

// recordingSoundPlayer 记录播放过的音效
type recordingSoundPlayer struct {
	played []string
}

func (p *recordingSoundPlayer) PlaySound(soundID string) bool {
	p.played = append(p.played, soundID)
	return true
}

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newQuietConfig 返回不会自动生成乌鸦的配置
func newQuietConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Spawn.IntervalMs = 1e9
	return cfg
}

func addTestRaven(t *testing.T, em *ecs.EntityManager, palette *utils.ColorPalette, p entities.RavenParams) ecs.EntityID {
	t.Helper()
	if p.SizeModifier == 0 {
		p.SizeModifier = 1
	}
	if p.FlapInterval == 0 {
		p.FlapInterval = 1e9
	}
	id, err := entities.NewRavenEntity(em, config.DefaultGameConfig().Raven, palette, p)
	if err != nil {
		t.Fatalf("failed to create raven: %v", err)
	}
	return id
}

func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}
