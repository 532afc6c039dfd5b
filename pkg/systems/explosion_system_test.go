package systems

import (
	"testing"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
)

func TestExplosionLifetimeIsExact(t *testing.T) {
	tests := []struct {
		name      string
		deltaTime float64
	}{
		{"16ms ticks", 16},
		{"one interval per tick", 200},
		{"25ms ticks", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			sounds := &recordingSoundPlayer{}
			system := NewExplosionSystem(em, sounds)
			cfg := config.DefaultGameConfig().Explosion

			id, err := entities.NewExplosionEntity(em, cfg, 10, 10, 100)
			if err != nil {
				t.Fatalf("failed to create explosion: %v", err)
			}
			anim, _ := ecs.GetComponent[*components.SpriteAnimationComponent](em, id)

			total := 6 * cfg.FrameIntervalMs
			elapsed := 0.0
			for elapsed+tt.deltaTime < total {
				system.Update(tt.deltaTime)
				elapsed += tt.deltaTime
				if em.IsMarkedForDestroy(id) {
					t.Fatalf("explosion deleted early at %.0fms (frame %d)", elapsed, anim.Frame)
				}
			}

			system.Update(total - elapsed)
			if anim.Frame != 6 {
				t.Errorf("expected frame 6 after %.0fms, got %d", total, anim.Frame)
			}
			if !em.IsMarkedForDestroy(id) {
				t.Error("explosion should be deleted after its last frame")
			}
		})
	}
}

func TestExplosionPlaysSoundOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	sounds := &recordingSoundPlayer{}
	system := NewExplosionSystem(em, sounds)

	if _, err := entities.NewExplosionEntity(em, config.DefaultGameConfig().Explosion, 0, 0, 50); err != nil {
		t.Fatalf("failed to create explosion: %v", err)
	}

	for i := 0; i < 5; i++ {
		system.Update(16)
	}

	if len(sounds.played) != 1 {
		t.Fatalf("expected the sound to play once, got %d", len(sounds.played))
	}
	if sounds.played[0] != config.SoundBoom {
		t.Errorf("expected %s, got %s", config.SoundBoom, sounds.played[0])
	}
}

func TestExplosionWithoutSoundPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewExplosionSystem(em, nil)

	id, _ := entities.NewExplosionEntity(em, config.DefaultGameConfig().Explosion, 0, 0, 50)
	system.Update(16)

	explosion, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
	if !explosion.SoundPlayed {
		t.Error("sound flag should be set even when muted")
	}
}
