package entities

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
)

func TestNewParticleEntityRanges(t *testing.T) {
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(3))
	cfg := config.DefaultGameConfig().Particle
	red := color.RGBA{R: 255, A: 255}

	const originX, originY, size = 100.0, 200.0, 150.0

	for i := 0; i < 500; i++ {
		id, err := NewParticleEntity(em, rng, cfg, originX, originY, size, red)
		if err != nil {
			t.Fatalf("NewParticleEntity failed: %v", err)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		p, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !ok {
			t.Fatal("particle should have ParticleComponent")
		}

		// 中心 (175, 250)，抖动 ±25
		if pos.X < 150 || pos.X >= 200 || pos.Y < 225 || pos.Y >= 275 {
			t.Fatalf("particle position (%f, %f) outside jitter box", pos.X, pos.Y)
		}
		if p.Radius < 0 || p.Radius >= size/10 {
			t.Fatalf("initial radius %f out of [0, %f)", p.Radius, size/10)
		}
		if p.MaxRadius < 35 || p.MaxRadius >= 55 {
			t.Fatalf("max radius %f out of [35, 55)", p.MaxRadius)
		}
		if p.SpeedX < 0.5 || p.SpeedX >= 1.5 {
			t.Fatalf("speed %f out of [0.5, 1.5)", p.SpeedX)
		}
		if p.Color != red || p.Growth != 0.3 || p.Margin != 5 {
			t.Fatalf("unexpected particle %+v", p)
		}
	}
}

func TestNewParticleEntityInvalidArgs(t *testing.T) {
	cfg := config.DefaultGameConfig().Particle
	if _, err := NewParticleEntity(nil, rand.New(rand.NewSource(1)), cfg, 0, 0, 10, color.RGBA{}); err == nil {
		t.Error("expected error for nil entity manager")
	}
	if _, err := NewParticleEntity(ecs.NewEntityManager(), nil, cfg, 0, 0, 10, color.RGBA{}); err == nil {
		t.Error("expected error for nil random source")
	}
}

func TestEmitParticleBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Particle

	ids, err := EmitParticleBurst(em, rand.New(rand.NewSource(5)), cfg, 5, 0, 0, 100, color.RGBA{A: 255})
	if err != nil {
		t.Fatalf("EmitParticleBurst failed: %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("expected 5 particles, got %d", len(ids))
	}
	if n := len(ecs.GetEntitiesWith1[*components.ParticleComponent](em)); n != 5 {
		t.Errorf("expected 5 particle entities, got %d", n)
	}

	ids, err = EmitParticleBurst(em, nil, cfg, 3, 0, 0, 100, color.RGBA{})
	if err == nil {
		t.Error("expected error for nil random source")
	}
	if len(ids) != 0 {
		t.Errorf("expected no particles on failure, got %d", len(ids))
	}
}

func TestNewExplosionEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Explosion

	id, err := NewExplosionEntity(em, cfg, 120, 80, 135.5)
	if err != nil {
		t.Fatalf("NewExplosionEntity failed: %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 120 || pos.Y != 80 {
		t.Errorf("expected position (120, 80), got (%f, %f)", pos.X, pos.Y)
	}

	boom, ok := ecs.GetComponent[*components.ExplosionComponent](em, id)
	if !ok {
		t.Fatal("explosion should have ExplosionComponent")
	}
	if boom.Size != 135.5 || boom.SoundID != config.SoundBoom || boom.SoundPlayed {
		t.Errorf("unexpected explosion %+v", boom)
	}

	anim, ok := ecs.GetComponent[*components.SpriteAnimationComponent](em, id)
	if !ok {
		t.Fatal("explosion should have SpriteAnimationComponent")
	}
	if anim.ImageID != config.ImageBoom || anim.Frame != 0 || anim.MaxFrame != 5 || anim.FrameInterval != 200 {
		t.Errorf("unexpected animation %+v", anim)
	}
	if anim.CellWidth != 200 || anim.CellHeight != 179 {
		t.Errorf("expected 200x179 cells, got %.0fx%.0f", anim.CellWidth, anim.CellHeight)
	}

	if _, err := NewExplosionEntity(nil, cfg, 0, 0, 1); err == nil {
		t.Error("expected error for nil entity manager")
	}
}
