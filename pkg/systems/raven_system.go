package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
)

// RavenSystem 更新乌鸦：飞行、上下边界反弹、扇翅动画、拖尾喷射与逃脱判定
type RavenSystem struct {
	entityManager *ecs.EntityManager
	gameState     *GameState
	rng           *rand.Rand
	ravenConfig   config.RavenConfig
	particleCfg   config.ParticleConfig
	screenHeight  float64
}

// NewRavenSystem 创建乌鸦系统
func NewRavenSystem(em *ecs.EntityManager, gs *GameState, rng *rand.Rand, cfg *config.GameConfig, screenHeight float64) *RavenSystem {
	return &RavenSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rng,
		ravenConfig:   cfg.Raven,
		particleCfg:   cfg.Particle,
		screenHeight:  screenHeight,
	}
}

// Update 更新所有乌鸦
//
// 位移按帧计算（不乘 deltaTime），只有扇翅动画按经过的时间推进。
func (s *RavenSystem) Update(deltaTime float64) {
	ravens := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.RavenComponent,
		*components.SpriteAnimationComponent,
	](s.entityManager)

	for _, id := range ravens {
		// 已被击中的乌鸦本帧末会被清理
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		raven, _ := ecs.GetComponent[*components.RavenComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.SpriteAnimationComponent](s.entityManager, id)

		if pos.Y < 0 || pos.Y > s.screenHeight-raven.Height {
			raven.DirectionY = -raven.DirectionY
		}
		pos.X -= raven.DirectionX
		pos.Y += raven.DirectionY

		anim.FrameTime += deltaTime
		if anim.FrameTime > anim.FrameInterval {
			if anim.Frame > anim.MaxFrame {
				anim.Frame = 0
			} else {
				anim.Frame++
			}
			anim.FrameTime = 0

			if raven.HasTrail {
				s.emitTrail(id, pos, raven)
			}
		}

		if pos.X < -raven.Width {
			s.escape(id)
		}
	}
}

func (s *RavenSystem) emitTrail(id ecs.EntityID, pos *components.PositionComponent, raven *components.RavenComponent) {
	identity, ok := ecs.GetComponent[*components.IdentityColorComponent](s.entityManager, id)
	if !ok {
		return
	}
	if _, err := entities.EmitParticleBurst(s.entityManager, s.rng, s.particleCfg,
		s.ravenConfig.TrailBurst, pos.X, pos.Y, raven.Width, identity.Color); err != nil {
		log.Printf("[RavenSystem] Warning: failed to emit trail for raven %d: %v", id, err)
	}
}

// escape 乌鸦飞出左边界：标记删除并结束游戏，各只发生一次
func (s *RavenSystem) escape(id ecs.EntityID) {
	if !s.entityManager.DestroyEntity(id) {
		return
	}
	if s.gameState.MarkGameOver() {
		log.Printf("[RavenSystem] Raven %d escaped, game over", id)
	}
}
