package systems

import (
	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/ecs"
)

// SoundPlayer 播放一次性音效
//
// game.AudioManager 与终端前端的 beep 播放器都实现了该接口。
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// ExplosionSystem 推进爆炸动画，第一次更新时播放音效，播放完最后一帧后删除
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
	sounds        SoundPlayer
}

// NewExplosionSystem 创建爆炸系统，sounds 可为 nil（静音）
func NewExplosionSystem(em *ecs.EntityManager, sounds SoundPlayer) *ExplosionSystem {
	return &ExplosionSystem{
		entityManager: em,
		sounds:        sounds,
	}
}

// Update 更新所有爆炸
//
// 计时器超过间隔后减去一个间隔而不是清零，余量累计到下一帧，
// 因此第 N 帧恰好在 N*FrameInterval 时到达。
func (s *ExplosionSystem) Update(deltaTime float64) {
	explosions := ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.SpriteAnimationComponent](s.entityManager)

	for _, id := range explosions {
		explosion, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.SpriteAnimationComponent](s.entityManager, id)

		if !explosion.SoundPlayed {
			explosion.SoundPlayed = true
			if s.sounds != nil && explosion.SoundID != "" {
				s.sounds.PlaySound(explosion.SoundID)
			}
		}

		anim.FrameTime += deltaTime
		for anim.FrameInterval > 0 && anim.FrameTime >= anim.FrameInterval && anim.Frame <= anim.MaxFrame {
			anim.Frame++
			anim.FrameTime -= anim.FrameInterval
		}

		if anim.Frame > anim.MaxFrame {
			s.entityManager.DestroyEntity(id)
		}
	}
}
