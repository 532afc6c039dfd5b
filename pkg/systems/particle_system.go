package systems

import (
	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/ecs"
)

// ParticleSystem 更新拖尾粒子：向右漂移、半径增长、接近最大半径时删除
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 每帧调用一次
//
// 粒子运动按帧计算，与 deltaTime 无关。
func (s *ParticleSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ParticleComponent](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)

		pos.X += p.SpeedX
		p.Radius += p.Growth
		if p.Radius > p.MaxRadius-p.Margin {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// ParticleOpacity 粒子透明度：半径为 0 时为 1，达到最大半径时为 0，中间线性插值
func ParticleOpacity(radius, maxRadius float64) float64 {
	if maxRadius <= 0 {
		return 0
	}
	alpha := 1 - radius/maxRadius
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
