package entities

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/utils"
)

// NewParticleEntity 创建一个拖尾粒子
//
// 粒子出现在乌鸦身体附近 (originX+size/2, originY+size/3)，并在 ±Jitter/2 范围内抖动。
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机源
//   - cfg: 粒子配置
//   - originX, originY: 乌鸦左上角坐标
//   - sourceSize: 乌鸦宽度，决定粒子的初始半径上限
//   - c: 继承自乌鸦的颜色
func NewParticleEntity(em *ecs.EntityManager, rng *rand.Rand, cfg config.ParticleConfig, originX, originY, sourceSize float64, c color.RGBA) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: originX + sourceSize/2 + utils.RandCentered(rng, cfg.Jitter),
		Y: originY + sourceSize/3 + utils.RandCentered(rng, cfg.Jitter),
	})
	ecs.AddComponent(em, entityID, &components.ParticleComponent{
		Radius:    rng.Float64() * sourceSize / 10,
		MaxRadius: utils.RandRange(rng, cfg.MaxRadiusMin, cfg.MaxRadiusRange),
		SpeedX:    utils.RandRange(rng, cfg.SpeedXMin, cfg.SpeedXRange),
		Growth:    cfg.Growth,
		Margin:    cfg.FadeMargin,
		Color:     c,
	})

	return entityID, nil
}

// EmitParticleBurst 一次性喷出 count 个粒子
func EmitParticleBurst(em *ecs.EntityManager, rng *rand.Rand, cfg config.ParticleConfig, count int, originX, originY, sourceSize float64, c color.RGBA) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		id, err := NewParticleEntity(em, rng, cfg, originX, originY, sourceSize, c)
		if err != nil {
			return ids, fmt.Errorf("failed to emit particle %d/%d: %w", i+1, count, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
