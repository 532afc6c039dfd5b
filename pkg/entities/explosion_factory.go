package entities

import (
	"fmt"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
)

// NewExplosionEntity 在被击中乌鸦的位置创建爆炸特效
//
// 参数:
//   - em: 实体管理器
//   - cfg: 爆炸配置（精灵单元尺寸、换帧间隔、最后一帧）
//   - x, y: 被击中乌鸦的左上角坐标
//   - size: 绘制边长（乌鸦宽度）
//
// 返回:
//   - ecs.EntityID: 爆炸实体ID
//   - error: 创建失败时返回错误
func NewExplosionEntity(em *ecs.EntityManager, cfg config.ExplosionConfig, x, y, size float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ExplosionComponent{
		Size:    size,
		SoundID: config.SoundBoom,
	})
	ecs.AddComponent(em, entityID, &components.SpriteAnimationComponent{
		ImageID:       config.ImageBoom,
		CellWidth:     cfg.SpriteWidth,
		CellHeight:    cfg.SpriteHeight,
		MaxFrame:      cfg.LastFrame,
		FrameInterval: cfg.FrameIntervalMs,
	})

	return entityID, nil
}
