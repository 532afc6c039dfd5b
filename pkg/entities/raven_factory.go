package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/utils"
)

// RavenParams 创建乌鸦所需的全部参数
//
// SpawnRaven 随机生成这些参数；测试可以直接构造以获得确定的乌鸦。
type RavenParams struct {
	X, Y         float64
	SizeModifier float64
	DirectionX   float64
	DirectionY   float64
	FlapInterval float64
	HasTrail     bool
}

// NewRavenEntity 按给定参数创建乌鸦实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 乌鸦配置（精灵尺寸、最大帧）
//   - palette: 身份颜色调色板，颜色以实体ID为持有者
//   - p: 乌鸦参数
//
// 返回:
//   - ecs.EntityID: 乌鸦实体ID
//   - error: 参数无效时返回错误
func NewRavenEntity(em *ecs.EntityManager, cfg config.RavenConfig, palette *utils.ColorPalette, p RavenParams) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if palette == nil {
		return 0, fmt.Errorf("color palette cannot be nil")
	}
	if p.SizeModifier <= 0 {
		return 0, fmt.Errorf("raven size modifier must be positive, got %.2f", p.SizeModifier)
	}

	width := cfg.SpriteWidth * p.SizeModifier
	height := cfg.SpriteHeight * p.SizeModifier

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: p.X, Y: p.Y})
	ecs.AddComponent(em, entityID, &components.RavenComponent{
		SizeModifier: p.SizeModifier,
		Width:        width,
		Height:       height,
		DirectionX:   p.DirectionX,
		DirectionY:   p.DirectionY,
		HasTrail:     p.HasTrail,
	})
	ecs.AddComponent(em, entityID, &components.SpriteAnimationComponent{
		ImageID:       config.ImageRaven,
		CellWidth:     cfg.SpriteWidth,
		CellHeight:    cfg.SpriteHeight,
		MaxFrame:      cfg.MaxFrame,
		FrameInterval: p.FlapInterval,
	})
	ecs.AddComponent(em, entityID, &components.IdentityColorComponent{
		Color: palette.Acquire(uint64(entityID)),
	})
	ecs.AddComponent(em, entityID, &components.ClickableComponent{
		Width:     width,
		Height:    height,
		IsEnabled: true,
	})

	return entityID, nil
}

// RandomRavenParams 在屏幕右边缘随机生成乌鸦参数
//
// 垂直位置保证整只乌鸦在屏幕内；扇翅间隔随机，使各乌鸦动画相位错开。
func RandomRavenParams(rng *rand.Rand, cfg config.RavenConfig, screenWidth, screenHeight float64) RavenParams {
	sizeModifier := utils.RandRange(rng, cfg.MinScale, cfg.ScaleRange)
	height := cfg.SpriteHeight * sizeModifier

	return RavenParams{
		X:            screenWidth,
		Y:            rng.Float64() * (screenHeight - height),
		SizeModifier: sizeModifier,
		DirectionX:   utils.RandRange(rng, cfg.SpeedXMin, cfg.SpeedXRange),
		DirectionY:   utils.RandCentered(rng, cfg.SpeedYRange),
		FlapInterval: utils.RandRange(rng, cfg.FlapIntervalMin, cfg.FlapIntervalRange),
		HasTrail:     rng.Float64() < cfg.TrailChance,
	}
}

// SpawnRaven 在屏幕右边缘生成一只随机乌鸦
func SpawnRaven(em *ecs.EntityManager, rng *rand.Rand, cfg config.RavenConfig, palette *utils.ColorPalette, screenWidth, screenHeight float64) (ecs.EntityID, error) {
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}
	return NewRavenEntity(em, cfg, palette, RandomRavenParams(rng, cfg, screenWidth, screenHeight))
}
