package systems

import (
	"log"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
)

// Click 一次点击（屏幕坐标）
type Click struct {
	X, Y float64
}

// ClickSystem 缓存玩家点击并在帧首统一结算
//
// 输入回调只负责入队，实体集合只在 Process 中被修改。
type ClickSystem struct {
	entityManager *ecs.EntityManager
	gameState     *GameState
	index         *CollisionIndex
	explosionCfg  config.ExplosionConfig

	pending []Click
}

// NewClickSystem 创建点击系统
func NewClickSystem(em *ecs.EntityManager, gs *GameState, index *CollisionIndex, cfg *config.GameConfig) *ClickSystem {
	return &ClickSystem{
		entityManager: em,
		gameState:     gs,
		index:         index,
		explosionCfg:  cfg.Explosion,
		pending:       make([]Click, 0, 4),
	}
}

// QueueClick 记录一次点击，下一次 Process 时结算
func (s *ClickSystem) QueueClick(x, y float64) {
	s.pending = append(s.pending, Click{X: x, Y: y})
}

// Pending 返回尚未结算的点击数
func (s *ClickSystem) Pending() int {
	return len(s.pending)
}

// Process 结算所有待处理点击
//
// 命中时：标记乌鸦删除、分数加一、在乌鸦位置生成一个爆炸。未命中不做任何事。
// 返回: 本次命中的乌鸦数量
func (s *ClickSystem) Process() int {
	hits := 0
	for _, click := range s.pending {
		if s.gameState.IsGameOver() {
			break
		}
		if s.resolve(click) {
			hits++
		}
	}
	s.pending = s.pending[:0]
	return hits
}

func (s *ClickSystem) resolve(click Click) bool {
	entry, ok := s.index.Resolve(click.X, click.Y)
	if !ok {
		return false
	}

	s.index.Remove(entry.ID)
	if !s.entityManager.DestroyEntity(entry.ID) {
		return false
	}

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entry.ID); ok {
		clickable.IsEnabled = false
	}

	x, y, size := entry.X, entry.Y, entry.Width
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entry.ID); ok {
		x, y = pos.X, pos.Y
	}
	if raven, ok := ecs.GetComponent[*components.RavenComponent](s.entityManager, entry.ID); ok {
		size = raven.Width
	}

	s.gameState.AddScore(1)

	if _, err := entities.NewExplosionEntity(s.entityManager, s.explosionCfg, x, y, size); err != nil {
		log.Printf("[ClickSystem] Warning: failed to create explosion: %v", err)
	}

	log.Printf("[ClickSystem] Hit raven %d at (%.0f, %.0f), score=%d", entry.ID, click.X, click.Y, s.gameState.Score())
	return true
}
