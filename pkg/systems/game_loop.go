package systems

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
	"github.com/decker502/ravens/pkg/utils"
)

// GameLoop 每帧的编排：点击结算、生成、更新、压缩、重建命中索引
//
// 所有方法都应在同一个 goroutine 中调用（Ebitengine 的 Update，或终端前端的主循环）。
// 输入通过 QueueClick 入队，在下一帧开始时结算。
type GameLoop struct {
	entityManager *ecs.EntityManager
	gameState     *GameState
	palette       *utils.ColorPalette
	index         *CollisionIndex
	clock         utils.FrameClock
	cfg           *config.GameConfig

	screenWidth  float64
	screenHeight float64

	spawnSystem     *SpawnSystem
	particleSystem  *ParticleSystem
	ravenSystem     *RavenSystem
	explosionSystem *ExplosionSystem
	clickSystem     *ClickSystem

	ticks int
}

// NewGameLoop 创建游戏循环
//
// 参数:
//   - cfg: 游戏配置（nil 时使用默认配置）
//   - screenWidth, screenHeight: 逻辑屏幕尺寸
//   - rng: 随机源（nil 时以当前时间为种子）
//   - sounds: 音效播放器（可为 nil）
func NewGameLoop(cfg *config.GameConfig, screenWidth, screenHeight float64, rng *rand.Rand, sounds SoundPlayer) *GameLoop {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	gs := &GameState{}
	palette := utils.NewColorPalette()
	index := NewCollisionIndex()

	return &GameLoop{
		entityManager:   em,
		gameState:       gs,
		palette:         palette,
		index:           index,
		cfg:             cfg,
		screenWidth:     screenWidth,
		screenHeight:    screenHeight,
		spawnSystem:     NewSpawnSystem(em, rng, palette, cfg, screenWidth, screenHeight),
		particleSystem:  NewParticleSystem(em),
		ravenSystem:     NewRavenSystem(em, gs, rng, cfg, screenHeight),
		explosionSystem: NewExplosionSystem(em, sounds),
		clickSystem:     NewClickSystem(em, gs, index, cfg),
	}
}

// Tick 以时间戳（毫秒）驱动一帧
func (g *GameLoop) Tick(timestamp float64) {
	g.Update(g.clock.Tick(timestamp))
}

// Update 推进一帧，deltaTime 为距上一帧的毫秒数
//
// 结束后不再处理任何更新。
func (g *GameLoop) Update(deltaTime float64) {
	if g.gameState.IsGameOver() {
		return
	}
	g.ticks++

	g.clickSystem.Process()
	g.spawnSystem.Update(deltaTime)

	// 更新顺序：粒子、乌鸦、爆炸。乌鸦本帧喷出的粒子下一帧才开始更新
	g.particleSystem.Update()
	g.ravenSystem.Update(deltaTime)
	g.explosionSystem.Update(deltaTime)

	g.compact()
	g.index.Rebuild(g.entityManager)

	if g.gameState.IsGameOver() {
		log.Printf("[GameLoop] Game over after %d ticks, final score: %d", g.ticks, g.gameState.Score())
	}
}

// compact 归还被删除乌鸦的颜色并清理所有标记删除的实体
func (g *GameLoop) compact() {
	for _, id := range g.entityManager.MarkedEntities() {
		if ecs.HasComponent[*components.IdentityColorComponent](g.entityManager, id) {
			g.palette.Release(uint64(id))
		}
	}
	g.entityManager.RemoveMarkedEntities()
}

// QueueClick 记录一次点击（屏幕坐标）
func (g *GameLoop) QueueClick(x, y float64) {
	if g.gameState.IsGameOver() {
		return
	}
	g.clickSystem.QueueClick(x, y)
}

// AddRaven 按给定参数放入一只乌鸦并重排绘制顺序
func (g *GameLoop) AddRaven(p entities.RavenParams) (ecs.EntityID, error) {
	id, err := entities.NewRavenEntity(g.entityManager, g.cfg.Raven, g.palette, p)
	if err != nil {
		return 0, fmt.Errorf("failed to add raven: %w", err)
	}
	SortRavensBySize(g.entityManager)
	g.index.Rebuild(g.entityManager)
	return id, nil
}

// Score 当前分数
func (g *GameLoop) Score() int {
	return g.gameState.Score()
}

// State 当前循环状态
func (g *GameLoop) State() LoopState {
	return g.gameState.State()
}

// IsGameOver 是否已结束
func (g *GameLoop) IsGameOver() bool {
	return g.gameState.IsGameOver()
}

// Ticks 已处理的帧数
func (g *GameLoop) Ticks() int {
	return g.ticks
}

// EntityManager 供渲染器按绘制顺序读取实体
func (g *GameLoop) EntityManager() *ecs.EntityManager {
	return g.entityManager
}

// CollisionIndex 当前帧的命中索引
func (g *GameLoop) CollisionIndex() *CollisionIndex {
	return g.index
}

// Config 游戏配置
func (g *GameLoop) Config() *config.GameConfig {
	return g.cfg
}

// ScreenSize 逻辑屏幕尺寸
func (g *GameLoop) ScreenSize() (float64, float64) {
	return g.screenWidth, g.screenHeight
}

// Ravens 按绘制顺序返回乌鸦
func (g *GameLoop) Ravens() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.RavenComponent](g.entityManager)
}

// Particles 按绘制顺序返回粒子
func (g *GameLoop) Particles() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.ParticleComponent](g.entityManager)
}

// Explosions 按绘制顺序返回爆炸
func (g *GameLoop) Explosions() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.ExplosionComponent](g.entityManager)
}
