package systems

import (
	"log"
	"math/rand"
	"sort"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
	"github.com/decker502/ravens/pkg/utils"
)

// SpawnSystem 按固定间隔在右边缘生成乌鸦
//
// 每次生成后把乌鸦按宽度升序重排，大（近）的乌鸦后绘制，位于上层。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	palette       *utils.ColorPalette
	ravenConfig   config.RavenConfig
	interval      float64
	screenWidth   float64
	screenHeight  float64

	timer float64
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, rng *rand.Rand, palette *utils.ColorPalette, cfg *config.GameConfig, screenWidth, screenHeight float64) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		rng:           rng,
		palette:       palette,
		ravenConfig:   cfg.Raven,
		interval:      cfg.Spawn.IntervalMs,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// Update 累计时间，超过间隔时生成一只乌鸦
// 返回: 新乌鸦ID，本帧未生成时 ok 为 false
func (s *SpawnSystem) Update(deltaTime float64) (id ecs.EntityID, ok bool) {
	s.timer += deltaTime
	if s.timer <= s.interval {
		return 0, false
	}

	id, err := entities.SpawnRaven(s.entityManager, s.rng, s.ravenConfig, s.palette, s.screenWidth, s.screenHeight)
	s.timer = 0
	if err != nil {
		log.Printf("[SpawnSystem] Warning: failed to spawn raven: %v", err)
		return 0, false
	}

	SortRavensBySize(s.entityManager)
	return id, true
}

// Timer 返回距上次生成累计的时间
func (s *SpawnSystem) Timer() float64 {
	return s.timer
}

// SortRavensBySize 按宽度升序稳定重排乌鸦的绘制顺序
func SortRavensBySize(em *ecs.EntityManager) {
	ravens := ecs.GetEntitiesWith1[*components.RavenComponent](em)
	widths := make(map[ecs.EntityID]float64, len(ravens))
	for _, id := range ravens {
		raven, _ := ecs.GetComponent[*components.RavenComponent](em, id)
		widths[id] = raven.Width
	}

	sort.SliceStable(ravens, func(i, j int) bool {
		return widths[ravens[i]] < widths[ravens[j]]
	})
	em.ReorderEntities(ravens)
}
