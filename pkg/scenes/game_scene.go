package scenes

import (
	"image"
	"log"
	"math/rand"

	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/game"
	"github.com/decker502/ravens/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameSceneOptions 创建 GameScene 的参数
type GameSceneOptions struct {
	Config        *config.GameConfig // 游戏配置（nil 时使用默认配置）
	ScreenWidth   int                // 逻辑屏幕宽度
	ScreenHeight  int                // 逻辑屏幕高度
	Rand          *rand.Rand         // 随机源（nil 时以当前时间为种子）
	DebugHitboxes bool               // 启动时显示命中框
}

// GameScene represents the main gameplay screen.
// It owns the GameLoop and is responsible for input polling and rendering;
// all game rules live in the systems package.
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager
	loop            *systems.GameLoop
	cfg             *config.GameConfig

	screenWidth  int
	screenHeight int

	// 精灵表（加载失败时为 nil，绘制占位矩形）
	ravenSheet *spriteSheet
	boomSheet  *spriteSheet

	hudFont *text.GoTextFace

	debugHitboxes bool
	pointers      []image.Point
}

// NewGameScene creates a new game scene.
//
// 参数:
//   - rm: 资源管理器（已加载 resources.yaml）
//   - sm: 场景管理器
//   - am: 音效管理器（可为 nil，此时爆炸无声）
//   - opts: 场景参数
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager, am *game.AudioManager, opts GameSceneOptions) *GameScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	// 避免把 nil 指针包装成非 nil 接口
	var sounds systems.SoundPlayer
	if am != nil {
		sounds = am
	}

	scene := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		audioManager:    am,
		cfg:             cfg,
		screenWidth:     opts.ScreenWidth,
		screenHeight:    opts.ScreenHeight,
		debugHitboxes:   opts.DebugHitboxes,
		loop:            systems.NewGameLoop(cfg, float64(opts.ScreenWidth), float64(opts.ScreenHeight), opts.Rand, sounds),
	}

	scene.loadResources()

	log.Printf("[GameScene] Created %dx%d scene (spawn every %.0fms)", opts.ScreenWidth, opts.ScreenHeight, cfg.Spawn.IntervalMs)
	return scene
}

// loadResources 加载精灵表、字体并预加载音效
// 任何资源缺失只记录警告，游戏照常运行
func (s *GameScene) loadResources() {
	if s.resourceManager == nil {
		return
	}

	if err := s.resourceManager.LoadResourceGroup(config.ResourceGroupGame); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}

	s.ravenSheet = s.loadSheet(config.ImageRaven)
	s.boomSheet = s.loadSheet(config.ImageBoom)

	face, fromFile, err := s.resourceManager.LoadFontByID(config.FontHUD, s.cfg.HUD.FontSize)
	if err != nil {
		log.Printf("[GameScene] Warning: no HUD font available: %v", err)
	} else if !fromFile {
		log.Printf("[GameScene] Using built-in HUD font")
	}
	s.hudFont = face

	if s.audioManager != nil {
		s.audioManager.PreloadSounds([]string{config.SoundBoom})
	}
}

func (s *GameScene) loadSheet(imageID string) *spriteSheet {
	img := s.resourceManager.GetImageByID(imageID)
	if img == nil {
		log.Printf("[GameScene] Warning: %s not loaded, drawing placeholders", imageID)
		return nil
	}
	return newSpriteSheet(img, s.resourceManager.SpriteCols(imageID))
}

// Update 处理输入并推进一帧
// deltaTime 为距上一帧的毫秒数
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debugHitboxes = !s.debugHitboxes
		log.Printf("[GameScene] Debug hitboxes: %v", s.debugHitboxes)
	}

	s.pointers = justPressedPointers(s.pointers)
	for _, p := range s.pointers {
		s.loop.QueueClick(float64(p.X), float64(p.Y))
	}

	s.loop.Update(deltaTime)
}

// Draw renders the game scene.
// Rendering order (back to front):
// 1. Background
// 2. Particles, ravens, explosions (entity order, larger ravens on top)
// 3. Debug hitboxes (optional)
// 4. Score and game over overlay
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.drawParticles(screen)
	s.drawRavens(screen)
	s.drawExplosions(screen)

	if s.debugHitboxes {
		s.drawHitboxes(screen)
	}

	s.drawScore(screen)
	if s.loop.IsGameOver() {
		s.drawGameOver(screen)
	}
}

// Loop 返回场景持有的游戏循环
func (s *GameScene) Loop() *systems.GameLoop {
	return s.loop
}

// DebugHitboxes 命中框是否可见
func (s *GameScene) DebugHitboxes() bool {
	return s.debugHitboxes
}
