// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main 只负责解析参数和启动 Ebitengine。
package app

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/game"
	"github.com/decker502/ravens/pkg/scenes"
	"github.com/decker502/ravens/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 全局音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 游戏参数（nil 时使用默认配置）
	Game *config.GameConfig
	// ResourcesPath 资源配置文件路径
	ResourcesPath string
	// ScreenWidth / ScreenHeight 逻辑屏幕尺寸（必须为正数）
	ScreenWidth  int
	ScreenHeight int
	// Seed 随机种子，0 表示以当前时间为种子
	Seed int64
	// DebugHitboxes 启动时显示命中框
	DebugHitboxes bool
	// Mute 不创建音频上下文
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameScene    *scenes.GameScene
	verbose      bool

	screenWidth  int
	screenHeight int

	// 以应用启动时刻为零点的毫秒时间戳
	start time.Time
	clock utils.FrameClock
	now   func() time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg := cfg.Game
	if gameCfg == nil {
		gameCfg = config.DefaultGameConfig()
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		cfg.ScreenWidth, cfg.ScreenHeight = gameCfg.ScreenSize(config.DefaultScreenWidth, config.DefaultScreenHeight)
	}

	// 初始化音频上下文（静音时不占用音频设备）
	var audioContext *audio.Context
	if !cfg.Mute {
		audioContext = audio.NewContext(audioSampleRate)
	}

	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(cfg.ResourcesPath); err != nil {
		// 资源缺失时仍可用占位图形游玩
		log.Printf("[App] Warning: %v", err)
	}

	var audioManager *game.AudioManager
	if audioContext != nil {
		audioManager = game.NewAudioManager(resourceManager, gameCfg.Audio.SoundVolume)
		log.Printf("[App] AudioManager initialized")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	sceneManager := game.NewSceneManager()
	gameScene := scenes.NewGameScene(resourceManager, sceneManager, audioManager, scenes.GameSceneOptions{
		Config:        gameCfg,
		ScreenWidth:   cfg.ScreenWidth,
		ScreenHeight:  cfg.ScreenHeight,
		Rand:          rand.New(rand.NewSource(seed)),
		DebugHitboxes: cfg.DebugHitboxes,
	})
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		gameScene:    gameScene,
		verbose:      cfg.Verbose,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
		start:        time.Now(),
		now:          time.Now,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.screenWidth, a.screenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.screenWidth, a.screenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.nextDeltaTime())
	return nil
}

// nextDeltaTime 返回距上一帧的真实毫秒数
func (a *App) nextDeltaTime() float64 {
	timestamp := float64(a.now().Sub(a.start)) / float64(time.Millisecond)
	return a.clock.Tick(timestamp)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 画布尺寸在启动时确定，之后不随窗口变化
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GameScene 返回游戏场景
func (a *App) GameScene() *scenes.GameScene {
	return a.gameScene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
