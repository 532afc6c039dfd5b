package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultGameConfigYAML []byte

// GameConfig 游戏参数配置
//
// 默认值来自内嵌的 default.yaml，用户配置文件只需写出要覆盖的键。
// 时间单位为毫秒，速度单位为像素/帧。
type GameConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Raven     RavenConfig     `yaml:"raven"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Particle  ParticleConfig  `yaml:"particle"`
	HUD       HUDConfig       `yaml:"hud"`
	Audio     AudioConfig     `yaml:"audio"`
}

// ScreenConfig 逻辑屏幕尺寸，0 表示由前端决定
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig 乌鸦生成节奏
type SpawnConfig struct {
	IntervalMs float64 `yaml:"intervalMs"`
}

// RavenConfig 乌鸦外形、速度与拖尾参数
//
// 随机量均为 Min + rand*Range 的形式。
type RavenConfig struct {
	SpriteWidth       float64 `yaml:"spriteWidth"`
	SpriteHeight      float64 `yaml:"spriteHeight"`
	MaxFrame          int     `yaml:"maxFrame"`
	MinScale          float64 `yaml:"minScale"`
	ScaleRange        float64 `yaml:"scaleRange"`
	SpeedXMin         float64 `yaml:"speedXMin"`
	SpeedXRange       float64 `yaml:"speedXRange"`
	SpeedYRange       float64 `yaml:"speedYRange"` // 垂直速度在 [-Range/2, Range/2) 内
	FlapIntervalMin   float64 `yaml:"flapIntervalMin"`
	FlapIntervalRange float64 `yaml:"flapIntervalRange"`
	TrailChance       float64 `yaml:"trailChance"`
	TrailBurst        int     `yaml:"trailBurst"`
}

// ExplosionConfig 爆炸精灵表参数
type ExplosionConfig struct {
	SpriteWidth     float64 `yaml:"spriteWidth"`
	SpriteHeight    float64 `yaml:"spriteHeight"`
	FrameIntervalMs float64 `yaml:"frameIntervalMs"`
	LastFrame       int     `yaml:"lastFrame"`
}

// ParticleConfig 拖尾粒子参数
type ParticleConfig struct {
	Jitter         float64 `yaml:"jitter"`
	Growth         float64 `yaml:"growth"`
	FadeMargin     float64 `yaml:"fadeMargin"`
	MaxRadiusMin   float64 `yaml:"maxRadiusMin"`
	MaxRadiusRange float64 `yaml:"maxRadiusRange"`
	SpeedXMin      float64 `yaml:"speedXMin"`
	SpeedXRange    float64 `yaml:"speedXRange"`
}

// HUDConfig 分数文字参数
type HUDConfig struct {
	FontSize float64 `yaml:"fontSize"`
}

// AudioConfig 音量参数
type AudioConfig struct {
	SoundVolume float64 `yaml:"soundVolume"`
}

// DefaultGameConfig 返回内嵌的默认配置
func DefaultGameConfig() *GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameConfigYAML, &cfg); err != nil {
		// default.yaml 随二进制发布，解析失败属于构建错误
		panic(fmt.Sprintf("invalid embedded default.yaml: %v", err))
	}
	return &cfg
}

// LoadGameConfig 加载游戏配置
//
// 参数:
//   - path: 配置文件路径，为空时直接返回默认配置
//
// 返回:
//   - *GameConfig: 默认值叠加文件内容后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("screen size must not be negative, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Spawn.IntervalMs <= 0 {
		return fmt.Errorf("spawn.intervalMs must be positive, got %.1f", c.Spawn.IntervalMs)
	}
	if c.Raven.SpriteWidth <= 0 || c.Raven.SpriteHeight <= 0 {
		return fmt.Errorf("raven sprite size must be positive, got %.1fx%.1f", c.Raven.SpriteWidth, c.Raven.SpriteHeight)
	}
	if c.Raven.MinScale <= 0 || c.Raven.ScaleRange < 0 {
		return fmt.Errorf("raven scale range invalid: min(%.2f) range(%.2f)", c.Raven.MinScale, c.Raven.ScaleRange)
	}
	if c.Raven.MaxFrame < 0 {
		return fmt.Errorf("raven.maxFrame must not be negative, got %d", c.Raven.MaxFrame)
	}
	if c.Raven.SpeedXMin <= 0 {
		return fmt.Errorf("raven.speedXMin must be positive, got %.1f", c.Raven.SpeedXMin)
	}
	if c.Raven.TrailChance < 0 || c.Raven.TrailChance > 1 {
		return fmt.Errorf("raven.trailChance must be within [0, 1], got %.2f", c.Raven.TrailChance)
	}
	if c.Raven.TrailBurst < 0 {
		return fmt.Errorf("raven.trailBurst must not be negative, got %d", c.Raven.TrailBurst)
	}
	if c.Explosion.FrameIntervalMs <= 0 {
		return fmt.Errorf("explosion.frameIntervalMs must be positive, got %.1f", c.Explosion.FrameIntervalMs)
	}
	if c.Explosion.LastFrame < 0 {
		return fmt.Errorf("explosion.lastFrame must not be negative, got %d", c.Explosion.LastFrame)
	}
	if c.Particle.Growth <= 0 {
		return fmt.Errorf("particle.growth must be positive, got %.2f", c.Particle.Growth)
	}
	if c.Particle.MaxRadiusMin <= c.Particle.FadeMargin {
		return fmt.Errorf("particle.maxRadiusMin(%.1f) must exceed fadeMargin(%.1f)", c.Particle.MaxRadiusMin, c.Particle.FadeMargin)
	}
	if c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio.soundVolume must be within [0, 1], got %.2f", c.Audio.SoundVolume)
	}
	return nil
}

// ScreenSize 返回逻辑屏幕尺寸，未配置的维度使用 fallback
func (c *GameConfig) ScreenSize(fallbackWidth, fallbackHeight int) (int, int) {
	w, h := c.Screen.Width, c.Screen.Height
	if w == 0 {
		w = fallbackWidth
	}
	if h == 0 {
		h = fallbackHeight
	}
	return w, h
}
