package config

// 窗口与资源常量

const (
	// WindowTitle 窗口标题
	WindowTitle = "Raven Shoot"

	// DefaultScreenWidth / DefaultScreenHeight 在无法取得显示器尺寸时使用（如终端前端）
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
)

// 资源ID，对应 assets/config/resources.yaml
const (
	ImageRaven = "IMAGE_RAVEN"
	ImageBoom  = "IMAGE_BOOM"
	SoundBoom  = "SOUND_BOOM"
	FontHUD    = "FONT_HUD"

	// ResourceGroupGame 游戏启动时加载的资源组
	ResourceGroupGame = "game"
)

// HUD 文字位置
const (
	ScoreTextX      = 50.0
	ScoreTextY      = 75.0
	TextShadowShift = 5.0
)
