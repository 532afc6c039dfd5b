package components

// SpriteAnimationComponent 横向精灵表的帧动画状态
//
// 当前帧在精灵表中的裁剪区域为 (Frame*CellWidth, 0, CellWidth, CellHeight)。
// 时间单位与 GameLoop 的 deltaTime 一致（毫秒）。
type SpriteAnimationComponent struct {
	ImageID       string  // 资源ID，如 "IMAGE_RAVEN"
	CellWidth     float64 // 单元宽度（像素）
	CellHeight    float64 // 单元高度（像素）
	Frame         int     // 当前帧索引
	MaxFrame      int     // 最后一帧索引
	FrameTime     float64 // 当前帧已累计时间
	FrameInterval float64 // 换帧间隔
}
