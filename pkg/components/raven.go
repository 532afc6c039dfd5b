package components

// RavenComponent 乌鸦的运动与外形数据
//
// 宽高由 SizeModifier 乘以精灵单元尺寸得到，出生后不再变化。
// DirectionX 为正数，表示每帧向左移动的像素数。
type RavenComponent struct {
	SizeModifier float64 // 缩放因子 [0.4, 1.0)
	Width        float64 // 缩放后宽度（像素）
	Height       float64 // 缩放后高度（像素）
	DirectionX   float64 // 水平速度（像素/帧，向左）
	DirectionY   float64 // 垂直速度（像素/帧，碰到上下边界反向）
	HasTrail     bool    // 每次扇翅膀时是否喷出粒子拖尾
}
