package components

import "image/color"

// ParticleComponent 拖尾粒子
//
// 半径每帧固定增长，接近 MaxRadius 时删除；绘制透明度随半径线性衰减。
type ParticleComponent struct {
	Radius    float64    // 当前半径
	MaxRadius float64    // 最大半径
	SpeedX    float64    // 水平速度（像素/帧，向右）
	Growth    float64    // 每帧半径增量
	Margin    float64    // Radius > MaxRadius-Margin 时删除
	Color     color.RGBA // 继承自乌鸦的颜色
}
