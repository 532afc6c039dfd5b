package utils

// FrameClock 把单调递增的时间戳转换为帧间隔
//
// 第一帧相对于时间戳 0 计算，与浏览器 requestAnimationFrame 的语义一致。
type FrameClock struct {
	lastTime float64
}

// Tick 记录时间戳并返回距上一帧的间隔（与时间戳同单位）
func (c *FrameClock) Tick(timestamp float64) float64 {
	deltaTime := timestamp - c.lastTime
	c.lastTime = timestamp
	if deltaTime < 0 {
		return 0
	}
	return deltaTime
}

// LastTime 返回上一帧的时间戳
func (c *FrameClock) LastTime() float64 {
	return c.lastTime
}
