package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 由 SceneManager 驱动的一屏内容
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的毫秒数
	Update(deltaTime float64)

	// Draw 绘制到 screen；测试中 screen 可能为 nil
	Draw(screen *ebiten.Image)
}
