package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawHitboxes 用身份颜色绘制命中索引（F3 切换）
// 每个框标注实体ID，右上角显示帧率与帧数
func (s *GameScene) drawHitboxes(screen *ebiten.Image) {
	for _, e := range s.loop.CollisionIndex().Entries() {
		vector.StrokeRect(screen, float32(e.X), float32(e.Y), float32(e.Width), float32(e.Height), 2, e.Color, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d", e.ID), int(e.X)+4, int(e.Y)+4)
	}

	info := fmt.Sprintf("FPS: %.1f  tick: %d  ravens: %d", ebiten.ActualFPS(), s.loop.Ticks(), len(s.loop.Ravens()))
	ebitenutil.DebugPrintAt(screen, info, s.screenWidth-220, 10)
}
