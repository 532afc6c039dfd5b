package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/ravens/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// scoreText 分数文字
func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// gameOverLines 结束画面的两行文字
func gameOverLines(score int) [2]string {
	return [2]string{"GAME OVER", fmt.Sprintf("Your Score was: %d", score)}
}

// drawShadowedText 先画黑字，再在 (+shift, +shift) 处画白字
// (x, y) 为基线位置
func (s *GameScene) drawShadowedText(screen *ebiten.Image, str string, x, y float64, align text.Align) {
	if s.hudFont == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}

	ascent := s.hudFont.Metrics().HAscent
	shift := float64(config.TextShadowShift)

	for _, layer := range []struct {
		dx, dy float64
		c      color.Color
	}{
		{0, 0, color.Black},
		{shift, shift, color.White},
	} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+layer.dx, y+layer.dy-ascent)
		op.ColorScale.ScaleWithColor(layer.c)
		op.PrimaryAlign = align
		text.Draw(screen, str, s.hudFont, op)
	}
}

// drawScore 左上角分数
func (s *GameScene) drawScore(screen *ebiten.Image) {
	s.drawShadowedText(screen, scoreText(s.loop.Score()), config.ScoreTextX, config.ScoreTextY, text.AlignStart)
}

// drawGameOver 屏幕中央的结束画面
func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	lines := gameOverLines(s.loop.Score())
	cx := float64(s.screenWidth) / 2
	cy := float64(s.screenHeight) / 2

	s.drawShadowedText(screen, lines[0], cx, cy, text.AlignCenter)
	s.drawShadowedText(screen, lines[1], cx, cy+s.cfg.HUD.FontSize, text.AlignCenter)
}
