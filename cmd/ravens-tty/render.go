package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbBackground = colorful.Color{R: 0.06, G: 0.08, B: 0.13}
	rgbRavenBody  = colorful.Color{R: 0.16, G: 0.16, B: 0.2}
	rgbBoomHot    = colorful.Color{R: 1, G: 0.95, B: 0.55}
	rgbBoomCool   = colorful.Color{R: 0.85, G: 0.2, B: 0.05}
	rgbText       = colorful.Color{R: 1, G: 1, B: 1}
)

// 按动画帧循环的翅膀字形
var wingGlyphs = []string{`\v/`, `-v-`, `/v\`, `/v\`, `-v-`, `\v/`}

var sparkRunes = []rune{'*', '+', 'x', '*', '.', '.'}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromRGBA(c color.RGBA) colorful.Color {
	cc, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cc
}

// renderer 把 GameLoop 的实体画到 tcell 屏幕上
//
// 绘制顺序与图形前端一致：背景、粒子、乌鸦、爆炸、调试层、分数、结束文字。
type renderer struct {
	screen tcell.Screen
	loop   *systems.GameLoop
	debug  bool
}

func (r *renderer) viewport() viewport {
	cols, rows := r.screen.Size()
	w, h := r.loop.ScreenSize()
	return viewport{worldW: w, worldH: h, cols: cols, rows: rows}
}

func (r *renderer) draw() {
	vp := r.viewport()
	bg := tcell.StyleDefault.Background(tcellColor(rgbBackground))
	r.screen.Fill(' ', bg)
	if !vp.valid() {
		return
	}

	r.drawParticles(vp)
	r.drawRavens(vp)
	r.drawExplosions(vp)
	if r.debug {
		r.drawHitboxes(vp)
	}
	r.drawScore(vp)
	if r.loop.IsGameOver() {
		r.drawGameOver(vp)
	}
}

// drawParticles 粒子画成一个字符，颜色按透明度向背景混合
func (r *renderer) drawParticles(vp viewport) {
	em := r.loop.EntityManager()
	for _, id := range r.loop.Particles() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)

		col, row := vp.toCell(pos.X, pos.Y)
		if col < 0 || col >= vp.cols || row < 0 || row >= vp.rows {
			continue
		}

		alpha := systems.ParticleOpacity(p.Radius, p.MaxRadius)
		fg := rgbBackground.BlendRgb(fromRGBA(p.Color), alpha)
		r.setCell(col, row, particleRune(p.Radius, p.MaxRadius), fg, rgbBackground)
	}
}

func particleRune(radius, maxRadius float64) rune {
	switch {
	case maxRadius <= 0 || radius < maxRadius/3:
		return '·'
	case radius < maxRadius*2/3:
		return '•'
	default:
		return 'o'
	}
}

// drawRavens 乌鸦画成实心块，中间一行是随帧变化的翅膀
func (r *renderer) drawRavens(vp viewport) {
	em := r.loop.EntityManager()
	for _, id := range r.loop.Ravens() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		raven, _ := ecs.GetComponent[*components.RavenComponent](em, id)

		c0, r0, c1, r1 := vp.cells(pos.X, pos.Y, raven.Width, raven.Height)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				r.setCell(col, row, ' ', rgbText, rgbRavenBody)
			}
		}

		frame := 0
		if anim, ok := ecs.GetComponent[*components.SpriteAnimationComponent](em, id); ok {
			frame = anim.Frame
		}
		glyph := wingGlyphs[((frame%len(wingGlyphs))+len(wingGlyphs))%len(wingGlyphs)]
		midCol := (c0+c1)/2 - len(glyph)/2
		midRow := (r0 + r1) / 2
		if r1 > r0 {
			r.drawString(midCol, midRow, glyph, c0, c1, rgbText, rgbRavenBody)
		}
	}
}

// drawExplosions 爆炸画成由中心向外扩散的火花，颜色随帧由亮黄变为暗红
func (r *renderer) drawExplosions(vp viewport) {
	em := r.loop.EntityManager()
	for _, id := range r.loop.Explosions() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		boom, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		anim, ok := ecs.GetComponent[*components.SpriteAnimationComponent](em, id)
		if !ok {
			continue
		}

		progress := 0.0
		if anim.MaxFrame > 0 {
			progress = math.Min(float64(anim.Frame)/float64(anim.MaxFrame), 1)
		}
		fg := rgbBoomHot.BlendHcl(rgbBoomCool, progress).Clamped()
		ch := sparkRunes[clampInt(anim.Frame, 0, len(sparkRunes)-1)]

		// 与图形前端一致，精灵向上偏移四分之一边长
		x, y := pos.X, pos.Y-boom.Size/4
		cx, cy := x+boom.Size/2, y+boom.Size/2
		radius := boom.Size / 2 * (0.4 + 0.6*progress)

		c0, r0, c1, r1 := vp.cells(x, y, boom.Size, boom.Size)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				wx, wy := vp.toWorld(col, row)
				if math.Hypot(wx-cx, wy-cy) > radius {
					continue
				}
				r.setCell(col, row, ch, fg, rgbBackground)
			}
		}
	}
}

// drawHitboxes 用身份颜色画出命中盒四角
func (r *renderer) drawHitboxes(vp viewport) {
	for _, e := range r.loop.CollisionIndex().Entries() {
		c0, r0, c1, r1 := vp.cells(e.X, e.Y, e.Width, e.Height)
		if c1 <= c0 || r1 <= r0 {
			continue
		}
		fg := fromRGBA(e.Color)
		for _, corner := range [][2]int{{c0, r0}, {c1 - 1, r0}, {c0, r1 - 1}, {c1 - 1, r1 - 1}} {
			r.setCell(corner[0], corner[1], '+', fg, rgbRavenBody)
		}
	}

	info := fmt.Sprintf("tick:%d ravens:%d", r.loop.Ticks(), r.loop.CollisionIndex().Len())
	r.drawString(vp.cols-len(info)-1, 0, info, 0, vp.cols, rgbText, rgbBackground)
}

func (r *renderer) drawScore(vp viewport) {
	r.drawString(1, 0, scoreText(r.loop.Score()), 0, vp.cols, rgbText, rgbBackground)
}

func (r *renderer) drawGameOver(vp viewport) {
	lines := gameOverLines(r.loop.Score())
	top := vp.rows/2 - len(lines)/2
	for i, line := range lines {
		col := vp.cols/2 - len([]rune(line))/2
		r.drawString(col, top+i, line, 0, vp.cols, rgbText, rgbBackground)
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func gameOverLines(score int) []string {
	return []string{"GAME OVER", fmt.Sprintf("Your Score was: %d", score), "press q to quit"}
}

// drawString 在 [minCol, maxCol) 范围内横向写字
func (r *renderer) drawString(col, row int, s string, minCol, maxCol int, fg, bg colorful.Color) {
	for _, ch := range s {
		if col >= minCol && col < maxCol {
			r.setCell(col, row, ch, fg, bg)
		}
		col++
	}
}

func (r *renderer) setCell(col, row int, ch rune, fg, bg colorful.Color) {
	style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	r.screen.SetContent(col, row, ch, nil, style)
}
