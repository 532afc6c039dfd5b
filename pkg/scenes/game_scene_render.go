package scenes

import (
	"image"
	"image/color"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor  = color.RGBA{R: 186, G: 214, B: 230, A: 255}
	placeholderColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	boomFallback     = color.RGBA{R: 255, G: 170, B: 40, A: 255}
)

// spriteSheet 单行横向排列的精灵表
type spriteSheet struct {
	image  *ebiten.Image
	cols   int
	frameW int
	frameH int
}

func newSpriteSheet(img *ebiten.Image, cols int) *spriteSheet {
	if cols < 1 {
		cols = 1
	}
	b := img.Bounds()
	return &spriteSheet{
		image:  img,
		cols:   cols,
		frameW: b.Dx() / cols,
		frameH: b.Dy(),
	}
}

// frame 返回第 n 帧的子图，越界时取最后一帧
func (ss *spriteSheet) frame(n int) *ebiten.Image {
	n = clampFrame(n, ss.cols)
	x := n * ss.frameW
	return ss.image.SubImage(image.Rect(x, 0, x+ss.frameW, ss.frameH)).(*ebiten.Image)
}

func clampFrame(n, cols int) int {
	if n < 0 {
		return 0
	}
	if n >= cols {
		return cols - 1
	}
	return n
}

// drawFrame 把第 n 帧缩放到 (x, y, w, h)
func (ss *spriteSheet) drawFrame(screen *ebiten.Image, n int, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(ss.frameW), h/float64(ss.frameH))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(ss.frame(n), op)
}

// drawParticles 绘制拖尾粒子，透明度随半径线性衰减
func (s *GameScene) drawParticles(screen *ebiten.Image) {
	em := s.loop.EntityManager()
	for _, id := range s.loop.Particles() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)

		alpha := systems.ParticleOpacity(p.Radius, p.MaxRadius)
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(alpha * 255)}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.Radius), c, true)
	}
}

// drawRavens 按绘制顺序绘制乌鸦（宽度升序，大乌鸦在上层）
func (s *GameScene) drawRavens(screen *ebiten.Image) {
	em := s.loop.EntityManager()
	for _, id := range s.loop.Ravens() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		raven, _ := ecs.GetComponent[*components.RavenComponent](em, id)
		anim, _ := ecs.GetComponent[*components.SpriteAnimationComponent](em, id)

		if s.ravenSheet != nil && anim != nil {
			s.ravenSheet.drawFrame(screen, anim.Frame, pos.X, pos.Y, raven.Width, raven.Height)
			continue
		}

		// 占位：深色矩形 + 身份颜色描边
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(raven.Width), float32(raven.Height), placeholderColor, false)
		if identity, ok := ecs.GetComponent[*components.IdentityColorComponent](em, id); ok {
			vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(raven.Width), float32(raven.Height), 3, identity.Color, false)
		}
	}
}

// drawExplosions 绘制爆炸，边长等于被击中乌鸦的宽度，向上偏移四分之一
func (s *GameScene) drawExplosions(screen *ebiten.Image) {
	em := s.loop.EntityManager()
	for _, id := range s.loop.Explosions() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		explosion, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		anim, _ := ecs.GetComponent[*components.SpriteAnimationComponent](em, id)

		x, y := pos.X, pos.Y-explosion.Size/4
		if s.boomSheet != nil && anim != nil {
			s.boomSheet.drawFrame(screen, anim.Frame, x, y, explosion.Size, explosion.Size)
			continue
		}

		// 占位：随帧扩大的圆
		frame := 0
		if anim != nil {
			frame = anim.Frame
		}
		half := explosion.Size / 2
		r := half * float64(frame+1) / 6
		vector.DrawFilledCircle(screen, float32(x+half), float32(y+half), float32(r), boomFallback, true)
	}
}
