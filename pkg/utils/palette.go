package utils

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// goldenAngle 相邻颜色的色相间隔（度），使连续分配的颜色尽量拉开
const goldenAngle = 137.50776405003785

// 饱和度/明度分层，色相绕一圈后切换到下一层
var paletteTiers = []struct{ s, v float64 }{
	{0.85, 0.95},
	{0.60, 0.80},
	{0.95, 0.65},
	{0.45, 0.95},
}

// ColorPalette 分配在存活持有者之间唯一的颜色
//
// 颜色按黄金角在 HSV 空间中依次生成，已被占用的 RGB 值会被跳过，
// 因此任意时刻两个持有者不会拿到同一颜色。非并发安全，只在游戏循环中使用。
type ColorPalette struct {
	next   uint64
	owners map[uint64]color.RGBA
	inUse  map[color.RGBA]uint64
}

// NewColorPalette 创建空调色板
func NewColorPalette() *ColorPalette {
	return &ColorPalette{
		owners: make(map[uint64]color.RGBA),
		inUse:  make(map[color.RGBA]uint64),
	}
}

// Acquire 为 owner 分配颜色，重复调用返回同一颜色
func (p *ColorPalette) Acquire(owner uint64) color.RGBA {
	if c, ok := p.owners[owner]; ok {
		return c
	}

	var c color.RGBA
	for {
		c = paletteColor(p.next)
		p.next++
		if _, taken := p.inUse[c]; !taken {
			break
		}
	}

	p.owners[owner] = c
	p.inUse[c] = owner
	return c
}

// Release 归还 owner 持有的颜色
func (p *ColorPalette) Release(owner uint64) {
	c, ok := p.owners[owner]
	if !ok {
		return
	}
	delete(p.owners, owner)
	delete(p.inUse, c)
}

// Owner 返回持有颜色 c 的 owner
func (p *ColorPalette) Owner(c color.RGBA) (uint64, bool) {
	owner, ok := p.inUse[c]
	return owner, ok
}

// Len 返回当前被持有的颜色数量
func (p *ColorPalette) Len() int {
	return len(p.owners)
}

func paletteColor(n uint64) color.RGBA {
	hue := math.Mod(float64(n)*goldenAngle, 360)
	tier := paletteTiers[(n/360)%uint64(len(paletteTiers))]
	r, g, b := colorful.Hsv(hue, tier.s, tier.v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
