package scenes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// justPressedPointers 返回本帧所有新的点击/触摸位置
// 同时支持鼠标点击和多点触摸，触摸在前
func justPressedPointers(buf []image.Point) []image.Point {
	buf = buf[:0]

	// 首先检查触摸输入（移动设备）
	var touchIDs []ebiten.TouchID
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, image.Pt(x, y))
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, image.Pt(x, y))
	}

	return buf
}
