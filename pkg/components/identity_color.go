package components

import "image/color"

// IdentityColorComponent 乌鸦的身份颜色
//
// 在存活乌鸦之间唯一，用于拖尾粒子着色和命中盒调试层。
type IdentityColorComponent struct {
	Color color.RGBA
}
