package components

// ClickableComponent 参与命中测试的实体
//
// 命中盒为 (X, Y, Width, Height)，位置取自 PositionComponent。
// 被击中后 IsEnabled 置为 false，同一帧里的第二次点击不会再命中。
type ClickableComponent struct {
	Width     float64
	Height    float64
	IsEnabled bool
}
