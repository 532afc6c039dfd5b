package components

// PositionComponent 存储实体的屏幕坐标（左上角，像素）
type PositionComponent struct {
	X float64
	Y float64
}
