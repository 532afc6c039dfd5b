package systems

import (
	"image/color"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/ecs"
)

// HitEntry 命中索引中的一项：实体身份、轴对齐包围盒与身份颜色
type HitEntry struct {
	ID     ecs.EntityID
	X, Y   float64
	Width  float64
	Height float64
	Color  color.RGBA
}

// Contains 判断点是否落在包围盒内（左上闭、右下开）
func (e HitEntry) Contains(x, y float64) bool {
	return x >= e.X && x < e.X+e.Width && y >= e.Y && y < e.Y+e.Height
}

// CollisionIndex 屏幕坐标到乌鸦身份的索引
//
// 每帧末按绘制顺序重建。Resolve 从最后绘制（最上层）的一项开始查找，
// 因此重叠区域总是命中玩家看到的那只乌鸦。
type CollisionIndex struct {
	entries []HitEntry
}

// NewCollisionIndex 创建空索引
func NewCollisionIndex() *CollisionIndex {
	return &CollisionIndex{entries: make([]HitEntry, 0)}
}

// Rebuild 从实体管理器重建索引
//
// 只收录可点击、未被标记删除的实体，顺序与实体顺序（绘制顺序）一致。
func (ci *CollisionIndex) Rebuild(em *ecs.EntityManager) {
	ci.entries = ci.entries[:0]

	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.ClickableComponent,
		*components.IdentityColorComponent,
	](em)

	for _, id := range ids {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		identity, _ := ecs.GetComponent[*components.IdentityColorComponent](em, id)

		ci.entries = append(ci.entries, HitEntry{
			ID:     id,
			X:      pos.X,
			Y:      pos.Y,
			Width:  clickable.Width,
			Height: clickable.Height,
			Color:  identity.Color,
		})
	}
}

// Resolve 返回覆盖 (x, y) 的最上层实体
func (ci *CollisionIndex) Resolve(x, y float64) (HitEntry, bool) {
	for i := len(ci.entries) - 1; i >= 0; i-- {
		if ci.entries[i].Contains(x, y) {
			return ci.entries[i], true
		}
	}
	return HitEntry{}, false
}

// Remove 移除实体的索引项，同一帧内的后续点击不会再命中它
func (ci *CollisionIndex) Remove(id ecs.EntityID) {
	for i, e := range ci.entries {
		if e.ID == id {
			ci.entries = append(ci.entries[:i], ci.entries[i+1:]...)
			return
		}
	}
}

// Entries 返回按绘制顺序排列的索引项（调试绘制用，调用方不得修改）
func (ci *CollisionIndex) Entries() []HitEntry {
	return ci.entries
}

// Len 返回索引项数量
func (ci *CollisionIndex) Len() int {
	return len(ci.entries)
}
