package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 实体按创建顺序保存，查询结果与绘制顺序一致。
// 删除是延迟的：DestroyEntity 只做标记，RemoveMarkedEntities 在帧末统一压缩。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 存活实体的有序列表（创建顺序，可被 ReorderEntities 调整）
	order []EntityID
	// 已标记删除的实体集合
	marked map[EntityID]struct{}
	// 待删除的实体ID列表（保持标记顺序）
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 重复标记或实体不存在时返回 false，只有第一次标记返回 true。
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	if _, already := em.marked[id]; already {
		return false
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.marked[id]
	return marked
}

// MarkedEntities 返回本帧已标记删除、尚未清理的实体
func (em *EntityManager) MarkedEntities() []EntityID {
	result := make([]EntityID, len(em.entitiesToDestroy))
	copy(result, em.entitiesToDestroy)
	return result
}

// Exists 检查实体是否存活（标记删除但未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// EntityCount 返回当前实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	em.addComponentWithType(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) addComponentWithType(id EntityID, componentType reflect.Type, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回: 实际清理的实体数量
func (em *EntityManager) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}

	// 压缩有序列表，保持其余实体的相对顺序
	kept := em.order[:0]
	for _, id := range em.order {
		if _, marked := em.marked[id]; !marked {
			kept = append(kept, id)
		}
	}
	em.order = kept

	removed := len(em.entitiesToDestroy)
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	em.marked = make(map[EntityID]struct{})
	return removed
}

// ReorderEntities 按给定顺序重排一组实体
//
// ids 中的实体只在它们原本占据的位置之间交换，其他实体的位置不变。
// 例如 order=[a, p, b, c]，ReorderEntities([c, a, b]) 之后 order=[c, p, a, b]。
// 不存在的ID会被忽略。
func (em *EntityManager) ReorderEntities(ids []EntityID) {
	wanted := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		if _, exists := em.components[id]; exists {
			wanted[id] = struct{}{}
		}
	}

	next := 0
	for i, id := range em.order {
		if _, ok := wanted[id]; !ok {
			continue
		}
		for next < len(ids) {
			candidate := ids[next]
			next++
			if _, ok := wanted[candidate]; ok {
				em.order[i] = candidate
				break
			}
		}
	}
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按实体顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
