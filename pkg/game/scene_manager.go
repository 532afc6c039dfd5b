package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景并转发 Update/Draw
//
// 乌鸦游戏目前只有一个 GameScene；切换到 nil 表示暂时没有场景，
// 此时 Update 和 Draw 都不做任何事。
type SceneManager struct {
	current Scene
}

// NewSceneManager 创建没有场景的管理器，随后用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换当前场景，下一次 Update 起生效
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switch %T -> %T", sm.current, scene)
	sm.current = scene
}

// GetCurrentScene 返回当前场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// Update 以毫秒为单位推进当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

// Draw 把当前场景画到 screen
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
