package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动的场景
// 同一时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene

	screenWidth, screenHeight int
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景，使用 SwitchTo 设置
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 如果新场景实现了 Resizable，会立即收到当前屏幕尺寸
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.screenWidth > 0 && sm.screenHeight > 0 {
		r.SetScreenSize(sm.screenWidth, sm.screenHeight)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SetScreenSize 记录逻辑屏幕尺寸并转发给当前场景
func (sm *SceneManager) SetScreenSize(width, height int) {
	if width == sm.screenWidth && height == sm.screenHeight {
		return
	}
	sm.screenWidth, sm.screenHeight = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.SetScreenSize(width, height)
	}
}

// ScreenSize 返回最近一次记录的逻辑屏幕尺寸
func (sm *SceneManager) ScreenSize() (int, int) {
	return sm.screenWidth, sm.screenHeight
}

// SaveOnExit 让当前场景保存状态（如果支持）
//
// 返回：
//   - bool: 保存成功或无需保存返回 true
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	if !saveable.SaveOnExit() {
		log.Printf("[SceneManager] Warning: current scene failed to save on exit")
		return false
	}
	return true
}

// Update 更新当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
