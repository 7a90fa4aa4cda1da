// Package utils 提供通用工具函数
package utils

import (
	"unicode"

	"github.com/decker502/beauty/pkg/shading"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 保存最后一次指针位置
// 触摸释放后 TouchPosition 不再可用，悬停位置需要保留
var lastPointerX, lastPointerY int

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastPointerX, lastPointerY = ebiten.TouchPosition(touchIDs[0])
		return lastPointerX, lastPointerY
	}

	// 移动端没有鼠标时 CursorPosition 恒为 (0, 0)，保持上次触摸的位置
	if IsMobile() {
		return lastPointerX, lastPointerY
	}

	lastPointerX, lastPointerY = ebiten.CursorPosition()
	return lastPointerX, lastPointerY
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastPointerX, lastPointerY = x, y
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsPointerJustReleased 检查指针是否刚刚抬起（鼠标左键或触摸）
func IsPointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// EbitenInput 基于 Ebitengine 的指针与键盘输入
// 同时实现 shading.PointerTracker 和 UI 系统使用的输入接口
type EbitenInput struct{}

// Position 当前指针位置
func (EbitenInput) Position() (float64, float64) {
	x, y := GetPointerPosition()
	return float64(x), float64(y)
}

// JustPressed 本帧是否刚按下
func (EbitenInput) JustPressed() bool {
	pressed, _, _ := IsPointerJustPressed()
	return pressed
}

// Pressed 是否处于按下状态
func (EbitenInput) Pressed() bool {
	return IsPointerPressed()
}

// JustReleased 本帧是否刚抬起
func (EbitenInput) JustReleased() bool {
	return IsPointerJustReleased()
}

// ReadTextInput 读取本帧的键盘文本输入
func (EbitenInput) ReadTextInput() TextInputEvent {
	return ReadTextInput()
}

// Pointer 实现 shading.PointerTracker
func (EbitenInput) Pointer() shading.PointerPosition {
	x, y := GetPointerPosition()
	return shading.PointerPosition{X: float64(x), Y: float64(y)}
}

// KeyAction 文本框的按键动作
type KeyAction int

const (
	KeyActionNone KeyAction = iota
	// KeyActionCommit Enter：提交并失去焦点
	KeyActionCommit
	// KeyActionCancel Escape：失去焦点
	KeyActionCancel
)

// TextInputEvent 一帧内的文本输入
type TextInputEvent struct {
	Chars     []rune
	Backspace bool
	Action    KeyAction
}

// ReadTextInput 读取本帧的键盘文本输入
func ReadTextInput() TextInputEvent {
	ev := TextInputEvent{
		Chars:     ebiten.AppendInputChars(nil),
		Backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		ev.Action = KeyActionCommit
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ev.Action = KeyActionCancel
	}
	return ev
}

// ApplyTextEdit 把一帧的输入应用到文本上
//
// 先处理退格，再追加可打印字符；结果长度（按 rune 计）不超过 maxLen。
// maxLen <= 0 表示不限长度。
func ApplyTextEdit(value string, ev TextInputEvent, maxLen int) string {
	runes := []rune(value)
	if ev.Backspace && len(runes) > 0 {
		runes = runes[:len(runes)-1]
	}
	for _, r := range ev.Chars {
		if !unicode.IsPrint(r) {
			continue
		}
		if maxLen > 0 && len(runes) >= maxLen {
			break
		}
		runes = append(runes, r)
	}
	return string(runes)
}
