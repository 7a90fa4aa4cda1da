package components

import "github.com/decker502/beauty/pkg/config"

// UIState UI 元素的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 指针按下
	UIClicked
	// UIDisabled 禁用
	UIDisabled
)

// String 返回状态名称（日志用）
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	}
	return "unknown"
}

// UIComponent 标记实体为 UI 元素并记录交互状态
type UIComponent struct {
	State UIState
}

// LayoutSlot 从窗口布局中取出实体所在的矩形
// 返回 false 表示当前布局下该元素不可见
type LayoutSlot func(l *config.Layout) (config.Rect, bool)

// BoundsComponent 实体的屏幕矩形
// 由 LayoutSystem 每帧根据 Slot 重新计算
type BoundsComponent struct {
	Slot    LayoutSlot
	Rect    config.Rect
	Visible bool
}
