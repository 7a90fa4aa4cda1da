package components

import "github.com/decker502/beauty/pkg/config"

// PickerSlot 从窗口布局中取出颜色选择器的布局
type PickerSlot func(l *config.Layout) config.PickerLayout

// ColorPickerComponent 颜色选择器组件
//
// 由三部分组成：色块（点击弹出调色板）、文本框（#rrggbb）和调色板。
// 颜色值本身保存在 ColorScheme 中，组件只记录交互状态。
type ColorPickerComponent struct {
	// Label 标签文字（如 "Outer color"）
	Label string
	// Key 颜色对应的查询参数名
	Key string

	Slot   PickerSlot
	Layout config.PickerLayout

	// 文本框状态
	Focused          bool
	TextHovered      bool
	CursorVisible    bool
	CursorBlinkTimer float64
	MaxLength        int

	// 调色板状态
	PaletteOpen   bool
	HoveredCell   int // 悬停的单元格（row*列数+col），-1 表示无
	SwatchHovered bool
}
