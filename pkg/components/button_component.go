package components

// ButtonStyle 按钮的外观
type ButtonStyle int

const (
	// ButtonStyleReset 灰色按钮
	ButtonStyleReset ButtonStyle = iota
	// ButtonStyleShare 蓝色按钮
	ButtonStyleShare
	// ButtonStyleModeToggle 主题切换图标按钮（无背景）
	ButtonStyleModeToggle
)

// ButtonComponent 按钮组件
// 位置由 BoundsComponent 提供
type ButtonComponent struct {
	Style ButtonStyle
	// Text 按钮文字（图标按钮为空）
	Text string

	State   UIState
	Enabled bool

	// PressedInside 按下发生在按钮内，抬起时仍在按钮内才触发点击
	PressedInside bool

	OnClick func()
}
