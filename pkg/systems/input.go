package systems

import "github.com/decker502/beauty/pkg/utils"

// PointerInput 指针输入（鼠标或触摸）
// 运行时使用 utils.EbitenInput，测试中使用脚本化的输入
type PointerInput interface {
	Position() (float64, float64)
	JustPressed() bool
	Pressed() bool
	JustReleased() bool
}

// KeyboardInput 键盘文本输入
type KeyboardInput interface {
	ReadTextInput() utils.TextInputEvent
}

// ColorStore 用户配色的读写
type ColorStore interface {
	Color(key string) string
	SetColor(key, value string)
}

// PointerBlocker 判断某个屏幕坐标是否被浮层（如调色板）遮挡
type PointerBlocker func(x, y float64) bool
