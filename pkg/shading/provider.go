package shading

// LayoutProvider 提供参考图形的包围盒
// 首次布局之前返回 false
type LayoutProvider interface {
	Bounds() (BoundingBox, bool)
}

// PointerTracker 提供最新的指针位置
type PointerTracker interface {
	Pointer() PointerPosition
}

// ThemeStore 提供当前主题极性
// 主题可能在运行时切换，因此每次计算都要重新读取
type ThemeStore interface {
	Polarity() Polarity
}

// Evaluate 每次调用都重新读取三个协作者，然后计算明暗
func Evaluate(layout LayoutProvider, pointer PointerTracker, theme ThemeStore) ShadeResult {
	var box *BoundingBox
	if b, ok := layout.Bounds(); ok {
		box = &b
	}
	return Compute(box, pointer.Pointer(), theme.Polarity())
}

// StaticBounds 固定包围盒的 LayoutProvider
// 零值表示"尚未布局"
type StaticBounds struct {
	Box   BoundingBox
	Ready bool
}

// Bounds 实现 LayoutProvider
func (s StaticBounds) Bounds() (BoundingBox, bool) {
	return s.Box, s.Ready
}

// FixedPointer 固定位置的 PointerTracker
type FixedPointer PointerPosition

// Pointer 实现 PointerTracker
func (f FixedPointer) Pointer() PointerPosition {
	return PointerPosition(f)
}

// FixedTheme 固定极性的 ThemeStore
type FixedTheme Polarity

// Polarity 实现 ThemeStore
func (f FixedTheme) Polarity() Polarity {
	return Polarity(f)
}
