package config

import "math"

// 布局配置常量
// 本文件定义主区域和侧边栏的布局参数，尺寸单位均为逻辑像素

const (
	// SidebarWidth 宽屏下侧边栏宽度（md:w-72）
	SidebarWidth = 288.0
	// SidebarNarrowMaxWidth 窄屏下侧边栏最大宽度（max-w-sm）
	SidebarNarrowMaxWidth = 384.0
	// NarrowBreakpoint 窄屏断点（md）
	NarrowBreakpoint = 768.0

	// LogoMaxWidth 主 Logo 元素最大宽度（max-w-xs）
	LogoMaxWidth = 320.0

	// LandscapeMaxHeight 横屏且高度不超过该值时隐藏侧边栏预览 Logo
	LandscapeMaxHeight = 480.0

	// SidebarPadding 侧边栏水平内边距（px-4）
	SidebarPadding = 16.0

	// ModeButtonSize 主题切换按钮尺寸（h-12 w-12）
	ModeButtonSize = 48.0
	// ModeButtonMargin 主题切换按钮外边距（m-4）
	ModeButtonMargin = 16.0

	// TitleY 标题基线上方的 Y 坐标（py-5）
	TitleY = 20.0
	// TitleFontSize 标题字号（text-xl）
	TitleFontSize = 20.0
	// TitleIconSize 标题图标尺寸
	TitleIconSize = 24.0
	// BodyFontSize 正文字号
	BodyFontSize = 16.0
	// LabelFontSize 标签字号（text-sm）
	LabelFontSize = 14.0
	// DescriptionY 描述文字起始 Y 坐标（标题下方 pt-2）
	DescriptionY = 56.0
	// DescriptionLineHeight 描述文字行高
	DescriptionLineHeight = 24.0
	// DescriptionMaxLines 描述文字最多行数（超出部分截断）
	DescriptionMaxLines = 3

	// PreviewLogoHeight 侧边栏预览 Logo 高度
	PreviewLogoHeight = 100.0
	// PreviewPadding 预览框内边距（p-2）
	PreviewPadding = 8.0

	// SectionSpacing 侧边栏各部分的间距（space-y-4）
	SectionSpacing = 16.0

	// PickerLabelHeight 颜色选择器标签高度
	PickerLabelHeight = 20.0
	// PickerInputHeight 颜色选择器输入框高度（md:h-8）
	PickerInputHeight = 32.0
	// PickerSwatchWidth 色块宽度（md:w-8）
	PickerSwatchWidth = 32.0
	// PickerTextWidth 文本框宽度（md:w-28）
	PickerTextWidth = 112.0
	// PickerGap 色块与文本框的间距（mr-3）
	PickerGap = 12.0

	// PaletteColumns 调色板列数
	PaletteColumns = 8
	// PaletteRows 调色板行数
	PaletteRows = 5
	// PaletteCellSize 调色板单元格尺寸
	PaletteCellSize = 24.0
	// PaletteGap 调色板单元格间距
	PaletteGap = 4.0

	// ButtonsBarHeight 底部按钮栏高度（p-4 + 按钮高度）
	ButtonsBarHeight = 64.0
	// ButtonHeight 按钮高度
	ButtonHeight = 32.0
	// ResetButtonWidth "Reset" 按钮宽度
	ResetButtonWidth = 104.0
	// ShareButtonWidth "Save" 按钮宽度
	ShareButtonWidth = 96.0
	// ButtonMargin 按钮水平外边距（mx-2）
	ButtonMargin = 8.0
)

// Rect 轴对齐矩形（屏幕坐标）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty 宽或高不大于 0
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset 四周各收缩 d
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: math.Max(0, r.Width-2*d), Height: math.Max(0, r.Height-2*d)}
}

// PickerLayout 单个颜色选择器的布局
type PickerLayout struct {
	Label   Rect // 标签区域
	Swatch  Rect // 色块（点击打开调色板）
	Text    Rect // 文本输入框
	Palette Rect // 调色板弹出区域（位于输入框下方）
}

// Layout 整个窗口的布局
type Layout struct {
	ScreenWidth, ScreenHeight float64

	Main     Rect // 主区域
	MainLogo Rect // 主 Logo 元素（明暗计算使用的包围盒）
	Sidebar  Rect

	ModeButton  Rect
	TitleIcon   Rect
	Title       Rect
	Description Rect

	PreviewVisible bool
	PreviewFrame   Rect // 预览框（带边框）
	PreviewLogo    Rect // 预览 Logo 元素

	OuterPicker PickerLayout
	ArrowPicker PickerLayout

	ButtonsBar  Rect
	ResetButton Rect
	ShareButton Rect
}

// IsLandscapeCompact 横屏且高度较小（landscape 断点）
func IsLandscapeCompact(width, height float64) bool {
	return width > height && height <= LandscapeMaxHeight
}

// ComputeLayout 根据窗口尺寸计算布局
//
// 参数:
//   - width, height: 窗口逻辑尺寸
//
// 返回:
//   - Layout: 各 UI 元素的屏幕矩形
func ComputeLayout(width, height int) Layout {
	w := math.Max(0, float64(width))
	h := math.Max(0, float64(height))

	l := Layout{ScreenWidth: w, ScreenHeight: h}

	// 侧边栏不收缩（flex-shrink-0），主区域占据剩余宽度
	sidebarW := SidebarWidth
	if w < NarrowBreakpoint {
		sidebarW = SidebarNarrowMaxWidth
	}
	sidebarW = math.Min(sidebarW, w)
	mainW := w - sidebarW

	l.Main = Rect{X: 0, Y: 0, Width: mainW, Height: h}
	logoW := math.Min(mainW, LogoMaxWidth)
	l.MainLogo = Rect{X: (mainW - logoW) / 2, Y: 0, Width: logoW, Height: h}

	sx := mainW
	l.Sidebar = Rect{X: sx, Y: 0, Width: sidebarW, Height: h}
	innerX := sx + SidebarPadding
	innerW := math.Max(0, sidebarW-2*SidebarPadding)

	l.ModeButton = Rect{
		X:      sx + sidebarW - ModeButtonMargin - ModeButtonSize,
		Y:      ModeButtonMargin,
		Width:  ModeButtonSize,
		Height: ModeButtonSize,
	}

	l.TitleIcon = Rect{X: innerX, Y: TitleY, Width: TitleIconSize, Height: TitleIconSize}
	l.Title = Rect{X: innerX + TitleIconSize + 12, Y: TitleY, Width: math.Max(0, innerW-TitleIconSize-12), Height: TitleIconSize}
	l.Description = Rect{X: innerX, Y: DescriptionY, Width: innerW, Height: DescriptionLineHeight * DescriptionMaxLines}

	y := l.Description.Y + l.Description.Height + 20

	l.PreviewVisible = !IsLandscapeCompact(w, h)
	if l.PreviewVisible {
		frameH := PreviewLogoHeight + 2*PreviewPadding
		l.PreviewFrame = Rect{X: innerX, Y: y, Width: innerW, Height: frameH}
		inner := l.PreviewFrame.Inset(PreviewPadding)
		l.PreviewLogo = inner
		y += frameH + SectionSpacing
	}

	l.OuterPicker = computePickerLayout(innerX, y)
	y += PickerLabelHeight + 4 + PickerInputHeight + SectionSpacing
	l.ArrowPicker = computePickerLayout(innerX, y)

	l.ButtonsBar = Rect{X: sx, Y: h - ButtonsBarHeight, Width: sidebarW, Height: ButtonsBarHeight}
	// Reset 与 Save 两个按钮整体水平居中
	totalW := ResetButtonWidth + ShareButtonWidth + 4*ButtonMargin
	bx := sx + (sidebarW-totalW)/2 + ButtonMargin
	by := l.ButtonsBar.Y + (ButtonsBarHeight-ButtonHeight)/2
	l.ResetButton = Rect{X: bx, Y: by, Width: ResetButtonWidth, Height: ButtonHeight}
	l.ShareButton = Rect{X: bx + ResetButtonWidth + 2*ButtonMargin, Y: by, Width: ShareButtonWidth, Height: ButtonHeight}

	return l
}

func computePickerLayout(x, y float64) PickerLayout {
	inputY := y + PickerLabelHeight + 4
	p := PickerLayout{
		Label:  Rect{X: x, Y: y, Width: PickerSwatchWidth + PickerGap + PickerTextWidth, Height: PickerLabelHeight},
		Swatch: Rect{X: x, Y: inputY, Width: PickerSwatchWidth, Height: PickerInputHeight},
		Text:   Rect{X: x + PickerSwatchWidth + PickerGap, Y: inputY, Width: PickerTextWidth, Height: PickerInputHeight},
	}
	p.Palette = Rect{
		X:      x,
		Y:      inputY + PickerInputHeight + 4,
		Width:  PaletteColumns*PaletteCellSize + (PaletteColumns+1)*PaletteGap,
		Height: PaletteRows*PaletteCellSize + (PaletteRows+1)*PaletteGap,
	}
	return p
}

// PaletteCell 返回调色板中第 (col, row) 个单元格的矩形
func (p PickerLayout) PaletteCell(col, row int) Rect {
	return Rect{
		X:      p.Palette.X + PaletteGap + float64(col)*(PaletteCellSize+PaletteGap),
		Y:      p.Palette.Y + PaletteGap + float64(row)*(PaletteCellSize+PaletteGap),
		Width:  PaletteCellSize,
		Height: PaletteCellSize,
	}
}

// PaletteCellAt 返回坐标所在的调色板单元格，不在任何单元格内时返回 false
func (p PickerLayout) PaletteCellAt(x, y float64) (col, row int, ok bool) {
	for row = 0; row < PaletteRows; row++ {
		for col = 0; col < PaletteColumns; col++ {
			if p.PaletteCell(col, row).Contains(x, y) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}
