package config

import (
	"image/color"

	"github.com/decker502/beauty/pkg/shading"
)

// 主题配色表
// 色值取自 Tailwind UI 调色板（gray / blue），与网页版保持一致

// 灰阶
var (
	gray100 = color.RGBA{R: 0xf4, G: 0xf5, B: 0xf7, A: 0xff}
	gray200 = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	gray300 = color.RGBA{R: 0xd2, G: 0xd6, B: 0xdc, A: 0xff}
	gray500 = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	gray600 = color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff}
	gray700 = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	gray800 = color.RGBA{R: 0x25, G: 0x2f, B: 0x3f, A: 0xff}
	gray900 = color.RGBA{R: 0x16, G: 0x1e, B: 0x2e, A: 0xff}

	blue500 = color.RGBA{R: 0x3f, G: 0x83, B: 0xf8, A: 0xff}
	blue600 = color.RGBA{R: 0x1c, G: 0x64, B: 0xf2, A: 0xff}
	blue700 = color.RGBA{R: 0x1a, G: 0x56, B: 0xdb, A: 0xff}

	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// ButtonColors 按钮在各交互状态下的颜色
type ButtonColors struct {
	Background color.RGBA
	Hover      color.RGBA
	Active     color.RGBA
	Text       color.RGBA
}

// InputColors 输入框配色
type InputColors struct {
	Background  color.RGBA
	BgHover     color.RGBA
	BgFocus     color.RGBA
	Label       color.RGBA
	Text        color.RGBA
	TextFocus   color.RGBA
	Placeholder color.RGBA
}

// Theme 单个主题的完整配色
type Theme struct {
	Name string

	Background  color.RGBA // 主区域背景
	ButtonsBar  color.RGBA // 底部按钮栏背景
	Nav         color.RGBA // 侧边栏背景
	Border      color.RGBA
	BorderFocus color.RGBA
	Title       color.RGBA
	Description color.RGBA

	ModeButtonText      color.RGBA
	ModeButtonTextHover color.RGBA

	ResetButton ButtonColors
	ShareButton ButtonColors
	Input       InputColors

	// InnerTint Logo 内圈的半透明填充（非预乘）
	InnerTint color.NRGBA
}

// DarkTheme 深色主题
var DarkTheme = Theme{
	Name:                "dark",
	Background:          gray900,
	ButtonsBar:          gray700,
	Nav:                 gray800,
	Border:              gray500,
	BorderFocus:         white,
	Title:               white,
	Description:         gray300,
	ModeButtonText:      gray300,
	ModeButtonTextHover: white,
	ResetButton:         ButtonColors{Background: gray600, Hover: gray500, Active: gray700, Text: white},
	ShareButton:         ButtonColors{Background: blue600, Hover: blue500, Active: blue700, Text: white},
	Input: InputColors{
		Background:  gray800,
		BgHover:     gray900,
		BgFocus:     gray900,
		Label:       gray500,
		Text:        gray100,
		TextFocus:   white,
		Placeholder: gray500,
	},
	// rgba(255, 255, 255, 0.03)
	InnerTint: color.NRGBA{R: 255, G: 255, B: 255, A: 8},
}

// LightTheme 浅色主题
var LightTheme = Theme{
	Name:                "light",
	Background:          gray100,
	ButtonsBar:          gray300,
	Nav:                 gray200,
	Border:              gray500,
	BorderFocus:         black,
	Title:               black,
	Description:         gray700,
	ModeButtonText:      gray700,
	ModeButtonTextHover: black,
	ResetButton:         ButtonColors{Background: gray600, Hover: gray500, Active: gray700, Text: white},
	ShareButton:         ButtonColors{Background: blue600, Hover: blue500, Active: blue700, Text: white},
	Input: InputColors{
		Background:  gray200,
		BgHover:     gray100,
		BgFocus:     gray100,
		Label:       gray500,
		Text:        gray900,
		TextFocus:   black,
		Placeholder: gray500,
	},
	// rgba(0, 0, 0, 0.03)
	InnerTint: color.NRGBA{A: 8},
}

// ThemeByName 按名称查找主题（"dark" / "light"）
func ThemeByName(name string) (*Theme, bool) {
	switch name {
	case DarkTheme.Name:
		return &DarkTheme, true
	case LightTheme.Name:
		return &LightTheme, true
	}
	return nil, false
}

// ThemeFor 返回明暗极性对应的主题
func ThemeFor(p shading.Polarity) *Theme {
	if p == shading.Light {
		return &LightTheme
	}
	return &DarkTheme
}
