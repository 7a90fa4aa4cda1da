package utils

import (
	"image/color"
	"strings"

	"github.com/decker502/beauty/pkg/config"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析 "#rrggbb"（或 "#rgb"）格式的颜色
// 解析失败返回 false
func ParseHexColor(s string) (color.RGBA, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}

// FillColor 返回 Logo 填充色
// 颜色字符串非法时使用黑色（与 SVG 忽略非法 fill 时的默认填充一致）
func FillColor(s string) color.RGBA {
	if c, ok := ParseHexColor(s); ok {
		return c
	}
	return color.RGBA{A: 0xff}
}

// IsHexColor 判断字符串是否为合法的十六进制颜色
func IsHexColor(s string) bool {
	_, ok := ParseHexColor(s)
	return ok
}

// 调色板每行的 (饱和度, 明度)
var paletteRows = [config.PaletteRows - 1][2]float64{
	{1.0, 1.0},
	{0.6, 1.0},
	{1.0, 0.6},
	{0.4, 0.4},
}

// PaletteColor 返回调色板 (col, row) 处的颜色
//
// 第 0 行为从黑到白的灰阶，其余各行按色相均分，每行使用不同的饱和度和明度。
// 返回值为小写 "#rrggbb"。
func PaletteColor(col, row int) string {
	if col < 0 || col >= config.PaletteColumns || row < 0 || row >= config.PaletteRows {
		return config.DefaultOuterColor
	}
	if row == 0 {
		v := float64(col) / float64(config.PaletteColumns-1)
		return colorful.Color{R: v, G: v, B: v}.Hex()
	}
	hue := float64(col) * 360 / config.PaletteColumns
	sv := paletteRows[row-1]
	return colorful.Hsv(hue, sv[0], sv[1]).Clamped().Hex()
}
