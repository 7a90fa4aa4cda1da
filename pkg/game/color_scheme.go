package game

import (
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/share"
)

// ColorScheme 用户选择的 Logo 配色
// 颜色保存在 LocationStore 的查询参数中，未设置时使用配置的初始颜色
type ColorScheme struct {
	location *LocationStore
	defaults config.ColorsConfig
}

// NewColorScheme 创建配色
func NewColorScheme(location *LocationStore, defaults config.ColorsConfig) *ColorScheme {
	return &ColorScheme{location: location, defaults: defaults}
}

// Color 按查询参数名获取颜色
func (cs *ColorScheme) Color(key string) string {
	return cs.location.Get(key, cs.defaultFor(key))
}

// SetColor 按查询参数名设置颜色（原样保存，不做校验）
func (cs *ColorScheme) SetColor(key, value string) {
	cs.location.Set(key, value)
}

// Outer 外圈颜色
func (cs *ColorScheme) Outer() string {
	return cs.Color(share.ParamOuterColor)
}

// Arrow 箭头颜色
func (cs *ColorScheme) Arrow() string {
	return cs.Color(share.ParamArrowColor)
}

// Reset 两种颜色恢复为 #7f7f7f
func (cs *ColorScheme) Reset() {
	cs.SetColor(share.ParamOuterColor, config.DefaultOuterColor)
	cs.SetColor(share.ParamArrowColor, config.DefaultArrowColor)
}

func (cs *ColorScheme) defaultFor(key string) string {
	switch key {
	case share.ParamOuterColor:
		return cs.defaults.Outer
	case share.ParamArrowColor:
		return cs.defaults.Arrow
	}
	return ""
}
