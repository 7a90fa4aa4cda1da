package systems

import (
	"image/color"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/decker502/beauty/pkg/share"
	"github.com/decker502/beauty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// LogoRenderSystem Logo 渲染系统
//
// 每个部件以纯色填充，不透明度取所在一侧的明暗值：
// 左半部分使用 Shade.Left，右半部分使用 Shade.Right
type LogoRenderSystem struct {
	entityManager *ecs.EntityManager
	colors        ColorStore
	theme         shading.ThemeStore
}

// NewLogoRenderSystem 创建 Logo 渲染系统
func NewLogoRenderSystem(em *ecs.EntityManager, colors ColorStore, theme shading.ThemeStore) *LogoRenderSystem {
	return &LogoRenderSystem{
		entityManager: em,
		colors:        colors,
		theme:         theme,
	}
}

// PartFill 部件的填充色和不透明度
//
// 参数:
//   - part: Logo 部件
//   - shade: 当前明暗结果
//   - outer, arrow: 用户选择的颜色（非法颜色按黑色填充）
//   - innerTint: 内圈半透明色
func PartFill(part config.LogoPart, shade shading.ShadeResult, outer, arrow string, innerTint color.NRGBA) (color.NRGBA, float64) {
	opacity := shade.Left
	if part.Side == config.SideRight {
		opacity = shade.Right
	}

	var fill color.NRGBA
	switch part.Role {
	case config.RoleOuter:
		fill = toNRGBA(utils.FillColor(outer))
	case config.RoleArrow:
		fill = toNRGBA(utils.FillColor(arrow))
	default:
		fill = innerTint
	}
	return fill, opacity
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Draw 渲染所有可见的 Logo
func (s *LogoRenderSystem) Draw(screen *ebiten.Image) {
	theme := config.ThemeFor(s.theme.Polarity())
	outer := s.colors.Color(share.ParamOuterColor)
	arrow := s.colors.Color(share.ParamArrowColor)

	for _, id := range ecs.GetEntitiesWith2[*components.LogoComponent, *components.BoundsComponent](s.entityManager) {
		logo, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if !bounds.Visible {
			continue
		}

		for _, part := range logo.Parts {
			fill, opacity := PartFill(part, logo.Shade, outer, arrow, theme.InnerTint)
			fillPolygon(screen, utils.TransformPoints(logo.Transform, part.Points), fill, opacity)
		}
	}
}
