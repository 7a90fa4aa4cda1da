package systems

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/share"
	"github.com/decker502/beauty/pkg/utils"
)

// LogoInputSystem Logo 点击系统
// 点击外圈打开外圈颜色选择器，点击箭头打开箭头颜色选择器，内圈不响应
type LogoInputSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput

	// onEditColor 打开 key 对应的颜色选择器
	onEditColor func(key string)

	hovering bool
}

// NewLogoInputSystem 创建 Logo 点击系统
func NewLogoInputSystem(em *ecs.EntityManager, pointer PointerInput, onEditColor func(key string)) *LogoInputSystem {
	return &LogoInputSystem{
		entityManager: em,
		pointer:       pointer,
		onEditColor:   onEditColor,
	}
}

// ColorKeyForRole 部件对应的颜色参数名，内圈返回空字符串
func ColorKeyForRole(role config.FillRole) string {
	switch role {
	case config.RoleOuter:
		return share.ParamOuterColor
	case config.RoleArrow:
		return share.ParamArrowColor
	}
	return ""
}

// Update 更新悬停状态并处理点击
func (s *LogoInputSystem) Update(deltaTime float64) {
	x, y := s.pointer.Position()
	pressed := s.pointer.JustPressed()
	s.hovering = false

	for _, id := range ecs.GetEntitiesWith2[*components.LogoComponent, *components.BoundsComponent](s.entityManager) {
		logo, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		logo.HoveredPart = -1
		if !logo.Interactive || !bounds.Visible || !bounds.Rect.Contains(x, y) {
			continue
		}

		for i, part := range logo.Parts {
			if ColorKeyForRole(part.Role) == "" {
				continue
			}
			if utils.HitLogoPart(logo.Transform, part, x, y) {
				logo.HoveredPart = i
				break
			}
		}
		if logo.HoveredPart < 0 {
			continue
		}

		s.hovering = true
		if pressed && s.onEditColor != nil {
			s.onEditColor(ColorKeyForRole(logo.Parts[logo.HoveredPart].Role))
		}
	}
}

// Hovering 指针是否位于可点击的部件上
func (s *LogoInputSystem) Hovering() bool {
	return s.hovering
}
