package systems

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 按下和抬起都在按钮内时触发 OnClick 回调
//   - 根据 Enabled 状态决定是否响应交互
//
// 注意：光标形状由调用者（场景）统一管理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput
	blocker       PointerBlocker

	hovering bool
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, pointer PointerInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// SetBlocker 设置遮挡判断（被浮层遮挡的位置不响应）
func (s *ButtonSystem) SetBlocker(blocker PointerBlocker) {
	s.blocker = blocker
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	x, y := s.pointer.Position()
	justPressed := s.pointer.JustPressed()
	pressed := s.pointer.Pressed()
	released := s.pointer.JustReleased()
	blocked := s.blocker != nil && s.blocker(x, y)

	s.hovering = false

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			button.PressedInside = false
			continue
		}

		isHovered := bounds.Visible && !blocked && bounds.Rect.Contains(x, y)

		if justPressed {
			button.PressedInside = isHovered
		}

		var clicked bool
		switch {
		case !isHovered:
			button.State = components.UINormal
		case released:
			// 释放瞬间触发回调
			clicked = button.PressedInside
			button.State = components.UIHovered
		case pressed && button.PressedInside:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}

		if released || !pressed {
			button.PressedInside = false
		}
		if isHovered {
			s.hovering = true
		}

		if ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, entityID); ok {
			ui.State = button.State
		}

		if clicked && button.OnClick != nil {
			button.OnClick()
		}
	}
}

// Hovering 指针是否位于某个按钮上
func (s *ButtonSystem) Hovering() bool {
	return s.hovering
}
