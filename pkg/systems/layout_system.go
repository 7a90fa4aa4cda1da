package systems

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/decker502/beauty/pkg/utils"
)

// LayoutSystem 布局系统
//
// 职责：
//   - 根据窗口尺寸计算布局
//   - 每帧把布局写入各实体的 BoundsComponent / 颜色选择器布局
//   - 更新 Logo 的 viewBox 变换
//   - 作为 shading.LayoutProvider 提供主 Logo 元素的包围盒
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	layout        config.Layout
	ready         bool
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
	}
}

// SetScreenSize 按新的窗口尺寸重新计算布局
func (s *LayoutSystem) SetScreenSize(width, height int) {
	s.layout = config.ComputeLayout(width, height)
	s.ready = width > 0 && height > 0
}

// Layout 当前布局
func (s *LayoutSystem) Layout() *config.Layout {
	return &s.layout
}

// Bounds 实现 shading.LayoutProvider
// 返回主 Logo 元素的矩形，尚未布局时返回 false
func (s *LayoutSystem) Bounds() (shading.BoundingBox, bool) {
	if !s.ready || s.layout.MainLogo.Empty() {
		return shading.BoundingBox{}, false
	}
	r := s.layout.MainLogo
	return shading.BoundingBox{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}, true
}

// Update 把当前布局应用到所有实体
func (s *LayoutSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BoundsComponent](s.entityManager) {
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if bounds.Slot == nil {
			continue
		}
		bounds.Rect, bounds.Visible = bounds.Slot(&s.layout)
		if !s.ready {
			bounds.Visible = false
		}

		if logo, ok := ecs.GetComponent[*components.LogoComponent](s.entityManager, id); ok {
			logo.Transform = utils.ViewBoxTransform(config.LogoViewBox, bounds.Rect)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ColorPickerComponent](s.entityManager) {
		picker, _ := ecs.GetComponent[*components.ColorPickerComponent](s.entityManager, id)
		if picker.Slot != nil {
			picker.Layout = picker.Slot(&s.layout)
		}
	}
}
