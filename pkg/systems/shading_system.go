package systems

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
)

// ShadingSystem 明暗系统
// 每帧计算一次左右两侧的不透明度，写入所有 Logo（预览 Logo 与主 Logo 共用结果）
type ShadingSystem struct {
	entityManager *ecs.EntityManager

	layout  shading.LayoutProvider
	pointer shading.PointerTracker
	theme   shading.ThemeStore

	result shading.ShadeResult
}

// NewShadingSystem 创建明暗系统
//
// 参数：
//   - em: 实体管理器
//   - layout: 主 Logo 包围盒来源
//   - pointer: 指针位置来源
//   - theme: 当前主题来源
func NewShadingSystem(em *ecs.EntityManager, layout shading.LayoutProvider, pointer shading.PointerTracker, theme shading.ThemeStore) *ShadingSystem {
	return &ShadingSystem{
		entityManager: em,
		layout:        layout,
		pointer:       pointer,
		theme:         theme,
		result:        shading.Compute(nil, shading.PointerPosition{}, theme.Polarity()),
	}
}

// Update 重新计算明暗并写入 Logo 组件
func (s *ShadingSystem) Update(deltaTime float64) {
	s.result = shading.Evaluate(s.layout, s.pointer, s.theme)

	for _, id := range ecs.GetEntitiesWith1[*components.LogoComponent](s.entityManager) {
		logo, _ := ecs.GetComponent[*components.LogoComponent](s.entityManager, id)
		logo.Shade = s.result
	}
}

// Result 最近一次计算结果
func (s *ShadingSystem) Result() shading.ShadeResult {
	return s.result
}
