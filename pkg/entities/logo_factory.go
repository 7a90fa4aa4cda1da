package entities

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
)

// NewLogo 创建 Logo 实体
//
// 参数：
//   - em: 实体管理器
//   - kind: 主 Logo 或预览 Logo
//   - slot: Logo 元素在布局中的位置
//   - interactive: 是否响应点击（打开颜色选择器）
//
// 返回：
//   - Logo 实体ID
func NewLogo(em *ecs.EntityManager, kind components.LogoKind, slot components.LayoutSlot, interactive bool) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.BoundsComponent{
		Slot: slot,
	})

	ecs.AddComponent(em, entity, &components.LogoComponent{
		Kind:        kind,
		Parts:       config.LogoParts,
		Shade:       shading.Compute(nil, shading.PointerPosition{}, shading.Dark),
		Interactive: interactive,
		HoveredPart: -1,
	})

	return entity
}
