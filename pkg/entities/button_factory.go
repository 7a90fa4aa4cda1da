package entities

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/ecs"
)

// NewButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - style: 按钮外观
//   - text: 按钮文字（图标按钮传空字符串）
//   - slot: 按钮在布局中的位置
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	style components.ButtonStyle,
	text string,
	slot components.LayoutSlot,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.BoundsComponent{
		Slot: slot,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Style:   style,
		Text:    text,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})

	// 添加 UI 组件标记（方便过滤）
	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}
