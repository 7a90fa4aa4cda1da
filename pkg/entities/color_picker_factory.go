package entities

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/ecs"
)

// ColorTextMaxLength 文本框最多输入的字符数
const ColorTextMaxLength = 32

// NewColorPicker 创建颜色选择器实体
//
// 参数：
//   - em: 实体管理器
//   - label: 标签文字
//   - key: 颜色对应的查询参数名
//   - slot: 选择器在布局中的位置
//
// 返回：
//   - 颜色选择器实体ID
func NewColorPicker(em *ecs.EntityManager, label, key string, slot components.PickerSlot) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.ColorPickerComponent{
		Label:       label,
		Key:         key,
		Slot:        slot,
		MaxLength:   ColorTextMaxLength,
		HoveredCell: -1,
	})

	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}
