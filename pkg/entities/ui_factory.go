package entities

import (
	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
)

// 侧边栏文字
const (
	TitleText       = "Beauty Challenge"
	DescriptionText = "Choose your favorite logo color combination and share it with us!"
	OuterLabel      = "Outer color"
	ArrowLabel      = "Arrow color"
	ResetText       = "Reset"
	ShareText       = "Save"
)

// NewLabel 创建静态文字实体
func NewLabel(em *ecs.EntityManager, text string, style components.LabelStyle, fontSize float64, maxLines int, slot components.LayoutSlot) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.BoundsComponent{
		Slot: slot,
	})

	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:     text,
		Style:    style,
		FontSize: fontSize,
		MaxLines: maxLines,
	})

	return entity
}

// 布局位置

// SlotMainLogo 主 Logo 元素
func SlotMainLogo(l *config.Layout) (config.Rect, bool) {
	return l.MainLogo, !l.MainLogo.Empty()
}

// SlotPreviewLogo 预览 Logo（横屏低高度时隐藏）
func SlotPreviewLogo(l *config.Layout) (config.Rect, bool) {
	return l.PreviewLogo, l.PreviewVisible && !l.PreviewLogo.Empty()
}

// SlotTitle 标题
func SlotTitle(l *config.Layout) (config.Rect, bool) {
	return l.Title, !l.Title.Empty()
}

// SlotDescription 描述
func SlotDescription(l *config.Layout) (config.Rect, bool) {
	return l.Description, !l.Description.Empty()
}

// SlotModeButton 主题切换按钮
func SlotModeButton(l *config.Layout) (config.Rect, bool) {
	return l.ModeButton, true
}

// SlotResetButton Reset 按钮
func SlotResetButton(l *config.Layout) (config.Rect, bool) {
	return l.ResetButton, true
}

// SlotShareButton Save 按钮
func SlotShareButton(l *config.Layout) (config.Rect, bool) {
	return l.ShareButton, true
}

// SlotOuterPicker 外圈颜色选择器
func SlotOuterPicker(l *config.Layout) config.PickerLayout {
	return l.OuterPicker
}

// SlotArrowPicker 箭头颜色选择器
func SlotArrowPicker(l *config.Layout) config.PickerLayout {
	return l.ArrowPicker
}
