package systems

import (
	"log"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/utils"
)

// CursorBlinkInterval 文本框光标闪烁间隔（秒）
const CursorBlinkInterval = 0.5

// ColorPickerSystem 颜色选择器交互系统
//
// 职责：
//   - 文本框：点击获得焦点，输入即时更新颜色，Enter 提交并失去焦点，Escape 失去焦点
//   - 色块：点击弹出/收起调色板
//   - 调色板：点击单元格设置颜色并收起，点击外部收起
//
// 同一时刻最多一个文本框获得焦点、最多一个调色板打开
type ColorPickerSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput
	keyboard      KeyboardInput
	colors        ColorStore

	hovering bool
}

// NewColorPickerSystem 创建颜色选择器交互系统
func NewColorPickerSystem(em *ecs.EntityManager, pointer PointerInput, keyboard KeyboardInput, colors ColorStore) *ColorPickerSystem {
	return &ColorPickerSystem{
		entityManager: em,
		pointer:       pointer,
		keyboard:      keyboard,
		colors:        colors,
	}
}

func (s *ColorPickerSystem) pickers() []*components.ColorPickerComponent {
	ids := ecs.GetEntitiesWith1[*components.ColorPickerComponent](s.entityManager)
	out := make([]*components.ColorPickerComponent, 0, len(ids))
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ColorPickerComponent](s.entityManager, id)
		out = append(out, p)
	}
	return out
}

// Update 处理指针和键盘输入
func (s *ColorPickerSystem) Update(deltaTime float64) {
	pickers := s.pickers()
	x, y := s.pointer.Position()

	s.updateHover(pickers, x, y)

	if s.pointer.JustPressed() {
		s.handlePress(pickers, x, y)
	}

	for _, p := range pickers {
		if p.Focused {
			s.handleKeyboard(p)
		}
		s.updateCursor(p, deltaTime)
	}
}

func (s *ColorPickerSystem) updateHover(pickers []*components.ColorPickerComponent, x, y float64) {
	s.hovering = false
	blocked := s.Blocks(x, y)
	for _, p := range pickers {
		p.HoveredCell = -1
		if p.PaletteOpen {
			if col, row, ok := p.Layout.PaletteCellAt(x, y); ok {
				p.HoveredCell = row*config.PaletteColumns + col
				s.hovering = true
			}
		}
		// 被其他选择器的调色板遮挡时不显示悬停
		covered := blocked && !(p.PaletteOpen && p.Layout.Palette.Contains(x, y))
		p.SwatchHovered = !covered && p.Layout.Swatch.Contains(x, y)
		p.TextHovered = !covered && p.Layout.Text.Contains(x, y)
		if p.SwatchHovered {
			s.hovering = true
		}
	}
}

func (s *ColorPickerSystem) handlePress(pickers []*components.ColorPickerComponent, x, y float64) {
	// 打开的调色板位于最上层，先处理
	for _, p := range pickers {
		if !p.PaletteOpen || !p.Layout.Palette.Contains(x, y) {
			continue
		}
		if col, row, ok := p.Layout.PaletteCellAt(x, y); ok {
			c := utils.PaletteColor(col, row)
			log.Printf("[ColorPickerSystem] %s set to %s from palette", p.Key, c)
			s.colors.SetColor(p.Key, c)
			p.PaletteOpen = false
		}
		return
	}

	var target *components.ColorPickerComponent
	onSwatch := false
	for _, p := range pickers {
		if p.Layout.Swatch.Contains(x, y) {
			target, onSwatch = p, true
			break
		}
		if p.Layout.Text.Contains(x, y) {
			target = p
			break
		}
	}

	for _, p := range pickers {
		if p != target {
			p.Focused = false
			p.PaletteOpen = false
			continue
		}
		if onSwatch {
			p.PaletteOpen = !p.PaletteOpen
			p.Focused = false
		} else {
			p.PaletteOpen = false
			s.focus(p)
		}
	}
}

func (s *ColorPickerSystem) focus(p *components.ColorPickerComponent) {
	if p.Focused {
		return
	}
	p.Focused = true
	p.CursorVisible = true
	p.CursorBlinkTimer = 0
}

func (s *ColorPickerSystem) handleKeyboard(p *components.ColorPickerComponent) {
	ev := s.keyboard.ReadTextInput()

	current := s.colors.Color(p.Key)
	next := utils.ApplyTextEdit(current, ev, p.MaxLength)
	if next != current {
		s.colors.SetColor(p.Key, next)
		p.CursorVisible = true
		p.CursorBlinkTimer = 0
	}

	switch ev.Action {
	case utils.KeyActionCommit:
		s.colors.SetColor(p.Key, next)
		p.Focused = false
	case utils.KeyActionCancel:
		p.Focused = false
	}
}

func (s *ColorPickerSystem) updateCursor(p *components.ColorPickerComponent, deltaTime float64) {
	if !p.Focused {
		p.CursorVisible = false
		p.CursorBlinkTimer = 0
		return
	}
	p.CursorBlinkTimer += deltaTime
	for p.CursorBlinkTimer >= CursorBlinkInterval {
		p.CursorBlinkTimer -= CursorBlinkInterval
		p.CursorVisible = !p.CursorVisible
	}
}

// OpenPalette 打开 key 对应的调色板（点击 Logo 时调用）
// 其余选择器的调色板和焦点都被关闭
func (s *ColorPickerSystem) OpenPalette(key string) {
	for _, p := range s.pickers() {
		p.Focused = false
		p.PaletteOpen = p.Key == key
	}
}

// CloseAll 关闭所有调色板并取消焦点
func (s *ColorPickerSystem) CloseAll() {
	for _, p := range s.pickers() {
		p.Focused = false
		p.PaletteOpen = false
	}
}

// Blocks 实现 PointerBlocker：坐标是否落在打开的调色板上
func (s *ColorPickerSystem) Blocks(x, y float64) bool {
	for _, p := range s.pickers() {
		if p.PaletteOpen && p.Layout.Palette.Contains(x, y) {
			return true
		}
	}
	return false
}

// Focused 是否有文本框获得焦点
func (s *ColorPickerSystem) Focused() bool {
	for _, p := range s.pickers() {
		if p.Focused {
			return true
		}
	}
	return false
}

// Hovering 指针是否位于可点击的色块或调色板单元格上
func (s *ColorPickerSystem) Hovering() bool {
	return s.hovering
}

// TextHovering 指针是否位于文本框上
func (s *ColorPickerSystem) TextHovering() bool {
	for _, p := range s.pickers() {
		if p.TextHovered {
			return true
		}
	}
	return false
}
