package systems

import (
	"image/color"
	"log"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/decker502/beauty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ColorPlaceholder 文本框为空时的占位符
const ColorPlaceholder = "#rrggbb"

// pickerTextPadding 文本框左内边距
const pickerTextPadding = 8.0

// ColorPickerRenderSystem 颜色选择器渲染系统
type ColorPickerRenderSystem struct {
	entityManager *ecs.EntityManager
	colors        ColorStore
	theme         shading.ThemeStore

	labelFace *text.GoTextFace
	textFace  *text.GoTextFace
}

// NewColorPickerRenderSystem 创建颜色选择器渲染系统
func NewColorPickerRenderSystem(em *ecs.EntityManager, colors ColorStore, theme shading.ThemeStore) *ColorPickerRenderSystem {
	s := &ColorPickerRenderSystem{
		entityManager: em,
		colors:        colors,
		theme:         theme,
	}

	var err error
	if s.labelFace, err = utils.LoadFontFace(config.LabelFontSize); err != nil {
		log.Printf("[ColorPickerRenderSystem] Warning: %v", err)
	}
	if s.textFace, err = utils.LoadFontFace(config.BodyFontSize); err != nil {
		log.Printf("[ColorPickerRenderSystem] Warning: %v", err)
	}
	return s
}

func (s *ColorPickerRenderSystem) pickers() []*components.ColorPickerComponent {
	ids := ecs.GetEntitiesWith1[*components.ColorPickerComponent](s.entityManager)
	out := make([]*components.ColorPickerComponent, 0, len(ids))
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ColorPickerComponent](s.entityManager, id)
		out = append(out, p)
	}
	return out
}

// Draw 绘制标签、色块和文本框
func (s *ColorPickerRenderSystem) Draw(screen *ebiten.Image) {
	theme := config.ThemeFor(s.theme.Polarity())
	for _, p := range s.pickers() {
		value := s.colors.Color(p.Key)

		drawText(screen, p.Label, s.labelFace, p.Layout.Label.X, verticallyCentered(p.Layout.Label, s.labelFace), theme.Input.Label)

		// 色块
		fillRect(screen, p.Layout.Swatch, utils.FillColor(value))
		swatchBorder := theme.Border
		if p.PaletteOpen || p.SwatchHovered {
			swatchBorder = theme.BorderFocus
		}
		strokeRect(screen, p.Layout.Swatch, 1, swatchBorder)

		s.drawTextField(screen, p, value, theme)
	}
}

// TextFieldColors 文本框在当前状态下的背景、边框和文字颜色
func TextFieldColors(p *components.ColorPickerComponent, theme *config.Theme) (bg, border, fg color.RGBA) {
	switch {
	case p.Focused:
		return theme.Input.BgFocus, theme.BorderFocus, theme.Input.TextFocus
	case p.TextHovered:
		return theme.Input.BgHover, theme.Border, theme.Input.Text
	}
	return theme.Input.Background, theme.Border, theme.Input.Text
}

func (s *ColorPickerRenderSystem) drawTextField(screen *ebiten.Image, p *components.ColorPickerComponent, value string, theme *config.Theme) {
	r := p.Layout.Text
	bg, border, fg := TextFieldColors(p, theme)
	fillRect(screen, r, bg)
	strokeRect(screen, r, 1, border)

	ty := verticallyCentered(r, s.textFace)
	tx := r.X + pickerTextPadding
	if value == "" {
		drawText(screen, ColorPlaceholder, s.textFace, tx, ty, theme.Input.Placeholder)
	} else {
		drawText(screen, value, s.textFace, tx, ty, fg)
	}

	if p.Focused && p.CursorVisible && s.textFace != nil {
		w, _ := text.Measure(value, s.textFace, 0)
		cx := tx + w + 1
		if cx < r.X+r.Width-2 {
			m := s.textFace.Metrics()
			fillRect(screen, config.Rect{X: cx, Y: ty, Width: 1, Height: m.HAscent + m.HDescent}, fg)
		}
	}
}

// DrawOverlay 绘制打开的调色板（在所有 UI 之后调用，位于最上层）
func (s *ColorPickerRenderSystem) DrawOverlay(screen *ebiten.Image) {
	theme := config.ThemeFor(s.theme.Polarity())
	for _, p := range s.pickers() {
		if !p.PaletteOpen {
			continue
		}
		fillRect(screen, p.Layout.Palette, theme.Nav)
		strokeRect(screen, p.Layout.Palette, 1, theme.Border)

		for row := 0; row < config.PaletteRows; row++ {
			for col := 0; col < config.PaletteColumns; col++ {
				cell := p.Layout.PaletteCell(col, row)
				fillRect(screen, cell, utils.FillColor(utils.PaletteColor(col, row)))
				if p.HoveredCell == row*config.PaletteColumns+col {
					strokeRect(screen, cell.Inset(-1), 2, theme.BorderFocus)
				}
			}
		}
	}
}
