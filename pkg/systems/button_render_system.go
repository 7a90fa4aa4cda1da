package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/decker502/beauty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ModeToggleDuration 主题切换图标过渡时长（秒）
const ModeToggleDuration = 0.5

// ButtonRenderSystem 按钮渲染系统
//
// 职责：
//   - 文字按钮：按状态选择背景色，文字居中
//   - 主题切换按钮：太阳（深色主题）与月亮（浅色主题）交叉淡入淡出并旋转
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	theme         shading.ThemeStore
	face          *text.GoTextFace

	// darkMix 1 表示完全显示太阳，0 表示完全显示月亮
	darkMix    float64
	mixFrom    float64
	polarity   shading.Polarity
	transition utils.Transition
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, theme shading.ThemeStore) *ButtonRenderSystem {
	s := &ButtonRenderSystem{
		entityManager: em,
		theme:         theme,
		polarity:      theme.Polarity(),
		transition:    utils.Transition{Duration: ModeToggleDuration},
	}
	s.darkMix = mixTarget(s.polarity)

	face, err := utils.LoadFontFace(config.BodyFontSize)
	if err != nil {
		log.Printf("[ButtonRenderSystem] Warning: %v", err)
	}
	s.face = face
	return s
}

func mixTarget(p shading.Polarity) float64 {
	if p == shading.Dark {
		return 1
	}
	return 0
}

// Update 推进主题切换过渡
func (s *ButtonRenderSystem) Update(deltaTime float64) {
	if p := s.theme.Polarity(); p != s.polarity {
		s.polarity = p
		s.mixFrom = s.darkMix
		s.transition.Start()
	}
	s.transition.Update(deltaTime)
	s.darkMix = utils.Lerp(s.mixFrom, mixTarget(s.polarity), s.transition.Progress())
}

// DarkMix 当前过渡值
func (s *ButtonRenderSystem) DarkMix() float64 {
	return s.darkMix
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	theme := config.ThemeFor(s.theme.Polarity())

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, entityID)
		if !bounds.Visible {
			continue
		}

		switch button.Style {
		case components.ButtonStyleModeToggle:
			s.drawModeToggle(screen, button, bounds.Rect, theme)
		case components.ButtonStyleShare:
			s.drawTextButton(screen, button, bounds.Rect, theme.ShareButton)
		default:
			s.drawTextButton(screen, button, bounds.Rect, theme.ResetButton)
		}
	}
}

// ButtonBackground 按状态选择背景色
func ButtonBackground(state components.UIState, colors config.ButtonColors) color.RGBA {
	switch state {
	case components.UIHovered:
		return colors.Hover
	case components.UIClicked:
		return colors.Active
	}
	return colors.Background
}

func (s *ButtonRenderSystem) drawTextButton(screen *ebiten.Image, button *components.ButtonComponent, r config.Rect, colors config.ButtonColors) {
	fillRect(screen, r, ButtonBackground(button.State, colors))
	drawTextCentered(screen, button.Text, s.face, r, colors.Text)
}

func (s *ButtonRenderSystem) drawModeToggle(screen *ebiten.Image, button *components.ButtonComponent, r config.Rect, theme *config.Theme) {
	clr := theme.ModeButtonText
	if button.State == components.UIHovered || button.State == components.UIClicked {
		clr = theme.ModeButtonTextHover
	}

	icon := config.Rect{
		X:      r.X + (r.Width-config.TitleIconSize)/2,
		Y:      r.Y + (r.Height-config.TitleIconSize)/2,
		Width:  config.TitleIconSize,
		Height: config.TitleIconSize,
	}
	mix := s.darkMix
	drawIcon(screen, sunIcon, icon, clr, mix, (1-mix)*math.Pi)
	drawIcon(screen, moonIcon, icon, clr, 1-mix, mix*math.Pi)
}
