package systems

import (
	"log"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/decker502/beauty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SidebarRenderSystem 背景与侧边栏渲染系统
//
// 职责：
//   - 主区域、侧边栏、底部按钮栏的背景
//   - 预览 Logo 的边框
//   - 标题图标和静态文字（LabelComponent）
type SidebarRenderSystem struct {
	entityManager *ecs.EntityManager
	layout        *LayoutSystem
	theme         shading.ThemeStore

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

// NewSidebarRenderSystem 创建侧边栏渲染系统
// 字体加载失败时只记录日志，对应的文字不绘制
func NewSidebarRenderSystem(em *ecs.EntityManager, layout *LayoutSystem, theme shading.ThemeStore) *SidebarRenderSystem {
	s := &SidebarRenderSystem{
		entityManager: em,
		layout:        layout,
		theme:         theme,
	}

	var err error
	if s.titleFace, err = utils.LoadBoldFontFace(config.TitleFontSize); err != nil {
		log.Printf("[SidebarRenderSystem] Warning: %v", err)
	}
	if s.bodyFace, err = utils.LoadFontFace(config.BodyFontSize); err != nil {
		log.Printf("[SidebarRenderSystem] Warning: %v", err)
	}
	return s
}

// DrawBackground 绘制背景（在 Logo 之前调用）
func (s *SidebarRenderSystem) DrawBackground(screen *ebiten.Image) {
	theme := config.ThemeFor(s.theme.Polarity())
	l := s.layout.Layout()

	fillRect(screen, l.Main, theme.Background)
	fillRect(screen, l.Sidebar, theme.Nav)
	fillRect(screen, l.ButtonsBar, theme.ButtonsBar)

	if l.PreviewVisible {
		fillRect(screen, l.PreviewFrame, theme.Background)
		strokeRect(screen, l.PreviewFrame, 1, theme.Border)
	}
}

// Draw 绘制标题图标和文字
func (s *SidebarRenderSystem) Draw(screen *ebiten.Image) {
	theme := config.ThemeFor(s.theme.Polarity())
	l := s.layout.Layout()

	drawIcon(screen, brushIcon, l.TitleIcon, theme.Title, 1, 0)

	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.BoundsComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if !bounds.Visible {
			continue
		}

		switch label.Style {
		case components.LabelTitle:
			drawText(screen, label.Text, s.titleFace, bounds.Rect.X, verticallyCentered(bounds.Rect, s.titleFace), theme.Title)
		case components.LabelDescription:
			s.drawParagraph(screen, label, bounds.Rect, theme)
		}
	}
}

func (s *SidebarRenderSystem) drawParagraph(screen *ebiten.Image, label *components.LabelComponent, r config.Rect, theme *config.Theme) {
	lines := utils.TruncateLines(utils.WrapText(label.Text, s.bodyFace, r.Width), label.MaxLines)
	for i, line := range lines {
		drawText(screen, line, s.bodyFace, r.X, r.Y+float64(i)*config.DescriptionLineHeight, theme.Description)
	}
}
