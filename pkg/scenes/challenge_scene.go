package scenes

import (
	"log"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/entities"
	"github.com/decker502/beauty/pkg/game"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/decker502/beauty/pkg/share"
	"github.com/decker502/beauty/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Input 场景使用的全部输入
// 运行时为 utils.EbitenInput
type Input interface {
	systems.PointerInput
	systems.KeyboardInput
	shading.PointerTracker
}

// LinkSharer 分享链接的动作（运行时为 share.Sharer）
type LinkSharer interface {
	Share(link string) (share.Outcome, error)
}

var (
	_ game.Scene     = (*ChallengeScene)(nil)
	_ game.Resizable = (*ChallengeScene)(nil)
	_ game.Saveable  = (*ChallengeScene)(nil)
)

// ChallengeScene 配色挑战场景
//
// 主区域显示随指针变化明暗的 Logo，侧边栏提供标题、预览、
// 两个颜色选择器、主题切换以及 Reset / Save 按钮
type ChallengeScene struct {
	cfg      *config.AppConfig
	settings *game.SettingsManager
	location *game.LocationStore
	colors   *game.ColorScheme
	sharer   LinkSharer

	entityManager *ecs.EntityManager

	layoutSystem            *systems.LayoutSystem
	colorPickerSystem       *systems.ColorPickerSystem
	logoInputSystem         *systems.LogoInputSystem
	buttonSystem            *systems.ButtonSystem
	shadingSystem           *systems.ShadingSystem
	logoRenderSystem        *systems.LogoRenderSystem
	sidebarRenderSystem     *systems.SidebarRenderSystem
	buttonRenderSystem      *systems.ButtonRenderSystem
	colorPickerRenderSystem *systems.ColorPickerRenderSystem

	// setCursor 设置光标形状（测试中替换）
	setCursor       func(ebiten.CursorShapeType)
	lastCursorShape ebiten.CursorShapeType

	lastShareLink    string
	lastShareOutcome share.Outcome
}

// NewChallengeScene 创建配色挑战场景
//
// 参数:
//   - cfg: 应用配置（初始颜色、分享地址与文案）
//   - settings: 主题设置，同时作为明暗计算的主题来源
//   - location: 查询参数存储，保存用户选择的颜色
//   - input: 指针与键盘输入
//   - sharer: 分享动作
func NewChallengeScene(cfg *config.AppConfig, settings *game.SettingsManager, location *game.LocationStore, input Input, sharer LinkSharer) *ChallengeScene {
	s := &ChallengeScene{
		cfg:             cfg,
		settings:        settings,
		location:        location,
		colors:          game.NewColorScheme(location, cfg.Colors),
		sharer:          sharer,
		entityManager:   ecs.NewEntityManager(),
		setCursor:       ebiten.SetCursorShape,
		lastCursorShape: ebiten.CursorShapeDefault,
	}

	s.createEntities()

	em := s.entityManager
	s.layoutSystem = systems.NewLayoutSystem(em)
	s.colorPickerSystem = systems.NewColorPickerSystem(em, input, input, s.colors)
	s.logoInputSystem = systems.NewLogoInputSystem(em, input, s.colorPickerSystem.OpenPalette)
	s.buttonSystem = systems.NewButtonSystem(em, input)
	// 打开的调色板遮挡其下方的按钮
	s.buttonSystem.SetBlocker(s.colorPickerSystem.Blocks)
	s.shadingSystem = systems.NewShadingSystem(em, s.layoutSystem, input, settings)

	s.logoRenderSystem = systems.NewLogoRenderSystem(em, s.colors, settings)
	s.sidebarRenderSystem = systems.NewSidebarRenderSystem(em, s.layoutSystem, settings)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em, settings)
	s.colorPickerRenderSystem = systems.NewColorPickerRenderSystem(em, s.colors, settings)

	log.Printf("[ChallengeScene] Created with %d entities (mode=%s, outer=%s, arrow=%s)",
		em.EntityCount(), settings.Polarity(), s.colors.Outer(), s.colors.Arrow())
	return s
}

// createEntities 按绘制顺序创建界面实体
func (s *ChallengeScene) createEntities() {
	em := s.entityManager

	entities.NewLogo(em, components.LogoMain, entities.SlotMainLogo, true)
	entities.NewLogo(em, components.LogoPreview, entities.SlotPreviewLogo, true)

	entities.NewLabel(em, entities.TitleText, components.LabelTitle, config.TitleFontSize, 1, entities.SlotTitle)
	entities.NewLabel(em, entities.DescriptionText, components.LabelDescription, config.BodyFontSize, config.DescriptionMaxLines, entities.SlotDescription)

	entities.NewColorPicker(em, entities.OuterLabel, share.ParamOuterColor, entities.SlotOuterPicker)
	entities.NewColorPicker(em, entities.ArrowLabel, share.ParamArrowColor, entities.SlotArrowPicker)

	entities.NewButton(em, components.ButtonStyleModeToggle, "", entities.SlotModeButton, s.onToggleMode)
	entities.NewButton(em, components.ButtonStyleReset, entities.ResetText, entities.SlotResetButton, s.onReset)
	entities.NewButton(em, components.ButtonStyleShare, entities.ShareText, entities.SlotShareButton, s.onShare)
}

// SetScreenSize 实现 game.Resizable
func (s *ChallengeScene) SetScreenSize(width, height int) {
	s.layoutSystem.SetScreenSize(width, height)
}

// Update 更新场景
//
// 系统顺序：
//  1. 布局（写入各实体的屏幕矩形）
//  2. 颜色选择器（先于 Logo 点击处理，Logo 点击会重新打开调色板）
//  3. Logo 点击、按钮
//  4. 明暗计算
//  5. 查询参数写入节流、主题切换动画
func (s *ChallengeScene) Update(deltaTime float64) {
	s.layoutSystem.Update(deltaTime)
	s.colorPickerSystem.Update(deltaTime)
	s.logoInputSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.shadingSystem.Update(deltaTime)

	s.location.Update(deltaTime)
	s.buttonRenderSystem.Update(deltaTime)

	s.updateCursor()
}

// updateCursor 根据悬停对象设置光标形状
func (s *ChallengeScene) updateCursor() {
	cursorShape := ebiten.CursorShapeDefault
	switch {
	case s.colorPickerSystem.TextHovering():
		cursorShape = ebiten.CursorShapeText
	case s.buttonSystem.Hovering(), s.logoInputSystem.Hovering(), s.colorPickerSystem.Hovering():
		cursorShape = ebiten.CursorShapePointer
	}

	// Only update cursor if shape changed
	if cursorShape != s.lastCursorShape {
		s.setCursor(cursorShape)
		s.lastCursorShape = cursorShape
	}
}

// Draw 绘制场景：背景 → Logo → 侧边栏文字 → 选择器 → 按钮 → 调色板浮层
func (s *ChallengeScene) Draw(screen *ebiten.Image) {
	s.sidebarRenderSystem.DrawBackground(screen)
	s.logoRenderSystem.Draw(screen)
	s.sidebarRenderSystem.Draw(screen)
	s.colorPickerRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
	s.colorPickerRenderSystem.DrawOverlay(screen)
}

// SaveOnExit 实现 game.Saveable：写入未保存的查询参数和设置
func (s *ChallengeScene) SaveOnExit() bool {
	ok := true
	if err := s.location.Flush(); err != nil {
		log.Printf("[ChallengeScene] Warning: failed to flush location: %v", err)
		ok = false
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[ChallengeScene] Warning: failed to save settings: %v", err)
		ok = false
	}
	return ok
}

// ShadeResult 当前帧的明暗结果
func (s *ChallengeScene) ShadeResult() shading.ShadeResult {
	return s.shadingSystem.Result()
}

// Colors 用户配色
func (s *ChallengeScene) Colors() *game.ColorScheme {
	return s.colors
}

// LastShare 最近一次分享的链接和结果，未分享过时 link 为空
func (s *ChallengeScene) LastShare() (link string, outcome share.Outcome) {
	return s.lastShareLink, s.lastShareOutcome
}

func (s *ChallengeScene) onToggleMode() {
	mode, err := s.settings.ToggleColorMode()
	if err != nil {
		log.Printf("[ChallengeScene] Warning: failed to save color mode: %v", err)
	}
	log.Printf("[ChallengeScene] Color mode switched to %s", mode)
}

func (s *ChallengeScene) onReset() {
	s.colorPickerSystem.CloseAll()
	s.colors.Reset()
	log.Printf("[ChallengeScene] Colors reset to %s / %s", s.colors.Outer(), s.colors.Arrow())
}

func (s *ChallengeScene) onShare() {
	link := share.TweetURL(s.cfg.Share.BaseURL, s.cfg.Share.Text, s.colors.Outer(), s.colors.Arrow())
	outcome, err := s.sharer.Share(link)
	if err != nil {
		log.Printf("[ChallengeScene] Warning: %v", err)
	}
	s.lastShareLink = link
	s.lastShareOutcome = outcome
	log.Printf("[ChallengeScene] Share: %s", outcome)
}
