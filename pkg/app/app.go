// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/game"
	"github.com/decker502/beauty/pkg/scenes"
	"github.com/decker502/beauty/pkg/share"
	"github.com/decker502/beauty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "beauty_challenge"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指定配置文件，为空时按 XDG 用户配置、嵌入配置的顺序查找
	ConfigPath string
	// Link 分享链接，其查询参数覆盖保存的配色
	Link string
	// Mode 初始主题（"dark" / "light"），仅在没有保存过主题时生效
	Mode string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	appConfig    *config.AppConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appConfig, err := config.ResolveAppConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	gdataManager := openStorage()

	settings, err := game.NewSettingsManager(gdataManager, appConfig.Theme.DefaultMode)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	if cfg.Mode != "" && !settings.HasSavedSettings() {
		if err := settings.SetColorMode(cfg.Mode); err != nil {
			return nil, fmt.Errorf("-mode: %w", err)
		}
		log.Printf("[App] Color mode from command line: %s", cfg.Mode)
	}

	location := game.NewLocationStore(gdataManager, appConfig.FlushInterval())
	if cfg.Link != "" {
		if err := location.ApplyLink(cfg.Link); err != nil {
			return nil, fmt.Errorf("-link: %w", err)
		}
		log.Printf("[App] Applied shared link, query is now %q", location.Search())
	}

	sceneManager := game.NewSceneManager()
	scene := scenes.NewChallengeScene(appConfig, settings, location, utils.EbitenInput{}, share.NewSharer())
	sceneManager.SwitchTo(scene)

	return &App{
		appConfig:    appConfig,
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: StorageAppName,
	})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭前写入未保存的数据
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		log.Printf("[App] Window closed")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.appConfig.Window.Width, a.appConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.appConfig.Window.Width, a.appConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸与窗口尺寸一致，窗口大小变化时重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// AppConfig 返回生效的应用配置
// 用于在启动前设置窗口尺寸和标题
func (a *App) AppConfig() *config.AppConfig {
	return a.appConfig
}

// Fullscreen 上次退出时是否处于全屏
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}
