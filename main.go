package main

import (
	"flag"
	"log"

	"github.com/decker502/beauty/pkg/app"
	"github.com/decker502/beauty/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	configPath := flag.String("config", "", "path to a config YAML file")
	link := flag.String("link", "", "open a shared link: its query string seeds the colors")
	mode := flag.String("mode", "", "initial color mode when none is saved: dark or light")
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Link:       *link,
		Mode:       *mode,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	window := gameApp.AppConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(gameApp.Fullscreen())
	// 关闭窗口时先保存查询参数和设置
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
