package main

import (
	"flag"
	"log"

	"github.com/decker502/greeting/pkg/app"
	"github.com/decker502/greeting/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "贺卡配置文件路径（为空使用内置配置）")
	flag.Parse()

	// 初始化嵌入资源，必须在任何资源加载之前
	embedded.Init(assetsFS)

	application, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// 窗口设置来自贺卡配置
	window := application.GreetingConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 恢复上次会话的全屏状态
	if sm := application.GetSettingsManager(); sm != nil && sm.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}

	// 正常退出时持久化设置
	if err := application.SaveSettings(); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}
