// Package app 提供贺卡应用的核心包装器
//
// 该包将应用初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/decker502/greeting/pkg/config"
	"github.com/decker502/greeting/pkg/embedded"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/scenes"
	"github.com/decker502/greeting/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 嵌入的默认贺卡配置路径
const embeddedConfigPath = "assets/config/greeting.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部贺卡配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	greetCfg        *config.GreetingConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	// 当前逻辑视口（Layout 回调记录，场景据此感知窗口缩放）
	viewportWidth  int
	viewportHeight int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化贺卡应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源
// （直接传入外部配置路径时可以跳过）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	greetCfg := resolveGreetingConfig(cfg.ConfigPath)

	// 初始化 gdata 跨平台存储（失败降级为仅内存设置）
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir not available: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "greeting_newx",
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: failed to initialize settings: %v", err)
	}

	// 初始化音频上下文与背景音乐
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	if greetCfg.MusicPath != "" {
		if err := audioManager.LoadMusic(greetCfg.MusicPath); err != nil {
			log.Printf("[App] Warning: background music unavailable: %v", err)
		}
	}
	log.Printf("[App] AudioManager initialized")

	a := &App{
		greetCfg:        greetCfg,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		viewportWidth:   greetCfg.Window.Width,
		viewportHeight:  greetCfg.Window.Height,
	}

	// 创建贺卡场景并注入真实的视口与像素密度来源
	scene := scenes.NewGreetingScene(greetCfg, settingsManager, audioManager, game.NewFontManager())
	scene.SetViewportProvider(func() (int, int) {
		return a.viewportWidth, a.viewportHeight
	})
	scene.SetDensityProvider(func() float64 {
		return ebiten.Monitor().DeviceScaleFactor()
	})

	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SwitchTo(scene)

	return a, nil
}

// resolveGreetingConfig 按优先级解析贺卡配置：
// 外部文件 > 嵌入的默认配置 > 内置默认值
func resolveGreetingConfig(path string) *config.GreetingConfig {
	if path != "" {
		cfg, err := config.LoadGreetingConfig(path)
		if err == nil {
			log.Printf("[App] Greeting config loaded from %s", path)
			return cfg
		}
		log.Printf("[App] Warning: failed to load config %s: %v (falling back)", path, err)
	}

	if embedded.IsInitialized() {
		if data, err := embedded.ReadFile(embeddedConfigPath); err == nil {
			cfg, perr := config.ParseGreetingConfig(data)
			if perr == nil {
				log.Printf("[App] Greeting config loaded from embedded %s", embeddedConfigPath)
				return cfg
			}
			log.Printf("[App] Warning: embedded config invalid: %v", perr)
		}
	}

	log.Printf("[App] Using built-in default greeting config")
	return config.DefaultGreetingConfig()
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.greetCfg.Window.Width, a.greetCfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.greetCfg.Window.Width, a.greetCfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端无窗口概念，跳过）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制应用画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回应用的逻辑屏幕尺寸
// 贺卡页面的逻辑视口跟随实际窗口尺寸，粒子系统据此重建
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	a.viewportWidth = outsideWidth
	a.viewportHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// GreetingConfig 返回解析后的贺卡配置（窗口标题和初始尺寸用）
func (a *App) GreetingConfig() *config.GreetingConfig {
	return a.greetCfg
}

// SaveSettings 同步并持久化当前设置
// 应用退出前调用
func (a *App) SaveSettings() error {
	if a.settingsManager == nil {
		return nil
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	return a.settingsManager.Save()
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
