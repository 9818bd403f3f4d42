package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/greeting/internal/particle"
	"github.com/decker502/greeting/pkg/config"
	"github.com/decker502/greeting/pkg/effects"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ViewportFunc 返回当前逻辑视口尺寸（像素）
type ViewportFunc func() (int, int)

// 速度倍率的调节范围与步进
const (
	speedStep = 1.25
	speedMin  = 0.25
	speedMax  = 4.0
)

// GreetingScene 贺卡场景
//
// 场景分三个阶段推进：前两个阶段各显示一块过场面板，
// 第三阶段（最终阶段）一次性构建粒子引擎与文字效果序列器，
// 此后一直停留在最终阶段接受键盘交互。
//
// 阶段切换时刻在场景构造时就全部排入调度器，
// 两次切换相互独立，不依赖前一次是否发生。
type GreetingScene struct {
	cfg      *config.GreetingConfig
	sched    *utils.Scheduler
	settings *game.SettingsManager
	audio    *game.AudioManager
	fonts    *game.FontManager

	stage          int     // 当前阶段，1 起始
	stageEnteredAt float64 // 当前阶段的进入时刻（调度器时钟）

	// 最终阶段组件，enterStage(3) 时构建一次
	engine    *particle.Engine
	targets   *effects.TargetSet
	sequencer *effects.Sequencer

	palette []color.RGBA

	headingFont  *text.GoTextFace
	titleFont    *text.GoTextFace
	subtitleFont *text.GoTextFace
	bodyFont     *text.GoTextFace
	iconFont     *text.GoTextFace

	// 视口与像素密度来源，可注入便于测试
	viewport ViewportFunc
	density  func() float64

	lastWidth     int
	lastHeight    int
	resizeTimer   float64
	resizePending bool
}

// NewGreetingScene 创建贺卡场景
//
// 参数：
//   - cfg: 贺卡内容配置，不能为 nil
//   - settings: 设置管理器，可为 nil（不持久化交互状态）
//   - audioManager: 音频管理器，可为 nil（无背景音乐）
//   - fontManager: 字体管理器，可为 nil（文字降级为调试字体）
func NewGreetingScene(cfg *config.GreetingConfig, settings *game.SettingsManager, audioManager *game.AudioManager, fontManager *game.FontManager) *GreetingScene {
	s := &GreetingScene{
		cfg:      cfg,
		sched:    utils.NewScheduler(),
		settings: settings,
		audio:    audioManager,
		fonts:    fontManager,
		stage:    1,
		palette:  cfg.PaletteRGBA(),
	}

	s.viewport = func() (int, int) {
		return cfg.Window.Width, cfg.Window.Height
	}
	s.density = func() float64 { return 1 }
	s.lastWidth, s.lastHeight = s.viewport()

	s.loadFonts()

	// 两次阶段切换在构造时一次性排程，互不依赖
	s.sched.After(config.Stage2At, func() { s.enterStage(2) })
	s.sched.After(config.Stage3At, func() { s.enterStage(3) })

	if s.audio != nil {
		s.audio.PlayMusic()
	}

	log.Printf("[GreetingScene] Created, stage 1 of %d", config.TotalStages)
	return s
}

// SetViewportProvider 注入视口尺寸来源
//
// 桌面端由 App 注入真实窗口尺寸，测试中注入固定值。
func (s *GreetingScene) SetViewportProvider(fn ViewportFunc) {
	if fn == nil {
		return
	}
	s.viewport = fn
	s.lastWidth, s.lastHeight = fn()
}

// SetDensityProvider 注入像素密度来源（粒子数量随密度缩放）
func (s *GreetingScene) SetDensityProvider(fn func() float64) {
	if fn != nil {
		s.density = fn
	}
}

// Stage 返回当前阶段（1 ~ TotalStages）
func (s *GreetingScene) Stage() int {
	return s.stage
}

// Progress 返回阶段进度，stage/TotalStages
func (s *GreetingScene) Progress() float64 {
	return float64(s.stage) / float64(config.TotalStages)
}

// Engine 返回粒子引擎，最终阶段之前为 nil
func (s *GreetingScene) Engine() *particle.Engine {
	return s.engine
}

// Sequencer 返回效果序列器，最终阶段之前为 nil
func (s *GreetingScene) Sequencer() *effects.Sequencer {
	return s.sequencer
}

// enterStage 推进到指定阶段
//
// 只允许前进，重复或回退的请求被忽略。
func (s *GreetingScene) enterStage(stage int) {
	if stage <= s.stage || stage > config.TotalStages {
		return
	}
	s.stage = stage
	s.stageEnteredAt = s.sched.Now()
	log.Printf("[GreetingScene] Entering stage %d of %d", stage, config.TotalStages)

	if stage == config.TotalStages && s.engine == nil {
		s.buildFinalStage()
	}
}

// buildFinalStage 构建最终阶段的粒子引擎与效果序列器（只执行一次）
func (s *GreetingScene) buildFinalStage() {
	width, height := s.viewport()

	s.engine = particle.NewEngine()
	s.engine.SetPalette(s.palette)
	s.engine.Configure(float64(width), float64(height), s.density())
	s.engine.Initialize()
	s.engine.Run()

	content := s.cfg.Content
	s.targets = effects.NewTargetSet(content.Title, content.Subtitle, content.Message, content.Icon)
	s.sequencer = effects.NewSequencer(s.targets, s.sched)

	// 恢复上次会话保存的效果与速度
	if s.settings != nil {
		saved := s.settings.GetSettings()
		if kind, ok := effects.ParseEffectKind(saved.Effect); ok && kind != s.sequencer.Current() {
			s.sequencer.SetEffect(kind)
		}
		if saved.Speed > 0 && saved.Speed != 1 {
			s.sequencer.SetSpeed(saved.Speed)
		}
	}
}

// Update 更新场景逻辑
func (s *GreetingScene) Update(deltaTime float64) {
	s.sched.Update(deltaTime)
	s.handleInput()
	s.handleResize(deltaTime)

	if s.engine != nil {
		s.engine.Update()
	}
}

// effectKeys 数字键 1~6 对应六种文字效果
var effectKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
}

// handleInput 处理键盘交互
//
// 效果相关按键只在最终阶段（序列器已构建）生效，
// 音乐开关任何阶段都可用。
func (s *GreetingScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.audio != nil {
		enabled := s.audio.ToggleMusic()
		log.Printf("[GreetingScene] Music toggled: enabled=%v", enabled)
	}

	if s.sequencer == nil {
		return
	}

	for i, key := range effectKeys {
		if inpututil.IsKeyJustPressed(key) {
			kind := effects.EffectKind(i)
			s.sequencer.SetEffect(kind)
			if s.settings != nil {
				s.settings.SetEffect(kind.String())
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if s.sequencer.Playing() {
			s.sequencer.Pause()
		} else {
			s.sequencer.Resume()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) && s.engine != nil {
		if s.engine.Paused() {
			s.engine.Resume()
		} else {
			s.engine.Pause()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		s.changeSpeed(speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		s.changeSpeed(1 / speedStep)
	}
}

// changeSpeed 按倍率调整播放速度并同步到设置
func (s *GreetingScene) changeSpeed(factor float64) {
	next := s.sequencer.Speed() * factor
	if next < speedMin {
		next = speedMin
	}
	if next > speedMax {
		next = speedMax
	}
	s.sequencer.SetSpeed(next)
	if s.settings != nil {
		s.settings.SetSpeed(next)
	}
	log.Printf("[GreetingScene] Speed: %.2fx", next)
}

// handleResize 监视视口尺寸变化并做静默期防抖
//
// 尺寸每次变化都重置静默期计时，静默期满后粒子系统
// 按新尺寸重新配置并整体重建。
func (s *GreetingScene) handleResize(deltaTime float64) {
	width, height := s.viewport()
	if width != s.lastWidth || height != s.lastHeight {
		s.lastWidth = width
		s.lastHeight = height
		s.resizePending = true
		s.resizeTimer = config.ResizeDebounce
		return
	}

	if !s.resizePending {
		return
	}
	s.resizeTimer -= deltaTime
	if s.resizeTimer > 0 {
		return
	}
	s.resizePending = false

	if s.engine != nil {
		s.engine.Configure(float64(width), float64(height), s.density())
		s.engine.Reinitialize()
		log.Printf("[GreetingScene] Viewport resized to %dx%d, particles rebuilt", width, height)
	}
}

// loadFonts 加载场景字体
//
// 字体缺失不是致命错误，绘制端会降级为调试字体。
func (s *GreetingScene) loadFonts() {
	if s.fonts == nil {
		return
	}

	const fontPath = "assets/fonts/SimHei.ttf"
	var err error

	s.headingFont, err = s.fonts.LoadFont(fontPath, 40)
	if err != nil {
		log.Printf("Failed to load heading font: %v", err)
		return
	}
	s.titleFont, _ = s.fonts.LoadFont(fontPath, 56)
	s.subtitleFont, _ = s.fonts.LoadFont(fontPath, 28)
	s.bodyFont, _ = s.fonts.LoadFont(fontPath, 22)
	s.iconFont, _ = s.fonts.LoadFont(fontPath, 64)
}
