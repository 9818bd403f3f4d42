package scenes

import (
	"image/color"
	"math"
	"strings"

	"github.com/decker502/greeting/internal/particle"
	"github.com/decker502/greeting/pkg/config"
	"github.com/decker502/greeting/pkg/effects"
	"github.com/decker502/greeting/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场景配色
var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x10, B: 0x22, A: 0xff}
	headingColor    = color.RGBA{R: 0xff, G: 0xe3, B: 0xec, A: 0xff}
	titleColor      = color.RGBA{R: 0xff, G: 0x8f, B: 0xa8, A: 0xff}
	subtitleColor   = color.RGBA{R: 0xe8, G: 0xd9, B: 0xa8, A: 0xff}
	bodyColor       = color.RGBA{R: 0xd8, G: 0xd2, B: 0xe4, A: 0xff}
	dotColor        = color.RGBA{R: 0xff, G: 0x8f, B: 0xa8, A: 0xff}
	dotDimColor     = color.RGBA{R: 0x4a, G: 0x42, B: 0x5e, A: 0xff}
)

// visualState 某个文字目标在当前时刻的最终呈现参数
//
// 由目标的基础状态叠加所有活跃动画类算出，在每帧绘制时求值。
type visualState struct {
	alpha   float64
	offsetY float64
	scale   float64
	angle   float64
	clr     color.RGBA
}

// Draw 绘制场景
func (s *GreetingScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if s.stage < config.TotalStages {
		s.drawStagePanel(screen)
	} else {
		if s.engine != nil {
			s.engine.Draw(screen)
		}
		s.drawGreeting(screen)
	}

	s.drawStageDots(screen)
}

// drawStagePanel 绘制前两个阶段的过场面板
func (s *GreetingScene) drawStagePanel(screen *ebiten.Image) {
	idx := s.stage - 1
	if idx < 0 || idx >= len(s.cfg.Stages) {
		return
	}
	panel := s.cfg.Stages[idx]

	elapsed := s.sched.Now() - s.stageEnteredAt
	alpha := utils.EaseOutQuad(utils.Clamp01(elapsed / config.PanelFadeDuration))

	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	h := float64(bounds.Dy())

	// 正文按视口宽度自动换行
	body := panel.Body
	if s.bodyFont != nil {
		lines := utils.WrapText(body, s.bodyFont, float64(bounds.Dx())*0.8)
		body = strings.Join(lines, "\n")
	}

	s.drawCentered(screen, panel.Heading, s.headingFont, cx, h*0.42, headingColor, alpha, 0, 1)
	s.drawCentered(screen, body, s.bodyFont, cx, h*0.54, bodyColor, alpha, 0, 1)
}

// drawGreeting 绘制最终阶段的四个文字目标
func (s *GreetingScene) drawGreeting(screen *ebiten.Image) {
	if s.targets == nil {
		return
	}

	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	h := float64(bounds.Dy())

	s.drawTarget(screen, s.targets.Icon, s.iconFont, cx, h*0.20, titleColor)
	s.drawTarget(screen, s.targets.Title, s.titleFont, cx, h*0.38, titleColor)
	s.drawTarget(screen, s.targets.Subtitle, s.subtitleFont, cx, h*0.52, subtitleColor)
	s.drawTarget(screen, s.targets.Message, s.bodyFont, cx, h*0.70, bodyColor)
}

// drawTarget 按目标的活跃动画类求出呈现参数后绘制
func (s *GreetingScene) drawTarget(screen *ebiten.Image, tgt *effects.Target, face *text.GoTextFace, cx, cy float64, base color.RGBA) {
	if tgt == nil || tgt.Text == "" {
		return
	}
	vs := s.computeVisual(tgt, base)
	if vs.alpha <= 0 {
		return
	}
	s.drawCentered(screen, tgt.Text, face, cx, cy+vs.offsetY, vs.clr, vs.alpha, vs.angle, vs.scale)
}

// computeVisual 叠加目标基础状态与所有活跃动画类
func (s *GreetingScene) computeVisual(tgt *effects.Target, base color.RGBA) visualState {
	now := s.sched.Now()
	vs := visualState{
		alpha:   tgt.Alpha,
		offsetY: tgt.OffsetY,
		scale:   tgt.Scale,
		angle:   tgt.Angle,
		clr:     base,
	}

	if start, ok := tgt.ClassStart(effects.ClassFadeUp); ok {
		p := utils.EaseOutCubic(utils.Clamp01((now - start) / config.FadeDuration))
		vs.alpha *= p
		vs.offsetY += (1 - p) * config.FadeUpOffset
	}
	if start, ok := tgt.ClassStart(effects.ClassFadeIn); ok {
		vs.alpha *= utils.EaseOutQuad(utils.Clamp01((now - start) / config.MorphFadeDuration))
	}
	if start, ok := tgt.ClassStart(effects.ClassPulse); ok {
		phase := (now - start) / config.IconPulsePeriod
		vs.scale *= 1 + 0.08*math.Sin(2*math.Pi*phase)
	}
	if start, ok := tgt.ClassStart(effects.ClassSpin); ok {
		vs.angle += 2 * math.Pi * (now - start) / config.SpinPeriod
	}
	if start, ok := tgt.ClassStart(effects.ClassMorph); ok {
		vs.clr = s.morphColor(now - start)
	}
	if start, ok := tgt.ClassStart(effects.ClassScalePop); ok {
		p := utils.EaseOutCubic(utils.Clamp01((now - start) / config.ScalePopDuration))
		vs.scale *= 0.4 + 0.6*p
		vs.alpha *= utils.Clamp01(p * 2)
	}
	if start, ok := tgt.ClassStart(effects.ClassCombined); ok {
		elapsed := now - start
		vs.scale *= 1 + 0.05*math.Sin(2*math.Pi*elapsed/config.IconPulsePeriod)
		vs.angle += 0.06 * math.Sin(2*math.Pi*elapsed/config.CombinedWobblePeriod)
		vs.clr = s.morphColor(elapsed)
	}
	if start, ok := tgt.ClassStart(effects.ClassTokenFade); ok {
		// 最新词元出现时整体轻微提亮，避免逐词突兀
		p := utils.Clamp01((now - start) / config.TokenFadeDuration)
		vs.alpha *= 0.6 + 0.4*p
	}

	return vs
}

// morphColor 在调色板中随时间平滑循环取色
func (s *GreetingScene) morphColor(elapsed float64) color.RGBA {
	palette := s.palette
	if len(palette) == 0 {
		palette = particle.DefaultPalette
	}
	if len(palette) == 1 {
		return palette[0]
	}

	phase := math.Mod(elapsed/config.MorphColorPeriod, 1)
	if phase < 0 {
		phase += 1
	}
	pos := phase * float64(len(palette))
	i := int(pos) % len(palette)
	j := (i + 1) % len(palette)
	t := pos - math.Floor(pos)

	return color.RGBA{
		R: uint8(utils.Lerp(float64(palette[i].R), float64(palette[j].R), t)),
		G: uint8(utils.Lerp(float64(palette[i].G), float64(palette[j].G), t)),
		B: uint8(utils.Lerp(float64(palette[i].B), float64(palette[j].B), t)),
		A: 0xff,
	}
}

// drawCentered 以 (cx, cy) 为中心绘制文字，支持缩放与旋转
//
// 字体缺失时降级为调试字体，保证内容始终可见。
func (s *GreetingScene) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, clr color.RGBA, alpha, angle, scale float64) {
	if str == "" || alpha <= 0 {
		return
	}

	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(cx)-len(str)*3, int(cy))
		return
	}

	lineSpacing := face.Size * 1.5
	_, h := text.Measure(str, face, lineSpacing)

	op := &text.DrawOptions{}
	op.LineSpacing = lineSpacing
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(0, -h/2)
	if scale != 1 {
		op.GeoM.Scale(scale, scale)
	}
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))

	text.Draw(screen, str, face, op)
}

// drawStageDots 绘制底部的阶段指示圆点
func (s *GreetingScene) drawStageDots(screen *ebiten.Image) {
	bounds := screen.Bounds()
	cx := float32(bounds.Dx()) / 2
	y := float32(bounds.Dy()) - 24

	const radius = 5
	const gap = 22
	startX := cx - gap*float32(config.TotalStages-1)/2

	for i := 0; i < config.TotalStages; i++ {
		clr := dotDimColor
		if i < s.stage {
			clr = dotColor
		}
		vector.DrawFilledCircle(screen, startX+gap*float32(i), y, radius, clr, true)
	}
}
