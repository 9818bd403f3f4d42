package particle

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// 粒子数量三档表：视口宽度 < 768 → 50，< 1024 → 75，否则 100。
// 每档再除以设备像素密度（向下取整，至少 1 个）。
const (
	tierSmallWidth  = 768
	tierMediumWidth = 1024

	tierSmallCount  = 50
	tierMediumCount = 75
	tierLargeCount  = 100
)

// ParticleCountFor 根据视口宽度和像素密度计算粒子数量
//
// 纯函数，不依赖引擎状态。density <= 0 按 1 处理。
func ParticleCountFor(width, density float64) int {
	var base int
	switch {
	case width < tierSmallWidth:
		base = tierSmallCount
	case width < tierMediumWidth:
		base = tierMediumCount
	default:
		base = tierLargeCount
	}

	if density <= 0 {
		density = 1
	}
	count := int(math.Floor(float64(base) / density))
	if count < 1 {
		count = 1
	}
	return count
}

// Engine 粒子引擎
//
// 独占一块离屏画布，每帧完整清除后重绘全部粒子。
// Run/Stop 控制引擎是否参与帧循环；Pause/Resume 只拦截模拟步进，
// 暂停期间画布仍按当前状态继续渲染。
type Engine struct {
	// Width/Height 当前视口尺寸（Configure 时钳制到至少 1×1）
	Width, Height float64

	// Particles 当前粒子集合，仅由引擎创建和步进。
	// 导出仅用于检视（测试、调试面板），外部不应增删元素。
	Particles []Particle

	density float64
	count   int
	palette []color.RGBA
	rng     *rand.Rand

	running bool
	paused  bool

	layer *ebiten.Image // 离屏画布，尺寸跟随视口重建
}

// NewEngine 创建粒子引擎（未配置、未填充）
func NewEngine() *Engine {
	return &Engine{
		palette: DefaultPalette,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		density: 1,
	}
}

// SetPalette 替换调色板（配置文件覆盖），空切片被忽略
func (e *Engine) SetPalette(palette []color.RGBA) {
	if len(palette) == 0 {
		return
	}
	e.palette = palette
}

// Configure 按视口尺寸和像素密度重新计算粒子数量
//
// 隐藏窗口可能上报 0×0 视口，这里钳制到 1×1，
// 避免随机范围塌缩成 NaN 进入粒子状态。
func (e *Engine) Configure(width, height, density float64) {
	if width < 1 || math.IsNaN(width) {
		width = 1
	}
	if height < 1 || math.IsNaN(height) {
		height = 1
	}
	if density <= 0 || math.IsNaN(density) {
		density = 1
	}

	e.Width = width
	e.Height = height
	e.density = density
	e.count = ParticleCountFor(width, density)
}

// Initialize 按配置数量填充粒子集合，每个粒子独立随机
func (e *Engine) Initialize() {
	e.Particles = make([]Particle, e.count)
	for i := range e.Particles {
		e.Particles[i] = e.spawnParticle()
	}
	log.Printf("[Particle] Initialized %d particles (%gx%g, density=%g)",
		e.count, e.Width, e.Height, e.density)
}

// Reinitialize 丢弃全部粒子并按当前配置重新生成
//
// 视口变化后调用。粒子整体重建，不做原位缩放。
func (e *Engine) Reinitialize() {
	e.Initialize()
}

// spawnParticle 生成一个随机粒子
func (e *Engine) spawnParticle() Particle {
	return Particle{
		X:             e.rng.Float64() * e.Width,
		Y:             e.rng.Float64() * e.Height,
		VX:            e.rng.Float64()*2 - 1,
		VY:            e.rng.Float64()*2 - 1,
		Size:          4 + e.rng.Float64()*8,
		Opacity:       0.2 + e.rng.Float64()*0.8,
		Glow:          10 + e.rng.Float64()*20,
		Rotation:      e.rng.Float64() * 2 * math.Pi,
		RotationSpeed: (e.rng.Float64() - 0.5) * 0.1,
		Color:         e.palette[e.rng.Intn(len(e.palette))],
		Shape:         Shape(e.rng.Intn(shapeCount)),
	}
}

// Update 推进一帧模拟
//
// 位置按速度积分，旋转按角速度积分；越过视口边界时反转
// 越界轴的速度（简单弹性反射，不做位置钳制，粒子可能短暂
// 越出画布后弹回）。引擎未运行或已暂停时不做任何事。
func (e *Engine) Update() {
	if !e.running || e.paused {
		return
	}
	for i := range e.Particles {
		e.stepParticle(&e.Particles[i])
	}
}

// stepParticle 对单个粒子做一帧积分与边界反射
func (e *Engine) stepParticle(p *Particle) {
	p.X += p.VX
	p.Y += p.VY
	p.Rotation += p.RotationSpeed

	if p.X < 0 || p.X > e.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > e.Height {
		p.VY = -p.VY
	}
}

// Run 启动帧循环参与（配对调用 Stop 释放画布）
func (e *Engine) Run() {
	e.running = true
	e.paused = false
}

// Stop 停止帧循环参与并释放离屏画布
//
// 调用方必须与 Run 配对调用，否则画布随引擎存活期一直占用显存。
func (e *Engine) Stop() {
	e.running = false
	if e.layer != nil {
		e.layer.Deallocate()
		e.layer = nil
	}
}

// Pause 暂停模拟步进（渲染继续）
func (e *Engine) Pause() {
	e.paused = true
}

// Resume 恢复模拟步进
func (e *Engine) Resume() {
	e.paused = false
}

// Running 返回引擎是否在运行
func (e *Engine) Running() bool {
	return e.running
}

// Paused 返回模拟是否处于暂停
func (e *Engine) Paused() bool {
	return e.paused
}

// Draw 渲染全部粒子到 screen
//
// 离屏画布每帧完整清除（不做局部脏区跟踪），逐个粒子按
// 自身的颜色、透明度、光晕绘制，最后整层叠加到 screen。
func (e *Engine) Draw(screen *ebiten.Image) {
	if !e.running {
		return
	}

	w, h := int(e.Width), int(e.Height)
	if w < 1 || h < 1 {
		return
	}
	if e.layer == nil || e.layer.Bounds().Dx() != w || e.layer.Bounds().Dy() != h {
		if e.layer != nil {
			e.layer.Deallocate()
		}
		e.layer = ebiten.NewImage(w, h)
	}

	e.layer.Clear()
	for i := range e.Particles {
		p := &e.Particles[i]
		drawParticle(e.layer, p, p.Glow)
	}

	screen.DrawImage(e.layer, nil)
}
