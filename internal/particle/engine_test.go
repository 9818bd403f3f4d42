package particle

import (
	"math"
	"testing"
)

// TestParticleCountFor 测试粒子数量三档表
func TestParticleCountFor(t *testing.T) {
	cases := []struct {
		width   float64
		density float64
		want    int
	}{
		{320, 1, 50},
		{767, 1, 50},
		{768, 1, 75},
		{1023, 1, 75},
		{1024, 1, 100},
		{1920, 1, 100},
		{320, 2, 25},
		{768, 2, 37}, // floor(75/2)
		{1024, 2, 50},
		{1024, 1.5, 66}, // floor(100/1.5)
		{320, 0, 50},    // 非法密度按 1 处理
		{320, 100, 1},   // 至少 1 个
	}

	for _, c := range cases {
		got := ParticleCountFor(c.width, c.density)
		if got != c.want {
			t.Errorf("ParticleCountFor(%v, %v): got %d, want %d", c.width, c.density, got, c.want)
		}
	}
}

// TestConfigureClampsZeroViewport 测试 0×0 视口被钳制，随机范围不产生 NaN
func TestConfigureClampsZeroViewport(t *testing.T) {
	e := NewEngine()
	e.Configure(0, 0, 1)

	if e.Width < 1 || e.Height < 1 {
		t.Errorf("Viewport not clamped: got %gx%g, want at least 1x1", e.Width, e.Height)
	}

	e.Initialize()
	for i, p := range e.Particles {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("Particle %d has NaN position: (%v, %v)", i, p.X, p.Y)
		}
	}
}

// TestInitializeBoundsAndCount 测试初始化后粒子数量与位置范围
func TestInitializeBoundsAndCount(t *testing.T) {
	e := NewEngine()
	e.Configure(1280, 720, 1)
	e.Initialize()

	if len(e.Particles) != 100 {
		t.Fatalf("Particle count: got %d, want 100", len(e.Particles))
	}

	for i, p := range e.Particles {
		if p.X < 0 || p.X > 1280 || p.Y < 0 || p.Y > 720 {
			t.Errorf("Particle %d out of bounds: (%v, %v)", i, p.X, p.Y)
		}
		if p.Size < 4 || p.Size > 12 {
			t.Errorf("Particle %d size out of range: %v", i, p.Size)
		}
		if p.Opacity < 0.2 || p.Opacity > 1.0 {
			t.Errorf("Particle %d opacity out of range: %v", i, p.Opacity)
		}
		if p.Glow < 10 || p.Glow > 30 {
			t.Errorf("Particle %d glow out of range: %v", i, p.Glow)
		}
		if p.VX < -1 || p.VX > 1 || p.VY < -1 || p.VY > 1 {
			t.Errorf("Particle %d velocity out of range: (%v, %v)", i, p.VX, p.VY)
		}
	}
}

// TestReinitializeAfterResize 测试视口变化后整体重建
func TestReinitializeAfterResize(t *testing.T) {
	e := NewEngine()
	e.Configure(1280, 720, 1)
	e.Initialize()

	e.Configure(640, 480, 1)
	e.Reinitialize()

	if len(e.Particles) != 50 {
		t.Fatalf("Particle count after resize: got %d, want 50", len(e.Particles))
	}
	for i, p := range e.Particles {
		if p.X < 0 || p.X > 640 || p.Y < 0 || p.Y > 480 {
			t.Errorf("Particle %d out of new bounds: (%v, %v)", i, p.X, p.Y)
		}
	}
}

// TestUpdateIntegratesPosition 测试无边界碰撞时位置按速度积分
func TestUpdateIntegratesPosition(t *testing.T) {
	e := NewEngine()
	e.Configure(100, 100, 1)
	e.Particles = []Particle{
		{X: 50, Y: 50, VX: 0.5, VY: -0.25, RotationSpeed: 0.1},
	}
	e.Run()

	e.Update()

	p := e.Particles[0]
	if p.X != 50.5 || p.Y != 49.75 {
		t.Errorf("Position after update: got (%v, %v), want (50.5, 49.75)", p.X, p.Y)
	}
	if math.Abs(p.Rotation-0.1) > 1e-9 {
		t.Errorf("Rotation after update: got %v, want 0.1", p.Rotation)
	}
}

// TestUpdateReflectsAtBoundary 测试边界反射：越界轴速度取反，不做位置钳制
func TestUpdateReflectsAtBoundary(t *testing.T) {
	e := NewEngine()
	e.Configure(100, 100, 1)
	e.Particles = []Particle{
		{X: -1, Y: 50, VX: -1, VY: 0},
	}
	e.Run()

	e.Update()

	p := e.Particles[0]
	if p.VX != 1 {
		t.Errorf("VX after reflection: got %v, want 1", p.VX)
	}
	// 位置不钳制，粒子可短暂停留在画布外
	if p.X != -2 {
		t.Errorf("X after reflection: got %v, want -2", p.X)
	}

	// 下一帧弹回
	e.Update()
	if e.Particles[0].X != -1 {
		t.Errorf("X after bounce-back: got %v, want -1", e.Particles[0].X)
	}
}

// TestUpdateReflectsUpperBoundary 测试右/下边界反射
func TestUpdateReflectsUpperBoundary(t *testing.T) {
	e := NewEngine()
	e.Configure(100, 100, 1)
	e.Particles = []Particle{
		{X: 99.5, Y: 99.5, VX: 1, VY: 1},
	}
	e.Run()

	e.Update()

	p := e.Particles[0]
	if p.VX != -1 || p.VY != -1 {
		t.Errorf("Velocity after reflection: got (%v, %v), want (-1, -1)", p.VX, p.VY)
	}
}

// TestPauseGatesSimulation 测试暂停只拦截步进，Resume 后恢复
func TestPauseGatesSimulation(t *testing.T) {
	e := NewEngine()
	e.Configure(100, 100, 1)
	e.Particles = []Particle{{X: 50, Y: 50, VX: 1, VY: 0}}
	e.Run()

	e.Pause()
	e.Update()
	if e.Particles[0].X != 50 {
		t.Errorf("Position changed while paused: got %v, want 50", e.Particles[0].X)
	}

	e.Resume()
	e.Update()
	if e.Particles[0].X != 51 {
		t.Errorf("Position after resume: got %v, want 51", e.Particles[0].X)
	}
}

// TestStoppedEngineDoesNotStep 测试未 Run 的引擎不步进
func TestStoppedEngineDoesNotStep(t *testing.T) {
	e := NewEngine()
	e.Configure(100, 100, 1)
	e.Particles = []Particle{{X: 50, Y: 50, VX: 1, VY: 0}}

	e.Update()
	if e.Particles[0].X != 50 {
		t.Errorf("Stopped engine stepped particle: got %v, want 50", e.Particles[0].X)
	}

	e.Run()
	e.Stop()
	e.Update()
	if e.Particles[0].X != 50 {
		t.Errorf("Engine stepped after Stop: got %v, want 50", e.Particles[0].X)
	}
}

// TestSetPalette 测试调色板覆盖与空切片忽略
func TestSetPalette(t *testing.T) {
	e := NewEngine()
	e.SetPalette(nil)
	if len(e.palette) != len(DefaultPalette) {
		t.Errorf("Empty palette should be ignored")
	}

	e.SetPalette(DefaultPalette[:2])
	e.Configure(320, 240, 1)
	e.Initialize()
	for i, p := range e.Particles {
		if p.Color != DefaultPalette[0] && p.Color != DefaultPalette[1] {
			t.Errorf("Particle %d color not from palette: %v", i, p.Color)
		}
	}
}
