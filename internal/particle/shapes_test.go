package particle

import (
	"image/color"
	"math"
	"testing"
)

// TestStarVertices 测试五芒星顶点公式：半径 size/2，起始角 -π/2，步长 4π/5
func TestStarVertices(t *testing.T) {
	const size = 10.0
	const r = size / 2

	pts := starVertices(size)
	if len(pts) != 5 {
		t.Fatalf("Vertex count: got %d, want 5", len(pts))
	}

	// 顶点 0 在正上方 (0, -r)
	if math.Abs(pts[0][0]) > 1e-9 || math.Abs(pts[0][1]+r) > 1e-9 {
		t.Errorf("Vertex 0: got (%v, %v), want (0, %v)", pts[0][0], pts[0][1], -r)
	}

	// 每个顶点都在半径 r 的圆上，角度按 4π/5 递增
	const step = 4 * math.Pi / 5
	for i, pt := range pts {
		dist := math.Hypot(pt[0], pt[1])
		if math.Abs(dist-r) > 1e-9 {
			t.Errorf("Vertex %d radius: got %v, want %v", i, dist, r)
		}

		angle := -math.Pi/2 + float64(i)*step
		wantX := r * math.Cos(angle)
		wantY := r * math.Sin(angle)
		if math.Abs(pt[0]-wantX) > 1e-9 || math.Abs(pt[1]-wantY) > 1e-9 {
			t.Errorf("Vertex %d: got (%v, %v), want (%v, %v)", i, pt[0], pt[1], wantX, wantY)
		}
	}
}

// TestStarVerticesSkipAlternate 测试步长跳过十边形间隔角（五芒星而非凸五边形）
func TestStarVerticesSkipAlternate(t *testing.T) {
	pts := starVertices(10)

	// 相邻顶点的夹角应为 4π/5（等价于凸五边形画法的两步），
	// 即顶点序列 0→1 跨过 144°，而不是 72°
	a0 := math.Atan2(pts[0][1], pts[0][0])
	a1 := math.Atan2(pts[1][1], pts[1][0])
	diff := math.Mod(a1-a0+4*math.Pi, 2*math.Pi)
	if math.Abs(diff-4*math.Pi/5) > 1e-9 {
		t.Errorf("Angle between consecutive vertices: got %v, want %v", diff, 4*math.Pi/5)
	}
}

// TestAppendCubicEndpoints 测试贝塞尔平展折线终点到达曲线终点
func TestAppendCubicEndpoints(t *testing.T) {
	pts := appendCubic(nil, 0, 0, 1, 0, 2, 1, 3, 3)

	if len(pts) != heartSegments {
		t.Fatalf("Segment count: got %d, want %d", len(pts), heartSegments)
	}
	last := pts[len(pts)-1]
	if math.Abs(last[0]-3) > 1e-9 || math.Abs(last[1]-3) > 1e-9 {
		t.Errorf("Last point: got (%v, %v), want (3, 3)", last[0], last[1])
	}
}

// TestScaleAlpha 测试透明度缩放与钳制
func TestScaleAlpha(t *testing.T) {
	clr := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	half := scaleAlpha(clr, 0.5)
	if half.R != 100 || half.G != 50 || half.B != 25 || half.A != 127 {
		t.Errorf("scaleAlpha(0.5): got %v", half)
	}

	full := scaleAlpha(clr, 2.0) // 超界钳制到 1
	if full != clr {
		t.Errorf("scaleAlpha(2.0): got %v, want %v", full, clr)
	}

	zero := scaleAlpha(clr, -1)
	if zero.A != 0 {
		t.Errorf("scaleAlpha(-1): got alpha %d, want 0", zero.A)
	}
}
