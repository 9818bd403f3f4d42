package particle

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 形状绘制
//
// 每个形状函数接收粒子自身的光晕半径作为显式参数，
// 不从粒子集合中按坐标反查（浮点相等反查既脆弱又没有必要）。

// whiteSubImage 是 DrawTriangles 的纯白源图（标准做法：
// 取 3×3 白图中间 1×1，避免采样到边缘）。
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// heartSegments 心形贝塞尔曲线的平展段数
const heartSegments = 12

// drawParticle 按形状分发绘制单个粒子
func drawParticle(dst *ebiten.Image, p *Particle, glow float64) {
	switch p.Shape {
	case ShapeHeart:
		drawHeart(dst, p.X, p.Y, p.Size, p.Rotation, p.Color, p.Opacity, glow)
	case ShapeCircle:
		drawCircle(dst, p.X, p.Y, p.Size, p.Color, p.Opacity, glow)
	case ShapeStar:
		drawStar(dst, p.X, p.Y, p.Size, p.Rotation, p.Color, p.Opacity, glow)
	}
}

// drawGlow 在形状背后绘制光晕
//
// ebiten 没有模糊样式，用两层低透明度同心圆近似：
// 外层到光晕半径，内层到一半半径。
func drawGlow(dst *ebiten.Image, x, y, size, glow, opacity float64, clr color.RGBA) {
	outer := float32(size/2 + glow/2)
	inner := float32(size/2 + glow/4)
	vector.DrawFilledCircle(dst, float32(x), float32(y), outer, scaleAlpha(clr, opacity*0.10), true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), inner, scaleAlpha(clr, opacity*0.18), true)
}

// drawCircle 圆形粒子：半径 size/2 的圆盘
func drawCircle(dst *ebiten.Image, x, y, size float64, clr color.RGBA, opacity, glow float64) {
	drawGlow(dst, x, y, size, glow, opacity, clr)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size/2), scaleAlpha(clr, opacity), true)
}

// drawHeart 心形粒子
//
// 两条三次贝塞尔曲线构成左右两瓣，顶部两瓣在按 size 缩放的
// 中线处汇合，底部收束成尖。曲线平展成折线后按非零环绕填充。
func drawHeart(dst *ebiten.Image, x, y, size, rotation float64, clr color.RGBA, opacity, glow float64) {
	drawGlow(dst, x, y, size, glow, opacity, clr)

	s := size
	top := -0.2 * s

	// 局部坐标下的轮廓（原点为粒子中心）
	pts := make([][2]float64, 0, 4*heartSegments)
	pts = appendCubic(pts, 0, top, 0, -0.5*s, -0.5*s, -0.5*s, -0.5*s, top)
	pts = appendCubic(pts, -0.5*s, top, -0.5*s, 0.1*s, 0, 0.3*s, 0, 0.5*s)
	pts = appendCubic(pts, 0, 0.5*s, 0, 0.3*s, 0.5*s, 0.1*s, 0.5*s, top)
	pts = appendCubic(pts, 0.5*s, top, 0.5*s, -0.5*s, 0, -0.5*s, 0, top)

	fillPolygon(dst, pts, x, y, rotation, scaleAlpha(clr, opacity))
}

// drawStar 五角星粒子
//
// 非标准画法，按原始公式复刻：以 size/2 为半径，从 -π/2 起
// 每步前进 4π/5 取 5 个顶点，顶点之间直接连线闭合。
// 步长跳过十边形的间隔角，得到的是五芒星轮廓而非凸五角星。
func drawStar(dst *ebiten.Image, x, y, size, rotation float64, clr color.RGBA, opacity, glow float64) {
	drawGlow(dst, x, y, size, glow, opacity, clr)

	pts := starVertices(size)
	fillPolygon(dst, pts, x, y, rotation, scaleAlpha(clr, opacity))
}

// starVertices 返回五芒星的 5 个顶点（局部坐标）
func starVertices(size float64) [][2]float64 {
	const step = 4 * math.Pi / 5
	r := size / 2

	pts := make([][2]float64, 5)
	for i := 0; i < 5; i++ {
		angle := -math.Pi/2 + float64(i)*step
		pts[i] = [2]float64{r * math.Cos(angle), r * math.Sin(angle)}
	}
	return pts
}

// appendCubic 将三次贝塞尔曲线平展为折线段追加到 pts
func appendCubic(pts [][2]float64, x0, y0, cx1, cy1, cx2, cy2, x1, y1 float64) [][2]float64 {
	for i := 1; i <= heartSegments; i++ {
		t := float64(i) / heartSegments
		mt := 1 - t
		px := mt*mt*mt*x0 + 3*mt*mt*t*cx1 + 3*mt*t*t*cx2 + t*t*t*x1
		py := mt*mt*mt*y0 + 3*mt*mt*t*cy1 + 3*mt*t*t*cy2 + t*t*t*y1
		pts = append(pts, [2]float64{px, py})
	}
	return pts
}

// fillPolygon 将局部坐标轮廓旋转平移到屏幕坐标后填充
//
// 扇形三角化 + 非零环绕规则，自交多边形（五芒星）也能正确填充。
func fillPolygon(dst *ebiten.Image, pts [][2]float64, x, y, rotation float64, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	sin, cos := math.Sincos(rotation)
	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff

	vs := make([]ebiten.Vertex, len(pts))
	for i, pt := range pts {
		px := x + pt[0]*cos - pt[1]*sin
		py := y + pt[0]*sin + pt[1]*cos
		vs[i] = ebiten.Vertex{
			DstX:   float32(px),
			DstY:   float32(py),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// scaleAlpha 返回按 opacity 缩放后的预乘颜色
func scaleAlpha(clr color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * opacity),
		G: uint8(float64(clr.G) * opacity),
		B: uint8(float64(clr.B) * opacity),
		A: uint8(float64(clr.A) * opacity),
	}
}
