// Package particle implements the drifting shape backdrop of the
// greeting card: a set of independently animated hearts, circles and
// stars that float across the viewport and bounce off its edges.
//
// The engine owns its particles exclusively. They are created in bulk
// by Initialize, mutated every frame by Update, and wholly regenerated
// (never resized in place) when the viewport changes.
package particle

import "image/color"

// Shape 粒子形状
type Shape int

const (
	// ShapeHeart 贝塞尔曲线心形
	ShapeHeart Shape = iota
	// ShapeCircle 圆形
	ShapeCircle
	// ShapeStar 五角星（非标准画法，顶点直接相连）
	ShapeStar

	shapeCount = 3
)

// String returns the shape name for logging.
func (s Shape) String() string {
	switch s {
	case ShapeHeart:
		return "heart"
	case ShapeCircle:
		return "circle"
	case ShapeStar:
		return "star"
	default:
		return "unknown"
	}
}

// Particle 单个漂浮粒子
//
// 位置为视口坐标，速度单位是每帧位移（渲染节奏跟随显示刷新）。
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Size          float64 // 4 ~ 12
	Opacity       float64 // 0.2 ~ 1.0
	Glow          float64 // 光晕半径 10 ~ 30
	Rotation      float64 // 弧度
	RotationSpeed float64 // 弧度/帧
	Color         color.RGBA
	Shape         Shape
}

// DefaultPalette 内置五色调色板（粉红与暖金，贺卡主题）
var DefaultPalette = []color.RGBA{
	{R: 0xff, G: 0x6b, B: 0x81, A: 0xff}, // 玫瑰粉
	{R: 0xff, G: 0x9f, B: 0xb2, A: 0xff}, // 浅粉
	{R: 0xfe, G: 0xca, B: 0x57, A: 0xff}, // 暖金
	{R: 0xff, G: 0xc2, B: 0xe2, A: 0xff}, // 樱花粉
	{R: 0xf8, G: 0xf3, B: 0xd4, A: 0xff}, // 米白
}
