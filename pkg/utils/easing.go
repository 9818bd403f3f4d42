package utils

import "math"

// Easing Functions (缓动函数)
//
// 用于面板淡入和文字目标动画的速度曲线。
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的进度 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（用于文字淡入上移）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于面板切换）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平滑，用于图标的持续脉冲（往返取值）
// 公式：f(t) = (1 - cos(πt)) / 2
func EaseInOutSine(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 v 限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
