package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入会先被限制到 [0, 1]。
//
// 参考：https://easings.net/

// Clamp 将 v 限制在 [lo, hi] 范围内
// NaN 会被视为 lo，避免无效值沿动画链路传播
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Smootherstep 五次平滑插值（Ken Perlin 版本）
// 特点：两端的一阶、二阶导数均为 0，快速滚动时 cue 边界处不会出现速度或加速度跳变
// 公式：f(t) = 6t⁵ - 15t⁴ + 10t³
func Smootherstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange 将 v 从区间 [inMin, inMax] 线性映射到 [outMin, outMax]，结果限制在输出区间内
// inMin == inMax 时返回 outMin
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := Clamp01((v - inMin) / (inMax - inMin))
	return Lerp(outMin, outMax, t)
}
