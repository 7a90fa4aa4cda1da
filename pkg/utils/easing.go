package utils

import "math"

// 缓动函数
// 接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]；超出范围的 t 先被截断

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseInOutCubic 三次方缓入缓出（CSS ease-in-out 的近似）
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Transition 固定时长的过渡动画进度
type Transition struct {
	Duration float64 // 秒
	elapsed  float64
	running  bool
}

// Start 从头开始过渡
func (tr *Transition) Start() {
	tr.elapsed = 0
	tr.running = tr.Duration > 0
}

// Update 推进过渡
func (tr *Transition) Update(deltaTime float64) {
	if !tr.running {
		return
	}
	tr.elapsed += deltaTime
	if tr.elapsed >= tr.Duration {
		tr.running = false
	}
}

// Running 是否仍在进行
func (tr *Transition) Running() bool {
	return tr.running
}

// Progress 缓动后的进度；未开始或已结束时为 1
func (tr *Transition) Progress() float64 {
	if !tr.running {
		return 1
	}
	return EaseInOutCubic(tr.elapsed / tr.Duration)
}
