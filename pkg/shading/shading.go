// Package shading 根据指针位置计算 Logo 左右两半的明暗强度
//
// 模拟"光源跟随鼠标"的效果：以 Logo 的视觉中心为原点，求指针方向的角度，
// 再按左右两侧各自的相位偏移换算成 [0.5, 1] 区间的不透明度。
//
// 本包只包含纯函数，不持有任何状态，可以在任意 goroutine 中调用。
package shading

import "math"

const (
	// OpticalCenterDivisor 视觉中心的纵向位置 = 高度 / 1.6
	// 经验值，用于让明暗效果看起来自然，不要修改
	OpticalCenterDivisor = 1.6

	// RotationOffset 左右两侧的相位偏移（±60°）
	RotationOffset = math.Pi / 3

	// ShadeFloor 明暗强度下限
	ShadeFloor = 0.5
)

// BoundingBox 参考图形在视口坐标系中的轴对齐矩形
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// OpticalCenter 返回视觉中心（水平居中，纵向位于 Height/1.6 处）
func (b BoundingBox) OpticalCenter() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/OpticalCenterDivisor
}

// PointerPosition 最新的指针坐标（视口坐标系）
type PointerPosition struct {
	X, Y float64
}

// Polarity 主题极性，决定光照方向
type Polarity int

const (
	// Dark 深色主题
	Dark Polarity = iota
	// Light 浅色主题
	Light
)

// Sign 深色主题返回 +1，浅色主题返回 -1
func (p Polarity) Sign() float64 {
	if p == Light {
		return -1
	}
	return 1
}

// String 返回主题名称（"dark" / "light"）
func (p Polarity) String() string {
	if p == Light {
		return "light"
	}
	return "dark"
}

// ParsePolarity 解析主题名称，未知名称返回 false
func ParsePolarity(s string) (Polarity, bool) {
	switch s {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	}
	return Dark, false
}

// ShadeResult 左右两侧的明暗强度，取值 [0.5, 1]
type ShadeResult struct {
	Left  float64
	Right float64
}

// ComputeAngle 计算从视觉中心指向指针的角度（弧度）
//
// atan2 的参数顺序是（水平位移, 垂直位移），因此 0 表示指针位于视觉中心正下方，
// 指针向屏幕左侧移动时角度增大。
//
// 参数:
//   - box: 参考图形的包围盒，nil 表示尚未布局
//   - x, y: 指针坐标
//
// 返回:
//   - 角度，取值 (-π, π]；box 为 nil 或结果为 NaN 时返回 0
func ComputeAngle(box *BoundingBox, x, y float64) float64 {
	if box == nil {
		return 0
	}

	cx, cy := box.OpticalCenter()
	angle := math.Atan2(x-cx, y-cy)
	if math.IsNaN(angle) {
		return 0
	}
	// atan2(-0, 负数) 会得到 -π，统一到区间右端
	if angle == -math.Pi {
		return math.Pi
	}
	return angle
}

// ComputeShade 计算单侧的明暗强度
//
// intensity = min(1, |sin((angle+rotationOffset)/2)|³ + 0.5)，保留两位小数。
// 立方用于降低对比度，+0.5 提高整体亮度。
func ComputeShade(angle, rotationOffset float64) float64 {
	s := math.Abs(math.Sin((angle + rotationOffset) / 2))
	return round2(math.Min(1, s*s*s+ShadeFloor))
}

// Compute 计算左右两侧的明暗强度
func Compute(box *BoundingBox, p PointerPosition, polarity Polarity) ShadeResult {
	angle := polarity.Sign() * ComputeAngle(box, p.X, p.Y)
	return ShadeResult{
		Left:  ComputeShade(angle, -RotationOffset),
		Right: ComputeShade(angle, RotationOffset),
	}
}

// round2 四舍五入到两位小数（0.625 -> 0.63）
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
