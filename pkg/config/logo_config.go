package config

import "seehuhn.de/go/geom/vec"

// Logo 几何配置
// 坐标为 Logo 自身坐标系（SVG viewBox 坐标），原点位于底边中点，Y 轴向下

// LogoViewBox Logo 的 viewBox：-1800 -3118 3600 3118
var LogoViewBox = ViewBox{MinX: -1800, MinY: -3118, Width: 3600, Height: 3118}

// ViewBox SVG viewBox
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// LogoSide Logo 的左右两半，分别使用左右两侧的明暗强度
type LogoSide int

const (
	SideLeft LogoSide = iota
	SideRight
)

// FillRole 图形的填充来源
type FillRole int

const (
	// RoleArrow 箭头（用户可选颜色）
	RoleArrow FillRole = iota
	// RoleInner 内圈（随主题变化的固定半透明色）
	RoleInner
	// RoleOuter 外圈（用户可选颜色）
	RoleOuter
)

// String 返回填充来源名称
func (r FillRole) String() string {
	switch r {
	case RoleArrow:
		return "arrow"
	case RoleInner:
		return "inner"
	case RoleOuter:
		return "outer"
	}
	return "unknown"
}

// LogoPart Logo 的一个凸多边形部件
type LogoPart struct {
	Role   FillRole
	Side   LogoSide
	Points []vec.Vec2
}

// LogoParts 按绘制顺序排列的部件（箭头、内圈、外圈，每种左右各一）
//
// 对应的 SVG 路径：
//
//	M0-15e2v1e3L∓866 0z
//	M0-2118v618L∓866 0h∓357z
//	M0-3118v1e3L∓1223 0h∓577z
var LogoParts = []LogoPart{
	{Role: RoleArrow, Side: SideLeft, Points: []vec.Vec2{{X: 0, Y: -1500}, {X: 0, Y: -500}, {X: -866, Y: 0}}},
	{Role: RoleArrow, Side: SideRight, Points: []vec.Vec2{{X: 0, Y: -1500}, {X: 0, Y: -500}, {X: 866, Y: 0}}},
	{Role: RoleInner, Side: SideLeft, Points: []vec.Vec2{{X: 0, Y: -2118}, {X: 0, Y: -1500}, {X: -866, Y: 0}, {X: -1223, Y: 0}}},
	{Role: RoleInner, Side: SideRight, Points: []vec.Vec2{{X: 0, Y: -2118}, {X: 0, Y: -1500}, {X: 866, Y: 0}, {X: 1223, Y: 0}}},
	{Role: RoleOuter, Side: SideLeft, Points: []vec.Vec2{{X: 0, Y: -3118}, {X: 0, Y: -2118}, {X: -1223, Y: 0}, {X: -1800, Y: 0}}},
	{Role: RoleOuter, Side: SideRight, Points: []vec.Vec2{{X: 0, Y: -3118}, {X: 0, Y: -2118}, {X: 1223, Y: 0}, {X: 1800, Y: 0}}},
}
