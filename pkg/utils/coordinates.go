// Package utils 提供常用的工具函数
//
// coordinates.go 提供 Logo 坐标系与屏幕坐标系之间的转换。
//
// # 坐标系统概述
//
//   - **Logo 坐标**：SVG viewBox 坐标，原点位于 Logo 底边中点，Y 轴向下
//   - **屏幕坐标**：相对于窗口左上角
//
// # 核心转换公式
//
// Logo 以 "xMidYMid meet" 方式放入元素矩形：
//
//	s  = min(rect.W / vb.W, rect.H / vb.H)
//	tx = rect.X + (rect.W - vb.W*s)/2 - vb.MinX*s
//	ty = rect.Y + (rect.H - vb.H*s)/2 - vb.MinY*s
//
// 屏幕坐标 = Logo 坐标 * s + (tx, ty)
package utils

import (
	"math"

	"github.com/decker502/beauty/pkg/config"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ViewBoxTransform 计算把 viewBox 等比缩放并居中放入 dst 的变换矩阵
//
// 参数:
//   - vb: Logo 的 viewBox
//   - dst: 目标元素矩形（屏幕坐标）
//
// 返回:
//   - matrix.Matrix: Logo 坐标 -> 屏幕坐标；dst 或 vb 为空时返回零矩阵（所有点映射到原点）
func ViewBoxTransform(vb config.ViewBox, dst config.Rect) matrix.Matrix {
	if vb.Width <= 0 || vb.Height <= 0 || dst.Empty() {
		return matrix.Matrix{}
	}

	s := math.Min(dst.Width/vb.Width, dst.Height/vb.Height)
	tx := dst.X + (dst.Width-vb.Width*s)/2 - vb.MinX*s
	ty := dst.Y + (dst.Height-vb.Height*s)/2 - vb.MinY*s
	return matrix.Matrix{s, 0, 0, s, tx, ty}
}

// InverseViewBoxTransform 屏幕坐标 -> Logo 坐标
// 第二个返回值为 false 表示变换不可逆（元素尚未布局）
func InverseViewBoxTransform(m matrix.Matrix) (matrix.Matrix, bool) {
	if m[0]*m[3]-m[1]*m[2] == 0 {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}

// ApplyPoint 对单个点应用变换
func ApplyPoint(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// TransformPoints 对所有点应用变换，返回新切片
func TransformPoints(m matrix.Matrix, points []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(points))
	for i, p := range points {
		out[i] = ApplyPoint(m, p)
	}
	return out
}

// PointInPolygon 射线法判断点是否在多边形内部
// 多边形按顶点顺序闭合，顶点少于 3 个时返回 false
func PointInPolygon(p vec.Vec2, polygon []vec.Vec2) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// HitLogoPart 判断屏幕坐标是否落在 Logo 部件内
//
// 参数:
//   - m: Logo 坐标 -> 屏幕坐标 变换（ViewBoxTransform 的结果）
//   - part: Logo 部件（Logo 坐标）
//   - x, y: 屏幕坐标
func HitLogoPart(m matrix.Matrix, part config.LogoPart, x, y float64) bool {
	inv, ok := InverseViewBoxTransform(m)
	if !ok {
		return false
	}
	lx, ly := inv.Apply(x, y)
	return PointInPolygon(vec.Vec2{X: lx, Y: ly}, part.Points)
}
