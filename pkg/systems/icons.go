package systems

import (
	"image/color"
	"math"

	"github.com/decker502/beauty/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// 图标使用 24x24 的描边路径（heroicons outline），线宽 2

// iconSize 图标路径的坐标范围
const iconSize = 24.0

// iconBuilder 在 24x24 坐标系中构造图标路径
type iconBuilder func(p *vector.Path)

// arcBetween 以 (cx, cy) 为圆心，从 from 画圆弧到 to
func arcBetween(p *vector.Path, cx, cy, r float64, from, to vec.Vec2, dir vector.Direction) {
	a0 := math.Atan2(from.Y-cy, from.X-cx)
	a1 := math.Atan2(to.Y-cy, to.X-cx)
	p.Arc(float32(cx), float32(cy), float32(r), float32(a0), float32(a1), dir)
}

// sunIcon 太阳：圆 + 8 条光线
func sunIcon(p *vector.Path) {
	p.MoveTo(16, 12)
	p.Arc(12, 12, 4, 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		cos, sin := math.Cos(a), math.Sin(a)
		p.MoveTo(float32(12+8*cos), float32(12+8*sin))
		p.LineTo(float32(12+9*cos), float32(12+9*sin))
	}
}

// moonIcon 月牙：两段半径为 9 的圆弧
func moonIcon(p *vector.Path) {
	a := vec.Vec2{X: 20.354, Y: 15.354}
	b := vec.Vec2{X: 8.646, Y: 3.646}
	p.MoveTo(float32(a.X), float32(a.Y))
	arcBetween(p, 12, 12, 9, a, b, vector.Clockwise)
	arcBetween(p, 17, 7, 9, b, a, vector.CounterClockwise)
	p.Close()
}

// brushIcon 标题前的画笔图标
func brushIcon(p *vector.Path) {
	// 笔杆
	p.MoveTo(7, 21)
	p.Arc(7, 17, 4, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(3, 5)
	p.Arc(5, 5, 2, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.LineTo(9, 3)
	p.Arc(9, 5, 2, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(11, 17)
	p.Arc(7, 17, 4, 0, math.Pi/2, vector.Clockwise)

	// 底座
	p.LineTo(19, 21)
	p.Arc(19, 19, 2, math.Pi/2, 0, vector.CounterClockwise)
	p.LineTo(21, 15)
	p.Arc(19, 15, 2, 0, -math.Pi/2, vector.CounterClockwise)
	p.LineTo(16.657, 13)

	// 斜杆
	p.MoveTo(11, 7.343)
	p.LineTo(12.657, 5.686)
	arcBetween(p, 14.071, 7.1, 2, vec.Vec2{X: 12.657, Y: 5.686}, vec.Vec2{X: 15.485, Y: 5.686}, vector.Clockwise)
	p.LineTo(18.314, 8.515)
	arcBetween(p, 16.9, 9.929, 2, vec.Vec2{X: 18.314, Y: 8.515}, vec.Vec2{X: 18.314, Y: 11.343}, vector.Clockwise)
	p.LineTo(9.828, 19.828)

	// 笔尖
	p.MoveTo(7, 17)
	p.LineTo(7.01, 17)
}

// iconTransform 24x24 图标坐标到屏幕矩形的变换，绕图标中心旋转 angle 弧度
func iconTransform(dst config.Rect, angle float64) matrix.Matrix {
	s := math.Min(dst.Width, dst.Height) / iconSize
	cos, sin := math.Cos(angle)*s, math.Sin(angle)*s
	cx, cy := dst.X+dst.Width/2, dst.Y+dst.Height/2
	// 先平移到原点再旋转缩放，最后移到目标中心
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		cx - 12*cos + 12*sin,
		cy - 12*sin - 12*cos,
	}
}

// drawIcon 描边绘制图标
//
// 参数:
//   - dst: 目标矩形
//   - clr: 描边颜色
//   - opacity: 不透明度
//   - angle: 绕中心的旋转角度（弧度）
func drawIcon(screen *ebiten.Image, build iconBuilder, dst config.Rect, clr color.RGBA, opacity, angle float64) {
	if dst.Empty() || opacity <= 0 {
		return
	}

	var path vector.Path
	build(&path)

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    2,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	if len(is) == 0 {
		return
	}

	m := iconTransform(dst, angle)
	a := float32(clr.A) / 0xff * float32(opacity)
	for i := range vs {
		x, y := m.Apply(float64(vs[i].DstX), float64(vs[i].DstY))
		vs[i].DstX = float32(x)
		vs[i].DstY = float32(y)
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff * a
		vs[i].ColorG = float32(clr.G) / 0xff * a
		vs[i].ColorB = float32(clr.B) / 0xff * a
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
