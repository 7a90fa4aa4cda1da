package systems

import (
	"image"
	"image/color"
	"sync"

	"github.com/decker502/beauty/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"seehuhn.de/go/geom/vec"
)

var (
	whiteImageOnce sync.Once
	whiteSubImage  *ebiten.Image
)

// whiteImage 纯白纹理，DrawTriangles 填充纯色时使用
// 取 3x3 图片的中心像素，避免采样到边缘
func whiteImage() *ebiten.Image {
	whiteImageOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// fanIndices 凸多边形的扇形三角剖分索引
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	is := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	return is
}

// fillPolygon 以纯色填充凸多边形
//
// 参数:
//   - points: 屏幕坐标下的顶点
//   - clr: 非预乘颜色
//   - opacity: 额外的不透明度（与 clr 的 alpha 相乘）
func fillPolygon(screen *ebiten.Image, points []vec.Vec2, clr color.NRGBA, opacity float64) {
	is := fanIndices(len(points))
	if is == nil {
		return
	}

	a := float32(clr.A) / 0xff * float32(opacity)
	// 顶点颜色使用预乘 alpha
	r := float32(clr.R) / 0xff * a
	g := float32(clr.G) / 0xff * a
	b := float32(clr.B) / 0xff * a

	vs := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// fillRect 填充矩形
func fillRect(screen *ebiten.Image, r config.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, true)
}

// strokeRect 描边矩形
func strokeRect(screen *ebiten.Image, r config.Rect, width float64, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), clr, true)
}

// drawText 在 (x, y) 处绘制文字（左上角对齐）
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextCentered 在矩形内水平、垂直居中绘制文字
func drawTextCentered(screen *ebiten.Image, str string, face *text.GoTextFace, r config.Rect, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	w, h := text.Measure(str, face, 0)
	drawText(screen, str, face, r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2, clr)
}

// verticallyCentered 文字在矩形内垂直居中时的 Y 坐标
func verticallyCentered(r config.Rect, face *text.GoTextFace) float64 {
	if face == nil {
		return r.Y
	}
	m := face.Metrics()
	return r.Y + (r.Height-(m.HAscent+m.HDescent))/2
}
