package components

import (
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/shading"
	"seehuhn.de/go/geom/matrix"
)

// LogoKind Logo 实例类型
type LogoKind int

const (
	// LogoMain 主区域的大 Logo，明暗计算使用它的包围盒
	LogoMain LogoKind = iota
	// LogoPreview 侧边栏的预览 Logo，与主 Logo 共用明暗结果
	LogoPreview
)

// LogoComponent Logo 组件
// 位置由 BoundsComponent 提供，Logo 以 meet 方式适配到该矩形内
type LogoComponent struct {
	Kind LogoKind

	// Parts 按绘制顺序排列的部件
	Parts []config.LogoPart

	// Transform viewBox 坐标到屏幕坐标的变换（LayoutSystem 更新）
	Transform matrix.Matrix

	// Shade 当前帧左右两侧的不透明度（ShadingSystem 更新）
	Shade shading.ShadeResult

	// Interactive 点击外圈或箭头时打开对应的颜色选择器
	Interactive bool

	// HoveredPart 指针所在的可点击部件下标，-1 表示无
	HoveredPart int
}
