package components

// LabelStyle 文字样式
type LabelStyle int

const (
	// LabelTitle 侧边栏标题
	LabelTitle LabelStyle = iota
	// LabelDescription 侧边栏描述，按宽度自动换行
	LabelDescription
)

// LabelComponent 静态文字
type LabelComponent struct {
	Text     string
	Style    LabelStyle
	FontSize float64
	// MaxLines 最多显示的行数，0 表示不限
	MaxLines int
}
