package systems

import (
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/utils"
)

// fakeInput 脚本化的指针和键盘输入
type fakeInput struct {
	x, y         float64
	justPressed  bool
	pressed      bool
	justReleased bool
	event        utils.TextInputEvent
}

func (f *fakeInput) Position() (float64, float64)        { return f.x, f.y }
func (f *fakeInput) JustPressed() bool                   { return f.justPressed }
func (f *fakeInput) Pressed() bool                       { return f.pressed }
func (f *fakeInput) JustReleased() bool                  { return f.justReleased }
func (f *fakeInput) ReadTextInput() utils.TextInputEvent { return f.event }

// moveTo 指针移动，无按键
func (f *fakeInput) moveTo(x, y float64) {
	*f = fakeInput{x: x, y: y}
}

// press 在 (x, y) 按下
func (f *fakeInput) press(x, y float64) {
	*f = fakeInput{x: x, y: y, justPressed: true, pressed: true}
}

// hold 保持按下
func (f *fakeInput) hold(x, y float64) {
	*f = fakeInput{x: x, y: y, pressed: true}
}

// release 在 (x, y) 抬起
func (f *fakeInput) release(x, y float64) {
	*f = fakeInput{x: x, y: y, justReleased: true}
}

// fakeColors 内存中的配色
type fakeColors map[string]string

func (c fakeColors) Color(key string) string    { return c[key] }
func (c fakeColors) SetColor(key, value string) { c[key] = value }

// center 矩形中心
func center(r config.Rect) (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// newLaidOut 创建实体管理器和已布局的 LayoutSystem
func newLaidOut(width, height int) (*ecs.EntityManager, *LayoutSystem) {
	em := ecs.NewEntityManager()
	ls := NewLayoutSystem(em)
	ls.SetScreenSize(width, height)
	return em, ls
}
