package game

import (
	"testing"
	"time"

	"github.com/decker502/beauty/pkg/share"
)

// TestLocationStoreGetDefault 测试未设置参数返回默认值
func TestLocationStoreGetDefault(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)

	if got := ls.Get(share.ParamOuterColor, "#7f7f7f"); got != "#7f7f7f" {
		t.Errorf("Get() = %q, want #7f7f7f", got)
	}
	if ls.Search() != "" {
		t.Errorf("Search() = %q, want empty", ls.Search())
	}
}

// TestLocationStoreSetImmediate 测试内存中的值立即生效
func TestLocationStoreSetImmediate(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)
	ls.Set(share.ParamOuterColor, "#ff0000")

	if got := ls.Get(share.ParamOuterColor, "#7f7f7f"); got != "#ff0000" {
		t.Errorf("Get() = %q, want #ff0000", got)
	}
	if !ls.Pending() {
		t.Error("Pending() = false after Set")
	}
	if ls.FlushCount() != 0 {
		t.Errorf("FlushCount() = %d, want 0 before interval", ls.FlushCount())
	}
}

// TestLocationStoreFloodProtection 测试间隔内的多次修改只写入一次
func TestLocationStoreFloodProtection(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)

	colors := []string{"#100000", "#200000", "#300000", "#400000"}
	for _, c := range colors {
		ls.Set(share.ParamOuterColor, c)
		ls.Update(0.1)
	}
	if ls.FlushCount() != 0 {
		t.Fatalf("FlushCount() = %d after 0.4s, want 0", ls.FlushCount())
	}

	ls.Update(0.15)
	if ls.FlushCount() != 1 {
		t.Fatalf("FlushCount() = %d after 0.55s, want 1", ls.FlushCount())
	}
	if ls.Pending() {
		t.Error("Pending() = true after flush")
	}

	// 没有新修改时不再写入
	ls.Update(1)
	if ls.FlushCount() != 1 {
		t.Errorf("FlushCount() = %d, want 1", ls.FlushCount())
	}
}

// TestLocationStoreSameValue 测试设置相同的值不触发写入
func TestLocationStoreSameValue(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)
	ls.Set(share.ParamArrowColor, "#00ff00")
	if err := ls.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	ls.Set(share.ParamArrowColor, "#00ff00")
	if ls.Pending() {
		t.Error("Pending() = true after setting unchanged value")
	}
}

// TestLocationStoreSearchOrder 测试查询字符串保持首次设置的顺序
func TestLocationStoreSearchOrder(t *testing.T) {
	ls := NewLocationStore(nil, 0)
	ls.Set(share.ParamOuterColor, "#ff0000")
	ls.Set(share.ParamArrowColor, "#00ff00")
	ls.Set(share.ParamOuterColor, "#0000ff")

	want := "?outer-color=%230000ff&arrow-color=%2300ff00"
	if got := ls.Search(); got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

// TestLocationStorePersistence 测试写入后重新加载
func TestLocationStorePersistence(t *testing.T) {
	gdataManager := openTestGdata(t, "test_beauty_location")

	ls := NewLocationStore(gdataManager, 500*time.Millisecond)
	ls.Set(share.ParamOuterColor, "#123456")
	ls.Set(share.ParamArrowColor, "#abcdef")

	// 未到间隔，尚未写入
	reloaded := NewLocationStore(gdataManager, 500*time.Millisecond)
	if got := reloaded.Get(share.ParamOuterColor, ""); got != "" {
		t.Errorf("value persisted before flush: %q", got)
	}

	if err := ls.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reloaded = NewLocationStore(gdataManager, 500*time.Millisecond)
	if got := reloaded.Get(share.ParamOuterColor, ""); got != "#123456" {
		t.Errorf("outer-color = %q, want #123456", got)
	}
	if got := reloaded.Get(share.ParamArrowColor, ""); got != "#abcdef" {
		t.Errorf("arrow-color = %q, want #abcdef", got)
	}
	if reloaded.Pending() {
		t.Error("freshly loaded store should have nothing pending")
	}
}

// TestLocationStoreApplyLink 测试分享链接覆盖当前值
func TestLocationStoreApplyLink(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)
	ls.Set(share.ParamOuterColor, "#111111")
	_ = ls.Flush()

	link := share.ColorLink("https://example.com/beauty-challenge/", "#ff00ff", "#00ffff")
	if err := ls.ApplyLink(link); err != nil {
		t.Fatalf("ApplyLink: %v", err)
	}

	if got := ls.Get(share.ParamOuterColor, ""); got != "#ff00ff" {
		t.Errorf("outer-color = %q, want #ff00ff", got)
	}
	if got := ls.Get(share.ParamArrowColor, ""); got != "#00ffff" {
		t.Errorf("arrow-color = %q, want #00ffff", got)
	}
	if !ls.Pending() {
		t.Error("ApplyLink should schedule a flush when values change")
	}
}

// TestLocationStoreApplyLinkWithoutQuery 测试没有查询参数的链接
func TestLocationStoreApplyLinkWithoutQuery(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)
	if err := ls.ApplyLink("https://example.com/"); err != nil {
		t.Fatalf("ApplyLink: %v", err)
	}
	if ls.Pending() || ls.Search() != "" {
		t.Errorf("Pending=%v Search=%q, want no change", ls.Pending(), ls.Search())
	}
}

// TestLocationStoreApplyLinkInvalid 测试非法链接
func TestLocationStoreApplyLinkInvalid(t *testing.T) {
	ls := NewLocationStore(nil, 500*time.Millisecond)
	if err := ls.ApplyLink("http://[::1"); err == nil {
		t.Error("ApplyLink should fail on malformed URL")
	}
}
