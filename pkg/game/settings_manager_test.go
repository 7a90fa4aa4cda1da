package game

import (
	"os"
	"testing"

	"github.com/decker502/beauty/pkg/shading"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	tests := []struct {
		defaultMode string
		want        string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"", "dark"},
		{"sepia", "dark"},
	}

	for _, tt := range tests {
		settings := DefaultSettings(tt.defaultMode)
		if settings.ColorMode != tt.want {
			t.Errorf("DefaultSettings(%q).ColorMode = %q, want %q", tt.defaultMode, settings.ColorMode, tt.want)
		}
		if settings.Fullscreen {
			t.Errorf("DefaultSettings(%q).Fullscreen = true, want false", tt.defaultMode)
		}
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil, "light")
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().ColorMode != "light" {
		t.Errorf("Degraded mode ColorMode: got %q, want light", sm.GetSettings().ColorMode)
	}
	if sm.HasSavedSettings() {
		t.Error("HasSavedSettings() = true in degraded mode")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_beauty_settings")

	sm1, err := NewSettingsManager(gdataManager, "dark")
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm1.HasSavedSettings() {
		t.Error("fresh storage should have no saved settings")
	}

	if err := sm1.SetColorMode("light"); err != nil {
		t.Fatalf("SetColorMode: %v", err)
	}
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新的管理器使用不同的默认主题，读到的应该是已保存的主题
	sm2, err := NewSettingsManager(gdataManager, "dark")
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}
	settings := sm2.GetSettings()
	if settings.ColorMode != "light" {
		t.Errorf("Loaded ColorMode: got %q, want light", settings.ColorMode)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !sm2.HasSavedSettings() {
		t.Error("HasSavedSettings() = false after reload")
	}
}

// TestSettingsLoadInvalidMode 测试存储中的非法主题被替换为默认主题
func TestSettingsLoadInvalidMode(t *testing.T) {
	gdataManager := openTestGdata(t, "test_beauty_settings_invalid")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("colorMode: sepia\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager, "light")
	if sm.GetSettings().ColorMode != "light" {
		t.Errorf("ColorMode = %q, want light", sm.GetSettings().ColorMode)
	}
}

// TestSettingsLoadCorrupted 测试损坏的数据退回默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_beauty_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("colorMode: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager, "dark")
	if err := sm.Load(); err == nil {
		t.Error("Load() should fail on corrupted data")
	}
	if sm.GetSettings().ColorMode != "dark" {
		t.Errorf("ColorMode = %q, want dark", sm.GetSettings().ColorMode)
	}
}

// TestToggleColorMode 测试主题切换与持久化
func TestToggleColorMode(t *testing.T) {
	gdataManager := openTestGdata(t, "test_beauty_toggle")

	sm, _ := NewSettingsManager(gdataManager, "dark")
	if sm.Polarity() != shading.Dark {
		t.Fatalf("initial Polarity() = %v, want dark", sm.Polarity())
	}

	mode, err := sm.ToggleColorMode()
	if err != nil {
		t.Fatalf("ToggleColorMode: %v", err)
	}
	if mode != "light" || sm.Polarity() != shading.Light {
		t.Errorf("after toggle: mode=%q polarity=%v, want light", mode, sm.Polarity())
	}

	// 切换会立即保存
	reloaded, _ := NewSettingsManager(gdataManager, "dark")
	if reloaded.Polarity() != shading.Light {
		t.Errorf("reloaded Polarity() = %v, want light", reloaded.Polarity())
	}

	mode, _ = sm.ToggleColorMode()
	if mode != "dark" {
		t.Errorf("second toggle = %q, want dark", mode)
	}
}

// TestSetColorModeRejectsUnknown 测试非法主题名称
func TestSetColorModeRejectsUnknown(t *testing.T) {
	sm, _ := NewSettingsManager(nil, "dark")
	if err := sm.SetColorMode("blue"); err == nil {
		t.Error("SetColorMode(\"blue\") should fail")
	}
	if sm.GetSettings().ColorMode != "dark" {
		t.Errorf("ColorMode changed to %q", sm.GetSettings().ColorMode)
	}
}
