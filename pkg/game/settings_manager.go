package game

import (
	"fmt"
	"log"

	"github.com/decker502/beauty/pkg/shading"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 全局设置
type Settings struct {
	// ColorMode 主题模式："dark" 或 "light"
	ColorMode string `yaml:"colorMode"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings(defaultMode string) *Settings {
	if _, ok := shading.ParsePolarity(defaultMode); !ok {
		defaultMode = shading.Dark.String()
	}
	return &Settings{
		ColorMode:  defaultMode,
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理，同时作为明暗计算的主题来源
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaultMode  string
	settings     *Settings
	loaded       bool // 是否从存储中读到了设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaultMode: 没有保存过主题时使用的主题模式
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查，加载失败不影响创建
func NewSettingsManager(gdataManager *gdata.Manager, defaultMode string) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaultMode:  defaultMode,
		settings:     DefaultSettings(defaultMode),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.loaded = false

	if sm.gdataManager == nil {
		sm.settings = DefaultSettings(sm.defaultMode)
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings(sm.defaultMode)
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings(sm.defaultMode)
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loadedSettings := DefaultSettings(sm.defaultMode)
	if err := yaml.Unmarshal(data, loadedSettings); err != nil {
		sm.settings = DefaultSettings(sm.defaultMode)
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 存储中的主题名称非法时退回默认主题
	if _, ok := shading.ParsePolarity(loadedSettings.ColorMode); !ok {
		log.Printf("[SettingsManager] Warning: unknown color mode %q, using %q", loadedSettings.ColorMode, sm.defaultMode)
		loadedSettings.ColorMode = DefaultSettings(sm.defaultMode).ColorMode
	}

	sm.settings = loadedSettings
	sm.loaded = true
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// HasSavedSettings 是否从存储中读到了设置
// 用于判断命令行 -mode 是否需要覆盖主题
func (sm *SettingsManager) HasSavedSettings() bool {
	return sm.loaded
}

// Polarity 实现 shading.ThemeStore
func (sm *SettingsManager) Polarity() shading.Polarity {
	p, _ := shading.ParsePolarity(sm.settings.ColorMode)
	return p
}

// SetColorMode 设置主题模式，未知模式返回错误
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetColorMode(mode string) error {
	if _, ok := shading.ParsePolarity(mode); !ok {
		return fmt.Errorf("unknown color mode %q", mode)
	}
	sm.settings.ColorMode = mode
	return nil
}

// ToggleColorMode 在深色和浅色之间切换并立即保存
//
// 返回：
//   - string: 切换后的主题模式
//   - error: 保存失败返回错误（内存中的主题仍然已切换）
func (sm *SettingsManager) ToggleColorMode() (string, error) {
	next := shading.Light
	if sm.Polarity() == shading.Light {
		next = shading.Dark
	}
	sm.settings.ColorMode = next.String()
	return sm.settings.ColorMode, sm.Save()
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
