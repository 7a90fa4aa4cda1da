package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/decker502/beauty/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// 配置文件路径
const (
	// EmbeddedConfigPath 嵌入的默认配置
	EmbeddedConfigPath = "data/beauty.yaml"

	// UserConfigRelPath 用户配置文件相对 XDG 配置目录的路径
	UserConfigRelPath = "beauty-challenge/config.yaml"
)

// 默认值
const (
	DefaultWindowWidth   = 960
	DefaultWindowHeight  = 600
	DefaultWindowTitle   = "Beauty Challenge"
	DefaultOuterColor    = "#7f7f7f"
	DefaultArrowColor    = "#7f7f7f"
	DefaultThemeMode     = "dark"
	DefaultShareBaseURL  = "https://example.com/beauty-challenge/"
	DefaultFlushInterval = 500 // 毫秒，浏览器历史记录防刷
)

// DefaultTweetText 分享文案
const DefaultTweetText = "\U0001F485 I just played #BeautyChallengeTheGame\n\nFind my result & play it \U0001F449"

// WindowConfig 窗口配置
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// ColorsConfig 初始配色
type ColorsConfig struct {
	Outer string `yaml:"outer"` // 外圈颜色 #rrggbb
	Arrow string `yaml:"arrow"` // 箭头颜色 #rrggbb
}

// ThemeConfig 主题配置
type ThemeConfig struct {
	DefaultMode string `yaml:"defaultMode"` // "dark" 或 "light"
}

// ShareConfig 分享配置
type ShareConfig struct {
	BaseURL string `yaml:"baseURL"` // 游戏页面地址，配色作为查询参数附加在后面
	Text    string `yaml:"text"`    // 推文正文
}

// LocationConfig 查询参数持久化配置
type LocationConfig struct {
	FlushIntervalMs int `yaml:"flushIntervalMs"` // 两次写入之间的最小间隔（毫秒）
}

// AppConfig 应用配置
type AppConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Colors   ColorsConfig   `yaml:"colors"`
	Theme    ThemeConfig    `yaml:"theme"`
	Share    ShareConfig    `yaml:"share"`
	Location LocationConfig `yaml:"location"`
}

// DefaultAppConfig 返回默认配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:     DefaultWindowWidth,
			Height:    DefaultWindowHeight,
			Title:     DefaultWindowTitle,
			Resizable: true,
		},
		Colors: ColorsConfig{
			Outer: DefaultOuterColor,
			Arrow: DefaultArrowColor,
		},
		Theme: ThemeConfig{
			DefaultMode: DefaultThemeMode,
		},
		Share: ShareConfig{
			BaseURL: DefaultShareBaseURL,
			Text:    DefaultTweetText,
		},
		Location: LocationConfig{
			FlushIntervalMs: DefaultFlushInterval,
		},
	}
}

// FlushInterval 查询参数写入间隔
func (c *AppConfig) FlushInterval() time.Duration {
	return time.Duration(c.Location.FlushIntervalMs) * time.Millisecond
}

// Validate 检查配置的合法性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := colorful.Hex(c.Colors.Outer); err != nil {
		return fmt.Errorf("colors.outer: invalid color %q: %w", c.Colors.Outer, err)
	}
	if _, err := colorful.Hex(c.Colors.Arrow); err != nil {
		return fmt.Errorf("colors.arrow: invalid color %q: %w", c.Colors.Arrow, err)
	}
	if _, ok := ThemeByName(c.Theme.DefaultMode); !ok {
		return fmt.Errorf("theme.defaultMode: unknown mode %q", c.Theme.DefaultMode)
	}
	if c.Share.BaseURL == "" {
		return fmt.Errorf("share.baseURL is required")
	}
	if c.Location.FlushIntervalMs < 0 {
		return fmt.Errorf("location.flushIntervalMs cannot be negative, got %d", c.Location.FlushIntervalMs)
	}
	return nil
}

// ParseAppConfig 在默认配置之上解析 YAML，缺失字段保留默认值
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return cfg, nil
}

// LoadAppConfig 从磁盘文件加载配置
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config %s: %w", path, err)
	}
	cfg, err := ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedAppConfig 从嵌入资源加载配置
func LoadEmbeddedAppConfig(path string) (*AppConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded app config %s: %w", path, err)
	}
	return ParseAppConfig(data)
}

// FindUserConfig 在 XDG 配置目录中查找用户配置文件
// 未找到时返回空字符串
func FindUserConfig() string {
	path, err := xdg.SearchConfigFile(UserConfigRelPath)
	if err != nil {
		return ""
	}
	return path
}

// ResolveAppConfig 按优先级加载配置
//
// 优先级：
//  1. explicitPath（命令行 -config 指定，失败直接返回错误）
//  2. XDG 配置目录下的用户配置（失败时记录警告并继续）
//  3. 嵌入的默认配置
//  4. DefaultAppConfig()
func ResolveAppConfig(explicitPath string) (*AppConfig, error) {
	if explicitPath != "" {
		return LoadAppConfig(explicitPath)
	}

	if userPath := FindUserConfig(); userPath != "" {
		cfg, err := LoadAppConfig(userPath)
		if err == nil {
			log.Printf("[Config] Loaded user config: %s", userPath)
			return cfg, nil
		}
		log.Printf("[Config] Warning: %v (ignoring user config)", err)
	}

	if embedded.IsInitialized() {
		cfg, err := LoadEmbeddedAppConfig(EmbeddedConfigPath)
		if err == nil {
			return cfg, nil
		}
		log.Printf("[Config] Warning: %v (using defaults)", err)
	}

	return DefaultAppConfig(), nil
}
