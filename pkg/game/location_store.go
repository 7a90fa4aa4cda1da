package game

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/decker502/beauty/pkg/share"
	"github.com/quasilyte/gdata/v2"
)

// 存储路径常量
const (
	locationObject   = "location"
	locationProperty = "search"
)

// LocationStore 页面地址查询参数存储
//
// 对应网页版的 URL 查询字符串：内存中的值立即生效，
// 持久化写入受间隔保护（同一间隔内的多次修改只写入最后一次的值）
type LocationStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）

	keys   []string // 参数首次出现的顺序
	values map[string]string

	interval time.Duration
	pending  bool    // 是否有尚未写入的修改
	elapsed  float64 // 自首次未写入修改以来经过的秒数
	flushes  int     // 已写入次数
}

// NewLocationStore 创建查询参数存储并加载上次保存的查询字符串
//
// 参数:
//   - gdataManager: gdata 存储管理器，可为 nil
//   - interval: 两次写入之间的最小间隔
func NewLocationStore(gdataManager *gdata.Manager, interval time.Duration) *LocationStore {
	ls := &LocationStore{
		gdataManager: gdataManager,
		values:       make(map[string]string),
		interval:     interval,
	}
	if err := ls.load(); err != nil {
		log.Printf("[LocationStore] Warning: %v (starting with empty query)", err)
	}
	return ls
}

func (ls *LocationStore) load() error {
	if ls.gdataManager == nil || !ls.gdataManager.ObjectPropExists(locationObject, locationProperty) {
		return nil
	}
	data, err := ls.gdataManager.LoadObjectProp(locationObject, locationProperty)
	if err != nil {
		return fmt.Errorf("failed to load location: %w", err)
	}
	if err := ls.applySearch(string(data)); err != nil {
		return fmt.Errorf("failed to parse stored location %q: %w", data, err)
	}
	return nil
}

// applySearch 按出现顺序写入查询字符串中的参数，不触发持久化
func (ls *LocationStore) applySearch(search string) error {
	search = strings.TrimPrefix(search, "?")
	for _, pair := range strings.Split(search, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return err
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return err
		}
		ls.put(key, value)
	}
	return nil
}

func (ls *LocationStore) put(key, value string) {
	if _, ok := ls.values[key]; !ok {
		ls.keys = append(ls.keys, key)
	}
	ls.values[key] = value
}

// Get 返回参数值，未设置时返回 defaultValue
func (ls *LocationStore) Get(key, defaultValue string) string {
	if v, ok := ls.values[key]; ok {
		return v
	}
	return defaultValue
}

// Set 设置参数值
// 内存中的值立即更新；首次修改开始计时，间隔结束时写入最新的值
func (ls *LocationStore) Set(key, value string) {
	if v, ok := ls.values[key]; ok && v == value {
		return
	}
	ls.put(key, value)
	if !ls.pending {
		ls.pending = true
		ls.elapsed = 0
	}
}

// ApplyLink 用分享链接中的查询参数覆盖当前值（命令行 -link）
func (ls *LocationStore) ApplyLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}
	if u.RawQuery == "" {
		return nil
	}

	before := ls.Search()
	if err := ls.applySearch(u.RawQuery); err != nil {
		return fmt.Errorf("invalid link query %q: %w", u.RawQuery, err)
	}
	if ls.Search() != before && !ls.pending {
		ls.pending = true
		ls.elapsed = 0
	}
	return nil
}

// Search 返回当前的查询字符串（带 "?" 前缀，无参数时为空字符串）
func (ls *LocationStore) Search() string {
	params := make([]share.Param, 0, len(ls.keys))
	for _, k := range ls.keys {
		params = append(params, share.Value(k, ls.values[k]))
	}
	encoded := share.EncodeQueryParams(params)
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

// Pending 是否有尚未写入的修改
func (ls *LocationStore) Pending() bool {
	return ls.pending
}

// FlushCount 已写入次数
func (ls *LocationStore) FlushCount() int {
	return ls.flushes
}

// Update 推进计时，间隔结束时写入
//
// 参数:
//   - deltaTime: 距上一帧的秒数
func (ls *LocationStore) Update(deltaTime float64) {
	if !ls.pending {
		return
	}
	ls.elapsed += deltaTime
	if ls.elapsed >= ls.interval.Seconds() {
		if err := ls.Flush(); err != nil {
			log.Printf("[LocationStore] Warning: %v", err)
		}
	}
}

// Flush 立即写入尚未写入的修改
func (ls *LocationStore) Flush() error {
	if !ls.pending {
		return nil
	}
	ls.pending = false
	ls.elapsed = 0
	ls.flushes++

	if ls.gdataManager == nil {
		return nil
	}
	if err := ls.gdataManager.SaveObjectProp(locationObject, locationProperty, []byte(ls.Search())); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	log.Printf("[LocationStore] Saved %s", ls.Search())
	return nil
}
