// Package share 构造分享链接并执行分享动作
package share

import (
	"net/url"
	"strings"
)

// TwitterIntentURL 推特发帖入口
const TwitterIntentURL = "https://twitter.com/intent/tweet"

// 查询参数名（与 LocationStore 共用）
const (
	ParamOuterColor = "outer-color"
	ParamArrowColor = "arrow-color"
)

// Param 单个查询参数
// Value 为 nil 表示未设置，编码时跳过
type Param struct {
	Key   string
	Value *string
}

// Value 构造已设置值的参数
func Value(key, value string) Param {
	return Param{Key: key, Value: &value}
}

// Unset 构造未设置值的参数
func Unset(key string) Param {
	return Param{Key: key}
}

// EncodeQueryParams 按给定顺序编码查询参数，未设置的参数被跳过
// 编码规则与 application/x-www-form-urlencoded 一致（空格编码为 "+"）
func EncodeQueryParams(params []Param) string {
	var sb strings.Builder
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(*p.Value))
	}
	return sb.String()
}

// CreateLink 拼接 base + "?" + 编码后的参数
func CreateLink(baseURL string, params []Param) string {
	return baseURL + "?" + EncodeQueryParams(params)
}

// ColorLink 当前配色对应的游戏链接
func ColorLink(baseURL, outerColor, arrowColor string) string {
	return CreateLink(baseURL, []Param{
		Value(ParamOuterColor, outerColor),
		Value(ParamArrowColor, arrowColor),
	})
}

// TweetURL 构造推特发帖链接，正文为 text，附带配色链接
func TweetURL(baseURL, text, outerColor, arrowColor string) string {
	return CreateLink(TwitterIntentURL, []Param{
		Value("text", text),
		Value("url", ColorLink(baseURL, outerColor, arrowColor)),
	})
}

// ParseColorLink 解析分享链接中的配色参数
// 参数缺失时对应返回值为空字符串
func ParseColorLink(link string) (outerColor, arrowColor string, err error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", "", err
	}
	q := u.Query()
	return q.Get(ParamOuterColor), q.Get(ParamArrowColor), nil
}
