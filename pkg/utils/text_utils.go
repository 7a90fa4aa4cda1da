package utils

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSource 延迟解析的字体源，不同字号共享同一个源
type fontSource struct {
	ttf    []byte
	once   sync.Once
	source *text.GoTextFaceSource
	err    error
}

func (f *fontSource) face(size float64) (*text.GoTextFace, error) {
	f.once.Do(func() {
		f.source, f.err = text.NewGoTextFaceSource(bytes.NewReader(f.ttf))
	})
	if f.err != nil {
		return nil, fmt.Errorf("failed to load font: %w", f.err)
	}
	return &text.GoTextFace{Source: f.source, Size: size}, nil
}

var (
	regularFont = &fontSource{ttf: goregular.TTF}
	boldFont    = &fontSource{ttf: gobold.TTF}
)

// LoadFontFace 加载内置 Go Regular 字体
func LoadFontFace(size float64) (*text.GoTextFace, error) {
	return regularFont.face(size)
}

// LoadBoldFontFace 加载内置 Go Bold 字体（标题使用）
func LoadBoldFontFace(size float64) (*text.GoTextFace, error) {
	return boldFont.face(size)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 单词本身超过最大宽度时独占一行（不拆分单词）
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		if currentLine == "" {
			currentLine = word
			continue
		}

		testLine := currentLine + " " + word
		if measureTextWidth(testLine, font) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// TruncateLines 最多保留 maxLines 行，超出时在最后一行末尾加省略号
func TruncateLines(lines []string, maxLines int) []string {
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	out[maxLines-1] += "…"
	return out
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
