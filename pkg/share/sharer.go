package share

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Outcome 分享动作的结果
type Outcome int

const (
	// OutcomeFailed 浏览器和剪贴板都不可用
	OutcomeFailed Outcome = iota
	// OutcomeOpened 已在浏览器中打开
	OutcomeOpened
	// OutcomeCopied 已复制到剪贴板
	OutcomeCopied
)

// String 返回结果描述（用于界面提示）
func (o Outcome) String() string {
	switch o {
	case OutcomeOpened:
		return "opened in browser"
	case OutcomeCopied:
		return "link copied"
	default:
		return "share failed"
	}
}

// Sharer 打开分享链接，失败时退回到复制链接
type Sharer struct {
	openURL   func(string) error
	copyText  func(string) error
	lastShare string
}

// NewSharer 使用系统浏览器和剪贴板创建 Sharer
func NewSharer() *Sharer {
	return &Sharer{
		openURL:  browser.OpenURL,
		copyText: clipboard.WriteAll,
	}
}

// Share 打开 link；打开失败时复制到剪贴板
func (s *Sharer) Share(link string) (Outcome, error) {
	s.lastShare = link

	openErr := s.openURL(link)
	if openErr == nil {
		log.Printf("[Sharer] Opened share link")
		return OutcomeOpened, nil
	}
	log.Printf("[Sharer] Warning: failed to open browser: %v", openErr)

	if err := s.copyText(link); err != nil {
		return OutcomeFailed, fmt.Errorf("failed to share link: open: %v, copy: %w", openErr, err)
	}
	log.Printf("[Sharer] Share link copied to clipboard")
	return OutcomeCopied, nil
}

// LastShare 最近一次分享的链接
func (s *Sharer) LastShare() string {
	return s.lastShare
}
