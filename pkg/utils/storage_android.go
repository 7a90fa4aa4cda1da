//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot 应用私有数据目录的根
const androidDataRoot = "/data/data"

// EnsureStorageDir 在打开 gdata 之前创建应用私有目录下的 saves 子目录
// gdata 在 Android 上不会自行创建该目录，目录不可写时设置和查询参数都无法保存
func EnsureStorageDir() error {
	dir, err := androidDataDir()
	if err != nil {
		return err
	}

	savesDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", savesDir, err)
	}

	tmp, err := os.CreateTemp(savesDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", savesDir, err)
	}
	tmp.Close()
	return os.Remove(tmp.Name())
}

// GetStoragePath 应用私有数据目录（调试用），无法识别包名时返回空字符串
func GetStoragePath() string {
	dir, err := androidDataDir()
	if err != nil {
		return ""
	}
	return dir
}

// androidDataDir 由 /proc/self/cmdline 中的进程名（即包名）得到私有数据目录
func androidDataDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to read process name: %w", err)
	}
	// 参数以 NUL 分隔，第一个参数是包名
	if i := bytes.IndexByte(cmdline, 0); i >= 0 {
		cmdline = cmdline[:i]
	}
	name := string(bytes.TrimSpace(cmdline))
	if name == "" {
		return "", fmt.Errorf("empty process name in /proc/self/cmdline")
	}
	return filepath.Join(androidDataRoot, name), nil
}
