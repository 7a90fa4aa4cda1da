//go:build !android

package utils

// EnsureStorageDir 桌面端与 iOS 上 gdata 自行创建存储目录，无需处理
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 仅 Android 有意义，其他平台返回空字符串
func GetStoragePath() string {
	return ""
}
