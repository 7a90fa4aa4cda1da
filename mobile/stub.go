//go:build !mobile

// Package mobile 的桌面端占位
//
// ebitenmobile 绑定代码只在 -tags mobile 下编译，
// 普通构建（go build ./...、go test ./...）时包里只有这个文件。
package mobile

// Dummy 与移动端同名的空导出函数
func Dummy() {}
