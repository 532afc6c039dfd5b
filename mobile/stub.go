//go:build !mobile

// 普通构建（桌面、终端、测试）不带 mobile 标签，此包只剩下这个占位函数，
// 这样 go build ./... 和 go vet ./... 不需要 mobile/assets 目录。
package mobile

// Dummy 保证包在任何构建标签下都有导出符号
func Dummy() {}
