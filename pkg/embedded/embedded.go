// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 未调用 Init() 或嵌入资源中没有该文件时，回退到磁盘读取，
// 因此测试和 --resources 指向的外部文件都无需特殊处理。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	initialized bool
)

// Init 设置嵌入的资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化为 embed.FS 使用的正斜杠路径
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// embeddedPath 判断路径是否应当先在嵌入资源中查找
func embeddedPath(path string) (string, bool) {
	if !initialized {
		return "", false
	}
	p := normalize(path)
	if !strings.HasPrefix(p, "assets/") || !fs.ValidPath(p) {
		return "", false
	}
	return p, true
}

// Open 打开资源文件，优先使用嵌入资源
func Open(path string) (fs.File, error) {
	if p, ok := embeddedPath(path); ok {
		f, err := assetsFS.Open(p)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to open embedded %s: %w", p, err)
		}
	}
	return os.Open(path)
}

// ReadFile 读取资源文件内容，优先使用嵌入资源
func ReadFile(path string) ([]byte, error) {
	if p, ok := embeddedPath(path); ok {
		data, err := fs.ReadFile(assetsFS, p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read embedded %s: %w", p, err)
		}
	}
	return os.ReadFile(path)
}

// Exists 检查文件是否存在（嵌入资源或磁盘）
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
