// check_resources 检查 resources.yaml 中的每个资源能否读取
//
// 图片还会检查尺寸能否按 cols 均分成帧。在仓库根目录运行：
//
//	go run ./cmd/check_resources
//	go run ./cmd/check_resources --config assets/config/resources.yaml --hash
package main

import (
	"bytes"
	"crypto/md5"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/ravens/pkg/embedded"
	"github.com/decker502/ravens/pkg/game"
)

var (
	configPath = flag.String("config", "assets/config/resources.yaml", "资源配置文件")
	showHash   = flag.Bool("hash", false, "显示每个文件的 MD5")
)

// result 单个资源的检查结果
type result struct {
	entry  game.ResourceEntry
	size   int
	hash   [md5.Size]byte
	detail string
	err    error
}

func main() {
	flag.Parse()

	data, err := embedded.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := game.ParseResourceConfig(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if failed := report(os.Stdout, cfg.Entries(), *showHash); failed > 0 {
		os.Exit(1)
	}
}

// report 打印检查结果，返回失败数量
func report(w io.Writer, entries []game.ResourceEntry, withHash bool) int {
	failed := 0
	for _, entry := range entries {
		r := checkEntry(entry)
		status := "OK"
		if r.err != nil {
			status = "FAIL"
			failed++
		}

		fmt.Fprintf(w, "[%s] %-5s %-16s %s", status, entry.Kind, entry.ID, filepath.ToSlash(entry.Path))
		if r.err != nil {
			fmt.Fprintf(w, ": %v\n", r.err)
			continue
		}
		fmt.Fprintf(w, " (%d bytes%s)", r.size, r.detail)
		if withHash {
			fmt.Fprintf(w, " md5=%x", r.hash)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d resource(s), %d failed\n", len(entries), failed)
	return failed
}

func checkEntry(entry game.ResourceEntry) result {
	r := result{entry: entry}

	data, err := embedded.ReadFile(entry.Path)
	if err != nil {
		r.err = err
		return r
	}
	r.size = len(data)
	r.hash = md5.Sum(data)

	switch entry.Kind {
	case game.KindImage:
		r.detail, r.err = checkImage(data, entry.Cols)
	case game.KindSound:
		r.err = checkSound(entry.Path, data)
	}
	return r
}

// checkImage 校验图片可解码，精灵表宽度能被帧数整除
func checkImage(data []byte, cols int) (string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	detail := fmt.Sprintf(", %s %dx%d", format, cfg.Width, cfg.Height)
	if cols > 1 {
		if cfg.Width%cols != 0 {
			return detail, fmt.Errorf("width %d is not divisible by %d frames", cfg.Width, cols)
		}
		detail += fmt.Sprintf(", %d frames of %dx%d", cols, cfg.Width/cols, cfg.Height)
	}
	return detail, nil
}

// checkSound 只检查文件头与扩展名是否一致
func checkSound(path string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			return fmt.Errorf("not a RIFF/WAVE file")
		}
	case ".ogg":
		if len(data) < 4 || string(data[0:4]) != "OggS" {
			return fmt.Errorf("not an Ogg file")
		}
	case ".mp3":
		if len(data) < 3 {
			return fmt.Errorf("file too short")
		}
	default:
		return fmt.Errorf("unsupported sound format: %s", ext)
	}
	return nil
}
