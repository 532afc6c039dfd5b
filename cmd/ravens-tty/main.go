// ravens-tty 在终端里运行乌鸦射击游戏
//
// 与图形版共用 systems.GameLoop；乌鸦画成色块，鼠标左键射击。
// 需要支持鼠标上报和真彩色的终端。
//
// 用法:
//
//	go run ./cmd/ravens-tty --seed 7
//	go run ./cmd/ravens-tty --verbose --log ravens-tty.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

const defaultFPS = 60

var (
	verbose    = flag.Bool("verbose", false, "写调试日志到 --log 指定的文件")
	logPath    = flag.String("log", "ravens-tty.log", "日志文件（仅 --verbose 时使用）")
	configPath = flag.String("config", "", "游戏参数 YAML 文件（覆盖内置默认值）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute       = flag.Bool("mute", false, "关闭音效")
	boomPath   = flag.String("boom", "assets/sounds/boom.wav", "爆炸音效 wav 文件，读取失败时使用合成音")
	fps        = flag.Int("fps", defaultFPS, "每秒帧数")
	debug      = flag.Bool("debug-hitboxes", false, "启动时显示命中框（游戏中按 d 或 F3 切换）")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志不能写到 stderr
	closeLog, err := setupLogging(*verbose, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏配置加载失败: %v\n", err)
		os.Exit(1)
	}
	screenW, screenH := gameCfg.ScreenSize(config.DefaultScreenWidth, config.DefaultScreenHeight)

	var sounds systems.SoundPlayer
	if !*mute {
		player, err := newBeepPlayer(*boomPath, gameCfg.Audio.SoundVolume)
		if err != nil {
			log.Printf("[TTY] Warning: audio disabled: %v", err)
		} else {
			defer player.Close()
			sounds = player
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[TTY] Starting: world %dx%d, seed %d, fps %d", screenW, screenH, s, *fps)
	loop := systems.NewGameLoop(gameCfg, float64(screenW), float64(screenH), rand.New(rand.NewSource(s)), sounds)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	newTTYGame(screen, loop, *fps, *debug).run()
	screen.Fini()

	fmt.Println(scoreText(loop.Score()))
}

// setupLogging verbose 时日志写入文件，否则丢弃
func setupLogging(verbose bool, path string) (func(), error) {
	if !verbose {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
