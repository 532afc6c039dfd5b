package main

import (
	"flag"
	"log"

	"github.com/decker502/ravens/pkg/app"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose       = flag.Bool("verbose", false, "显示详细调试信息")
	configPath    = flag.String("config", "", "游戏参数 YAML 文件（覆盖内置默认值）")
	resourcesPath = flag.String("resources", "assets/config/resources.yaml", "资源配置文件")
	seed          = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	debugHitboxes = flag.Bool("debug-hitboxes", false, "启动时显示命中框（游戏中按 F3 切换）")
	mute          = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，磁盘上的同名文件不再需要
	embedded.Init(assetsFS)

	gameCfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		log.Fatalf("游戏配置加载失败: %v", err)
	}

	// 未配置的维度使用主显示器尺寸，画布之后不再调整
	monitorW, monitorH := 0, 0
	if m := ebiten.Monitor(); m != nil {
		monitorW, monitorH = m.Size()
	}
	if monitorW <= 0 || monitorH <= 0 {
		monitorW, monitorH = config.DefaultScreenWidth, config.DefaultScreenHeight
	}
	screenW, screenH := gameCfg.ScreenSize(monitorW, monitorH)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		Game:          gameCfg,
		ResourcesPath: *resourcesPath,
		ScreenWidth:   screenW,
		ScreenHeight:  screenH,
		Seed:          *seed,
		DebugHitboxes: *debugHitboxes,
		Mute:          *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
