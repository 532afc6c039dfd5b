//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，触摸即射击。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r assets mobile/assets && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.ravens -o build/android/ravens.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r assets mobile/assets && ebitenmobile bind -target ios -tags mobile -o build/ios/Ravens.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/ravens/pkg/app"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	embedded.Init(assetsFS)

	// 移动端使用默认配置和固定逻辑尺寸，由 Ebitengine 缩放到屏幕
	cfg := app.Config{
		Verbose:       true,
		Game:          config.DefaultGameConfig(),
		ResourcesPath: "assets/config/resources.yaml",
		ScreenWidth:   config.DefaultScreenWidth,
		ScreenHeight:  config.DefaultScreenHeight,
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
