package main

import (
	"log"
	"time"

	"github.com/decker502/ravens/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// ttyGame 终端前端：事件协程 + 定时器驱动 GameLoop.Tick
type ttyGame struct {
	screen   tcell.Screen
	loop     *systems.GameLoop
	renderer *renderer
	fps      int

	buttons tcell.ButtonMask // 上一个鼠标事件的按键状态，用于识别按下沿
}

func newTTYGame(screen tcell.Screen, loop *systems.GameLoop, fps int, debug bool) *ttyGame {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &ttyGame{
		screen:   screen,
		loop:     loop,
		renderer: &renderer{screen: screen, loop: loop, debug: debug},
		fps:      fps,
	}
}

// run 阻塞直到玩家退出
func (g *ttyGame) run() {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	start := time.Now()
	g.renderer.draw()
	g.screen.Show()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				log.Printf("[TTY] Quit at tick %d, score %d", g.loop.Ticks(), g.loop.Score())
				return
			}
		case now := <-ticker.C:
			g.loop.Tick(float64(now.Sub(start).Milliseconds()))
			g.renderer.draw()
			g.screen.Show()
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (g *ttyGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyF3:
			g.toggleDebug()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'd':
				g.toggleDebug()
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
		g.buttons = ev.Buttons()
		if pressed {
			col, row := ev.Position()
			g.click(col, row)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// click 把单元格中心换算为世界坐标后入队
func (g *ttyGame) click(col, row int) {
	vp := g.renderer.viewport()
	if !vp.valid() {
		return
	}
	x, y := vp.toWorld(col, row)
	g.loop.QueueClick(x, y)
}

func (g *ttyGame) toggleDebug() {
	g.renderer.debug = !g.renderer.debug
	log.Printf("[TTY] Debug hitboxes: %v", g.renderer.debug)
}
