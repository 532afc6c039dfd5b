package systems

// LoopState 游戏循环状态
type LoopState int

const (
	// LoopRunning 正常运行，每帧更新
	LoopRunning LoopState = iota
	// LoopGameOver 终止状态，不再处理更新
	LoopGameOver
)

func (s LoopState) String() string {
	switch s {
	case LoopRunning:
		return "Running"
	case LoopGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 一局游戏的全局状态：分数与结束标记
//
// 由 GameLoop 持有，点击与乌鸦系统通过指针修改。
type GameState struct {
	score int
	state LoopState
}

// Score 返回当前分数
func (gs *GameState) Score() int {
	return gs.score
}

// AddScore 增加分数，分数只增不减
func (gs *GameState) AddScore(points int) {
	if points > 0 {
		gs.score += points
	}
}

// State 返回当前循环状态
func (gs *GameState) State() LoopState {
	return gs.state
}

// IsGameOver 是否已经结束
func (gs *GameState) IsGameOver() bool {
	return gs.state == LoopGameOver
}

// MarkGameOver 进入结束状态
// 返回: 本次调用是否发生了状态切换
func (gs *GameState) MarkGameOver() bool {
	if gs.state == LoopGameOver {
		return false
	}
	gs.state = LoopGameOver
	return true
}
