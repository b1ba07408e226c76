package game

// EngineState is the lifecycle state machine position.
type EngineState int

const (
	StateLoading EngineState = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s EngineState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// CarPose is a car's render state at publish time.
type CarPose struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Lane     int
}

// Snapshot is the immutable state published once per tick. Readers
// (render, HUD) only ever consume the latest one; it is never mutated
// after publish.
type Snapshot struct {
	State      EngineState
	Score      int
	HighScore  int
	Speed      float64 // display units (forward velocity)
	TimeMs     int64   // elapsed game time, pauses excluded
	Rank       int     // 1-based position among all cars
	GameOver   bool
	HPFraction float64
	Scroll     float64
	GameSpeed  float64
	Player     CarPose
	Opponents  []CarPose
}
