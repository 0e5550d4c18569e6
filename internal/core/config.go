package core

// RuntimeConfig contains configuration passed to a match host at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving Advance (default 60)
	Seed     int64 // RNG seed for roster traits; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the summary the host needs after each step.
type GameState struct {
	HomeScore int
	AwayScore int
	Half      int
	GameOver  bool
	Paused    bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Goal  bool // A goal was scored during this step
}

// Nominal terminal cell size in pixels. Hosts use these to convert mouse
// cell coordinates into the pixel space the virtual joystick works in.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)
