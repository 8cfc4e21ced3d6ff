package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a frontend needs after each tick.
type GameState struct {
	Score    int  // Current height score
	Best     int  // Best height known to the game
	GameOver bool // Whether the current run has ended
	Quit     bool // Whether the game asked to terminate
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
