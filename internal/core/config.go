package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and to seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
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

// GameState is the externally visible state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	State    string // FSM state name ("menu", "playing", ...)
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Current level number (1-based)
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
