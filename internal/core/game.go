package core

// Game is the contract between game logic and the platform layer. The
// platform drives Step at a fixed tick rate and draws whatever Render
// produces; the game never touches the terminal or the clock directly.
type Game interface {
	// ID returns a stable identifier.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset initializes or restarts the game for the given runtime.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state onto the screen buffer.
	Render(s *Screen)

	// State returns the current observable state.
	State() GameState
}
