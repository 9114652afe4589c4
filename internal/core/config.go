package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions describe the backend surface (cells or pixels); the
// simulation itself runs in playfield units from the game config.
type RuntimeConfig struct {
	ScreenW  int   // Backend surface width
	ScreenH  int   // Backend surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle layout (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the game picks a time-based seed
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game is in its game-over pause
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Reset is true when the tick completed a game-over reset.
	Reset bool
}
