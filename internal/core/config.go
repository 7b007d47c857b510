package core

// RuntimeConfig contains configuration passed to games at initialization.
// Hosts use this to size the screen and seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop (default 60)
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

// GameState represents the externally visible status of a game.
type GameState struct {
	Score    int  // Current (or final) score
	Lives    int  // Remaining lives
	GameOver bool // Whether the current round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Transitioned is true when the game changed phase during this tick.
	Transitioned bool
}
