package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The 18 ticks/s default gives a ~55ms simulation step.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 18,
		Seed:     0, // 0 means use current time in platform layer
	}
}
