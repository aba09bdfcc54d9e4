package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState is a snapshot of the game's status for the platform.
type GameState struct {
	Score      int  // Score within the current level
	TotalScore int  // Score accumulated over every level
	Level      int  // Current level, starting at 1
	Life       int  // Planet life
	GameOver   bool // The planet has been destroyed
	Paused     bool // Simulation is frozen
	Finished   bool // The player confirmed the loss screen; the program should exit
}

// Cue is a sound event produced by a simulation step.
type Cue int

const (
	CueSong      Cue = iota // Background song (re)start
	CuePickup               // Star collected
	CueFire                 // Cannon fired
	CueExplosion            // Alien destroyed
	CueLost                 // Planet destroyed
)

// String returns the cue name used in logs and config.
func (c Cue) String() string {
	switch c {
	case CueSong:
		return "song"
	case CuePickup:
		return "pickup"
	case CueFire:
		return "fire"
	case CueExplosion:
		return "explosion"
	case CueLost:
		return "lost"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sounds to play, in the order they occurred
}
