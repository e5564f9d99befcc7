package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Rendered frames per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Length   int  // Number of segments in the chain
	GameOver bool // Whether the game has ended
	TooSmall bool // Whether the screen cannot fit the world
}

// EventKind identifies something notable that happened during a frame.
type EventKind int

const (
	EventFoodSpawned EventKind = iota + 1
	EventFoodEaten
	EventCollision
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFoodSpawned:
		return "food_spawned"
	case EventFoodEaten:
		return "food_eaten"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step. X and Y are world coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// StepResult is returned by Game.Step() after each rendered frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Moved  bool // Whether a movement tick ran during this frame
	Events []Event
}
