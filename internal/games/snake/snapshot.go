package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot is what the game exposes to a renderer or test each frame: the
// occupied cells, head first, and the food cell.
type Snapshot struct {
	Variant    string
	Frame      uint64
	Tick       uint64
	Cells      []Vec
	Heading    Direction
	Direction  Direction
	Food       Vec
	FoodActive bool
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	}

	food := g.food.Food()
	return Snapshot{
		Variant:    g.id,
		Frame:      g.frame,
		Tick:       g.tick,
		Cells:      g.chain.Positions(),
		Heading:    g.chain.Heading(),
		Direction:  g.chain.Direction(),
		Food:       food.Pos,
		FoodActive: food.Active,
		State:      state,
	}
}
