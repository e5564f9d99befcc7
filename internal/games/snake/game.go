// Package snake implements a grid snake: a chain of block-aligned segments
// advancing one block per movement tick inside a walled square world, with a
// single food item that grows the chain when eaten.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant identifiers.
const (
	IDClassic = "snake"
	IDLegacy  = "snake_legacy"
)

// Game implements the snake game.
type Game struct {
	id    string
	title string
	cfg   config.Snake

	rng   *rand.Rand
	chain *Chain
	food  *FoodSpawner

	frame        uint64 // Rendered frames since Reset
	tick         uint64 // Movement ticks since Reset
	frameCounter int    // Frames since the last movement tick

	gameOver bool
	tooSmall bool
}

// New creates a game with the rules from cfg.
func New(cfg config.Snake) *Game {
	return &Game{
		id:    IDClassic,
		title: "Snake",
		cfg:   cfg,
	}
}

// NewLegacy creates a game with the early-iteration rules: inclusive food
// bounds and a one-segment self-collision skip.
func NewLegacy(cfg config.Snake) *Game {
	return &Game{
		id:    IDLegacy,
		title: "Snake (Legacy Rules)",
		cfg:   cfg.WithRules(config.LegacyRules()),
	}
}

func init() {
	registry.Register(IDClassic, func(cfg config.Snake) registry.Game {
		return New(cfg)
	})
	registry.Register(IDLegacy, func(cfg config.Snake) registry.Game {
		return NewLegacy(cfg)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Snake {
	return g.cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.frame = 0
	g.tick = 0
	g.frameCounter = 0
	g.gameOver = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	dir, ok := ParseDirection(g.cfg.Start.Direction)
	if !ok {
		dir = DirUp
	}
	center := g.cfg.World.Center()
	g.chain = NewChain(Vec{X: center, Y: center}, dir, g.cfg.Start.Length, g.cfg.World.BlockSize)

	g.food = NewFoodSpawner(g.cfg.World, g.cfg.Rules, g.rng)
	g.food.MaybeSpawn(g.chain)
}

// Step advances the game by one rendered frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Move only once per update period
	g.frameCounter++
	if g.frameCounter < g.cfg.Timing.UpdatePeriod {
		return core.StepResult{State: g.State()}
	}
	g.frameCounter = 0

	events := g.moveTick()
	return core.StepResult{State: g.State(), Moved: true, Events: events}
}

// processInput applies direction requests in arrival order.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Actions {
		switch a {
		case core.ActionUp:
			g.chain.ChangeDirection(DirUp)
		case core.ActionDown:
			g.chain.ChangeDirection(DirDown)
		case core.ActionLeft:
			g.chain.ChangeDirection(DirLeft)
		case core.ActionRight:
			g.chain.ChangeDirection(DirRight)
		}
	}
}

// moveTick runs one movement tick: spawn, advance, collide, eat.
func (g *Game) moveTick() []core.Event {
	var events []core.Event
	g.tick++

	if g.food.MaybeSpawn(g.chain) {
		f := g.food.Food()
		events = append(events, core.Event{Kind: core.EventFoodSpawned, X: f.Pos.X, Y: f.Pos.Y})
	}

	g.chain.Advance(g.cfg.World.BlockSize)
	head := g.chain.Head()

	if CheckCollision(g.chain, g.cfg.World, g.cfg.Rules.SelfCollisionSkip) {
		g.gameOver = true
		return append(events, core.Event{Kind: core.EventCollision, X: head.X, Y: head.Y})
	}

	food := g.food.Food()
	if g.food.CheckEaten(head) {
		g.chain.Append()
		events = append(events, core.Event{Kind: core.EventFoodEaten, X: food.Pos.X, Y: food.Pos.Y})
	}

	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.chain != nil {
		length = g.chain.Len()
	}
	return core.GameState{
		Length:   length,
		GameOver: g.gameOver,
		TooSmall: g.tooSmall,
	}
}

// Resize updates the screen dimensions. The game pauses while the screen is
// too small to show the whole world and resumes once it fits again.
func (g *Game) Resize(w, h int) {
	g.tooSmall = w < g.boardWidth() || h < g.boardHeight()
}
