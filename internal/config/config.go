// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

// Snake contains all configuration for the snake game.
// A Snake value is treated as immutable once handed to a game.
type Snake struct {
	World  World  `yaml:"world"`
	Timing Timing `yaml:"timing"`
	Start  Start  `yaml:"start"`
	Rules  Rules  `yaml:"rules"`
}

// World defines the square playfield.
type World struct {
	WindowSize int `yaml:"window_size" validate:"gt=0"`
	BlockSize  int `yaml:"block_size" validate:"gt=0"`
}

// Cells returns the number of cells along one side of the world.
func (w World) Cells() int {
	if w.BlockSize <= 0 {
		return 0
	}
	return w.WindowSize / w.BlockSize
}

// Max returns the origin of the last cell along either axis.
// Cells at 0 and Max form the wall ring.
func (w World) Max() int {
	return w.WindowSize - w.BlockSize
}

// Center returns the block-aligned origin of the center cell.
func (w World) Center() int {
	return (w.Cells() / 2) * w.BlockSize
}

// Timing defines frame pacing.
type Timing struct {
	FPS          int `yaml:"fps" validate:"gt=0"`
	UpdatePeriod int `yaml:"update_period" validate:"gt=0"` // Frames per movement tick
}

// Start defines the initial chain.
type Start struct {
	Length    int    `yaml:"length" validate:"min=1"`
	Direction string `yaml:"direction" validate:"oneof=up down left right"`
}

// FoodBounds selects how the eaten check treats the far edges of the food cell.
type FoodBounds string

const (
	// FoodBoundsHalfOpen matches origin <= c < origin+block on both axes.
	FoodBoundsHalfOpen FoodBounds = "half_open"
	// FoodBoundsInclusive matches origin <= c <= origin+block on both axes.
	FoodBoundsInclusive FoodBounds = "inclusive"
)

// Rules holds the collision and food policies.
type Rules struct {
	SelfCollisionSkip int        `yaml:"self_collision_skip" validate:"min=0"`
	FoodBounds        FoodBounds `yaml:"food_bounds" validate:"oneof=half_open inclusive"`
	FoodAvoidsSnake   bool       `yaml:"food_avoids_snake"`
}

// LegacyRules returns the rules used by the early iterations of the game:
// inclusive food bounds and only the first body segment skipped.
func LegacyRules() Rules {
	return Rules{
		SelfCollisionSkip: 1,
		FoodBounds:        FoodBoundsInclusive,
		FoodAvoidsSnake:   false,
	}
}

// WithRules returns a copy of the config with the given rules.
func (c Snake) WithRules(r Rules) Snake {
	c.Rules = r
	return c
}
