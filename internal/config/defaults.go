package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnake returns the built-in snake configuration.
func DefaultSnake() Snake {
	return Snake{
		World: World{
			WindowSize: 500,
			BlockSize:  20,
		},
		Timing: Timing{
			FPS:          60,
			UpdatePeriod: 8,
		},
		Start: Start{
			Length:    3,
			Direction: "up",
		},
		Rules: Rules{
			SelfCollisionSkip: 3,
			FoodBounds:        FoodBoundsHalfOpen,
			FoodAvoidsSnake:   false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
