package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single food item. Pos is meaningful only while Active.
type Food struct {
	Pos    Vec
	Active bool
}

// FoodSpawner keeps at most one food item on an interior cell.
type FoodSpawner struct {
	world  config.World
	bounds config.FoodBounds
	avoid  bool
	rng    *rand.Rand
	food   Food
}

// NewFoodSpawner creates a spawner with no active food.
func NewFoodSpawner(world config.World, rules config.Rules, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{
		world:  world,
		bounds: rules.FoodBounds,
		avoid:  rules.FoodAvoidsSnake,
		rng:    rng,
	}
}

// Food returns the current food item.
func (s *FoodSpawner) Food() Food {
	return s.food
}

// MaybeSpawn places food on a random interior cell if none is active.
// Returns true if food was placed.
func (s *FoodSpawner) MaybeSpawn(chain *Chain) bool {
	if s.food.Active {
		return false
	}

	if s.avoid {
		return s.spawnAvoiding(chain)
	}

	// X and Y are drawn independently; the cell may be under the snake.
	s.food = Food{
		Pos:    Vec{X: s.interiorCoord(), Y: s.interiorCoord()},
		Active: true,
	}
	return true
}

// interiorCoord returns a random block-aligned coordinate off the wall ring.
func (s *FoodSpawner) interiorCoord() int {
	interior := s.world.Cells() - 2
	return (1 + s.rng.Intn(interior)) * s.world.BlockSize
}

// spawnAvoiding places food on a random interior cell not covered by the chain.
func (s *FoodSpawner) spawnAvoiding(chain *Chain) bool {
	block := s.world.BlockSize
	var empty []Vec
	for y := block; y < s.world.Max(); y += block {
		for x := block; x < s.world.Max(); x += block {
			p := Vec{X: x, Y: y}
			if chain == nil || !chain.Occupies(p) {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		// Snake fills the interior; try again next tick
		return false
	}

	s.food = Food{Pos: empty[s.rng.Intn(len(empty))], Active: true}
	return true
}

// CheckEaten reports whether head lies inside the active food's cell and, if
// so, removes the food. The caller grows the chain.
func (s *FoodSpawner) CheckEaten(head Vec) bool {
	if !s.food.Active {
		return false
	}

	cell := core.NewRect(s.food.Pos.X, s.food.Pos.Y, s.world.BlockSize, s.world.BlockSize)
	var hit bool
	if s.bounds == config.FoodBoundsInclusive {
		hit = cell.ContainsClosed(head.X, head.Y)
	} else {
		hit = cell.Contains(head.X, head.Y)
	}

	if hit {
		s.food.Active = false
	}
	return hit
}
