package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// HitsWall reports whether p lies on or beyond the wall ring.
func HitsWall(p Vec, w config.World) bool {
	edge := w.Max()
	return p.X <= 0 || p.X >= edge || p.Y <= 0 || p.Y >= edge
}

// HitsBody reports whether the head overlaps a body segment.
// Segments 1..skip are ignored.
func HitsBody(c *Chain, skip int) bool {
	head := c.Head()
	for i := skip + 1; i < c.Len(); i++ {
		if c.segments[i].Pos == head {
			return true
		}
	}
	return false
}

// CheckCollision reports whether the chain has hit a wall or itself.
func CheckCollision(c *Chain, w config.World, skip int) bool {
	return HitsWall(c.Head(), w) || HitsBody(c, skip)
}
