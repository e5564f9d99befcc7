package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// cellWidth is the number of terminal columns used per block so that blocks
// look roughly square.
const cellWidth = 2

// boardWidth returns the board width in terminal columns.
func (g *Game) boardWidth() int {
	return g.cfg.World.Cells() * cellWidth
}

// boardHeight returns the board height in terminal rows.
func (g *Game) boardHeight() int {
	return g.cfg.World.Cells()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small")
		dst.DrawTextCentered(mid+1, "Resize to continue")
		return
	}

	offX := core.Max(0, (dst.Width()-g.boardWidth())/2)
	offY := core.Max(0, (dst.Height()-g.boardHeight())/2)
	cells := g.cfg.World.Cells()

	// Walls and floor
	for cy := 0; cy < cells; cy++ {
		for cx := 0; cx < cells; cx++ {
			if cx == 0 || cy == 0 || cx == cells-1 || cy == cells-1 {
				g.drawCell(dst, offX, offY, cx, cy, '▓', core.ColorGray)
			} else {
				dst.SetColored(offX+cx*cellWidth, offY+cy, '·', core.ColorGray)
			}
		}
	}

	if food := g.food.Food(); food.Active {
		g.drawBlock(dst, offX, offY, food.Pos, '█', core.ColorRed)
	}

	// Tail first so the head wins where segments overlap
	for i := g.chain.Len() - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
			if g.gameOver {
				color = core.ColorBrightRed
			}
		}
		g.drawBlock(dst, offX, offY, g.chain.Segment(i).Pos, '█', color)
	}
}

// drawBlock draws the block at world position p.
func (g *Game) drawBlock(dst *core.Screen, offX, offY int, p Vec, r rune, c core.Color) {
	block := g.cfg.World.BlockSize
	g.drawCell(dst, offX, offY, p.X/block, p.Y/block, r, c)
}

// drawCell fills one grid cell.
func (g *Game) drawCell(dst *core.Screen, offX, offY, cx, cy int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(offX+cx*cellWidth+i, offY+cy, r, c)
	}
}
