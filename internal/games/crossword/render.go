package crossword

import (
	"fmt"

	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// clueReserve is the vertical space kept below the board for the clue lines.
const clueReserve = 5

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small for this puzzle")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize the terminal or pick an easier difficulty")
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderClues(dst)

	if g.paused {
		dst.DrawRect(core.NewRect(0, dst.Height()/2, dst.Width(), 1), ' ')
		dst.DrawTextCentered(dst.Height()/2, "== PAUSED ==")
	}
	if g.gameOver {
		dst.DrawRect(core.NewRect(0, dst.Height()/2, dst.Width(), 2), ' ')
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Crossword solved! Score: %d", g.score))
		dst.DrawTextCentered(dst.Height()/2+1, "Ctrl+R to play again, Esc for menu")
	}
}

// renderHUD draws the title and score line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "CROSSWORD")
	status := fmt.Sprintf("Score: %d   Solved: %d/%d   Hints: %d",
		g.score, len(g.solved), len(g.puz.Phrases), g.hintsUsed)
	dst.DrawText(1, 1, status)
}

// renderGrid draws the crossword cells. Blocked cells stay blank. Cell
// precedence, strongest first: celebration wave, cursor, active word, blink,
// solved word, plain letter.
func (g *Game) renderGrid(dst *core.Screen) {
	activeCells := make(map[puzzle.Coord]bool)
	if p := g.activePhrase(); p != nil {
		activeCells = p.Cells()
	}

	size := g.puz.Grid.Size()
	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			cell := puzzle.At(r, col)
			if !g.isOpen(cell) {
				continue
			}
			x := g.metrics.OriginX + col*g.metrics.CellW + g.metrics.CellW/2
			y := g.metrics.OriginY + r*g.metrics.CellH + g.metrics.CellH/2

			ch := '.'
			if letter, ok := g.entered[cell]; ok {
				ch = letter
			}

			color := core.ColorDefault
			switch {
			case g.effects.Celebrating(cell):
				color = core.ColorBrightYellow
			case cell == g.cursor:
				color = core.ColorBrightCyan
			case activeCells[cell]:
				color = core.ColorCyan
			case g.effects.Blinking(cell):
				color = core.ColorOrange
			case g.solvedCells[cell]:
				color = core.ColorBrightGreen
			case g.revealed[cell]:
				color = core.ColorYellow
			}
			dst.SetCell(x, y, ch, color)

			// Clue number in the cell's top-left corner, when it fits.
			if n := g.numberAt(cell); n > 0 && g.metrics.CellW >= 3 {
				numStr := fmt.Sprintf("%d", n)
				dst.DrawText(g.metrics.OriginX+col*g.metrics.CellW, g.metrics.OriginY+r*g.metrics.CellH, numStr)
			}
		}
	}
}

// numberAt returns the clue number starting at the cell, or zero.
func (g *Game) numberAt(c puzzle.Coord) int {
	for i := range g.puz.Phrases {
		p := &g.puz.Phrases[i]
		if len(p.Coordinates) > 0 && p.Coordinates[0] == c {
			return p.Number
		}
	}
	return 0
}

// renderClues draws the active clue and the typing direction below the board.
func (g *Game) renderClues(dst *core.Screen) {
	top := g.metrics.OriginY + g.puz.Grid.Size()*g.metrics.CellH + 1

	p := g.activePhrase()
	if p == nil {
		return
	}
	clue := p.Clue
	if clue == "" {
		clue = fmt.Sprintf("%d letters", len([]rune(p.Text)))
	}
	dst.DrawTextColored(1, top, fmt.Sprintf("%d %s: %s", p.Number, p.Direction, clue), core.ColorBrightWhite)
	dst.DrawText(1, top+1, "Arrows move, Tab toggles direction, ? reveals a letter")
}
