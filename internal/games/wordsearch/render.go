package wordsearch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// wordsPerRow is how many words share one line of the word list.
const wordsPerRow = 4

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small for this puzzle")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize the terminal or pick an easier difficulty")
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderWordList(dst)

	if g.paused {
		dst.DrawRect(core.NewRect(0, dst.Height()/2, dst.Width(), 1), ' ')
		dst.DrawTextCentered(dst.Height()/2, "== PAUSED ==")
	}
	if g.gameOver {
		dst.DrawRect(core.NewRect(0, dst.Height()/2, dst.Width(), 2), ' ')
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Puzzle solved! Score: %d", g.score))
		dst.DrawTextCentered(dst.Height()/2+1, "Press R to play again, B for menu")
	}
}

// renderHUD draws the title and score line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "WORD SEARCH")
	status := fmt.Sprintf("Score: %d   Found: %d/%d   Hints: %d",
		g.score, len(g.found), len(g.puz.Phrases), g.hintsUsed)
	dst.DrawText(1, 1, status)
}

// renderGrid draws the letter grid with per-cell highlighting. Highlight
// precedence, strongest first: celebration wave, active selection, hint
// blink, found word, plain letter.
func (g *Game) renderGrid(dst *core.Screen) {
	selected := make(map[puzzle.Coord]bool)
	for _, c := range g.selector.Path() {
		selected[c] = true
	}

	size := g.puz.Grid.Size()
	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			cell := puzzle.At(r, col)
			x := g.metrics.OriginX + col*g.metrics.CellW + g.metrics.CellW/2
			y := g.metrics.OriginY + r*g.metrics.CellH + g.metrics.CellH/2

			color := core.ColorDefault
			switch {
			case g.effects.Celebrating(cell):
				color = core.ColorBrightYellow
			case selected[cell]:
				color = core.ColorBrightCyan
			case g.effects.Blinking(cell):
				color = core.ColorOrange
			case g.foundCells[cell]:
				color = core.ColorBrightGreen
			}
			dst.SetCell(x, y, g.puz.Grid.Letter(cell), color)
		}
	}
}

// renderWordList draws the remaining and found words below the board.
func (g *Game) renderWordList(dst *core.Screen) {
	top := g.metrics.OriginY + g.puz.Grid.Size()*g.metrics.CellH + 1
	colWidth := dst.Width() / wordsPerRow

	for i, p := range g.puz.Phrases {
		x := (i % wordsPerRow) * colWidth
		y := top + i/wordsPerRow
		if g.found[p.Text] {
			dst.DrawTextColored(x, y, "+ "+strings.ToUpper(p.Text), core.ColorBrightGreen)
		} else {
			dst.DrawText(x, y, "  "+strings.ToUpper(p.Text))
		}
	}
}
