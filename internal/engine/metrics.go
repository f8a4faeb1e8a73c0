package engine

import (
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// Layout bounds for rendered cells, in terminal characters. Terminal cells are
// roughly twice as tall as wide, so cell width runs ahead of cell height.
const (
	minCellW = 3
	maxCellW = 7
	minCellH = 1
	maxCellH = 3

	// DefaultOverscan is how many logical cells beyond the grid edge a drag
	// may still resolve to before the pointer stops tracking.
	DefaultOverscan = 2

	// hudReserve is vertical space kept for title, word list and status line.
	hudReserve = 6
)

// Metrics describes where and how the puzzle grid is rendered on screen, and
// converts pointer positions back into grid cells. The same math serves every
// pointer source.
type Metrics struct {
	OriginX  int // screen column of the first cell's left edge
	OriginY  int // screen row of the first cell's top edge
	CellW    int // rendered cell width in characters
	CellH    int // rendered cell height in characters
	Size     int // grid side length in cells
	Overscan int // logical cells past the edge still resolvable during a drag
}

// CellAt converts a screen position into a grid coordinate. The returned
// coordinate may lie outside the grid by up to Overscan cells in either axis,
// which lets an in-progress drag keep extending past the rendered edge; path
// clipping drops the out-of-bounds cells later. Returns false when the point
// cannot be resolved at all.
func (m Metrics) CellAt(x, y int) (puzzle.Coord, bool) {
	if m.CellW <= 0 || m.CellH <= 0 || m.Size <= 0 {
		return puzzle.Coord{}, false
	}
	col := floorDiv(x-m.OriginX, m.CellW)
	row := floorDiv(y-m.OriginY, m.CellH)
	if row < -m.Overscan || row >= m.Size+m.Overscan ||
		col < -m.Overscan || col >= m.Size+m.Overscan {
		return puzzle.Coord{}, false
	}
	return puzzle.Coord{Row: row, Col: col}, true
}

// Bounds returns the rendered board rectangle in screen coordinates.
func (m Metrics) Bounds() core.Rect {
	return core.NewRect(m.OriginX, m.OriginY, m.Size*m.CellW, m.Size*m.CellH)
}

// FitMetrics computes cell dimensions for the given screen and grid size,
// clamped to the layout bounds. Width is fitted first so narrow screens never
// overflow horizontally; height then follows, capped at half the cell width to
// keep cells visually square. The board is centered horizontally.
func FitMetrics(screenW, screenH, gridSize int) Metrics {
	if gridSize <= 0 {
		return Metrics{Size: 0}
	}

	cellW := core.Clamp(screenW/gridSize, minCellW, maxCellW)
	// Keep an odd width so the letter sits on the center column.
	if cellW%2 == 0 {
		cellW--
	}

	availH := screenH - hudReserve
	cellH := core.Clamp(availH/gridSize, minCellH, maxCellH)
	if cellH > (cellW+1)/2 {
		cellH = (cellW + 1) / 2
	}

	boardW := gridSize * cellW
	originX := core.Max(0, (screenW-boardW)/2)

	return Metrics{
		OriginX:  originX,
		OriginY:  2, // below the title line
		CellW:    cellW,
		CellH:    cellH,
		Size:     gridSize,
		Overscan: DefaultOverscan,
	}
}

// floorDiv divides rounding toward negative infinity, so positions left/above
// the origin map to negative cells instead of collapsing onto cell zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
