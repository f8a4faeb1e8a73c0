// Package engine implements the interactive grid-selection and phrase-matching
// machinery shared by the word-puzzle games: pointer-to-cell geometry,
// straight-line path building with direction locking, phrase matching, the
// drag gesture state machine, and the timed visual effects (hint blinks,
// progressive hints, celebration wave). It is pure simulation logic with no
// terminal dependencies; the platform layer feeds it screen coordinates and
// ticks.
package engine

import (
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// ClassifyDirection reports the straight-line relationship between two cells:
// Horizontal when the rows are equal, Vertical when the columns are equal,
// Diagonal when the absolute deltas match, DirectionNone otherwise.
// DirectionNone is never a lockable direction.
func ClassifyDirection(a, b puzzle.Coord) puzzle.Direction {
	dr := b.Row - a.Row
	dc := b.Col - a.Col
	switch {
	case dr == 0 && dc != 0:
		return puzzle.Horizontal
	case dc == 0 && dr != 0:
		return puzzle.Vertical
	case dr != 0 && core.Abs(dr) == core.Abs(dc):
		return puzzle.Diagonal
	default:
		return puzzle.DirectionNone
	}
}
