package engine

import (
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// directionLock fixes the selection axis for the rest of a gesture. It only
// ever holds a real direction: locking is constructed from a successful
// classification, so "locked on none" is unrepresentable. For diagonal locks
// the unit step records which of the two 45-degree lines was established, and
// never changes afterwards.
type directionLock struct {
	dir   puzzle.Direction
	stepR int // unit step along the locked line, set at lock time
	stepC int
}

// lockDirection creates a lock from the first valid movement away from the
// anchor. Returns nil when the movement does not classify as straight.
func lockDirection(anchor, target puzzle.Coord) *directionLock {
	dir := ClassifyDirection(anchor, target)
	if dir == puzzle.DirectionNone {
		return nil
	}
	return &directionLock{
		dir:   dir,
		stepR: core.Sign(target.Row - anchor.Row),
		stepC: core.Sign(target.Col - anchor.Col),
	}
}

// constrain projects a raw pointer cell onto the locked line through the
// anchor. Horizontal pins the row, vertical pins the column. Diagonal takes
// the larger absolute delta as the distance and walks it along the locked
// line, on whichever side of the anchor the pointer sits. This realizes
// rubber-banding: the pointer may wander off-axis or past the grid edge while
// the selection stays a clean line in the locked direction.
func (l *directionLock) constrain(anchor, raw puzzle.Coord) puzzle.Coord {
	switch l.dir {
	case puzzle.Horizontal:
		return puzzle.Coord{Row: anchor.Row, Col: raw.Col}
	case puzzle.Vertical:
		return puzzle.Coord{Row: raw.Row, Col: anchor.Col}
	default: // diagonal
		dr := raw.Row - anchor.Row
		dc := raw.Col - anchor.Col
		dist := core.Max(core.Abs(dr), core.Abs(dc))
		// Which side of the anchor the pointer projects onto, along the
		// locked line.
		side := core.Sign(dr*l.stepR + dc*l.stepC)
		if side == 0 {
			return anchor
		}
		return puzzle.Coord{
			Row: anchor.Row + dist*side*l.stepR,
			Col: anchor.Col + dist*side*l.stepC,
		}
	}
}

// ConstrainToDirection is the exported form used by tests and by callers that
// manage their own lock state: it locks on the given direction with steps
// derived from the raw target's quadrant.
func ConstrainToDirection(anchor, raw puzzle.Coord, dir puzzle.Direction) puzzle.Coord {
	switch dir {
	case puzzle.Horizontal, puzzle.Vertical:
		l := directionLock{dir: dir}
		return l.constrain(anchor, raw)
	case puzzle.Diagonal:
		l := directionLock{
			dir:   puzzle.Diagonal,
			stepR: nonzeroSign(raw.Row - anchor.Row),
			stepC: nonzeroSign(raw.Col - anchor.Col),
		}
		return l.constrain(anchor, raw)
	default:
		return raw
	}
}

func nonzeroSign(x int) int {
	if s := core.Sign(x); s != 0 {
		return s
	}
	return 1
}
