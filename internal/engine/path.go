package engine

import (
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// BuildPath walks from anchor to target inclusive, one cell per step, stepping
// by the sign of each delta. Length is max(|dR|,|dC|)+1. If anchor and target
// do not form a straight relationship the walk would drift off-line, so the
// anchor-only path is returned instead; callers constrain the target first
// when a direction is locked.
func BuildPath(anchor, target puzzle.Coord) []puzzle.Coord {
	dr := target.Row - anchor.Row
	dc := target.Col - anchor.Col

	if anchor != target && ClassifyDirection(anchor, target) == puzzle.DirectionNone {
		return []puzzle.Coord{anchor}
	}

	steps := core.Max(core.Abs(dr), core.Abs(dc))
	stepR := core.Sign(dr)
	stepC := core.Sign(dc)

	path := make([]puzzle.Coord, 0, steps+1)
	cur := anchor
	for i := 0; i <= steps; i++ {
		path = append(path, cur)
		cur = cur.Add(stepR, stepC)
	}
	return path
}

// ClipToBounds drops every cell outside [0, size) in either axis, preserving
// order. Overscan targets produce paths that simply shrink back to the grid.
func ClipToBounds(path []puzzle.Coord, size int) []puzzle.Coord {
	clipped := path[:0:0]
	for _, c := range path {
		if c.In(size) {
			clipped = append(clipped, c)
		}
	}
	return clipped
}
