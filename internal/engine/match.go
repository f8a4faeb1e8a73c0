package engine

import "github.com/vovakirdan/wordgrid/internal/puzzle"

// IsStraightLine reports whether the path is a valid committed selection:
// at least two cells, every one of them exactly on the straight segment
// between the endpoints. The segment is re-derived from the endpoints rather
// than trusting the path's own ordering.
func IsStraightLine(path []puzzle.Coord) bool {
	if len(path) < 2 {
		return false
	}
	expected := BuildPath(path[0], path[len(path)-1])
	if len(expected) != len(path) {
		return false
	}
	for i, c := range expected {
		if path[i] != c {
			return false
		}
	}
	return true
}

// FindMatch returns the first phrase whose coordinate walk equals the path,
// in forward or exactly reversed order. Equality is structural, element by
// element over the ordered coordinate lists; no serialization is involved.
// Returns nil when nothing matches. Several phrases sharing one path resolve
// to the first encountered.
func FindMatch(path []puzzle.Coord, phrases []puzzle.Phrase) *puzzle.Phrase {
	if len(path) == 0 {
		return nil
	}
	for i := range phrases {
		if coordsEqual(path, phrases[i].Coordinates, false) ||
			coordsEqual(path, phrases[i].Coordinates, true) {
			return &phrases[i]
		}
	}
	return nil
}

// coordsEqual compares a path against a coordinate list, optionally walking
// the list backwards.
func coordsEqual(path, coords []puzzle.Coord, reversed bool) bool {
	if len(path) != len(coords) {
		return false
	}
	n := len(coords)
	for i, c := range path {
		j := i
		if reversed {
			j = n - 1 - i
		}
		if c != coords[j] {
			return false
		}
	}
	return true
}
