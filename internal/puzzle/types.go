// Package puzzle defines the word-puzzle data model shared by every game
// variant: letter grids, phrase placements, and the coordinate vocabulary the
// selection engine speaks. It contains no rendering or input concerns.
package puzzle

import "fmt"

// Coord addresses a single grid cell by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// In reports whether the coordinate lies inside a square grid of the given size.
func (c Coord) In(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Direction classifies the relationship between two cells, or the placement
// axis of a phrase. DirectionNone means "no straight relationship" and is never
// a valid placement or a lockable gesture direction.
type Direction int

const (
	DirectionNone Direction = iota
	Horizontal
	Vertical
	Diagonal
	Across // crossword placement, left to right
	Down   // crossword placement, top to bottom
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Phrase is a word placed in the grid. Coordinates is an ordered walk from the
// first letter to the last; a selection matching it forward or exactly reversed
// counts as finding the phrase.
type Phrase struct {
	Text        string
	Coordinates []Coord
	Direction   Direction

	// Number is the clue number for crossword variants; zero for word search.
	Number int
	// Clue is the hint text for crossword variants; empty for word search.
	Clue string
}

// Cells returns the phrase's coordinates as a set, for membership checks.
func (p Phrase) Cells() map[Coord]bool {
	set := make(map[Coord]bool, len(p.Coordinates))
	for _, c := range p.Coordinates {
		set[c] = true
	}
	return set
}

// Grid is a square matrix of letter cells. A zero rune marks an unused cell
// (crossword blocks); word-search grids have every cell filled.
type Grid [][]rune

// NewGrid allocates an empty square grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]rune, size)
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// Letter returns the rune at the given coordinate, or zero when out of bounds.
func (g Grid) Letter(c Coord) rune {
	if !c.In(len(g)) {
		return 0
	}
	return g[c.Row][c.Col]
}

// Puzzle is a fully-formed playable puzzle: the letter grid plus every phrase
// hidden in it. Puzzles are immutable once built; a new game means a new Puzzle.
type Puzzle struct {
	Grid    Grid
	Phrases []Phrase
}

// PhraseByText returns the phrase with the given text, or nil.
func (p *Puzzle) PhraseByText(text string) *Phrase {
	for i := range p.Phrases {
		if p.Phrases[i].Text == text {
			return &p.Phrases[i]
		}
	}
	return nil
}
