package puzzle

import (
	"math/rand"
	"sort"
	"strings"
)

// placement is one candidate line for a word: a start cell plus a unit step.
type placement struct {
	start Coord
	stepR int
	stepC int
	dir   Direction
}

// lineSteps enumerates the eight placement rays: the three axes, each walked
// forward or backward.
var lineSteps = []placement{
	{stepR: 0, stepC: 1, dir: Horizontal},
	{stepR: 0, stepC: -1, dir: Horizontal},
	{stepR: 1, stepC: 0, dir: Vertical},
	{stepR: -1, stepC: 0, dir: Vertical},
	{stepR: 1, stepC: 1, dir: Diagonal},
	{stepR: 1, stepC: -1, dir: Diagonal},
	{stepR: -1, stepC: 1, dir: Diagonal},
	{stepR: -1, stepC: -1, dir: Diagonal},
}

// Generate builds a word-search puzzle: places as many of the given words as
// fit into a size x size grid (allowing crossings on matching letters) and
// fills the remaining cells with random letters. Deterministic per seed.
// Words that cannot be placed are skipped; longest words are tried first since
// they are the hardest to fit.
func Generate(words []string, size int, seed int64) *Puzzle {
	rng := rand.New(rand.NewSource(seed))

	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || len([]rune(w)) > size {
			continue
		}
		normalized = append(normalized, w)
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return len(normalized[i]) > len(normalized[j])
	})

	grid := NewGrid(size)
	var phrases []Phrase

	for _, word := range normalized {
		if ph, ok := placeWord(grid, word, rng); ok {
			phrases = append(phrases, ph)
		}
	}

	fillRandom(grid, rng)

	return &Puzzle{Grid: grid, Phrases: phrases}
}

// placeWord tries random placements for a word until one fits.
func placeWord(grid Grid, word string, rng *rand.Rand) (Phrase, bool) {
	size := grid.Size()
	letters := []rune(word)

	// Shuffled cell order keeps placement unbiased while staying deterministic.
	cells := make([]Coord, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cells = append(cells, Coord{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	steps := make([]placement, len(lineSteps))
	copy(steps, lineSteps)
	rng.Shuffle(len(steps), func(i, j int) { steps[i], steps[j] = steps[j], steps[i] })

	for _, start := range cells {
		for _, step := range steps {
			coords, ok := tryLine(grid, letters, start, step)
			if !ok {
				continue
			}
			for i, c := range coords {
				grid[c.Row][c.Col] = letters[i]
			}
			return Phrase{Text: word, Coordinates: coords, Direction: step.dir}, true
		}
	}
	return Phrase{}, false
}

// tryLine checks whether the word fits along one ray without conflicting with
// letters already on the grid. Crossings on equal letters are allowed.
func tryLine(grid Grid, letters []rune, start Coord, step placement) ([]Coord, bool) {
	size := grid.Size()
	coords := make([]Coord, len(letters))
	cur := start
	for i, want := range letters {
		if !cur.In(size) {
			return nil, false
		}
		if have := grid[cur.Row][cur.Col]; have != 0 && have != want {
			return nil, false
		}
		coords[i] = cur
		cur = cur.Add(step.stepR, step.stepC)
	}
	return coords, true
}

// fillRandom fills every empty cell with a random uppercase letter.
func fillRandom(grid Grid, rng *rand.Rand) {
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == 0 {
				grid[r][c] = rune('A' + rng.Intn(26))
			}
		}
	}
}
