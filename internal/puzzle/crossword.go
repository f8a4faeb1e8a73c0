package puzzle

import (
	"math/rand"
	"strings"
)

// GenerateCrossword builds a crossword-style puzzle: words are placed only
// across or down, every word after the first must cross an already-placed word
// on a shared letter, and unused cells stay empty (blocked). Clue numbers are
// assigned in reading order of the start cells. Deterministic per seed.
func GenerateCrossword(entries []CrosswordEntry, size int, seed int64) *Puzzle {
	rng := rand.New(rand.NewSource(seed))

	pool := make([]CrosswordEntry, 0, len(entries))
	for _, e := range entries {
		e.Word = strings.ToUpper(strings.TrimSpace(e.Word))
		if e.Word == "" || len([]rune(e.Word)) > size {
			continue
		}
		pool = append(pool, e)
	}
	if len(pool) == 0 {
		return &Puzzle{Grid: NewGrid(size)}
	}

	grid := NewGrid(size)
	var phrases []Phrase

	// Seed word: horizontal, centered.
	first := pool[0]
	letters := []rune(first.Word)
	row := size / 2
	col := (size - len(letters)) / 2
	coords := make([]Coord, len(letters))
	for i, l := range letters {
		grid[row][col+i] = l
		coords[i] = Coord{Row: row, Col: col + i}
	}
	phrases = append(phrases, Phrase{
		Text: first.Word, Coordinates: coords, Direction: Across, Clue: first.Clue,
	})

	for _, entry := range pool[1:] {
		if ph, ok := placeCrossing(grid, entry, phrases, rng); ok {
			phrases = append(phrases, ph)
		}
	}

	numberPhrases(phrases)
	return &Puzzle{Grid: grid, Phrases: phrases}
}

// CrosswordEntry pairs a word with its clue text.
type CrosswordEntry struct {
	Word string `yaml:"word"`
	Clue string `yaml:"clue"`
}

// placeCrossing tries to place a word so it crosses an existing phrase on a
// shared letter, perpendicular to it.
func placeCrossing(grid Grid, entry CrosswordEntry, placed []Phrase, rng *rand.Rand) (Phrase, bool) {
	letters := []rune(entry.Word)

	order := rng.Perm(len(placed))
	for _, pi := range order {
		host := placed[pi]
		hostLetters := []rune(host.Text)
		for hi, hl := range hostLetters {
			for wi, wl := range letters {
				if hl != wl {
					continue
				}
				crossing := host.Coordinates[hi]
				var start Coord
				var dir Direction
				if host.Direction == Across {
					start = Coord{Row: crossing.Row - wi, Col: crossing.Col}
					dir = Down
				} else {
					start = Coord{Row: crossing.Row, Col: crossing.Col - wi}
					dir = Across
				}
				coords, ok := fitCrossword(grid, letters, start, dir)
				if !ok {
					continue
				}
				for i, c := range coords {
					grid[c.Row][c.Col] = letters[i]
				}
				return Phrase{
					Text: entry.Word, Coordinates: coords, Direction: dir, Clue: entry.Clue,
				}, true
			}
		}
	}
	return Phrase{}, false
}

// fitCrossword validates a crossword placement: in bounds, no letter
// conflicts, and no touching parallel words (cells adjacent to the word's line
// must be empty unless they belong to a crossing).
func fitCrossword(grid Grid, letters []rune, start Coord, dir Direction) ([]Coord, bool) {
	size := grid.Size()
	dr, dc := 0, 1
	if dir == Down {
		dr, dc = 1, 0
	}

	// Cells immediately before and after the word must be empty.
	if before := start.Add(-dr, -dc); before.In(size) && grid.Letter(before) != 0 {
		return nil, false
	}
	end := start.Add(dr*len(letters), dc*len(letters))
	if end.In(size) && grid.Letter(end) != 0 {
		return nil, false
	}

	coords := make([]Coord, len(letters))
	cur := start
	for i, want := range letters {
		if !cur.In(size) {
			return nil, false
		}
		have := grid[cur.Row][cur.Col]
		if have != 0 && have != want {
			return nil, false
		}
		if have == 0 {
			// Fresh cell: its perpendicular neighbors must be empty, otherwise
			// we would create an unintended adjacent word.
			for _, side := range []Coord{cur.Add(dc, dr), cur.Add(-dc, -dr)} {
				if side.In(size) && grid.Letter(side) != 0 {
					return nil, false
				}
			}
		}
		coords[i] = cur
		cur = cur.Add(dr, dc)
	}
	return coords, true
}

// numberPhrases assigns clue numbers in reading order of start cells. Phrases
// sharing a start cell (an across and a down) share a number.
func numberPhrases(phrases []Phrase) {
	type startKey struct{ r, c int }
	assigned := make(map[startKey]int)
	next := 1

	// Reading order: sort indices by start cell.
	idx := make([]int, len(phrases))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			a, b := phrases[idx[i]].Coordinates[0], phrases[idx[j]].Coordinates[0]
			if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
				idx[i], idx[j] = idx[j], idx[i]
			}
		}
	}

	for _, i := range idx {
		start := phrases[i].Coordinates[0]
		key := startKey{start.Row, start.Col}
		if n, ok := assigned[key]; ok {
			phrases[i].Number = n
			continue
		}
		assigned[key] = next
		phrases[i].Number = next
		next++
	}
}
