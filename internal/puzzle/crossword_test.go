package puzzle

import (
	"testing"
)

func testEntries() []CrosswordEntry {
	return []CrosswordEntry{
		{Word: "HORSE", Clue: "Gallops"},
		{Word: "SHARK", Clue: "Fins"},
		{Word: "RABBIT", Clue: "Hops"},
		{Word: "EAGLE", Clue: "Soars"},
		{Word: "TIGER", Clue: "Stripes"},
	}
}

func TestGenerateCrosswordDeterministic(t *testing.T) {
	p1 := GenerateCrossword(testEntries(), 15, 42)
	p2 := GenerateCrossword(testEntries(), 15, 42)

	if gridString(p1.Grid) != gridString(p2.Grid) {
		t.Error("same seed should generate identical crosswords")
	}
	if len(p1.Phrases) != len(p2.Phrases) {
		t.Errorf("phrase counts differ: %d vs %d", len(p1.Phrases), len(p2.Phrases))
	}
}

func TestGenerateCrosswordPlacements(t *testing.T) {
	p := GenerateCrossword(testEntries(), 15, 7)

	if len(p.Phrases) < 2 {
		t.Fatalf("expected at least two crossing words, placed %d", len(p.Phrases))
	}

	for _, ph := range p.Phrases {
		if ph.Direction != Across && ph.Direction != Down {
			t.Errorf("%s: crossword placement must be across or down, got %v", ph.Text, ph.Direction)
		}
		letters := []rune(ph.Text)
		for i, c := range ph.Coordinates {
			if p.Grid.Letter(c) != letters[i] {
				t.Errorf("%s: grid[%v] = %c, expected %c", ph.Text, c, p.Grid.Letter(c), letters[i])
			}
		}
	}
}

// Every word after the first must share a cell with some other word.
func TestGenerateCrosswordWordsCross(t *testing.T) {
	p := GenerateCrossword(testEntries(), 15, 7)

	for i, ph := range p.Phrases {
		if i == 0 {
			continue
		}
		crosses := false
		for j, other := range p.Phrases {
			if i == j {
				continue
			}
			otherCells := other.Cells()
			for _, c := range ph.Coordinates {
				if otherCells[c] {
					crosses = true
				}
			}
		}
		if !crosses {
			t.Errorf("%s does not cross any other word", ph.Text)
		}
	}
}

func TestGenerateCrosswordNumbering(t *testing.T) {
	p := GenerateCrossword(testEntries(), 15, 7)

	seen := make(map[int]Coord)
	for _, ph := range p.Phrases {
		if ph.Number < 1 {
			t.Errorf("%s: clue number %d", ph.Text, ph.Number)
			continue
		}
		start := ph.Coordinates[0]
		if prev, ok := seen[ph.Number]; ok && prev != start {
			t.Errorf("number %d used by two different start cells %v and %v", ph.Number, prev, start)
		}
		seen[ph.Number] = start
	}
}

func TestGenerateCrosswordBlockedCellsStayEmpty(t *testing.T) {
	p := GenerateCrossword(testEntries(), 15, 7)

	used := make(map[Coord]bool)
	for _, ph := range p.Phrases {
		for _, c := range ph.Coordinates {
			used[c] = true
		}
	}
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			cell := At(r, c)
			if !used[cell] && p.Grid.Letter(cell) != 0 {
				t.Errorf("cell %v holds %c but belongs to no word", cell, p.Grid.Letter(cell))
			}
		}
	}
}

func TestGenerateCrosswordEmptyInput(t *testing.T) {
	p := GenerateCrossword(nil, 11, 1)
	if len(p.Phrases) != 0 {
		t.Errorf("no entries should place no words, got %d", len(p.Phrases))
	}
	if p.Grid.Size() != 11 {
		t.Errorf("grid size = %d, expected 11", p.Grid.Size())
	}
}
