package engine

import (
	"testing"

	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

func catPhrase() puzzle.Phrase {
	return puzzle.Phrase{
		Text:        "CAT",
		Coordinates: []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2)},
		Direction:   puzzle.Horizontal,
	}
}

func TestIsStraightLine(t *testing.T) {
	tests := []struct {
		name     string
		path     []puzzle.Coord
		expected bool
	}{
		{"empty", nil, false},
		{"single cell", []puzzle.Coord{puzzle.At(0, 0)}, false},
		{"horizontal", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2)}, true},
		{"diagonal", []puzzle.Coord{puzzle.At(2, 2), puzzle.At(1, 1), puzzle.At(0, 0)}, true},
		{"bent path", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(1, 1)}, false},
		{"gap in path", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 2)}, false},
		{"duplicate cell", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 0), puzzle.At(0, 1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStraightLine(tc.path); got != tc.expected {
				t.Errorf("IsStraightLine(%v) = %v, expected %v", tc.path, got, tc.expected)
			}
		})
	}
}

// A phrase matches both its forward walk and the exact reverse.
func TestFindMatchForwardAndReverse(t *testing.T) {
	phrases := []puzzle.Phrase{catPhrase()}

	forward := []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2)}
	if m := FindMatch(forward, phrases); m == nil || m.Text != "CAT" {
		t.Errorf("forward path should match CAT, got %v", m)
	}

	reverse := []puzzle.Coord{puzzle.At(0, 2), puzzle.At(0, 1), puzzle.At(0, 0)}
	if m := FindMatch(reverse, phrases); m == nil || m.Text != "CAT" {
		t.Errorf("reversed path should match CAT, got %v", m)
	}
}

func TestFindMatchRejectsNearMisses(t *testing.T) {
	phrases := []puzzle.Phrase{catPhrase()}

	tests := []struct {
		name string
		path []puzzle.Coord
	}{
		{"subset", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1)}},
		{"superset", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2), puzzle.At(0, 3)}},
		{"shifted row", []puzzle.Coord{puzzle.At(1, 0), puzzle.At(1, 1), puzzle.At(1, 2)}},
		{"diagonal", []puzzle.Coord{puzzle.At(0, 0), puzzle.At(1, 1), puzzle.At(2, 2)}},
		{"empty", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if m := FindMatch(tc.path, phrases); m != nil {
				t.Errorf("path %v should not match, got %q", tc.path, m.Text)
			}
		})
	}
}

// Structural comparison must not confuse (1,23) with (12,3), which a naive
// string-joined key would.
func TestFindMatchNoDelimiterCollision(t *testing.T) {
	phrase := puzzle.Phrase{
		Text:        "X",
		Coordinates: []puzzle.Coord{puzzle.At(1, 23), puzzle.At(2, 23)},
		Direction:   puzzle.Vertical,
	}
	collision := []puzzle.Coord{puzzle.At(12, 3), puzzle.At(22, 3)}
	if m := FindMatch(collision, []puzzle.Phrase{phrase}); m != nil {
		t.Errorf("digit-shifted path should not match, got %q", m.Text)
	}
}

func TestFindMatchFirstWins(t *testing.T) {
	a := catPhrase()
	b := catPhrase()
	b.Text = "ACT"

	m := FindMatch(a.Coordinates, []puzzle.Phrase{a, b})
	if m == nil || m.Text != "CAT" {
		t.Errorf("expected first phrase to win, got %v", m)
	}
}
