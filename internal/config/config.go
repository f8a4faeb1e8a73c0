// Package config provides YAML-based game configuration loading and
// difficulty presets for the word-puzzle platform.
package config

// WordsearchConfig contains all configuration for the Word Search game.
type WordsearchConfig struct {
	Board   BoardConfig    `yaml:"board"`
	Words   WordListConfig `yaml:"words"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Hints   HintConfig     `yaml:"hints"`
	Timing  TimingConfig   `yaml:"timing"`
}

// CrosswordConfig contains all configuration for the Crossword game.
type CrosswordConfig struct {
	Board   BoardConfig    `yaml:"board"`
	Words   WordListConfig `yaml:"words"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Hints   HintConfig     `yaml:"hints"`
}

// BoardConfig defines grid dimensions.
type BoardConfig struct {
	Size int `yaml:"size"` // side length in cells
}

// WordListConfig selects the word pack and how much of it to use.
type WordListConfig struct {
	Pack  string `yaml:"pack"`  // pack name or path to a YAML file
	Count int    `yaml:"count"` // words to place; 0 means as many as fit
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	LetterPoints int `yaml:"letter_points"` // points per letter of a found word
	HintPenalty  int `yaml:"hint_penalty"`  // points deducted per hint level used
}

// HintConfig defines hint behavior.
type HintConfig struct {
	MaxPerWord int     `yaml:"max_per_word"` // progressive reveal levels available
	BlinkSecs  float64 `yaml:"blink_secs"`   // how long a full-word blink lasts
}

// TimingConfig defines presentation timing.
type TimingConfig struct {
	ResizeDebounceMs int `yaml:"resize_debounce_ms"` // layout refit delay after resize
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// boardPreset is the grid size and word count a preset implies.
type boardPreset struct {
	size  int
	count int
}

var wordsearchPresets = map[DifficultyPreset]boardPreset{
	DifficultyEasy:   {size: 8, count: 6},
	DifficultyNormal: {size: 12, count: 10},
	DifficultyHard:   {size: 16, count: 14},
}

var crosswordPresets = map[DifficultyPreset]boardPreset{
	DifficultyEasy:   {size: 11, count: 6},
	DifficultyNormal: {size: 15, count: 10},
	DifficultyHard:   {size: 21, count: 16},
}

// ApplyWordsearchPreset overrides board size and word count from a preset.
// Unknown presets leave the config untouched.
func ApplyWordsearchPreset(cfg *WordsearchConfig, preset DifficultyPreset) {
	if p, ok := wordsearchPresets[preset]; ok {
		cfg.Board.Size = p.size
		cfg.Words.Count = p.count
	}
}

// ApplyCrosswordPreset overrides board size and word count from a preset.
// Unknown presets leave the config untouched.
func ApplyCrosswordPreset(cfg *CrosswordConfig, preset DifficultyPreset) {
	if p, ok := crosswordPresets[preset]; ok {
		cfg.Board.Size = p.size
		cfg.Words.Count = p.count
	}
}

// ValidPreset reports whether the string names a known difficulty preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
