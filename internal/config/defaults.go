package config

import (
	_ "embed"
)

//go:embed defaults/wordsearch.yaml
var defaultWordsearchYAML []byte

//go:embed defaults/crossword.yaml
var defaultCrosswordYAML []byte

// DefaultWordsearchConfig returns the default Word Search configuration.
func DefaultWordsearchConfig() WordsearchConfig {
	return WordsearchConfig{
		Board: BoardConfig{
			Size: 12,
		},
		Words: WordListConfig{
			Pack:  "animals",
			Count: 10,
		},
		Scoring: ScoringConfig{
			LetterPoints: 10,
			HintPenalty:  5,
		},
		Hints: HintConfig{
			MaxPerWord: 3,
			BlinkSecs:  1.5,
		},
		Timing: TimingConfig{
			ResizeDebounceMs: 100,
		},
	}
}

// DefaultCrosswordConfig returns the default Crossword configuration.
func DefaultCrosswordConfig() CrosswordConfig {
	return CrosswordConfig{
		Board: BoardConfig{
			Size: 15,
		},
		Words: WordListConfig{
			Pack:  "animals",
			Count: 10,
		},
		Scoring: ScoringConfig{
			LetterPoints: 10,
			HintPenalty:  5,
		},
		Hints: HintConfig{
			MaxPerWord: 1,
			BlinkSecs:  1.5,
		},
	}
}
