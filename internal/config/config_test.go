package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// The embedded defaults must stay in sync with the hardcoded fallbacks.
func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var ws WordsearchConfig
	if err := yaml.Unmarshal(defaultWordsearchYAML, &ws); err != nil {
		t.Fatalf("embedded wordsearch yaml: %v", err)
	}
	if ws != DefaultWordsearchConfig() {
		t.Errorf("embedded wordsearch defaults = %+v, hardcoded = %+v", ws, DefaultWordsearchConfig())
	}

	var cw CrosswordConfig
	if err := yaml.Unmarshal(defaultCrosswordYAML, &cw); err != nil {
		t.Fatalf("embedded crossword yaml: %v", err)
	}
	if cw != DefaultCrosswordConfig() {
		t.Errorf("embedded crossword defaults = %+v, hardcoded = %+v", cw, DefaultCrosswordConfig())
	}
}

func TestApplyWordsearchPreset(t *testing.T) {
	cfg := DefaultWordsearchConfig()

	ApplyWordsearchPreset(&cfg, DifficultyHard)
	if cfg.Board.Size != 16 || cfg.Words.Count != 14 {
		t.Errorf("hard preset: size=%d count=%d", cfg.Board.Size, cfg.Words.Count)
	}

	ApplyWordsearchPreset(&cfg, DifficultyEasy)
	if cfg.Board.Size != 8 || cfg.Words.Count != 6 {
		t.Errorf("easy preset: size=%d count=%d", cfg.Board.Size, cfg.Words.Count)
	}

	// Unknown preset leaves the config alone.
	ApplyWordsearchPreset(&cfg, DifficultyPreset("nightmare"))
	if cfg.Board.Size != 8 {
		t.Errorf("unknown preset changed the config: size=%d", cfg.Board.Size)
	}
}

func TestValidPreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard"} {
		if !ValidPreset(s) {
			t.Errorf("preset %q should be valid", s)
		}
	}
	if ValidPreset("brutal") || ValidPreset("") {
		t.Error("unknown presets should be invalid")
	}
}

func TestLoadWordsearchCustomPathErrors(t *testing.T) {
	if _, err := LoadWordsearch("/nonexistent/path.yaml"); err == nil {
		t.Error("missing custom config should error")
	}
}
