package puzzle

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed packs/animals.yaml
var packAnimalsYAML []byte

//go:embed packs/kitchen.yaml
var packKitchenYAML []byte

// embeddedPacks maps built-in pack names to their YAML payloads.
var embeddedPacks = map[string][]byte{
	"animals": packAnimalsYAML,
	"kitchen": packKitchenYAML,
}

// Pack is a named phrase dataset usable by both game variants. Clues are
// optional; the word-search variant ignores them and the crossword variant
// falls back to the word itself when a clue is missing.
type Pack struct {
	Name    string           `yaml:"name"`
	Entries []CrosswordEntry `yaml:"entries"`
}

// Words returns just the words of the pack.
func (p *Pack) Words() []string {
	words := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		words[i] = e.Word
	}
	return words
}

// LoadPack resolves a pack by name or path.
// Search order: literal file path -> ~/.wordgrid/packs/<name>.yaml ->
// ./packs/<name>.yaml -> embedded built-in.
func LoadPack(nameOrPath string) (*Pack, error) {
	if data, err := os.ReadFile(nameOrPath); err == nil {
		return parsePack(data, nameOrPath)
	}

	filename := nameOrPath + ".yaml"
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".wordgrid", "packs", filename)
		if data, err := os.ReadFile(userPath); err == nil {
			return parsePack(data, userPath)
		}
	}

	if data, err := os.ReadFile(filepath.Join("packs", filename)); err == nil {
		return parsePack(data, filename)
	}

	if data, ok := embeddedPacks[nameOrPath]; ok {
		return parsePack(data, nameOrPath)
	}

	return nil, fmt.Errorf("puzzle: unknown phrase pack %q", nameOrPath)
}

// PackNames lists the built-in pack names.
func PackNames() []string {
	names := make([]string, 0, len(embeddedPacks))
	for name := range embeddedPacks {
		names = append(names, name)
	}
	return names
}

func parsePack(data []byte, source string) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("puzzle: cannot parse pack %s: %w", source, err)
	}
	if len(p.Entries) == 0 {
		return nil, fmt.Errorf("puzzle: pack %s has no entries", source)
	}
	return &p, nil
}
