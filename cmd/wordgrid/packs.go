package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List available word packs",
	Long: `Shows the built-in word packs and their sizes.

Custom packs can be dropped into ~/.wordgrid/packs/<name>.yaml or passed
to --pack as a file path. A pack is a YAML file:

  name: mypack
  entries:
    - word: EXAMPLE
      clue: A representative case

Examples:
  wordgrid packs
  wordgrid play wordsearch --pack kitchen
  wordgrid play crossword --pack ./mypack.yaml`,
	Run: runPacks,
}

func runPacks(cmd *cobra.Command, args []string) {
	names := puzzle.PackNames()
	sort.Strings(names)

	fmt.Println("Built-in word packs:")
	fmt.Println()

	for _, name := range names {
		p, err := puzzle.LoadPack(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-10s  %d words\n", name, len(p.Entries))
	}

	fmt.Println()
	fmt.Println("Run 'wordgrid play wordsearch --pack <name>' to use a pack.")
}
