package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snapdock/pkg/board"
	"github.com/matzehuels/snapdock/pkg/boardfile"
)

// dumpCommand creates the dump command for exporting a board as JSON.
func (c *CLI) dumpCommand() *cobra.Command {
	var (
		configPath string
		loadFile   string
		output     string
		collisions bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the board as JSON",
		Long: `Dump the board as JSON.

Without flags the configured seed board is dumped to stdout. Use --load to
dump an existing board file (normalizing it through a load/save round trip),
--output to write to a file, and --collisions to append the current overlap
report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDump(configPath, loadFile, output, collisions)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/snapdock/config.toml)")
	cmd.Flags().StringVar(&loadFile, "load", "", "dump this board JSON file instead of the config board")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&collisions, "collisions", false, "include the overlap report")

	return cmd
}

func (c *CLI) runDump(configPath, loadFile, output string, withCollisions bool) error {
	b, cfg, err := loadBoard(configPath)
	if err != nil {
		return err
	}
	if loadFile != "" {
		if b, err = loadBoardFile(loadFile, cfg.Tolerance); err != nil {
			return err
		}
	}

	if withCollisions {
		return dumpWithCollisions(b, output)
	}

	if output == "" {
		return boardfile.Write(b, os.Stdout)
	}
	if err := boardfile.WriteFile(b, output); err != nil {
		return err
	}
	printSuccess("Board dumped")
	printFile(output)
	printBoardStats(b.Len(), chainCount(b))
	return nil
}

// dumpWithCollisions wraps the board document together with its overlap
// report in one JSON object.
func dumpWithCollisions(b *board.Board, output string) error {
	payload := struct {
		Board      boardfile.Document `json:"board"`
		Collisions []board.Collision  `json:"collisions"`
	}{
		Board:      boardfile.FromBoard(b),
		Collisions: b.Collisions(),
	}

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// chainCount returns the number of chains with at least two blocks: heads
// that nothing points at but that point at something.
func chainCount(b *board.Board) int {
	pointedAt := make(map[string]bool)
	for _, blk := range b.Blocks() {
		if blk.NextID != "" {
			pointedAt[blk.NextID] = true
		}
	}
	n := 0
	for _, blk := range b.Blocks() {
		if blk.NextID != "" && !pointedAt[blk.ID] {
			n++
		}
	}
	return n
}
