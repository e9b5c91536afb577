package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snapdock/pkg/board"
	"github.com/matzehuels/snapdock/pkg/boardfile"
)

// boardCommand creates the board command, the interactive terminal board.
func (c *CLI) boardCommand() *cobra.Command {
	var (
		configPath string
		loadFile   string
	)
	sf := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive block board",
		Long: `Open the interactive block board in the terminal.

Blocks are dragged with the mouse. Releasing a block within snap tolerance of
another block's end docks it there; the whole chain below the grabbed block
rides along. Keys: r resets the board, s saves a snapshot, d toggles the
debug footer, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd, configPath, loadFile, sf)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/snapdock/config.toml)")
	cmd.Flags().StringVar(&loadFile, "load", "", "start from a board JSON file instead of the config")
	sf.register(cmd)

	return cmd
}

// loadBoardFile reads a board JSON file, substituting the config tolerance
// when the file doesn't carry one.
func loadBoardFile(path string, fallbackTolerance float64) (*board.Board, error) {
	doc, err := boardfile.ReadDocumentFile(path)
	if err != nil {
		return nil, err
	}
	if doc.Tolerance == 0 {
		doc.Tolerance = fallbackTolerance
	}
	return boardfile.ToBoard(doc)
}

func (c *CLI) runBoard(cmd *cobra.Command, configPath, loadFile string, sf *storeFlags) error {
	ctx := cmd.Context()

	b, cfg, err := loadBoard(configPath)
	if err != nil {
		return err
	}
	if loadFile != "" {
		if b, err = loadBoardFile(loadFile, cfg.Tolerance); err != nil {
			return err
		}
	}

	snapshots, err := sf.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer snapshots.Close()

	c.Logger.Debug("starting board", "blocks", b.Len(), "tolerance", b.Tolerance())

	model := NewBoardModel(board.NewController(b), cfg, snapshots)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}
