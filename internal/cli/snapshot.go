package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snapdock/pkg/boardfile"
	"github.com/matzehuels/snapdock/pkg/store"
)

// snapshotCommand creates the snapshot command group for named board saves.
func (c *CLI) snapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage named board snapshots",
		Long: `Manage named board snapshots.

Snapshots are explicit, named saves of a board document. The default backend
stores them as JSON files under the data directory; redis and mongo backends
are available for shared setups.`,
	}

	cmd.AddCommand(c.snapshotSaveCommand())
	cmd.AddCommand(c.snapshotLoadCommand())
	cmd.AddCommand(c.snapshotListCommand())
	cmd.AddCommand(c.snapshotDeleteCommand())

	return cmd
}

func (c *CLI) snapshotSaveCommand() *cobra.Command {
	var (
		configPath string
		loadFile   string
	)
	sf := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a board under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := store.ValidateName(name); err != nil {
				return err
			}

			b, cfg, err := loadBoard(configPath)
			if err != nil {
				return err
			}
			if loadFile != "" {
				if b, err = loadBoardFile(loadFile, cfg.Tolerance); err != nil {
					return err
				}
			}

			s, err := sf.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			p := newProgress(c.Logger)
			if err := s.Save(cmd.Context(), name, boardfile.FromBoard(b)); err != nil {
				return fmt.Errorf("save snapshot %s: %w", name, err)
			}
			p.done(fmt.Sprintf("Saved snapshot %s", name))
			printSuccess("Snapshot %s saved", StyleValue.Render(name))
			printBoardStats(b.Len(), chainCount(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/snapdock/config.toml)")
	cmd.Flags().StringVar(&loadFile, "load", "", "save this board JSON file instead of the config board")
	sf.register(cmd)
	return cmd
}

func (c *CLI) snapshotLoadCommand() *cobra.Command {
	var output string
	sf := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a snapshot and write it as board JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := store.ValidateName(name); err != nil {
				return err
			}

			s, err := sf.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := s.Load(cmd.Context(), name)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no snapshot named %q", name)
			}
			if err != nil {
				return fmt.Errorf("load snapshot %s: %w", name, err)
			}

			if output == "" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			printSuccess("Snapshot %s loaded", StyleValue.Render(name))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	sf.register(cmd)
	return cmd
}

func (c *CLI) snapshotListCommand() *cobra.Command {
	sf := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list snapshots: %w", err)
			}
			if len(names) == 0 {
				printInfo("No snapshots stored")
				return nil
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println("  " + StyleValue.Render(name))
			}
			printDetail("%d snapshot(s)", len(names))
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}

func (c *CLI) snapshotDeleteCommand() *cobra.Command {
	sf := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := store.ValidateName(name); err != nil {
				return err
			}

			s, err := sf.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			err = s.Delete(cmd.Context(), name)
			if errors.Is(err, store.ErrNotFound) {
				printWarning("No snapshot named %s", name)
				return nil
			}
			if err != nil {
				return fmt.Errorf("delete snapshot %s: %w", name, err)
			}
			printSuccess("Snapshot %s deleted", StyleValue.Render(name))
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}
